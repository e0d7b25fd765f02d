// Copyright 2026 The Internkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// tableSeed seeds maphash-based table hashes. One seed per process; tables
// in different interners share it, which is fine because dedup only ever
// consults a single table.
var tableSeed = maphash.MakeSeed()

// HashString returns the hash string tables apply to owned values.
// Identical to HashBytes over the same byte content.
func HashString(s string) uint64 { return xxhash.Sum64String(s) }

// HashBytes returns the hash string tables apply to a borrowed byte form.
func HashBytes(b []byte) uint64 { return xxhash.Sum64(b) }

// HashValue returns the hash the table for T applies to owned values.
// Borrow implementations for owned types other than string must produce
// hashes that agree with this function.
func HashValue[T comparable](v T) uint64 {
	if s, ok := any(v).(string); ok {
		return xxhash.Sum64String(s)
	}
	return maphash.Comparable(tableSeed, v)
}

// hashFor picks the hash function for a value table of T: xxhash for
// string tables so borrowed byte forms can hash compatibly, maphash
// otherwise.
func hashFor[T comparable]() func(T) uint64 {
	var zero T
	if _, ok := any(zero).(string); ok {
		return any(HashString).(func(T) uint64)
	}
	return func(v T) uint64 { return maphash.Comparable(tableSeed, v) }
}

// Borrow describes a borrowed form B of the owned value type T, letting a
// lookup hash and compare borrowed values against stored owned ones
// without materializing an owned copy until insertion is actually needed.
//
// Implementations must keep the borrowed and owned forms consistent:
//
//	Hash(b) == HashValue(Own(b))
//	Equal(b, v) exactly when Own(b) == v
//
// For string tables the owned hash is HashString/HashBytes; for every
// other owned type use HashValue.
type Borrow[B, T any] interface {
	Hash(b B) uint64
	Equal(b B, v T) bool
	// Own materializes the owned form of b. Only called when no equal
	// value is interned yet.
	Own(b B) T
}

// Bytes is the Borrow for interning strings from byte slices. Lookup hits
// do not copy the bytes.
var Bytes Borrow[[]byte, string] = bytesBorrow{}

type bytesBorrow struct{}

func (bytesBorrow) Hash(b []byte) uint64          { return xxhash.Sum64(b) }
func (bytesBorrow) Equal(b []byte, s string) bool { return string(b) == s }
func (bytesBorrow) Own(b []byte) string           { return string(b) }
