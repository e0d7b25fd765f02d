// Copyright 2026 The Internkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import "sync"

// The process-wide interner lives for the duration of the process and is
// never torn down. Callers that need deterministic teardown or an
// isolated domain construct their own instance with New.
var defaultInterner = New()

// Default returns the process-wide Interner that Make, Sweep and the other
// package-level shorthands operate on.
func Default() *Interner { return defaultInterner }

// Make interns v with the process-wide interner.
func Make[T comparable](v T) Handle[T] { return Intern(defaultInterner, v) }

// MakeBorrowed interns the borrowed form b with the process-wide interner.
func MakeBorrowed[B any, T comparable](br Borrow[B, T], b B) Handle[T] {
	return InternBorrowed(defaultInterner, br, b)
}

// MakeBytes interns the string form of b with the process-wide interner.
func MakeBytes(b []byte) Handle[string] { return InternBytes(defaultInterner, b) }

// MakeList interns a sequence of handles with the process-wide interner.
func MakeList[T any](hs List[T]) Handle[List[T]] { return InternList(defaultInterner, hs) }

// MakeValues interns a list and its elements with the process-wide
// interner. See also MakeBytesList.
func MakeValues[T comparable](vs []T) Handle[List[T]] { return InternValues(defaultInterner, vs) }

// MakeBytesList interns a list of strings from their byte forms with the
// process-wide interner. See also MakeValues.
func MakeBytesList(bs [][]byte) Handle[List[string]] { return InternBytesList(defaultInterner, bs) }

// Sweep removes dead entries from every table of the process-wide
// interner. If only one type saw churn, SweepType is cheaper.
func Sweep() int { return defaultInterner.Sweep() }

// SweepType removes dead entries of a single type from the process-wide
// interner. Useful after constructing a large number of transient values
// of one type; otherwise use Sweep.
func SweepType[T any]() int { return SweepFor[T](defaultInterner) }

// Cached interns v in the process-wide interner on the first call of the
// returned function and hands out the memoized handle afterwards. Intended
// for handles of fixed values that are looked up repeatedly:
//
//	var rootTok = intern.Cached("root")
//
// The cached handle keeps its entry live for the life of the process.
func Cached[T comparable](v T) func() Handle[T] {
	return sync.OnceValue(func() Handle[T] { return Make(v) })
}
