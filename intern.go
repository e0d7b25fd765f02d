// Copyright 2026 The Internkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import (
	"reflect"
	"sync"
)

// Interner is a collection of dedup tables keyed by value type. Values of
// the same type are stored together in one table; tables are created
// lazily on first use and live as long as the Interner.
//
// Each Interner is an isolated interning domain: equal values interned in
// two different Interners yield handles that are not equal to each other.
// The zero value is ready to use; see Default for the process-wide
// instance behind Make and friends.
//
// All methods and package-level interning functions are safe for
// concurrent use. Table lookups go through a sync.Map, so operating on one
// type never blocks operations on another, including first-use table
// creation.
type Interner struct {
	tables sync.Map // reflect.Type -> *table[T] (as anyTable)
}

// New creates a fresh, empty Interner.
func New() *Interner { return &Interner{} }

// tableOf resolves the table for T, creating it with mk on first use.
// Lock-free on the hot path; a racing creation keeps whichever table was
// stored first and discards the loser.
func tableOf[T any](in *Interner, mk func() *table[T]) *table[T] {
	key := reflect.TypeFor[T]()
	if v, ok := in.tables.Load(key); ok {
		return v.(*table[T])
	}
	v, _ := in.tables.LoadOrStore(key, mk())
	return v.(*table[T])
}

func newValueTable[T comparable]() *table[T] { return newTable(hashFor[T]()) }

// Intern deduplicates v, returning the handle of its canonical copy. If an
// equal value is already interned the existing handle's entry is reused,
// otherwise v is copied into fresh shared storage.
func Intern[T comparable](in *Interner, v T) Handle[T] {
	t := tableOf(in, newValueTable[T])
	h := t.hash(v)
	return t.intern(h,
		func(p *T) bool { return *p == v },
		func() *T {
			owned := v
			return &owned
		})
}

// InternBorrowed deduplicates the borrowed form b against T's table. An
// owned copy is materialized only when no equal value is interned yet; a
// lookup hit allocates nothing.
func InternBorrowed[B any, T comparable](in *Interner, br Borrow[B, T], b B) Handle[T] {
	t := tableOf(in, newValueTable[T])
	h := br.Hash(b)
	return t.intern(h,
		func(p *T) bool { return br.Equal(b, *p) },
		func() *T {
			owned := br.Own(b)
			return &owned
		})
}

// InternBytes interns the string form of b without copying when an equal
// string is already interned.
func InternBytes(in *Interner, b []byte) Handle[string] {
	return InternBorrowed(in, Bytes, b)
}

// Sweep removes dead entries from every table and reports how many were
// removed. Live entries are never touched; tables stay usable afterwards.
func (in *Interner) Sweep() int {
	n := 0
	in.tables.Range(func(_, v any) bool {
		n += v.(anyTable).sweep()
		return true
	})
	return n
}

// SweepFor removes dead entries from T's table only, leaving all other
// tables untouched. Useful when many transient values of one type were
// just dropped. Returns 0 when T has no table yet.
func SweepFor[T any](in *Interner) int {
	if v, ok := in.tables.Load(reflect.TypeFor[T]()); ok {
		return v.(anyTable).sweep()
	}
	return 0
}

// Size returns the number of entries in T's table, tombstones included,
// or 0 when T has no table yet.
func Size[T any](in *Interner) int {
	if v, ok := in.tables.Load(reflect.TypeFor[T]()); ok {
		return v.(anyTable).size()
	}
	return 0
}
