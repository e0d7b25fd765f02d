// Copyright 2026 The Internkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import (
	"sync"
	"sync/atomic"
	"weak"
)

// entryID numbers entries across all tables and interners, in allocation
// order. IDs back Handle.Compare and sequence hashing; 0 is reserved for
// the zero Handle.
var entryID atomic.Uint64

// entry is one slot in a table: a weak reference to the interned value
// plus the entry's allocation id. The entry deliberately holds no strong
// reference; liveness is exactly "some Handle still reaches the value".
type entry[T any] struct {
	id    uint64
	ref   weak.Pointer[T]
	owner *table[T]
}

// table is the dedup map for one concrete value type. Entries are chained
// per hash bucket; a bucket may carry tombstones (dead entries) between
// sweeps.
type table[T any] struct {
	hash func(T) uint64

	mu      sync.Mutex
	buckets map[uint64][]*entry[T]
}

func newTable[T any](hash func(T) uint64) *table[T] {
	return &table[T]{
		hash:    hash,
		buckets: make(map[uint64][]*entry[T]),
	}
}

// anyTable is the type-erased view the registry holds of every table.
type anyTable interface {
	sweep() int
	size() int
}

// intern returns the handle for the live entry matched by eq in bucket h,
// inserting a fresh entry built from own when no live match exists. The
// hash must be computed by the caller before the lock is taken so that
// caller-provided hashing never runs under the table lock.
//
// Every candidate is liveness-checked before eq is consulted: a dead
// entry is never matched, so a hash collision with a tombstone cannot
// yield a stale handle. The first tombstone in the bucket is replaced in
// place by the new entry, the bucket grows otherwise.
func (t *table[T]) intern(h uint64, eq func(*T) bool, own func() *T) Handle[T] {
	t.mu.Lock()
	defer t.mu.Unlock()

	bucket := t.buckets[h]
	dead := -1
	for i, e := range bucket {
		p := e.ref.Value()
		if p == nil {
			if dead < 0 {
				dead = i
			}
			continue
		}
		if eq(p) {
			return Handle[T]{val: p, ent: e}
		}
	}

	p := own()
	e := &entry[T]{
		id:    entryID.Add(1),
		ref:   weak.Make(p),
		owner: t,
	}
	if dead >= 0 {
		bucket[dead] = e
	} else {
		bucket = append(bucket, e)
	}
	t.buckets[h] = bucket
	return Handle[T]{val: p, ent: e}
}

// sweep removes every dead entry and returns how many were removed.
// Liveness is checked at the moment of removal, under the same lock
// intern takes, so an entry that regains a handle concurrently is never
// dropped. Entries that are unreachable but not yet collected survive
// until a sweep after the next GC cycle.
func (t *table[T]) sweep() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for h, bucket := range t.buckets {
		live := bucket[:0]
		for _, e := range bucket {
			if e.ref.Value() != nil {
				live = append(live, e)
			} else {
				removed++
			}
		}
		if len(live) == 0 {
			delete(t.buckets, h)
		} else {
			t.buckets[h] = live
		}
	}
	return removed
}

// size counts entries, tombstones included.
func (t *table[T]) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, bucket := range t.buckets {
		n += len(bucket)
	}
	return n
}
