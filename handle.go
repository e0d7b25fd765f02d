// Copyright 2026 The Internkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import (
	"cmp"
	"fmt"
)

// Handle is a shared reference to a single interned instance of T.
//
// Handles are constructed only by the interning engine. They are cheap to
// copy, valid as map keys, and compare by identity: two handles are equal
// (with plain ==) iff they reference the same table entry, which in turn
// means the values they were interned from were equal under T's own
// equality within the same interner. Handles from different interners are
// never equal, even for equal values.
//
// The zero Handle references nothing; calling Value on it panics.
type Handle[T any] struct {
	val *T
	ent *entry[T]
}

// Value returns the interned value. The value is shared by every handle of
// this entry and must be treated as read-only.
func (h Handle[T]) Value() T { return *h.val }

// ID returns a process-unique identifier for the entry this handle
// references, assigned in allocation order. The zero handle has ID 0.
func (h Handle[T]) ID() uint64 {
	if h.ent == nil {
		return 0
	}
	return h.ent.id
}

// Compare orders handles by ID. It is a total order suitable for sorting
// and for ordered containers, and is consistent with ==, but carries no
// relation to any ordering T itself may have.
func (h Handle[T]) Compare(other Handle[T]) int {
	return cmp.Compare(h.ID(), other.ID())
}

// Downgrade returns a weak handle that does not keep the value alive.
func (h Handle[T]) Downgrade() WeakHandle[T] {
	return WeakHandle[T]{ent: h.ent}
}

func (h Handle[T]) String() string {
	if h.val == nil {
		return "<nil>"
	}
	return fmt.Sprint(*h.val)
}

// WeakHandle is a non-owning reference to an interned value. It does not
// keep the entry live: once every strong Handle is gone and a GC cycle has
// run, Upgrade fails.
type WeakHandle[T any] struct {
	ent *entry[T]
}

// Upgrade converts the weak handle back into a strong one. It reports
// false once the referenced entry is dead (or for the zero WeakHandle).
func (w WeakHandle[T]) Upgrade() (Handle[T], bool) {
	if w.ent == nil {
		return Handle[T]{}, false
	}
	p := w.ent.ref.Value()
	if p == nil {
		return Handle[T]{}, false
	}
	return Handle[T]{val: p, ent: w.ent}, true
}
