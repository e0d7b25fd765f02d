// Copyright 2026 The Internkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import (
	"encoding/binary"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// List is the value type of an interned ordered sequence of handles.
// A Handle[List[T]] identifies a sequence by the identities of its
// elements: two sequences are the same value iff they hold the same
// handles in the same order.
type List[T any] = []Handle[T]

// Sequence hashing streams entry ids through a pooled digest.
var digestPool = sync.Pool{
	New: func() any { return xxhash.New() },
}

func hashList[T any](hs List[T]) uint64 {
	d := digestPool.Get().(*xxhash.Digest)
	d.Reset()
	var buf [8]byte
	for _, h := range hs {
		binary.BigEndian.PutUint64(buf[:], h.ID())
		d.Write(buf[:])
	}
	sum := d.Sum64()
	digestPool.Put(d)
	return sum
}

func newListTable[T any]() *table[List[T]] { return newTable(hashList[T]) }

func listIntern[T any](t *table[List[T]], hs List[T]) Handle[List[T]] {
	h := t.hash(hs)
	return t.intern(h,
		func(p *List[T]) bool { return slices.Equal(*p, hs) },
		func() *List[T] {
			owned := slices.Clone(hs)
			return &owned
		})
}

// InternList interns a sequence of already-interned handles as a value of
// its own. The input slice is copied on first insertion; the slice
// returned by the handle's Value must not be modified.
func InternList[T any](in *Interner, hs List[T]) Handle[List[T]] {
	return listIntern(tableOf(in, newListTable[T]), hs)
}

// InternValues interns every element of vs, then the resulting sequence of
// handles. Equivalent to InternList over per-element Intern calls.
func InternValues[T comparable](in *Interner, vs []T) Handle[List[T]] {
	hs := make(List[T], len(vs))
	for i, v := range vs {
		hs[i] = Intern(in, v)
	}
	return InternList(in, hs)
}

// InternBorrowedValues interns every borrowed element without forcing an
// owned copy of already-interned elements, then interns the sequence.
func InternBorrowedValues[B any, T comparable](in *Interner, br Borrow[B, T], bs []B) Handle[List[T]] {
	hs := make(List[T], len(bs))
	for i, b := range bs {
		hs[i] = InternBorrowed(in, br, b)
	}
	return InternList(in, hs)
}

// InternBytesList interns a sequence of strings from their byte forms.
func InternBytesList(in *Interner, bs [][]byte) Handle[List[string]] {
	return InternBorrowedValues(in, Bytes, bs)
}

// Append interns the sequence h followed by suffix, in the same interner
// that produced h. h must not be the zero handle.
func Append[T any](h Handle[List[T]], suffix ...Handle[T]) Handle[List[T]] {
	cur := h.Value()
	next := make(List[T], 0, len(cur)+len(suffix))
	next = append(next, cur...)
	next = append(next, suffix...)
	return listIntern(h.ent.owner, next)
}

// Prepend interns the sequence prefix followed by h, in the same interner
// that produced h. h must not be the zero handle.
func Prepend[T any](h Handle[List[T]], prefix ...Handle[T]) Handle[List[T]] {
	cur := h.Value()
	next := make(List[T], 0, len(prefix)+len(cur))
	next = append(next, prefix...)
	next = append(next, cur...)
	return listIntern(h.ent.owner, next)
}

// Values resolves a slice of handles to their underlying values.
func Values[T any](hs []Handle[T]) []T {
	vs := make([]T, len(hs))
	for i, h := range hs {
		vs[i] = h.Value()
	}
	return vs
}

// ListValues fully resolves an interned sequence to its element values.
func ListValues[T any](h Handle[List[T]]) []T {
	return Values(h.Value())
}
