// Copyright 2026 The Internkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package intern deduplicates values of arbitrary, possibly mixed, types
// within a process. Equal values are stored once and referenced thereafter
// by a cheap, identity-comparable [Handle]; comparing two handles costs a
// struct comparison regardless of how expensive the underlying values are
// to compare.
//
// The package favours flexibility over raw speed: any comparable type can
// be thrown at an [Interner] and it will just work. Each distinct value
// type gets its own dedup table, created lazily on first use, so tables
// for unrelated types never contend with each other.
//
//	// Intern a value with the process-wide interner.
//	a := intern.Make("foo")
//	b := intern.Make("foo")
//	// a == b, and the comparison is two pointer compares.
//
//	// Or use an explicit instance for an isolated interning domain.
//	in := intern.New()
//	h := intern.Intern(in, "foo")
//
// Convenience helpers make working with lists easier. All three entry
// points below yield the same handle for the same logical sequence:
//
//	v1 := intern.MakeValues([]string{"bar", "quz", "quux"})
//	v2 := intern.MakeList([]intern.Handle[string]{
//		intern.Make("bar"), intern.Make("quz"), intern.Make("quux"),
//	})
//	v3 := intern.MakeBytesList([][]byte{
//		[]byte("bar"), []byte("quz"), []byte("quux"),
//	})
//
// Tables hold their entries weakly: an entry whose value no longer has any
// live handle becomes dead, but stays in its table as a tombstone until
// [Sweep] (or the per-type [SweepType] / [SweepFor]) removes it. Nothing is
// reclaimed implicitly, so a long-lived interner should be swept from time
// to time. Deadness is observed through weak pointers, which the garbage
// collector clears once the last handle is unreachable; a sweep that runs
// before the next GC cycle simply leaves the entry for a later sweep.
package intern
