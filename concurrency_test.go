// Copyright 2026 The Internkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/fortytw2/leaktest"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentInternConverges(t *testing.T) {
	defer leaktest.Check(t)()

	in := New()
	values := make([]string, 64)
	for i := range values {
		values[i] = fmt.Sprintf("conc-%d", i)
	}

	const workers = 8
	results := make([][]Handle[string], workers)

	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			hs := make([]Handle[string], len(values))
			for range 50 {
				for i, v := range values {
					hs[i] = Intern(in, v)
				}
			}
			results[w] = hs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	ref := results[0]
	for w := 1; w < workers; w++ {
		for i := range values {
			if results[w][i] != ref[i] {
				t.Fatalf("worker %d got a different handle for %q", w, values[i])
			}
		}
	}
	if got := Size[string](in); got != len(values) {
		t.Fatalf("expected %d entries, got %d", len(values), got)
	}
}

func TestConcurrentTableCreation(t *testing.T) {
	defer leaktest.Check(t)()

	type kindA string
	type kindB string
	type kindC struct{ N int }

	in := New()
	var g errgroup.Group
	for w := range 12 {
		g.Go(func() error {
			// First use of each type races table creation across workers.
			a := Intern(in, kindA(fmt.Sprintf("a-%d", w%3)))
			b := Intern(in, kindB(fmt.Sprintf("b-%d", w%3)))
			c := Intern(in, kindC{N: w % 3})
			if a != Intern(in, kindA(fmt.Sprintf("a-%d", w%3))) {
				return fmt.Errorf("kindA identity broken")
			}
			if b != Intern(in, kindB(fmt.Sprintf("b-%d", w%3))) {
				return fmt.Errorf("kindB identity broken")
			}
			if c != Intern(in, kindC{N: w % 3}) {
				return fmt.Errorf("kindC identity broken")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if got := Size[kindA](in); got != 3 {
		t.Errorf("kindA table: expected 3 entries, got %d", got)
	}
	if got := Size[kindB](in); got != 3 {
		t.Errorf("kindB table: expected 3 entries, got %d", got)
	}
	if got := Size[kindC](in); got != 3 {
		t.Errorf("kindC table: expected 3 entries, got %d", got)
	}
}

func TestConcurrentSweepAndIntern(t *testing.T) {
	defer leaktest.Check(t)()

	in := New()
	held := make([]Handle[string], 16)
	for i := range held {
		held[i] = Intern(in, fmt.Sprintf("churn-held-%d", i))
	}

	var g errgroup.Group
	// Churn: keep creating transient entries.
	for w := range 4 {
		g.Go(func() error {
			for i := range 500 {
				h := Intern(in, fmt.Sprintf("churn-%d-%d", w, i))
				_ = h.Value()
			}
			return nil
		})
	}
	// Sweep continuously while the churn runs.
	g.Go(func() error {
		for range 50 {
			runtime.GC()
			in.Sweep()
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	// Live handles survived every sweep.
	for i, h := range held {
		if Intern(in, fmt.Sprintf("churn-held-%d", i)) != h {
			t.Fatalf("held entry %d lost identity under concurrent sweep", i)
		}
	}

	collect()
	in.Sweep()
	if got := Size[string](in); got != len(held) {
		t.Fatalf("expected only the %d held entries after final sweep, got %d", len(held), got)
	}
	runtime.KeepAlive(held)
}
