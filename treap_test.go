// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build go1.23

package bimap

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
)

// newSeeded returns a map whose balancing priorities are reproducible.
func newSeeded(seed uint64) *Map[int, int] {
	m := New[int, int]()
	m.rand = rand.New(rand.NewPCG(seed, seed+1))
	return m
}

// check verifies every structural invariant of both trees:
// parent back-links, heap order on priorities, strict key order,
// and that each tree holds exactly m.Len() nodes.
func check(t *testing.T, m *Map[int, int]) {
	t.Helper()
	n := checkTree(t, &m.lt, func(x *node[int, int]) int { return x.lval })
	if n != m.Len() {
		t.Fatalf("left tree has %d nodes, Len() = %d", n, m.Len())
	}
	n = checkTree(t, &m.rt, func(x *node[int, int]) int { return x.rval })
	if n != m.Len() {
		t.Fatalf("right tree has %d nodes, Len() = %d", n, m.Len())
	}
}

func checkTree(t *testing.T, tr *tree[int, int], key func(*node[int, int]) int) int {
	t.Helper()
	k := tr.role
	var keys []int
	var walk func(x, p *node[int, int])
	walk = func(x, p *node[int, int]) {
		if x == nil {
			return
		}
		if x.link[k].parent != p {
			t.Fatalf("role %d: node %d has wrong parent link", k, key(x))
		}
		if p != tr.end() && x.link[k].pri > p.link[k].pri {
			t.Fatalf("role %d: node %d violates heap order", k, key(x))
		}
		if x.link[k].pri == 0 {
			t.Fatalf("role %d: node %d has sentinel priority", k, key(x))
		}
		walk(x.link[k].left, x)
		keys = append(keys, key(x))
		walk(x.link[k].right, x)
	}
	walk(tr.root(), tr.end())
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("role %d: keys out of order: %v", k, keys)
		}
	}
	return len(keys)
}

func TestPermutations(t *testing.T) {
	for range 10 {
		const N = 10
		m := newSeeded(rand.Uint64())
		lperm := rand.Perm(N)
		rperm := rand.Perm(N)
		pair := make([]int, N)
		for i, x := range lperm {
			if _, ok := m.Insert(x, rperm[i]); !ok {
				t.Fatalf("Insert(%d, %d) failed", x, rperm[i])
			}
			pair[x] = rperm[i]
			check(t, m)
		}

		if false { // print left treap
			var buf bytes.Buffer
			var walk func(x *node[int, int])
			walk = func(x *node[int, int]) {
				if x == nil {
					fmt.Fprintf(&buf, "nil")
					return
				}
				fmt.Fprintf(&buf, "(%d ", x.lval)
				walk(x.link[roleLeft].left)
				fmt.Fprintf(&buf, " ")
				walk(x.link[roleLeft].right)
				fmt.Fprintf(&buf, ")")
			}
			walk(m.lt.root())
			t.Logf("treap: %s", buf.String())
		}

		for i, x := range lperm {
			it := m.FindLeft(x)
			if !it.Ok() || it.Val() != rperm[i] {
				t.Errorf("FindLeft(%d).Val() = %v, %v, want %d, true", x, it.Val(), it.Ok(), rperm[i])
			}
			rit := m.FindRight(rperm[i])
			if !rit.Ok() || rit.Val() != x {
				t.Errorf("FindRight(%d).Val() = %v, %v, want %d, true", rperm[i], rit.Val(), rit.Ok(), x)
			}
		}

		var all []int
		for l, r := range m.AllLeft() {
			if r != pair[l] {
				t.Errorf("AllLeft() returned %d, %d want %d, %d", l, r, l, pair[l])
			}
			all = append(all, l)
			if len(all) > N+5 {
				break
			}
		}
		if !match(all, 0, N-1) {
			t.Errorf("AllLeft() = %v, want 0..%d", all, N-1)
		}

		all = all[:0]
		for r := range m.AllRight() {
			all = append(all, r)
			if len(all) > N+5 {
				break
			}
		}
		if !match(all, 0, N-1) {
			t.Errorf("AllRight() = %v, want 0..%d", all, N-1)
		}

		for i, x := range lperm {
			if !m.EraseLeftKey(x) {
				t.Fatalf("EraseLeftKey(%d) = false, want true", x)
			}
			check(t, m)
			var list []int
			for l := range m.AllLeft() {
				list = append(list, l)
			}
			want := slices.Clone(lperm[i+1:])
			slices.Sort(want)
			if !slices.Equal(list, want) {
				t.Errorf("after erasing %v, AllLeft() = %v, want %v", lperm[:i+1], list, want)
			}
		}
	}
}

func TestBounds(t *testing.T) {
	const N = 10
	m := newSeeded(1)
	for _, x := range rand.Perm(N) {
		m.Insert(2*x, 2*x+1) // left keys 0,2,..,18; right keys 1,3,..,19
	}
	for key := -1; key <= 2*N; key++ {
		lb := m.LowerBoundLeft(key)
		want, wantOK := 0, false
		for x := 0; x < 2*N; x += 2 {
			if x >= key {
				want, wantOK = x, true
				break
			}
		}
		if lb.Ok() != wantOK || (wantOK && lb.Key() != want) {
			t.Errorf("LowerBoundLeft(%d) = %v, %v, want %d, %v", key, lb.Key(), lb.Ok(), want, wantOK)
		}

		ub := m.UpperBoundLeft(key)
		want, wantOK = 0, false
		for x := 0; x < 2*N; x += 2 {
			if x > key {
				want, wantOK = x, true
				break
			}
		}
		if ub.Ok() != wantOK || (wantOK && ub.Key() != want) {
			t.Errorf("UpperBoundLeft(%d) = %v, %v, want %d, %v", key, ub.Key(), ub.Ok(), want, wantOK)
		}
		check(t, m) // bound queries must not change the logical tree
	}
	for key := -1; key <= 2*N; key++ {
		lb := m.LowerBoundRight(key)
		want, wantOK := 0, false
		for x := 1; x < 2*N; x += 2 {
			if x >= key {
				want, wantOK = x, true
				break
			}
		}
		if lb.Ok() != wantOK || (wantOK && lb.Key() != want) {
			t.Errorf("LowerBoundRight(%d) = %v, %v, want %d, %v", key, lb.Key(), lb.Ok(), want, wantOK)
		}
	}
}

func TestEraseSuccessor(t *testing.T) {
	const N = 20
	for _, victim := range rand.Perm(N) {
		m := newSeeded(uint64(victim) + 1)
		for _, x := range rand.Perm(N) {
			m.Insert(x, x)
		}
		next := m.EraseLeft(m.FindLeft(victim))
		if victim == N-1 {
			if next != m.EndLeft() {
				t.Errorf("EraseLeft(%d) returned %v, want end", victim, next.Key())
			}
		} else if !next.Ok() || next.Key() != victim+1 {
			t.Errorf("EraseLeft(%d) returned Ok=%v, want key %d", victim, next.Ok(), victim+1)
		}
		check(t, m)
	}
}

func TestDepth(t *testing.T) {
	const N = 4096
	m := newSeeded(1)
	for x := range N {
		m.Insert(x, N-x)
	}
	// Expected depth is about 2·log₂ N ≈ 24.
	if d := m.lt.depth(); d > 64 {
		t.Errorf("left tree depth = %d after %d sequential inserts", d, N)
	}
	if d := m.rt.depth(); d > 64 {
		t.Errorf("right tree depth = %d after %d sequential inserts", d, N)
	}
}

func match(xs []int, lo, hi int) bool {
	if len(xs) != hi+1-lo {
		return false
	}
	for i, x := range xs {
		if x != lo+i {
			return false
		}
	}
	return true
}
