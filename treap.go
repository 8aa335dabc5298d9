// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bimap

// The implementation is a treap. See:
// https://en.wikipedia.org/wiki/Treap
// https://faculty.washington.edu/aragon/pubs/rst89.pdf
//
// One node is a member of two treaps at once: the left tree, ordered by the
// pair's left value, and the right tree, ordered by its right value. Each
// membership has its own parent/left/right linkage and its own priority,
// selected by a role index, so relocating a node in one tree never disturbs
// the other.

// Roles index a node's linkage sub-structures.
const (
	roleLeft = iota
	roleRight
)

// A treeLink is one tree membership of a node: the structural fields the
// tree of that role is allowed to touch.
type treeLink[L, R any] struct {
	parent *node[L, R]
	left   *node[L, R]
	right  *node[L, R]
	pri    uint64
}

// A node is one left↔right association. It is allocated by Map.Insert,
// linked into both trees, and unlinked from both before it is released.
// Real nodes have nonzero priorities in both roles; a sentinel head node
// keeps priority 0, which is how iterators recognize the end position.
type node[L, R any] struct {
	lval L
	rval R
	link [2]treeLink[L, R]
}

// A tree is one of the two orderings of a Map. It holds no values of its
// own: head is a sentinel whose left child (in this tree's role) is the
// root, and whose address is the end position. Key decisions are delegated
// to probe closures built by the Map from its comparators, so the tree
// itself is ordering-agnostic.
type tree[L, R any] struct {
	role int
	head node[L, R]
}

func (t *tree[L, R]) root() *node[L, R] {
	return t.head.link[t.role].left
}

func (t *tree[L, R]) end() *node[L, R] {
	return &t.head
}

func (t *tree[L, R]) setRoot(x *node[L, R]) {
	t.head.link[t.role].left = x
	if x != nil {
		x.link[t.role].parent = &t.head
	}
}

// split partitions the subtree x into the nodes for which less reports true
// and the rest, preserving order and heap shape in both halves.
// The returned roots have nil parents.
func (t *tree[L, R]) split(x *node[L, R], less func(*node[L, R]) bool) (lo, hi *node[L, R]) {
	if x == nil {
		return nil, nil
	}
	k := t.role
	if less(x) {
		lo, hi = t.split(x.link[k].right, less)
		x.link[k].right = lo
		if lo != nil {
			lo.link[k].parent = x
		}
		if hi != nil {
			hi.link[k].parent = nil
		}
		return x, hi
	}
	lo, hi = t.split(x.link[k].left, less)
	x.link[k].left = hi
	if hi != nil {
		hi.link[k].parent = x
	}
	if lo != nil {
		lo.link[k].parent = nil
	}
	return lo, x
}

// merge joins two trees where every key of a precedes every key of b,
// making the higher-priority root the parent at each step.
func (t *tree[L, R]) merge(a, b *node[L, R]) *node[L, R] {
	k := t.role
	if a == nil {
		if b != nil {
			b.link[k].parent = nil
		}
		return b
	}
	if b == nil {
		a.link[k].parent = nil
		return a
	}
	if a.link[k].pri > b.link[k].pri {
		r := t.merge(a.link[k].right, b)
		a.link[k].right = r
		r.link[k].parent = a
		return a
	}
	l := t.merge(a, b.link[k].left)
	b.link[k].left = l
	l.link[k].parent = b
	return b
}

// insert links x into the tree. less must report whether a resident node's
// key is strictly less than x's key; the caller guarantees no resident key
// compares equal. x's linkage for this role must be fresh apart from its
// priority.
func (t *tree[L, R]) insert(x *node[L, R], less func(*node[L, R]) bool) {
	lo, hi := t.split(t.root(), less)
	t.setRoot(t.merge(t.merge(lo, x), hi))
}

// remove unlinks the node comparing equal under cmp, if any, and reports
// whether one was found. next is the removed node's in-order successor
// (the end sentinel if it was the maximum); on a miss the tree is restored
// untouched and next is nil.
func (t *tree[L, R]) remove(cmp func(*node[L, R]) int) (next *node[L, R], ok bool) {
	k := t.role
	lo, hi := t.split(t.root(), func(x *node[L, R]) bool { return cmp(x) > 0 })
	rm := hi
	for rm != nil && rm.link[k].left != nil {
		rm = rm.link[k].left
	}
	if rm == nil || cmp(rm) != 0 {
		t.setRoot(t.merge(lo, hi))
		return nil, false
	}
	if rm == hi {
		hi = rm.link[k].right
	} else {
		rm.link[k].parent.link[k].left = rm.link[k].right
		next = rm.link[k].parent
	}
	if r := rm.link[k].right; r != nil {
		r.link[k].parent = rm.link[k].parent
		next = r.leftmost(k)
	}
	rm.link[k] = treeLink[L, R]{}
	t.setRoot(t.merge(lo, hi))
	if next == nil {
		next = &t.head
	}
	return next, true
}

// find descends to the node comparing equal under cmp,
// or the end sentinel if there is none.
func (t *tree[L, R]) find(cmp func(*node[L, R]) int) *node[L, R] {
	k := t.role
	x := t.root()
	for x != nil {
		c := cmp(x)
		if c == 0 {
			return x
		}
		if c < 0 {
			x = x.link[k].left
		} else {
			x = x.link[k].right
		}
	}
	return &t.head
}

// lowerBound returns the first node whose key is not less than the probe
// key, or the end sentinel. It splits at the key and remerges, so the
// logical tree is unchanged even though its shape may not be.
func (t *tree[L, R]) lowerBound(cmp func(*node[L, R]) int) *node[L, R] {
	lo, hi := t.split(t.root(), func(x *node[L, R]) bool { return cmp(x) > 0 })
	lb := hi
	k := t.role
	for lb != nil && lb.link[k].left != nil {
		lb = lb.link[k].left
	}
	t.setRoot(t.merge(lo, hi))
	if lb == nil {
		return &t.head
	}
	return lb
}

// upperBound returns the first node whose key is greater than the probe
// key, or the end sentinel.
func (t *tree[L, R]) upperBound(cmp func(*node[L, R]) int) *node[L, R] {
	ub := t.lowerBound(cmp)
	if ub != &t.head && cmp(ub) == 0 {
		ub = ub.next(t.role)
	}
	return ub
}

// begin returns the minimum node, or the end sentinel if the tree is empty.
func (t *tree[L, R]) begin() *node[L, R] {
	x := t.root()
	if x == nil {
		return &t.head
	}
	return x.leftmost(t.role)
}

// swap exchanges the contents of two trees of the same role,
// reanchoring each root to its own sentinel.
func (t *tree[L, R]) swap(o *tree[L, R]) {
	a, b := t.root(), o.root()
	t.setRoot(b)
	o.setRoot(a)
}

func (t *tree[L, R]) depth() int {
	return t.root().depth(t.role)
}

func (x *node[L, R]) depth(k int) int {
	if x == nil {
		return 0
	}
	return 1 + max(x.link[k].left.depth(k), x.link[k].right.depth(k))
}

func (x *node[L, R]) leftmost(k int) *node[L, R] {
	for x.link[k].left != nil {
		x = x.link[k].left
	}
	return x
}

func (x *node[L, R]) rightmost(k int) *node[L, R] {
	for x.link[k].right != nil {
		x = x.link[k].right
	}
	return x
}

// next walks to x's in-order successor using parent pointers only.
// The successor of the maximum is the sentinel; the sentinel's successor
// is itself (there is nothing past the end).
func (x *node[L, R]) next(k int) *node[L, R] {
	if x.link[k].parent == nil {
		return x
	}
	if r := x.link[k].right; r != nil {
		return r.leftmost(k)
	}
	p := x.link[k].parent
	for p != nil && x == p.link[k].right {
		x, p = p, p.link[k].parent
	}
	return p
}

// prev is symmetric to next. The predecessor of the sentinel is the
// maximum node; stepping before the minimum yields nil.
func (x *node[L, R]) prev(k int) *node[L, R] {
	if l := x.link[k].left; l != nil {
		return l.rightmost(k)
	}
	p := x.link[k].parent
	for p != nil && x == p.link[k].left {
		x, p = p, p.link[k].parent
	}
	return p
}
