// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bimap implements an in-memory bidirectional ordered map.
//
// A [Map][L, R] is a bijection between left values and right values:
// every left value is paired with exactly one right value and vice versa.
// Both orderings are maintained live, so the map can be searched, bounded,
// and iterated from either side in O(log n) expected time. Each pair is
// stored once, as a single record that is simultaneously a member of two
// balanced trees; [LeftIter.Flip] and [RightIter.Flip] move between the two
// positions of a record in O(1).
//
// A Map is not safe for concurrent use and must not be copied by value
// (use [Map.Clone]).
package bimap

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"
)

// ErrNotFound is returned by [Map.AtLeft] and [Map.AtRight]
// when the key has no association.
var ErrNotFound = errors.New("bimap: key not found")

// A Map is a bijective mapping between L values and R values,
// ordered on both sides.
type Map[L, R any] struct {
	cmpl func(L, L) int
	cmpr func(R, R) int
	rand *rand.Rand
	size int
	lt   tree[L, R]
	rt   tree[L, R]
}

// New returns an empty Map ordering both sides by their standard Go ordering.
func New[L, R cmp.Ordered]() *Map[L, R] {
	return NewFunc[L, R](cmp.Compare[L], cmp.Compare[R])
}

// NewFunc returns an empty Map ordering left values by cmpLeft and right
// values by cmpRight. Each comparator must define a total order and return
// a negative, zero, or positive result as in [cmp.Compare].
func NewFunc[L, R any](cmpLeft func(L, L) int, cmpRight func(R, R) int) *Map[L, R] {
	m := &Map[L, R]{
		cmpl: cmpLeft,
		cmpr: cmpRight,
		rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	m.lt.role = roleLeft
	m.rt.role = roleRight
	return m
}

// probeLeft returns a closure comparing key against a node's left value.
func (m *Map[L, R]) probeLeft(key L) func(*node[L, R]) int {
	return func(x *node[L, R]) int { return m.cmpl(key, x.lval) }
}

func (m *Map[L, R]) probeRight(key R) func(*node[L, R]) int {
	return func(x *node[L, R]) int { return m.cmpr(key, x.rval) }
}

// Len returns the number of associations in the map.
func (m *Map[L, R]) Len() int {
	return m.size
}

// IsEmpty reports whether the map has no associations.
func (m *Map[L, R]) IsEmpty() bool {
	return m.size == 0
}

// Insert adds the association left↔right and returns its left position.
// If left already has a partner or right already has one, neither tree is
// touched and Insert returns the end position and false.
func (m *Map[L, R]) Insert(left L, right R) (LeftIter[L, R], bool) {
	if m.lt.find(m.probeLeft(left)) != m.lt.end() || m.rt.find(m.probeRight(right)) != m.rt.end() {
		return m.EndLeft(), false
	}
	x := &node[L, R]{lval: left, rval: right}
	x.link[roleLeft].pri = m.rand.Uint64() | 1
	x.link[roleRight].pri = m.rand.Uint64() | 1
	m.lt.insert(x, func(y *node[L, R]) bool { return m.cmpl(y.lval, left) < 0 })
	m.rt.insert(x, func(y *node[L, R]) bool { return m.cmpr(y.rval, right) < 0 })
	m.size++
	return LeftIter[L, R]{x}, true
}

// EraseLeft removes the association at it from both trees and returns the
// next left position. Erasing an invalid position is a no-op.
func (m *Map[L, R]) EraseLeft(it LeftIter[L, R]) LeftIter[L, R] {
	if !it.Ok() {
		return it
	}
	next, _ := m.lt.remove(m.probeLeft(it.x.lval))
	m.rt.remove(m.probeRight(it.x.rval))
	m.size--
	return LeftIter[L, R]{next}
}

// EraseRight removes the association at it from both trees and returns the
// next right position. Erasing an invalid position is a no-op.
func (m *Map[L, R]) EraseRight(it RightIter[L, R]) RightIter[L, R] {
	if !it.Ok() {
		return it
	}
	next, _ := m.rt.remove(m.probeRight(it.x.rval))
	m.lt.remove(m.probeLeft(it.x.lval))
	m.size--
	return RightIter[L, R]{next}
}

// EraseLeftKey removes the association whose left value is key
// and reports whether one existed.
func (m *Map[L, R]) EraseLeftKey(key L) bool {
	it := m.FindLeft(key)
	if !it.Ok() {
		return false
	}
	m.EraseLeft(it)
	return true
}

// EraseRightKey removes the association whose right value is key
// and reports whether one existed.
func (m *Map[L, R]) EraseRightKey(key R) bool {
	it := m.FindRight(key)
	if !it.Ok() {
		return false
	}
	m.EraseRight(it)
	return true
}

// EraseLeftRange removes every association in the half-open left-order
// range [first, last) and returns last.
func (m *Map[L, R]) EraseLeftRange(first, last LeftIter[L, R]) LeftIter[L, R] {
	for first != last {
		first = m.EraseLeft(first)
	}
	return last
}

// EraseRightRange removes every association in the half-open right-order
// range [first, last) and returns last.
func (m *Map[L, R]) EraseRightRange(first, last RightIter[L, R]) RightIter[L, R] {
	for first != last {
		first = m.EraseRight(first)
	}
	return last
}

// FindLeft returns the position of the association whose left value is key,
// or the end position if there is none.
func (m *Map[L, R]) FindLeft(key L) LeftIter[L, R] {
	return LeftIter[L, R]{m.lt.find(m.probeLeft(key))}
}

// FindRight returns the position of the association whose right value is
// key, or the end position if there is none.
func (m *Map[L, R]) FindRight(key R) RightIter[L, R] {
	return RightIter[L, R]{m.rt.find(m.probeRight(key))}
}

// AtLeft returns the right value paired with key.
// If key has no association, it returns an error wrapping [ErrNotFound].
func (m *Map[L, R]) AtLeft(key L) (R, error) {
	it := m.FindLeft(key)
	if !it.Ok() {
		var zero R
		return zero, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	return it.x.rval, nil
}

// AtRight returns the left value paired with key.
// If key has no association, it returns an error wrapping [ErrNotFound].
func (m *Map[L, R]) AtRight(key R) (L, error) {
	it := m.FindRight(key)
	if !it.Ok() {
		var zero L
		return zero, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	return it.x.lval, nil
}

// AtLeftOrDefault returns the right value paired with key, inserting an
// association with R's zero value if key has none. If the zero value is
// already paired with some other left value, that association is evicted
// first: its left value loses its partner. Every call therefore returns a
// value that is present in the map when it returns.
func (m *Map[L, R]) AtLeftOrDefault(key L) R {
	if it := m.FindLeft(key); it.Ok() {
		return it.x.rval
	}
	var dflt R
	if it := m.FindRight(dflt); it.Ok() {
		m.EraseRight(it)
	}
	m.Insert(key, dflt)
	return dflt
}

// AtRightOrDefault returns the left value paired with key, inserting an
// association with L's zero value if key has none. If the zero value is
// already paired with some other right value, that association is evicted
// first.
func (m *Map[L, R]) AtRightOrDefault(key R) L {
	if it := m.FindRight(key); it.Ok() {
		return it.x.lval
	}
	var dflt L
	if it := m.FindLeft(dflt); it.Ok() {
		m.EraseLeft(it)
	}
	m.Insert(dflt, key)
	return dflt
}

// LowerBoundLeft returns the first left position whose value is not less
// than key, or the end position.
func (m *Map[L, R]) LowerBoundLeft(key L) LeftIter[L, R] {
	return LeftIter[L, R]{m.lt.lowerBound(m.probeLeft(key))}
}

// UpperBoundLeft returns the first left position whose value is greater
// than key, or the end position.
func (m *Map[L, R]) UpperBoundLeft(key L) LeftIter[L, R] {
	return LeftIter[L, R]{m.lt.upperBound(m.probeLeft(key))}
}

// LowerBoundRight returns the first right position whose value is not less
// than key, or the end position.
func (m *Map[L, R]) LowerBoundRight(key R) RightIter[L, R] {
	return RightIter[L, R]{m.rt.lowerBound(m.probeRight(key))}
}

// UpperBoundRight returns the first right position whose value is greater
// than key, or the end position.
func (m *Map[L, R]) UpperBoundRight(key R) RightIter[L, R] {
	return RightIter[L, R]{m.rt.upperBound(m.probeRight(key))}
}

// BeginLeft returns the position of the least left value,
// or the end position if the map is empty.
func (m *Map[L, R]) BeginLeft() LeftIter[L, R] {
	return LeftIter[L, R]{m.lt.begin()}
}

// EndLeft returns the past-the-end left position.
func (m *Map[L, R]) EndLeft() LeftIter[L, R] {
	return LeftIter[L, R]{m.lt.end()}
}

// BeginRight returns the position of the least right value,
// or the end position if the map is empty.
func (m *Map[L, R]) BeginRight() RightIter[L, R] {
	return RightIter[L, R]{m.rt.begin()}
}

// EndRight returns the past-the-end right position.
func (m *Map[L, R]) EndRight() RightIter[L, R] {
	return RightIter[L, R]{m.rt.end()}
}

// AllLeft returns an iterator over the map in increasing left-value order.
// The map must not be modified during the iteration.
func (m *Map[L, R]) AllLeft() iter.Seq2[L, R] {
	return func(yield func(L, R) bool) {
		for x := m.lt.begin(); x != m.lt.end(); x = x.next(roleLeft) {
			if !yield(x.lval, x.rval) {
				return
			}
		}
	}
}

// AllRight returns an iterator over the map in increasing right-value order.
// The map must not be modified during the iteration.
func (m *Map[L, R]) AllRight() iter.Seq2[R, L] {
	return func(yield func(R, L) bool) {
		for x := m.rt.begin(); x != m.rt.end(); x = x.next(roleRight) {
			if !yield(x.rval, x.lval) {
				return
			}
		}
	}
}

// Clear removes every association.
func (m *Map[L, R]) Clear() {
	m.EraseLeftRange(m.BeginLeft(), m.EndLeft())
}

// Swap exchanges the contents of m and o, comparators included.
func (m *Map[L, R]) Swap(o *Map[L, R]) {
	m.cmpl, o.cmpl = o.cmpl, m.cmpl
	m.cmpr, o.cmpr = o.cmpr, m.cmpr
	m.rand, o.rand = o.rand, m.rand
	m.size, o.size = o.size, m.size
	m.lt.swap(&o.lt)
	m.rt.swap(&o.rt)
}

// Equal reports whether m and o hold the same associations: equal size and,
// walking both in left-value order, every corresponding pair compares equal
// under m's comparators. For a bijective map this is set equality of pairs.
func (m *Map[L, R]) Equal(o *Map[L, R]) bool {
	if m.size != o.size {
		return false
	}
	x, y := m.lt.begin(), o.lt.begin()
	for x != m.lt.end() && y != o.lt.end() {
		if m.cmpl(x.lval, y.lval) != 0 || m.cmpr(x.rval, y.rval) != 0 {
			return false
		}
		x, y = x.next(roleLeft), y.next(roleLeft)
	}
	return true
}

// Clone returns a deep copy of m with independent storage:
// mutating the clone does not affect m.
func (m *Map[L, R]) Clone() *Map[L, R] {
	c := NewFunc[L, R](m.cmpl, m.cmpr)
	for x := m.lt.begin(); x != m.lt.end(); x = x.next(roleLeft) {
		c.Insert(x.lval, x.rval)
	}
	return c
}
