// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bimap

// Iterators are positions in one of a Map's two orderings. They are small
// values, compared with ==, and remain valid until the association they
// point at is erased. The end position of each ordering is a real position:
// one past the maximum, reachable by Next from the maximum, and its Prev is
// the maximum.
//
// Key, Val, Next, and Prev must only be called on positions for which Ok
// reports true, except that Prev of the end position yields the maximum.

// A LeftIter is a position in a Map's left-value ordering.
type LeftIter[L, R any] struct {
	x *node[L, R]
}

// Ok reports whether the position holds an association
// (it is not the end position and not invalid).
func (it LeftIter[L, R]) Ok() bool {
	return it.x != nil && it.x.link[roleLeft].pri != 0
}

// Key returns the left value at the position.
func (it LeftIter[L, R]) Key() L {
	return it.x.lval
}

// Val returns the right value paired with the left value at the position.
func (it LeftIter[L, R]) Val() R {
	return it.x.rval
}

// Next returns the position of the next left value in increasing order,
// or the end position after the maximum.
func (it LeftIter[L, R]) Next() LeftIter[L, R] {
	return LeftIter[L, R]{it.x.next(roleLeft)}
}

// Prev returns the position of the previous left value in increasing
// order. Prev of the end position is the maximum; Prev of the minimum is
// an invalid position.
func (it LeftIter[L, R]) Prev() LeftIter[L, R] {
	return LeftIter[L, R]{it.x.prev(roleLeft)}
}

// Flip returns the position of the same association in the right-value
// ordering. It is O(1): both positions are the same record viewed through
// the other role's linkage. Flip of the end position is not meaningful.
func (it LeftIter[L, R]) Flip() RightIter[L, R] {
	return RightIter[L, R]{it.x}
}

// A RightIter is a position in a Map's right-value ordering.
type RightIter[L, R any] struct {
	x *node[L, R]
}

// Ok reports whether the position holds an association.
func (it RightIter[L, R]) Ok() bool {
	return it.x != nil && it.x.link[roleRight].pri != 0
}

// Key returns the right value at the position.
func (it RightIter[L, R]) Key() R {
	return it.x.rval
}

// Val returns the left value paired with the right value at the position.
func (it RightIter[L, R]) Val() L {
	return it.x.lval
}

// Next returns the position of the next right value in increasing order,
// or the end position after the maximum.
func (it RightIter[L, R]) Next() RightIter[L, R] {
	return RightIter[L, R]{it.x.next(roleRight)}
}

// Prev returns the position of the previous right value in increasing
// order. Prev of the end position is the maximum; Prev of the minimum is
// an invalid position.
func (it RightIter[L, R]) Prev() RightIter[L, R] {
	return RightIter[L, R]{it.x.prev(roleRight)}
}

// Flip returns the position of the same association in the left-value
// ordering, in O(1). Flip of the end position is not meaningful.
func (it RightIter[L, R]) Flip() LeftIter[L, R] {
	return LeftIter[L, R]{it.x}
}
