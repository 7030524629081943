// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package iterate adapts a matrix to Go range loops.
//
// Iterate yields a pointer to each element in row-major order. Enumerate
// additionally yields the element's column (X) and row (Y):
//
//	for e := range iterate.Enumerate[uint8](m).All() {
//	    fmt.Println(e.X, e.Y, *e.Val)
//	}
//
// If E does not match the matrix's DataType, a warning is logged and the
// memory is reinterpreted as E. Use IterateStrict or EnumerateStrict to get
// an error instead.
package iterate

import (
	"github.com/born-ml/matkit/internal/iterate"
	"github.com/born-ml/matkit/mat"
)

// Iterable is a range-able view over a matrix's elements.
type Iterable[E mat.Element] = iterate.Iterable[E]

// Iterator is a cursor into an Iterable.
type Iterator[E mat.Element] = iterate.Iterator[E]

// Enumeration is one element together with its coordinates.
type Enumeration[E mat.Element] = iterate.Enumeration[E]

// Enumerable is a range-able view yielding Enumerations.
type Enumerable[E mat.Element] = iterate.Enumerable[E]

// EnumerationIterator is a cursor into an Enumerable.
type EnumerationIterator[E mat.Element] = iterate.EnumerationIterator[E]

// Iterate wraps m for element iteration.
//
// Example:
//
//	for p := range iterate.Iterate[float32](m).All() {
//	    *p *= 2
//	}
func Iterate[E mat.Element](m *mat.Matrix) *Iterable[E] {
	return iterate.Iterate[E](m)
}

// IterateStrict is Iterate but fails on a type mismatch.
func IterateStrict[E mat.Element](m *mat.Matrix) (*Iterable[E], error) {
	return iterate.IterateStrict[E](m)
}

// Enumerate wraps m for coordinate-aware iteration.
func Enumerate[E mat.Element](m *mat.Matrix) *Enumerable[E] {
	return iterate.Enumerate[E](m)
}

// EnumerateStrict is Enumerate but fails on a type mismatch.
func EnumerateStrict[E mat.Element](m *mat.Matrix) (*Enumerable[E], error) {
	return iterate.EnumerateStrict[E](m)
}
