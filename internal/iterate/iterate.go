// Package iterate adapts matrices to Go's range-over-func loops.
//
// Iterate wraps a matrix so its elements can be visited (and modified) in
// row-major order:
//
//	for v := range iterate.Iterate[uint8](m).All() {
//	    *v = 255 - *v
//	}
//
// Enumerate does the same but also yields each element's coordinates:
//
//	for e := range iterate.Enumerate[float32](m).All() {
//	    fmt.Printf("%d %d %f\n", e.X, e.Y, *e.Val)
//	}
//
// Both entry points compare E with the matrix's runtime type. A mismatch is
// logged as a warning and iteration proceeds over reinterpreted memory; use
// IterateStrict or EnumerateStrict to get an error instead.
package iterate

import (
	"iter"

	"github.com/born-ml/matkit/internal/check"
	"github.com/born-ml/matkit/internal/mat"
)

// Iterable exposes Begin/End positions over a borrowed matrix.
type Iterable[E mat.Element] struct {
	m *mat.Matrix
}

// Iterator is a position within an Iterable.
type Iterator[E mat.Element] struct {
	it mat.Iterator[E]
}

// Next advances to the next element in storage order.
func (p *Iterator[E]) Next() {
	p.it.Next()
}

// Get returns a pointer to the current element. Writes through it modify the matrix.
func (p Iterator[E]) Get() *E {
	return p.it.Ptr()
}

// Equal reports whether p and other are at the same storage position.
func (p Iterator[E]) Equal(other Iterator[E]) bool {
	return p.it.Equal(other.it)
}

// Iterate returns an Iterable over m's elements as E.
// A warning is logged if E is not m's element type.
func Iterate[E mat.Element](m *mat.Matrix) *Iterable[E] {
	check.TypeMatches(nil, "iterable", mat.DataTypeOf[E](), m.Type())
	return &Iterable[E]{m: m}
}

// IterateStrict is Iterate with the type check enforced.
func IterateStrict[E mat.Element](m *mat.Matrix) (*Iterable[E], error) {
	if err := check.Strict("iterable", mat.DataTypeOf[E](), m.Type()); err != nil {
		return nil, err
	}
	return &Iterable[E]{m: m}, nil
}

// Matrix returns the wrapped matrix.
func (v *Iterable[E]) Matrix() *mat.Matrix {
	return v.m
}

// Begin returns the position of the first element.
func (v *Iterable[E]) Begin() Iterator[E] {
	return Iterator[E]{it: mat.Begin[E](v.m)}
}

// End returns the position one past the last element.
func (v *Iterable[E]) End() Iterator[E] {
	return Iterator[E]{it: mat.End[E](v.m)}
}

// All returns a sequence of pointers to every element in row-major order.
func (v *Iterable[E]) All() iter.Seq[*E] {
	return func(yield func(*E) bool) {
		for p, end := v.Begin(), v.End(); !p.Equal(end); p.Next() {
			if !yield(p.Get()) {
				return
			}
		}
	}
}

// Len returns the number of elements visited between Begin and End.
func (v *Iterable[E]) Len() int {
	return mat.Len[E](v.m)
}
