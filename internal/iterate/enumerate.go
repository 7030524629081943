package iterate

import (
	"iter"

	"github.com/born-ml/matkit/internal/check"
	"github.com/born-ml/matkit/internal/mat"
)

// Enumeration is the record produced at each enumeration step.
type Enumeration[E mat.Element] struct {
	X   int // Column
	Y   int // Row
	Val *E  // Element at (X, Y); writes modify the matrix
}

// Enumerable exposes Begin/End positions that also track coordinates.
type Enumerable[E mat.Element] struct {
	m *mat.Matrix
}

// EnumerationIterator is a position within an Enumerable.
//
// The x and y fields are maintained alongside the native iterator and are
// not consulted by Equal.
type EnumerationIterator[E mat.Element] struct {
	x, y  int
	width int // Elements of E per row
	it    mat.Iterator[E]
}

// Next advances to the next element, wrapping x to 0 at the end of a row.
func (p *EnumerationIterator[E]) Next() {
	if p.x < p.width-1 {
		p.x++
	} else {
		p.x = 0
		p.y++
	}
	p.it.Next()
}

// Get returns the current coordinates and element.
func (p EnumerationIterator[E]) Get() Enumeration[E] {
	return Enumeration[E]{X: p.x, Y: p.y, Val: p.it.Ptr()}
}

// Equal compares storage positions only.
func (p EnumerationIterator[E]) Equal(other EnumerationIterator[E]) bool {
	return p.it.Equal(other.it)
}

// Enumerate returns an Enumerable over m's elements as E.
// A warning is logged if E is not m's element type.
func Enumerate[E mat.Element](m *mat.Matrix) *Enumerable[E] {
	check.TypeMatches(nil, "enumerable", mat.DataTypeOf[E](), m.Type())
	return &Enumerable[E]{m: m}
}

// EnumerateStrict is Enumerate with the type check enforced.
func EnumerateStrict[E mat.Element](m *mat.Matrix) (*Enumerable[E], error) {
	if err := check.Strict("enumerable", mat.DataTypeOf[E](), m.Type()); err != nil {
		return nil, err
	}
	return &Enumerable[E]{m: m}, nil
}

// Matrix returns the wrapped matrix.
func (v *Enumerable[E]) Matrix() *mat.Matrix {
	return v.m
}

// Begin returns the position of the first element, at (0, 0).
func (v *Enumerable[E]) Begin() EnumerationIterator[E] {
	return EnumerationIterator[E]{
		width: v.width(),
		it:    mat.Begin[E](v.m),
	}
}

// End returns the position one past the last element, at (cols, rows).
func (v *Enumerable[E]) End() EnumerationIterator[E] {
	return EnumerationIterator[E]{
		x:     v.m.Cols(),
		y:     v.m.Rows(),
		width: v.width(),
		it:    mat.End[E](v.m),
	}
}

// All returns a sequence of enumeration records in row-major order.
func (v *Enumerable[E]) All() iter.Seq[Enumeration[E]] {
	return func(yield func(Enumeration[E]) bool) {
		for p, end := v.Begin(), v.End(); !p.Equal(end); p.Next() {
			if !yield(p.Get()) {
				return
			}
		}
	}
}

// width is the number of columns a row yields: Cols(), or fewer when E is
// larger than the matrix element and the last columns cannot hold an E.
func (v *Enumerable[E]) width() int {
	return mat.PerRow[E](v.m)
}

// Len returns the number of records produced between Begin and End.
func (v *Enumerable[E]) Len() int {
	return mat.Len[E](v.m)
}
