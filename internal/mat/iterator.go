package mat

import "unsafe"

// Iterator walks a matrix's elements in storage (row-major) order.
//
// It advances one matrix element (ElemSize bytes) at a time and skips row
// padding. When E is not the matrix's element type, each position is read as
// an E starting at that element's first byte. Positions where an E would run
// past the end of the row are not visited, so a row yields Cols() positions
// unless E is larger than the matrix element.
type Iterator[E Element] struct {
	m     *Matrix
	row   int
	off   int // Byte offset within the current row
	step  int // Matrix element size
	limit int // Row offset of the first position not visited
}

func newIterator[E Element](m *Matrix) Iterator[E] {
	step := m.dtype.Size()
	return Iterator[E]{
		m:     m,
		step:  step,
		limit: PerRow[E](m) * step,
	}
}

// PerRow returns the number of elements an Iterator[E] visits in each row
// of m. It equals Cols() unless E is larger than m's element type.
func PerRow[E Element](m *Matrix) int {
	size, step := sizeOf[E](), m.dtype.Size()
	if size <= step {
		return m.cols
	}
	rowBytes := m.cols * step
	if rowBytes < size {
		return 0
	}
	return (rowBytes-size)/step + 1
}

// Len returns the number of elements an Iterator[E] visits in m.
func Len[E Element](m *Matrix) int {
	return m.rows * PerRow[E](m)
}

// Begin returns an iterator at the first element of m.
// For an empty matrix Begin equals End.
func Begin[E Element](m *Matrix) Iterator[E] {
	it := newIterator[E](m)
	if it.limit == 0 {
		it.row = m.rows
	}
	return it
}

// End returns the iterator one past the last element of m.
func End[E Element](m *Matrix) Iterator[E] {
	it := newIterator[E](m)
	it.row = m.rows
	return it
}

// Next advances to the following element.
func (it *Iterator[E]) Next() {
	it.off += it.step
	if it.off >= it.limit {
		it.off = 0
		it.row++
	}
}

// Ptr returns a pointer to the current element.
// Panics when the iterator is at or past End.
func (it Iterator[E]) Ptr() *E {
	b := it.m.RowBytes(it.row)[it.off:]
	_ = b[sizeOf[E]()-1]
	//nolint:gosec // b holds at least sizeof(E) bytes
	return (*E)(unsafe.Pointer(&b[0]))
}

// Pos returns the column and row of the current element.
func (it Iterator[E]) Pos() (x, y int) {
	return it.off / it.step, it.row
}

// Equal reports whether both iterators point at the same position of the same matrix.
func (it Iterator[E]) Equal(other Iterator[E]) bool {
	return it.m == other.m && it.row == other.row && it.off == other.off
}
