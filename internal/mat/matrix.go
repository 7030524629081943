package mat

import (
	"fmt"
	"image"
	"sync/atomic"
)

// storage holds the bytes of one allocation. Every Matrix created from it by
// Clone or ROI holds one reference; the bytes are dropped when the count
// reaches zero, which the atomic counter makes happen exactly once.
type storage struct {
	data []byte
	refs atomic.Int32
}

func newStorage(size int) *storage {
	s := &storage{data: make([]byte, size)}
	s.refs.Store(1)
	return s
}

func (s *storage) retain() {
	s.refs.Add(1)
}

func (s *storage) drop() {
	if s.refs.Add(-1) == 0 {
		s.data = nil
	}
}

func (s *storage) shared() bool {
	return s.refs.Load() > 1
}

// Matrix is a dense 2D array of typed elements.
//
// Rows are stored Step() bytes apart. A freshly allocated matrix is
// continuous; views returned by ROI usually are not.
type Matrix struct {
	buffer *storage // Shared with clones and views
	rows   int
	cols   int
	step   int      // Bytes between the starts of consecutive rows
	dtype  DataType // Runtime type information
	offset int      // Byte offset of element (0, 0) in buffer
}

// New creates a zero-initialised matrix with the given dimensions and type.
// Zero rows or columns give an empty matrix.
func New(rows, cols int, dtype DataType) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("invalid size %dx%d: dimensions must be >= 0", rows, cols)
	}
	if dtype < Float32 || dtype > Vec3fType {
		return nil, fmt.Errorf("invalid data type %d", int(dtype))
	}

	step := cols * dtype.Size()
	return &Matrix{
		buffer: newStorage(rows * step),
		rows:   rows,
		cols:   cols,
		step:   step,
		dtype:  dtype,
	}, nil
}

// Zeros creates a zero-filled matrix of element type E.
// Panics on negative dimensions.
func Zeros[E Element](rows, cols int) *Matrix {
	m, err := New(rows, cols, DataTypeOf[E]())
	if err != nil {
		panic(err)
	}
	return m
}

// FromSlice creates a matrix from row-major data.
// The slice is copied into the matrix's memory.
func FromSlice[E Element](rows, cols int, data []E) (*Matrix, error) {
	if rows*cols != len(data) {
		return nil, fmt.Errorf("size %dx%d requires %d elements, but got %d", rows, cols, rows*cols, len(data))
	}

	m, err := New(rows, cols, DataTypeOf[E]())
	if err != nil {
		return nil, err
	}
	copy(Data[E](m), data)
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Size returns the matrix size as (width, height) = (cols, rows).
func (m *Matrix) Size() image.Point {
	return image.Point{X: m.cols, Y: m.rows}
}

// Type returns the runtime element type.
func (m *Matrix) Type() DataType {
	return m.dtype
}

// ElemSize returns the byte size of one element.
func (m *Matrix) ElemSize() int {
	return m.dtype.Size()
}

// Step returns the number of bytes between consecutive rows.
func (m *Matrix) Step() int {
	return m.step
}

// Total returns the number of elements.
func (m *Matrix) Total() int {
	return m.rows * m.cols
}

// Empty reports whether the matrix has no elements.
func (m *Matrix) Empty() bool {
	return m.Total() == 0
}

// IsContinuous reports whether all rows are stored back to back with no gaps.
func (m *Matrix) IsContinuous() bool {
	return m.rows <= 1 || m.step == m.cols*m.dtype.Size()
}

// RowBytes returns the element bytes of row y, excluding any padding.
// Panics if y is out of range.
func (m *Matrix) RowBytes(y int) []byte {
	if y < 0 || y >= m.rows {
		panic(fmt.Sprintf("row %d out of range [0, %d)", y, m.rows))
	}
	start := m.offset + y*m.step
	end := start + m.cols*m.dtype.Size()
	return m.buffer.data[start:end:end]
}

// ROI returns a view of the w×h region whose top-left element is (x, y).
// The view shares storage with m.
func (m *Matrix) ROI(x, y, w, h int) (*Matrix, error) {
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > m.cols || y+h > m.rows {
		return nil, fmt.Errorf("region (%d,%d) %dx%d outside %dx%d matrix", x, y, w, h, m.cols, m.rows)
	}

	m.buffer.retain()
	return &Matrix{
		buffer: m.buffer,
		rows:   h,
		cols:   w,
		step:   m.step,
		dtype:  m.dtype,
		offset: m.offset + y*m.step + x*m.dtype.Size(),
	}, nil
}

// Clone creates a shallow copy of the Matrix that shares the buffer.
// Writes through either handle are visible through both.
func (m *Matrix) Clone() *Matrix {
	m.buffer.retain()
	c := *m
	return &c
}

// Copy returns a continuous deep copy of the matrix.
func (m *Matrix) Copy() *Matrix {
	dst, err := New(m.rows, m.cols, m.dtype)
	if err != nil {
		panic(err) // m already has valid dimensions
	}
	for y := 0; y < m.rows; y++ {
		copy(dst.RowBytes(y), m.RowBytes(y))
	}
	return dst
}

// Release gives up m's reference to its storage. The storage is freed once
// the last matrix sharing it is released; m must not be used afterwards.
func (m *Matrix) Release() {
	m.buffer.drop()
}

// IsUnique reports whether no other clone or view shares m's storage.
func (m *Matrix) IsUnique() bool {
	return !m.buffer.shared()
}

// String returns a short description such as "Mat(2x3 uint8)".
func (m *Matrix) String() string {
	return fmt.Sprintf("Mat(%dx%d %s)", m.rows, m.cols, m.dtype)
}
