package mat

import (
	"fmt"
	"unsafe"
)

func sizeOf[E Element]() int {
	var zero E
	return int(unsafe.Sizeof(zero))
}

// reinterpret views b as a slice of E, dropping trailing bytes that do not
// fill a whole element.
func reinterpret[E Element](b []byte) []E {
	n := len(b) / sizeOf[E]()
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by len(b)
	return unsafe.Slice((*E)(unsafe.Pointer(&b[0])), n)
}

// Row interprets row y as []E without checking the element type.
// If E is not the matrix's element type the result holds
// RowBytes(y)/sizeof(E) elements of reinterpreted memory.
func Row[E Element](m *Matrix, y int) []E {
	return reinterpret[E](m.RowBytes(y))
}

// Span interprets the whole matrix as a single []E without checking the
// element type. The second result is false if the matrix is not continuous.
func Span[E Element](m *Matrix) ([]E, bool) {
	if !m.IsContinuous() {
		return nil, false
	}
	start := m.offset
	end := start + m.Total()*m.dtype.Size()
	return reinterpret[E](m.buffer.data[start:end:end]), true
}

func checkType[E Element](m *Matrix) {
	if want := DataTypeOf[E](); m.dtype != want {
		panic(fmt.Sprintf("matrix dtype is %s, not %s", m.dtype, want))
	}
}

// Data returns the elements of a continuous matrix as []E.
// Panics if E is not the matrix's element type or the matrix is not continuous.
func Data[E Element](m *Matrix) []E {
	checkType[E](m)
	data, ok := Span[E](m)
	if !ok {
		panic(fmt.Sprintf("%s is not continuous", m))
	}
	return data
}

// At returns the element at row y, column x.
// Panics if E is not the matrix's element type or (x, y) is out of range.
func At[E Element](m *Matrix, y, x int) E {
	checkType[E](m)
	return Row[E](m, y)[x]
}

// Set stores v at row y, column x.
// Panics if E is not the matrix's element type or (x, y) is out of range.
func Set[E Element](m *Matrix, y, x int, v E) {
	checkType[E](m)
	Row[E](m, y)[x] = v
}
