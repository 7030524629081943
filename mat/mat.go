// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mat

import (
	"reflect"

	"github.com/born-ml/matkit/internal/mat"
)

// Type aliases for public API

// Element is a constraint for matrix element types.
type Element = mat.Element

// Number is the subset of Element types holding one numeric channel.
type Number = mat.Number

// DataType represents the runtime element type of a matrix.
type DataType = mat.DataType

// Data type constants.
const (
	Float32   DataType = mat.Float32
	Float64   DataType = mat.Float64
	Int32     DataType = mat.Int32
	Int64     DataType = mat.Int64
	Uint8     DataType = mat.Uint8
	Bool      DataType = mat.Bool
	Int8      DataType = mat.Int8
	Int16     DataType = mat.Int16
	Uint16    DataType = mat.Uint16
	Vec3bType DataType = mat.Vec3bType
	Vec4bType DataType = mat.Vec4bType
	Vec3fType DataType = mat.Vec3fType
)

// Vec3b is a 3-channel 8-bit pixel (R, G, B).
type Vec3b = mat.Vec3b

// Vec4b is a 4-channel 8-bit pixel (R, G, B, A).
type Vec4b = mat.Vec4b

// Vec3f is a 3-channel float32 pixel.
type Vec3f = mat.Vec3f

// Matrix is a dense 2D array of typed elements.
type Matrix = mat.Matrix

// Iterator walks a matrix in storage order.
type Iterator[E Element] = mat.Iterator[E]

// Creation functions

// New creates a zero-initialised matrix.
//
// Example:
//
//	m, err := mat.New(480, 640, mat.Vec3bType)
func New(rows, cols int, dtype DataType) (*Matrix, error) {
	return mat.New(rows, cols, dtype)
}

// Zeros creates a zero-filled matrix of element type E.
//
// Example:
//
//	m := mat.Zeros[float32](3, 3)
func Zeros[E Element](rows, cols int) *Matrix {
	return mat.Zeros[E](rows, cols)
}

// FromSlice creates a matrix from row-major data.
//
// Example:
//
//	m, err := mat.FromSlice(2, 2, []float64{1, 2, 3, 4})
func FromSlice[E Element](rows, cols int, data []E) (*Matrix, error) {
	return mat.FromSlice(rows, cols, data)
}

// Type information

// DataTypeOf returns the DataType tag of E.
func DataTypeOf[E Element]() DataType {
	return mat.DataTypeOf[E]()
}

// DataTypeFor maps a reflect.Type to its DataType.
func DataTypeFor(t reflect.Type) (DataType, bool) {
	return mat.DataTypeFor(t)
}

// Element access

// At returns the element at row y, column x. Panics on type mismatch.
func At[E Element](m *Matrix, y, x int) E {
	return mat.At[E](m, y, x)
}

// Set stores v at row y, column x. Panics on type mismatch.
func Set[E Element](m *Matrix, y, x int, v E) {
	mat.Set(m, y, x, v)
}

// Data returns a continuous matrix's elements. Panics on type mismatch.
func Data[E Element](m *Matrix) []E {
	return mat.Data[E](m)
}

// Row interprets row y as []E without a type check.
func Row[E Element](m *Matrix, y int) []E {
	return mat.Row[E](m, y)
}

// Span interprets a continuous matrix as one []E without a type check.
func Span[E Element](m *Matrix) ([]E, bool) {
	return mat.Span[E](m)
}

// Begin returns an iterator at the first element of m.
func Begin[E Element](m *Matrix) Iterator[E] {
	return mat.Begin[E](m)
}

// End returns the iterator one past the last element of m.
func End[E Element](m *Matrix) Iterator[E] {
	return mat.End[E](m)
}

// SaturateCast converts v to N with rounding and clamping.
//
// Example:
//
//	mat.SaturateCast[uint8](-3.2) // 0
func SaturateCast[N Number](v float64) N {
	return mat.SaturateCast[N](v)
}
