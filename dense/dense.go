// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dense bridges single-channel matrices to gonum for whole-matrix
// linear algebra steps in a transform pipeline.
package dense

import (
	gmat "gonum.org/v1/gonum/mat"

	"github.com/born-ml/matkit/internal/dense"
	"github.com/born-ml/matkit/mat"
)

// Op is a whole-matrix operation on gonum matrices.
type Op = dense.Op

// Conversion errors.
var (
	ErrMultiChannel = dense.ErrMultiChannel
	ErrEmpty        = dense.ErrEmpty
)

// ToDense copies a single-channel matrix into a gonum Dense.
func ToDense(m *mat.Matrix) (*gmat.Dense, error) {
	return dense.ToDense(m)
}

// FromDense converts d to a matrix of type dt, saturating each value.
func FromDense(d gmat.Matrix, dt mat.DataType) (*mat.Matrix, error) {
	return dense.FromDense(d, dt)
}

// Whole lifts op into a function usable with TotalTransform. The result keeps
// the input's element type.
//
// Example:
//
//	out := transform.TotalTransform(m, dense.Whole(dense.Transpose))
func Whole(op Op) func(*mat.Matrix) *mat.Matrix {
	return dense.Whole(op)
}

// Transpose returns the transpose of a.
func Transpose(a gmat.Matrix) gmat.Matrix {
	return dense.Transpose(a)
}

// Scale returns an Op multiplying every element by f.
func Scale(f float64) Op {
	return dense.Scale(f)
}

// Mul returns an Op computing a·b.
func Mul(b gmat.Matrix) Op {
	return dense.Mul(b)
}
