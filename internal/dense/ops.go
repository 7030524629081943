package dense

import (
	"fmt"

	gmat "gonum.org/v1/gonum/mat"

	"github.com/born-ml/matkit/internal/mat"
)

// Op is a whole-matrix gonum operation.
type Op func(gmat.Matrix) gmat.Matrix

// Whole adapts op for transform.TotalTransform. The input is converted to a
// Dense, op runs on it, and the result is converted back to the input's
// element type.
//
// The returned function panics if the input cannot be represented as a
// Dense (multi-channel or empty). gonum's own panics, such as dimension
// mismatches in Mul, propagate unchanged.
func Whole(op Op) func(*mat.Matrix) *mat.Matrix {
	return func(m *mat.Matrix) *mat.Matrix {
		d, err := ToDense(m)
		if err != nil {
			panic(fmt.Sprintf("dense: %v", err))
		}
		out, err := FromDense(op(d), m.Type())
		if err != nil {
			panic(fmt.Sprintf("dense: %v", err))
		}
		return out
	}
}

// Transpose returns the transpose of a.
func Transpose(a gmat.Matrix) gmat.Matrix {
	return gmat.DenseCopyOf(a.T())
}

// Scale returns an Op multiplying every element by f.
func Scale(f float64) Op {
	return func(a gmat.Matrix) gmat.Matrix {
		var d gmat.Dense
		d.Scale(f, a)
		return &d
	}
}

// Mul returns an Op computing the matrix product a × b.
func Mul(b gmat.Matrix) Op {
	return func(a gmat.Matrix) gmat.Matrix {
		var d gmat.Dense
		d.Mul(a, b)
		return &d
	}
}
