// Package transform implements a chainable per-element map over matrices.
//
// A Value wraps the matrix produced by the previous step. PPTransform maps a
// unary function over every element into a freshly allocated matrix whose
// element type is the function's result type; TotalTransform hands the whole
// matrix to a function, for operations that are not element-wise:
//
//	out := transform.PPTransform(img, func(p mat.Vec3b) uint8 {
//	    sum := float64(p[0]) + float64(p[1]) + float64(p[2])
//	    return mat.SaturateCast[uint8](float64(p[0]) / sum * 255)
//	}).TotalTransform(dense.Whole(dense.Transpose)).Mat()
//
// The function's parameter type is checked against the matrix's runtime type.
// A mismatch is logged and the map runs over reinterpreted memory unless the
// pipeline is strict.
package transform

import (
	"github.com/born-ml/matkit/internal/check"
	"github.com/born-ml/matkit/internal/mat"
)

// Value is an intermediate pipeline value.
type Value struct {
	m   *mat.Matrix
	cfg Config
	err error
}

// New wraps m in a Value configured by opts.
func New(m *mat.Matrix, opts ...Option) *Value {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Value{m: m, cfg: cfg}
}

// Mat returns the wrapped matrix.
func (v *Value) Mat() *mat.Matrix {
	return v.m
}

// Config returns the pipeline configuration carried by v.
func (v *Value) Config() Config {
	return v.cfg
}

// Err returns the type mismatch that stopped a strict pipeline, or nil.
// Non-strict pipelines never record an error.
func (v *Value) Err() error {
	return v.err
}

// TotalTransform returns fn(m) wrapped in a new Value. No type check is made.
func TotalTransform(m *mat.Matrix, fn func(*mat.Matrix) *mat.Matrix, opts ...Option) *Value {
	return New(m, opts...).TotalTransform(fn)
}

// TotalTransform passes the whole matrix to fn and wraps the result.
func (v *Value) TotalTransform(fn func(*mat.Matrix) *mat.Matrix) *Value {
	if v.err != nil {
		return v
	}
	return &Value{m: fn(v.m), cfg: v.cfg}
}

// admit checks the declared input type of an element-wise step. It returns
// a non-nil Value when the step must be skipped.
func (v *Value) admit(want mat.DataType) *Value {
	if v.err != nil {
		return v
	}
	if !v.cfg.Strict {
		check.TypeMatches(v.cfg.logger(), "transform", want, v.m.Type())
		return nil
	}
	if err := check.Strict("transform", want, v.m.Type()); err != nil {
		v.cfg.logger().Error(check.MismatchMessage,
			"op", "transform", "declared", want.String(), "matrix", v.m.Type().String(), "strict", true)
		return &Value{m: v.m, cfg: v.cfg, err: err}
	}
	return nil
}

// allocate returns a matrix with v's dimensions and the given element type.
func (v *Value) allocate(dt mat.DataType) *mat.Matrix {
	out, err := mat.New(v.m.Rows(), v.m.Cols(), dt)
	if err != nil {
		panic(err) // Dimensions come from an existing matrix
	}
	return out
}
