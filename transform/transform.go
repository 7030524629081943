// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package transform builds per-pixel pipelines over matrices.
//
// PPTransform maps a unary function over every element of a matrix into a new
// matrix whose element type is the function's result type. Calls chain, and
// TotalTransform hands the whole matrix to a function for steps that are not
// element-wise:
//
//	red := transform.PPTransform(img, func(p mat.Vec3b) uint8 {
//	    sum := float64(p[0]) + float64(p[1]) + float64(p[2])
//	    if sum == 0 {
//	        return 0
//	    }
//	    return mat.SaturateCast[uint8](float64(p[0]) / sum * 255)
//	})
//	out := red.TotalTransform(dense.Whole(dense.Transpose)).Mat()
//
// A function whose parameter type differs from the matrix's runtime type
// logs a warning and runs over reinterpreted memory. WithStrict(true) turns
// the mismatch into an error reported by Value.Err.
package transform

import (
	"log/slog"

	"github.com/born-ml/matkit/internal/parallel"
	"github.com/born-ml/matkit/internal/transform"
	"github.com/born-ml/matkit/mat"
)

// Value is an intermediate pipeline value.
type Value = transform.Value

// Config configures a pipeline.
type Config = transform.Config

// ParallelConfig controls fan-out of the element-wise loop.
type ParallelConfig = parallel.Config

// Option customizes a Config.
type Option = transform.Option

// DefaultConfig returns a non-strict, sequential configuration.
func DefaultConfig() Config {
	return transform.DefaultConfig()
}

// DefaultParallelConfig returns a parallel configuration sized to the host.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// WithStrict makes type mismatches fail the pipeline.
func WithStrict(strict bool) Option {
	return transform.WithStrict(strict)
}

// WithParallel sets the fan-out of element-wise steps.
//
// Example:
//
//	v := transform.New(img, transform.WithParallel(transform.DefaultParallelConfig()))
func WithParallel(p ParallelConfig) Option {
	return transform.WithParallel(p)
}

// WithLogger routes this pipeline's diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return transform.WithLogger(l)
}

// New wraps m in a Value so that steps can be chained with the
// PPTransform and TotalTransform methods.
func New(m *mat.Matrix, opts ...Option) *Value {
	return transform.New(m, opts...)
}

// PPTransform maps fn over every element of m.
//
// Example:
//
//	doubled := transform.PPTransform(m, func(x int32) int32 { return 2 * x })
func PPTransform[In, Out mat.Element](m *mat.Matrix, fn func(In) Out, opts ...Option) *Value {
	return transform.PPTransform(m, fn, opts...)
}

// Map applies fn to the matrix held by v, keeping v's Config.
func Map[In, Out mat.Element](v *Value, fn func(In) Out) *Value {
	return transform.Map(v, fn)
}

// TotalTransform applies fn to m as a whole.
func TotalTransform(m *mat.Matrix, fn func(*mat.Matrix) *mat.Matrix, opts ...Option) *Value {
	return transform.TotalTransform(m, fn, opts...)
}
