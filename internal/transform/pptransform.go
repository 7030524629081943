package transform

import (
	"github.com/born-ml/matkit/internal/mat"
	"github.com/born-ml/matkit/internal/parallel"
)

// PPTransform maps fn over every element of m.
//
// The result has m's dimensions and element type Out; m is not modified.
func PPTransform[In, Out mat.Element](m *mat.Matrix, fn func(In) Out, opts ...Option) *Value {
	return Map(New(m, opts...), fn)
}

// Map is the typed chain form of PPTransform:
//
//	v := transform.Map(transform.PPTransform(m, double), addOne)
func Map[In, Out mat.Element](v *Value, fn func(In) Out) *Value {
	inType := mat.DataTypeOf[In]()
	if skip := v.admit(inType); skip != nil {
		return skip
	}

	src := v.m
	dst := v.allocate(mat.DataTypeOf[Out]())

	traverse(src, inType.Size(), v.cfg.Parallel,
		func(lo, hi int) {
			in, _ := mat.Span[In](src)
			out, _ := mat.Span[Out](dst)
			for j := lo; j < hi; j++ {
				out[j] = fn(in[j])
			}
		},
		func(y int) {
			in, out := mat.Row[In](src, y), mat.Row[Out](dst, y)
			n := min(len(in), len(out))
			for j := 0; j < n; j++ {
				out[j] = fn(in[j])
			}
		})

	return &Value{m: dst, cfg: v.cfg}
}

// traverse drives an element-wise loop over src in row-major order.
//
// When src is continuous and inSize matches its element size the storage is
// treated as one span of Total() elements and flat is called with element
// ranges of that span. Otherwise row is called for every row index.
// Either way each output position depends only on the matching input
// position, so chunks may run concurrently.
func traverse(src *mat.Matrix, inSize int, cfg parallel.Config, flat func(lo, hi int), row func(y int)) {
	if src.IsContinuous() && inSize == src.ElemSize() {
		parallel.ForRange(src.Total(), flat, cfg)
		return
	}

	rowCfg := cfg
	rowCfg.MinChunkSize = max(1, cfg.MinChunkSize/max(src.Cols(), 1))
	parallel.ForRange(src.Rows(), func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row(y)
		}
	}, rowCfg)
}
