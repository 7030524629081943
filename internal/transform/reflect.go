package transform

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/born-ml/matkit/internal/mat"
)

// PPTransform maps fn over every element of the wrapped matrix.
//
// fn must be a func with exactly one parameter and one result, both matrix
// element types (for example func(mat.Vec3b) uint8). The parameter type is
// the declared input type; the result type becomes the output element type.
// PPTransform panics if fn has any other shape.
func (v *Value) PPTransform(fn any) *Value {
	switch f := fn.(type) {
	case func(uint8) uint8:
		return Map(v, f)
	case func(uint8) float32:
		return Map(v, f)
	case func(float32) float32:
		return Map(v, f)
	case func(float32) uint8:
		return Map(v, f)
	case func(float64) float64:
		return Map(v, f)
	case func(mat.Vec3b) uint8:
		return Map(v, f)
	case func(mat.Vec3b) mat.Vec3b:
		return Map(v, f)
	}
	return v.reflectMap(fn)
}

// signature returns the input and output types of a unary element function.
func signature(fn any) (reflect.Value, reflect.Type, reflect.Type) {
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func || fv.IsNil() {
		panic(fmt.Sprintf("transform: expected a unary func, got %T", fn))
	}
	ft := fv.Type()
	if ft.IsVariadic() || ft.NumIn() != 1 || ft.NumOut() != 1 {
		panic(fmt.Sprintf("transform: %s must take one argument and return one value", ft))
	}
	if _, ok := mat.DataTypeFor(ft.In(0)); !ok {
		panic(fmt.Sprintf("transform: %s: parameter type %s is not a matrix element type", ft, ft.In(0)))
	}
	if _, ok := mat.DataTypeFor(ft.Out(0)); !ok {
		panic(fmt.Sprintf("transform: %s: result type %s is not a matrix element type", ft, ft.Out(0)))
	}
	return fv, ft.In(0), ft.Out(0)
}

func (v *Value) reflectMap(fn any) *Value {
	fv, inT, outT := signature(fn)
	inType, _ := mat.DataTypeFor(inT)
	outType, _ := mat.DataTypeFor(outT)

	if skip := v.admit(inType); skip != nil {
		return skip
	}

	src := v.m
	dst := v.allocate(outType)
	inSize, outSize := inType.Size(), outType.Size()

	apply := func(in, out []byte) {
		n := min(len(in)/inSize, len(out)/outSize)
		for j := 0; j < n; j++ {
			//nolint:gosec // element pointers into row bytes, bounds checked by n
			arg := reflect.NewAt(inT, unsafe.Pointer(&in[j*inSize])).Elem()
			res := fv.Call([]reflect.Value{arg})[0]
			//nolint:gosec // as above
			reflect.NewAt(outT, unsafe.Pointer(&out[j*outSize])).Elem().Set(res)
		}
	}

	traverse(src, inSize, v.cfg.Parallel,
		func(lo, hi int) {
			in, _ := mat.Span[uint8](src)
			out, _ := mat.Span[uint8](dst)
			apply(in[lo*inSize:hi*inSize], out[lo*outSize:hi*outSize])
		},
		func(y int) {
			apply(src.RowBytes(y), dst.RowBytes(y))
		})

	return &Value{m: dst, cfg: v.cfg}
}
