package transform

import (
	"testing"

	"github.com/born-ml/matkit/internal/mat"
	"github.com/born-ml/matkit/internal/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReflectivePPTransformMatchesMap(t *testing.T) {
	m, err := mat.FromSlice(2, 2, []int32{-3, 0, 7, 100})
	require.NoError(t, err)

	fn := func(x int32) float64 { return float64(x) * 1.5 }

	typed := Map(New(m), fn).Mat()
	reflected := New(m).PPTransform(fn).Mat()

	assert.Equal(t, mat.Float64, reflected.Type())
	assert.Equal(t, mat.Data[float64](typed), mat.Data[float64](reflected))
}

func TestReflectivePPTransformBoolMask(t *testing.T) {
	m, err := mat.FromSlice(1, 4, []uint16{0, 300, 65535, 12})
	require.NoError(t, err)

	out := New(m).PPTransform(func(x uint16) bool { return x > 255 }).Mat()

	assert.Equal(t, mat.Bool, out.Type())
	assert.Equal(t, []bool{false, true, true, false}, mat.Data[bool](out))
}

func TestReflectivePPTransformView(t *testing.T) {
	m, err := mat.FromSlice(2, 3, []mat.Vec4b{
		{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12},
		{13, 14, 15, 16}, {17, 18, 19, 20}, {21, 22, 23, 24},
	})
	require.NoError(t, err)
	roi, err := m.ROI(1, 0, 2, 2)
	require.NoError(t, err)

	out := New(roi).PPTransform(func(p mat.Vec4b) mat.Vec3f {
		return mat.Vec3f{float32(p[0]), float32(p[1]), float32(p[3])}
	}).Mat()

	assert.Equal(t, []mat.Vec3f{{5, 6, 8}, {9, 10, 12}, {17, 18, 20}, {21, 22, 24}}, mat.Data[mat.Vec3f](out))
}

func TestReflectivePPTransformParallel(t *testing.T) {
	m := mat.Zeros[int64](40, 50)
	for y := 0; y < m.Rows(); y++ {
		row := mat.Row[int64](m, y)
		for x := range row {
			row[x] = int64(y*50 + x)
		}
	}

	fn := func(x int64) int32 { return int32(x % 7) }
	par := parallel.Config{Enabled: true, NumWorkers: 3, MinChunkSize: 100}

	seq := New(m).PPTransform(fn).Mat()
	got := New(m, WithParallel(par)).PPTransform(fn).Mat()

	assert.Equal(t, mat.Data[int32](seq), mat.Data[int32](got))
	assert.Equal(t, int32(2), mat.At[int32](got, 1, 1)) // 51 % 7
}

func TestReflectivePPTransformFastPath(t *testing.T) {
	m := sample(t)

	out := New(m).PPTransform(func(p uint8) float32 { return float32(p) / 255 }).Mat()

	assert.Equal(t, mat.Float32, out.Type())
	assert.InDelta(t, 6.0/255, mat.At[float32](out, 1, 2), 1e-7)
}

func TestReflectivePPTransformRejectsBadSignatures(t *testing.T) {
	v := New(sample(t))

	tests := []struct {
		name string
		fn   any
	}{
		{"not a func", 42},
		{"nil", nil},
		{"two params", func(a, b uint8) uint8 { return a + b }},
		{"two results", func(a uint8) (uint8, error) { return a, nil }},
		{"variadic", func(a ...uint8) uint8 { return 0 }},
		{"non-element param", func(s string) uint8 { return 0 }},
		{"non-element result", func(a uint8) int { return int(a) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { v.PPTransform(tt.fn) })
		})
	}
}
