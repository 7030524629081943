package dense

import (
	"errors"
	"testing"

	gmat "gonum.org/v1/gonum/mat"

	"github.com/born-ml/matkit/internal/mat"
	"github.com/born-ml/matkit/internal/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDense(t *testing.T) {
	m, err := mat.FromSlice(2, 3, []int16{1, -2, 3, 4, 5, -6})
	require.NoError(t, err)

	d, err := ToDense(m)
	require.NoError(t, err)

	r, c := d.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, -6.0, d.At(1, 2))
	assert.Equal(t, -2.0, d.At(0, 1))
}

func TestToDenseView(t *testing.T) {
	m, err := mat.FromSlice(3, 3, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	roi, err := m.ROI(1, 1, 2, 2)
	require.NoError(t, err)

	d, err := ToDense(roi)
	require.NoError(t, err)
	assert.True(t, gmat.Equal(d, gmat.NewDense(2, 2, []float64{5, 6, 8, 9})))
}

func TestToDenseBool(t *testing.T) {
	m, err := mat.FromSlice(1, 3, []bool{true, false, true})
	require.NoError(t, err)

	d, err := ToDense(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1}, d.RawRowView(0))
}

func TestToDenseErrors(t *testing.T) {
	_, err := ToDense(mat.Zeros[mat.Vec3b](2, 2))
	assert.True(t, errors.Is(err, ErrMultiChannel))

	_, err = ToDense(mat.Zeros[uint8](0, 3))
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestFromDenseSaturates(t *testing.T) {
	d := gmat.NewDense(1, 4, []float64{-10, 12.5, 255.4, 1000})

	m, err := FromDense(d, mat.Uint8)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 12, 255, 255}, mat.Data[uint8](m))

	_, err = FromDense(d, mat.Vec4bType)
	assert.True(t, errors.Is(err, ErrMultiChannel))
}

func TestWholeTransposeInPipeline(t *testing.T) {
	m, err := mat.FromSlice(2, 3, []uint8{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	out := transform.TotalTransform(m, Whole(Transpose)).Mat()

	assert.Equal(t, 3, out.Rows())
	assert.Equal(t, 2, out.Cols())
	assert.Equal(t, mat.Uint8, out.Type())
	assert.Equal(t, []uint8{1, 4, 2, 5, 3, 6}, mat.Data[uint8](out))
}

func TestWholeChainedWithPPTransform(t *testing.T) {
	m, err := mat.FromSlice(2, 2, []uint8{10, 20, 30, 40})
	require.NoError(t, err)

	out := transform.PPTransform(m, func(x uint8) float32 { return float32(x) }).
		TotalTransform(Whole(Scale(0.5))).
		PPTransform(func(x float32) uint8 { return uint8(x) + 1 }).
		Mat()

	assert.Equal(t, []uint8{6, 11, 16, 21}, mat.Data[uint8](out))
}

func TestWholeMul(t *testing.T) {
	m, err := mat.FromSlice(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	identity := gmat.NewDiagDense(2, []float64{2, 2})

	out := Whole(Mul(identity))(m)

	assert.Equal(t, []float64{2, 4, 6, 8}, mat.Data[float64](out))
}

func TestWholePanicsOnMultiChannel(t *testing.T) {
	assert.Panics(t, func() {
		Whole(Transpose)(mat.Zeros[mat.Vec3b](2, 2))
	})
}
