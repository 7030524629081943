package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/born-ml/matkit/internal/mat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grayImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = uint8(10 * (i + 1))
	}
	return img
}

func rawBytes(m *mat.Matrix) []byte {
	var out []byte
	for y := 0; y < m.Rows(); y++ {
		out = append(out, m.RowBytes(y)...)
	}
	return out
}

func TestFromImageGray(t *testing.T) {
	m := FromImage(grayImage())

	assert.Equal(t, mat.Uint8, m.Type())
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, []uint8{10, 20, 30, 40, 50, 60}, mat.Data[uint8](m))
}

func TestFromImageSubImage(t *testing.T) {
	sub := grayImage().SubImage(image.Rect(1, 0, 3, 2))

	m := FromImage(sub)
	assert.Equal(t, []uint8{20, 30, 50, 60}, mat.Data[uint8](m))
}

func TestFromImageOpaqueColour(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, G: 0, B: 10, A: 255})
	img.Set(1, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	m := FromImage(img)
	assert.Equal(t, mat.Vec3bType, m.Type())
	assert.Equal(t, []mat.Vec3b{{255, 0, 10}, {1, 2, 3}}, mat.Data[mat.Vec3b](m))
}

func TestFromImageTranslucent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	m := FromImage(img)
	assert.Equal(t, mat.Vec4bType, m.Type())
	assert.Equal(t, mat.Vec4b{200, 100, 50, 128}, mat.At[mat.Vec4b](m, 0, 0))
}

func TestToImageFloatSaturates(t *testing.T) {
	m, err := mat.FromSlice(1, 3, []float32{-5, 127.6, 400})
	require.NoError(t, err)

	img, err := ToImage(m)
	require.NoError(t, err)

	gray, ok := img.(*image.Gray)
	require.True(t, ok)
	assert.Equal(t, []uint8{0, 128, 255}, gray.Pix)
}

func TestToImageUnsupported(t *testing.T) {
	_, err := ToImage(mat.Zeros[int32](2, 2))
	assert.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		format string
		m      func(t *testing.T) *mat.Matrix
	}{
		{"gray png", "png", func(t *testing.T) *mat.Matrix { return FromImage(grayImage()) }},
		{"rgb bmp", "bmp", func(t *testing.T) *mat.Matrix {
			m, err := mat.FromSlice(2, 2, []mat.Vec3b{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {10, 11, 12}})
			require.NoError(t, err)
			return m
		}},
		{"gray16 tiff", "tiff", func(t *testing.T) *mat.Matrix {
			m, err := mat.FromSlice(2, 2, []uint16{0, 1000, 40000, 65535})
			require.NoError(t, err)
			return m
		}},
		{"rgb png", "png", func(t *testing.T) *mat.Matrix {
			m, err := mat.FromSlice(1, 2, []mat.Vec3b{{1, 2, 3}, {250, 128, 0}})
			require.NoError(t, err)
			return m
		}},
		{"rgba tiff", "tiff", func(t *testing.T) *mat.Matrix {
			m, err := mat.FromSlice(1, 2, []mat.Vec4b{{1, 2, 3, 40}, {250, 128, 0, 200}})
			require.NoError(t, err)
			return m
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.m(t)

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, m, tt.format))

			got, format, err := Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, m.Type(), got.Type())
			assert.Equal(t, m.Rows(), got.Rows())
			assert.Equal(t, m.Cols(), got.Cols())
			assert.Equal(t, rawBytes(m), rawBytes(got))
		})
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, mat.Zeros[uint8](1, 1), "xcf")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, "png", FormatFromPath("out/a.PNG"))
	assert.Equal(t, "jpeg", FormatFromPath("a.jpeg"))
	assert.Equal(t, "", FormatFromPath("noext"))
}
