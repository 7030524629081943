// Package imageio converts between image.Image values and matrices, and
// decodes/encodes image files.
//
// Colour images are stored with channels in R, G, B(, A) order: Vec3b when
// the source is fully opaque, Vec4b otherwise. Alpha is not premultiplied.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/born-ml/matkit/internal/mat"
)

// Common errors.
var (
	ErrUnsupportedType = errors.New("element type has no image representation")
	ErrUnknownFormat   = errors.New("unknown image format")
)

// FromImage copies img into a new matrix.
//
// *image.Gray becomes Uint8 and *image.Gray16 becomes Uint16. Every other
// image is read as NRGBA (drawing it onto an NRGBA canvas if needed) and
// stored as Vec3b or Vec4b.
func FromImage(img image.Image) *mat.Matrix {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.Gray:
		m := mat.Zeros[uint8](h, w)
		for y := 0; y < h; y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(mat.Row[uint8](m, y), src.Pix[off:off+w])
		}
		return m
	case *image.Gray16:
		m := mat.Zeros[uint16](h, w)
		for y := 0; y < h; y++ {
			row := mat.Row[uint16](m, y)
			for x := range row {
				row[x] = src.Gray16At(b.Min.X+x, b.Min.Y+y).Y
			}
		}
		return m
	case *image.NRGBA:
		return fromNRGBA(src)
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), img, b.Min, draw.Src)
	return fromNRGBA(canvas)
}

func fromNRGBA(src *image.NRGBA) *mat.Matrix {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if src.Opaque() {
		m := mat.Zeros[mat.Vec3b](h, w)
		for y := 0; y < h; y++ {
			row := mat.Row[mat.Vec3b](m, y)
			pix := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := range row {
				row[x] = mat.Vec3b{pix[4*x], pix[4*x+1], pix[4*x+2]}
			}
		}
		return m
	}

	m := mat.Zeros[mat.Vec4b](h, w)
	for y := 0; y < h; y++ {
		row := mat.Row[mat.Vec4b](m, y)
		pix := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := range row {
			row[x] = mat.Vec4b{pix[4*x], pix[4*x+1], pix[4*x+2], pix[4*x+3]}
		}
	}
	return m
}

// ToImage copies m into a new image.
//
// Uint8 and Uint16 give grayscale images, Vec3b and Vec4b give NRGBA, and
// Float32/Float64 are saturated to 8-bit grayscale (values in [0, 255]).
func ToImage(m *mat.Matrix) (image.Image, error) {
	r := image.Rect(0, 0, m.Cols(), m.Rows())

	switch m.Type() {
	case mat.Uint8:
		img := image.NewGray(r)
		for y := 0; y < m.Rows(); y++ {
			copy(img.Pix[y*img.Stride:], mat.Row[uint8](m, y))
		}
		return img, nil
	case mat.Uint16:
		img := image.NewGray16(r)
		for y := 0; y < m.Rows(); y++ {
			for x, v := range mat.Row[uint16](m, y) {
				img.SetGray16(x, y, color.Gray16{Y: v})
			}
		}
		return img, nil
	case mat.Float32:
		return grayFrom[float32](m, r), nil
	case mat.Float64:
		return grayFrom[float64](m, r), nil
	case mat.Vec3bType:
		img := image.NewNRGBA(r)
		for y := 0; y < m.Rows(); y++ {
			pix := img.Pix[y*img.Stride:]
			for x, p := range mat.Row[mat.Vec3b](m, y) {
				copy(pix[4*x:], []uint8{p[0], p[1], p[2], 0xff})
			}
		}
		return img, nil
	case mat.Vec4bType:
		img := image.NewNRGBA(r)
		for y := 0; y < m.Rows(); y++ {
			pix := img.Pix[y*img.Stride:]
			for x, p := range mat.Row[mat.Vec4b](m, y) {
				copy(pix[4*x:], p[:])
			}
		}
		return img, nil
	default:
		return nil, fmt.Errorf("%s: %w", m.Type(), ErrUnsupportedType)
	}
}

func grayFrom[E float32 | float64](m *mat.Matrix, r image.Rectangle) *image.Gray {
	img := image.NewGray(r)
	for y := 0; y < m.Rows(); y++ {
		pix := img.Pix[y*img.Stride:]
		for x, v := range mat.Row[E](m, y) {
			pix[x] = mat.SaturateCast[uint8](float64(v))
		}
	}
	return img
}
