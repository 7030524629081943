// Package dense converts single-channel matrices to and from gonum's
// mat.Dense so that gonum's linear algebra can run as a whole-matrix step of
// a transform pipeline.
package dense

import (
	"errors"
	"fmt"

	gmat "gonum.org/v1/gonum/mat"

	"github.com/born-ml/matkit/internal/mat"
)

// Common errors.
var (
	ErrMultiChannel = errors.New("multi-channel matrix has no dense representation")
	ErrEmpty        = errors.New("empty matrix has no dense representation")
)

// ToDense copies a single-channel matrix into a float64 gonum Dense.
// Bool elements become 0 or 1.
func ToDense(m *mat.Matrix) (*gmat.Dense, error) {
	if m.Type().Channels() != 1 {
		return nil, fmt.Errorf("%s: %w", m, ErrMultiChannel)
	}
	if m.Empty() {
		return nil, fmt.Errorf("%s: %w", m, ErrEmpty)
	}

	data := make([]float64, m.Total())
	switch m.Type() {
	case mat.Float32:
		readInto[float32](m, data)
	case mat.Float64:
		readInto[float64](m, data)
	case mat.Int8:
		readInto[int8](m, data)
	case mat.Int16:
		readInto[int16](m, data)
	case mat.Int32:
		readInto[int32](m, data)
	case mat.Int64:
		readInto[int64](m, data)
	case mat.Uint8:
		readInto[uint8](m, data)
	case mat.Uint16:
		readInto[uint16](m, data)
	case mat.Bool:
		cols := m.Cols()
		for y := 0; y < m.Rows(); y++ {
			for x, v := range mat.Row[bool](m, y) {
				if v {
					data[y*cols+x] = 1
				}
			}
		}
	}
	return gmat.NewDense(m.Rows(), m.Cols(), data), nil
}

func readInto[E mat.Number](m *mat.Matrix, dst []float64) {
	cols := m.Cols()
	for y := 0; y < m.Rows(); y++ {
		for x, v := range mat.Row[E](m, y) {
			dst[y*cols+x] = float64(v)
		}
	}
}

// FromDense converts any gonum matrix into a new matrix of element type dt.
// Values are converted with mat.SaturateCast; for Bool, non-zero is true.
func FromDense(d gmat.Matrix, dt mat.DataType) (*mat.Matrix, error) {
	if dt.Channels() != 1 {
		return nil, fmt.Errorf("%s: %w", dt, ErrMultiChannel)
	}

	r, c := d.Dims()
	m, err := mat.New(r, c, dt)
	if err != nil {
		return nil, fmt.Errorf("allocate %dx%d %s: %w", r, c, dt, err)
	}

	switch dt {
	case mat.Float32:
		writeFrom[float32](m, d)
	case mat.Float64:
		writeFrom[float64](m, d)
	case mat.Int8:
		writeFrom[int8](m, d)
	case mat.Int16:
		writeFrom[int16](m, d)
	case mat.Int32:
		writeFrom[int32](m, d)
	case mat.Int64:
		writeFrom[int64](m, d)
	case mat.Uint8:
		writeFrom[uint8](m, d)
	case mat.Uint16:
		writeFrom[uint16](m, d)
	case mat.Bool:
		for y := 0; y < r; y++ {
			row := mat.Row[bool](m, y)
			for x := range row {
				row[x] = d.At(y, x) != 0
			}
		}
	}
	return m, nil
}

func writeFrom[E mat.Number](m *mat.Matrix, d gmat.Matrix) {
	for y := 0; y < m.Rows(); y++ {
		row := mat.Row[E](m, y)
		for x := range row {
			row[x] = mat.SaturateCast[E](d.At(y, x))
		}
	}
}
