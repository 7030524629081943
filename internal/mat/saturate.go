package mat

import "math"

// SaturateCast converts v to N, rounding half to even and clamping to the
// range of N. NaN converts to zero for integer types.
//
// Example:
//
//	mat.SaturateCast[uint8](300.7) // 255
//	mat.SaturateCast[int8](-1.5)   // -2
func SaturateCast[N Number](v float64) N {
	var zero N
	switch any(zero).(type) {
	case float32:
		return N(float32(v))
	case float64:
		return N(v)
	}

	if math.IsNaN(v) {
		return 0
	}
	r := math.RoundToEven(v)

	var out any
	switch any(zero).(type) {
	case uint8:
		out = uint8(clamp(r, 0, math.MaxUint8))
	case int8:
		out = int8(clamp(r, math.MinInt8, math.MaxInt8))
	case uint16:
		out = uint16(clamp(r, 0, math.MaxUint16))
	case int16:
		out = int16(clamp(r, math.MinInt16, math.MaxInt16))
	case int32:
		out = int32(clamp(r, math.MinInt32, math.MaxInt32))
	case int64:
		switch {
		case r >= math.MaxInt64: // 2^63 after float64 rounding
			out = int64(math.MaxInt64)
		case r <= math.MinInt64:
			out = int64(math.MinInt64)
		default:
			out = int64(r)
		}
	}
	return out.(N)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
