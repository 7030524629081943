// Package mat provides the dense 2D matrix type wrapped by the iteration and transform layers.
package mat

import "reflect"

// Vec3b is a 3-channel 8-bit pixel (R, G, B).
type Vec3b [3]uint8

// Vec4b is a 4-channel 8-bit pixel (R, G, B, A).
type Vec4b [4]uint8

// Vec3f is a 3-channel float32 pixel.
type Vec3f [3]float32

// Element is a constraint for supported matrix element types.
// Every type in the union maps to exactly one DataType.
type Element interface {
	float32 | float64 | int8 | int16 | int32 | int64 | uint8 | uint16 | bool |
		Vec3b | Vec4b | Vec3f
}

// Number is the subset of Element types that hold a single numeric channel.
type Number interface {
	float32 | float64 | int8 | int16 | int32 | int64 | uint8 | uint16
}

// DataType represents runtime type information for matrices.
type DataType int

// Supported data types for matrices.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
	Bool
	Int8
	Int16
	Uint16
	Vec3bType
	Vec4bType
	Vec3fType
)

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8, Bool, Int8:
		return 1
	case Int16, Uint16:
		return 2
	case Vec3bType:
		return 3
	case Vec4bType:
		return 4
	case Vec3fType:
		return 12
	default:
		panic("unknown data type")
	}
}

// Channels returns the number of channels per element.
func (dt DataType) Channels() int {
	switch dt {
	case Vec3bType, Vec3fType:
		return 3
	case Vec4bType:
		return 4
	default:
		return 1
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Vec3bType:
		return "vec3b"
	case Vec4bType:
		return "vec4b"
	case Vec3fType:
		return "vec3f"
	default:
		return "unknown"
	}
}

// DataTypeOf returns the DataType tag of the element type E.
func DataTypeOf[E Element]() DataType {
	var dummy E
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case uint16:
		return Uint16
	case Vec3b:
		return Vec3bType
	case Vec4b:
		return Vec4bType
	case Vec3f:
		return Vec3fType
	default:
		panic("unsupported type")
	}
}

var reflectTypes = map[reflect.Type]DataType{
	reflect.TypeFor[float32](): Float32,
	reflect.TypeFor[float64](): Float64,
	reflect.TypeFor[int32]():   Int32,
	reflect.TypeFor[int64]():   Int64,
	reflect.TypeFor[uint8]():   Uint8,
	reflect.TypeFor[bool]():    Bool,
	reflect.TypeFor[int8]():    Int8,
	reflect.TypeFor[int16]():   Int16,
	reflect.TypeFor[uint16]():  Uint16,
	reflect.TypeFor[Vec3b]():   Vec3bType,
	reflect.TypeFor[Vec4b]():   Vec4bType,
	reflect.TypeFor[Vec3f]():   Vec3fType,
}

// DataTypeFor maps a reflect.Type to its DataType.
// The second result is false if t is not an Element type.
func DataTypeFor(t reflect.Type) (DataType, bool) {
	dt, ok := reflectTypes[t]
	return dt, ok
}
