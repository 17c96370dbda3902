package cbor

import (
	"math"

	"github.com/x448/float16"
)

// MajorType is the 3-bit major type packed into the high bits of a CBOR
// initial byte.
type MajorType uint8

const (
	MajorUnsignedInt MajorType = 0
	MajorNegativeInt MajorType = 1
	MajorByteString  MajorType = 2
	MajorTextString  MajorType = 3
	MajorArray       MajorType = 4
	MajorMap         MajorType = 5
	MajorTag         MajorType = 6
	MajorFloatSimple MajorType = 7
)

func (m MajorType) String() string {
	switch m {
	case MajorUnsignedInt:
		return "uint"
	case MajorNegativeInt:
		return "negint"
	case MajorByteString:
		return "bytes"
	case MajorTextString:
		return "text"
	case MajorArray:
		return "array"
	case MajorMap:
		return "map"
	case MajorTag:
		return "tag"
	case MajorFloatSimple:
		return "float/simple"
	default:
		return "invalid"
	}
}

// Additional-info (remainder) values with a fixed meaning, per RFC 8949 §3.
const (
	argDirectMax  = 23 // 0..23 encode the argument inline
	argUint8      = 24
	argUint16     = 25
	argUint32     = 26
	argUint64     = 27
	argIndefinite = 31 // reserved stop-code; not supported, see spec Non-goals
)

// Reserved simple values and float widths within MajorFloatSimple.
const (
	simpleFalse     = 20
	simpleTrue      = 21
	simpleNull      = 22
	simpleUndefined = 23
	floatHalf       = 25
	floatSingle     = 26
	floatDouble     = 27
)

func makeInitialByte(major MajorType, arg uint8) byte {
	return byte(major)<<5 | arg&0x1f
}

func splitInitialByte(b byte) (MajorType, uint8) {
	return MajorType(b >> 5), b & 0x1f
}

// LogicalType enumerates what a decoded Item carries, independent of the
// wire major type (unsigned/negative integers collapse into one signed
// logical integer, per spec §3).
type LogicalType uint8

const (
	InvalidType LogicalType = iota
	IntegerType
	BytesType
	StringType
	ArrayType
	MapType
	FloatType
	BoolType
	NullType
	UndefinedType
)

func (t LogicalType) String() string {
	switch t {
	case IntegerType:
		return "integer"
	case BytesType:
		return "bytes"
	case StringType:
		return "string"
	case ArrayType:
		return "array"
	case MapType:
		return "map"
	case FloatType:
		return "float"
	case BoolType:
		return "bool"
	case NullType:
		return "null"
	case UndefinedType:
		return "undefined"
	default:
		return "invalid"
	}
}

// noTag is the reserved sentinel meaning "this item carries no tag".
const noTag uint64 = math.MaxUint64

// Header is the decoded tuple produced by the streaming codec (§4.4):
// major type, numeric argument, and — for byte/text strings and floats —
// the raw payload bytes that follow the argument on the wire.
type Header struct {
	Major    MajorType
	Argument uint64
	Payload  []byte
}

// decodeHalfFloat converts a raw IEEE-754 binary16 value to float64. The
// spec allows leaving half-floats undecoded; we decode them anyway since
// x448/float16 makes it a one-line, allocation-free conversion.
func decodeHalfFloat(bits uint16) float64 {
	return float64(float16.Frombits(bits).Float32())
}

// encodeHalfFloatBits reports whether f can be represented exactly as a
// binary16 value and, if so, returns its bit pattern.
func encodeHalfFloatBits(f float64) (uint16, bool) {
	if math.IsNaN(f) {
		h := float16.NaN()
		return h.Bits(), true
	}
	h := float16.Fromfloat32(float32(f))
	if float64(h.Float32()) == f {
		return h.Bits(), true
	}
	return 0, false
}
