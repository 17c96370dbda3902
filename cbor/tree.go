package cbor

import (
	"math"
	"unicode/utf8"
)

// recursionLimit bounds decoder/encoder recursion so a pathologically
// nested input fails cleanly instead of overflowing the Go call stack.
const recursionLimit = 10000

// Decode materialises data into m's root, replacing any existing tree. It
// returns the number of bytes consumed from the front of data.
func Decode(data []byte, m *Model) (int, error) {
	in := NewSpanInputBuffer(data)
	it, err := decodeItem(in, m, 0)
	if err != nil {
		return in.Pos(), err
	}
	m.root = it.ref
	return in.Pos(), nil
}

// decodeItem reads one header and materialises the item (and, recursively,
// its tagged child or container children) it describes.
func decodeItem(in InputBuffer, m *Model, depth int) (Item, error) {
	if depth > recursionLimit {
		return Item{}, ErrMalformedMessage
	}
	hdr, err := DecodeHeader(in, false)
	if err != nil {
		return Item{}, err
	}

	if hdr.Major == MajorTag {
		child, err := decodeItem(in, m, depth+1)
		if err != nil {
			return Item{}, err
		}
		if err := child.SetTag(hdr.Argument); err != nil {
			return Item{}, err
		}
		return child, nil
	}

	switch hdr.Major {
	case MajorUnsignedInt:
		return newLeaf(m, IntegerType, intPayload{v: int64(hdr.Argument)})
	case MajorNegativeInt:
		return newLeaf(m, IntegerType, intPayload{v: -1 - int64(hdr.Argument)})
	case MajorByteString:
		b, err := m.blobs.Allocate(len(hdr.Payload), hdr.Payload)
		if err != nil {
			return Item{}, err
		}
		return newLeaf(m, BytesType, bytesPayload{b: b})
	case MajorTextString:
		if !utf8.Valid(hdr.Payload) {
			return Item{}, ErrMalformedMessage
		}
		b, err := m.blobs.Allocate(len(hdr.Payload), hdr.Payload)
		if err != nil {
			return Item{}, err
		}
		return newLeaf(m, StringType, stringPayload{s: string(b)})
	case MajorArray:
		return decodeArray(in, m, depth, hdr.Argument)
	case MajorMap:
		return decodeMap(in, m, depth, hdr.Argument)
	case MajorFloatSimple:
		return decodeFloatOrSimple(m, hdr)
	default:
		return Item{}, ErrMalformedMessage
	}
}

func newLeaf(m *Model, logical LogicalType, p payload) (Item, error) {
	ref, err := m.items.Allocate()
	if err != nil {
		return Item{}, err
	}
	it := m.items.Get(ref)
	it.logical = logical
	it.tag = noTag
	it.parent, it.next, it.key, it.firstChild, it.lastChild = nilRef, nilRef, nilRef, nilRef, nilRef
	it.payload = p
	return Item{ref: ref, model: m}, nil
}

func decodeArray(in InputBuffer, m *Model, depth int, n uint64) (Item, error) {
	arr, err := newLeaf(m, ArrayType, nil)
	if err != nil {
		return Item{}, err
	}
	for i := uint64(0); i < n; i++ {
		child, err := decodeItem(in, m, depth+1)
		if err != nil {
			return Item{}, err
		}
		m.appendChild(arr.ref, child.ref)
	}
	return arr, nil
}

func decodeMap(in InputBuffer, m *Model, depth int, n uint64) (Item, error) {
	mp, err := newLeaf(m, MapType, nil)
	if err != nil {
		return Item{}, err
	}
	for i := uint64(0); i < n; i++ {
		key, err := decodeItem(in, m, depth+1)
		if err != nil {
			return Item{}, err
		}
		if key.Type() != IntegerType && key.Type() != StringType {
			return Item{}, ErrUnsupportedKeyType
		}
		value, err := decodeItem(in, m, depth+1)
		if err != nil {
			return Item{}, err
		}
		m.items.Get(value.ref).key = key.ref
		m.appendChild(mp.ref, value.ref)
	}
	return mp, nil
}

func decodeFloatOrSimple(m *Model, hdr Header) (Item, error) {
	switch hdr.Argument {
	case simpleFalse:
		return newLeaf(m, BoolType, boolPayload{v: false})
	case simpleTrue:
		return newLeaf(m, BoolType, boolPayload{v: true})
	case simpleNull:
		return newLeaf(m, NullType, nil)
	case simpleUndefined:
		return newLeaf(m, UndefinedType, nil)
	case floatHalf:
		bits := uint16(hdr.Payload[0])<<8 | uint16(hdr.Payload[1])
		return newLeaf(m, FloatType, floatPayload{v: decodeHalfFloat(bits)})
	case floatSingle:
		bits := uint32(hdr.Payload[0])<<24 | uint32(hdr.Payload[1])<<16 | uint32(hdr.Payload[2])<<8 | uint32(hdr.Payload[3])
		return newLeaf(m, FloatType, floatPayload{v: float64(math.Float32frombits(bits))})
	case floatDouble:
		var bits uint64
		for i := 0; i < 8; i++ {
			bits = bits<<8 | uint64(hdr.Payload[i])
		}
		return newLeaf(m, FloatType, floatPayload{v: math.Float64frombits(bits)})
	}
	return Item{}, ErrUnsupportedSimple
}

// Encode walks it depth-first, left-to-right, emitting CBOR headers to out.
// If it carries a tag, the tag header is emitted first.
func Encode(it Item, out OutputBuffer) error {
	return encodeItem(it, out, 0)
}

func encodeItem(it Item, out OutputBuffer, depth int) error {
	if depth > recursionLimit {
		return ErrMalformedMessage
	}
	if tag, ok := it.Tag(); ok {
		if err := EncodeHeader(out, MajorTag, tag, nil); err != nil {
			return err
		}
	}
	switch it.Type() {
	case IntegerType:
		v, _ := it.Int()
		return encodeInt(out, v)
	case BytesType:
		b, _ := it.Bytes()
		return EncodeHeader(out, MajorByteString, uint64(len(b)), b)
	case StringType:
		s, _ := it.String()
		return EncodeHeader(out, MajorTextString, uint64(len(s)), []byte(s))
	case ArrayType:
		if err := EncodeHeader(out, MajorArray, uint64(it.Len()), nil); err != nil {
			return err
		}
		for c := it.Begin(); c.IsValid(); c = c.Sibling() {
			if err := encodeItem(c, out, depth+1); err != nil {
				return err
			}
		}
		return nil
	case MapType:
		if err := EncodeHeader(out, MajorMap, uint64(it.Len()), nil); err != nil {
			return err
		}
		for c := it.Begin(); c.IsValid(); c = c.Sibling() {
			if err := encodeItem(c.Key(), out, depth+1); err != nil {
				return err
			}
			if err := encodeItem(c, out, depth+1); err != nil {
				return err
			}
		}
		return nil
	case FloatType:
		v, _ := it.Float()
		var payload [8]byte
		bits := math.Float64bits(v)
		for i := 0; i < 8; i++ {
			payload[7-i] = byte(bits >> (8 * i))
		}
		return EncodeFloatHeader(out, payload[:])
	case BoolType:
		v, _ := it.Bool()
		if v {
			return EncodeSimple(out, simpleTrue)
		}
		return EncodeSimple(out, simpleFalse)
	case NullType:
		return EncodeSimple(out, simpleNull)
	case UndefinedType:
		return EncodeSimple(out, simpleUndefined)
	default:
		return ErrMalformedMessage
	}
}

// encodeInt picks the unsigned or negative major based on sign, per the
// collapsed-signed-integer convention (§3): zero and positive values are
// unsigned (the fixed "i > 0" source bug, §9, must not be repeated).
func encodeInt(out OutputBuffer, v int64) error {
	if v >= 0 {
		return EncodeHeader(out, MajorUnsignedInt, uint64(v), nil)
	}
	return EncodeHeader(out, MajorNegativeInt, uint64(-1-v), nil)
}
