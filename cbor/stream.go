package cbor

import "encoding/binary"

// DecodeHeader reads one CBOR header from in: the initial byte, its
// argument (per §4.2's width table), and — for byte/text strings and
// floats — the payload bytes that follow the argument on the wire. It is
// stateless: callers needing a tree call this once per node via tree.go.
//
// When strict is true, an argument encoded in a wider form than necessary
// (e.g. 24 written via the 2-byte form) fails with ErrMalformedArgument
// instead of being silently accepted.
func DecodeHeader(in InputBuffer, strict bool) (Header, error) {
	lead, err := in.ReadByte()
	if err != nil {
		return Header{}, err
	}
	major, add := splitInitialByte(lead)

	if major == MajorFloatSimple {
		return decodeFloatOrSimpleHeader(in, add, strict)
	}

	arg, wide, err := decodeArgument(in, add)
	if err != nil {
		return Header{}, err
	}
	if strict && wide {
		return Header{}, ErrMalformedArgument
	}

	switch major {
	case MajorUnsignedInt, MajorNegativeInt, MajorArray, MajorMap, MajorTag:
		return Header{Major: major, Argument: arg}, nil
	case MajorByteString, MajorTextString:
		payload, err := in.Lend(int(arg))
		if err != nil {
			return Header{}, err
		}
		return Header{Major: major, Argument: arg, Payload: payload}, nil
	default:
		return Header{}, ErrMalformedMessage
	}
}

// decodeArgument reads the argument encoded by remainder add, per §4.2's
// table, and reports whether a non-minimal width was used (for the strict
// canonical check). add==31 (the indefinite stop-code) and 28-30 (reserved)
// both fail malformed-message: indefinite-length items are out of scope.
func decodeArgument(in InputBuffer, add uint8) (arg uint64, wide bool, err error) {
	switch {
	case add <= argDirectMax:
		return uint64(add), false, nil
	case add == argUint8:
		b, err := in.ReadByte()
		if err != nil {
			return 0, false, err
		}
		v := uint64(b)
		return v, v <= argDirectMax, nil
	case add == argUint16:
		v, err := in.ReadUint16(binary.BigEndian)
		if err != nil {
			return 0, false, err
		}
		return uint64(v), v <= 0xff, nil
	case add == argUint32:
		v, err := in.ReadUint32(binary.BigEndian)
		if err != nil {
			return 0, false, err
		}
		return uint64(v), v <= 0xffff, nil
	case add == argUint64:
		v, err := in.ReadUint64(binary.BigEndian)
		if err != nil {
			return 0, false, err
		}
		return v, v <= 0xffffffff, nil
	default:
		return 0, false, ErrMalformedMessage
	}
}

// decodeFloatOrSimpleHeader handles major type 7: simple values 0-23
// return immediately with no payload (the tree decoder accepts only the
// reserved 20-23); float widths (25/26/27) read their 2/4/8-byte IEEE-754
// payload; remainders 24 and 28-31 are unsupported-simple.
func decodeFloatOrSimpleHeader(in InputBuffer, add uint8, strict bool) (Header, error) {
	switch add {
	case simpleFalse, simpleTrue, simpleNull, simpleUndefined:
		return Header{Major: MajorFloatSimple, Argument: uint64(add)}, nil
	case floatHalf:
		p, err := in.Lend(2)
		if err != nil {
			return Header{}, err
		}
		return Header{Major: MajorFloatSimple, Argument: uint64(add), Payload: p}, nil
	case floatSingle:
		p, err := in.Lend(4)
		if err != nil {
			return Header{}, err
		}
		return Header{Major: MajorFloatSimple, Argument: uint64(add), Payload: p}, nil
	case floatDouble:
		p, err := in.Lend(8)
		if err != nil {
			return Header{}, err
		}
		return Header{Major: MajorFloatSimple, Argument: uint64(add), Payload: p}, nil
	default:
		if add <= argDirectMax {
			return Header{Major: MajorFloatSimple, Argument: uint64(add)}, nil
		}
		// 24 (simple value needing 1 extra byte), 28-30 reserved, 31
		// indefinite stop-code: none are recognised simples here.
		return Header{}, ErrUnsupportedSimple
	}
}

// EncodeHeader packs major's initial byte with the smallest argument width
// that fits argument (0-23 inline, else uint8, uint16, uint32, uint64, in
// that order — the canonical-preferred policy §4.4 mandates), writes it to
// out, and appends payload verbatim.
func EncodeHeader(out OutputBuffer, major MajorType, argument uint64, payload []byte) error {
	if err := encodeArgument(out, major, argument); err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	return out.Write(payload)
}

func encodeArgument(out OutputBuffer, major MajorType, argument uint64) error {
	switch {
	case argument <= argDirectMax:
		return out.WriteByte(makeInitialByte(major, uint8(argument)))
	case argument <= 0xff:
		if err := out.WriteByte(makeInitialByte(major, argUint8)); err != nil {
			return err
		}
		return out.WriteByte(uint8(argument))
	case argument <= 0xffff:
		if err := out.WriteByte(makeInitialByte(major, argUint16)); err != nil {
			return err
		}
		return out.WriteUint16(uint16(argument), binary.BigEndian)
	case argument <= 0xffffffff:
		if err := out.WriteByte(makeInitialByte(major, argUint32)); err != nil {
			return err
		}
		return out.WriteUint32(uint32(argument), binary.BigEndian)
	default:
		if err := out.WriteByte(makeInitialByte(major, argUint64)); err != nil {
			return err
		}
		return out.WriteUint64(argument, binary.BigEndian)
	}
}

// EncodeFloatHeader writes a major-7 header selecting the float width
// matching len(payload) (2, 4 or 8 bytes) and appends payload.
func EncodeFloatHeader(out OutputBuffer, payload []byte) error {
	var add uint8
	switch len(payload) {
	case 2:
		add = floatHalf
	case 4:
		add = floatSingle
	case 8:
		add = floatDouble
	default:
		return ErrMalformedMessage
	}
	if err := out.WriteByte(makeInitialByte(MajorFloatSimple, add)); err != nil {
		return err
	}
	return out.Write(payload)
}

// EncodeSimple writes one of the four reserved simple values (false, true,
// null, undefined) with no payload.
func EncodeSimple(out OutputBuffer, add uint8) error {
	switch add {
	case simpleFalse, simpleTrue, simpleNull, simpleUndefined:
		return out.WriteByte(makeInitialByte(MajorFloatSimple, add))
	default:
		return ErrUnsupportedSimple
	}
}
