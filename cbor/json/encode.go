package json

import (
	"encoding/hex"
	"strconv"

	"github.com/jwolf02/boron-go/cbor"
)

// Encode renders it as JSON text in the given dialect. indent selects
// two-space indented output (each array element and map entry on its own
// line, a space after ':', a bare ',') over compact (no whitespace). A
// Compat byte-string array stays on one line in either form.
func Encode(it cbor.Item, dialect Dialect, indent bool) ([]byte, error) {
	out := cbor.NewGrowingOutputBuffer()
	e := &encoder{out: out, dialect: dialect, indent: indent}
	if err := e.encodeItem(it, 0); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

type encoder struct {
	out     *cbor.GrowingOutputBuffer
	dialect Dialect
	indent  bool
}

func (e *encoder) writeString(s string) error { return e.out.Write([]byte(s)) }

func (e *encoder) newline(depth int) error {
	if !e.indent {
		return nil
	}
	if err := e.out.WriteByte('\n'); err != nil {
		return err
	}
	for i := 0; i < depth; i++ {
		if err := e.writeString("  "); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) colon() error {
	if e.indent {
		return e.writeString(": ")
	}
	return e.out.WriteByte(':')
}

func (e *encoder) comma() error {
	if e.indent {
		return e.writeString(",")
	}
	return e.out.WriteByte(',')
}

// encodeItem dispatches on it's tag (rejected in Strict, dropped in Compat,
// wrapped in Extended) and logical type.
func (e *encoder) encodeItem(it cbor.Item, depth int) error {
	tag, tagged := it.Tag()
	if tagged {
		switch e.dialect {
		case Strict:
			return cbor.ErrUnsupportedDatatype
		case Compat:
			// Tags are silently dropped: fall through and encode the
			// tagged value as if it were untagged.
		case Extended:
			if err := e.writeString("<" + strconv.FormatUint(tag, 10) + ":"); err != nil {
				return err
			}
			if err := e.encodeUntagged(it, depth); err != nil {
				return err
			}
			return e.out.WriteByte('>')
		}
	}
	return e.encodeUntagged(it, depth)
}

func (e *encoder) encodeUntagged(it cbor.Item, depth int) error {
	switch it.Type() {
	case cbor.IntegerType:
		v, _ := it.Int()
		return e.writeString(strconv.FormatInt(v, 10))
	case cbor.FloatType:
		v, _ := it.Float()
		return e.writeString(strconv.FormatFloat(v, 'f', -1, 64))
	case cbor.BoolType:
		v, _ := it.Bool()
		if v {
			return e.writeString("true")
		}
		return e.writeString("false")
	case cbor.NullType:
		return e.writeString("null")
	case cbor.UndefinedType:
		if e.dialect == Extended {
			return e.writeString("undefined")
		}
		return e.writeString("null")
	case cbor.StringType:
		s, _ := it.String()
		return e.encodeJSONString(s)
	case cbor.BytesType:
		return e.encodeBytes(it)
	case cbor.ArrayType:
		return e.encodeArray(it, depth)
	case cbor.MapType:
		return e.encodeMap(it, depth)
	default:
		return cbor.ErrMalformedMessage
	}
}

func (e *encoder) encodeBytes(it cbor.Item) error {
	b, _ := it.Bytes()
	switch e.dialect {
	case Strict:
		return cbor.ErrUnsupportedDatatype
	case Compat:
		// Render as a JSON array of "0xNN" string tokens: keeps the
		// output valid JSON (a bare 0xNN is not a legal JSON number)
		// while preserving the source's "0xNN per byte" intent.
		if err := e.out.WriteByte('['); err != nil {
			return err
		}
		for i := range b {
			if i > 0 {
				if err := e.comma(); err != nil {
					return err
				}
			}
			if err := e.encodeJSONString("0x" + hex.EncodeToString(b[i:i+1])); err != nil {
				return err
			}
		}
		return e.out.WriteByte(']')
	case Extended:
		return e.writeString("0x" + hex.EncodeToString(b))
	default:
		return cbor.ErrMalformedMessage
	}
}

func (e *encoder) encodeArray(it cbor.Item, depth int) error {
	if err := e.out.WriteByte('['); err != nil {
		return err
	}
	first := true
	for c := it.Begin(); c.IsValid(); c = c.Sibling() {
		if !first {
			if err := e.comma(); err != nil {
				return err
			}
		}
		first = false
		if err := e.newline(depth + 1); err != nil {
			return err
		}
		if err := e.encodeItem(c, depth+1); err != nil {
			return err
		}
	}
	if !first {
		if err := e.newline(depth); err != nil {
			return err
		}
	}
	return e.out.WriteByte(']')
}

func (e *encoder) encodeMap(it cbor.Item, depth int) error {
	if err := e.out.WriteByte('{'); err != nil {
		return err
	}
	first := true
	for c := it.Begin(); c.IsValid(); c = c.Sibling() {
		key := c.Key()
		if e.dialect != Extended && key.Type() != cbor.StringType {
			return cbor.ErrUnsupportedDatatype
		}
		if !first {
			if err := e.comma(); err != nil {
				return err
			}
		}
		first = false
		if err := e.newline(depth + 1); err != nil {
			return err
		}
		if err := e.encodeMapKey(key); err != nil {
			return err
		}
		if err := e.colon(); err != nil {
			return err
		}
		if err := e.encodeItem(c, depth+1); err != nil {
			return err
		}
	}
	if !first {
		if err := e.newline(depth); err != nil {
			return err
		}
	}
	return e.out.WriteByte('}')
}

// encodeMapKey writes key in JSON-object key position: a string key is
// quoted directly. A non-string key only reaches here in the Extended
// dialect (Strict/Compat reject it earlier) and is written in its own
// native token form — unquoted, exactly as it would appear in value
// position — so Decode can read it back as the same logical type rather
// than as a string that merely looks similar.
func (e *encoder) encodeMapKey(key cbor.Item) error {
	if key.Type() == cbor.StringType {
		s, _ := key.String()
		return e.encodeJSONString(s)
	}
	return e.encodeItem(key, 0)
}

// encodeJSONString writes s as a double-quoted JSON string literal,
// escaping '"', '\\', and control characters as RFC 8259 §7 requires. This
// is "the only subtle piece" the source's own encoder left unescaped.
func (e *encoder) encodeJSONString(s string) error {
	if err := e.out.WriteByte('"'); err != nil {
		return err
	}
	for _, r := range s {
		switch r {
		case '"':
			if err := e.writeString(`\"`); err != nil {
				return err
			}
		case '\\':
			if err := e.writeString(`\\`); err != nil {
				return err
			}
		case '\n':
			if err := e.writeString(`\n`); err != nil {
				return err
			}
		case '\r':
			if err := e.writeString(`\r`); err != nil {
				return err
			}
		case '\t':
			if err := e.writeString(`\t`); err != nil {
				return err
			}
		default:
			if r < 0x20 {
				if err := e.writeString("\\u" + hexPad4(uint16(r))); err != nil {
					return err
				}
				continue
			}
			if err := e.writeString(string(r)); err != nil {
				return err
			}
		}
	}
	return e.out.WriteByte('"')
}

func hexPad4(v uint16) string {
	const digits = "0123456789abcdef"
	b := make([]byte, 4)
	for i := 3; i >= 0; i-- {
		b[i] = digits[v&0xf]
		v >>= 4
	}
	return string(b)
}
