package cbor

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// Inspect renders it as a human-readable debug string, the engine behind
// --inspect. Tagged items are wrapped as "<TAG: value>"; bytes render as
// hex. This is not a serialisation format — use cbor/json for that.
func (it Item) Inspect() string {
	if !it.IsValid() {
		return ""
	}
	if tag, ok := it.Tag(); ok {
		var b strings.Builder
		b.WriteByte('<')
		b.WriteString(strconv.FormatUint(tag, 10))
		b.WriteString(": ")
		b.WriteString(it.inspectUntagged())
		b.WriteByte('>')
		return b.String()
	}
	return it.inspectUntagged()
}

func (it Item) inspectUntagged() string {
	switch it.Type() {
	case IntegerType:
		v, _ := it.Int()
		return strconv.FormatInt(v, 10)
	case FloatType:
		v, _ := it.Float()
		return strconv.FormatFloat(v, 'f', -1, 64)
	case BoolType:
		v, _ := it.Bool()
		if v {
			return "true"
		}
		return "false"
	case NullType:
		return "null"
	case UndefinedType:
		return "undefined"
	case BytesType:
		b, _ := it.Bytes()
		return "0x" + hex.EncodeToString(b)
	case StringType:
		s, _ := it.String()
		return s
	case ArrayType:
		var b strings.Builder
		b.WriteString("[ ")
		for c := it.Begin(); c.IsValid(); c = c.Sibling() {
			b.WriteString(c.Inspect())
			if c.Sibling().IsValid() {
				b.WriteString(", ")
			}
		}
		b.WriteString(" ]")
		return b.String()
	case MapType:
		var b strings.Builder
		b.WriteString("{ ")
		for c := it.Begin(); c.IsValid(); c = c.Sibling() {
			b.WriteString(c.Key().Inspect())
			b.WriteString(": ")
			b.WriteString(c.Inspect())
			if c.Sibling().IsValid() {
				b.WriteString(", ")
			}
		}
		b.WriteString(" }")
		return b.String()
	default:
		return ""
	}
}
