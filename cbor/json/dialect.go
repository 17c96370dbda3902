// Package json bridges between a decoded CBOR tree (cbor.Item) and a
// JSON-family textual representation, in either direction, across three
// closed dialects (Strict, Compat, Extended). See Encode and Decode.
package json

// Dialect selects how a cbor.Item tree is rendered to or parsed from text.
// This is a closed enumeration, not a plugin point: adding a fourth dialect
// means adding a new constant and a new branch in encode.go/parse.go, not
// wiring in a callback.
type Dialect uint8

const (
	// Strict is RFC 8259 JSON only: byte strings, tagged items, and
	// non-string map keys fail UnsupportedDatatype. Null and undefined
	// both render as the JSON null literal.
	Strict Dialect = iota
	// Compat renders byte strings as a JSON array of 0xNN-formatted
	// string tokens, silently drops tags (encoding the tagged value as
	// if untagged), and renders undefined as null.
	Compat
	// Extended is a lossless superset: tags render as <TAG:VALUE>, byte
	// strings render as a bare 0xHEXHEX... token, non-string map keys
	// are permitted, and undefined is a distinct literal token from
	// null.
	Extended
)

func (d Dialect) String() string {
	switch d {
	case Strict:
		return "strict"
	case Compat:
		return "compat"
	case Extended:
		return "extended"
	default:
		return "unknown"
	}
}
