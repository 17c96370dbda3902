package json

import (
	"encoding/hex"

	"github.com/jwolf02/boron-go/cbor"
)

// Decode parses src as JSON text in the given dialect and materialises it
// into m's root, replacing any existing tree. This is the reverse
// direction spec.md names as an acknowledged gap in the original source.
func Decode(src []byte, dialect Dialect, m *cbor.Model) (cbor.Item, error) {
	l := newLexer(src)
	tok, err := l.next()
	if err != nil {
		return cbor.Item{}, err
	}
	p := &parser{lexer: l, dialect: dialect}
	it, err := p.parseValue(tok, func(t cbor.LogicalType) (cbor.Item, error) {
		return m.CreateRoot(t)
	})
	if err != nil {
		return cbor.Item{}, err
	}
	trailing, err := l.next()
	if err != nil {
		return cbor.Item{}, err
	}
	if trailing.kind != tokEOF {
		return cbor.Item{}, cbor.ErrMalformedMessage
	}
	return it, nil
}

type parser struct {
	lexer   *lexer
	dialect Dialect
}

// allocFn creates a fresh item of the given logical type, either as the
// tree root (top level) or as a child of an already-allocated container
// (AddChild) — the two item-creation paths cbor.Model/cbor.Item expose.
type allocFn func(cbor.LogicalType) (cbor.Item, error)

// parseValue consumes tok (already read) plus whatever follow-up tokens
// the value needs, creates the item via alloc, and returns it.
func (p *parser) parseValue(tok token, alloc allocFn) (cbor.Item, error) {
	switch tok.kind {
	case tokTagOpen:
		if p.dialect != Extended {
			return cbor.Item{}, cbor.ErrUnsupportedDatatype
		}
		tagNum, err := parseUint(tok.str)
		if err != nil {
			return cbor.Item{}, err
		}
		inner, err := p.lexer.next()
		if err != nil {
			return cbor.Item{}, err
		}
		it, err := p.parseValue(inner, alloc)
		if err != nil {
			return cbor.Item{}, err
		}
		if err := it.SetTag(tagNum); err != nil {
			return cbor.Item{}, err
		}
		closeTok, err := p.lexer.next()
		if err != nil {
			return cbor.Item{}, err
		}
		if closeTok.kind != tokTagClose {
			return cbor.Item{}, cbor.ErrMalformedMessage
		}
		return it, nil
	case tokHexBytes:
		if p.dialect != Extended {
			return cbor.Item{}, cbor.ErrUnsupportedDatatype
		}
		b, err := hex.DecodeString(tok.str)
		if err != nil {
			return cbor.Item{}, cbor.ErrMalformedMessage
		}
		it, err := alloc(cbor.BytesType)
		if err != nil {
			return cbor.Item{}, err
		}
		return it, it.SetBytes(b)
	case tokString:
		it, err := alloc(cbor.StringType)
		if err != nil {
			return cbor.Item{}, err
		}
		return it, it.SetString(tok.str)
	case tokNumber:
		return p.parseNumber(tok, alloc)
	case tokTrue:
		it, err := alloc(cbor.BoolType)
		if err != nil {
			return cbor.Item{}, err
		}
		return it, it.SetBool(true)
	case tokFalse:
		it, err := alloc(cbor.BoolType)
		if err != nil {
			return cbor.Item{}, err
		}
		return it, it.SetBool(false)
	case tokNull:
		return alloc(cbor.NullType)
	case tokUndefined:
		if p.dialect != Extended {
			return cbor.Item{}, cbor.ErrUnsupportedDatatype
		}
		return alloc(cbor.UndefinedType)
	case tokLBracket:
		return p.parseArray(alloc)
	case tokLBrace:
		return p.parseObject(alloc)
	default:
		return cbor.Item{}, cbor.ErrMalformedMessage
	}
}

func (p *parser) parseNumber(tok token, alloc allocFn) (cbor.Item, error) {
	if isIntegerLiteral(tok.str) {
		it, err := alloc(cbor.IntegerType)
		if err != nil {
			return cbor.Item{}, err
		}
		return it, it.SetInt(int64(tok.num))
	}
	it, err := alloc(cbor.FloatType)
	if err != nil {
		return cbor.Item{}, err
	}
	return it, it.SetFloat(tok.num)
}

func isIntegerLiteral(s string) bool {
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return false
		}
	}
	return true
}

func (p *parser) parseArray(alloc allocFn) (cbor.Item, error) {
	arr, err := alloc(cbor.ArrayType)
	if err != nil {
		return cbor.Item{}, err
	}
	tok, err := p.lexer.next()
	if err != nil {
		return cbor.Item{}, err
	}
	if tok.kind == tokRBracket {
		return arr, nil
	}
	for {
		if _, err := p.parseValue(tok, arr.AddChild); err != nil {
			return cbor.Item{}, err
		}
		tok, err = p.lexer.next()
		if err != nil {
			return cbor.Item{}, err
		}
		switch tok.kind {
		case tokComma:
			tok, err = p.lexer.next()
			if err != nil {
				return cbor.Item{}, err
			}
		case tokRBracket:
			return arr, nil
		default:
			return cbor.Item{}, cbor.ErrMalformedMessage
		}
	}
}

func (p *parser) parseObject(alloc allocFn) (cbor.Item, error) {
	obj, err := alloc(cbor.MapType)
	if err != nil {
		return cbor.Item{}, err
	}
	tok, err := p.lexer.next()
	if err != nil {
		return cbor.Item{}, err
	}
	if tok.kind == tokRBrace {
		return obj, nil
	}
	for {
		keyTok := tok
		colonTok, err := p.lexer.next()
		if err != nil {
			return cbor.Item{}, err
		}
		if colonTok.kind != tokColon {
			return cbor.Item{}, cbor.ErrMalformedMessage
		}
		valueTok, err := p.lexer.next()
		if err != nil {
			return cbor.Item{}, err
		}
		// The value is allocated first (AddChild links it into the
		// map), then the key is attached, mirroring
		// cbor.Item.AddKey's contract.
		value, err := p.parseValue(valueTok, obj.AddChild)
		if err != nil {
			return cbor.Item{}, err
		}
		if err := p.attachKey(value, keyTok); err != nil {
			return cbor.Item{}, err
		}

		tok, err = p.lexer.next()
		if err != nil {
			return cbor.Item{}, err
		}
		switch tok.kind {
		case tokComma:
			tok, err = p.lexer.next()
			if err != nil {
				return cbor.Item{}, err
			}
		case tokRBrace:
			return obj, nil
		default:
			return cbor.Item{}, cbor.ErrMalformedMessage
		}
	}
}

// attachKey parses keyTok as a key value (string in Strict/Compat; any
// permitted type in Extended) and binds it to value via value.AddKey,
// which only accepts IntegerType/StringType keys — matching the decoder's
// own key-type restriction (spec §3).
func (p *parser) attachKey(value cbor.Item, keyTok token) error {
	switch keyTok.kind {
	case tokString:
		key, err := value.AddKey(cbor.StringType)
		if err != nil {
			return err
		}
		return key.SetString(keyTok.str)
	case tokNumber:
		if p.dialect != Extended {
			return cbor.ErrUnsupportedKeyType
		}
		if !isIntegerLiteral(keyTok.str) {
			return cbor.ErrUnsupportedKeyType
		}
		key, err := value.AddKey(cbor.IntegerType)
		if err != nil {
			return err
		}
		return key.SetInt(int64(keyTok.num))
	default:
		return cbor.ErrUnsupportedKeyType
	}
}

func parseUint(digits string) (uint64, error) {
	var v uint64
	if digits == "" {
		return 0, cbor.ErrMalformedMessage
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, cbor.ErrMalformedMessage
		}
		v = v*10 + uint64(c-'0')
	}
	return v, nil
}
