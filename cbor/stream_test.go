package cbor

import (
	"encoding/hex"
	"errors"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture %q: %v", s, err)
	}
	return b
}

func TestDecodeHeaderBoundaries(t *testing.T) {
	cases := []struct {
		name string
		in   string
		arg  uint64
	}{
		{"direct-max", "17", 23},     // major 0, arg 23
		{"uint8-min", "1818", 24},    // major 0, arg 24 via 1-byte form
		{"uint8-max", "18ff", 255},   // 255
		{"uint16-min", "190100", 256},
		{"uint16-max", "19ffff", 65535},
		{"uint32-min", "1a00010000", 65536},
		{"uint32-max", "1affffffff", 4294967295},
		{"uint64-min", "1b0000000100000000", 4294967296},
		{"uint64-max", "1bffffffffffffffff", 18446744073709551615},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := NewSpanInputBuffer(mustHex(t, c.in))
			hdr, err := DecodeHeader(in, false)
			if err != nil {
				t.Fatalf("DecodeHeader: %v", err)
			}
			if hdr.Major != MajorUnsignedInt {
				t.Fatalf("major = %v, want unsigned", hdr.Major)
			}
			if hdr.Argument != c.arg {
				t.Fatalf("argument = %d, want %d", hdr.Argument, c.arg)
			}
		})
	}
}

func TestDecodeHeaderStrictRejectsOverlongArgument(t *testing.T) {
	// 0x1817 encodes 23 via the 1-byte form, which fits in the direct
	// 0-23 range and so should be rejected under strict canonical checking.
	in := NewSpanInputBuffer(mustHex(t, "1817"))
	if _, err := DecodeHeader(in, true); !errors.Is(err, ErrMalformedArgument) {
		t.Fatalf("err = %v, want ErrMalformedArgument", err)
	}
}

func TestDecodeHeaderUnexpectedEOF(t *testing.T) {
	in := NewSpanInputBuffer(mustHex(t, "19"))
	if _, err := DecodeHeader(in, false); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("err = %v, want ErrUnexpectedEOF", err)
	}
}

func TestDecodeHeaderReservedAdditionalInfoFails(t *testing.T) {
	// Major 0, remainder 28 (reserved).
	in := NewSpanInputBuffer([]byte{0x1c})
	if _, err := DecodeHeader(in, false); !errors.Is(err, ErrMalformedMessage) {
		t.Fatalf("err = %v, want ErrMalformedMessage", err)
	}
}

func TestEncodeHeaderCanonicalWidth(t *testing.T) {
	cases := []struct {
		name string
		arg  uint64
		want string
	}{
		{"direct", 23, "17"},
		{"uint8", 24, "1818"},
		{"uint8-max", 255, "18ff"},
		{"uint16", 256, "190100"},
		{"uint32", 65536, "1a00010000"},
		{"uint64", 4294967296, "1b0000000100000000"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := NewSpanOutputBuffer(make([]byte, 16))
			if err := EncodeHeader(out, MajorUnsignedInt, c.arg, nil); err != nil {
				t.Fatalf("EncodeHeader: %v", err)
			}
			got := hex.EncodeToString(out.Bytes())
			if got != c.want {
				t.Fatalf("got %s, want %s", got, c.want)
			}
		})
	}
}

func TestEncodeBoolMapsToCorrectSimples(t *testing.T) {
	out := NewSpanOutputBuffer(make([]byte, 2))
	if err := EncodeSimple(out, simpleTrue); err != nil {
		t.Fatal(err)
	}
	if got := hex.EncodeToString(out.Bytes()); got != "f5" {
		t.Fatalf("true encoded as %s, want f5", got)
	}

	out = NewSpanOutputBuffer(make([]byte, 2))
	if err := EncodeSimple(out, simpleFalse); err != nil {
		t.Fatal(err)
	}
	if got := hex.EncodeToString(out.Bytes()); got != "f4" {
		t.Fatalf("false encoded as %s, want f4", got)
	}
}
