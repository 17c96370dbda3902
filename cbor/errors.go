// Package cbor implements a decoder, programmatic builder and encoder for
// RFC 8949 Concise Binary Object Representation, plus a bridge to and from
// a JSON ("extended-JSON") textual dialect in the cbor/json subpackage.
package cbor

// ErrorKind is the flat enumeration of everything that can go wrong in this
// package. There is deliberately one enum rather than a family of typed
// errors per operation: every fallible operation in the engine returns one
// of these kinds (wrapped in an *Error), and nothing is recovered silently.
type ErrorKind uint32

const (
	// ErrorKindOK is the zero value and is never attached to a non-nil error.
	ErrorKindOK ErrorKind = iota
	ErrorKindItemAllocFailed
	ErrorKindBlobAllocFailed
	ErrorKindUnexpectedEOF
	ErrorKindUnsupportedDatatype
	ErrorKindMalformedMessage
	ErrorKindDoubleTagged
	ErrorKindUnsupportedKeyType
	ErrorKindMalformedArgument
	ErrorKindUnsupportedSimple
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindOK:
		return "ok"
	case ErrorKindItemAllocFailed:
		return "item allocation failed"
	case ErrorKindBlobAllocFailed:
		return "blob allocation failed"
	case ErrorKindUnexpectedEOF:
		return "unexpected EOF"
	case ErrorKindUnsupportedDatatype:
		return "unsupported datatype"
	case ErrorKindMalformedMessage:
		return "malformed message"
	case ErrorKindDoubleTagged:
		return "double tagged"
	case ErrorKindUnsupportedKeyType:
		return "unsupported key type"
	case ErrorKindMalformedArgument:
		return "malformed argument"
	case ErrorKindUnsupportedSimple:
		return "unsupported simple"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type returned by this package and cbor/json.
// Kind identifies the failure per spec; msg carries the offending-operation
// context for humans (not meant to be parsed).
type Error struct {
	Kind ErrorKind
	msg  string
}

func (e *Error) Error() string {
	if e.msg == "" {
		return "cbor: " + e.Kind.String()
	}
	return "cbor: " + e.Kind.String() + ": " + e.msg
}

// Is lets errors.Is(err, ErrUnexpectedEOF) work against the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

// Sentinel errors, one per non-OK ErrorKind, for use with errors.Is.
var (
	ErrItemAllocFailed     error = &Error{Kind: ErrorKindItemAllocFailed}
	ErrBlobAllocFailed     error = &Error{Kind: ErrorKindBlobAllocFailed}
	ErrUnexpectedEOF       error = &Error{Kind: ErrorKindUnexpectedEOF}
	ErrUnsupportedDatatype error = &Error{Kind: ErrorKindUnsupportedDatatype}
	ErrMalformedMessage    error = &Error{Kind: ErrorKindMalformedMessage}
	ErrDoubleTagged        error = &Error{Kind: ErrorKindDoubleTagged}
	ErrUnsupportedKeyType  error = &Error{Kind: ErrorKindUnsupportedKeyType}
	ErrMalformedArgument   error = &Error{Kind: ErrorKindMalformedArgument}
	ErrUnsupportedSimple   error = &Error{Kind: ErrorKindUnsupportedSimple}
)

// Code extracts the ErrorKind carried by err, or ErrorKindOK if err is nil
// or not one of ours. The CLI uses this for its exit-code contract: the
// numeric value of the first non-OK error kind encountered.
func Code(err error) ErrorKind {
	if err == nil {
		return ErrorKindOK
	}
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return ErrorKindOK
}
