package cbor

import (
	"bytes"
	"encoding/binary"

	"github.com/philhofer/fwd"
)

// InputBuffer is a read cursor over an in-memory byte sequence. The
// streaming header decoder (§4.4) is expressed against this interface so
// the same decoding logic runs whether the backing bytes are a caller-owned
// fixed frame or something larger.
type InputBuffer interface {
	// ReadByte consumes and returns the next byte.
	ReadByte() (byte, error)
	// Lend returns the next n bytes without copying and advances the
	// cursor by n. It fails with ErrUnexpectedEOF if fewer than n bytes
	// remain.
	Lend(n int) ([]byte, error)
	// ReadUint16/32/64 read a fixed-width unsigned integer in the given
	// byte order and advance the cursor.
	ReadUint16(order binary.ByteOrder) (uint16, error)
	ReadUint32(order binary.ByteOrder) (uint32, error)
	ReadUint64(order binary.ByteOrder) (uint64, error)
	// Pos reports the current read offset.
	Pos() int
	// Len reports the number of unread bytes remaining.
	Len() int
}

// OutputBuffer is a write cursor. WriteByte/Write/WriteUintN append to the
// buffer; for the fixed-span implementation, writes past capacity fail with
// ErrUnexpectedEOF instead of growing.
type OutputBuffer interface {
	WriteByte(b byte) error
	Write(p []byte) error
	WriteUint16(v uint16, order binary.ByteOrder) error
	WriteUint32(v uint32, order binary.ByteOrder) error
	WriteUint64(v uint64, order binary.ByteOrder) error
	// Bytes returns everything written so far.
	Bytes() []byte
	Len() int
}

// SpanInputBuffer reads from a caller-owned slice without copying; the
// blob-borrow allocator relies on the fact that Lend's returned slices
// alias this buffer's backing array for the lifetime of the owning Model.
type SpanInputBuffer struct {
	data []byte
	pos  int
}

// NewSpanInputBuffer wraps data for reading. data must outlive any Model
// decoded with a borrow blob allocator bound to it.
func NewSpanInputBuffer(data []byte) *SpanInputBuffer {
	return &SpanInputBuffer{data: data}
}

func (b *SpanInputBuffer) ReadByte() (byte, error) {
	if b.pos >= len(b.data) {
		return 0, ErrUnexpectedEOF
	}
	x := b.data[b.pos]
	b.pos++
	return x, nil
}

func (b *SpanInputBuffer) Lend(n int) ([]byte, error) {
	if n < 0 || len(b.data)-b.pos < n {
		return nil, ErrUnexpectedEOF
	}
	s := b.data[b.pos : b.pos+n]
	b.pos += n
	return s, nil
}

func (b *SpanInputBuffer) ReadUint16(order binary.ByteOrder) (uint16, error) {
	s, err := b.Lend(2)
	if err != nil {
		return 0, err
	}
	return order.Uint16(s), nil
}

func (b *SpanInputBuffer) ReadUint32(order binary.ByteOrder) (uint32, error) {
	s, err := b.Lend(4)
	if err != nil {
		return 0, err
	}
	return order.Uint32(s), nil
}

func (b *SpanInputBuffer) ReadUint64(order binary.ByteOrder) (uint64, error) {
	s, err := b.Lend(8)
	if err != nil {
		return 0, err
	}
	return order.Uint64(s), nil
}

func (b *SpanInputBuffer) Pos() int { return b.pos }
func (b *SpanInputBuffer) Len() int { return len(b.data) - b.pos }

// SpanOutputBuffer writes into a caller-owned fixed-capacity slice; writes
// that would overflow the span fail rather than growing it.
type SpanOutputBuffer struct {
	data []byte
	pos  int
}

// NewSpanOutputBuffer wraps data (typically data[:0] of a preallocated
// array) for encoding into a fixed frame.
func NewSpanOutputBuffer(data []byte) *SpanOutputBuffer {
	return &SpanOutputBuffer{data: data[:0]}
}

func (b *SpanOutputBuffer) WriteByte(x byte) error {
	if len(b.data) >= cap(b.data) {
		return ErrUnexpectedEOF
	}
	b.data = append(b.data, x)
	return nil
}

func (b *SpanOutputBuffer) Write(p []byte) error {
	if cap(b.data)-len(b.data) < len(p) {
		return ErrUnexpectedEOF
	}
	b.data = append(b.data, p...)
	return nil
}

func (b *SpanOutputBuffer) WriteUint16(v uint16, order binary.ByteOrder) error {
	var tmp [2]byte
	order.PutUint16(tmp[:], v)
	return b.Write(tmp[:])
}

func (b *SpanOutputBuffer) WriteUint32(v uint32, order binary.ByteOrder) error {
	var tmp [4]byte
	order.PutUint32(tmp[:], v)
	return b.Write(tmp[:])
}

func (b *SpanOutputBuffer) WriteUint64(v uint64, order binary.ByteOrder) error {
	var tmp [8]byte
	order.PutUint64(tmp[:], v)
	return b.Write(tmp[:])
}

func (b *SpanOutputBuffer) Bytes() []byte { return b.data }
func (b *SpanOutputBuffer) Len() int      { return len(b.data) }

// GrowingOutputBuffer is the dynamic-backing-store writer used by the JSON
// bridge and the CLI. It buffers writes through a philhofer/fwd.Writer over
// an in-memory bytes.Buffer, the same buffered-writer plumbing the teacher
// runtime's msgp-derived code uses for io.Writer targets.
type GrowingOutputBuffer struct {
	store *bytes.Buffer
	w     *fwd.Writer
}

// NewGrowingOutputBuffer returns an empty, unbounded output buffer.
func NewGrowingOutputBuffer() *GrowingOutputBuffer {
	store := &bytes.Buffer{}
	return &GrowingOutputBuffer{store: store, w: fwd.NewWriter(store)}
}

func (b *GrowingOutputBuffer) WriteByte(x byte) error { return b.w.WriteByte(x) }

func (b *GrowingOutputBuffer) Write(p []byte) error {
	_, err := b.w.Write(p)
	return err
}

func (b *GrowingOutputBuffer) WriteUint16(v uint16, order binary.ByteOrder) error {
	var tmp [2]byte
	order.PutUint16(tmp[:], v)
	return b.Write(tmp[:])
}

func (b *GrowingOutputBuffer) WriteUint32(v uint32, order binary.ByteOrder) error {
	var tmp [4]byte
	order.PutUint32(tmp[:], v)
	return b.Write(tmp[:])
}

func (b *GrowingOutputBuffer) WriteUint64(v uint64, order binary.ByteOrder) error {
	var tmp [8]byte
	order.PutUint64(tmp[:], v)
	return b.Write(tmp[:])
}

// Bytes flushes the buffered writer and returns everything written so far.
func (b *GrowingOutputBuffer) Bytes() []byte {
	_ = b.w.Flush()
	return b.store.Bytes()
}

func (b *GrowingOutputBuffer) Len() int {
	return b.store.Len() + b.w.Buffered()
}
