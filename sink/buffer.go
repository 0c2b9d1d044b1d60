package sink

import (
	"io"

	"github.com/arontsang/segio/internal/num"
)

const (
	// bufferChunkSize is the growth unit for small buffers.
	bufferChunkSize = 16 * 1024

	// growAlign rounds every growth to a cache-line multiple.
	growAlign = 64
)

// Buffer is a growable in-memory Sink. The zero value is empty and ready to
// use. Buffer also implements io.Writer and io.WriterTo for interoperability
// with standard library consumers.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	buf []byte

	// reserved is the length of the region handed out by the outstanding
	// Reserve; zero when no reservation is outstanding.
	reserved int
}

// NewBuffer creates a Buffer with the specified initial capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reserve returns a writable region of at least n bytes, growing the backing
// storage when needed. The region aliases the buffer's spare capacity and is
// valid until the next Reserve, Commit, or Write call. Panics if n is
// negative.
func (b *Buffer) Reserve(n int) []byte {
	if n < 0 {
		panic("sink.Buffer: Reserve with negative size")
	}

	b.grow(n)
	region := b.buf[len(b.buf):cap(b.buf)]
	b.reserved = len(region)

	return region
}

// Commit marks the first n bytes of the most recently reserved region as
// written. Panics if n is negative or exceeds the outstanding reservation.
func (b *Buffer) Commit(n int) {
	if n < 0 || n > b.reserved {
		panic("sink.Buffer: Commit out of range")
	}

	b.buf = b.buf[:len(b.buf)+n]
	b.reserved = 0
}

// grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. Small buffers grow by a fixed chunk to minimize
// reallocations; larger buffers grow by 25% of current capacity to balance
// memory usage against reallocation cost.
func (b *Buffer) grow(requiredBytes int) {
	available := cap(b.buf) - len(b.buf)
	if available >= requiredBytes {
		return
	}

	growBy := bufferChunkSize
	if cap(b.buf) > 4*bufferChunkSize {
		growBy = cap(b.buf) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}
	growBy = num.Roundup(growBy, growAlign)

	newBuf := make([]byte, len(b.buf), len(b.buf)+growBy)
	copy(newBuf, b.buf)
	b.buf = newBuf
}

// Bytes returns the committed bytes. The slice aliases the buffer's internal
// storage and remains valid only until the next mutating call.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Clone returns a copy of the committed bytes.
func (b *Buffer) Clone() []byte {
	return append([]byte(nil), b.buf...)
}

// Len returns the number of committed bytes.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Cap returns the capacity of the backing storage.
func (b *Buffer) Cap() int {
	return cap(b.buf)
}

// Reset discards the committed bytes and any outstanding reservation but
// retains the allocated storage for reuse.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.reserved = 0
}

// Write appends p to the buffer, growing it as needed. Any outstanding
// reservation is invalidated.
func (b *Buffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	b.reserved = 0

	return len(p), nil
}

// WriteTo writes the committed bytes to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf)
	return int64(n), err
}

var (
	_ Sink        = (*Buffer)(nil)
	_ io.Writer   = (*Buffer)(nil)
	_ io.WriterTo = (*Buffer)(nil)
)
