// Package segment provides a view over byte data that is logically one
// sequence but physically split across multiple contiguous memory segments,
// plus a codec that decodes fixed-width primitive values from such a view
// regardless of where segment boundaries fall.
//
// # Buffer Views
//
// A Buffer is a lightweight value: copying one copies a few slice headers,
// never the underlying bytes. Buffers alias the segments they were built
// from, so the caller must keep those segments unchanged for as long as the
// view (or any view derived from it via Skip) is in use.
//
// # Reading Values
//
// The Read functions decode a value at the logical start of a buffer. When
// the value lies entirely within the first segment they read it in place;
// when it straddles a boundary they assemble it through a fixed 8-byte stack
// scratch. Either way the decoded value is independent of how the bytes are
// segmented:
//
//	buf := segment.NewBuffer([]byte{0x01, 0x02}, []byte{0x03, 0x04})
//	v, err := segment.ReadUint32(buf, endian.GetBigEndianEngine())
//	// v == 0x01020304
//
// Reads never consume the buffer; use Skip to advance past decoded bytes.
package segment

import "iter"

// Buffer is an ordered, immutable view over one logical byte sequence stored
// as a chain of contiguous segments. The zero value is an empty buffer.
//
// Segments have no relationship to value boundaries: a multi-byte value may
// begin in one segment and end in another.
type Buffer struct {
	segs [][]byte
	size int
}

// NewBuffer builds a view over segs in order. The segments are aliased, not
// copied. Empty segments are dropped, so First never returns a zero-length
// segment of a non-empty buffer.
func NewBuffer(segs ...[]byte) Buffer {
	buf := Buffer{segs: make([][]byte, 0, len(segs))}
	for _, seg := range segs {
		if len(seg) == 0 {
			continue
		}
		buf.segs = append(buf.segs, seg)
		buf.size += len(seg)
	}

	return buf
}

// Len returns the total number of logical bytes in the buffer.
func (b Buffer) Len() int {
	return b.size
}

// IsEmpty reports whether the buffer holds no bytes.
func (b Buffer) IsEmpty() bool {
	return b.size == 0
}

// First returns the first segment, or nil when the buffer is empty. For a
// non-empty buffer the first segment always holds at least one byte.
func (b Buffer) First() []byte {
	if len(b.segs) == 0 {
		return nil
	}

	return b.segs[0]
}

// Segments iterates the segments in logical order.
func (b Buffer) Segments() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for _, seg := range b.segs {
			if !yield(seg) {
				return
			}
		}
	}
}

// Bytes flattens the buffer into a freshly allocated contiguous copy.
func (b Buffer) Bytes() []byte {
	out := make([]byte, 0, b.size)
	for _, seg := range b.segs {
		out = append(out, seg...)
	}

	return out
}

// CopyTo copies up to len(dst) bytes from the logical start of the buffer
// into dst and returns the number of bytes copied.
func (b Buffer) CopyTo(dst []byte) int {
	n := 0
	for _, seg := range b.segs {
		if n == len(dst) {
			break
		}
		n += copy(dst[n:], seg)
	}

	return n
}

// Skip returns a view advanced by n logical bytes. Skipping past the end
// yields an empty buffer. The receiver is unchanged.
func (b Buffer) Skip(n int) Buffer {
	if n <= 0 {
		return b
	}
	if n >= b.size {
		return Buffer{}
	}

	segs := b.segs
	rem := n
	for rem >= len(segs[0]) {
		rem -= len(segs[0])
		segs = segs[1:]
	}

	if rem == 0 {
		return Buffer{segs: segs, size: b.size - n}
	}

	// Re-slicing the head segment needs a private outer slice so sibling
	// views over the same chain stay intact.
	out := make([][]byte, len(segs))
	copy(out, segs)
	out[0] = out[0][rem:]

	return Buffer{segs: out, size: b.size - n}
}
