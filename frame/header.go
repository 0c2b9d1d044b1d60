package frame

import (
	"fmt"

	"github.com/arontsang/segio/compress"
	"github.com/arontsang/segio/endian"
	"github.com/arontsang/segio/errs"
	"github.com/arontsang/segio/segment"
	"github.com/arontsang/segio/sink"
)

// Header represents the fixed-size header at the start of every frame.
type Header struct {
	// Flag is a packed field for options and compression. byte offset 0-3
	Flag Flag
	// Length is the payload size in bytes as stored on the wire, after
	// compression. byte offset 4-7
	Length uint32
	// RawLength is the payload size in bytes before compression. byte offset 8-11
	RawLength uint32
	// Checksum is the xxHash64 digest of the wire payload. byte offset 12-19
	Checksum uint64
}

// EncodeTo writes the header to s in its wire layout.
//
// The Options field is always written little-endian; the remaining numeric
// fields use the byte order the flag names.
func (h Header) EncodeTo(s sink.Sink) {
	sink.WriteUint16(s, h.Flag.Options, endian.GetLittleEndianEngine())
	sink.WriteUint8(s, uint8(h.Flag.Compression))
	sink.WriteUint8(s, 0) // reserved

	engine := h.Flag.GetEndianEngine()
	sink.WriteUint32(s, h.Length, engine)
	sink.WriteUint32(s, h.RawLength, engine)
	sink.WriteUint64(s, h.Checksum, engine)
}

// DecodeHeader parses a frame header from the front of buf without
// consuming it.
//
// Returns errs.ErrShortBuffer if buf holds fewer than HeaderSize bytes, or
// a flag validation error if the magic number or reserved bits are wrong.
func DecodeHeader(buf segment.Buffer) (Header, error) {
	if buf.Len() < HeaderSize {
		return Header{}, fmt.Errorf("decode frame header: %w", errs.ErrShortBuffer)
	}

	var raw [HeaderSize]byte
	buf.CopyTo(raw[:])

	var h Header

	// Options is parsed first, always little-endian, to learn the byte
	// order of the fields that follow.
	h.Flag.Options = endian.GetUint16(raw[0:2], endian.GetLittleEndianEngine())
	h.Flag.Compression = compress.Type(raw[2])
	// raw[3] is reserved and ignored

	if err := h.Flag.Validate(); err != nil {
		return Header{}, err
	}

	engine := h.Flag.GetEndianEngine()
	h.Length = endian.GetUint32(raw[4:8], engine)
	h.RawLength = endian.GetUint32(raw[8:12], engine)
	h.Checksum = endian.GetUint64(raw[12:20], engine)

	return h, nil
}
