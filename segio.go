// Package segio provides byte-order-aware primitive codecs over segmented
// byte buffers.
//
// Segio reads and writes fixed-width binary values (unsigned and signed
// integers, IEEE 754 floats) against buffers that are not necessarily
// contiguous in memory. Values are decoded from a chain of byte segments
// without first copying the chain together, and encoded through a
// reserve/commit sink that lets callers write into storage they manage.
// Every multi-byte operation names its byte order explicitly.
//
// # Core Features
//
//   - Explicit byte-order engines (little- and big-endian) with native-order
//     detection, so same-order traffic avoids byte swapping
//   - Primitive reads over segmented buffers: values spanning segment
//     boundaries decode identically to contiguous ones
//   - Reserve/commit sinks for allocation-free encoding into reusable
//     buffers
//   - Incremental stream sources with consumed/examined advancement for
//     parsing protocols as bytes arrive
//   - A checksummed, optionally compressed frame envelope built from the
//     pieces above
//
// # Basic Usage
//
// Encoding values into a growable buffer:
//
//	import (
//	    "github.com/arontsang/segio"
//	    "github.com/arontsang/segio/sink"
//	)
//
//	var buf sink.Buffer
//	segio.WriteUint32BE(&buf, 0xDEADBEEF)
//	segio.WriteFloat64LE(&buf, 3.14159)
//	wire := buf.Bytes()
//
// Decoding them back, even when the bytes arrive in pieces:
//
//	import "github.com/arontsang/segio/segment"
//
//	buf := segment.NewBuffer(part1, part2) // any segmentation works
//	v, err := segio.ReadUint32BE(buf)
//	f, err := segio.ReadFloat64LE(buf.Skip(4))
//
// Reads never consume the buffer; use Skip to advance past decoded values.
//
// # Package Structure
//
// The top-level package provides fixed-order convenience wrappers around
// the subpackages, which carry the full API:
//
//   - endian: byte-order engines and the span codec for contiguous slices
//   - segment: read-only segmented buffers and primitive reads over them
//   - sink: the reserve/commit write contract and a growable buffer sink
//   - stream: incremental byte sources with Read/Advance semantics
//   - frame: a length-prefixed, checksummed, compressible payload envelope
//   - compress: payload compression codecs (Zstd, S2, LZ4)
//
// Use the subpackages directly when the byte order is dynamic (for example
// taken from a header flag) or when configuring encoders and sources.
package segio

import (
	"context"

	"github.com/arontsang/segio/endian"
	"github.com/arontsang/segio/segment"
	"github.com/arontsang/segio/sink"
	"github.com/arontsang/segio/stream"
)

// ReadUint8 reads a single byte from the front of buf.
func ReadUint8(buf segment.Buffer) (uint8, error) {
	return segment.ReadUint8(buf)
}

// ReadInt8 reads a single signed byte from the front of buf.
func ReadInt8(buf segment.Buffer) (int8, error) {
	return segment.ReadInt8(buf)
}

// ReadUint16LE reads a little-endian uint16 from the front of buf.
func ReadUint16LE(buf segment.Buffer) (uint16, error) {
	return segment.ReadUint16(buf, endian.GetLittleEndianEngine())
}

// ReadUint16BE reads a big-endian uint16 from the front of buf.
func ReadUint16BE(buf segment.Buffer) (uint16, error) {
	return segment.ReadUint16(buf, endian.GetBigEndianEngine())
}

// ReadUint32LE reads a little-endian uint32 from the front of buf.
func ReadUint32LE(buf segment.Buffer) (uint32, error) {
	return segment.ReadUint32(buf, endian.GetLittleEndianEngine())
}

// ReadUint32BE reads a big-endian uint32 from the front of buf.
func ReadUint32BE(buf segment.Buffer) (uint32, error) {
	return segment.ReadUint32(buf, endian.GetBigEndianEngine())
}

// ReadUint64LE reads a little-endian uint64 from the front of buf.
func ReadUint64LE(buf segment.Buffer) (uint64, error) {
	return segment.ReadUint64(buf, endian.GetLittleEndianEngine())
}

// ReadUint64BE reads a big-endian uint64 from the front of buf.
func ReadUint64BE(buf segment.Buffer) (uint64, error) {
	return segment.ReadUint64(buf, endian.GetBigEndianEngine())
}

// ReadInt16LE reads a little-endian int16 from the front of buf.
func ReadInt16LE(buf segment.Buffer) (int16, error) {
	return segment.ReadInt16(buf, endian.GetLittleEndianEngine())
}

// ReadInt16BE reads a big-endian int16 from the front of buf.
func ReadInt16BE(buf segment.Buffer) (int16, error) {
	return segment.ReadInt16(buf, endian.GetBigEndianEngine())
}

// ReadInt32LE reads a little-endian int32 from the front of buf.
func ReadInt32LE(buf segment.Buffer) (int32, error) {
	return segment.ReadInt32(buf, endian.GetLittleEndianEngine())
}

// ReadInt32BE reads a big-endian int32 from the front of buf.
func ReadInt32BE(buf segment.Buffer) (int32, error) {
	return segment.ReadInt32(buf, endian.GetBigEndianEngine())
}

// ReadInt64LE reads a little-endian int64 from the front of buf.
func ReadInt64LE(buf segment.Buffer) (int64, error) {
	return segment.ReadInt64(buf, endian.GetLittleEndianEngine())
}

// ReadInt64BE reads a big-endian int64 from the front of buf.
func ReadInt64BE(buf segment.Buffer) (int64, error) {
	return segment.ReadInt64(buf, endian.GetBigEndianEngine())
}

// ReadFloat32LE reads a little-endian IEEE 754 float32 from the front of buf.
func ReadFloat32LE(buf segment.Buffer) (float32, error) {
	return segment.ReadFloat32(buf, endian.GetLittleEndianEngine())
}

// ReadFloat32BE reads a big-endian IEEE 754 float32 from the front of buf.
func ReadFloat32BE(buf segment.Buffer) (float32, error) {
	return segment.ReadFloat32(buf, endian.GetBigEndianEngine())
}

// ReadFloat64LE reads a little-endian IEEE 754 float64 from the front of buf.
func ReadFloat64LE(buf segment.Buffer) (float64, error) {
	return segment.ReadFloat64(buf, endian.GetLittleEndianEngine())
}

// ReadFloat64BE reads a big-endian IEEE 754 float64 from the front of buf.
func ReadFloat64BE(buf segment.Buffer) (float64, error) {
	return segment.ReadFloat64(buf, endian.GetBigEndianEngine())
}

// WriteUint8 appends a single byte to s.
func WriteUint8(s sink.Sink, v uint8) {
	sink.WriteUint8(s, v)
}

// WriteInt8 appends a single signed byte to s.
func WriteInt8(s sink.Sink, v int8) {
	sink.WriteInt8(s, v)
}

// WriteUint16LE appends a little-endian uint16 to s.
func WriteUint16LE(s sink.Sink, v uint16) {
	sink.WriteUint16(s, v, endian.GetLittleEndianEngine())
}

// WriteUint16BE appends a big-endian uint16 to s.
func WriteUint16BE(s sink.Sink, v uint16) {
	sink.WriteUint16(s, v, endian.GetBigEndianEngine())
}

// WriteUint32LE appends a little-endian uint32 to s.
func WriteUint32LE(s sink.Sink, v uint32) {
	sink.WriteUint32(s, v, endian.GetLittleEndianEngine())
}

// WriteUint32BE appends a big-endian uint32 to s.
func WriteUint32BE(s sink.Sink, v uint32) {
	sink.WriteUint32(s, v, endian.GetBigEndianEngine())
}

// WriteUint64LE appends a little-endian uint64 to s.
func WriteUint64LE(s sink.Sink, v uint64) {
	sink.WriteUint64(s, v, endian.GetLittleEndianEngine())
}

// WriteUint64BE appends a big-endian uint64 to s.
func WriteUint64BE(s sink.Sink, v uint64) {
	sink.WriteUint64(s, v, endian.GetBigEndianEngine())
}

// WriteInt16LE appends a little-endian int16 to s.
func WriteInt16LE(s sink.Sink, v int16) {
	sink.WriteInt16(s, v, endian.GetLittleEndianEngine())
}

// WriteInt16BE appends a big-endian int16 to s.
func WriteInt16BE(s sink.Sink, v int16) {
	sink.WriteInt16(s, v, endian.GetBigEndianEngine())
}

// WriteInt32LE appends a little-endian int32 to s.
func WriteInt32LE(s sink.Sink, v int32) {
	sink.WriteInt32(s, v, endian.GetLittleEndianEngine())
}

// WriteInt32BE appends a big-endian int32 to s.
func WriteInt32BE(s sink.Sink, v int32) {
	sink.WriteInt32(s, v, endian.GetBigEndianEngine())
}

// WriteInt64LE appends a little-endian int64 to s.
func WriteInt64LE(s sink.Sink, v int64) {
	sink.WriteInt64(s, v, endian.GetLittleEndianEngine())
}

// WriteInt64BE appends a big-endian int64 to s.
func WriteInt64BE(s sink.Sink, v int64) {
	sink.WriteInt64(s, v, endian.GetBigEndianEngine())
}

// WriteFloat32LE appends a little-endian IEEE 754 float32 to s.
func WriteFloat32LE(s sink.Sink, v float32) {
	sink.WriteFloat32(s, v, endian.GetLittleEndianEngine())
}

// WriteFloat32BE appends a big-endian IEEE 754 float32 to s.
func WriteFloat32BE(s sink.Sink, v float32) {
	sink.WriteFloat32(s, v, endian.GetBigEndianEngine())
}

// WriteFloat64LE appends a little-endian IEEE 754 float64 to s.
func WriteFloat64LE(s sink.Sink, v float64) {
	sink.WriteFloat64(s, v, endian.GetLittleEndianEngine())
}

// WriteFloat64BE appends a big-endian IEEE 754 float64 to s.
func WriteFloat64BE(s sink.Sink, v float64) {
	sink.WriteFloat64(s, v, endian.GetBigEndianEngine())
}

// ReadAll drains src to completion and returns everything it delivered as
// one segmented buffer. See stream.ReadAll for the retention caveats.
func ReadAll(ctx context.Context, src stream.Source) (segment.Buffer, error) {
	return stream.ReadAll(ctx, src)
}
