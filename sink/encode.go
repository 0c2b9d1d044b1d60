package sink

import (
	"math"

	"github.com/arontsang/segio/endian"
)

// Each Write function encodes one fixed-width value against a Sink: reserve
// a region of at least width bytes, span-write the value into its first
// width bytes in engine's byte order, and commit exactly width bytes. The
// commit happens once, after the full value is written; no partial commits
// occur.

// WriteUint8 writes a single byte to s. One byte has no order, so no engine
// is taken.
func WriteUint8(s Sink, v uint8) {
	region := s.Reserve(1)
	endian.PutUint8(region, v)
	s.Commit(1)
}

// WriteUint16 writes v to s in engine's order.
func WriteUint16(s Sink, v uint16, engine endian.EndianEngine) {
	region := s.Reserve(2)
	endian.PutUint16(region, v, engine)
	s.Commit(2)
}

// WriteUint32 writes v to s in engine's order.
func WriteUint32(s Sink, v uint32, engine endian.EndianEngine) {
	region := s.Reserve(4)
	endian.PutUint32(region, v, engine)
	s.Commit(4)
}

// WriteUint64 writes v to s in engine's order.
func WriteUint64(s Sink, v uint64, engine endian.EndianEngine) {
	region := s.Reserve(8)
	endian.PutUint64(region, v, engine)
	s.Commit(8)
}

// WriteInt8 writes a single signed byte to s.
func WriteInt8(s Sink, v int8) {
	WriteUint8(s, uint8(v))
}

// WriteInt16 writes v to s in engine's order.
func WriteInt16(s Sink, v int16, engine endian.EndianEngine) {
	WriteUint16(s, uint16(v), engine)
}

// WriteInt32 writes v to s in engine's order.
func WriteInt32(s Sink, v int32, engine endian.EndianEngine) {
	WriteUint32(s, uint32(v), engine)
}

// WriteInt64 writes v to s in engine's order.
func WriteInt64(s Sink, v int64, engine endian.EndianEngine) {
	WriteUint64(s, uint64(v), engine)
}

// WriteFloat32 writes v to s in engine's order, using math.Float32bits for
// the bit pattern.
func WriteFloat32(s Sink, v float32, engine endian.EndianEngine) {
	WriteUint32(s, math.Float32bits(v), engine)
}

// WriteFloat64 writes v to s in engine's order.
func WriteFloat64(s Sink, v float64, engine endian.EndianEngine) {
	WriteUint64(s, math.Float64bits(v), engine)
}

// WriteBytes copies p verbatim to s. It carries no endianness logic; it
// exists for callers framing payloads around fixed-width fields.
func WriteBytes(s Sink, p []byte) {
	region := s.Reserve(len(p))
	copy(region, p)
	s.Commit(len(p))
}
