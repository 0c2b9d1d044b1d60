package segment

import (
	"math"

	"github.com/arontsang/segio/endian"
	"github.com/arontsang/segio/errs"
)

// Each Read function decodes one fixed-width value at the logical start of
// buf in engine's byte order. Two paths:
//
//   - Fast path: the first segment holds the whole value, so it is decoded
//     in place with no copying.
//   - Slow path: the value straddles a segment boundary, so exactly width
//     bytes are gathered into a fixed 8-byte stack scratch and decoded from
//     there. The copy is bounded and does not touch the heap.
//
// A buffer holding fewer than width total bytes fails with
// errs.ErrShortBuffer; no partial reads are exposed. Reads do not consume
// the buffer.

// copyFull copies exactly len(dst) bytes from the logical start of b,
// failing when the buffer holds fewer bytes.
func (b Buffer) copyFull(dst []byte) error {
	if b.size < len(dst) {
		return errs.ErrShortBuffer
	}
	b.CopyTo(dst)

	return nil
}

// ReadUint8 decodes the byte at the start of buf. A single byte has no
// order, so no engine is taken.
func ReadUint8(buf Buffer) (uint8, error) {
	first := buf.First()
	if len(first) == 0 {
		return 0, errs.ErrShortBuffer
	}

	return endian.GetUint8(first), nil
}

// ReadUint16 decodes a uint16 at the start of buf in engine's order.
func ReadUint16(buf Buffer, engine endian.EndianEngine) (uint16, error) {
	if first := buf.First(); len(first) >= 2 {
		return endian.GetUint16(first, engine), nil
	}

	var scratch [8]byte
	if err := buf.copyFull(scratch[:2]); err != nil {
		return 0, err
	}

	return endian.GetUint16(scratch[:2], engine), nil
}

// ReadUint32 decodes a uint32 at the start of buf in engine's order.
func ReadUint32(buf Buffer, engine endian.EndianEngine) (uint32, error) {
	if first := buf.First(); len(first) >= 4 {
		return endian.GetUint32(first, engine), nil
	}

	var scratch [8]byte
	if err := buf.copyFull(scratch[:4]); err != nil {
		return 0, err
	}

	return endian.GetUint32(scratch[:4], engine), nil
}

// ReadUint64 decodes a uint64 at the start of buf in engine's order.
func ReadUint64(buf Buffer, engine endian.EndianEngine) (uint64, error) {
	if first := buf.First(); len(first) >= 8 {
		return endian.GetUint64(first, engine), nil
	}

	var scratch [8]byte
	if err := buf.copyFull(scratch[:8]); err != nil {
		return 0, err
	}

	return endian.GetUint64(scratch[:8], engine), nil
}

// ReadInt8 decodes the byte at the start of buf as a signed value.
func ReadInt8(buf Buffer) (int8, error) {
	v, err := ReadUint8(buf)
	return int8(v), err
}

// ReadInt16 decodes an int16 at the start of buf in engine's order.
func ReadInt16(buf Buffer, engine endian.EndianEngine) (int16, error) {
	v, err := ReadUint16(buf, engine)
	return int16(v), err
}

// ReadInt32 decodes an int32 at the start of buf in engine's order.
func ReadInt32(buf Buffer, engine endian.EndianEngine) (int32, error) {
	v, err := ReadUint32(buf, engine)
	return int32(v), err
}

// ReadInt64 decodes an int64 at the start of buf in engine's order.
func ReadInt64(buf Buffer, engine endian.EndianEngine) (int64, error) {
	v, err := ReadUint64(buf, engine)
	return int64(v), err
}

// ReadFloat32 decodes a float32 at the start of buf in engine's order.
func ReadFloat32(buf Buffer, engine endian.EndianEngine) (float32, error) {
	v, err := ReadUint32(buf, engine)
	return math.Float32frombits(v), err
}

// ReadFloat64 decodes a float64 at the start of buf in engine's order.
func ReadFloat64(buf Buffer, engine endian.EndianEngine) (float64, error) {
	v, err := ReadUint64(buf, engine)
	return math.Float64frombits(v), err
}
