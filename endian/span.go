package endian

import (
	"encoding/binary"
	"math"
)

// Span codec: reads and writes fixed-width primitive values at the start of a
// contiguous byte span.
//
// Every Get interprets the first width bytes of b as the value's native bit
// pattern and applies a byte reversal only when engine differs from the host
// order; every Put reverses the value under the same condition and then
// stores the native pattern. Gets never consume or advance the span.
//
// The span length precondition (len(b) >= width) is the caller's
// responsibility. The functions perform no validation of their own; a short
// span panics with a bounds error, which is a programming error in the
// caller, not a data error.

// GetUint8 reads the byte at the start of b. A single byte has no order, so
// no engine is taken.
func GetUint8(b []byte) uint8 {
	return b[0]
}

// GetUint16 reads a uint16 from the first 2 bytes of b in engine's order.
func GetUint16(b []byte, engine EndianEngine) uint16 {
	v := binary.NativeEndian.Uint16(b)
	if engine != native {
		v = ReverseUint16(v)
	}

	return v
}

// GetUint32 reads a uint32 from the first 4 bytes of b in engine's order.
func GetUint32(b []byte, engine EndianEngine) uint32 {
	v := binary.NativeEndian.Uint32(b)
	if engine != native {
		v = ReverseUint32(v)
	}

	return v
}

// GetUint64 reads a uint64 from the first 8 bytes of b in engine's order.
func GetUint64(b []byte, engine EndianEngine) uint64 {
	v := binary.NativeEndian.Uint64(b)
	if engine != native {
		v = ReverseUint64(v)
	}

	return v
}

// GetInt8 reads the byte at the start of b as a signed value.
func GetInt8(b []byte) int8 {
	return int8(b[0])
}

// GetInt16 reads an int16 from the first 2 bytes of b in engine's order.
func GetInt16(b []byte, engine EndianEngine) int16 {
	return int16(GetUint16(b, engine))
}

// GetInt32 reads an int32 from the first 4 bytes of b in engine's order.
func GetInt32(b []byte, engine EndianEngine) int32 {
	return int32(GetUint32(b, engine))
}

// GetInt64 reads an int64 from the first 8 bytes of b in engine's order.
func GetInt64(b []byte, engine EndianEngine) int64 {
	return int64(GetUint64(b, engine))
}

// GetFloat32 reads a float32 from the first 4 bytes of b in engine's order.
// The bit pattern is recovered with math.Float32frombits, so NaN payloads
// and signed zeros survive intact.
func GetFloat32(b []byte, engine EndianEngine) float32 {
	return math.Float32frombits(GetUint32(b, engine))
}

// GetFloat64 reads a float64 from the first 8 bytes of b in engine's order.
func GetFloat64(b []byte, engine EndianEngine) float64 {
	return math.Float64frombits(GetUint64(b, engine))
}

// PutUint8 writes v to the first byte of b.
func PutUint8(b []byte, v uint8) {
	b[0] = v
}

// PutUint16 writes v to the first 2 bytes of b in engine's order.
func PutUint16(b []byte, v uint16, engine EndianEngine) {
	if engine != native {
		v = ReverseUint16(v)
	}
	binary.NativeEndian.PutUint16(b, v)
}

// PutUint32 writes v to the first 4 bytes of b in engine's order.
func PutUint32(b []byte, v uint32, engine EndianEngine) {
	if engine != native {
		v = ReverseUint32(v)
	}
	binary.NativeEndian.PutUint32(b, v)
}

// PutUint64 writes v to the first 8 bytes of b in engine's order.
func PutUint64(b []byte, v uint64, engine EndianEngine) {
	if engine != native {
		v = ReverseUint64(v)
	}
	binary.NativeEndian.PutUint64(b, v)
}

// PutInt8 writes v to the first byte of b.
func PutInt8(b []byte, v int8) {
	b[0] = uint8(v)
}

// PutInt16 writes v to the first 2 bytes of b in engine's order.
func PutInt16(b []byte, v int16, engine EndianEngine) {
	PutUint16(b, uint16(v), engine)
}

// PutInt32 writes v to the first 4 bytes of b in engine's order.
func PutInt32(b []byte, v int32, engine EndianEngine) {
	PutUint32(b, uint32(v), engine)
}

// PutInt64 writes v to the first 8 bytes of b in engine's order.
func PutInt64(b []byte, v int64, engine EndianEngine) {
	PutUint64(b, uint64(v), engine)
}

// PutFloat32 writes v to the first 4 bytes of b in engine's order, using
// math.Float32bits for the bit pattern.
func PutFloat32(b []byte, v float32, engine EndianEngine) {
	PutUint32(b, math.Float32bits(v), engine)
}

// PutFloat64 writes v to the first 8 bytes of b in engine's order.
func PutFloat64(b []byte, v float64, engine EndianEngine) {
	PutUint64(b, math.Float64bits(v), engine)
}
