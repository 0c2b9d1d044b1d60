package endian

import "math/bits"

// ReverseUint8 returns v unchanged. A single byte has no byte order; the
// function exists so every supported width has a reversal form.
func ReverseUint8(v uint8) uint8 {
	return v
}

// ReverseUint16 returns v with its two bytes swapped, the 16-bit rotation
// (v>>8 | v<<8).
func ReverseUint16(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}

// ReverseUint32 returns v with its four bytes in reverse order.
func ReverseUint32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// ReverseUint64 returns v with its eight bytes in reverse order.
func ReverseUint64(v uint64) uint64 {
	return bits.ReverseBytes64(v)
}

// ReverseBytes reverses b in place, swapping bytes pairwise from the outside
// in. It is the generic fallback for fixed-width regions without a dedicated
// reversal form above; the ReverseUintNN functions compile to single
// instructions and should be preferred for widths 2, 4 and 8.
func ReverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
