// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface,
// detecting the host's native byte order once per process, and providing a
// contiguous span codec that converts fixed-width primitive values between
// their native representation and either wire order.
//
// # Basic Usage
//
// Pick the engine matching the wire format and read or write through the
// span codec:
//
//	import "github.com/arontsang/segio/endian"
//
//	engine := endian.GetBigEndianEngine()
//	buf := make([]byte, 4)
//	endian.PutUint32(buf, 0x01020304, engine)  // buf = [0x01 0x02 0x03 0x04]
//	v := endian.GetUint32(buf, engine)         // v = 0x01020304
//
// # Native Order
//
// The host's byte order is determined exactly once, at package initialization,
// and cached. The span codec stores and loads values in native order and
// applies a byte reversal only when the requested engine differs from the
// host order, so reads and writes in the host's own order compile down to
// plain loads and stores.
//
// Engines are restricted to the two canonical orders, binary.LittleEndian and
// binary.BigEndian. Behavior with any other ByteOrder implementation is
// unspecified.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// native is the engine matching the host's byte order, determined once at
// package initialization. All order comparisons in the span codec resolve
// against this value.
var native = detectNative()

// detectNative probes binary.NativeEndian with a known 16-bit pattern and
// inspects which byte lands first.
func detectNative() EndianEngine {
	// 0x0100 is 256. On a little-endian host the LSB (0x00) is stored first,
	// on a big-endian host the MSB (0x01) is.
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 0x0100)

	if probe[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// CheckEndianness returns the host's byte order. The detection runs once at
// package initialization; calls return the cached result.
func CheckEndianness() binary.ByteOrder {
	return native
}

// Native returns the engine matching the host's byte order.
func Native() EndianEngine {
	return native
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return native == EndianEngine(binary.LittleEndian)
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return native == EndianEngine(binary.BigEndian)
}

// CompareNativeEndian reports whether engine matches the host's byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == native
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
