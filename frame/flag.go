package frame

import (
	"github.com/arontsang/segio/compress"
	"github.com/arontsang/segio/endian"
	"github.com/arontsang/segio/errs"
)

// Flag represents the packed option fields at the start of a frame header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the frame format:
	//   - 0xBF10 (0b1011_1111_0001_0000): frame format v1
	//
	// The Options field itself is always stored little-endian on the wire so
	// decoders can read it before the frame's byte order is known.
	Options uint16

	// Compression identifies the codec applied to the frame payload.
	Compression compress.Type
}

// NewFlag creates a new Flag with default settings: version 1 magic,
// little-endian byte order, no compression.
func NewFlag() Flag {
	flag := Flag{
		Options:     MagicFrameV1Opt,
		Compression: compress.TypeNone,
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the frame body is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the frame body is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicFrameV1Opt
}

// Validate checks if the flag contains valid values.
//
// The compression type is not checked here; it is validated against the
// codec registry when the payload is decoded, so frames using codecs added
// via compress.RegisterCodec remain decodable.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
