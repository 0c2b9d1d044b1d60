package frame

const (
	// Bit masks for the Options field
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicFrameV1Opt is the version 1 magic number for the frame format,
	// occupying bits 4-15 of the Options field.
	MagicFrameV1Opt = 0xBF10
)

const (
	// HeaderSize is the fixed frame header size in bytes.
	HeaderSize = 20

	// MaxPayloadSize is the largest payload a frame may carry, before or
	// after compression. Headers declaring more are rejected as corrupt.
	MaxPayloadSize = 128 * 1024 * 1024
)
