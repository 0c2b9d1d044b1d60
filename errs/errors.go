// Package errs defines the sentinel errors shared across segio packages.
//
// All errors are created with errors.New and are intended to be matched with
// errors.Is. Call sites that add context wrap them with fmt.Errorf and the %w
// verb, so the sentinel remains matchable through the chain.
package errs

import "errors"

// Buffer and codec errors.
var (
	// ErrShortBuffer is returned when a read requires more bytes than the
	// buffer currently holds. Callers reading from a streaming source should
	// fetch more data and retry.
	ErrShortBuffer = errors.New("insufficient buffered data")

	// ErrInvalidAdvance is returned when an advance request does not satisfy
	// 0 <= consumed <= examined <= buffered.
	ErrInvalidAdvance = errors.New("invalid advance range")

	// ErrSourceClosed is returned by source operations after Close.
	ErrSourceClosed = errors.New("source is closed")

	// ErrInvalidSegmentSize is returned when a configured segment size is
	// below the supported minimum.
	ErrInvalidSegmentSize = errors.New("invalid segment size")
)

// Frame format errors.
var (
	// ErrInvalidMagicNumber is returned when a frame header does not carry
	// the expected magic bits.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidHeaderFlags is returned when reserved header bits are set.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")

	// ErrChecksumMismatch is returned when a frame payload does not match
	// its recorded checksum.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrFrameTooLarge is returned when a frame declares a payload length
	// beyond the supported maximum.
	ErrFrameTooLarge = errors.New("frame payload too large")
)

// Compression errors.
var (
	// ErrInvalidCompressionType is returned when a compression type is
	// unknown and no codec is registered for it.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrDecompressSizeLimit is returned when decompressed data exceeds the
	// supported maximum size.
	ErrDecompressSizeLimit = errors.New("decompressed data exceeds size limit")
)
