package compress

import (
	"fmt"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arontsang/segio/errs"
)

// Type identifies a compression algorithm on the wire.
//
// The value is stored verbatim in the frame header, so existing values must
// never change. The zero value is intentionally invalid: a zeroed header
// field is detected as corruption rather than silently decoded as a valid
// algorithm.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone represents no compression.
	TypeZstd Type = 0x2 // TypeZstd represents Zstandard compression.
	TypeS2   Type = 0x3 // TypeS2 represents S2 compression.
	TypeLZ4  Type = 0x4 // TypeLZ4 represents LZ4 block compression.
)

// String returns the canonical name of the compression type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether t is one of the built-in compression types.
func (t Type) IsValid() bool {
	switch t {
	case TypeNone, TypeZstd, TypeS2, TypeLZ4:
		return true
	default:
		return false
	}
}

// ParseType converts a case-insensitive algorithm name ("none", "zstd",
// "s2", "lz4") into its Type value.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(name) {
	case "none":
		return TypeNone, nil
	case "zstd":
		return TypeZstd, nil
	case "s2":
		return TypeS2, nil
	case "lz4":
		return TypeLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompressionType, name)
	}
}

// Compressor compresses byte payloads.
//
// Implementations are tuned for segio's frame payloads, which are typically
// 1KB-64KB blocks produced by a sink.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores payloads produced by the matching Compressor.
//
// Separate interfaces allow for asymmetric implementations where compression
// and decompression have different performance characteristics or resource
// requirements.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input data must have been compressed with the same algorithm. The
	// decompressor validates the data format and returns an error if the data
	// is corrupted or uses an incompatible format.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
//
// This interface is useful for implementations that can handle both
// operations efficiently with shared internal state or optimizations.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCompressor(),
	TypeZstd: NewZstdCompressor(),
	TypeS2:   NewS2Compressor(),
	TypeLZ4:  NewLZ4Compressor(),
}

// customCodecs holds codecs registered at runtime, keyed by their wire type.
// Lookups happen on every frame decode, so the map is a concurrent one
// rather than a mutex-guarded map.
var customCodecs = xsync.NewMap[Type, Codec]()

// RegisterCodec makes codec available to GetCodec under the given type.
//
// Built-in types cannot be overridden. Registering the same custom type
// twice replaces the earlier codec. The registry is safe for concurrent
// use, but registration is expected to happen during program init, before
// frames referencing the type are decoded.
func RegisterCodec(compressionType Type, codec Codec) error {
	if codec == nil {
		return fmt.Errorf("register compression type %s: nil codec", compressionType)
	}
	if _, ok := builtinCodecs[compressionType]; ok {
		return fmt.Errorf("register compression type %s: built-in type cannot be overridden", compressionType)
	}

	customCodecs.Store(compressionType, codec)

	return nil
}

// GetCodec retrieves the Codec for the specified compression type.
//
// Built-in types are checked first, then codecs added via RegisterCodec.
// Returns errs.ErrInvalidCompressionType if no codec is registered for the
// type.
func GetCodec(compressionType Type) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}
	if codec, ok := customCodecs.Load(compressionType); ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompressionType, uint8(compressionType))
}
