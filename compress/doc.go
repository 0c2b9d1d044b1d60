// Package compress provides block compression codecs for segio frame
// payloads.
//
// Compression is applied at the payload level: the frame encoder compresses
// the payload bytes before writing them to the wire, and the frame decoder
// reverses it after the checksum has been verified. Four algorithms are
// supported:
//
//   - None: no compression (fastest, largest)
//   - Zstd: excellent compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Built-in codecs are retrieved by wire type:
//
//	codec, err := compress.GetCodec(compress.TypeZstd)
//	compressed, err := codec.Compress(payload)
//	original, err := codec.Decompress(compressed)
//
// # Algorithm Selection
//
// | Workload Type       | Recommended | Reason                         |
// |---------------------|-------------|--------------------------------|
// | Storage-constrained | Zstd        | Best compression ratio         |
// | Real-time streaming | S2          | Balanced speed and compression |
// | Read-heavy          | LZ4         | Fastest decompression          |
// | Incompressible data | None        | No compression overhead        |
//
// # Zstd Builds
//
// The Zstd codec has two implementations selected by build tags: a cgo
// binding (valyala/gozstd) used when cgo is available, and a pure-Go
// implementation (klauspost/compress/zstd) used otherwise. Both produce
// standard Zstandard frames and interoperate freely.
//
// # Custom Codecs
//
// Applications can register their own codec under an unused type value:
//
//	const TypeLzma = compress.Type(0x70)
//
//	err := compress.RegisterCodec(TypeLzma, myLzmaCodec)
//	codec, _ := compress.GetCodec(TypeLzma)
//
// The registry is safe for concurrent use. Built-in types cannot be
// overridden.
//
// # Thread Safety
//
// All built-in codecs are stateless or internally pooled and safe for
// concurrent use across goroutines.
package compress
