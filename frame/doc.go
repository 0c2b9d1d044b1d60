// Package frame implements a length-prefixed, checksummed envelope for
// byte payloads.
//
// A frame carries one payload, optionally compressed, behind a fixed
// 20-byte header that records the payload's byte order, compression, sizes,
// and an xxHash64 digest. Frames are self-describing: a decoder needs no
// out-of-band configuration to read a stream of them.
//
// # Frame Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (20 bytes, fixed)                                │
//	│  - Flag (4 bytes): magic, endianness, compression       │
//	│  - Length (4 bytes): wire payload size                  │
//	│  - RawLength (4 bytes): payload size before compression │
//	│  - Checksum (8 bytes): xxHash64 of wire payload         │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (Length bytes)                                  │
//	│  - Compressed with the codec the flag names             │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field       | Type   | Description
//	-------|-------------|--------|----------------------------------
//	0-1    | Options     | uint16 | Magic number, endianness (always little-endian)
//	2      | Compression | uint8  | Payload codec (compress.Type)
//	3      | Reserved    | uint8  | Must be written as 0
//	4-7    | Length      | uint32 | Payload bytes on the wire
//	8-11   | RawLength   | uint32 | Payload bytes before compression
//	12-19  | Checksum    | uint64 | xxHash64 of the wire payload
//
// The Options field is packed as:
//
//	Bit 0:     Endianness (0=little-endian, 1=big-endian)
//	Bits 1-3:  Reserved (must be 0)
//	Bits 4-15: Magic number (0xBF1, frame format v1)
//
// Options itself is always stored little-endian; the endianness bit governs
// only the Length, RawLength, and Checksum fields that follow it.
//
// # Encoding
//
//	var buf sink.Buffer
//	enc, err := frame.NewEncoder(&buf,
//	    frame.WithCompression(compress.TypeZstd),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := enc.Encode(payload); err != nil {
//	    return err
//	}
//	wire := buf.Bytes()
//
// Payloads that do not shrink under the configured codec are stored raw
// with the header recording compress.TypeNone, so incompressible data
// never grows on the wire.
//
// # Decoding
//
// Decode operates on a segment.Buffer and returns the remainder, which
// makes back-to-back frames in one buffer cheap to walk:
//
//	for !buf.IsEmpty() {
//	    decoded, rest, err := frame.Decode(buf)
//	    if err != nil {
//	        return err
//	    }
//	    handle(decoded.Payload)
//	    buf = rest
//	}
//
// ReadFrame drives a stream.Source instead, fetching until a complete
// frame is buffered:
//
//	for {
//	    decoded, err := frame.ReadFrame(ctx, src)
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    handle(decoded.Payload)
//	}
//
// # Integrity
//
// The checksum covers the wire payload, so corruption is detected before
// bytes reach a decompressor. Header corruption is caught by the magic
// number, the reserved bits, and the size limits; a frame that decompresses
// to a size other than RawLength is rejected as corrupt.
package frame
