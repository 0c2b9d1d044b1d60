package frame

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/arontsang/segio/compress"
	"github.com/arontsang/segio/errs"
	"github.com/arontsang/segio/internal/options"
	"github.com/arontsang/segio/sink"
)

// Encoder writes frames to a sink. Each Encode call appends one complete
// frame; frames from successive calls form a valid stream.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	sink  sink.Sink
	codec compress.Codec
	flag  Flag
}

// Option configures an Encoder.
type Option = options.Option[*Encoder]

// WithLittleEndian makes the encoder write frame bodies in little-endian
// byte order. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(e *Encoder) {
		e.flag.WithLittleEndian()
	})
}

// WithBigEndian makes the encoder write frame bodies in big-endian byte
// order.
func WithBigEndian() Option {
	return options.NoError(func(e *Encoder) {
		e.flag.WithBigEndian()
	})
}

// WithCompression selects the payload compression algorithm. The type must
// resolve to a codec, either built-in or added via compress.RegisterCodec.
func WithCompression(compression compress.Type) Option {
	return options.New(func(e *Encoder) error {
		codec, err := compress.GetCodec(compression)
		if err != nil {
			return err
		}

		e.flag.Compression = compression
		e.codec = codec

		return nil
	})
}

// NewEncoder creates an Encoder that writes frames to s.
//
// Defaults: little-endian byte order, no compression.
func NewEncoder(s sink.Sink, opts ...Option) (*Encoder, error) {
	enc := &Encoder{
		sink:  s,
		codec: compress.NewNoOpCompressor(),
		flag:  NewFlag(),
	}

	if err := options.Apply(enc, opts...); err != nil {
		return nil, err
	}

	return enc, nil
}

// Encode compresses payload and appends one frame to the sink.
//
// Payloads that do not shrink under the configured codec are stored raw,
// with the header recording compress.TypeNone, so decoders never pay for a
// compression attempt that did not help. Payloads larger than
// MaxPayloadSize are rejected with errs.ErrFrameTooLarge.
func (e *Encoder) Encode(payload []byte) error {
	if len(payload) > MaxPayloadSize {
		return fmt.Errorf("%w: payload is %d bytes, limit is %d", errs.ErrFrameTooLarge, len(payload), MaxPayloadSize)
	}

	compressed, err := e.codec.Compress(payload)
	if err != nil {
		return fmt.Errorf("compress frame payload: %w", err)
	}

	compression := e.flag.Compression
	wire := compressed
	if compression != compress.TypeNone && (len(compressed) == 0 || len(compressed) >= len(payload)) {
		compression = compress.TypeNone
		wire = payload
	}

	flag := e.flag
	flag.Compression = compression

	header := Header{
		Flag:      flag,
		Length:    uint32(len(wire)),
		RawLength: uint32(len(payload)),
		Checksum:  xxhash.Sum64(wire),
	}

	header.EncodeTo(e.sink)
	sink.WriteBytes(e.sink, wire)

	return nil
}
