package frame

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/arontsang/segio/compress"
	"github.com/arontsang/segio/errs"
	"github.com/arontsang/segio/segment"
	"github.com/arontsang/segio/stream"
)

// Frame is one decoded frame: its header and the decompressed payload.
type Frame struct {
	Header  Header
	Payload []byte
}

// Decode decodes the first frame in buf.
//
// On success it returns the frame and a view of buf positioned after it, so
// callers can decode back-to-back frames from one buffer. buf itself is
// never consumed.
//
// Returns errs.ErrShortBuffer when buf does not yet hold a complete frame;
// callers reading from a stream should treat that as "fetch more data".
// All other errors are fatal for the buffer: ErrInvalidMagicNumber,
// ErrInvalidHeaderFlags, ErrFrameTooLarge, ErrChecksumMismatch,
// ErrInvalidCompressionType, or a codec decompression failure.
func Decode(buf segment.Buffer) (Frame, segment.Buffer, error) {
	header, err := DecodeHeader(buf)
	if err != nil {
		return Frame{}, buf, err
	}

	// Length fields are validated before anything is allocated so a
	// corrupt header cannot demand gigabytes.
	if header.Length > MaxPayloadSize || header.RawLength > MaxPayloadSize {
		return Frame{}, buf, fmt.Errorf("%w: header declares %d wire bytes, %d raw bytes, limit is %d",
			errs.ErrFrameTooLarge, header.Length, header.RawLength, MaxPayloadSize)
	}

	total := HeaderSize + int(header.Length)
	if buf.Len() < total {
		return Frame{}, buf, fmt.Errorf("decode frame: need %d bytes, have %d: %w", total, buf.Len(), errs.ErrShortBuffer)
	}

	wire := make([]byte, header.Length)
	buf.Skip(HeaderSize).CopyTo(wire)

	if sum := xxhash.Sum64(wire); sum != header.Checksum {
		return Frame{}, buf, fmt.Errorf("%w: header 0x%016x, payload 0x%016x", errs.ErrChecksumMismatch, header.Checksum, sum)
	}

	codec, err := compress.GetCodec(header.Flag.Compression)
	if err != nil {
		return Frame{}, buf, err
	}

	payload, err := codec.Decompress(wire)
	if err != nil {
		return Frame{}, buf, fmt.Errorf("decompress frame payload: %w", err)
	}

	if len(payload) != int(header.RawLength) {
		return Frame{}, buf, fmt.Errorf("%w: header declares %d raw bytes, payload decompressed to %d",
			errs.ErrChecksumMismatch, header.RawLength, len(payload))
	}

	return Frame{Header: header, Payload: payload}, buf.Skip(total), nil
}

// ReadFrame reads the next complete frame from src, fetching as many times
// as needed. Bytes after the frame stay buffered for the next call.
//
// Returns io.EOF when the stream ends cleanly on a frame boundary and
// io.ErrUnexpectedEOF when it ends mid-frame. Decode failures are returned
// as-is without consuming the bad bytes.
func ReadFrame(ctx context.Context, src stream.Source) (Frame, error) {
	for {
		buf, completed, err := src.Read(ctx)
		if err != nil {
			return Frame{}, err
		}

		decoded, rest, err := Decode(buf)
		if err == nil {
			consumed := buf.Len() - rest.Len()
			if err := src.Advance(consumed, consumed); err != nil {
				return Frame{}, err
			}

			return decoded, nil
		}

		if !errors.Is(err, errs.ErrShortBuffer) {
			return Frame{}, err
		}

		if completed {
			if buf.IsEmpty() {
				return Frame{}, io.EOF
			}

			return Frame{}, fmt.Errorf("truncated frame after %d bytes: %w", buf.Len(), io.ErrUnexpectedEOF)
		}

		if err := src.Advance(0, buf.Len()); err != nil {
			return Frame{}, err
		}
	}
}
