package frame

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/arontsang/segio/compress"
	"github.com/arontsang/segio/errs"
	"github.com/arontsang/segio/segment"
	"github.com/arontsang/segio/sink"
)

// randomPayload returns deterministic full-entropy bytes, which no built-in
// codec can shrink.
func randomPayload(n int) []byte {
	data := make([]byte, n)
	rng := rand.New(rand.NewSource(42))
	rng.Read(data)

	return data
}

func compressiblePayload(n int) []byte {
	return bytes.Repeat([]byte("ABCD"), n/4)
}

func TestNewEncoder_Defaults(t *testing.T) {
	var buf sink.Buffer
	enc, err := NewEncoder(&buf)
	require.NoError(t, err)

	payload := []byte("hello frame")
	require.NoError(t, enc.Encode(payload))

	header, err := DecodeHeader(segment.NewBuffer(buf.Bytes()))
	require.NoError(t, err)
	require.True(t, header.Flag.IsLittleEndian())
	require.Equal(t, compress.TypeNone, header.Flag.Compression)
	require.Equal(t, uint32(len(payload)), header.Length)
	require.Equal(t, uint32(len(payload)), header.RawLength)
	require.Equal(t, xxhash.Sum64(payload), header.Checksum)

	// Uncompressed frames carry the payload verbatim after the header.
	require.Equal(t, HeaderSize+len(payload), buf.Len())
	require.Equal(t, payload, buf.Bytes()[HeaderSize:])
}

func TestNewEncoder_BigEndian(t *testing.T) {
	var buf sink.Buffer
	enc, err := NewEncoder(&buf, WithBigEndian())
	require.NoError(t, err)

	require.NoError(t, enc.Encode([]byte{0x01}))

	header, err := DecodeHeader(segment.NewBuffer(buf.Bytes()))
	require.NoError(t, err)
	require.True(t, header.Flag.IsBigEndian())
}

func TestNewEncoder_InvalidCompression(t *testing.T) {
	var buf sink.Buffer
	enc, err := NewEncoder(&buf, WithCompression(compress.Type(0x33)))
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
	require.Nil(t, enc)
}

func TestEncode_Compresses(t *testing.T) {
	payload := compressiblePayload(4096)

	for _, compression := range []compress.Type{compress.TypeZstd, compress.TypeS2, compress.TypeLZ4} {
		t.Run(compression.String(), func(t *testing.T) {
			var buf sink.Buffer
			enc, err := NewEncoder(&buf, WithCompression(compression))
			require.NoError(t, err)
			require.NoError(t, enc.Encode(payload))

			header, err := DecodeHeader(segment.NewBuffer(buf.Bytes()))
			require.NoError(t, err)
			require.Equal(t, compression, header.Flag.Compression)
			require.Equal(t, uint32(len(payload)), header.RawLength)
			require.Less(t, header.Length, header.RawLength, "repetitive payload should shrink")
			require.Equal(t, HeaderSize+int(header.Length), buf.Len())
		})
	}
}

func TestEncode_IncompressibleFallsBackToRaw(t *testing.T) {
	payload := randomPayload(256)

	for _, compression := range []compress.Type{compress.TypeZstd, compress.TypeS2, compress.TypeLZ4} {
		t.Run(compression.String(), func(t *testing.T) {
			var buf sink.Buffer
			enc, err := NewEncoder(&buf, WithCompression(compression))
			require.NoError(t, err)
			require.NoError(t, enc.Encode(payload))

			header, err := DecodeHeader(segment.NewBuffer(buf.Bytes()))
			require.NoError(t, err)
			require.Equal(t, compress.TypeNone, header.Flag.Compression,
				"full-entropy payload must be stored raw")
			require.Equal(t, uint32(len(payload)), header.Length)
			require.Equal(t, uint32(len(payload)), header.RawLength)
			require.Equal(t, payload, buf.Bytes()[HeaderSize:])
		})
	}
}

func TestEncode_EmptyPayload(t *testing.T) {
	for _, compression := range []compress.Type{compress.TypeNone, compress.TypeZstd} {
		t.Run(compression.String(), func(t *testing.T) {
			var buf sink.Buffer
			enc, err := NewEncoder(&buf, WithCompression(compression))
			require.NoError(t, err)
			require.NoError(t, enc.Encode(nil))

			header, err := DecodeHeader(segment.NewBuffer(buf.Bytes()))
			require.NoError(t, err)
			require.Equal(t, compress.TypeNone, header.Flag.Compression)
			require.Equal(t, uint32(0), header.Length)
			require.Equal(t, uint32(0), header.RawLength)
			require.Equal(t, HeaderSize, buf.Len())
		})
	}
}

func TestEncode_TooLarge(t *testing.T) {
	var buf sink.Buffer
	enc, err := NewEncoder(&buf)
	require.NoError(t, err)

	err = enc.Encode(make([]byte, MaxPayloadSize+1))
	require.ErrorIs(t, err, errs.ErrFrameTooLarge)
	require.Zero(t, buf.Len(), "nothing may reach the sink on failure")
}

func TestEncode_MultipleFrames(t *testing.T) {
	var buf sink.Buffer
	enc, err := NewEncoder(&buf, WithCompression(compress.TypeS2))
	require.NoError(t, err)

	payloads := [][]byte{
		[]byte("first"),
		compressiblePayload(2048),
		[]byte("third"),
	}
	for _, p := range payloads {
		require.NoError(t, enc.Encode(p))
	}

	remaining := segment.NewBuffer(buf.Bytes())
	for i, want := range payloads {
		decoded, rest, err := Decode(remaining)
		require.NoError(t, err, "frame %d", i)
		require.Equal(t, want, decoded.Payload, "frame %d", i)
		remaining = rest
	}
	require.True(t, remaining.IsEmpty())
}
