package stream

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arontsang/segio/errs"
)

// testPattern returns n bytes of a deterministic, non-repeating-per-slab
// pattern.
func testPattern(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i*7 + 3)
	}

	return data
}

type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

type failingReader struct {
	err error
}

func (f *failingReader) Read([]byte) (int, error) {
	return 0, f.err
}

func TestNewReaderSourceDefaults(t *testing.T) {
	require := require.New(t)

	src, err := NewReaderSource(bytes.NewReader(nil))
	require.NoError(err)
	require.Equal(DefaultSegmentSize, src.segSize)
}

func TestWithSegmentSize(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		src, err := NewReaderSource(bytes.NewReader(nil), WithSegmentSize(32))
		require.NoError(t, err)
		require.Equal(t, 32, src.segSize)
	})

	t.Run("below minimum", func(t *testing.T) {
		_, err := NewReaderSource(bytes.NewReader(nil), WithSegmentSize(MinSegmentSize-1))
		require.ErrorIs(t, err, errs.ErrInvalidSegmentSize)
	})
}

func TestReaderSourceReadAll(t *testing.T) {
	require := require.New(t)

	input := testPattern(100)
	src, err := NewReaderSource(bytes.NewReader(input), WithSegmentSize(16))
	require.NoError(err)
	defer src.Close()

	buf, err := ReadAll(context.Background(), src)
	require.NoError(err)
	require.Equal(input, buf.Bytes())

	// With 16-byte slabs a 100-byte stream cannot be contiguous.
	segCount := 0
	for range buf.Segments() {
		segCount++
	}
	require.Greater(segCount, 1)
}

func TestReaderSourceEmptyStream(t *testing.T) {
	require := require.New(t)

	src, err := NewReaderSource(bytes.NewReader(nil))
	require.NoError(err)
	defer src.Close()

	buf, completed, err := src.Read(context.Background())
	require.NoError(err)
	require.True(completed)
	require.True(buf.IsEmpty())
}

func TestReaderSourceExaminedWatermark(t *testing.T) {
	require := require.New(t)

	input := testPattern(64)
	src, err := NewReaderSource(bytes.NewReader(input), WithSegmentSize(16))
	require.NoError(err)
	defer src.Close()

	ctx := context.Background()

	first, completed, err := src.Read(ctx)
	require.NoError(err)
	require.False(completed)
	require.Equal(16, first.Len())
	require.Equal(input[:16], first.Bytes())

	// Examining everything without consuming forces the next read to fetch
	// beyond the watermark while still returning the earlier bytes.
	require.NoError(src.Advance(0, first.Len()))

	second, _, err := src.Read(ctx)
	require.NoError(err)
	require.Equal(32, second.Len())
	require.Equal(input[:32], second.Bytes())
}

func TestReaderSourceConsume(t *testing.T) {
	require := require.New(t)

	input := testPattern(37)
	src, err := NewReaderSource(bytes.NewReader(input), WithSegmentSize(16))
	require.NoError(err)
	defer src.Close()

	ctx := context.Background()

	buf, _, err := src.Read(ctx)
	require.NoError(err)
	require.Equal(16, buf.Len())

	// Consume part of the first slab; the remainder must still be returned.
	require.NoError(src.Advance(4, buf.Len()))

	buf, _, err = src.Read(ctx)
	require.NoError(err)
	require.Equal(input[4:32], buf.Bytes())

	// Consume across the slab boundary.
	require.NoError(src.Advance(20, buf.Len()))

	buf, _, err = src.Read(ctx)
	require.NoError(err)
	require.Equal(input[24:], buf.Bytes())

	// One more cycle surfaces the reader's deferred EOF as completion.
	require.NoError(src.Advance(0, buf.Len()))

	buf, completed, err := src.Read(ctx)
	require.NoError(err)
	require.Equal(input[24:], buf.Bytes())
	require.True(completed)
}

func TestReaderSourceAdvanceValidation(t *testing.T) {
	require := require.New(t)

	src, err := NewReaderSource(bytes.NewReader(testPattern(32)), WithSegmentSize(16))
	require.NoError(err)
	defer src.Close()

	buf, _, err := src.Read(context.Background())
	require.NoError(err)
	n := buf.Len()

	require.ErrorIs(src.Advance(-1, 0), errs.ErrInvalidAdvance)
	require.ErrorIs(src.Advance(2, 1), errs.ErrInvalidAdvance)
	require.ErrorIs(src.Advance(0, n+1), errs.ErrInvalidAdvance)

	// A valid advance still works afterwards.
	require.NoError(src.Advance(0, n))
}

func TestReaderSourceClose(t *testing.T) {
	require := require.New(t)

	underlying := &closeRecorder{Reader: bytes.NewReader(testPattern(32))}
	src, err := NewReaderSource(underlying, WithSegmentSize(16))
	require.NoError(err)

	_, _, err = src.Read(context.Background())
	require.NoError(err)

	require.NoError(src.Close())
	require.True(underlying.closed)

	_, _, err = src.Read(context.Background())
	require.ErrorIs(err, errs.ErrSourceClosed)
	require.ErrorIs(src.Advance(0, 0), errs.ErrSourceClosed)

	// Closing twice is harmless.
	require.NoError(src.Close())
}

func TestReaderSourceContextCanceled(t *testing.T) {
	require := require.New(t)

	src, err := NewReaderSource(bytes.NewReader(testPattern(32)))
	require.NoError(err)
	defer src.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = src.Read(ctx)
	require.ErrorIs(err, context.Canceled)
}

func TestReaderSourceStickyError(t *testing.T) {
	require := require.New(t)

	boom := errors.New("disk on fire")
	src, err := NewReaderSource(&failingReader{err: boom})
	require.NoError(err)
	defer src.Close()

	_, _, err = src.Read(context.Background())
	require.ErrorIs(err, boom)

	// The failure latches.
	_, _, err = src.Read(context.Background())
	require.ErrorIs(err, boom)
}
