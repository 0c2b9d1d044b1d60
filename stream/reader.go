package stream

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/arontsang/segio/errs"
	"github.com/arontsang/segio/internal/options"
	"github.com/arontsang/segio/internal/pool"
	"github.com/arontsang/segio/segment"
)

const (
	// DefaultSegmentSize is the slab size a ReaderSource fetches into.
	DefaultSegmentSize = pool.SegmentDefaultSize

	// MinSegmentSize is the smallest configurable slab size.
	MinSegmentSize = 16
)

// Option configures a ReaderSource.
type Option = options.Option[*ReaderSource]

// WithSegmentSize sets the slab size the source fetches into. Smaller slabs
// increase segmentation (useful in tests); larger slabs reduce read calls.
// Fails with errs.ErrInvalidSegmentSize when n is below MinSegmentSize.
func WithSegmentSize(n int) Option {
	return options.New(func(r *ReaderSource) error {
		if n < MinSegmentSize {
			return fmt.Errorf("%w: %d is below the minimum of %d", errs.ErrInvalidSegmentSize, n, MinSegmentSize)
		}
		r.segSize = n

		return nil
	})
}

// slab is one fetched chunk. data is the unconsumed portion; release returns
// the backing storage to the pool.
type slab struct {
	data    []byte
	release func()
}

// ReaderSource adapts an io.Reader into a Source. It fetches into fixed-size
// pooled slabs, accumulates them as the unconsumed buffer, and maps the
// reader's io.EOF to the completion flag.
//
// A ReaderSource is single-consumer: Read, Advance and Close must not be
// called concurrently.
type ReaderSource struct {
	reader  io.Reader
	segSize int

	slabs    []slab
	buffered int
	examined int
	eof      bool
	err      error
	closed   bool
}

// NewReaderSource creates a Source reading from reader.
func NewReaderSource(reader io.Reader, opts ...Option) (*ReaderSource, error) {
	r := &ReaderSource{
		reader:  reader,
		segSize: DefaultSegmentSize,
	}

	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// Read implements Source. It fetches from the underlying reader until at
// least one unexamined byte is buffered or the stream ends, then returns a
// view over all buffered unconsumed bytes. ctx is honored between fetches;
// an in-flight reader call itself is not interruptible.
func (r *ReaderSource) Read(ctx context.Context) (segment.Buffer, bool, error) {
	if r.closed {
		return segment.Buffer{}, false, errs.ErrSourceClosed
	}
	if r.err != nil {
		return segment.Buffer{}, false, r.err
	}

	for !r.eof && r.examined == r.buffered {
		if err := r.fetch(ctx); err != nil {
			return segment.Buffer{}, false, err
		}
	}

	return r.view(), r.eof, nil
}

// Advance implements Source.
func (r *ReaderSource) Advance(consumed, examined int) error {
	if r.closed {
		return errs.ErrSourceClosed
	}
	if consumed < 0 || consumed > examined || examined > r.buffered {
		return fmt.Errorf("%w: consumed=%d examined=%d buffered=%d",
			errs.ErrInvalidAdvance, consumed, examined, r.buffered)
	}

	r.releaseFront(consumed)
	r.buffered -= consumed
	r.examined = examined - consumed

	return nil
}

// Close releases all pooled slabs and closes the underlying reader when it
// implements io.Closer. Subsequent Read and Advance calls fail with
// errs.ErrSourceClosed.
func (r *ReaderSource) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	for i := range r.slabs {
		r.slabs[i].release()
		r.slabs[i] = slab{}
	}
	r.slabs = nil
	r.buffered = 0
	r.examined = 0

	if c, ok := r.reader.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// fetch pulls one slab's worth of data from the underlying reader. io.EOF
// latches the completion flag; any other error is sticky.
func (r *ReaderSource) fetch(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, release := pool.GetSegment(r.segSize)

	n, err := r.reader.Read(data)
	if n > 0 {
		r.slabs = append(r.slabs, slab{data: data[:n], release: release})
		r.buffered += n
	} else {
		release()
	}

	if err != nil {
		if errors.Is(err, io.EOF) {
			r.eof = true
			Logger().Debug("reader source reached end of stream",
				zap.Int("buffered", r.buffered))

			return nil
		}

		r.err = err

		return err
	}

	return nil
}

// view builds a segmented buffer over the unconsumed slabs.
func (r *ReaderSource) view() segment.Buffer {
	segs := make([][]byte, len(r.slabs))
	for i, s := range r.slabs {
		segs[i] = s.data
	}

	return segment.NewBuffer(segs...)
}

// releaseFront drops n consumed bytes from the head of the slab chain,
// returning fully consumed slabs to the pool.
func (r *ReaderSource) releaseFront(n int) {
	for n > 0 {
		head := &r.slabs[0]
		if n < len(head.data) {
			head.data = head.data[n:]
			return
		}

		n -= len(head.data)
		head.release()
		r.slabs[0] = slab{}
		r.slabs = r.slabs[1:]
	}
}

var _ Source = (*ReaderSource)(nil)
