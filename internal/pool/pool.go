// Package pool provides pooled buffers and segment slabs to minimize
// allocations on segio's hot paths.
package pool

import (
	"sync"

	"github.com/arontsang/segio/sink"
)

const (
	// EncodeBufferDefaultSize is the initial capacity of pooled sink buffers.
	EncodeBufferDefaultSize = 16 * 1024 // 16KiB

	// EncodeBufferMaxThreshold is the capacity above which a returned sink
	// buffer is discarded instead of pooled.
	EncodeBufferMaxThreshold = 128 * 1024 // 128KiB

	// SegmentDefaultSize is the slab size served by the segment pool.
	SegmentDefaultSize = 8 * 1024 // 8KiB
)

// SinkBufferPool is a pool of sink.Buffers.
//
// It uses sync.Pool internally. The pool can be configured with a maximum
// capacity threshold to avoid retaining overly large buffers that could lead
// to memory bloat.
type SinkBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewSinkBufferPool creates a pool serving buffers with the specified
// initial capacity, discarding returned buffers whose capacity exceeds
// maxThreshold (0 disables the threshold).
func NewSinkBufferPool(defaultSize int, maxThreshold int) *SinkBufferPool {
	return &SinkBufferPool{
		pool: sync.Pool{
			New: func() any {
				return sink.NewBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty buffer from the pool.
func (p *SinkBufferPool) Get() *sink.Buffer {
	buf, _ := p.pool.Get().(*sink.Buffer)
	return buf
}

// Put returns a buffer to the pool for reuse.
func (p *SinkBufferPool) Put(buf *sink.Buffer) {
	if buf == nil {
		return
	}

	if p.maxThreshold > 0 && buf.Cap() > p.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	buf.Reset()
	p.pool.Put(buf)
}

var encodeDefaultPool = NewSinkBufferPool(EncodeBufferDefaultSize, EncodeBufferMaxThreshold)

// GetEncodeBuffer retrieves a sink buffer from the default encode pool.
func GetEncodeBuffer() *sink.Buffer {
	return encodeDefaultPool.Get()
}

// PutEncodeBuffer returns a sink buffer to the default encode pool.
func PutEncodeBuffer(buf *sink.Buffer) {
	encodeDefaultPool.Put(buf)
}

var segmentPool = sync.Pool{
	New: func() any {
		b := make([]byte, SegmentDefaultSize)
		return &b
	},
}

// GetSegment retrieves a byte slab of the given size. Slabs of
// SegmentDefaultSize come from the pool; other sizes are allocated fresh.
// The caller must call the returned release function once the slab (and any
// view over it) is no longer in use.
func GetSegment(size int) ([]byte, func()) {
	if size != SegmentDefaultSize {
		return make([]byte, size), func() {}
	}

	ptr, _ := segmentPool.Get().(*[]byte)

	return *ptr, func() { segmentPool.Put(ptr) }
}
