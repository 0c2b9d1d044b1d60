package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arontsang/segio/errs"
)

// maxDecompressSize caps the adaptive decompression buffer. LZ4 blocks do
// not record their decompressed size, so a corrupted block could otherwise
// demand unbounded memory.
const maxDecompressSize = 128 * 1024 * 1024

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses payloads with the LZ4 block format. It favors
// decompression speed over compression ratio.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using LZ4 block compression.
// Empty input yields nil output. Uses a pooled lz4.Compressor.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses an LZ4 block produced by Compress.
//
// LZ4 blocks do not carry their decompressed size, so the buffer is sized
// adaptively:
//  1. Start at 4x the compressed size (a common expansion ratio)
//  2. On lz4.ErrInvalidSourceShortBuffer, double the buffer and retry
//  3. Give up with errs.ErrDecompressSizeLimit once the buffer would
//     exceed 128MB, which indicates corruption rather than a real payload
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	for bufSize <= maxDecompressSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, fmt.Errorf("%w: lz4 block expanded beyond %d bytes", errs.ErrDecompressSizeLimit, maxDecompressSize)
}
