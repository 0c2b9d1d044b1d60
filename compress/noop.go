package compress

// NoOpCompressor is a pass-through codec that performs no compression.
//
// It is useful when the payload is already compressed or incompressible
// (random, encrypted), and as a baseline in benchmarks.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is, without processing or copying.
//
// The returned slice shares the same underlying memory as the input.
// Callers must not modify the input data while the returned slice is in
// use.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without processing or copying.
//
// The returned slice shares the same underlying memory as the input.
// Callers must not modify the input data while the returned slice is in
// use.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
