package compress

import (
	"fmt"
	"testing"
)

// generateBenchmarkData creates test data for benchmarks.
func generateBenchmarkData(size int, compressibility string) []byte {
	data := make([]byte, size)

	switch compressibility {
	case "highly_compressible":
		// All zeros, maximum compression.
	case "compressible":
		pattern := []byte("sensor reading at offset 1234567890 with value 3.14159")
		for i := range data {
			data[i] = pattern[i%len(pattern)]
		}
	case "semi_compressible":
		for i := range data {
			if i%100 < 50 {
				data[i] = byte(i % 256)
			} else {
				data[i] = byte((i*7 + i*i) % 256)
			}
		}
	default:
		for i := range data {
			data[i] = byte((i*31 + i*i*7 + i*i*i*3) % 256)
		}
	}

	return data
}

// BenchmarkAllCodecs_Compress benchmarks compression for all codecs with
// various data patterns.
func BenchmarkAllCodecs_Compress(b *testing.B) {
	sizes := []int{
		1024,    // 1 KB
		16384,   // 16 KB
		65536,   // 64 KB
		1048576, // 1 MB
	}

	compressibilities := []string{
		"highly_compressible",
		"compressible",
		"semi_compressible",
		"incompressible",
	}

	codecs := getAllCodecs()

	for codecName, codec := range codecs {
		b.Run(codecName, func(b *testing.B) {
			for _, size := range sizes {
				for _, comp := range compressibilities {
					data := generateBenchmarkData(size, comp)

					b.Run(fmt.Sprintf("%dKB_%s", size/1024, comp), func(b *testing.B) {
						b.SetBytes(int64(size))
						b.ResetTimer()

						for b.Loop() {
							_, err := codec.Compress(data)
							if err != nil {
								b.Fatal(err)
							}
						}
					})
				}
			}
		})
	}
}

// BenchmarkAllCodecs_Decompress benchmarks decompression for all codecs.
func BenchmarkAllCodecs_Decompress(b *testing.B) {
	sizes := []int{
		1024,    // 1 KB
		16384,   // 16 KB
		65536,   // 64 KB
		1048576, // 1 MB
	}

	codecs := getAllCodecs()

	for codecName, codec := range codecs {
		b.Run(codecName, func(b *testing.B) {
			for _, size := range sizes {
				data := generateBenchmarkData(size, "compressible")

				compressed, err := codec.Compress(data)
				if err != nil {
					b.Fatal(err)
				}

				b.Run(fmt.Sprintf("%dKB", size/1024), func(b *testing.B) {
					b.SetBytes(int64(size))
					b.ResetTimer()

					for b.Loop() {
						_, err := codec.Decompress(compressed)
						if err != nil {
							b.Fatal(err)
						}
					}
				})
			}
		})
	}
}

// BenchmarkGetCodec measures registry lookup cost, which sits on the frame
// decode path.
func BenchmarkGetCodec(b *testing.B) {
	b.Run("builtin", func(b *testing.B) {
		for b.Loop() {
			_, err := GetCodec(TypeZstd)
			if err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("custom", func(b *testing.B) {
		const customType = Type(0x7F)
		if err := RegisterCodec(customType, xorCodec{key: 0x42}); err != nil {
			b.Fatal(err)
		}

		for b.Loop() {
			_, err := GetCodec(customType)
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}
