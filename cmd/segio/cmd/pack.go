package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arontsang/segio/compress"
	"github.com/arontsang/segio/frame"
	"github.com/arontsang/segio/internal/pool"
)

var (
	packInput       string
	packOutput      string
	packCompression string
	packBigEndian   bool
	packChunkSize   int
)

// packCmd represents the pack command
var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Pack a raw byte stream into frames",
	Long: `Pack reads a raw byte stream, splits it into fixed-size payloads, and
writes each payload as a checksummed frame.

Example:
  segio pack -i data.bin -o data.segio --compression zstd`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		compression, err := compress.ParseType(packCompression)
		if err != nil {
			return err
		}
		if packChunkSize <= 0 || packChunkSize > frame.MaxPayloadSize {
			return fmt.Errorf("chunk size must be between 1 and %d, got %d", frame.MaxPayloadSize, packChunkSize)
		}

		in, err := openInput(packInput)
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := openOutput(packOutput)
		if err != nil {
			return err
		}
		defer out.Close()

		opts := []frame.Option{frame.WithCompression(compression)}
		if packBigEndian {
			opts = append(opts, frame.WithBigEndian())
		}

		buf := pool.GetEncodeBuffer()
		defer pool.PutEncodeBuffer(buf)

		encoder, err := frame.NewEncoder(buf, opts...)
		if err != nil {
			return err
		}

		chunk := make([]byte, packChunkSize)

		var frames, rawBytes, wireBytes int64
		for {
			n, rerr := io.ReadFull(in, chunk)
			if n > 0 {
				if err := encoder.Encode(chunk[:n]); err != nil {
					return fmt.Errorf("encode frame: %w", err)
				}
				if _, err := buf.WriteTo(out); err != nil {
					return fmt.Errorf("write output: %w", err)
				}

				frames++
				rawBytes += int64(n)
				wireBytes += int64(buf.Len())
				buf.Reset()
			}

			if errors.Is(rerr, io.EOF) || errors.Is(rerr, io.ErrUnexpectedEOF) {
				break
			}
			if rerr != nil {
				return fmt.Errorf("read input: %w", rerr)
			}
		}

		logger.Info("packed stream",
			zap.Int64("frames", frames),
			zap.Int64("raw_bytes", rawBytes),
			zap.Int64("wire_bytes", wireBytes),
			zap.String("compression", compression.String()),
		)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(packCmd)
	packCmd.Flags().StringVarP(&packInput, "input", "i", "", "Input file (default stdin)")
	packCmd.Flags().StringVarP(&packOutput, "output", "o", "", "Output file (default stdout)")
	packCmd.Flags().StringVar(&packCompression, "compression", "none", "Payload compression: none, zstd, s2, lz4")
	packCmd.Flags().BoolVar(&packBigEndian, "big-endian", false, "Write header fields big-endian")
	packCmd.Flags().IntVar(&packChunkSize, "chunk-size", 1<<20, "Maximum payload bytes per frame")
}
