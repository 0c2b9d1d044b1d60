package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arontsang/segio/frame"
	"github.com/arontsang/segio/stream"
)

var (
	unpackInput  string
	unpackOutput string
)

// unpackCmd represents the unpack command
var unpackCmd = &cobra.Command{
	Use:   "unpack",
	Short: "Unpack a framed stream",
	Long: `Unpack decodes a framed stream, verifies every frame's checksum, and
writes the concatenated payloads.

Example:
  segio unpack -i data.segio -o data.bin`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(unpackInput)
		if err != nil {
			return err
		}

		src, err := stream.NewReaderSource(in)
		if err != nil {
			return err
		}
		defer src.Close()

		out, err := openOutput(unpackOutput)
		if err != nil {
			return err
		}
		defer out.Close()

		w := bufio.NewWriter(out)

		var frames, payloadBytes int64
		for {
			fr, err := frame.ReadFrame(cmd.Context(), src)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return fmt.Errorf("read frame %d: %w", frames, err)
			}

			if _, err := w.Write(fr.Payload); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			frames++
			payloadBytes += int64(len(fr.Payload))
		}

		if err := w.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}

		logger.Info("unpacked stream",
			zap.Int64("frames", frames),
			zap.Int64("payload_bytes", payloadBytes),
		)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(unpackCmd)
	unpackCmd.Flags().StringVarP(&unpackInput, "input", "i", "", "Input file (default stdin)")
	unpackCmd.Flags().StringVarP(&unpackOutput, "output", "o", "", "Output file (default stdout)")
}
