// Package stream provides the streaming-read side of segio: a contract for
// sources that deliver byte streams as segmented buffers, an adapter that
// turns any io.Reader into such a source, and a drain helper that
// accumulates a whole stream.
//
// # The Source Contract
//
// A Source buffers incoming bytes and exposes them without copying:
//
//	buf, completed, err := src.Read(ctx) // all buffered unconsumed bytes
//	// ... decode a prefix of buf ...
//	err = src.Advance(consumed, examined)
//
// Read blocks only while nothing unexamined is buffered; Advance releases a
// consumed prefix and records how far the caller looked. Marking bytes as
// examined without consuming them makes the next Read wait for more data —
// the pattern both ReadAll and incremental frame decoders are built on.
package stream

import (
	"context"

	"github.com/arontsang/segio/segment"
)

// Source delivers a byte stream incrementally as segmented buffers.
//
// Read waits until unexamined bytes are buffered (or the stream completes)
// and returns a view over all currently buffered unconsumed bytes, plus a
// completion flag that is true when no bytes beyond the returned view will
// ever arrive. The view is valid until the next Advance or Close.
//
// Advance marks the first consumed buffered bytes as consumed — releasing
// them and invalidating views over them — and the first examined bytes as
// examined, so a subsequent Read waits until data beyond that watermark
// arrives or the stream completes. It requires
// 0 <= consumed <= examined <= buffered and fails with
// errs.ErrInvalidAdvance otherwise. Advancing with consumed == 0 and
// examined equal to the buffer's length re-exposes every byte as still
// unconsumed while demanding fresh data from the next Read.
type Source interface {
	Read(ctx context.Context) (segment.Buffer, bool, error)
	Advance(consumed, examined int) error
}

// ReadAll drains src: it repeatedly reads, re-exposing already seen bytes as
// unconsumed on each iteration, until the source reports completion, then
// returns the full accumulated buffer exactly once. It carries no
// endianness logic.
//
// Nothing is released until completion, so a long-lived stream's entire
// contents stay buffered. Callers with bounded memory should run their own
// Read/Advance loop and consume as they decode.
func ReadAll(ctx context.Context, src Source) (segment.Buffer, error) {
	for {
		buf, completed, err := src.Read(ctx)
		if err != nil {
			return segment.Buffer{}, err
		}
		if completed {
			return buf, nil
		}

		if err := src.Advance(0, buf.Len()); err != nil {
			return segment.Buffer{}, err
		}
	}
}
