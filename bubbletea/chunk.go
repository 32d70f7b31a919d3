package bubbletea

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rivo/uniseg"
)

// Chunk splits s into pieces of at most n grapheme clusters, so replayed
// deltas never cut a character or emoji sequence in half.
func Chunk(s string, n int) []string {
	if s == "" {
		return nil
	}
	if n < 1 {
		n = 1
	}
	var chunks []string
	start, count := 0, 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		count++
		if count == n {
			_, end := g.Positions()
			chunks = append(chunks, s[start:end])
			start, count = end, 0
		}
	}
	if start < len(s) {
		chunks = append(chunks, s[start:])
	}
	return chunks
}

// Replay returns a StreamFunc that emits content in chunks of n grapheme
// clusters, sleeping delay on clk between chunks.
func Replay(content string, n int, delay time.Duration, clk clock.Clock) StreamFunc {
	return func(ctx context.Context, onDelta func(string)) error {
		for i, chunk := range Chunk(content, n) {
			if i > 0 && delay > 0 {
				t := clk.Timer(delay)
				select {
				case <-ctx.Done():
					t.Stop()
					return ctx.Err()
				case <-t.C:
				}
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			onDelta(chunk)
		}
		return nil
	}
}
