package bubbletea_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	bt "github.com/fwojciec/chatview/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	t.Parallel()

	t.Run("splits into fixed grapheme counts", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"abc", "def", "g"}, bt.Chunk("abcdefg", 3))
	})

	t.Run("keeps grapheme clusters whole", func(t *testing.T) {
		t.Parallel()
		s := "a👍🏽b🇵🇱c"
		chunks := bt.Chunk(s, 2)
		assert.Equal(t, []string{"a👍🏽", "b🇵🇱", "c"}, chunks)
		assert.Equal(t, s, strings.Join(chunks, ""))
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, bt.Chunk("", 4))
	})

	t.Run("non-positive size means one cluster", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"a", "b"}, bt.Chunk("ab", 0))
	})
}

func TestReplay(t *testing.T) {
	t.Parallel()

	t.Run("emits all chunks without delay", func(t *testing.T) {
		t.Parallel()
		var got []string
		err := bt.Replay("hello world", 5, 0, clock.New())(context.Background(), func(d string) {
			got = append(got, d)
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"hello", " worl", "d"}, got)
	})

	t.Run("waits on the clock between chunks", func(t *testing.T) {
		t.Parallel()
		clk := clock.NewMock()
		deltas := make(chan string, 4)
		done := make(chan error, 1)
		go func() {
			done <- bt.Replay("abcd", 2, time.Second, clk)(context.Background(), func(d string) { deltas <- d })
		}()

		assert.Equal(t, "ab", <-deltas)
		select {
		case d := <-deltas:
			t.Fatalf("unexpected delta %q before the delay", d)
		case <-time.After(20 * time.Millisecond):
		}
		// The replay goroutine may not have created its timer yet.
		assert.Eventually(t, func() bool {
			clk.Add(time.Second)
			select {
			case d := <-deltas:
				return d == "cd"
			default:
				return false
			}
		}, time.Second, 10*time.Millisecond)
		require.NoError(t, <-done)
	})

	t.Run("stops on cancel", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		var got []string
		err := bt.Replay("abcd", 1, 0, clock.New())(ctx, func(d string) {
			got = append(got, d)
			cancel()
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, []string{"a"}, got)
	})
}
