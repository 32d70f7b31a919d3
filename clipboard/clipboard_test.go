package clipboard_test

import (
	"context"
	"testing"

	"github.com/fwojciec/chatview/clipboard"
	"github.com/stretchr/testify/assert"
)

func TestSystem_WriteText(t *testing.T) {
	t.Parallel()

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := clipboard.System{}.WriteText(ctx, "x")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
