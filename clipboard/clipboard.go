// Package clipboard writes to the system clipboard using atotto/clipboard.
package clipboard

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/chatview"
)

var _ chatview.Clipboard = (*System)(nil)

// System writes through the platform clipboard tool (pbcopy, xclip,
// xsel, wl-copy or the Windows API).
type System struct{}

// WriteText copies text to the system clipboard.
func (System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return chatview.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", chatview.ErrClipboardUnavailable, err)
	}
	return nil
}
