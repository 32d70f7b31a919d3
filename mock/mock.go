// Package mock provides test doubles for chatview interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/chatview"
)

// Interface compliance checks.
var (
	_ chatview.Presenter   = (*Presenter)(nil)
	_ chatview.Clipboard   = (*Clipboard)(nil)
	_ chatview.Highlighter = (*Highlighter)(nil)
)

// Presenter is a test double for chatview.Presenter.
// Set PresentFn before calling Present.
type Presenter struct {
	PresentFn func(msg chatview.Message) (chatview.Tree, error)
}

// Present delegates to PresentFn.
func (p *Presenter) Present(msg chatview.Message) (chatview.Tree, error) {
	return p.PresentFn(msg)
}

// Clipboard is a test double for chatview.Clipboard.
// Set WriteTextFn before calling WriteText.
type Clipboard struct {
	WriteTextFn func(ctx context.Context, text string) error
}

// WriteText delegates to WriteTextFn.
func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	return c.WriteTextFn(ctx, text)
}

// Highlighter is a test double for chatview.Highlighter.
// Set HighlightFn before calling Highlight.
type Highlighter struct {
	HighlightFn func(language, code string) []chatview.Token
}

// Highlight delegates to HighlightFn.
func (h *Highlighter) Highlight(language, code string) []chatview.Token {
	return h.HighlightFn(language, code)
}
