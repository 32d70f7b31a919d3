// Package osc52 copies text through the terminal with OSC 52 escape
// sequences, which works over SSH and inside multiplexers.
package osc52

import (
	"context"
	"fmt"
	"io"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/fwojciec/chatview"
)

var _ chatview.Clipboard = (*Clipboard)(nil)

// Clipboard writes OSC 52 sequences to W. Set Tmux or Screen to wrap the
// sequence in the multiplexer's passthrough.
type Clipboard struct {
	W      io.Writer
	Tmux   bool
	Screen bool
}

// WriteText writes a clipboard sequence carrying text.
func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	seq := osc52.New(text)
	switch {
	case c.Tmux:
		seq = seq.Tmux()
	case c.Screen:
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(c.W); err != nil {
		return fmt.Errorf("write osc52 sequence: %w", err)
	}
	return nil
}
