// Package bubbletea provides a Bubble Tea viewer for chat messages with
// interactive copy buttons on code blocks.
package bubbletea

import (
	"context"
	"log/slog"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/chatview"
)

// StreamFunc produces the content of a streamed assistant message. The
// onDelta callback is called for each piece of text. The function blocks
// until the stream completes or the context is cancelled.
type StreamFunc func(ctx context.Context, onDelta func(string)) error

// Config holds the collaborators of a viewer Model.
type Config struct {
	Presenter chatview.Presenter
	Theme     chatview.Theme
	Clipboard chatview.Clipboard

	// Stream, when set, is replayed into a new assistant message.
	Stream StreamFunc

	// Clock drives copy button timers. Defaults to the real clock.
	Clock clock.Clock

	// Logger receives clipboard failures and stream errors. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Run creates and runs the Bubble Tea program. It blocks until the program
// exits. The context is used for graceful shutdown: when cancelled, the
// program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// DeltaMsg carries a piece of streamed text into the model.
type DeltaMsg struct {
	Delta string
}

// StreamDoneMsg signals that the stream has completed.
type StreamDoneMsg struct {
	Err error
}

// CopyStateMsg reports a copy state transition of one code block.
type CopyStateMsg struct {
	Block int
	ID    int
	State chatview.CopyState
}

// CopyResultMsg reports the outcome of a copy request.
type CopyResultMsg struct {
	Block int
	ID    int
	Err   error
}
