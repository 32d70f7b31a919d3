package bubbletea_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatview"
	bt "github.com/fwojciec/chatview/bubbletea"
	"github.com/fwojciec/chatview/goldmark"
	"github.com/fwojciec/chatview/mock"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.ANSI)
	os.Exit(m.Run())
}

const twoBlocks = "Intro\n\n```python\nprint(1)\n```\n\nMiddle\n\n```\nplain\n```"

// fakeClipboard records writes and optionally fails.
type fakeClipboard struct {
	mu     sync.Mutex
	writes []string
	err    error
}

func (c *fakeClipboard) mock() *mock.Clipboard {
	return &mock.Clipboard{WriteTextFn: func(ctx context.Context, text string) error {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.err != nil {
			return c.err
		}
		c.writes = append(c.writes, text)
		return nil
	}}
}

func (c *fakeClipboard) texts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.writes...)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newConfig(cb *fakeClipboard, logs *syncBuffer) bt.Config {
	cfg := bt.Config{
		Presenter: goldmark.NewPresenter(),
		Theme:     chatview.DefaultTheme(),
		Clipboard: cb.mock(),
		Clock:     clock.NewMock(),
	}
	if logs != nil {
		cfg.Logger = slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return cfg
}

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, cfg bt.Config, msgs ...chatview.Message) bt.Model {
	t.Helper()
	m := bt.New(cfg, msgs...)
	return updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
