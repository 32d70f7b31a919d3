// Package glamour renders chat messages with glamour's stock markdown
// styles. It is an alternative to the lipgloss renderer that does not
// draw code block chrome.
package glamour

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/fwojciec/chatview"
)

// Styles accepted by NewRenderer.
const (
	StyleAuto    = "auto"
	StyleDark    = "dark"
	StyleLight   = "light"
	StyleDracula = "dracula"
)

// Cursor is appended to streaming messages.
const Cursor = "▍"

var _ chatview.Renderer = (*Renderer)(nil)

// Renderer draws messages through glamour. Term renderers are cached per
// width and keep per-document state, so rendering is serialized.
type Renderer struct {
	style string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
}

// NewRenderer creates a Renderer with the named glamour style. An empty
// style means auto.
func NewRenderer(style string) (*Renderer, error) {
	switch style {
	case "":
		style = StyleAuto
	case StyleAuto, StyleDark, StyleLight, StyleDracula:
	default:
		return nil, fmt.Errorf("%w: unknown glamour style %q", chatview.ErrValidation, style)
	}
	return &Renderer{style: style, renderers: make(map[int]*glamour.TermRenderer)}, nil
}

// Render draws msg word-wrapped at width columns.
func (r *Renderer) Render(msg chatview.Message, width int) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}
	if width <= 0 {
		width = 80
	}
	source := msg.Content
	if chatview.Classify(msg.Content) == chatview.ContentImage {
		source = fmt.Sprintf("![%s](%s)", chatview.ImageAlt, strings.TrimSpace(msg.Content))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	tr, err := r.termRenderer(width)
	if err != nil {
		return "", err
	}
	out, err := tr.Render(source)
	if err != nil {
		return "", fmt.Errorf("%w: %w", chatview.ErrParse, err)
	}
	if msg.Streaming {
		out = strings.TrimRight(out, "\n") + Cursor + "\n"
	}
	return out, nil
}

func (r *Renderer) termRenderer(width int) (*glamour.TermRenderer, error) {
	if tr, ok := r.renderers[width]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(styleOption(r.style), glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("create glamour renderer: %w", err)
	}
	r.renderers[width] = tr
	return tr, nil
}

func styleOption(style string) glamour.TermRendererOption {
	if style == StyleAuto {
		return glamour.WithAutoStyle()
	}
	return glamour.WithStandardStyle(style)
}
