package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/chatview"
	cvlipgloss "github.com/fwojciec/chatview/lipgloss"
)

var _ tea.Model = Model{}

// copyStateBuffer bounds pending copy notifications. Timer goroutines
// drop notifications when it is full; the next redraw reads state from
// the blocks anyway.
const copyStateBuffer = 64

// codeRef addresses a code block by message index and code block ID.
type codeRef struct {
	block int
	id    int
}

var noFocus = codeRef{block: -1, id: -1}

// Model is the Bubble Tea model for the message viewer.
type Model struct {
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	styles Styles
	keys   keyMap
	help   help.Model
	logger *slog.Logger

	blocks []*MessageView
	focus  codeRef

	// streaming is the view receiving deltas, nil when no stream runs.
	streaming *MessageView
	stream    StreamFunc
	ctx       context.Context
	cancel    context.CancelFunc
	deltaCh   chan string
	doneCh    chan error

	copyCh chan CopyStateMsg
	status string
	err    error
	ready  bool
}

// New creates a viewer showing msgs. When cfg.Stream is set, a streaming
// assistant message is appended and filled once the program starts.
func New(cfg Config, msgs ...chatview.Message) Model {
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	m := Model{
		styles: NewStyles(cfg.Theme),
		keys:   newKeyMap(),
		help:   help.New(),
		logger: cfg.Logger,
		focus:  noFocus,
		copyCh: make(chan CopyStateMsg, copyStateBuffer),
	}
	deps := viewDeps{
		presenter: cfg.Presenter,
		renderer:  cvlipgloss.NewRenderer(cfg.Presenter, cfg.Theme),
		clipboard: cfg.Clipboard,
		clock:     cfg.Clock,
		notify:    m.notifier(),
		styles:    m.styles,
	}
	for _, msg := range msgs {
		m.blocks = append(m.blocks, newMessageView(len(m.blocks), msg, deps))
	}
	if cfg.Stream != nil {
		m.streaming = newMessageView(len(m.blocks), chatview.Message{Role: chatview.RoleAssistant, Streaming: true}, deps)
		m.blocks = append(m.blocks, m.streaming)
		m.stream = cfg.Stream
		m.ctx, m.cancel = context.WithCancel(context.Background())
		m.deltaCh = make(chan string, 256)
		m.doneCh = make(chan error, 1)
	}
	return m
}

func (m Model) notifier() func(CopyStateMsg) {
	ch, logger := m.copyCh, m.logger
	return func(msg CopyStateMsg) {
		select {
		case ch <- msg:
		default:
			logger.Debug("copy state notification dropped", "block", msg.Block, "id", msg.ID)
		}
	}
}

// Blocks returns the message views in display order.
func (m Model) Blocks() []*MessageView { return m.blocks }

// Streaming reports whether a stream is still being received.
func (m Model) Streaming() bool { return m.streaming != nil }

// Err returns the stream error, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{listenForCopyState(m.copyCh)}
	if m.streaming != nil {
		cmds = append(cmds,
			startStream(m.ctx, m.stream, m.deltaCh, m.doneCh),
			listenForDelta(m.deltaCh, m.doneCh),
		)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case CopyStateMsg:
		m.refresh()
		return m, listenForCopyState(m.copyCh)

	case CopyResultMsg:
		if msg.Err != nil {
			m.logger.Warn("copy failed", "block", msg.Block, "id", msg.ID, "err", msg.Err)
			m.status = "Copy failed"
		} else {
			m.logger.Debug("copied code block", "block", msg.Block, "id", msg.ID)
			m.status = ""
		}
		m.refresh()
		return m, nil

	case DeltaMsg:
		if m.streaming != nil {
			m.streaming.Append(msg.Delta)
			m.refresh()
			m.Viewport.GotoBottom()
		}
		return m, listenForDelta(m.deltaCh, m.doneCh)

	case StreamDoneMsg:
		if m.streaming != nil {
			m.streaming.Finish()
			m.streaming = nil
		}
		if msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			m.logger.Error("stream failed", "err", msg.Err)
			m.err = msg.Err
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	statusHeight := 1
	borderHeight := 1
	vpHeight := max(msg.Height-statusHeight-borderHeight, 1)

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.help.Width = msg.Width
	m.refresh()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		for _, b := range m.blocks {
			b.Close()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m = m.cycleFocus(1)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m = m.cycleFocus(-1)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if m.focus == noFocus {
			return m, nil
		}
		return m, m.blocks[m.focus.block].Copy(m.focus.id)
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// codeRefs lists every code block in display order.
func (m Model) codeRefs() []codeRef {
	var refs []codeRef
	for i, b := range m.blocks {
		for id := range b.CodeCount() {
			refs = append(refs, codeRef{block: i, id: id})
		}
	}
	return refs
}

// cycleFocus moves focus by step through all code blocks, wrapping around.
// From no focus, forward starts at the first block and backward at the last.
func (m Model) cycleFocus(step int) Model {
	refs := m.codeRefs()
	if m.focus != noFocus {
		m.blocks[m.focus.block].SetFocus(-1)
	}
	if len(refs) == 0 {
		m.focus = noFocus
		return m
	}
	next := 0
	if step < 0 {
		next = len(refs) - 1
	}
	for i, r := range refs {
		if r == m.focus {
			next = (i + step + len(refs)) % len(refs)
			break
		}
	}
	m.focus = refs[next]
	m.blocks[m.focus.block].SetFocus(m.focus.id)
	return m
}

// refresh redraws all blocks into the viewport. Focus is dropped when the
// focused code block no longer exists.
func (m *Model) refresh() {
	if m.focus != noFocus && m.focus.id >= m.blocks[m.focus.block].CodeCount() {
		m.focus = noFocus
	}
	if !m.ready {
		return
	}
	m.Viewport.SetContent(m.renderContent())
}

func (m Model) renderContent() string {
	if len(m.blocks) == 0 {
		return ""
	}
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	return b.String()
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.status != "" {
		return m.styles.Error.Render(m.status)
	}
	if m.streaming != nil {
		return m.styles.Muted.Render("Streaming...")
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

// startStream runs the stream in a goroutine and signals completion.
func startStream(ctx context.Context, run StreamFunc, deltaCh chan<- string, doneCh chan<- error) tea.Cmd {
	return func() tea.Msg {
		err := run(ctx, func(d string) {
			select {
			case deltaCh <- d:
			case <-ctx.Done():
			}
		})
		close(deltaCh)
		doneCh <- err
		return nil
	}
}

// listenForDelta waits for the next delta from the channel.
// When the channel closes, it reads the error from doneCh and returns StreamDoneMsg.
func listenForDelta(ch <-chan string, doneCh <-chan error) tea.Cmd {
	return func() tea.Msg {
		d, ok := <-ch
		if !ok {
			err := <-doneCh
			return StreamDoneMsg{Err: err}
		}
		return DeltaMsg{Delta: d}
	}
}

// listenForCopyState waits for the next copy state transition.
func listenForCopyState(ch <-chan CopyStateMsg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}
