package bubbletea

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatview"
	cvlipgloss "github.com/fwojciec/chatview/lipgloss"
)

// MessageView draws one message and owns the copy state of its code
// blocks. Code blocks are matched by position when the message is
// re-presented; an instance survives as long as its code is unchanged, so
// a streaming message keeps its "Copied!" buttons while text arrives.
type MessageView struct {
	index     int
	msg       chatview.Message
	presenter chatview.Presenter
	renderer  *cvlipgloss.Renderer
	clipboard chatview.Clipboard
	clock     clock.Clock
	notify    func(CopyStateMsg)
	styles    Styles

	tree  chatview.Tree
	err   error
	codes []*chatview.CopyableCodeBlock
	focus int
}

type viewDeps struct {
	presenter chatview.Presenter
	renderer  *cvlipgloss.Renderer
	clipboard chatview.Clipboard
	clock     clock.Clock
	notify    func(CopyStateMsg)
	styles    Styles
}

func newMessageView(index int, msg chatview.Message, deps viewDeps) *MessageView {
	v := &MessageView{
		index:     index,
		msg:       msg,
		presenter: deps.presenter,
		renderer:  deps.renderer,
		clipboard: deps.clipboard,
		clock:     deps.clock,
		notify:    deps.notify,
		styles:    deps.styles,
		focus:     -1,
	}
	v.present()
	return v
}

// Message returns the message as currently held.
func (v *MessageView) Message() chatview.Message { return v.msg }

// Err returns the presentation error of the current content, if any.
func (v *MessageView) Err() error { return v.err }

// CodeCount returns the number of code blocks in the message.
func (v *MessageView) CodeCount() int { return len(v.codes) }

// Append adds streamed text and re-presents the message.
func (v *MessageView) Append(delta string) {
	v.msg.Content += delta
	v.present()
}

// Finish marks the message complete, removing the streaming cursor.
func (v *MessageView) Finish() {
	v.msg.Streaming = false
	v.present()
}

// SetFocus highlights the code block with the given ID; -1 clears focus.
func (v *MessageView) SetFocus(id int) {
	v.focus = id
}

// Copy returns a command copying code block id to the clipboard.
func (v *MessageView) Copy(id int) tea.Cmd {
	if id < 0 || id >= len(v.codes) {
		return nil
	}
	code := v.codes[id]
	index := v.index
	return func() tea.Msg {
		err := code.Copy(context.Background())
		return CopyResultMsg{Block: index, ID: id, Err: err}
	}
}

// Close stops every copy timer of the message.
func (v *MessageView) Close() {
	for _, c := range v.codes {
		c.Close()
	}
}

func (v *MessageView) present() {
	tree, err := v.presenter.Present(v.msg)
	if err != nil {
		v.err = err
		return
	}
	v.tree, v.err = tree, nil

	blocks := chatview.CodeBlocks(tree)
	codes := make([]*chatview.CopyableCodeBlock, len(blocks))
	for i, block := range blocks {
		if i < len(v.codes) && v.codes[i].Code() == block.Code && v.codes[i].Language() == block.Language {
			codes[i] = v.codes[i]
			continue
		}
		if i < len(v.codes) {
			v.codes[i].Close()
		}
		codes[i] = v.newCode(block)
	}
	for i := len(blocks); i < len(v.codes); i++ {
		v.codes[i].Close()
	}
	v.codes = codes
	if v.focus >= len(codes) {
		v.focus = -1
	}
}

func (v *MessageView) newCode(block chatview.CodeBlock) *chatview.CopyableCodeBlock {
	index, id := v.index, block.ID
	opts := []chatview.CopyOption{chatview.WithClock(v.clock)}
	if v.notify != nil {
		opts = append(opts, chatview.WithStateChange(func(s chatview.CopyState) {
			v.notify(CopyStateMsg{Block: index, ID: id, State: s})
		}))
	}
	return chatview.NewCopyableCodeBlock(block, v.clipboard, opts...)
}

// View draws the role header and the message at width columns.
func (v *MessageView) View(width int) string {
	header := v.styles.Assistant.Render("Assistant")
	if v.msg.EffectiveRole() == chatview.RoleUser {
		header = v.styles.UserMsg.Render("> You")
	}
	if v.err != nil {
		return header + "\n" + lipgloss.NewStyle().Width(width).Render(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
	}
	body := v.renderer.RenderTree(v.tree, width,
		cvlipgloss.WithCopyStates(v.copyState),
		cvlipgloss.WithFocus(v.focus),
	)
	if body == "" {
		return header
	}
	return header + "\n" + body
}

func (v *MessageView) copyState(id int) chatview.CopyState {
	if id < 0 || id >= len(v.codes) {
		return chatview.CopyIdle
	}
	return v.codes[id].State()
}
