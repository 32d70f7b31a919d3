package chatview

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// CopyResetDelay is how long a code block reports CopyCopied after a copy.
const CopyResetDelay = 2000 * time.Millisecond

// DefaultCodeLabel is the header label of a code block without a language.
const DefaultCodeLabel = "code"

// CopyState is the state of a code block's copy button.
type CopyState int

const (
	CopyIdle CopyState = iota
	CopyCopied
)

func (s CopyState) String() string {
	if s == CopyCopied {
		return "copied"
	}
	return "idle"
}

// Icon names a glyph drawn next to a button label.
type Icon string

const (
	IconCopy  Icon = "copy"
	IconCheck Icon = "check"
)

// CopyButton is the visible state of a code block's copy button.
type CopyButton struct {
	Label string
	Icon  Icon
}

// ButtonFor returns the copy button shown in state s.
func ButtonFor(s CopyState) CopyButton {
	if s == CopyCopied {
		return CopyButton{Label: "Copied!", Icon: IconCheck}
	}
	return CopyButton{Label: "Copy", Icon: IconCopy}
}

// NewCodeBlock builds the idle rendering of a code block.
// A single trailing newline (LF or CRLF) is dropped from code.
func NewCodeBlock(id int, language, code string, rules Rules) CodeBlock {
	label := language
	if label == "" {
		label = DefaultCodeLabel
	}
	return CodeBlock{
		ID:       id,
		Language: language,
		Label:    label,
		Code:     trimNewline(code),
		Button:   ButtonFor(CopyIdle),
		Style:    rules.CodeBlock,
	}
}

func trimNewline(code string) string {
	if strings.HasSuffix(code, "\r\n") {
		return code[:len(code)-2]
	}
	return strings.TrimSuffix(code, "\n")
}

// CopyableCodeBlock is the stateful instance behind one rendered code
// block. It starts idle, becomes copied when its code reaches the
// clipboard and reverts to idle CopyResetDelay after the most recent copy.
type CopyableCodeBlock struct {
	clipboard Clipboard
	clock     clock.Clock
	onChange  func(CopyState)

	mu       sync.Mutex
	block    CodeBlock
	state    CopyState
	deadline time.Time
	timer    *clock.Timer
	seq      uint64
	closed   bool
}

// CopyOption configures a CopyableCodeBlock.
type CopyOption func(*CopyableCodeBlock)

// WithClock sets the clock used for the revert timer.
func WithClock(c clock.Clock) CopyOption {
	return func(b *CopyableCodeBlock) { b.clock = c }
}

// WithStateChange registers a callback run after every state transition.
// It may be called from the timer goroutine.
func WithStateChange(fn func(CopyState)) CopyOption {
	return func(b *CopyableCodeBlock) { b.onChange = fn }
}

// NewCopyableCodeBlock creates an idle instance for block.
func NewCopyableCodeBlock(block CodeBlock, cb Clipboard, opts ...CopyOption) *CopyableCodeBlock {
	b := &CopyableCodeBlock{
		clipboard: cb,
		clock:     clock.New(),
		block:     block,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ID returns the ID of the underlying code block.
func (b *CopyableCodeBlock) ID() int { return b.block.ID }

// Language returns the declared language, possibly empty.
func (b *CopyableCodeBlock) Language() string { return b.block.Language }

// Code returns the code written to the clipboard on copy.
func (b *CopyableCodeBlock) Code() string { return b.block.Code }

// Label returns the header label.
func (b *CopyableCodeBlock) Label() string { return b.block.Label }

// State returns the current copy state.
func (b *CopyableCodeBlock) State() CopyState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stateLocked()
}

func (b *CopyableCodeBlock) stateLocked() CopyState {
	if b.state == CopyCopied && b.clock.Now().Before(b.deadline) {
		return CopyCopied
	}
	return CopyIdle
}

// Render returns the code block as drawn in the current state.
func (b *CopyableCodeBlock) Render() CodeBlock {
	b.mu.Lock()
	defer b.mu.Unlock()
	block := b.block
	block.Button = ButtonFor(b.stateLocked())
	return block
}

// Copy writes the code to the clipboard. On success the block becomes
// copied and a revert is scheduled CopyResetDelay later, replacing any
// pending revert. On failure the state is left unchanged and the error
// is returned.
func (b *CopyableCodeBlock) Copy(ctx context.Context) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrClosed
	}
	code := b.block.Code
	b.mu.Unlock()

	if err := b.clipboard.WriteText(ctx, code); err != nil {
		return fmt.Errorf("copy code block %d: %w", b.block.ID, err)
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.seq++
	seq := b.seq
	if b.timer != nil {
		b.timer.Stop()
	}
	b.state = CopyCopied
	b.deadline = b.clock.Now().Add(CopyResetDelay)
	b.timer = b.clock.AfterFunc(CopyResetDelay, func() { b.revert(seq) })
	b.mu.Unlock()

	b.notify(CopyCopied)
	return nil
}

func (b *CopyableCodeBlock) revert(seq uint64) {
	b.mu.Lock()
	if b.closed || seq != b.seq {
		b.mu.Unlock()
		return
	}
	b.state = CopyIdle
	b.timer = nil
	b.mu.Unlock()

	b.notify(CopyIdle)
}

func (b *CopyableCodeBlock) notify(s CopyState) {
	if b.onChange != nil {
		b.onChange(s)
	}
}

// Close cancels any pending revert. A closed block never changes state
// or calls its callback again.
func (b *CopyableCodeBlock) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
