// Package lipgloss draws chatview visual trees as ANSI-styled terminal
// output using lipgloss.
package lipgloss

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/chatview"
	"github.com/mattn/go-runewidth"
)

// DefaultWidth is used when a caller passes a non-positive width.
const DefaultWidth = 80

var _ chatview.Renderer = (*Renderer)(nil)

// Renderer presents messages and draws the resulting trees.
type Renderer struct {
	presenter chatview.Presenter
	palette   palette
}

// NewRenderer creates a Renderer drawing trees from p with theme colors.
func NewRenderer(p chatview.Presenter, theme chatview.Theme) *Renderer {
	return &Renderer{presenter: p, palette: palette{theme: theme}}
}

// Render presents msg and draws it at width columns.
func (r *Renderer) Render(msg chatview.Message, width int) (string, error) {
	tree, err := r.presenter.Present(msg)
	if err != nil {
		return "", fmt.Errorf("present: %w", err)
	}
	return r.RenderTree(tree, width), nil
}

// RenderOption adjusts a single RenderTree call.
type RenderOption func(*drawState)

// WithCopyStates overlays live copy states onto code block buttons.
func WithCopyStates(fn func(id int) chatview.CopyState) RenderOption {
	return func(s *drawState) { s.copyState = fn }
}

// WithFocus highlights the code block with the given ID.
func WithFocus(id int) RenderOption {
	return func(s *drawState) { s.focus = id }
}

type drawState struct {
	copyState func(id int) chatview.CopyState
	focus     int
}

// RenderTree draws tree at width columns. A streaming cursor is placed
// right after the last line of content.
func (r *Renderer) RenderTree(tree chatview.Tree, width int, opts ...RenderOption) string {
	if width <= 0 {
		width = DefaultWidth
	}
	st := &drawState{focus: -1}
	for _, opt := range opts {
		opt(st)
	}

	var content []chatview.Node
	var cursors []chatview.StreamingCursor
	for _, n := range tree.Nodes {
		if c, ok := n.(chatview.StreamingCursor); ok {
			cursors = append(cursors, c)
			continue
		}
		content = append(content, n)
	}

	out := r.blocks(content, width, lipgloss.NewStyle(), st, 0)
	for _, c := range cursors {
		out += strings.Repeat(" ", c.Style.Margin.Left) + r.cursor(c.Style)
	}
	return out
}

func (r *Renderer) cursor(s chatview.Style) string {
	st := r.palette.style(s)
	if s.Background != chatview.ColorDefault {
		return st.Render(" ")
	}
	return st.Render("▍")
}

// blocks draws nodes top to bottom. Vertical margins between neighbours
// collapse to the larger of the two; gap is the minimum.
func (r *Renderer) blocks(nodes []chatview.Node, width int, base lipgloss.Style, st *drawState, gap int) string {
	var b strings.Builder
	prevBottom := -1
	for _, n := range nodes {
		top, bottom := margins(n)
		if prevBottom >= 0 {
			b.WriteString(strings.Repeat("\n", 1+max(prevBottom, top, gap)))
		}
		b.WriteString(r.block(n, width, base, st))
		prevBottom = bottom
	}
	return b.String()
}

func margins(n chatview.Node) (top, bottom int) {
	var s chatview.Style
	switch v := n.(type) {
	case chatview.Paragraph:
		s = v.Style
	case chatview.Heading:
		s = v.Style
	case chatview.List:
		s = v.Style
	case chatview.Blockquote:
		s = v.Style
	case chatview.CodeBlock:
		s = v.Style.Container
	case chatview.Table:
		s = v.Style
	case chatview.Rule:
		s = v.Style
	case chatview.ImageView:
		s = v.Style
	case chatview.HTML:
		s = v.Style
	}
	return s.Margin.Top, s.Margin.Bottom
}

func (r *Renderer) block(node chatview.Node, width int, base lipgloss.Style, st *drawState) string {
	switch n := node.(type) {
	case chatview.Paragraph:
		inline := r.inlines(n.Children, r.palette.style(n.Style).Inherit(base))
		return wrap(inline, width)

	case chatview.Heading:
		inline := r.inlines(n.Children, r.palette.style(n.Style).Inherit(base))
		out := wrap(inline, width)
		if n.Style.Border.Sides.Has(chatview.SideBottom) {
			line := lipgloss.NewStyle().Foreground(r.palette.color(n.Style.Border.Color))
			out += "\n" + line.Render(strings.Repeat(glyphRule, width))
		}
		return out

	case chatview.List:
		return r.list(n, width, base, st)

	case chatview.ListItem:
		return r.blocks(n.Children, width, r.palette.style(n.Style).Inherit(base), st, 0)

	case chatview.Blockquote:
		return r.blockquote(n, width, base, st)

	case chatview.CodeBlock:
		return r.codeBlock(n, width, st)

	case chatview.Table:
		return r.table(n, base)

	case chatview.Rule:
		line := lipgloss.NewStyle().Foreground(r.palette.color(n.Style.Border.Color))
		return line.Render(strings.Repeat(glyphRule, width))

	case chatview.ImageView:
		return r.imageView(n, width)

	case chatview.HTML:
		return r.palette.style(n.Style).Inherit(base).Render(sanitize(n.Raw))

	case chatview.StreamingCursor:
		return r.cursor(n.Style)

	default:
		// Inline content at block level.
		return wrap(r.inline(node, base), width)
	}
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

func (r *Renderer) list(n chatview.List, width int, base lipgloss.Style, st *drawState) string {
	indent := n.Style.Padding.Left
	itemBase := r.palette.style(n.Style).Inherit(base)
	markers := make([]string, len(n.Items))
	markerWidth := 0
	for i := range n.Items {
		marker := glyphBullet + " "
		if n.Ordered {
			marker = strconv.Itoa(n.Start+i) + ". "
		}
		markers[i] = marker
		markerWidth = max(markerWidth, runewidth.StringWidth(marker))
	}

	itemWidth := max(width-indent-markerWidth, 10)
	var b strings.Builder
	for i, item := range n.Items {
		if i > 0 {
			b.WriteString(strings.Repeat("\n", 1+n.Style.Gap))
		}
		content := r.block(item, itemWidth, itemBase, st)
		marker := itemBase.Render(markers[i]) + strings.Repeat(" ", markerWidth-runewidth.StringWidth(markers[i]))
		continuation := strings.Repeat(" ", indent+markerWidth)
		for j, line := range strings.Split(content, "\n") {
			if j > 0 {
				b.WriteString("\n")
				if line != "" {
					b.WriteString(continuation)
				}
				b.WriteString(line)
				continue
			}
			b.WriteString(strings.Repeat(" ", indent) + marker + line)
		}
	}
	return b.String()
}

func (r *Renderer) blockquote(n chatview.Blockquote, width int, base lipgloss.Style, st *drawState) string {
	quote := r.palette.style(n.Style).Inherit(base)
	pad := n.Style.Padding
	inner := max(width-1-pad.Left-pad.Right, 10)
	content := r.blocks(n.Children, inner, quote, st, 0)

	box := lipgloss.NewStyle().
		Border(lipgloss.Border{Left: glyphQuoteBar}, false, false, false, true).
		BorderForeground(r.palette.color(n.Style.Border.Color)).
		Padding(pad.Top, pad.Right, pad.Bottom, pad.Left).
		Width(width - 1)
	if n.Style.Background != chatview.ColorDefault {
		box = box.Background(r.palette.color(n.Style.Background))
	}
	return box.Render(content)
}

func (r *Renderer) codeBlock(n chatview.CodeBlock, width int, st *drawState) string {
	button := n.Button
	if st.copyState != nil {
		button = chatview.ButtonFor(st.copyState(n.ID))
	}
	chrome := n.Style

	inner := max(width-2, 20)
	buttonStyle := r.palette.style(chrome.Button)
	if button.Icon == chatview.IconCheck {
		buttonStyle = r.palette.style(chrome.Copied)
	}
	buttonText := "[" + iconGlyph(button.Icon) + " " + button.Label + "]"
	labelMax := inner - chrome.Header.Padding.Left - chrome.Header.Padding.Right - runewidth.StringWidth(buttonText) - 1
	label := runewidth.Truncate(sanitize(n.Label), max(labelMax, 1), "…")
	gap := max(labelMax-runewidth.StringWidth(label), 0) + 1
	header := strings.Repeat(" ", chrome.Header.Padding.Left) +
		r.palette.style(chrome.Label).Render(label) +
		strings.Repeat(" ", gap) +
		buttonStyle.Render(buttonText) +
		strings.Repeat(" ", chrome.Header.Padding.Right)

	sep := lipgloss.NewStyle().Foreground(r.palette.color(chrome.Header.Border.Color)).Render(strings.Repeat(glyphRule, inner))

	body := r.codeLines(n, chrome.Body)
	pad := chrome.Body.Padding
	padLeft := strings.Repeat(" ", pad.Left)
	avail := max(inner-pad.Left-pad.Right, 1)
	for i, line := range body {
		body[i] = padLeft + ansi.Truncate(line, avail, "…")
	}
	lines := []string{header, sep}
	lines = append(lines, make([]string, pad.Top)...)
	lines = append(lines, body...)
	lines = append(lines, make([]string, pad.Bottom)...)

	borderColor := chrome.Container.Border.Color
	if st.focus == n.ID {
		borderColor = chatview.ColorAccent
	}
	border := lipgloss.NormalBorder()
	if chrome.Container.Border.Rounded {
		border = lipgloss.RoundedBorder()
	}
	box := lipgloss.NewStyle().
		Border(border).
		BorderForeground(r.palette.color(borderColor))
	return box.Render(strings.Join(lines, "\n"))
}

// codeLines splits the code into styled lines without reflowing them.
func (r *Renderer) codeLines(n chatview.CodeBlock, body chatview.Style) []string {
	if len(n.Tokens) == 0 {
		plain := r.palette.style(body)
		lines := strings.Split(sanitize(n.Code), "\n")
		for i, l := range lines {
			lines[i] = plain.Render(l)
		}
		return lines
	}
	lines := []string{""}
	for _, tok := range n.Tokens {
		style := r.palette.token(tok.Kind)
		for i, part := range strings.Split(sanitize(tok.Text), "\n") {
			if i > 0 {
				lines = append(lines, "")
			}
			if part != "" {
				lines[len(lines)-1] += style.Render(part)
			}
		}
	}
	return lines
}

func (r *Renderer) table(n chatview.Table, base lipgloss.Style) string {
	var headers []string
	var headerStyles []lipgloss.Style
	for _, row := range n.Head.Rows {
		for _, cell := range row.Cells {
			headers = append(headers, r.inlines(cell.Children, r.palette.style(cell.Style).Inherit(base)))
			headerStyles = append(headerStyles, r.palette.style(cell.Style))
		}
	}
	rows := make([][]string, len(n.Body.Rows))
	for i, row := range n.Body.Rows {
		for _, cell := range row.Cells {
			rows[i] = append(rows[i], r.inlines(cell.Children, r.palette.style(cell.Style).Inherit(base)))
		}
	}

	headStyle := r.palette.style(n.Head.Style)
	border := lipgloss.NormalBorder()
	if n.Style.Border.Rounded {
		border = lipgloss.RoundedBorder()
	}
	t := table.New().
		Border(border).
		BorderStyle(lipgloss.NewStyle().Foreground(r.palette.color(n.Style.Border.Color))).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := lipgloss.NewStyle().Padding(0, 1)
			if col < len(n.Alignments) {
				cell = cell.Align(lipAlign(n.Alignments[col]))
			}
			if row == table.HeaderRow {
				cell = cell.Inherit(headStyle)
				if col < len(headerStyles) {
					cell = cell.Inherit(headerStyles[col])
				}
			}
			return cell
		})
	return t.String()
}

func (r *Renderer) imageView(n chatview.ImageView, width int) string {
	frame := n.Frame
	inner := width - 2
	if frame.MaxWidth > 0 {
		inner = min(inner, frame.MaxWidth-2)
	}
	inner = max(inner, 10)
	caption := runewidth.Truncate(glyphImage+" "+sanitize(n.Alt), inner, "…")
	source := runewidth.Truncate(sanitize(strings.TrimSpace(n.Source)), inner, "…")

	border := lipgloss.NormalBorder()
	if frame.Border.Rounded {
		border = lipgloss.RoundedBorder()
	}
	if frame.Border.Width > 1 {
		border = lipgloss.ThickBorder()
	}
	box := lipgloss.NewStyle().
		Border(border).
		BorderForeground(r.palette.color(frame.Border.Color)).
		Width(inner).
		Render(caption + "\n" + lipgloss.NewStyle().Foreground(r.palette.color(chatview.ColorMuted)).Render(source))
	if n.Style.Centered {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
	}
	return box
}

func (r *Renderer) inlines(nodes []chatview.Node, base lipgloss.Style) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(r.inline(n, base))
	}
	return b.String()
}

func (r *Renderer) inline(node chatview.Node, base lipgloss.Style) string {
	switch n := node.(type) {
	case chatview.Text:
		return base.Render(sanitize(n.Value))
	case chatview.Break:
		return "\n"
	case chatview.InlineCode:
		st := r.palette.style(n.Style).Inherit(base)
		pad := n.Style.Padding
		return st.Render(strings.Repeat(" ", pad.Left) + sanitize(n.Text) + strings.Repeat(" ", pad.Right))
	case chatview.Emphasis:
		return r.inlines(n.Children, r.palette.style(n.Style).Inherit(base))
	case chatview.Strong:
		return r.inlines(n.Children, r.palette.style(n.Style).Inherit(base))
	case chatview.Strikethrough:
		return r.inlines(n.Children, r.palette.style(n.Style).Inherit(base))
	case chatview.Link:
		out := r.inlines(n.Children, r.palette.style(n.Style).Inherit(base))
		if label := chatview.PlainText(n.Children); label != n.URL && strings.TrimPrefix(n.URL, "mailto:") != label {
			out += " " + r.palette.style(chatview.Style{Foreground: chatview.ColorMuted}).Render("("+sanitize(n.URL)+")")
		}
		return out
	case chatview.Image:
		st := r.palette.style(n.Style).Inherit(base)
		alt := sanitize(n.Alt)
		if alt == "" {
			alt = "image"
		}
		return st.Render(glyphImage+" "+alt) + " " + r.palette.style(chatview.Style{Foreground: chatview.ColorMuted}).Render("("+sanitize(n.Source)+")")
	case chatview.Checkbox:
		glyph := glyphUnchecked
		if n.Checked {
			glyph = glyphChecked
		}
		return r.palette.style(n.Style).Inherit(base).Render(glyph) + base.Render(" ")
	case chatview.HTML:
		return r.palette.style(n.Style).Inherit(base).Render(sanitize(n.Raw))
	case chatview.StreamingCursor:
		return r.cursor(n.Style)
	default:
		// Block content inside inline context (not produced by the
		// presenter) is drawn without wrapping.
		return r.block(node, DefaultWidth, base, &drawState{focus: -1})
	}
}
