package goldmark

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fwojciec/chatview"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/util"
)

// converter walks one goldmark document. Code block IDs are assigned in
// document order, so a converter must not be reused across documents.
type converter struct {
	source      []byte
	rules       chatview.Rules
	highlighter chatview.Highlighter
	nextCodeID  int
}

func (c *converter) blocks(parent ast.Node) ([]chatview.Node, error) {
	var nodes []chatview.Node
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if isEmptyParagraph(n) {
			continue
		}
		node, err := c.block(n)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// isEmptyParagraph reports a paragraph left empty by goldmark, as happens
// when it held only link reference definitions.
func isEmptyParagraph(n ast.Node) bool {
	switch n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return !n.HasChildren()
	}
	return false
}

func (c *converter) block(node ast.Node) (chatview.Node, error) {
	switch n := node.(type) {
	case *ast.Paragraph:
		children, err := c.inlines(n)
		if err != nil {
			return nil, err
		}
		return chatview.Paragraph{Children: children, Style: c.rules.Paragraph}, nil

	case *ast.TextBlock:
		// Tight list items: no paragraph spacing.
		children, err := c.inlines(n)
		if err != nil {
			return nil, err
		}
		return chatview.Paragraph{Children: children}, nil

	case *ast.Heading:
		children, err := c.inlines(n)
		if err != nil {
			return nil, err
		}
		return chatview.Heading{Level: n.Level, Children: children, Style: c.rules.Heading(n.Level)}, nil

	case *ast.FencedCodeBlock:
		return c.codeBlock(string(n.Language(c.source)), c.lines(n)), nil

	case *ast.CodeBlock:
		return c.codeBlock("", c.lines(n)), nil

	case *ast.List:
		items, err := c.blocks(n)
		if err != nil {
			return nil, err
		}
		list := chatview.List{Ordered: n.IsOrdered(), Items: items, Style: c.rules.List}
		if list.Ordered {
			list.Start = n.Start
		}
		return list, nil

	case *ast.ListItem:
		children, err := c.blocks(n)
		if err != nil {
			return nil, err
		}
		return chatview.ListItem{Children: children, Style: c.rules.ListItem}, nil

	case *ast.Blockquote:
		children, err := c.blocks(n)
		if err != nil {
			return nil, err
		}
		return chatview.Blockquote{Children: children, Style: c.rules.Blockquote}, nil

	case *ast.ThematicBreak:
		return chatview.Rule{Style: c.rules.Rule}, nil

	case *ast.HTMLBlock:
		raw := c.lines(n)
		if n.HasClosure() {
			raw += string(n.ClosureLine.Value(c.source))
		}
		return chatview.HTML{Raw: strings.TrimSuffix(raw, "\n"), Style: c.rules.HTML}, nil

	case *east.Table:
		return c.table(n)

	default:
		return nil, fmt.Errorf("%w: block %s", chatview.ErrUnsupportedNode, node.Kind())
	}
}

func (c *converter) codeBlock(language, code string) chatview.CodeBlock {
	block := chatview.NewCodeBlock(c.nextCodeID, language, code, c.rules)
	c.nextCodeID++
	if c.highlighter != nil {
		block.Tokens = c.highlighter.Highlight(block.Language, block.Code)
	}
	return block
}

// lines concatenates the raw source lines of a block node. CRLF line
// endings become LF.
func (c *converter) lines(n ast.Node) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := seg.Value(c.source)
		if bytes.HasSuffix(line, []byte("\r\n")) {
			buf.Write(line[:len(line)-2])
			buf.WriteByte('\n')
			continue
		}
		buf.Write(line)
	}
	return buf.String()
}

func (c *converter) table(n *east.Table) (chatview.Node, error) {
	table := chatview.Table{
		Alignments: make([]chatview.Alignment, len(n.Alignments)),
		Head:       chatview.TableSection{Header: true, Style: c.rules.TableHead},
		Body:       chatview.TableSection{Style: c.rules.TableBody},
		Style:      c.rules.Table,
	}
	for i, a := range n.Alignments {
		table.Alignments[i] = alignment(a)
	}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch r := child.(type) {
		case *east.TableHeader:
			row, err := c.tableRow(r, true)
			if err != nil {
				return nil, err
			}
			table.Head.Rows = append(table.Head.Rows, row)
		case *east.TableRow:
			row, err := c.tableRow(r, false)
			if err != nil {
				return nil, err
			}
			table.Body.Rows = append(table.Body.Rows, row)
		default:
			return nil, fmt.Errorf("%w: table child %s", chatview.ErrUnsupportedNode, child.Kind())
		}
	}
	return table, nil
}

// tableRow maps a header or body row. goldmark puts header cells directly
// under the TableHeader node.
func (c *converter) tableRow(n ast.Node, header bool) (chatview.TableRow, error) {
	row := chatview.TableRow{Style: c.rules.TableRow}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		cell, ok := child.(*east.TableCell)
		if !ok {
			return chatview.TableRow{}, fmt.Errorf("%w: table row child %s", chatview.ErrUnsupportedNode, child.Kind())
		}
		children, err := c.inlines(cell)
		if err != nil {
			return chatview.TableRow{}, err
		}
		style := c.rules.TableCell
		if header {
			style = c.rules.TableHeaderCell
		}
		row.Cells = append(row.Cells, chatview.TableCell{
			Header:   header,
			Align:    alignment(cell.Alignment),
			Children: children,
			Style:    style,
		})
	}
	return row, nil
}

func alignment(a east.Alignment) chatview.Alignment {
	switch a {
	case east.AlignLeft:
		return chatview.AlignLeft
	case east.AlignCenter:
		return chatview.AlignCenter
	case east.AlignRight:
		return chatview.AlignRight
	default:
		return chatview.AlignNone
	}
}

// inlines maps the inline children of node, merging adjacent text.
func (c *converter) inlines(node ast.Node) ([]chatview.Node, error) {
	var nodes []chatview.Node
	for n := node.FirstChild(); n != nil; n = n.NextSibling() {
		mapped, err := c.inline(n)
		if err != nil {
			return nil, err
		}
		for _, m := range mapped {
			nodes = appendInline(nodes, m)
		}
	}
	return nodes, nil
}

func appendInline(nodes []chatview.Node, n chatview.Node) []chatview.Node {
	t, ok := n.(chatview.Text)
	if !ok {
		return append(nodes, n)
	}
	if t.Value == "" {
		return nodes
	}
	if len(nodes) > 0 {
		if prev, ok := nodes[len(nodes)-1].(chatview.Text); ok {
			nodes[len(nodes)-1] = chatview.Text{Value: prev.Value + t.Value}
			return nodes
		}
	}
	return append(nodes, t)
}

func (c *converter) inline(node ast.Node) ([]chatview.Node, error) {
	switch n := node.(type) {
	case *ast.Text:
		value := n.Segment.Value(c.source)
		if !n.IsRaw() {
			value = unescape(value)
		}
		out := []chatview.Node{chatview.Text{Value: string(value)}}
		switch {
		case n.HardLineBreak():
			out = append(out, chatview.Break{})
		case n.SoftLineBreak():
			out = append(out, chatview.Text{Value: " "})
		}
		return out, nil

	case *ast.String:
		value := n.Value
		if !n.IsRaw() {
			value = unescape(value)
		}
		return []chatview.Node{chatview.Text{Value: string(value)}}, nil

	case *ast.CodeSpan:
		return []chatview.Node{chatview.InlineCode{Text: c.codeSpan(n), Style: c.rules.InlineCode}}, nil

	case *ast.Emphasis:
		children, err := c.inlines(n)
		if err != nil {
			return nil, err
		}
		if n.Level >= 2 {
			return []chatview.Node{chatview.Strong{Children: children, Style: c.rules.Strong}}, nil
		}
		return []chatview.Node{chatview.Emphasis{Children: children, Style: c.rules.Emphasis}}, nil

	case *east.Strikethrough:
		children, err := c.inlines(n)
		if err != nil {
			return nil, err
		}
		return []chatview.Node{chatview.Strikethrough{Children: children, Style: c.rules.Strikethrough}}, nil

	case *ast.Link:
		children, err := c.inlines(n)
		if err != nil {
			return nil, err
		}
		return []chatview.Node{chatview.Link{
			URL:      string(n.Destination),
			Title:    string(n.Title),
			External: true,
			Children: children,
			Style:    c.rules.Link,
		}}, nil

	case *ast.AutoLink:
		label := string(n.Label(c.source))
		url := string(n.URL(c.source))
		if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(url), "mailto:") {
			url = "mailto:" + url
		}
		return []chatview.Node{chatview.Link{
			URL:      url,
			External: true,
			Children: []chatview.Node{chatview.Text{Value: label}},
			Style:    c.rules.Link,
		}}, nil

	case *ast.Image:
		children, err := c.inlines(n)
		if err != nil {
			return nil, err
		}
		return []chatview.Node{chatview.Image{
			Source: string(n.Destination),
			Alt:    chatview.PlainText(children),
			Title:  string(n.Title),
			Style:  c.rules.Image,
		}}, nil

	case *east.TaskCheckBox:
		return []chatview.Node{chatview.Checkbox{Checked: n.IsChecked, Style: c.rules.Checkbox}}, nil

	case *ast.RawHTML:
		var buf bytes.Buffer
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			buf.Write(seg.Value(c.source))
		}
		return []chatview.Node{chatview.HTML{Raw: buf.String(), Style: c.rules.HTML}}, nil

	default:
		return nil, fmt.Errorf("%w: inline %s", chatview.ErrUnsupportedNode, node.Kind())
	}
}

// codeSpan returns the literal text of a code span. Line endings inside the
// span read as spaces.
func (c *converter) codeSpan(n *ast.CodeSpan) string {
	var buf bytes.Buffer
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		var value []byte
		switch t := child.(type) {
		case *ast.Text:
			value = t.Segment.Value(c.source)
		case *ast.String:
			value = t.Value
		}
		if v, ok := bytes.CutSuffix(value, []byte("\n")); ok {
			buf.Write(v)
			buf.WriteByte(' ')
			continue
		}
		buf.Write(value)
	}
	return buf.String()
}

func unescape(value []byte) []byte {
	value = util.UnescapePunctuations(value)
	value = util.ResolveNumericReferences(value)
	return util.ResolveEntityNames(value)
}
