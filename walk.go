package chatview

import "fmt"

// Children returns the direct children of n in document order.
// Table sections and rows are returned as nodes so a walk reaches cells.
func Children(n Node) []Node {
	switch v := n.(type) {
	case Paragraph:
		return v.Children
	case Heading:
		return v.Children
	case List:
		return v.Items
	case ListItem:
		return v.Children
	case Blockquote:
		return v.Children
	case Link:
		return v.Children
	case Emphasis:
		return v.Children
	case Strong:
		return v.Children
	case Strikethrough:
		return v.Children
	case Table:
		return []Node{v.Head, v.Body}
	case TableSection:
		rows := make([]Node, len(v.Rows))
		for i, r := range v.Rows {
			rows[i] = r
		}
		return rows
	case TableRow:
		cells := make([]Node, len(v.Cells))
		for i, c := range v.Cells {
			cells[i] = c
		}
		return cells
	case TableCell:
		return v.Children
	case ImageView, Checkbox, InlineCode, CodeBlock, Rule, Break, Text, Image, HTML, StreamingCursor:
		return nil
	default:
		panic(fmt.Sprintf("chatview: unknown node type %T", n))
	}
}

// Walk visits nodes depth-first in document order. Returning false from
// fn skips the children of that node.
func Walk(nodes []Node, fn func(Node) bool) {
	for _, n := range nodes {
		if fn(n) {
			Walk(Children(n), fn)
		}
	}
}

// CodeBlocks returns every code block of a tree in document order.
func CodeBlocks(t Tree) []CodeBlock {
	var blocks []CodeBlock
	Walk(t.Nodes, func(n Node) bool {
		if cb, ok := n.(CodeBlock); ok {
			blocks = append(blocks, cb)
		}
		return true
	})
	return blocks
}

// PlainText concatenates the literal text below nodes, ignoring styling.
// Code blocks contribute their code, breaks a newline.
func PlainText(nodes []Node) string {
	var out []byte
	Walk(nodes, func(n Node) bool {
		switch v := n.(type) {
		case Text:
			out = append(out, v.Value...)
		case InlineCode:
			out = append(out, v.Text...)
		case CodeBlock:
			out = append(out, v.Code...)
		case HTML:
			out = append(out, v.Raw...)
		case Break:
			out = append(out, '\n')
		case Image:
			out = append(out, v.Alt...)
		}
		return true
	})
	return string(out)
}
