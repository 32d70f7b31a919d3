package goldmark_test

import (
	"testing"

	"github.com/fwojciec/chatview"
	"github.com/fwojciec/chatview/goldmark"
	"github.com/fwojciec/chatview/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark/ast"
)

func present(t *testing.T, content string) chatview.Tree {
	t.Helper()
	tree, err := goldmark.Present(chatview.Message{Content: content})
	require.NoError(t, err)
	return tree
}

func collect[T chatview.Node](nodes []chatview.Node) []T {
	var out []T
	chatview.Walk(nodes, func(n chatview.Node) bool {
		if v, ok := n.(T); ok {
			out = append(out, v)
		}
		return true
	})
	return out
}

func TestPresent_CodeBlocks(t *testing.T) {
	t.Parallel()
	rules := chatview.DefaultRules()

	t.Run("fenced python block", func(t *testing.T) {
		t.Parallel()
		tree := present(t, "```python\nprint(1)\n```")
		want := chatview.Tree{
			Role: chatview.RoleAssistant,
			Kind: chatview.ContentMarkdown,
			Nodes: []chatview.Node{chatview.CodeBlock{
				ID:       0,
				Language: "python",
				Label:    "python",
				Code:     "print(1)",
				Button:   chatview.CopyButton{Label: "Copy", Icon: chatview.IconCopy},
				Style:    rules.CodeBlock,
			}},
		}
		assert.Equal(t, want, tree)
	})

	t.Run("crlf line endings", func(t *testing.T) {
		t.Parallel()
		blocks := chatview.CodeBlocks(present(t, "```python\r\nprint(1)\r\nprint(2)\r\n```\r\n"))
		require.Len(t, blocks, 1)
		assert.Equal(t, "print(1)\nprint(2)", blocks[0].Code)
	})

	t.Run("fence without language is labelled code", func(t *testing.T) {
		t.Parallel()
		blocks := chatview.CodeBlocks(present(t, "```\nx\n```"))
		require.Len(t, blocks, 1)
		assert.Equal(t, "", blocks[0].Language)
		assert.Equal(t, "code", blocks[0].Label)
	})

	t.Run("indented block", func(t *testing.T) {
		t.Parallel()
		blocks := chatview.CodeBlocks(present(t, "    x := 1\n"))
		require.Len(t, blocks, 1)
		assert.Equal(t, "code", blocks[0].Label)
		assert.Equal(t, "x := 1", blocks[0].Code)
	})

	t.Run("only the first word of the info string is the language", func(t *testing.T) {
		t.Parallel()
		blocks := chatview.CodeBlocks(present(t, "```go title=main.go\npackage main\n```"))
		require.Len(t, blocks, 1)
		assert.Equal(t, "go", blocks[0].Language)
	})

	t.Run("ids follow document order", func(t *testing.T) {
		t.Parallel()
		blocks := chatview.CodeBlocks(present(t, "```a\n1\n```\n\ntext\n\n```b\n2\n```\n\n- ```c\n  3\n  ```"))
		require.Len(t, blocks, 3)
		for i, b := range blocks {
			assert.Equal(t, i, b.ID)
		}
		assert.Equal(t, []string{"a", "b", "c"}, []string{blocks[0].Language, blocks[1].Language, blocks[2].Language})
	})

	t.Run("code keeps inner blank lines and indentation", func(t *testing.T) {
		t.Parallel()
		blocks := chatview.CodeBlocks(present(t, "```\nif x:\n\n    y\n```"))
		require.Len(t, blocks, 1)
		assert.Equal(t, "if x:\n\n    y", blocks[0].Code)
	})

	t.Run("highlighter output is attached", func(t *testing.T) {
		t.Parallel()
		tokens := []chatview.Token{{Kind: chatview.TokenKeyword, Text: "def"}}
		h := &mock.Highlighter{HighlightFn: func(language, code string) []chatview.Token {
			assert.Equal(t, "python", language)
			assert.Equal(t, "def", code)
			return tokens
		}}
		p := goldmark.NewPresenter(goldmark.WithHighlighter(h))
		tree, err := p.Present(chatview.Message{Content: "```python\ndef\n```"})
		require.NoError(t, err)
		blocks := chatview.CodeBlocks(tree)
		require.Len(t, blocks, 1)
		assert.Equal(t, tokens, blocks[0].Tokens)
	})
}

func TestPresent_Image(t *testing.T) {
	t.Parallel()
	rules := chatview.DefaultRules()

	t.Run("image url becomes framed view", func(t *testing.T) {
		t.Parallel()
		tree := present(t, "https://example.com/cat.png")
		want := chatview.Tree{
			Role: chatview.RoleAssistant,
			Kind: chatview.ContentImage,
			Nodes: []chatview.Node{chatview.ImageView{
				Source: "https://example.com/cat.png",
				Alt:    "Message content",
				Style:  rules.ImageView,
				Frame:  rules.ImageFrame,
			}},
		}
		assert.Equal(t, want, tree)
	})

	t.Run("source is the raw content", func(t *testing.T) {
		t.Parallel()
		tree := present(t, "  https://example.com/cat.PNG\n")
		require.Equal(t, chatview.ContentImage, tree.Kind)
		view, ok := tree.Nodes[0].(chatview.ImageView)
		require.True(t, ok)
		assert.Equal(t, "  https://example.com/cat.PNG\n", view.Source)
	})

	t.Run("query string after extension is markdown", func(t *testing.T) {
		t.Parallel()
		tree := present(t, "https://example.com/cat.png?size=2")
		assert.Equal(t, chatview.ContentMarkdown, tree.Kind)
		links := collect[chatview.Link](tree.Nodes)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/cat.png?size=2", links[0].URL)
	})

	t.Run("streaming image gets a cursor", func(t *testing.T) {
		t.Parallel()
		tree, err := goldmark.Present(chatview.Message{Content: "https://a.io/x.gif", Streaming: true})
		require.NoError(t, err)
		require.Len(t, tree.Nodes, 2)
		assert.IsType(t, chatview.StreamingCursor{}, tree.Nodes[1])
	})

	t.Run("inline image in markdown", func(t *testing.T) {
		t.Parallel()
		images := collect[chatview.Image](present(t, "see ![a *cat*](cat.png \"Cat\")").Nodes)
		require.Len(t, images, 1)
		assert.Equal(t, chatview.Image{Source: "cat.png", Alt: "a cat", Title: "Cat", Style: rules.Image}, images[0])
	})
}

func TestPresent_Streaming(t *testing.T) {
	t.Parallel()

	t.Run("cursor is the last node", func(t *testing.T) {
		t.Parallel()
		tree, err := goldmark.Present(chatview.Message{Content: "Hello", Streaming: true})
		require.NoError(t, err)
		require.Len(t, tree.Nodes, 2)
		assert.Equal(t, chatview.StreamingCursor{Style: chatview.DefaultRules().StreamingCursor}, tree.Nodes[1])
	})

	t.Run("no cursor when complete", func(t *testing.T) {
		t.Parallel()
		tree := present(t, "Hello")
		assert.Empty(t, collect[chatview.StreamingCursor](tree.Nodes))
	})

	t.Run("empty streaming message is only a cursor", func(t *testing.T) {
		t.Parallel()
		tree, err := goldmark.Present(chatview.Message{Streaming: true})
		require.NoError(t, err)
		require.Len(t, tree.Nodes, 1)
		assert.IsType(t, chatview.StreamingCursor{}, tree.Nodes[0])
	})

	t.Run("unterminated fence while streaming", func(t *testing.T) {
		t.Parallel()
		tree, err := goldmark.Present(chatview.Message{Content: "```go\nfunc main() {", Streaming: true})
		require.NoError(t, err)
		blocks := chatview.CodeBlocks(tree)
		require.Len(t, blocks, 1)
		assert.Equal(t, "func main() {", blocks[0].Code)
	})
}

func TestPresent_Table(t *testing.T) {
	t.Parallel()
	tree := present(t, "| A | B |\n|---|--:|\n| 1 | 2 |")
	require.Len(t, tree.Nodes, 1)
	table, ok := tree.Nodes[0].(chatview.Table)
	require.True(t, ok)

	assert.Equal(t, []chatview.Alignment{chatview.AlignNone, chatview.AlignRight}, table.Alignments)
	assert.True(t, table.Head.Header)
	require.Len(t, table.Head.Rows, 1)
	require.Len(t, table.Body.Rows, 1)

	head := table.Head.Rows[0].Cells
	require.Len(t, head, 2)
	assert.Equal(t, "A", chatview.PlainText(head[0].Children))
	assert.Equal(t, "B", chatview.PlainText(head[1].Children))
	assert.True(t, head[0].Header)
	assert.Equal(t, chatview.AlignRight, head[1].Align)

	body := table.Body.Rows[0].Cells
	require.Len(t, body, 2)
	assert.Equal(t, "1", chatview.PlainText(body[0].Children))
	assert.Equal(t, "2", chatview.PlainText(body[1].Children))
	assert.False(t, body[0].Header)
}

func TestPresent_Blocks(t *testing.T) {
	t.Parallel()
	rules := chatview.DefaultRules()

	t.Run("link reference definitions leave no empty paragraph", func(t *testing.T) {
		t.Parallel()
		tree := present(t, "see [docs][d]\n\n[d]: https://go.dev\n")
		require.Len(t, tree.Nodes, 1)
		para, ok := tree.Nodes[0].(chatview.Paragraph)
		require.True(t, ok)
		links := collect[chatview.Link](para.Children)
		require.Len(t, links, 1)
		assert.Equal(t, "https://go.dev", links[0].URL)
	})

	t.Run("heading levels", func(t *testing.T) {
		t.Parallel()
		for level := 1; level <= 6; level++ {
			src := ""
			for i := 0; i < level; i++ {
				src += "#"
			}
			tree := present(t, src+" Title")
			require.Len(t, tree.Nodes, 1)
			assert.Equal(t, chatview.Heading{
				Level:    level,
				Children: []chatview.Node{chatview.Text{Value: "Title"}},
				Style:    rules.Heading(level),
			}, tree.Nodes[0])
		}
	})

	t.Run("ordered list start", func(t *testing.T) {
		t.Parallel()
		tree := present(t, "3. a\n4. b")
		list, ok := tree.Nodes[0].(chatview.List)
		require.True(t, ok)
		assert.True(t, list.Ordered)
		assert.Equal(t, 3, list.Start)
		assert.Len(t, list.Items, 2)
	})

	t.Run("tight list items have unstyled paragraphs", func(t *testing.T) {
		t.Parallel()
		tree := present(t, "- a\n- b")
		list, ok := tree.Nodes[0].(chatview.List)
		require.True(t, ok)
		assert.False(t, list.Ordered)
		assert.Equal(t, 0, list.Start)
		item, ok := list.Items[0].(chatview.ListItem)
		require.True(t, ok)
		assert.Equal(t, []chatview.Node{chatview.Paragraph{Children: []chatview.Node{chatview.Text{Value: "a"}}}}, item.Children)
	})

	t.Run("task list", func(t *testing.T) {
		t.Parallel()
		boxes := collect[chatview.Checkbox](present(t, "- [x] done\n- [ ] todo").Nodes)
		require.Len(t, boxes, 2)
		assert.True(t, boxes[0].Checked)
		assert.False(t, boxes[1].Checked)
	})

	t.Run("blockquote", func(t *testing.T) {
		t.Parallel()
		tree := present(t, "> quoted")
		quote, ok := tree.Nodes[0].(chatview.Blockquote)
		require.True(t, ok)
		assert.Equal(t, rules.Blockquote, quote.Style)
		assert.Equal(t, "quoted", chatview.PlainText(quote.Children))
	})

	t.Run("thematic break", func(t *testing.T) {
		t.Parallel()
		tree := present(t, "a\n\n---\n\nb")
		require.Len(t, tree.Nodes, 3)
		assert.Equal(t, chatview.Rule{Style: rules.Rule}, tree.Nodes[1])
	})

	t.Run("html block is kept literally", func(t *testing.T) {
		t.Parallel()
		tree := present(t, "<div>\nhi\n</div>")
		require.Len(t, tree.Nodes, 1)
		assert.Equal(t, chatview.HTML{Raw: "<div>\nhi\n</div>", Style: rules.HTML}, tree.Nodes[0])
	})
}

func TestPresent_Inlines(t *testing.T) {
	t.Parallel()
	rules := chatview.DefaultRules()

	t.Run("emphasis and strong", func(t *testing.T) {
		t.Parallel()
		tree := present(t, "*a* **b**")
		para, ok := tree.Nodes[0].(chatview.Paragraph)
		require.True(t, ok)
		assert.Equal(t, []chatview.Node{
			chatview.Emphasis{Children: []chatview.Node{chatview.Text{Value: "a"}}, Style: rules.Emphasis},
			chatview.Text{Value: " "},
			chatview.Strong{Children: []chatview.Node{chatview.Text{Value: "b"}}, Style: rules.Strong},
		}, para.Children)
	})

	t.Run("strikethrough", func(t *testing.T) {
		t.Parallel()
		nodes := collect[chatview.Strikethrough](present(t, "~~gone~~").Nodes)
		require.Len(t, nodes, 1)
		assert.Equal(t, "gone", chatview.PlainText(nodes[0].Children))
	})

	t.Run("inline code", func(t *testing.T) {
		t.Parallel()
		nodes := collect[chatview.InlineCode](present(t, "run `go test`").Nodes)
		require.Len(t, nodes, 1)
		assert.Equal(t, chatview.InlineCode{Text: "go test", Style: rules.InlineCode}, nodes[0])
	})

	t.Run("link", func(t *testing.T) {
		t.Parallel()
		links := collect[chatview.Link](present(t, `[docs](https://go.dev "Go")`).Nodes)
		require.Len(t, links, 1)
		assert.Equal(t, chatview.Link{
			URL:      "https://go.dev",
			Title:    "Go",
			External: true,
			Children: []chatview.Node{chatview.Text{Value: "docs"}},
			Style:    rules.Link,
		}, links[0])
	})

	t.Run("email autolink gets mailto", func(t *testing.T) {
		t.Parallel()
		links := collect[chatview.Link](present(t, "<me@example.com>").Nodes)
		require.Len(t, links, 1)
		assert.Equal(t, "mailto:me@example.com", links[0].URL)
		assert.Equal(t, "me@example.com", chatview.PlainText(links[0].Children))
	})

	t.Run("bare url is linkified", func(t *testing.T) {
		t.Parallel()
		links := collect[chatview.Link](present(t, "visit https://go.dev today").Nodes)
		require.Len(t, links, 1)
		assert.True(t, links[0].External)
	})

	t.Run("soft break reads as a space", func(t *testing.T) {
		t.Parallel()
		tree := present(t, "a\nb")
		assert.Equal(t, []chatview.Node{chatview.Paragraph{
			Children: []chatview.Node{chatview.Text{Value: "a b"}},
			Style:    rules.Paragraph,
		}}, tree.Nodes)
	})

	t.Run("hard break", func(t *testing.T) {
		t.Parallel()
		breaks := collect[chatview.Break](present(t, "a\\\nb").Nodes)
		assert.Len(t, breaks, 1)
	})

	t.Run("escapes and entities are resolved", func(t *testing.T) {
		t.Parallel()
		tree := present(t, `\*not emphasis\* &amp; &#35;`)
		assert.Equal(t, "*not emphasis* & #", chatview.PlainText(tree.Nodes))
	})

	t.Run("raw html", func(t *testing.T) {
		t.Parallel()
		nodes := collect[chatview.HTML](present(t, "a <kbd>b</kbd>").Nodes)
		require.Len(t, nodes, 2)
		assert.Equal(t, "<kbd>", nodes[0].Raw)
		assert.Equal(t, "</kbd>", nodes[1].Raw)
	})
}

func TestPresent_Properties(t *testing.T) {
	t.Parallel()

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		msg := chatview.Message{Content: "# T\n\n```go\nx\n```\n\n| a |\n|---|\n| b |", Streaming: true}
		p := goldmark.NewPresenter()
		first, err := p.Present(msg)
		require.NoError(t, err)
		second, err := p.Present(msg)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("role is carried", func(t *testing.T) {
		t.Parallel()
		tree, err := goldmark.Present(chatview.Message{Content: "hi", Role: chatview.RoleUser})
		require.NoError(t, err)
		assert.Equal(t, chatview.RoleUser, tree.Role)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		tree := present(t, "")
		assert.Equal(t, chatview.ContentMarkdown, tree.Kind)
		assert.Empty(t, tree.Nodes)
	})

	t.Run("invalid role", func(t *testing.T) {
		t.Parallel()
		_, err := goldmark.Present(chatview.Message{Content: "hi", Role: "system"})
		assert.ErrorIs(t, err, chatview.ErrValidation)
	})

	t.Run("custom rules", func(t *testing.T) {
		t.Parallel()
		rules := chatview.DefaultRules()
		rules.Paragraph = chatview.Style{Foreground: chatview.ColorAccent}
		tree, err := goldmark.NewPresenter(goldmark.WithRules(rules)).Present(chatview.Message{Content: "x"})
		require.NoError(t, err)
		assert.Equal(t, rules.Paragraph, tree.Nodes[0].(chatview.Paragraph).Style)
	})
}

var kindUnknown = ast.NewNodeKind("Unknown")

type unknownBlock struct{ ast.BaseBlock }

func (n *unknownBlock) Kind() ast.NodeKind { return kindUnknown }

func (n *unknownBlock) Dump(source []byte, level int) { ast.DumpHelper(n, source, level, nil, nil) }

func TestPresenter_UnsupportedNode(t *testing.T) {
	t.Parallel()
	doc := ast.NewDocument()
	doc.AppendChild(doc, ast.NewParagraph())
	doc.AppendChild(doc, &unknownBlock{})

	nodes, err := goldmark.NewPresenter().Convert(doc, nil)
	assert.ErrorIs(t, err, chatview.ErrParse)
	assert.ErrorIs(t, err, chatview.ErrUnsupportedNode)
	assert.Nil(t, nodes)
}
