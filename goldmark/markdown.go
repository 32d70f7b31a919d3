// Package goldmark presents chat messages as visual trees using goldmark
// and its GFM extensions for parsing.
package goldmark

import (
	"fmt"

	"github.com/fwojciec/chatview"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var _ chatview.Presenter = (*Presenter)(nil)

// Presenter maps messages to visual trees. It is safe for concurrent use.
type Presenter struct {
	md          goldmark.Markdown
	rules       chatview.Rules
	highlighter chatview.Highlighter
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithRules replaces the default style rule table.
func WithRules(r chatview.Rules) Option {
	return func(p *Presenter) { p.rules = r }
}

// WithHighlighter tokenises fenced code with h.
func WithHighlighter(h chatview.Highlighter) Option {
	return func(p *Presenter) { p.highlighter = h }
}

// NewPresenter creates a Presenter that parses GitHub Flavored Markdown.
func NewPresenter(opts ...Option) *Presenter {
	p := &Presenter{
		md:    goldmark.New(goldmark.WithExtensions(extension.GFM)),
		rules: chatview.DefaultRules(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Present classifies the message content and builds its visual tree.
// Image URLs become a single framed image view; everything else is parsed
// as markdown. A streaming message ends with a cursor node.
func (p *Presenter) Present(msg chatview.Message) (chatview.Tree, error) {
	if err := msg.Validate(); err != nil {
		return chatview.Tree{}, err
	}
	tree := chatview.Tree{
		Role: msg.EffectiveRole(),
		Kind: chatview.Classify(msg.Content),
	}
	switch tree.Kind {
	case chatview.ContentImage:
		tree.Nodes = []chatview.Node{chatview.ImageView{
			Source: msg.Content,
			Alt:    chatview.ImageAlt,
			Style:  p.rules.ImageView,
			Frame:  p.rules.ImageFrame,
		}}
	default:
		nodes, err := p.presentMarkdown([]byte(msg.Content))
		if err != nil {
			return chatview.Tree{}, err
		}
		tree.Nodes = nodes
	}
	if msg.Streaming {
		tree.Nodes = append(tree.Nodes, chatview.StreamingCursor{Style: p.rules.StreamingCursor})
	}
	return tree, nil
}

func (p *Presenter) presentMarkdown(source []byte) ([]chatview.Node, error) {
	doc := p.md.Parser().Parse(text.NewReader(source))
	return p.convert(doc, source)
}

func (p *Presenter) convert(doc ast.Node, source []byte) ([]chatview.Node, error) {
	c := &converter{source: source, rules: p.rules, highlighter: p.highlighter}
	nodes, err := c.blocks(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", chatview.ErrParse, err)
	}
	return nodes, nil
}

// Present builds the visual tree of msg with a default Presenter.
func Present(msg chatview.Message) (chatview.Tree, error) {
	return NewPresenter().Present(msg)
}
