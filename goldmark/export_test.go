package goldmark

import (
	"github.com/fwojciec/chatview"
	"github.com/yuin/goldmark/ast"
)

// Convert exposes document conversion for tests that build ASTs by hand.
func (p *Presenter) Convert(doc ast.Node, source []byte) ([]chatview.Node, error) {
	return p.convert(doc, source)
}
