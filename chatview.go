// Package chatview renders chat message content into a tree of styled
// visual nodes.
//
// The root package holds the domain types: the content classifier, the
// node tree, the style rule table and the copy state machine for code
// blocks. Parsing, drawing and platform access live in subpackages named
// after the library they wrap.
package chatview

import "context"

// Presenter turns a message into a visual tree.
type Presenter interface {
	Present(msg Message) (Tree, error)
}

// Renderer turns a message into text ready for display at width columns.
type Renderer interface {
	Render(msg Message, width int) (string, error)
}

// Clipboard writes text to a clipboard. Implementations block until the
// platform reports success or failure.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Highlighter splits code into syntax-highlighted tokens. It returns nil
// when the language is unknown.
type Highlighter interface {
	Highlight(language, code string) []Token
}

// TokenKind is the syntactic class of a highlighted code fragment.
type TokenKind int

const (
	TokenPlain TokenKind = iota
	TokenKeyword
	TokenName
	TokenFunction
	TokenString
	TokenNumber
	TokenComment
	TokenOperator
	TokenPunctuation
)

func (k TokenKind) String() string {
	switch k {
	case TokenKeyword:
		return "keyword"
	case TokenName:
		return "name"
	case TokenFunction:
		return "function"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenComment:
		return "comment"
	case TokenOperator:
		return "operator"
	case TokenPunctuation:
		return "punctuation"
	default:
		return "plain"
	}
}

// Token is a highlighted fragment of code.
type Token struct {
	Kind TokenKind
	Text string
}
