// Package chroma highlights fenced code using the chroma lexers.
package chroma

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/chatview"
)

var _ chatview.Highlighter = (*Highlighter)(nil)

// Highlighter tokenises code with a lexer chosen by language name.
// Lexers are resolved once per language and cached.
type Highlighter struct {
	mu    sync.RWMutex
	cache map[string]chroma.Lexer
}

// NewHighlighter creates a Highlighter with an empty lexer cache.
func NewHighlighter() *Highlighter {
	return &Highlighter{cache: make(map[string]chroma.Lexer)}
}

// Highlight splits code into tokens. It returns nil when language is empty,
// unknown to chroma, or the lexer fails.
func (h *Highlighter) Highlight(language, code string) []chatview.Token {
	if language == "" || code == "" {
		return nil
	}
	lexer := h.lexer(language)
	if lexer == nil {
		return nil
	}
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil
	}
	var tokens []chatview.Token
	for _, tok := range iterator.Tokens() {
		if tok.Value == "" {
			continue
		}
		kind := Kind(tok.Type)
		if n := len(tokens); n > 0 && tokens[n-1].Kind == kind {
			tokens[n-1].Text += tok.Value
			continue
		}
		tokens = append(tokens, chatview.Token{Kind: kind, Text: tok.Value})
	}
	// Lexers configured with EnsureNL append a newline the code never had.
	if n := len(tokens); n > 0 && !strings.HasSuffix(code, "\n") {
		last := strings.TrimSuffix(tokens[n-1].Text, "\n")
		if last == "" {
			tokens = tokens[:n-1]
		} else {
			tokens[n-1].Text = last
		}
	}
	return tokens
}

func (h *Highlighter) lexer(language string) chroma.Lexer {
	h.mu.RLock()
	lexer, ok := h.cache[language]
	h.mu.RUnlock()
	if ok {
		return lexer
	}

	lexer = lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Match("file." + language)
	}
	if lexer != nil {
		lexer = chroma.Coalesce(lexer)
	}

	// Unknown languages are cached as nil to skip the lookup next time.
	h.mu.Lock()
	h.cache[language] = lexer
	h.mu.Unlock()
	return lexer
}

// Kind maps a chroma token type to a token kind.
func Kind(t chroma.TokenType) chatview.TokenKind {
	switch {
	case t.InCategory(chroma.Keyword):
		return chatview.TokenKeyword
	case t == chroma.NameFunction || t == chroma.NameBuiltin:
		return chatview.TokenFunction
	case t.InCategory(chroma.Name):
		return chatview.TokenName
	case t.InSubCategory(chroma.LiteralString):
		return chatview.TokenString
	case t.InSubCategory(chroma.LiteralNumber):
		return chatview.TokenNumber
	case t.InCategory(chroma.Comment):
		return chatview.TokenComment
	case t.InCategory(chroma.Operator):
		return chatview.TokenOperator
	case t.InCategory(chroma.Punctuation):
		return chatview.TokenPunctuation
	default:
		return chatview.TokenPlain
	}
}
