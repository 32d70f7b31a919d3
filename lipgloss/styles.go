package lipgloss

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatview"
)

// Glyphs drawn for icons and markers.
const (
	glyphCopy      = "⧉"
	glyphCheck     = "✓"
	glyphBullet    = "•"
	glyphQuoteBar  = "▌"
	glyphRule      = "─"
	glyphImage     = "▣"
	glyphUnchecked = "[ ]"
	glyphChecked   = "[x]"
)

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

// palette resolves semantic colors and styles through a theme.
type palette struct {
	theme chatview.Theme
}

func (p palette) color(c chatview.Color) lipgloss.TerminalColor {
	return ansiColor(p.theme.Index(c))
}

// style converts the text attributes of s. Box properties (border,
// padding, margin) are applied by the block drawing code. Unset values
// stay unset so the result can inherit from an enclosing style.
func (p palette) style(s chatview.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Weight >= chatview.WeightSemibold || s.Size >= chatview.SizeXL {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Strikethrough {
		st = st.Strikethrough(true)
	}
	if s.Blink {
		st = st.Blink(true)
	}
	if s.Foreground != chatview.ColorDefault {
		st = st.Foreground(p.color(s.Foreground))
	}
	if s.Background != chatview.ColorDefault {
		st = st.Background(p.color(s.Background))
	}
	return st
}

// token returns the style of a highlighted code fragment.
func (p palette) token(k chatview.TokenKind) lipgloss.Style {
	st := lipgloss.NewStyle()
	switch k {
	case chatview.TokenKeyword:
		return st.Foreground(p.color(chatview.ColorAccent)).Bold(true)
	case chatview.TokenFunction:
		return st.Foreground(p.color(chatview.ColorStrong))
	case chatview.TokenString:
		return st.Foreground(p.color(chatview.ColorSuccess))
	case chatview.TokenNumber:
		return st.Foreground(p.color(chatview.ColorAccent))
	case chatview.TokenComment:
		return st.Foreground(p.color(chatview.ColorMuted)).Italic(true)
	case chatview.TokenOperator, chatview.TokenPunctuation:
		return st.Foreground(p.color(chatview.ColorSubtle))
	default:
		return st.Foreground(p.color(chatview.ColorCodeText))
	}
}

func iconGlyph(i chatview.Icon) string {
	if i == chatview.IconCheck {
		return glyphCheck
	}
	return glyphCopy
}

func lipAlign(a chatview.Alignment) lipgloss.Position {
	switch a {
	case chatview.AlignCenter:
		return lipgloss.Center
	case chatview.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
