package chatview

// Theme maps semantic colors to ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so output
// automatically matches any color scheme. A negative index means no color.
type Theme struct {
	Text       int // Body text
	Strong     int // Headings, bold text
	Muted      int // Blockquotes, table body
	Subtle     int // Strikethrough, dividers
	Accent     int // Links, inline code, code labels
	AccentTint int // Blockquote and table header backgrounds
	Surface    int // Inline code badge, hovered rows
	Success    int // Copied indicator
	Border     int // Frames and dividers
	CodeBg     int // Code block background
	CodeText   int // Code block text
	UserMsg    int // User role header
	Error      int // Presentation failures
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Text:       7,
		Strong:     15,
		Muted:      8,
		Subtle:     8,
		Accent:     3,
		AccentTint: 0,
		Surface:    0,
		Success:    2,
		Border:     8,
		CodeBg:     0,
		CodeText:   7,
		UserMsg:    4,
		Error:      1,
	}
}

// Index returns the ANSI index a theme assigns to a semantic color.
// ColorDefault and unknown colors yield -1.
func (t Theme) Index(c Color) int {
	switch c {
	case ColorText:
		return t.Text
	case ColorStrong:
		return t.Strong
	case ColorMuted:
		return t.Muted
	case ColorSubtle:
		return t.Subtle
	case ColorAccent:
		return t.Accent
	case ColorAccentTint:
		return t.AccentTint
	case ColorSurface:
		return t.Surface
	case ColorSuccess:
		return t.Success
	case ColorBorder:
		return t.Border
	case ColorCodeBg:
		return t.CodeBg
	case ColorCodeText:
		return t.CodeText
	default:
		return -1
	}
}
