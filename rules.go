package chatview

// Rules is the style rule table: one Style per visual node kind.
type Rules struct {
	Paragraph Style
	// Headings holds levels 1 through 6 at indices 0 through 5.
	Headings [6]Style

	List          Style
	ListItem      Style
	Checkbox      Style
	Blockquote    Style
	Link          Style
	Emphasis      Style
	Strong        Style
	Strikethrough Style
	InlineCode    Style
	Image         Style
	HTML          Style
	Rule          Style

	CodeBlock CodeChrome

	Table           Style
	TableHead       Style
	TableBody       Style
	TableRow        Style
	TableHeaderCell Style
	TableCell       Style

	ImageView       Style
	ImageFrame      Style
	StreamingCursor Style
}

// CodeChrome groups the styles of the parts of a code block.
type CodeChrome struct {
	Container Style
	Header    Style
	Label     Style
	Button    Style
	Copied    Style
	Body      Style
}

// Heading returns the style for a heading level, clamped to 1-6.
func (r Rules) Heading(level int) Style {
	switch {
	case level < 1:
		level = 1
	case level > 6:
		level = 6
	}
	return r.Headings[level-1]
}

// DefaultRules returns the built-in rule table.
func DefaultRules() Rules {
	return Rules{
		Paragraph: Style{Foreground: ColorText, Margin: Spacing{Bottom: 1}},
		Headings: [6]Style{
			{Size: Size3XL, Weight: WeightBold, Foreground: ColorStrong, Margin: Spacing{Top: 1, Bottom: 1}, Border: Border{Sides: SideBottom, Width: 1, Color: ColorBorder}},
			{Size: Size2XL, Weight: WeightBold, Foreground: ColorStrong, Margin: Spacing{Top: 1, Bottom: 1}, Border: Border{Sides: SideBottom, Width: 1, Color: ColorBorder}},
			{Size: SizeXL, Weight: WeightBold, Foreground: ColorStrong, Margin: Spacing{Top: 1}},
			{Size: SizeLarge, Weight: WeightBold, Foreground: ColorText, Margin: Spacing{Top: 1}},
			{Size: SizeBase, Weight: WeightBold, Foreground: ColorText, Margin: Spacing{Top: 1}},
			{Size: SizeSmall, Weight: WeightBold, Foreground: ColorMuted},
		},
		List:          Style{Foreground: ColorText, Gap: 1, Padding: Spacing{Left: 2}, Margin: Spacing{Bottom: 1}},
		ListItem:      Style{Foreground: ColorText},
		Checkbox:      Style{Foreground: ColorAccent},
		Blockquote:    Style{Italic: true, Foreground: ColorMuted, Background: ColorAccentTint, Border: Border{Sides: SideLeft, Width: 4, Color: ColorAccent}, Padding: Spacing{Left: 2, Top: 1, Bottom: 1}, Margin: Spacing{Top: 1, Bottom: 1}},
		Link:          Style{Underline: true, Weight: WeightMedium, Foreground: ColorAccent},
		Emphasis:      Style{Italic: true},
		Strong:        Style{Weight: WeightBold, Foreground: ColorStrong},
		Strikethrough: Style{Strikethrough: true, Foreground: ColorSubtle},
		InlineCode:    Style{Monospace: true, Weight: WeightSemibold, Size: SizeSmall, Foreground: ColorAccent, Background: ColorSurface, Border: Border{Sides: SidesAll, Width: 1, Color: ColorBorder, Rounded: true}, Padding: Spacing{Left: 1, Right: 1}},
		Image:         Style{Foreground: ColorMuted, Underline: true},
		HTML:          Style{Foreground: ColorMuted},
		Rule:          Style{Border: Border{Sides: SideTop, Width: 1, Color: ColorBorder}, Margin: Spacing{Top: 1, Bottom: 1}},

		CodeBlock: CodeChrome{
			Container: Style{Background: ColorCodeBg, Border: Border{Sides: SidesAll, Width: 1, Color: ColorBorder, Rounded: true}, Margin: Spacing{Top: 1, Bottom: 1}},
			Header:    Style{Background: ColorAccentTint, Border: Border{Sides: SideBottom, Width: 1, Color: ColorBorder}, Padding: Spacing{Left: 1, Right: 1}},
			Label:     Style{Monospace: true, Size: SizeSmall, Weight: WeightSemibold, Foreground: ColorAccent},
			Button:    Style{Size: SizeSmall, Weight: WeightMedium, Foreground: ColorMuted, Hover: ColorSurface, Border: Border{Rounded: true}},
			Copied:    Style{Size: SizeSmall, Weight: WeightMedium, Foreground: ColorSuccess},
			Body:      Style{Monospace: true, Size: SizeSmall, Foreground: ColorCodeText, Padding: Spacing{Top: 1, Bottom: 1, Left: 2, Right: 2}},
		},

		Table:           Style{Border: Border{Sides: SidesAll, Width: 1, Color: ColorBorder, Rounded: true}, Margin: Spacing{Top: 1, Bottom: 1}},
		TableHead:       Style{Background: ColorAccentTint, Border: Border{Sides: SideBottom, Width: 1, Color: ColorBorder}},
		TableBody:       Style{},
		TableRow:        Style{Hover: ColorSurface, Border: Border{Sides: SideBottom, Width: 1, Color: ColorBorder}},
		TableHeaderCell: Style{Weight: WeightBold, Size: SizeSmall, Foreground: ColorText, Padding: Spacing{Left: 1, Right: 1}},
		TableCell:       Style{Size: SizeSmall, Foreground: ColorMuted, Padding: Spacing{Left: 1, Right: 1}},

		ImageView:       Style{Centered: true},
		ImageFrame:      Style{MaxWidth: 40, Border: Border{Sides: SidesAll, Width: 2, Color: ColorBorder, Rounded: true}},
		StreamingCursor: Style{Blink: true, Background: ColorMuted, Margin: Spacing{Left: 1}},
	}
}
