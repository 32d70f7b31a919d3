package json

import "github.com/fwojciec/chatview"

// styleDTO carries the non-zero fields of a Style.
type styleDTO struct {
	Size          string     `json:"size,omitempty"`
	Weight        string     `json:"weight,omitempty"`
	Italic        bool       `json:"italic,omitempty"`
	Underline     bool       `json:"underline,omitempty"`
	Strikethrough bool       `json:"strikethrough,omitempty"`
	Monospace     bool       `json:"monospace,omitempty"`
	Blink         bool       `json:"blink,omitempty"`
	Foreground    string     `json:"foreground,omitempty"`
	Background    string     `json:"background,omitempty"`
	Hover         string     `json:"hover,omitempty"`
	Border        *borderDTO `json:"border,omitempty"`
	Padding       *[4]int    `json:"padding,omitempty"`
	Margin        *[4]int    `json:"margin,omitempty"`
	Gap           int        `json:"gap,omitempty"`
	MaxWidth      int        `json:"max_width,omitempty"`
	Centered      bool       `json:"centered,omitempty"`
}

type borderDTO struct {
	Sides   []string `json:"sides"`
	Width   int      `json:"width,omitempty"`
	Color   string   `json:"color,omitempty"`
	Rounded bool     `json:"rounded,omitempty"`
}

type chromeDTO struct {
	Container *styleDTO `json:"container,omitempty"`
	Header    *styleDTO `json:"header,omitempty"`
	Label     *styleDTO `json:"label,omitempty"`
	Button    *styleDTO `json:"button,omitempty"`
	Copied    *styleDTO `json:"copied,omitempty"`
	Body      *styleDTO `json:"body,omitempty"`
}

func marshalStyle(s chatview.Style) *styleDTO {
	if s.IsZero() {
		return nil
	}
	dto := &styleDTO{
		Italic:        s.Italic,
		Underline:     s.Underline,
		Strikethrough: s.Strikethrough,
		Monospace:     s.Monospace,
		Blink:         s.Blink,
		Foreground:    string(s.Foreground),
		Background:    string(s.Background),
		Hover:         string(s.Hover),
		Gap:           s.Gap,
		MaxWidth:      s.MaxWidth,
		Centered:      s.Centered,
	}
	if s.Size != chatview.SizeBase {
		dto.Size = s.Size.String()
	}
	if s.Weight != chatview.WeightNormal {
		dto.Weight = s.Weight.String()
	}
	if s.Border != (chatview.Border{}) {
		dto.Border = &borderDTO{
			Sides:   sides(s.Border.Sides),
			Width:   s.Border.Width,
			Color:   string(s.Border.Color),
			Rounded: s.Border.Rounded,
		}
	}
	dto.Padding = spacing(s.Padding)
	dto.Margin = spacing(s.Margin)
	return dto
}

func marshalChrome(c chatview.CodeChrome) *chromeDTO {
	return &chromeDTO{
		Container: marshalStyle(c.Container),
		Header:    marshalStyle(c.Header),
		Label:     marshalStyle(c.Label),
		Button:    marshalStyle(c.Button),
		Copied:    marshalStyle(c.Copied),
		Body:      marshalStyle(c.Body),
	}
}

// spacing returns top, right, bottom, left, or nil when all are zero.
func spacing(s chatview.Spacing) *[4]int {
	if s == (chatview.Spacing{}) {
		return nil
	}
	return &[4]int{s.Top, s.Right, s.Bottom, s.Left}
}

func sides(s chatview.Sides) []string {
	out := []string{}
	for _, side := range []struct {
		bit  chatview.Sides
		name string
	}{
		{chatview.SideTop, "top"},
		{chatview.SideRight, "right"},
		{chatview.SideBottom, "bottom"},
		{chatview.SideLeft, "left"},
	} {
		if s.Has(side.bit) {
			out = append(out, side.name)
		}
	}
	return out
}
