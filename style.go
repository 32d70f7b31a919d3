package chatview

// Color is a semantic color token. Backends resolve it through a Theme.
type Color string

const (
	ColorDefault    Color = ""
	ColorText       Color = "text"
	ColorStrong     Color = "strong"
	ColorMuted      Color = "muted"
	ColorSubtle     Color = "subtle"
	ColorAccent     Color = "accent"
	ColorAccentTint Color = "accent-tint"
	ColorSurface    Color = "surface"
	ColorSuccess    Color = "success"
	ColorBorder     Color = "border"
	ColorCodeBg     Color = "code-bg"
	ColorCodeText   Color = "code-text"
)

// Size is a text size tier. The zero value is the body size.
type Size int

const (
	SizeBase Size = iota
	SizeSmall
	SizeLarge
	SizeXL
	Size2XL
	Size3XL
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "sm"
	case SizeLarge:
		return "lg"
	case SizeXL:
		return "xl"
	case Size2XL:
		return "2xl"
	case Size3XL:
		return "3xl"
	default:
		return "base"
	}
}

// Weight is a font weight tier.
type Weight int

const (
	WeightNormal Weight = iota
	WeightMedium
	WeightSemibold
	WeightBold
)

func (w Weight) String() string {
	switch w {
	case WeightMedium:
		return "medium"
	case WeightSemibold:
		return "semibold"
	case WeightBold:
		return "bold"
	default:
		return "normal"
	}
}

// Sides is a bit set of box edges.
type Sides uint8

const (
	SideTop Sides = 1 << iota
	SideRight
	SideBottom
	SideLeft

	SidesNone Sides = 0
	SidesAll        = SideTop | SideRight | SideBottom | SideLeft
)

// Has reports whether every side in o is set.
func (s Sides) Has(o Sides) bool { return s&o == o }

// Border describes a frame drawn around (some sides of) a node.
type Border struct {
	Sides   Sides
	Width   int
	Color   Color
	Rounded bool
}

// Spacing holds a value per box edge, in layout units (terminal rows or
// columns for terminal backends).
type Spacing struct {
	Top, Right, Bottom, Left int
}

// Style is the renderer-agnostic presentation of a visual node.
// The zero Style inherits everything from the enclosing node.
type Style struct {
	Size          Size
	Weight        Weight
	Italic        bool
	Underline     bool
	Strikethrough bool
	Monospace     bool
	Blink         bool

	Foreground Color
	Background Color
	// Hover is the background applied while a pointer rests on the node.
	Hover Color

	Border  Border
	Padding Spacing
	Margin  Spacing
	// Gap is the vertical space between children.
	Gap int

	MaxWidth int
	Centered bool
}

// IsZero reports whether s sets nothing.
func (s Style) IsZero() bool { return s == Style{} }
