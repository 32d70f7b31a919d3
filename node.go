package chatview

// Tree is the visual tree produced for one message.
type Tree struct {
	Role  Role
	Kind  ContentKind
	Nodes []Node
}

// Node is a sealed interface representing a visual node.
// The unexported marker method prevents external implementations.
type Node interface {
	node()
}

// ImageView is a message that is a single image URL.
// Style positions the view; Frame draws the box around the image.
type ImageView struct {
	Source string
	Alt    string
	Style  Style
	Frame  Style
}

func (ImageView) node() {}

// Paragraph is a block of inline content.
type Paragraph struct {
	Children []Node
	Style    Style
}

func (Paragraph) node() {}

// Heading is a section heading, Level 1 through 6.
type Heading struct {
	Level    int
	Children []Node
	Style    Style
}

func (Heading) node() {}

// List is a bulleted or numbered list. Start is the first number of an
// ordered list.
type List struct {
	Ordered bool
	Start   int
	Items   []Node
	Style   Style
}

func (List) node() {}

// ListItem is one entry of a List.
type ListItem struct {
	Children []Node
	Style    Style
}

func (ListItem) node() {}

// Checkbox is a task list marker.
type Checkbox struct {
	Checked bool
	Style   Style
}

func (Checkbox) node() {}

// Blockquote is quoted block content.
type Blockquote struct {
	Children []Node
	Style    Style
}

func (Blockquote) node() {}

// Link is a hyperlink. External links open outside the hosting view.
type Link struct {
	URL      string
	Title    string
	External bool
	Children []Node
	Style    Style
}

func (Link) node() {}

// Emphasis is italic inline content.
type Emphasis struct {
	Children []Node
	Style    Style
}

func (Emphasis) node() {}

// Strong is bold inline content.
type Strong struct {
	Children []Node
	Style    Style
}

func (Strong) node() {}

// Strikethrough is struck-out inline content.
type Strikethrough struct {
	Children []Node
	Style    Style
}

func (Strikethrough) node() {}

// InlineCode is a code span drawn as a badge.
type InlineCode struct {
	Text  string
	Style Style
}

func (InlineCode) node() {}

// CodeBlock is a fenced or indented code block with a copy affordance.
// ID is the block's position among the code blocks of its tree.
type CodeBlock struct {
	ID       int
	Language string
	Label    string
	Code     string
	Tokens   []Token
	Button   CopyButton
	Style    CodeChrome
}

func (CodeBlock) node() {}

// Alignment is the horizontal alignment of a table column.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Table is a GFM table.
type Table struct {
	Alignments []Alignment
	Head       TableSection
	Body       TableSection
	Style      Style
}

func (Table) node() {}

// TableSection is the head or the body of a table.
type TableSection struct {
	Header bool
	Rows   []TableRow
	Style  Style
}

func (TableSection) node() {}

// TableRow is one row of a table section.
type TableRow struct {
	Cells []TableCell
	Style Style
}

func (TableRow) node() {}

// TableCell is one cell of a table row.
type TableCell struct {
	Header   bool
	Align    Alignment
	Children []Node
	Style    Style
}

func (TableCell) node() {}

// Rule is a thematic break.
type Rule struct {
	Style Style
}

func (Rule) node() {}

// Break is a hard line break.
type Break struct{}

func (Break) node() {}

// Text is literal text.
type Text struct {
	Value string
}

func (Text) node() {}

// Image is an image embedded in markdown.
type Image struct {
	Source string
	Alt    string
	Title  string
	Style  Style
}

func (Image) node() {}

// HTML is raw HTML from the source, shown literally.
type HTML struct {
	Raw   string
	Style Style
}

func (HTML) node() {}

// StreamingCursor marks content that is still being generated.
type StreamingCursor struct {
	Style Style
}

func (StreamingCursor) node() {}

// Interface compliance checks.
var (
	_ Node = ImageView{}
	_ Node = Paragraph{}
	_ Node = Heading{}
	_ Node = List{}
	_ Node = ListItem{}
	_ Node = Checkbox{}
	_ Node = Blockquote{}
	_ Node = Link{}
	_ Node = Emphasis{}
	_ Node = Strong{}
	_ Node = Strikethrough{}
	_ Node = InlineCode{}
	_ Node = CodeBlock{}
	_ Node = Table{}
	_ Node = TableSection{}
	_ Node = TableRow{}
	_ Node = TableCell{}
	_ Node = Rule{}
	_ Node = Break{}
	_ Node = Text{}
	_ Node = Image{}
	_ Node = HTML{}
	_ Node = StreamingCursor{}
)
