package json

import (
	"fmt"

	"github.com/fwojciec/chatview"
)

// nodeDTO is the JSON representation of a Node with a type discriminator.
type nodeDTO struct {
	Type       string     `json:"type"`
	Value      *string    `json:"value,omitempty"`
	Level      *int       `json:"level,omitempty"`
	Ordered    *bool      `json:"ordered,omitempty"`
	Start      *int       `json:"start,omitempty"`
	Checked    *bool      `json:"checked,omitempty"`
	URL        *string    `json:"url,omitempty"`
	Title      *string    `json:"title,omitempty"`
	External   *bool      `json:"external,omitempty"`
	Source     *string    `json:"source,omitempty"`
	Alt        *string    `json:"alt,omitempty"`
	ID         *int       `json:"id,omitempty"`
	Language   *string    `json:"language,omitempty"`
	Label      *string    `json:"label,omitempty"`
	Code       *string    `json:"code,omitempty"`
	Tokens     []tokenDTO `json:"tokens,omitempty"`
	Button     *buttonDTO `json:"button,omitempty"`
	Header     *bool      `json:"header,omitempty"`
	Align      string     `json:"align,omitempty"`
	Alignments []string   `json:"alignments,omitempty"`
	Children   []nodeDTO  `json:"children,omitempty"`
	Style      *styleDTO  `json:"style,omitempty"`
	Chrome     *chromeDTO `json:"chrome,omitempty"`
	Frame      *styleDTO  `json:"frame,omitempty"`
}

type tokenDTO struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type buttonDTO struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

func marshalNode(n chatview.Node) (nodeDTO, error) {
	switch v := n.(type) {
	case chatview.Text:
		return nodeDTO{Type: "text", Value: &v.Value}, nil
	case chatview.Break:
		return nodeDTO{Type: "break"}, nil
	case chatview.Paragraph:
		return withChildren(nodeDTO{Type: "paragraph", Style: marshalStyle(v.Style)}, v.Children)
	case chatview.Heading:
		return withChildren(nodeDTO{Type: "heading", Level: &v.Level, Style: marshalStyle(v.Style)}, v.Children)
	case chatview.List:
		dto := nodeDTO{Type: "list", Ordered: &v.Ordered, Style: marshalStyle(v.Style)}
		if v.Ordered {
			dto.Start = &v.Start
		}
		return withChildren(dto, v.Items)
	case chatview.ListItem:
		return withChildren(nodeDTO{Type: "list_item", Style: marshalStyle(v.Style)}, v.Children)
	case chatview.Checkbox:
		return nodeDTO{Type: "checkbox", Checked: &v.Checked, Style: marshalStyle(v.Style)}, nil
	case chatview.Blockquote:
		return withChildren(nodeDTO{Type: "blockquote", Style: marshalStyle(v.Style)}, v.Children)
	case chatview.Link:
		dto := nodeDTO{Type: "link", URL: &v.URL, External: &v.External, Style: marshalStyle(v.Style)}
		if v.Title != "" {
			dto.Title = &v.Title
		}
		return withChildren(dto, v.Children)
	case chatview.Emphasis:
		return withChildren(nodeDTO{Type: "emphasis", Style: marshalStyle(v.Style)}, v.Children)
	case chatview.Strong:
		return withChildren(nodeDTO{Type: "strong", Style: marshalStyle(v.Style)}, v.Children)
	case chatview.Strikethrough:
		return withChildren(nodeDTO{Type: "strikethrough", Style: marshalStyle(v.Style)}, v.Children)
	case chatview.InlineCode:
		return nodeDTO{Type: "inline_code", Value: &v.Text, Style: marshalStyle(v.Style)}, nil
	case chatview.CodeBlock:
		dto := nodeDTO{
			Type:     "code_block",
			ID:       &v.ID,
			Language: &v.Language,
			Label:    &v.Label,
			Code:     &v.Code,
			Button:   &buttonDTO{Label: v.Button.Label, Icon: string(v.Button.Icon)},
			Chrome:   marshalChrome(v.Style),
		}
		for _, tok := range v.Tokens {
			dto.Tokens = append(dto.Tokens, tokenDTO{Kind: tok.Kind.String(), Text: tok.Text})
		}
		return dto, nil
	case chatview.Table:
		dto := nodeDTO{Type: "table", Style: marshalStyle(v.Style)}
		for _, a := range v.Alignments {
			dto.Alignments = append(dto.Alignments, alignment(a))
		}
		if len(dto.Alignments) == 0 {
			dto.Alignments = nil
		}
		return withChildren(dto, []chatview.Node{v.Head, v.Body})
	case chatview.TableSection:
		rows := make([]chatview.Node, len(v.Rows))
		for i, r := range v.Rows {
			rows[i] = r
		}
		return withChildren(nodeDTO{Type: "table_section", Header: &v.Header, Style: marshalStyle(v.Style)}, rows)
	case chatview.TableRow:
		cells := make([]chatview.Node, len(v.Cells))
		for i, c := range v.Cells {
			cells[i] = c
		}
		return withChildren(nodeDTO{Type: "table_row", Style: marshalStyle(v.Style)}, cells)
	case chatview.TableCell:
		dto := nodeDTO{Type: "table_cell", Header: &v.Header, Align: alignment(v.Align), Style: marshalStyle(v.Style)}
		return withChildren(dto, v.Children)
	case chatview.Rule:
		return nodeDTO{Type: "rule", Style: marshalStyle(v.Style)}, nil
	case chatview.Image:
		dto := nodeDTO{Type: "image", Source: &v.Source, Alt: &v.Alt, Style: marshalStyle(v.Style)}
		if v.Title != "" {
			dto.Title = &v.Title
		}
		return dto, nil
	case chatview.ImageView:
		return nodeDTO{
			Type:   "image_view",
			Source: &v.Source,
			Alt:    &v.Alt,
			Style:  marshalStyle(v.Style),
			Frame:  marshalStyle(v.Frame),
		}, nil
	case chatview.HTML:
		return nodeDTO{Type: "html", Value: &v.Raw, Style: marshalStyle(v.Style)}, nil
	case chatview.StreamingCursor:
		return nodeDTO{Type: "streaming_cursor", Style: marshalStyle(v.Style)}, nil
	default:
		return nodeDTO{}, fmt.Errorf("unknown node type: %T", n)
	}
}

func withChildren(dto nodeDTO, children []chatview.Node) (nodeDTO, error) {
	if len(children) == 0 {
		return dto, nil
	}
	nodes, err := marshalNodes(children)
	if err != nil {
		return nodeDTO{}, err
	}
	dto.Children = nodes
	return dto, nil
}

func alignment(a chatview.Alignment) string {
	switch a {
	case chatview.AlignLeft:
		return "left"
	case chatview.AlignCenter:
		return "center"
	case chatview.AlignRight:
		return "right"
	default:
		return ""
	}
}
