package bubbletea

import "github.com/fwojciec/chatview"

// RenderContent exports renderContent for testing.
func RenderContent(m Model) string {
	return m.renderContent()
}

// Focus returns the focused message index and code block ID, or -1, -1.
func Focus(m Model) (block, id int) {
	return m.focus.block, m.focus.id
}

// CodeBlocks exposes the copyable instances owned by a view.
func CodeBlocks(v *MessageView) []*chatview.CopyableCodeBlock {
	return v.codes
}
