package lipgloss

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// sanitize makes message text safe to write to a terminal. Escape
// sequences and C0 controls other than tab and newline are removed, CRLF
// becomes LF, and a lone CR overwrites the line from its start the way a
// terminal would draw it.
func sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\t' || r == '\n' || r == '\r' || (r > 0x1F && r != 0x7F) {
			b.WriteRune(r)
		}
	}
	if !strings.ContainsRune(b.String(), '\r') {
		return b.String()
	}
	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = overwrite(line)
	}
	return strings.Join(lines, "\n")
}

func needsSanitize(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 0x20 && c != '\t' && c != '\n') || c == 0x7F {
			return true
		}
	}
	// C1 controls such as CSI (U+009B) arrive as two-byte UTF-8.
	return strings.ContainsAny(s, "\u009b\u009d\u0090\u009e\u009f")
}

// overwrite resolves carriage returns within one line.
func overwrite(line string) string {
	segments := strings.Split(line, "\r")
	buf := []rune(segments[0])
	for _, seg := range segments[1:] {
		for j, r := range []rune(seg) {
			if j < len(buf) {
				buf[j] = r
			} else {
				buf = append(buf, r)
			}
		}
	}
	return string(buf)
}
