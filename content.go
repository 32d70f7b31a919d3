package chatview

import (
	"regexp"
	"strings"
	"unicode"
)

// ImageAlt is the alternate text of an image message.
const ImageAlt = "Message content"

// ContentKind says how a message body is drawn.
type ContentKind int

const (
	ContentMarkdown ContentKind = iota
	ContentImage
)

func (k ContentKind) String() string {
	switch k {
	case ContentImage:
		return "image"
	default:
		return "markdown"
	}
}

// imageURLPattern matches a bare http(s) URL ending in an image extension.
// The path class excludes every character a browser regexp treats as \s,
// which is wider than RE2's ASCII-only \s.
var imageURLPattern = regexp.MustCompile(`(?i)^https?://[^\s\v\p{Z}\x{FEFF}]+\.(?:jpg|jpeg|png|gif|webp|svg)$`)

// IsImageURL reports whether content, once trimmed, is a single image URL.
// Anything after the extension, including a query string, disqualifies it.
func IsImageURL(content string) bool {
	return imageURLPattern.MatchString(strings.TrimFunc(content, isTrimmable))
}

// isTrimmable matches the characters a browser strips when trimming,
// which adds the byte order mark to Unicode white space.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Classify decides whether content is drawn as an image or as markdown.
func Classify(content string) ContentKind {
	if IsImageURL(content) {
		return ContentImage
	}
	return ContentMarkdown
}
