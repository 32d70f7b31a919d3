package chatview

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a message failed validation.
	ErrValidation = errors.New("validation error")

	// ErrParse indicates the markdown engine produced a document that
	// could not be turned into a visual tree.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedNode indicates the markdown engine produced a node kind
	// with no presentation rule.
	ErrUnsupportedNode = errors.New("unsupported node")

	// ErrClipboardUnavailable indicates no clipboard is reachable from the
	// current process.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")

	// ErrClosed indicates an operation on a closed code block.
	ErrClosed = errors.New("code block closed")
)
