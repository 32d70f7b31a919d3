// Package fs loads chat messages from files on disk.
package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/chatview"
)

// Load reads the file at path into a message with the given role.
func Load(path string, role chatview.Role) (chatview.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return chatview.Message{}, fmt.Errorf("read %s: %w", path, err)
	}
	msg := chatview.Message{Content: string(data), Role: role}
	if err := msg.Validate(); err != nil {
		return chatview.Message{}, fmt.Errorf("%s: %w", path, err)
	}
	return msg, nil
}

// Read reads all of r into a message with the given role.
func Read(r io.Reader, role chatview.Role) (chatview.Message, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return chatview.Message{}, fmt.Errorf("read: %w", err)
	}
	msg := chatview.Message{Content: string(data), Role: role}
	if err := msg.Validate(); err != nil {
		return chatview.Message{}, err
	}
	return msg, nil
}
