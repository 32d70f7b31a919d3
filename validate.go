package chatview

import (
	"fmt"
	"unicode/utf8"
)

// Validate checks that a message can be presented.
// An empty role is accepted and treated as RoleAssistant.
func (m Message) Validate() error {
	switch m.Role {
	case "", RoleUser, RoleAssistant:
	default:
		return fmt.Errorf("unknown role %q: %w", m.Role, ErrValidation)
	}
	if !utf8.ValidString(m.Content) {
		return fmt.Errorf("content is not valid UTF-8: %w", ErrValidation)
	}
	return nil
}

// ParseRole converts a string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleUser, RoleAssistant:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q: %w", s, ErrValidation)
	}
}
