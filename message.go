package chatview

// Message is the input to a presentation pass: the raw content string,
// the sender role and whether the content is still being generated.
type Message struct {
	Content   string
	Role      Role
	Streaming bool
}

// EffectiveRole returns the message role, defaulting to RoleAssistant.
func (m Message) EffectiveRole() Role {
	if m.Role == "" {
		return RoleAssistant
	}
	return m.Role
}
