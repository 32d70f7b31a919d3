package lipgloss

var Sanitize = sanitize
