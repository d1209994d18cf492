package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SanitizePaste cleans up pasted content: escape sequences and control
// characters other than tab and newline are dropped, CRLF becomes LF and
// trailing whitespace is trimmed.
func SanitizePaste(content string) string {
	content = ansi.Strip(content)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r < 32 || r == 127:
			return -1
		default:
			return r
		}
	}, content)
	return strings.TrimRight(content, " \t\n")
}
