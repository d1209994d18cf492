package tui

import (
	"strings"

	"charm.land/glamour/v2"

	"github.com/otechdo/rei/internal/logger"
)

// Preview wrap bounds.
const (
	minMarkdownWidth = 10
	maxMarkdownWidth = 120
)

// markdownRenderer renders commit messages for the preview. The glamour
// renderer is rebuilt only when the wrap width changes.
type markdownRenderer struct {
	width int
	term  *glamour.TermRenderer
}

// render returns content rendered as markdown wrapped to width. Narrow
// widths and glamour failures return content unchanged.
func (m *markdownRenderer) render(content string, width int) string {
	width = min(width, maxMarkdownWidth)
	if width < minMarkdownWidth {
		return content
	}

	if m.term == nil || m.width != width {
		term, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			logger.Warn("Markdown renderer unavailable: %v", err)
			return content
		}
		m.term, m.width = term, width
	}

	out, err := m.term.Render(content)
	if err != nil {
		logger.Warn("Markdown rendering failed: %v", err)
		return content
	}
	return strings.Trim(out, "\n")
}
