package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestMarkdownRenderer_NarrowWidthIsPlain(t *testing.T) {
	var m markdownRenderer
	assert.Equal(t, "# Fix crash", m.render("# Fix crash", 5))
	assert.Nil(t, m.term)
}

func TestMarkdownRenderer_Render(t *testing.T) {
	var m markdownRenderer
	out := ansi.Strip(m.render("# Fix crash\n\n- alice\n- bob", 60))

	assert.Contains(t, out, "Fix crash")
	assert.Contains(t, out, "alice")
	assert.NotContains(t, out, "- alice", "list markers are rendered as bullets")
	assert.Equal(t, 60, m.width)

	first := m.term
	m.render("again", 60)
	assert.Same(t, first, m.term)

	m.render("again", 300)
	assert.Equal(t, maxMarkdownWidth, m.width)
}
