package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/otechdo/rei/internal/tui/theme"
)

// RenderHint renders a single key-description pair.
// Example: RenderHint("enter", "select") -> "enter select"
func RenderHint(key, desc string) string {
	s := theme.Current().S()
	return s.HintKey.Render(key) + " " + s.HintDesc.Render(desc)
}

// RenderHintBar renders a hint bar with multiple key-description pairs.
// Pairs are separated by " . ".
// Example: RenderHintBar("f6", "commit", "esc", "quit")
// Returns: "f6 commit . esc quit"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		parts = append(parts, RenderHint(pairs[i], pairs[i+1]))
	}
	return strings.Join(parts, " "+s.HintSeparator.Render(".")+" ")
}

// RenderBindings renders the help of enabled bindings as a hint bar.
func RenderBindings(bindings ...key.Binding) string {
	pairs := make([]string, 0, len(bindings)*2)
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		pairs = append(pairs, h.Key, h.Desc)
	}
	return RenderHintBar(pairs...)
}
