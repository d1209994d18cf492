package theme

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Blend mixes two hex colours in RGB space. t is clamped to [0, 1]. An
// unparsable colour is returned unchanged on its side of the blend.
func Blend(from, to string, t float64) string {
	t = min(max(t, 0), 1)
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	switch {
	case errA != nil && errB != nil:
		return from
	case errA != nil:
		return to
	case errB != nil:
		return from
	}
	return a.BlendRgb(b, t).Clamped().Hex()
}

// Gradient renders text in bold with each rune coloured along the gradient
// from -> to.
func Gradient(text, from, to string) string {
	runes := []rune(text)
	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(Blend(from, to, t))).
			Bold(true).
			Render(string(r)))
	}
	return b.String()
}
