package tui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/otechdo/rei/internal/form"
	"github.com/otechdo/rei/internal/tui/theme"
)

// ErrorTitleSuffix is appended to the title of a field holding an
// over-length line.
const ErrorTitleSuffix = " ( a line is superior to the max lines length )"

// qualityColor returns the border color of an active field.
func qualityColor(q form.Quality) color.Color {
	th := theme.Current()
	switch q {
	case form.Error:
		return lipgloss.Color(th.Error)
	case form.Caution:
		return lipgloss.Color(th.Caution)
	case form.Warning:
		return lipgloss.Color(th.Warning)
	case form.Good:
		return lipgloss.Color(th.Success)
	default:
		return lipgloss.Color(th.FgBright)
	}
}

// inactiveColor is used for fields without focus.
func inactiveColor() color.Color {
	return lipgloss.Color(theme.Current().FgMuted)
}

// fieldTitle returns the label shown on a field border.
func fieldTitle(label string, q form.Quality, active bool) string {
	title := " " + label + " "
	if active && q == form.Error {
		title += ErrorTitleSuffix
	}
	return title
}
