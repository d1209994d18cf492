package tui

import (
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// DrawText renders plain or pre-styled text at a position
func DrawText(scr uv.Screen, area uv.Rectangle, text string) {
	uv.NewStyledString(text).Draw(scr, area)
}

// DrawStyled renders lipgloss-styled content sized to the area
func DrawStyled(scr uv.Screen, area uv.Rectangle, style lipgloss.Style, text string) {
	content := style.Width(area.Dx()).Height(area.Dy()).Render(text)
	uv.NewStyledString(content).Draw(scr, area)
}

// DrawBox renders a bordered box filling area with body inside it. The
// style must carry a border; its size is derived from the area.
func DrawBox(scr uv.Screen, area uv.Rectangle, style lipgloss.Style, body string) {
	if area.Dx() < 2 || area.Dy() < 2 {
		return
	}
	w := area.Dx() - style.GetHorizontalBorderSize()
	h := area.Dy() - style.GetVerticalBorderSize()
	content := style.Width(w).Height(h).Render(body)
	uv.NewStyledString(content).Draw(scr, area)
}

// Alignment of a label drawn over a box border.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

// DrawBorderLabel writes label over row y of area, either one cell after
// the left corner or centered. Labels wider than the area are clipped.
func DrawBorderLabel(scr uv.Screen, area uv.Rectangle, y int, label string, align Alignment) {
	if label == "" || area.Dx() < 3 {
		return
	}
	width := lipgloss.Width(label)
	x := area.Min.X + 1
	if align == AlignCenter {
		x = area.Min.X + max((area.Dx()-width)/2, 1)
	}
	row := uv.Rect(x, y, max(area.Max.X-1-x, 0), 1)
	uv.NewStyledString(label).Draw(scr, row)
}

// DrawCentered renders a block of text centered in area.
func DrawCentered(scr uv.Screen, area uv.Rectangle, content string) {
	w := lipgloss.Width(content)
	h := lipgloss.Height(content)
	x := area.Min.X + max((area.Dx()-w)/2, 0)
	y := area.Min.Y + max((area.Dy()-h)/2, 0)
	uv.NewStyledString(content).Draw(scr, uv.Rect(x, y, min(w, area.Dx()), min(h, area.Dy())))
}
