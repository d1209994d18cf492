package testfixtures

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Initialize test environment
func init() {
	// Ascii profile keeps rendered output free of color sequences.
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// Drawable is anything that renders itself onto a screen area.
type Drawable interface {
	Draw(scr uv.Screen, area uv.Rectangle)
}

// Render draws d on a canonical sized screen buffer and returns the plain
// text of the result.
func Render(d Drawable) string {
	return RenderSize(d, TestTermWidth, TestTermHeight)
}

// RenderSize is Render with an explicit size.
func RenderSize(d Drawable, width, height int) string {
	canvas := uv.NewScreenBuffer(width, height)
	d.Draw(canvas, canvas.Bounds())
	return ansi.Strip(canvas.Render())
}
