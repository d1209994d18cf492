package tui

import uv "github.com/charmbracelet/ultraviolet"

// Layout dimensions
const (
	// FooterHeight is the height of the footer in rows
	FooterHeight = 1
	// HintsHeight is the height of the key hint bar in rows
	HintsHeight = 1
	// FrameMarginX and FrameMarginY separate the field grid from the page frame.
	FrameMarginX = 4
	FrameMarginY = 2
	// ColumnGap is the space between the two field columns.
	ColumnGap = 2
)

// Layout defines the rectangular regions for all UI components
type Layout struct {
	Area   uv.Rectangle
	Frame  uv.Rectangle
	Fields [4]uv.Rectangle // indexed by field position on the page
	Hints  uv.Rectangle
	Footer uv.Rectangle
}

// CalculateLayout computes the layout rectangles based on terminal
// dimensions. Fields 0 and 2 form the left column, 1 and 3 the right one.
func CalculateLayout(width, height int, hints bool) Layout {
	area := uv.Rect(0, 0, max(width, 0), max(height, 0))

	bottom := FooterHeight
	if hints {
		bottom += HintsHeight
	}
	bottom = min(bottom, area.Dy())

	frame, rest := uv.SplitVertical(area, uv.Fixed(area.Dy()-bottom))
	var hintsRect, footerRect uv.Rectangle
	if hints {
		hintsRect, footerRect = uv.SplitVertical(rest, uv.Fixed(min(HintsHeight, rest.Dy())))
	} else {
		footerRect = rest
	}

	inner := inset(frame, FrameMarginX, FrameMarginY)
	colWidth := max((inner.Dx()-ColumnGap)/2, 0)
	topHeight := inner.Dy() / 2

	left := uv.Rect(inner.Min.X, inner.Min.Y, colWidth, inner.Dy())
	right := uv.Rect(min(left.Max.X+ColumnGap, inner.Max.X), inner.Min.Y, max(inner.Max.X-left.Max.X-ColumnGap, 0), inner.Dy())

	var fields [4]uv.Rectangle
	fields[0], fields[2] = uv.SplitVertical(left, uv.Fixed(topHeight))
	fields[1], fields[3] = uv.SplitVertical(right, uv.Fixed(topHeight))

	return Layout{
		Area:   area,
		Frame:  frame,
		Fields: fields,
		Hints:  hintsRect,
		Footer: footerRect,
	}
}

// inset shrinks r by dx columns and dy rows on each side.
func inset(r uv.Rectangle, dx, dy int) uv.Rectangle {
	w := max(r.Dx()-2*dx, 0)
	h := max(r.Dy()-2*dy, 0)
	return uv.Rect(r.Min.X+min(dx, r.Dx()/2), r.Min.Y+min(dy, r.Dy()/2), w, h)
}
