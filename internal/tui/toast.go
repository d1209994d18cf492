package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/otechdo/rei/internal/tui/theme"
)

// ToastDuration is how long a toast stays on screen.
const ToastDuration = 4 * time.Second

// ToastDismissMsg is sent when a toast should be dismissed. Seq identifies
// the toast it was scheduled for.
type ToastDismissMsg struct {
	Seq int
}

// Toast is a minimal notification shown in the bottom-right corner that
// auto-dismisses.
type Toast struct {
	message string
	isError bool
	visible bool
	seq     int
}

// NewToast creates a new Toast component.
func NewToast() *Toast {
	return &Toast{}
}

// Show displays an informational toast.
func (t *Toast) Show(msg string) tea.Cmd {
	return t.show(msg, false)
}

// ShowError displays an error toast.
func (t *Toast) ShowError(msg string) tea.Cmd {
	return t.show(msg, true)
}

func (t *Toast) show(msg string, isError bool) tea.Cmd {
	t.message = msg
	t.isError = isError
	t.visible = true
	t.seq++
	seq := t.seq
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return ToastDismissMsg{Seq: seq}
	})
}

// Update handles messages for the toast component. A dismissal scheduled
// for an older toast is ignored.
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(ToastDismissMsg); ok && m.Seq == t.seq {
		t.visible = false
		t.message = ""
	}
	return nil
}

// Draw renders the toast in the bottom-right corner of area.
func (t *Toast) Draw(scr uv.Screen, area uv.Rectangle) {
	if !t.visible || t.message == "" || area.Dx() < 4 || area.Dy() < 1 {
		return
	}

	s := theme.Current().S()
	style := s.Toast
	if t.isError {
		style = s.ToastError
	}

	content := style.Render(t.message)
	if lipgloss.Width(content) > area.Dx()-2 {
		content = style.Width(area.Dx() - 2).Render(t.message)
	}

	w := lipgloss.Width(content)
	h := lipgloss.Height(content)
	x := max(area.Max.X-w-1, area.Min.X)
	y := max(area.Max.Y-h, area.Min.Y)
	uv.NewStyledString(content).Draw(scr, uv.Rect(x, y, w, h))
}

// IsVisible returns whether the toast is currently visible.
func (t *Toast) IsVisible() bool {
	return t.visible
}

// IsError reports whether the visible toast is an error.
func (t *Toast) IsError() bool {
	return t.visible && t.isError
}

// GetMessage returns the current toast message (empty if not visible).
func (t *Toast) GetMessage() string {
	if !t.visible {
		return ""
	}
	return t.message
}
