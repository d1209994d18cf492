package tui

import (
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderToast(toast *Toast, w, h int) string {
	canvas := uv.NewScreenBuffer(w, h)
	toast.Draw(canvas, canvas.Bounds())
	return ansi.Strip(canvas.Render())
}

func TestToast_ShowDisplaysMessage(t *testing.T) {
	toast := NewToast()

	cmd := toast.Show("test message")
	require.NotNil(t, cmd)
	assert.True(t, toast.IsVisible())
	assert.False(t, toast.IsError())
	assert.Equal(t, "test message", toast.GetMessage())
}

func TestToast_ShowError(t *testing.T) {
	toast := NewToast()
	toast.ShowError("commit failed")
	assert.True(t, toast.IsError())
}

func TestToast_DrawNothingWhenHidden(t *testing.T) {
	assert.NotContains(t, renderToast(NewToast(), 40, 5), "message")
}

func TestToast_DrawRendersMessage(t *testing.T) {
	toast := NewToast()
	toast.Show("committed")
	assert.Contains(t, renderToast(toast, 40, 5), "committed")
}

func TestToast_DismissMsgHidesToast(t *testing.T) {
	toast := NewToast()
	toast.Show("first")

	toast.Update(ToastDismissMsg{Seq: 1})
	assert.False(t, toast.IsVisible())
	assert.Empty(t, toast.GetMessage())
}

func TestToast_StaleDismissIgnored(t *testing.T) {
	toast := NewToast()
	toast.Show("first")
	toast.Show("second")

	toast.Update(ToastDismissMsg{Seq: 1})
	assert.True(t, toast.IsVisible())
	assert.Equal(t, "second", toast.GetMessage())

	toast.Update(ToastDismissMsg{Seq: 2})
	assert.False(t, toast.IsVisible())
}
