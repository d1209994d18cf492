package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/otechdo/rei/internal/form"
)

// KeyMap binds keys to form commands and UI actions.
type KeyMap struct {
	Cancel    key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding

	Start   key.Binding
	Preview key.Binding
	Editor  key.Binding
	Hints   key.Binding

	// Markdown toggles glamour rendering in the preview.
	Markdown key.Binding
}

// DefaultKeyMap returns the standard bindings. Page Up moves forward and
// Page Down moves back.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "prev page"),
		),
		NextField: key.NewBinding(
			key.WithKeys("f7"),
			key.WithHelp("f7", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("f5", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("f6"),
			key.WithHelp("f6", "commit"),
		),
		Start: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "start"),
		),
		Preview: key.NewBinding(
			key.WithKeys("f8"),
			key.WithHelp("f8", "preview"),
		),
		Editor: key.NewBinding(
			key.WithKeys("f4"),
			key.WithHelp("f4", "$EDITOR"),
		),
		Hints: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "hints"),
		),
		Markdown: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "markdown"),
		),
	}
}

// Command maps a key press to a form command. Keys that are not bound to a
// form command map to form.Edit.
func (k KeyMap) Command(msg tea.KeyPressMsg) form.Command {
	switch {
	case key.Matches(msg, k.Cancel):
		return form.Cancel
	case key.Matches(msg, k.NextPage):
		return form.NextPage
	case key.Matches(msg, k.PrevPage):
		return form.PrevPage
	case key.Matches(msg, k.NextField):
		return form.NextField
	case key.Matches(msg, k.PrevField):
		return form.PrevField
	case key.Matches(msg, k.Submit):
		return form.Submit
	default:
		return form.Edit
	}
}

// FormHelp returns the bindings shown in the hint bar while editing.
func (k KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.NextPage, k.PrevPage, k.Submit, k.Preview, k.Editor, k.Hints, k.Cancel}
}
