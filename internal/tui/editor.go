package tui

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/editor"
)

// openEditor writes content to a temporary file, suspends the program and
// opens it in $EDITOR. The edited text comes back as an EditorDoneMsg.
func openEditor(page, field int, content string) tea.Cmd {
	tmpfile, err := os.CreateTemp("", "rei-field-*.md")
	if err != nil {
		return editorFailed(page, field, err)
	}
	path := tmpfile.Name()

	if _, err := tmpfile.WriteString(content); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(path)
		return editorFailed(page, field, err)
	}
	if err := tmpfile.Close(); err != nil {
		_ = os.Remove(path)
		return editorFailed(page, field, err)
	}

	cmd, err := editor.Command("rei", path)
	if err != nil {
		_ = os.Remove(path)
		return editorFailed(page, field, err)
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		defer func() { _ = os.Remove(path) }()
		if err != nil {
			return EditorDoneMsg{Page: page, Field: field, Err: fmt.Errorf("editor: %w", err)}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return EditorDoneMsg{Page: page, Field: field, Err: err}
		}
		return EditorDoneMsg{
			Page:    page,
			Field:   field,
			Content: strings.TrimRight(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"),
		}
	})
}

func editorFailed(page, field int, err error) tea.Cmd {
	return func() tea.Msg {
		return EditorDoneMsg{Page: page, Field: field, Err: err}
	}
}
