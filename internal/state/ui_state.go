// Package state persists UI preferences between sessions.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/otechdo/rei/internal/logger"
)

// FileName is the name of the UI state file inside the data directory.
const FileName = "ui-state.json"

// UIState holds persistent UI preferences that carry across sessions.
type UIState struct {
	Hints   HintsState   `json:"hints"`
	Preview PreviewState `json:"preview"`
}

// HintsState holds the key hint bar visibility preference.
type HintsState struct {
	Visible bool `json:"visible"`
}

// PreviewState holds the message preview preferences.
type PreviewState struct {
	// Markdown renders the preview through glamour instead of plain text.
	Markdown bool `json:"markdown"`
}

// DefaultUIState returns the default UI state.
func DefaultUIState() *UIState {
	return &UIState{
		Hints:   HintsState{Visible: true},
		Preview: PreviewState{Markdown: true},
	}
}

// Load returns the preferences stored in dataDir. Missing or unreadable
// files give the defaults, and keys absent from the file keep their default.
func Load(dataDir string) *UIState {
	ui := DefaultUIState()
	path := filepath.Join(dataDir, FileName)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return ui
	case err != nil:
		logger.Warn("Ignoring UI state %s: %v", path, err)
		return ui
	}

	if err := json.Unmarshal(data, ui); err != nil {
		logger.Warn("Ignoring malformed UI state %s: %v", path, err)
		return DefaultUIState()
	}
	return ui
}

// Save stores ui in dataDir, creating the directory when needed. The file
// is replaced atomically so a crash never leaves it half written.
func Save(dataDir string, ui *UIState) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(ui, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding UI state: %w", err)
	}

	tmp, err := os.CreateTemp(dataDir, FileName+".*")
	if err != nil {
		return fmt.Errorf("creating UI state file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing UI state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing UI state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dataDir, FileName)); err != nil {
		return fmt.Errorf("replacing UI state file: %w", err)
	}
	return nil
}
