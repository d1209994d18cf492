package tui

import (
	"github.com/otechdo/rei/internal/composer"
	"github.com/otechdo/rei/internal/git"
)

// CommitDoneMsg carries the outcome of a dispatched submission.
type CommitDoneMsg struct {
	Result composer.Result
}

// GitInfoMsg carries refreshed repository state for the footer.
type GitInfoMsg struct {
	Info *git.Info
}

// EditorDoneMsg is sent when the external editor returns. Page and Field
// identify the field that was being edited.
type EditorDoneMsg struct {
	Page    int
	Field   int
	Content string
	Err     error
}
