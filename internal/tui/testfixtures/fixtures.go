package testfixtures

import (
	"strings"

	"github.com/otechdo/rei/internal/git"
)

// Fixed test values for consistent assertions
const (
	FixedTitle   = "Fix crash on empty config"
	FixedBranch  = "main"
	FixedGitHash = "abc1234"
)

// CleanRepo returns repository info for a clean branch in sync with its
// upstream.
func CleanRepo() *git.Info {
	return &git.Info{Branch: FixedBranch, Hash: FixedGitHash}
}

// DirtyRepo returns repository info with local changes and diverged history.
func DirtyRepo() *git.Info {
	return &git.Info{Branch: FixedBranch, Hash: FixedGitHash, Dirty: true, Ahead: 2, Behind: 1}
}

// Answers returns a partial set of answers for the default schema.
func Answers() map[string]string {
	return map[string]string{
		"title":         FixedTitle,
		"description":   "Loading an empty rei.yml dereferenced a nil map.",
		"system_before": "rei exited with a panic",
		"system_after":  "rei falls back to the defaults",
		"authors":       "alice\nbob",
	}
}

// Line returns a line of n characters.
func Line(n int) string {
	return strings.Repeat("x", n)
}

// Lines returns count lines of n characters joined by newlines.
func Lines(count, n int) string {
	lines := make([]string, count)
	for i := range lines {
		lines[i] = Line(n)
	}
	return strings.Join(lines, "\n")
}
