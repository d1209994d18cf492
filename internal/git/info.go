// Package git reads repository state for the status footer and records
// commits by running the git executable.
package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Info summarizes the repository the form is committing to.
type Info struct {
	Branch string
	Hash   string // short hash of HEAD, empty before the first commit
	Dirty  bool
	Ahead  int
	Behind int
}

// GetInfo returns the state of the repository containing dir. It returns
// nil, nil when dir is not inside a work tree.
func GetInfo(dir string) (*Info, error) {
	out, err := runGit(dir, "rev-parse", "--is-inside-work-tree")
	if err != nil || out != "true" {
		return nil, nil
	}

	info := &Info{}

	if branch, err := runGit(dir, "symbolic-ref", "--short", "HEAD"); err == nil {
		info.Branch = branch
	} else if hash, err := runGit(dir, "rev-parse", "--short=7", "HEAD"); err == nil {
		// Detached HEAD.
		info.Branch = hash
	}

	if hash, err := runGit(dir, "rev-parse", "--short=7", "HEAD"); err == nil {
		info.Hash = hash
	}

	status, err := runGit(dir, "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("git status: %w", err)
	}
	info.Dirty = status != ""

	// No upstream is not an error.
	if counts, err := runGit(dir, "rev-list", "--left-right", "--count", "HEAD...@{upstream}"); err == nil {
		fields := strings.Fields(counts)
		if len(fields) == 2 {
			info.Ahead, _ = strconv.Atoi(fields[0])
			info.Behind, _ = strconv.Atoi(fields[1])
		}
	}

	return info, nil
}

// String renders the footer form: "main@abc1234*" with ahead/behind counts.
func (i *Info) String() string {
	if i == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(i.Branch)
	if i.Hash != "" && i.Hash != i.Branch {
		b.WriteString("@" + i.Hash)
	}
	if i.Dirty {
		b.WriteString("*")
	}
	if i.Ahead > 0 {
		fmt.Fprintf(&b, " ↑%d", i.Ahead)
	}
	if i.Behind > 0 {
		fmt.Fprintf(&b, " ↓%d", i.Behind)
	}
	return b.String()
}

func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: %s", err, msg)
		}
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
