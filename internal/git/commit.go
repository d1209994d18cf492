package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/otechdo/rei/internal/logger"
)

// ErrGitUnavailable means the git executable could not be started. The
// session cannot continue without it.
var ErrGitUnavailable = errors.New("git executable not available")

// maxStderr bounds the diagnostic output kept from a failed commit.
const maxStderr = 4096

// CommitError reports a commit that git ran but refused, for example when
// nothing is staged. The form content is kept so the user can retry.
type CommitError struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git commit exited with status %d: %s", e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("git commit exited with status %d", e.ExitCode)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// Committer records commits in the repository at Dir.
type Committer struct {
	Binary string
	Dir    string
}

// NewCommitter returns a committer using binary, or "git" when empty.
func NewCommitter(binary, dir string) *Committer {
	if binary == "" {
		binary = "git"
	}
	return &Committer{Binary: binary, Dir: dir}
}

// Check reports ErrGitUnavailable when the binary cannot be found.
func (c *Committer) Check() error {
	if _, err := exec.LookPath(c.Binary); err != nil {
		return fmt.Errorf("%w: %v", ErrGitUnavailable, err)
	}
	return nil
}

// Dispatch runs "git commit -m message" and waits for it to finish. The
// child's stdout is discarded; its stderr is kept for the error.
func (c *Committer) Dispatch(ctx context.Context, message string) error {
	cmd := exec.CommandContext(ctx, c.Binary, "commit", "-m", message)
	cmd.Dir = c.Dir
	cmd.Stdout = io.Discard
	stderr := &limitedBuffer{max: maxStderr}
	cmd.Stderr = stderr

	logger.Debug("Running %s commit in %s (%d bytes)", c.Binary, c.Dir, len(message))

	err := cmd.Run()
	if err == nil {
		logger.Info("Commit recorded")
		return nil
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logger.Warn("git commit failed: %v", err)
		return &CommitError{
			ExitCode: exitErr.ExitCode(),
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
	}

	logger.Error("Failed to start %s: %v", c.Binary, err)
	return fmt.Errorf("%w: %v", ErrGitUnavailable, err)
}

// limitedBuffer keeps the first max bytes written to it.
type limitedBuffer struct {
	buf bytes.Buffer
	max int
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	if room := b.max - b.buf.Len(); room > 0 {
		if len(p) > room {
			b.buf.Write(p[:room])
		} else {
			b.buf.Write(p)
		}
	}
	return len(p), nil
}

func (b *limitedBuffer) String() string {
	return b.buf.String()
}
