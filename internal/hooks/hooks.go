// Package hooks runs user commands configured in .rei.hooks.yml after a
// commit has been recorded.
package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/otechdo/rei/internal/logger"
)

// ConfigFileName is the name of the hooks configuration file.
const ConfigFileName = ".rei.hooks.yml"

// Load reads the hooks file from workDir. A missing file is not an error:
// it returns nil, nil.
func Load(workDir string) (*File, error) {
	path := filepath.Join(workDir, ConfigFileName)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug("No hooks file at %s", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read hooks file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if h := f.Hooks.PostCommit; h != nil && strings.TrimSpace(h.Command) == "" {
		return nil, fmt.Errorf("%s: post_commit has no command", path)
	}

	logger.Debug("Loaded hooks from %s (version %d)", path, f.Version)
	return &f, nil
}

// Result describes one hook run.
type Result struct {
	Command  string
	Stdout   string
	Stderr   string
	ExitCode int // -1 when the shell could not be started
	TimedOut bool
	Duration time.Duration
}

// OK reports whether the command exited with status 0 in time.
func (r *Result) OK() bool {
	return !r.TimedOut && r.ExitCode == 0
}

// Summary returns one line describing the run: the first line of output on
// success, the failure otherwise.
func (r *Result) Summary() string {
	switch {
	case r.TimedOut:
		return fmt.Sprintf("hook timed out after %s", r.Duration.Round(time.Second))
	case r.ExitCode != 0:
		if line := firstLine(r.Stderr); line != "" {
			return fmt.Sprintf("hook failed (exit %d): %s", r.ExitCode, line)
		}
		return fmt.Sprintf("hook failed (exit %d)", r.ExitCode)
	}
	if line := firstLine(r.Stdout); line != "" {
		return line
	}
	return "hook ok"
}

// Run executes hook in workDir. {{title}} and {{id}} in the command are
// replaced with shell-quoted values, which are also exported as REI_TITLE
// and REI_COMMIT_ID.
//
// A failing or timed out command is reported in the Result, not as an
// error. Only cancellation of ctx is returned as an error.
func Run(ctx context.Context, hook *Hook, workDir string, vars Variables) (*Result, error) {
	if hook == nil || strings.TrimSpace(hook.Command) == "" {
		return nil, nil
	}

	res := &Result{Command: expand(hook.Command, vars)}
	timeout := hook.timeout()

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, "sh", "-c", res.Command)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(), "REI_TITLE="+vars.Title, "REI_COMMIT_ID="+vars.ID)
	for k, v := range hook.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("Running hook: %s", res.Command)
	start := time.Now()
	err := cmd.Run()
	res.Duration = time.Since(start)
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var exitErr *exec.ExitError
	switch {
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		res.TimedOut = true
		res.ExitCode = -1
		res.Duration = timeout
		logger.Warn("Hook timed out after %s: %s", timeout, res.Command)
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		logger.Warn("Hook exited with status %d: %s", res.ExitCode, res.Command)
	case err != nil:
		res.ExitCode = -1
		res.Stderr += err.Error()
		logger.Warn("Hook could not start: %v", err)
	default:
		logger.Debug("Hook finished in %s", res.Duration)
	}
	return res, nil
}

func expand(command string, vars Variables) string {
	return strings.NewReplacer(
		"{{title}}", shellQuote(vars.Title),
		"{{id}}", shellQuote(vars.ID),
	).Replace(command)
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
