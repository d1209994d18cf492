package hooks

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHooks(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	f, err := Load(dir)
	require.NoError(t, err)
	assert.Nil(t, f)

	writeHooks(t, dir, `version: 1
hooks:
  post_commit:
    command: echo {{title}}
    timeout: 5
    env:
      CHANNEL: releases
`)
	f, err = Load(dir)
	require.NoError(t, err)
	require.NotNil(t, f.Hooks.PostCommit)
	assert.Equal(t, 1, f.Version)
	assert.Equal(t, "echo {{title}}", f.Hooks.PostCommit.Command)
	assert.Equal(t, 5*time.Second, f.Hooks.PostCommit.timeout())
	assert.Equal(t, map[string]string{"CHANNEL": "releases"}, f.Hooks.PostCommit.Env)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	writeHooks(t, dir, "hooks: [\n")
	_, err := Load(dir)
	assert.Error(t, err)

	writeHooks(t, dir, "hooks:\n  post_commit:\n    timeout: 3\n")
	_, err = Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command")
}

func TestHook_DefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, (&Hook{}).timeout())
	assert.Equal(t, 2*time.Second, (&Hook{Timeout: 2}).timeout())
}

func TestRun(t *testing.T) {
	vars := Variables{Title: "Fix crash", ID: "abc"}

	tests := []struct {
		name    string
		hook    Hook
		ok      bool
		stdout  string
		summary string
	}{
		{"expands variables", Hook{Command: "echo {{title}} {{id}}"}, true, "Fix crash abc\n", "Fix crash abc"},
		{"exports environment", Hook{Command: `echo "$REI_TITLE/$REI_COMMIT_ID"`}, true, "Fix crash/abc\n", "Fix crash/abc"},
		{"extra environment", Hook{Command: `echo "$CHANNEL"`, Env: map[string]string{"CHANNEL": "releases"}}, true, "releases\n", "releases"},
		{"silent success", Hook{Command: "true"}, true, "", "hook ok"},
		{"failure", Hook{Command: "echo partial; echo broken >&2; exit 3"}, false, "partial\n", "hook failed (exit 3): broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Run(context.Background(), &tt.hook, t.TempDir(), vars)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, tt.ok, res.OK())
			assert.Equal(t, tt.stdout, res.Stdout)
			assert.Equal(t, tt.summary, res.Summary())
		})
	}
}

func TestRun_QuotesValues(t *testing.T) {
	res, err := Run(context.Background(), &Hook{Command: "printf %s {{title}}"}, t.TempDir(),
		Variables{Title: "it's; rm -rf nothing"})
	require.NoError(t, err)
	assert.Equal(t, "it's; rm -rf nothing", res.Stdout)
}

func TestRun_WorkDir(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(context.Background(), &Hook{Command: "touch ran"}, dir, Variables{})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "ran"))
}

func TestRun_NoHook(t *testing.T) {
	res, err := Run(context.Background(), nil, "", Variables{})
	require.NoError(t, err)
	assert.Nil(t, res)

	res, err = Run(context.Background(), &Hook{Command: "  "}, "", Variables{})
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestRun_Timeout(t *testing.T) {
	res, err := Run(context.Background(), &Hook{Command: "sleep 5", Timeout: 1}, t.TempDir(), Variables{})
	require.NoError(t, err)
	assert.True(t, res.TimedOut)
	assert.False(t, res.OK())
	assert.Equal(t, "hook timed out after 1s", res.Summary())
}

func TestRun_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, &Hook{Command: "sleep 5"}, t.TempDir(), Variables{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummary_FailureWithoutStderr(t *testing.T) {
	r := &Result{ExitCode: 2, Stdout: "ignored"}
	assert.Equal(t, "hook failed (exit 2)", r.Summary())
}
