package composer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otechdo/rei/internal/form"
	"github.com/otechdo/rei/internal/git"
	"github.com/otechdo/rei/internal/hooks"
	"github.com/otechdo/rei/internal/template"
)

// fakeDispatcher records messages and fails with err when set.
type fakeDispatcher struct {
	messages []string
	err      error
}

func (d *fakeDispatcher) Dispatch(_ context.Context, message string) error {
	d.messages = append(d.messages, message)
	return d.err
}

func fixedID() string { return "id-1" }

func newComposer(d Dispatcher, opts ...Option) (*Composer, *form.State) {
	state := form.New(form.DefaultSchema())
	opts = append([]Option{WithIDGenerator(fixedID)}, opts...)
	return New(state, template.NewFixed(template.DefaultTemplate), d, opts...), state
}

func TestSubmit_SuccessResetsForm(t *testing.T) {
	d := &fakeDispatcher{}
	c, state := newComposer(d)

	require.NoError(t, state.SetText(0, 0, "Fix crash"))
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = strings.Repeat("x", 25)
	}
	require.NoError(t, state.SetText(0, 1, strings.Join(lines, "\n")))
	assert.Equal(t, form.Good, state.Pages()[0].Fields[1].Quality())
	state.Apply(form.NextPage)

	res := c.Submit(context.Background())
	require.NoError(t, res.Err)
	assert.True(t, res.OK())
	assert.Equal(t, "id-1", res.ID)
	assert.Equal(t, "Fix crash", res.Title)

	require.Len(t, d.messages, 1)
	assert.True(t, strings.HasPrefix(d.messages[0], "# Fix crash\n"))
	assert.Contains(t, d.messages[0], strings.Repeat("x", 25))
	assert.Equal(t, d.messages[0], res.Message)

	assert.True(t, state.IsEmpty())
	page, field := state.Cursor()
	assert.Zero(t, page)
	assert.Zero(t, field)
}

func TestSubmit_FailurePreservesForm(t *testing.T) {
	d := &fakeDispatcher{err: &git.CommitError{ExitCode: 1, Stderr: "nothing to commit"}}
	c, state := newComposer(d)

	require.NoError(t, state.SetText(2, 3, "low"))
	state.Apply(form.NextPage)
	state.Apply(form.NextField)
	before := state.Snapshot()
	page, field := state.Cursor()

	res := c.Submit(context.Background())
	require.Error(t, res.Err)
	assert.False(t, IsFatal(res.Err))

	var commitErr *git.CommitError
	assert.True(t, errors.As(res.Err, &commitErr))
	assert.Equal(t, before, state.Snapshot())
	p, f := state.Cursor()
	assert.Equal(t, page, p)
	assert.Equal(t, field, f)
}

func TestSubmit_FatalError(t *testing.T) {
	d := &fakeDispatcher{err: fmt.Errorf("%w: exec: not found", git.ErrGitUnavailable)}
	c, state := newComposer(d)
	require.NoError(t, state.SetText(0, 0, "x"))

	res := c.Submit(context.Background())
	require.Error(t, res.Err)
	assert.True(t, IsFatal(res.Err))
	assert.False(t, state.IsEmpty())
}

func TestSubmit_RenderErrorSkipsDispatch(t *testing.T) {
	d := &fakeDispatcher{}
	state := form.New(form.DefaultSchema())
	require.NoError(t, state.SetText(0, 0, "keep me"))
	c := New(state, template.NewDocument(filepath.Join(t.TempDir(), "none"), "", ""), d)

	res := c.Submit(context.Background())

	var renderErr *template.RenderError
	require.True(t, errors.As(res.Err, &renderErr))
	assert.False(t, IsFatal(res.Err))
	assert.Empty(t, d.messages)
	assert.Equal(t, "keep me", state.Pages()[0].Fields[0].Text())
}

func TestPrepare_TitleFallsBackToMessage(t *testing.T) {
	state := form.New(form.Schema{Pages: []form.PageSpec{{
		Title: "Only",
		Fields: []form.FieldSpec{
			{Name: "summary", Label: "Summary"},
			{Name: "a", Label: "A"},
			{Name: "b", Label: "B"},
			{Name: "c", Label: "C"},
		},
	}}})
	require.NoError(t, state.SetText(0, 0, "Short summary"))
	c := New(state, template.NewFixed("## %summary%\n"), &fakeDispatcher{}, WithIDGenerator(fixedID))

	sub, err := c.Prepare()
	require.NoError(t, err)
	assert.Equal(t, "Short summary", sub.Title)
	assert.Equal(t, "## Short summary\n", sub.Message)
	assert.False(t, state.IsEmpty())
}

func TestPrepare_GeneratesIDs(t *testing.T) {
	c := New(form.New(form.DefaultSchema()), template.NewFixed(template.DefaultTemplate), &fakeDispatcher{})

	a, err := c.Prepare()
	require.NoError(t, err)
	b, err := c.Prepare()
	require.NoError(t, err)
	assert.Len(t, a.ID, 36)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestExecute_RunsPostCommitHook(t *testing.T) {
	dir := t.TempDir()
	hook := &hooks.Hook{Command: "echo done {{title}} > hook.out; echo ran"}
	c, state := newComposer(&fakeDispatcher{}, WithPostCommitHook(hook, dir))
	require.NoError(t, state.SetText(0, 0, "Fix crash"))

	res := c.Submit(context.Background())
	require.NoError(t, res.Err)
	require.NotNil(t, res.Hook)
	assert.True(t, res.Hook.OK())
	assert.Equal(t, "ran", res.Hook.Summary())

	out, err := os.ReadFile(filepath.Join(dir, "hook.out"))
	require.NoError(t, err)
	assert.Equal(t, "done Fix crash\n", string(out))
}

func TestExecute_HookSkippedOnFailure(t *testing.T) {
	dir := t.TempDir()
	hook := &hooks.Hook{Command: "touch hook.out"}
	c, _ := newComposer(&fakeDispatcher{err: errors.New("refused")}, WithPostCommitHook(hook, dir))

	res := c.Submit(context.Background())
	require.Error(t, res.Err)
	assert.Nil(t, res.Hook)
	assert.NoFileExists(t, filepath.Join(dir, "hook.out"))
}

func TestComplete(t *testing.T) {
	c, state := newComposer(&fakeDispatcher{})
	require.NoError(t, state.SetText(0, 0, "x"))

	c.Complete(Result{Err: errors.New("no")})
	assert.False(t, state.IsEmpty())

	c.Complete(Result{})
	assert.True(t, state.IsEmpty())
}
