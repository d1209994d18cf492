// Package composer ties the form to a renderer and a commit dispatcher. It
// owns the submit cycle: snapshot, render, dispatch, then reset on success
// or keep the content on failure.
package composer

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/otechdo/rei/internal/form"
	"github.com/otechdo/rei/internal/git"
	"github.com/otechdo/rei/internal/hooks"
	"github.com/otechdo/rei/internal/logger"
	"github.com/otechdo/rei/internal/template"
)

// Dispatcher records a rendered message as a commit. Dispatch blocks until
// the commit has been recorded or refused.
type Dispatcher interface {
	Dispatch(ctx context.Context, message string) error
}

// TitleField is the field whose first line names a submission.
const TitleField = "title"

// Submission is a rendered message waiting to be dispatched.
type Submission struct {
	ID      string
	Title   string
	Message string
}

// Result is the outcome of dispatching a submission.
type Result struct {
	Submission
	Err  error
	Hook *hooks.Result // nil when no post commit hook ran
}

// OK reports whether the commit was recorded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Composer runs the submit cycle for one form.
type Composer struct {
	form       *form.State
	renderer   template.Renderer
	dispatcher Dispatcher
	hook       *hooks.Hook
	workDir    string
	newID      func() string
}

// Option configures a Composer.
type Option func(*Composer)

// WithPostCommitHook runs hook in workDir after every recorded commit.
func WithPostCommitHook(hook *hooks.Hook, workDir string) Option {
	return func(c *Composer) {
		c.hook = hook
		c.workDir = workDir
	}
}

// WithIDGenerator replaces the submission id source.
func WithIDGenerator(fn func() string) Option {
	return func(c *Composer) {
		c.newID = fn
	}
}

// New returns a composer for state.
func New(state *form.State, renderer template.Renderer, dispatcher Dispatcher, opts ...Option) *Composer {
	c := &Composer{
		form:       state,
		renderer:   renderer,
		dispatcher: dispatcher,
		newID:      func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Form returns the form being composed.
func (c *Composer) Form() *form.State {
	return c.form
}

// Renderer returns the renderer in use.
func (c *Composer) Renderer() template.Renderer {
	return c.renderer
}

// Render renders the current form content without dispatching it.
func (c *Composer) Render() (string, error) {
	return c.renderer.Render(c.form.Snapshot())
}

// Prepare snapshots and renders the form. The form is not modified. A
// render failure is returned as is, typically a *template.RenderError.
func (c *Composer) Prepare() (Submission, error) {
	ctx := c.form.Snapshot()
	message, err := c.renderer.Render(ctx)
	if err != nil {
		logger.Warn("Render failed: %v", err)
		return Submission{}, err
	}

	sub := Submission{
		ID:      c.newID(),
		Title:   firstLine(ctx.Text(TitleField)),
		Message: message,
	}
	if sub.Title == "" {
		sub.Title = firstLine(message)
	}
	logger.Debug("Prepared submission %s (%q, %d bytes)", sub.ID, sub.Title, len(message))
	return sub, nil
}

// Execute dispatches sub and, when the commit is recorded, runs the post
// commit hook. It does not touch the form and is safe to run off the UI
// goroutine.
func (c *Composer) Execute(ctx context.Context, sub Submission) Result {
	res := Result{Submission: sub}
	if err := c.dispatcher.Dispatch(ctx, sub.Message); err != nil {
		res.Err = err
		return res
	}
	logger.Info("Submission %s committed", sub.ID)

	if c.hook != nil {
		hr, err := hooks.Run(ctx, c.hook, c.workDir, hooks.Variables{Title: sub.Title, ID: sub.ID})
		if err != nil {
			logger.Warn("Post-commit hook interrupted: %v", err)
		}
		res.Hook = hr
	}
	return res
}

// Complete applies the outcome to the form: a recorded commit clears it
// and returns the cursor to the first field, a failure keeps everything.
func (c *Composer) Complete(res Result) {
	if res.OK() {
		c.form.Reset()
		return
	}
	logger.Warn("Submission %s failed, keeping form content: %v", res.ID, res.Err)
}

// Submit runs the whole cycle synchronously.
func (c *Composer) Submit(ctx context.Context) Result {
	sub, err := c.Prepare()
	if err != nil {
		return Result{Err: err}
	}
	res := c.Execute(ctx, sub)
	c.Complete(res)
	return res
}

// IsFatal reports whether err ends the session.
func IsFatal(err error) bool {
	return errors.Is(err, git.ErrGitUnavailable)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(strings.TrimLeft(s, "# "))
}
