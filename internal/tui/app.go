// Package tui is the full-screen terminal front end of rei: a welcome
// screen, the paged commit form and a message preview.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/otechdo/rei/internal/composer"
	"github.com/otechdo/rei/internal/form"
	"github.com/otechdo/rei/internal/git"
	"github.com/otechdo/rei/internal/logger"
	"github.com/otechdo/rei/internal/state"
	"github.com/otechdo/rei/internal/tui/theme"
)

// Mode is the screen currently shown.
type Mode int

const (
	ModeWelcome Mode = iota
	ModeForm
	ModePreview
)

// Options configures the application.
type Options struct {
	Composer *composer.Composer
	WorkDir  string // repository shown in the footer
	DataDir  string // UI state location
	Keys     *KeyMap
	// SkipWelcome opens the form directly.
	SkipWelcome bool
}

// App is the main Bubbletea model.
type App struct {
	ctx      context.Context
	composer *composer.Composer
	form     *form.State
	keys     KeyMap
	inputs   *fieldInputs
	preview  viewport.Model
	toast    *Toast

	previewText string

	mode         Mode
	layout       Layout
	hintsVisible bool
	markdown     bool
	md           markdownRenderer
	gitInfo      *git.Info
	busy         bool // a submission is being dispatched
	workDir      string
	dataDir      string
	width        int
	height       int
	quitting     bool
	err          error // fatal error that ended the session
}

// NewApp creates the application model.
func NewApp(ctx context.Context, opts Options) *App {
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	ui := state.Load(opts.DataDir)
	f := opts.Composer.Form()

	a := &App{
		ctx:          ctx,
		composer:     opts.Composer,
		form:         f,
		keys:         keys,
		inputs:       newFieldInputs(f.PageCount()),
		preview:      viewport.New(viewport.WithWidth(60), viewport.WithHeight(10)),
		toast:        NewToast(),
		hintsVisible: ui.Hints.Visible,
		markdown:     ui.Preview.Markdown,
		workDir:      opts.WorkDir,
		dataDir:      opts.DataDir,
	}
	a.inputs.sync(f)
	if opts.SkipWelcome {
		a.mode = ModeForm
	}
	a.relayout()
	return a
}

// Init fetches the repository state and focuses the first field.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.fetchGitInfo(), a.inputs.focus(a.form))
}

// Err returns the fatal error that ended the session, if any.
func (a *App) Err() error {
	return a.err
}

// Mode returns the screen currently shown.
func (a *App) Mode() Mode {
	return a.mode
}

// Busy reports whether a submission is being dispatched.
func (a *App) Busy() bool {
	return a.busy
}

// Update handles incoming messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return a.handleKeyPress(msg)

	case tea.PasteMsg:
		if a.busy || a.mode != ModeForm {
			return a, nil
		}
		return a, a.edit(tea.PasteMsg{Content: SanitizePaste(msg.Content)})

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.relayout()
		return a, nil

	case CommitDoneMsg:
		return a.handleCommitDone(msg.Result)

	case GitInfoMsg:
		a.gitInfo = msg.Info
		return a, nil

	case EditorDoneMsg:
		return a, a.handleEditorDone(msg)

	case ToastDismissMsg:
		return a, a.toast.Update(msg)
	}

	if a.mode == ModeForm {
		page, field := a.form.Cursor()
		ta := a.inputs.at(page, field)
		var cmd tea.Cmd
		*ta, cmd = ta.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// Input is blocked until the dispatched commit returns.
	if a.busy {
		return a, nil
	}

	switch a.mode {
	case ModeWelcome:
		switch {
		case key.Matches(msg, a.keys.Cancel):
			return a.quit()
		case key.Matches(msg, a.keys.Start):
			a.mode = ModeForm
			return a, a.inputs.focus(a.form)
		}
		return a, nil

	case ModePreview:
		switch {
		case key.Matches(msg, a.keys.Cancel), key.Matches(msg, a.keys.Preview):
			a.mode = ModeForm
			return a, a.inputs.focus(a.form)
		case key.Matches(msg, a.keys.Submit):
			return a.submit()
		case key.Matches(msg, a.keys.Hints):
			return a, a.toggleHints()
		case key.Matches(msg, a.keys.Markdown):
			a.markdown = !a.markdown
			a.refreshPreview()
			a.saveUIState()
			return a, nil
		}
		var cmd tea.Cmd
		a.preview, cmd = a.preview.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Hints):
		return a, a.toggleHints()
	case key.Matches(msg, a.keys.Preview):
		return a, a.openPreview()
	case key.Matches(msg, a.keys.Editor):
		page, field := a.form.Cursor()
		return a, openEditor(page, field, a.form.Active().Text())
	}

	switch cmd := a.keys.Command(msg); cmd {
	case form.Cancel:
		return a.quit()
	case form.Submit:
		return a.submit()
	case form.Edit:
		return a, a.edit(msg)
	default:
		if a.form.Apply(cmd) {
			logger.Debug("Cursor moved by %s", cmd)
		}
		return a, a.inputs.focus(a.form)
	}
}

// edit forwards msg to the active text area and stores the result.
func (a *App) edit(msg tea.Msg) tea.Cmd {
	page, field := a.form.Cursor()
	ta := a.inputs.at(page, field)
	before := ta.Value()
	var cmd tea.Cmd
	*ta, cmd = ta.Update(msg)
	if after := ta.Value(); after != before {
		raw := a.form.Active().Text()
		if text := mergeEdit(raw, before, after); text != raw {
			a.form.Edit(text)
		}
	}
	return cmd
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	a.quitting = true
	return a, tea.Quit
}

// submit renders the form and dispatches the message off the UI
// goroutine. A render failure leaves everything as it was.
func (a *App) submit() (tea.Model, tea.Cmd) {
	sub, err := a.composer.Prepare()
	if err != nil {
		return a, a.toast.ShowError(fmt.Sprintf("Template error: %v", err))
	}

	a.busy = true
	ctx := a.ctx
	c := a.composer
	return a, func() tea.Msg {
		return CommitDoneMsg{Result: c.Execute(ctx, sub)}
	}
}

// commitFailure describes a failed dispatch without git's own output, which
// only goes to the log.
func commitFailure(err error) string {
	var ce *git.CommitError
	if errors.As(err, &ce) {
		if ce.Stderr != "" {
			logger.Warn("git commit stderr: %s", ce.Stderr)
		}
		return fmt.Sprintf("Commit failed (git exited with status %d)", ce.ExitCode)
	}
	return fmt.Sprintf("Commit failed: %v", err)
}

func (a *App) handleCommitDone(res composer.Result) (tea.Model, tea.Cmd) {
	a.busy = false

	if composer.IsFatal(res.Err) {
		logger.Error("Fatal dispatch error: %v", res.Err)
		a.err = res.Err
		return a.quit()
	}

	a.composer.Complete(res)
	if !res.OK() {
		return a, a.toast.ShowError(commitFailure(res.Err))
	}

	a.inputs.sync(a.form)
	a.mode = ModeForm
	text := "Committed"
	if res.Title != "" {
		text += ": " + res.Title
	}
	if res.Hook != nil {
		text += " (" + res.Hook.Summary() + ")"
	}
	return a, tea.Batch(a.toast.Show(text), a.inputs.focus(a.form), a.fetchGitInfo())
}

func (a *App) handleEditorDone(msg EditorDoneMsg) tea.Cmd {
	if msg.Err != nil {
		logger.Warn("External editor failed: %v", msg.Err)
		return a.toast.ShowError(msg.Err.Error())
	}
	if err := a.form.SetText(msg.Page, msg.Field, msg.Content); err != nil {
		return a.toast.ShowError(err.Error())
	}
	a.inputs.sync(a.form)
	return a.inputs.focus(a.form)
}

func (a *App) toggleHints() tea.Cmd {
	a.hintsVisible = !a.hintsVisible
	a.relayout()
	a.saveUIState()
	return nil
}

func (a *App) saveUIState() {
	if a.dataDir == "" {
		return
	}
	ui := &state.UIState{
		Hints:   state.HintsState{Visible: a.hintsVisible},
		Preview: state.PreviewState{Markdown: a.markdown},
	}
	if err := state.Save(a.dataDir, ui); err != nil {
		logger.Warn("Failed to save UI state: %v", err)
	}
}

func (a *App) openPreview() tea.Cmd {
	message, err := a.composer.Render()
	if err != nil {
		return a.toast.ShowError(fmt.Sprintf("Template error: %v", err))
	}
	a.mode = ModePreview
	a.previewText = message
	a.relayout()
	a.refreshPreview()
	a.preview.GotoTop()
	return nil
}

func (a *App) refreshPreview() {
	content := a.previewText
	if a.markdown {
		content = a.md.render(content, a.preview.Width())
	}
	a.preview.SetContent(content)
}

func (a *App) relayout() {
	a.layout = CalculateLayout(a.width, a.height, a.hintsVisible)
	a.inputs.resize(a.layout)
	inner := inset(a.layout.Frame, 1, 1)
	a.preview.SetWidth(max(inner.Dx(), 1))
	a.preview.SetHeight(max(inner.Dy(), 1))
}

func (a *App) fetchGitInfo() tea.Cmd {
	dir := a.workDir
	if dir == "" {
		return nil
	}
	return func() tea.Msg {
		info, err := git.GetInfo(dir)
		if err != nil {
			logger.Debug("git info unavailable: %v", err)
		}
		return GitInfoMsg{Info: info}
	}
}

// View renders the current screen.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if a.quitting {
		view.AltScreen = false
		view.Content = lipgloss.NewLayer("")
		return view
	}

	canvas := uv.NewScreenBuffer(a.width, a.height)
	a.Draw(canvas, canvas.Bounds())
	view.Content = lipgloss.NewLayer(canvas.Render())
	view.BackgroundColor = theme.HexToColor(theme.Current().BgBase)
	return view
}

// Draw renders all components to the screen buffer.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) {
	switch a.mode {
	case ModeWelcome:
		a.drawWelcome(scr, a.layout.Frame)
	case ModePreview:
		a.drawPreview(scr, a.layout.Frame)
	default:
		a.drawForm(scr)
	}

	if a.hintsVisible {
		DrawText(scr, a.layout.Hints, " "+a.hintBar())
	}
	a.drawFooter(scr, a.layout.Footer)
	a.toast.Draw(scr, a.layout.Frame)
}

func (a *App) drawForm(scr uv.Screen) {
	page := a.form.Page()
	drawPageFrame(scr, a.layout.Frame, page)

	_, active := a.form.Cursor()
	for i, field := range page.Fields {
		drawField(scr, a.layout.Fields[i], field, a.inputs.at(page.Index, i), i == active)
	}
}

func (a *App) drawWelcome(scr uv.Screen, area uv.Rectangle) {
	th := theme.Current()
	s := th.S()

	lines := []string{
		theme.Gradient("rei", th.Primary, th.Secondary),
		"",
		s.WelcomeText.Render("Compose structured commit messages, one page at a time."),
		s.WelcomeText.Render(fmt.Sprintf("%d pages of %d fields. Border colours rate line lengths.", a.form.PageCount(), form.FieldsPerPage)),
		"",
		RenderBindings(a.keys.Start, a.keys.Cancel),
	}
	DrawCentered(scr, area, lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (a *App) drawPreview(scr uv.Screen, area uv.Rectangle) {
	s := theme.Current().S()
	DrawBox(scr, area, s.Frame, a.preview.View())
	DrawBorderLabel(scr, area, area.Min.Y, s.PageTitle.Render(" Preview ("+a.composer.Renderer().Kind()+") "), AlignCenter)
}

func (a *App) hintBar() string {
	switch a.mode {
	case ModeWelcome:
		return RenderBindings(a.keys.Start, a.keys.Cancel)
	case ModePreview:
		return RenderHintBar("↑/↓", "scroll", "f6", "commit", "m", "markdown", "f8/esc", "back")
	default:
		return RenderBindings(a.keys.FormHelp()...)
	}
}

func (a *App) drawFooter(scr uv.Screen, area uv.Rectangle) {
	if area.Dy() < 1 {
		return
	}
	s := theme.Current().S()

	left := ""
	if a.gitInfo != nil {
		left = s.FooterGit.Render(" " + a.gitInfo.String())
	}
	if a.busy {
		left += s.FooterBusy.Render("  committing…")
	}
	right := s.Footer.Render(a.composer.Renderer().Kind() + " ")

	gap := max(area.Dx()-lipgloss.Width(left)-lipgloss.Width(right), 1)
	DrawText(scr, area, left+strings.Repeat(" ", gap)+right)
}

// Run starts the program and blocks until the session ends. It returns the
// fatal error that ended the session, if any.
func Run(ctx context.Context, opts Options) error {
	app := NewApp(ctx, opts)
	if _, err := tea.NewProgram(app, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("terminal UI: %w", err)
	}
	return app.Err()
}
