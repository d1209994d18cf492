package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	Frame       lipgloss.Style
	PageTitle   lipgloss.Style
	Indicator   lipgloss.Style
	FieldTitle  lipgloss.Style
	FieldHelp   lipgloss.Style
	FieldBorder lipgloss.Style

	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	Footer      lipgloss.Style
	FooterGit   lipgloss.Style
	FooterBusy  lipgloss.Style
	Toast       lipgloss.Style
	ToastError  lipgloss.Style
	WelcomeText lipgloss.Style
}

func (t *Theme) buildStyles() *Styles {
	return &Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.FgSubtle)),
		PageTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),
		Indicator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)),
		FieldTitle: lipgloss.NewStyle().Bold(true),
		FieldHelp: lipgloss.NewStyle().
			Italic(true),
		FieldBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			PaddingRight(2),

		HintKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)).
			Bold(true),
		HintDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)),
		HintSeparator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)),
		FooterGit: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),
		FooterBusy: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Caution)).
			Bold(true),
		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgBase)).
			Background(lipgloss.Color(t.Success)).
			Padding(0, 1).
			Bold(true),
		ToastError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgBase)).
			Background(lipgloss.Color(t.Error)).
			Padding(0, 1).
			Bold(true),
		WelcomeText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBase)),
	}
}
