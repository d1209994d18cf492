package tui

import (
	"unicode"
	"unicode/utf8"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/otechdo/rei/internal/form"
	"github.com/otechdo/rei/internal/tui/theme"
)

// fieldInputs holds one text area per form field. The form state stays the
// source of truth; text areas only carry cursor and scroll position.
type fieldInputs struct {
	pages [][form.FieldsPerPage]textarea.Model
}

func newFieldInput() textarea.Model {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Placeholder = ""
	return ta
}

// tabSpaces is what the text area puts in place of a tab.
const tabSpaces = "    "

// displayRunes returns raw the way the text area holds it, along with the
// display offset of every raw rune plus a final entry for the display length.
func displayRunes(raw []rune) ([]rune, []int) {
	out := make([]rune, 0, len(raw))
	starts := make([]int, len(raw)+1)
	for i, r := range raw {
		starts[i] = len(out)
		switch {
		case r == '\t':
			out = append(out, []rune(tabSpaces)...)
		case r == '\r' || r == '\n':
			out = append(out, '\n')
		case r == utf8.RuneError || unicode.IsControl(r):
		default:
			out = append(out, r)
		}
	}
	starts[len(raw)] = len(out)
	return out, starts
}

func displayText(raw string) string {
	out, _ := displayRunes([]rune(raw))
	return string(out)
}

// mergeEdit applies the change between two text area values to the raw
// field text. Only the edited region is replaced, so a tab the text area
// shows as spaces stays a tab unless the edit touches it.
func mergeEdit(raw, before, after string) string {
	rawRunes := []rune(raw)
	shown, starts := displayRunes(rawRunes)
	if string(shown) != before {
		return after
	}

	old, cur := []rune(before), []rune(after)
	prefix := 0
	for prefix < len(old) && prefix < len(cur) && old[prefix] == cur[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(old)-prefix && suffix < len(cur)-prefix &&
		old[len(old)-1-suffix] == cur[len(cur)-1-suffix] {
		suffix++
	}

	// Widen the region to whole raw runes.
	from := 0
	for from < len(rawRunes) && starts[from+1] <= prefix {
		from++
	}
	end := len(old) - suffix
	to := len(rawRunes)
	for to > from && starts[to-1] >= end {
		to--
	}

	inserted := cur[starts[from] : len(cur)-len(old)+starts[to]]
	return string(rawRunes[:from]) + string(inserted) + string(rawRunes[to:])
}

func newFieldInputs(pageCount int) *fieldInputs {
	in := &fieldInputs{pages: make([][form.FieldsPerPage]textarea.Model, pageCount)}
	for p := range in.pages {
		for f := range in.pages[p] {
			in.pages[p][f] = newFieldInput()
		}
	}
	return in
}

func (in *fieldInputs) at(page, field int) *textarea.Model {
	return &in.pages[page][field]
}

// sync copies the content of every field from the form.
func (in *fieldInputs) sync(state *form.State) {
	for p, page := range state.Pages() {
		for f, field := range page.Fields {
			if field == nil {
				continue
			}
			ta := in.at(p, f)
			if ta.Value() != displayText(field.Text()) {
				ta.SetValue(field.Text())
			}
		}
	}
}

// focus blurs every input and focuses the one under the cursor.
func (in *fieldInputs) focus(state *form.State) tea.Cmd {
	page, field := state.Cursor()
	for p := range in.pages {
		for f := range in.pages[p] {
			if p != page || f != field {
				in.pages[p][f].Blur()
			}
		}
	}
	return in.at(page, field).Focus()
}

// resize fits every input inside its field box.
func (in *fieldInputs) resize(l Layout) {
	border := theme.Current().S().FieldBorder
	for p := range in.pages {
		for f := range in.pages[p] {
			r := l.Fields[f]
			w := max(r.Dx()-border.GetHorizontalFrameSize(), 1)
			h := max(r.Dy()-border.GetVerticalFrameSize(), 1)
			in.pages[p][f].SetWidth(w)
			in.pages[p][f].SetHeight(h)
		}
	}
}

// drawField renders one field box. Only the active field shows its quality
// colour and help text.
func drawField(scr uv.Screen, area uv.Rectangle, field *form.Field, ta *textarea.Model, active bool) {
	if field == nil || area.Dx() < 4 || area.Dy() < 3 {
		return
	}
	s := theme.Current().S()

	c := inactiveColor()
	if active {
		c = qualityColor(field.Quality())
	}

	box := s.FieldBorder.BorderForeground(c)
	if !active {
		box = box.Foreground(c)
	}
	DrawBox(scr, area, box, ta.View())

	title := s.FieldTitle.Foreground(c).Render(fieldTitle(field.Spec.Label, field.Quality(), active))
	align := AlignLeft
	if active {
		align = AlignCenter
	}
	DrawBorderLabel(scr, area, area.Min.Y, title, align)

	if active && field.Spec.Help != "" {
		help := s.FieldHelp.Foreground(c).Render(" " + field.Spec.Help + " ")
		DrawBorderLabel(scr, area, area.Max.Y-1, help, AlignCenter)
	}
}

// drawPageFrame renders the outer page border with its title and indicator.
func drawPageFrame(scr uv.Screen, area uv.Rectangle, page *form.Page) {
	if area.Dx() < 2 || area.Dy() < 2 {
		return
	}
	s := theme.Current().S()
	DrawBox(scr, area, s.Frame, "")
	DrawBorderLabel(scr, area, area.Min.Y, s.PageTitle.Render(" "+page.Title+" "), AlignCenter)
	DrawBorderLabel(scr, area, area.Max.Y-1, s.Indicator.Render(page.Indicator), AlignCenter)
}
