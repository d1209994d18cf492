// Package form holds the commit form: its schema, the live content of every
// field, the page/field cursor and the line-length quality of each field.
package form

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrOutOfRange is returned when a page or field index does not exist.
var ErrOutOfRange = errors.New("form: index out of range")

// Command is an abstract user command applied to the form.
type Command int

const (
	None Command = iota
	NextPage
	PrevPage
	NextField
	PrevField
	Edit
	Submit
	Cancel
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case NextPage:
		return "next-page"
	case PrevPage:
		return "prev-page"
	case NextField:
		return "next-field"
	case PrevField:
		return "prev-field"
	case Edit:
		return "edit"
	case Submit:
		return "submit"
	case Cancel:
		return "cancel"
	default:
		return "none"
	}
}

// Field is one text slot of a page.
type Field struct {
	Spec    FieldSpec
	lines   []string
	quality Quality
}

// Lines returns a copy of the field's lines. An empty field has no lines.
func (f *Field) Lines() []string {
	if len(f.lines) == 0 {
		return nil
	}
	out := make([]string, len(f.lines))
	copy(out, f.lines)
	return out
}

// Text returns the field content with lines joined by newlines.
func (f *Field) Text() string {
	return strings.Join(f.lines, "\n")
}

// Quality returns the classification computed on the last edit.
func (f *Field) Quality() Quality {
	return f.quality
}

func (f *Field) set(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if text == "" {
		f.lines = nil
	} else {
		f.lines = strings.Split(text, "\n")
	}
	f.quality = Evaluate(LineLengths(f.lines))
}

// Page is a titled group of four fields.
type Page struct {
	Index     int
	Title     string
	Indicator string
	Fields    [FieldsPerPage]*Field
}

// State is the form content plus the navigation cursor.
type State struct {
	schema Schema
	pages  []*Page
	page   int
	field  int
}

// New creates an empty form for the schema, positioned on (0, 0).
// The schema is expected to be valid, see Schema.Validate.
func New(schema Schema) *State {
	s := &State{schema: schema}
	s.Reset()
	return s
}

// Reset discards all content and moves the cursor back to (0, 0).
func (s *State) Reset() {
	s.pages = make([]*Page, len(s.schema.Pages))
	for i, spec := range s.schema.Pages {
		page := &Page{
			Index:     i,
			Title:     spec.Title,
			Indicator: s.schema.Indicator(i),
		}
		for j := 0; j < FieldsPerPage && j < len(spec.Fields); j++ {
			page.Fields[j] = &Field{Spec: spec.Fields[j]}
		}
		s.pages[i] = page
	}
	s.page = 0
	s.field = 0
}

// Schema returns the schema the form was built from.
func (s *State) Schema() Schema {
	return s.schema
}

// PageCount returns the number of pages.
func (s *State) PageCount() int {
	return len(s.pages)
}

// Cursor returns the current page and field indexes.
func (s *State) Cursor() (page, field int) {
	return s.page, s.field
}

// Page returns the current page.
func (s *State) Page() *Page {
	return s.pages[s.page]
}

// Pages returns all pages in order.
func (s *State) Pages() []*Page {
	return s.pages
}

// Active returns the field under the cursor.
func (s *State) Active() *Field {
	return s.pages[s.page].Fields[s.field]
}

// Apply performs a navigation command. It reports whether the cursor moved.
// Navigation saturates at the bounds; page moves always reset the field
// cursor. Edit, Submit and Cancel are not navigation and are ignored here.
func (s *State) Apply(cmd Command) bool {
	page, field := s.page, s.field
	switch cmd {
	case NextPage:
		if s.page < len(s.pages)-1 {
			s.page++
		}
		s.field = 0
	case PrevPage:
		if s.page > 0 {
			s.page--
		}
		s.field = 0
	case NextField:
		if s.field < FieldsPerPage-1 {
			s.field++
		}
	case PrevField:
		if s.field > 0 {
			s.field--
		}
	default:
		return false
	}
	return page != s.page || field != s.field
}

// Edit replaces the content of the active field and re-evaluates its quality.
func (s *State) Edit(text string) Quality {
	f := s.Active()
	f.set(text)
	return f.quality
}

// Field returns the field at (page, field).
func (s *State) Field(page, field int) (*Field, error) {
	if page < 0 || page >= len(s.pages) || field < 0 || field >= FieldsPerPage {
		return nil, fmt.Errorf("%w: page %d field %d", ErrOutOfRange, page, field)
	}
	f := s.pages[page].Fields[field]
	if f == nil {
		return nil, fmt.Errorf("%w: page %d field %d", ErrOutOfRange, page, field)
	}
	return f, nil
}

// SetText replaces the content of the field at (page, field).
func (s *State) SetText(page, field int, text string) error {
	f, err := s.Field(page, field)
	if err != nil {
		return err
	}
	f.set(text)
	return nil
}

// Lookup finds a field by its semantic name.
func (s *State) Lookup(name string) (*Field, bool) {
	for _, page := range s.pages {
		for _, f := range page.Fields {
			if f != nil && f.Spec.Name == name {
				return f, true
			}
		}
	}
	return nil, false
}

// Fill sets fields by name. Unknown names are returned sorted, not applied.
func (s *State) Fill(values map[string]string) []string {
	var unknown []string
	for name, text := range values {
		f, ok := s.Lookup(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		f.set(text)
	}
	sort.Strings(unknown)
	return unknown
}

// IsEmpty reports whether every field is empty.
func (s *State) IsEmpty() bool {
	for _, page := range s.pages {
		for _, f := range page.Fields {
			if f != nil && len(f.lines) > 0 {
				return false
			}
		}
	}
	return true
}

// Snapshot builds a render context from the current content.
func (s *State) Snapshot() RenderContext {
	names := make([]string, 0, len(s.pages)*FieldsPerPage)
	values := make(map[string][]string, len(s.pages)*FieldsPerPage)
	for _, page := range s.pages {
		for _, f := range page.Fields {
			if f == nil {
				continue
			}
			names = append(names, f.Spec.Name)
			values[f.Spec.Name] = f.Lines()
		}
	}
	return RenderContext{names: names, values: values}
}
