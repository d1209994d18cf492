package form

import "strings"

// RenderContext is a read-only snapshot of the form content keyed by field
// name. It offers both the flattened and the line-list shape of each field.
type RenderContext struct {
	names  []string
	values map[string][]string
}

// NewRenderContext builds a context from explicit values, keeping names in
// the given order.
func NewRenderContext(names []string, values map[string][]string) RenderContext {
	c := RenderContext{
		names:  append([]string(nil), names...),
		values: make(map[string][]string, len(values)),
	}
	for k, v := range values {
		c.values[k] = append([]string(nil), v...)
	}
	return c
}

// Names returns field names in form order.
func (c RenderContext) Names() []string {
	return append([]string(nil), c.names...)
}

// Has reports whether the context knows the field.
func (c RenderContext) Has(name string) bool {
	_, ok := c.values[name]
	return ok
}

// Lines returns the lines of a field.
func (c RenderContext) Lines(name string) []string {
	return append([]string(nil), c.values[name]...)
}

// Text returns the lines of a field joined with newlines.
func (c RenderContext) Text(name string) string {
	return strings.Join(c.values[name], "\n")
}

// Flat returns every field as a single string.
func (c RenderContext) Flat() map[string]string {
	out := make(map[string]string, len(c.values))
	for name, lines := range c.values {
		out[name] = strings.Join(lines, "\n")
	}
	return out
}

// Lists returns every field as its list of lines.
func (c RenderContext) Lists() map[string][]string {
	out := make(map[string][]string, len(c.values))
	for name, lines := range c.values {
		out[name] = append([]string{}, lines...)
	}
	return out
}
