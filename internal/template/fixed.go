package template

import (
	"sort"
	"strings"

	"github.com/otechdo/rei/internal/form"
)

// FixedRenderer substitutes %name% placeholders in a literal template.
type FixedRenderer struct {
	template string
}

// NewFixed returns a renderer for the given template text.
func NewFixed(template string) *FixedRenderer {
	return &FixedRenderer{template: template}
}

// Kind implements Renderer.
func (r *FixedRenderer) Kind() string {
	return KindFixed
}

// Template returns the template text.
func (r *FixedRenderer) Template() string {
	return r.template
}

// Render replaces every %name% placeholder with the field's text. Placeholders
// for unknown names are left as they are. Substitution is a single pass, so
// text coming from a field is never substituted again.
func (r *FixedRenderer) Render(ctx form.RenderContext) (string, error) {
	return Substitute(r.template, ctx.Flat()), nil
}

// Substitute performs the placeholder replacement on template.
func Substitute(template string, values map[string]string) string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(values)*2)
	for _, name := range names {
		pairs = append(pairs, Placeholder(name), values[name])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Placeholder returns the placeholder token for a field name.
func Placeholder(name string) string {
	return "%" + name + "%"
}
