package template

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otechdo/rei/internal/form"
)

func snapshot(values map[string]string, names ...string) form.RenderContext {
	lists := make(map[string][]string, len(values))
	for name, text := range values {
		if text == "" {
			lists[name] = nil
			continue
		}
		lists[name] = strings.Split(text, "\n")
	}
	return form.NewRenderContext(names, lists)
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   map[string]string
		want     string
	}{
		{
			name:     "simple substitution",
			template: "# %title%\n\n%description%",
			values:   map[string]string{"title": "Fix crash", "description": "Null check"},
			want:     "# Fix crash\n\nNull check",
		},
		{
			name:     "repeated placeholder",
			template: "%title% / %title%",
			values:   map[string]string{"title": "x"},
			want:     "x / x",
		},
		{
			name:     "unknown placeholder left as is",
			template: "%title% %nope%",
			values:   map[string]string{"title": "x"},
			want:     "x %nope%",
		},
		{
			name:     "empty value",
			template: "[%notes%]",
			values:   map[string]string{"notes": ""},
			want:     "[]",
		},
		{
			name:     "field text is not substituted again",
			template: "%title%|%body%",
			values:   map[string]string{"title": "%body%", "body": "b"},
			want:     "%body%|b",
		},
		{
			name:     "multiline value",
			template: "### Steps\n\n%steps%\n",
			values:   map[string]string{"steps": "one\ntwo"},
			want:     "### Steps\n\none\ntwo\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.template, tt.values))
		})
	}
}

func TestFixedRenderer_DefaultTemplateIsTotal(t *testing.T) {
	schema := form.DefaultSchema()
	state := form.New(schema)
	for i, name := range schema.Names() {
		f, ok := state.Lookup(name)
		require.True(t, ok)
		require.NoError(t, state.SetText(i/form.FieldsPerPage, i%form.FieldsPerPage, "value of "+name))
		assert.Equal(t, "value of "+name, f.Text())
	}

	out, err := NewFixed(DefaultTemplate).Render(state.Snapshot())
	require.NoError(t, err)

	for _, name := range schema.Names() {
		assert.NotContains(t, out, Placeholder(name), name)
		assert.Contains(t, out, "value of "+name)
	}
	assert.True(t, strings.HasPrefix(out, "# value of title\n"))
}

func TestFixedRenderer_EmptyForm(t *testing.T) {
	state := form.New(form.DefaultSchema())
	out, err := NewFixed(DefaultTemplate).Render(state.Snapshot())
	require.NoError(t, err)

	assert.NotContains(t, out, "%")
	assert.True(t, strings.HasPrefix(out, "# \n"))
}

func writeDocument(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDocumentRenderer_ListsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "commit.tpl", "{% for line in authors %}- {{ line }}\n{% endfor %}")

	r := NewDocument(dir, "", "")
	out, err := r.Render(snapshot(map[string]string{"authors": "a\nb"}, "authors"))
	require.NoError(t, err)

	assert.Equal(t, "- a\n- b\n", out)
	assert.Equal(t, KindDocument, r.Kind())
	assert.Equal(t, filepath.Join(dir, "commit.tpl"), r.Path())
}

func TestDocumentRenderer_EmptyFieldIsFalsy(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "commit.tpl", "{% if notes %}has notes{% else %}no notes{% endif %}")

	out, err := NewDocument(dir, "commit", ".tpl").Render(snapshot(map[string]string{"notes": ""}, "notes"))
	require.NoError(t, err)
	assert.Equal(t, "no notes", out)
}

func TestDocumentRenderer_CustomNameAndExtension(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "short.j2", "{{ title|join:\" \" }}")

	r := NewDocument(dir, "short", "j2")
	out, err := r.Render(snapshot(map[string]string{"title": "Fix crash"}, "title"))
	require.NoError(t, err)
	assert.Equal(t, "Fix crash", out)
}

func TestDocumentRenderer_Errors(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "broken.tpl", "{% for line in title %}never closed")
	writeDocument(t, dir, "typo.tpl", "# {{ titel|join:\" \" }}\n{% for l in descripton %}{{ l }}{% endfor %}END")

	tests := []struct {
		name     string
		renderer *DocumentRenderer
	}{
		{"missing directory", NewDocument(filepath.Join(dir, "nope"), "commit", ".tpl")},
		{"missing document", NewDocument(dir, "commit", ".tpl")},
		{"syntax error", NewDocument(dir, "broken", ".tpl")},
		{"undefined reference", NewDocument(dir, "typo", ".tpl")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.renderer.Render(snapshot(map[string]string{"title": "x"}, "title"))
			require.Error(t, err)
			assert.Empty(t, out)

			var renderErr *RenderError
			require.True(t, errors.As(err, &renderErr))
			assert.Equal(t, tt.renderer.Path(), renderErr.Template)
		})
	}
}

func TestDocumentRenderer_UndefinedNamesAreListed(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "commit.tpl", "{{ titel }}{% if notes or risk %}{% endif %}{{ title|join:\" \" }}")

	_, err := NewDocument(dir, "", "").Render(snapshot(map[string]string{"title": "x", "notes": ""}, "title", "notes"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUndefined)
	assert.Contains(t, err.Error(), "undefined reference: risk, titel")
}

func TestUndefinedNames(t *testing.T) {
	known := []string{"title", "authors"}
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"plain text", "no tags here", []string{}},
		{"known variable with filter", `{{ title|join:" " }}`, []string{}},
		{"filter argument is a variable", `{{ title|default:fallback }}`, []string{"fallback"}},
		{"loop variable", "{% for a in authors %}{{ a }}{{ forloop.Counter }}{% endfor %}", []string{}},
		{"key value loop", "{% for i, a in authors %}{{ i }}{{ a }}{% endfor %}", []string{}},
		{"loop over unknown list", "{% for a in autors %}{% endfor %}", []string{"autors"}},
		{"condition", "{% if title and not (nope or 1) %}{% elif other %}{% endif %}", []string{"nope", "other"}},
		{"string literals ignored", `{% if title == "missing" %}{% endif %}`, []string{}},
		{"attribute access", "{{ title.0 }}{{ fields }}", []string{}},
		{"whitespace control", "{{- titel -}}", []string{"titel"}},
		{"set binds a name", "{% set x = title %}{{ x }}{{ y }}", []string{"y"}},
		{"comments skipped", "{# {{ a }} #}{% comment %}{{ b }}{% endcomment %}", []string{}},
		{"duplicates reported once", "{{ z }}{{ z }}", []string{"z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, undefinedNames(tt.source, known))
		})
	}
}

func TestDefaultDocument_HasNoUndefinedNames(t *testing.T) {
	assert.Empty(t, undefinedNames(DefaultDocument, form.DefaultSchema().Names()))
}

func TestDocumentRenderer_PicksUpEdits(t *testing.T) {
	dir := t.TempDir()
	r := NewDocument(dir, "commit", ".tpl")
	ctx := snapshot(map[string]string{"title": "x"}, "title")

	_, err := r.Render(ctx)
	require.Error(t, err)

	writeDocument(t, dir, "commit.tpl", "ok {{ title|join:\"\" }}")
	out, err := r.Render(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok x", out)
}

func TestDefaultDocument(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "commit.tpl", DefaultDocument)

	state := form.New(form.DefaultSchema())
	state.Fill(map[string]string{
		"title":       "Fix crash",
		"description": "Guard against nil <config>",
		"authors":     "alice\nbob",
	})

	out, err := NewDocument(dir, "", "").Render(state.Snapshot())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Fix crash\n"))
	assert.Contains(t, out, "Guard against nil <config>")
	assert.Contains(t, out, "### Authors\n\n- alice\n- bob\n")
	assert.NotContains(t, out, "## Database")
	assert.NotContains(t, out, "### Testers")
}

func TestContext_ExposesFieldOrder(t *testing.T) {
	c := Context(snapshot(map[string]string{"a": "1", "b": ""}, "a", "b"))
	assert.Equal(t, []string{"a", "b"}, c["fields"])
	assert.Equal(t, []string{"1"}, c["a"])
	assert.Nil(t, c["b"])
}

func TestNew(t *testing.T) {
	r, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, KindFixed, r.Kind())
	assert.Equal(t, DefaultTemplate, r.(*FixedRenderer).Template())

	r, err = New(Options{Kind: KindDocument, Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, KindDocument, r.Kind())

	_, err = New(Options{Kind: "handlebars"})
	assert.Error(t, err)
}

func TestNew_CustomFixedTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.txt")
	require.NoError(t, os.WriteFile(path, []byte("%title%\n\n%description%\n"), 0644))

	r, err := New(Options{Kind: KindFixed, TemplateFile: path})
	require.NoError(t, err)

	out, err := r.Render(snapshot(map[string]string{"title": "T", "description": "D"}, "title", "description"))
	require.NoError(t, err)
	assert.Equal(t, "T\n\nD\n", out)

	_, err = New(Options{Kind: KindFixed, TemplateFile: path + ".missing"})
	assert.Error(t, err)
}

func TestGetTemplate(t *testing.T) {
	content, err := GetTemplate("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplate, content)

	content, err = GetTemplate("   ")
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplate, content)
}

func TestRenderError(t *testing.T) {
	base := errors.New("boom")
	err := &RenderError{Template: "x.tpl", Err: base}
	assert.Equal(t, "render x.tpl: boom", err.Error())
	assert.ErrorIs(t, err, base)
}
