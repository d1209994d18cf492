package template

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/otechdo/rei/internal/form"
	"github.com/otechdo/rei/internal/logger"
)

// Document renderer defaults.
const (
	DefaultDocumentName = "commit"
	DefaultExtension    = ".tpl"
)

// DocumentRenderer evaluates a pongo2 template document loaded from a
// directory. Fields are exposed as lists of lines.
//
// The document is read on every Render so that a broken template can be
// fixed on disk and retried without restarting. A document that reads a
// variable the form does not define fails with ErrUndefined; pongo2 alone
// would render it empty.
type DocumentRenderer struct {
	dir  string
	name string
	ext  string
}

// NewDocument returns a renderer for <dir>/<name><ext>.
func NewDocument(dir, name, ext string) *DocumentRenderer {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultDocumentName
	}
	ext = strings.TrimSpace(ext)
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &DocumentRenderer{dir: dir, name: name, ext: ext}
}

// Kind implements Renderer.
func (r *DocumentRenderer) Kind() string {
	return KindDocument
}

// Path returns the document location.
func (r *DocumentRenderer) Path() string {
	return filepath.Join(r.dir, r.name+r.ext)
}

// Render loads the document and executes it against the snapshot.
func (r *DocumentRenderer) Render(ctx form.RenderContext) (string, error) {
	loader, err := pongo2.NewLocalFileSystemLoader(r.dir)
	if err != nil {
		logger.Warn("Template directory unavailable: %v", err)
		return "", &RenderError{Template: r.Path(), Err: err}
	}

	set := pongo2.NewSet("rei", loader)
	tpl, err := set.FromFile(r.name + r.ext)
	if err != nil {
		logger.Warn("Failed to load template %s: %v", r.Path(), err)
		return "", &RenderError{Template: r.Path(), Err: err}
	}

	source, err := os.ReadFile(r.Path())
	if err != nil {
		logger.Warn("Failed to read template %s: %v", r.Path(), err)
		return "", &RenderError{Template: r.Path(), Err: err}
	}
	if names := undefinedNames(string(source), ctx.Names()); len(names) > 0 {
		err := undefinedError(names)
		logger.Warn("Template %s: %v", r.Path(), err)
		return "", &RenderError{Template: r.Path(), Err: err}
	}

	out, err := tpl.Execute(Context(ctx))
	if err != nil {
		logger.Warn("Failed to execute template %s: %v", r.Path(), err)
		return "", &RenderError{Template: r.Path(), Err: err}
	}

	logger.Debug("Rendered %s: %d characters", r.Path(), len(out))
	return out, nil
}

// Context exposes every field as its list of lines, plus "fields", the
// ordered list of field names.
func Context(ctx form.RenderContext) pongo2.Context {
	names := ctx.Names()
	c := make(pongo2.Context, len(names)+1)
	for _, name := range names {
		c[name] = ctx.Lines(name)
	}
	c["fields"] = names
	return c
}
