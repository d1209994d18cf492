// Package template turns a form snapshot into the final commit message.
package template

import (
	"fmt"
	"os"
	"strings"

	"github.com/otechdo/rei/internal/form"
	"github.com/otechdo/rei/internal/logger"
)

// Renderer kinds accepted by New.
const (
	KindFixed    = "fixed"
	KindDocument = "template"
)

// Renderer produces the commit message from a form snapshot.
type Renderer interface {
	Render(ctx form.RenderContext) (string, error)
	// Kind returns KindFixed or KindDocument.
	Kind() string
}

// RenderError reports a template that could not be loaded, parsed or
// executed. It is recoverable: the form is left as it was.
type RenderError struct {
	Template string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Template, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Options selects and configures a renderer.
type Options struct {
	Kind string // KindFixed or KindDocument

	// Fixed renderer: optional file overriding DefaultTemplate.
	TemplateFile string

	// Document renderer.
	Dir       string
	Name      string
	Extension string
}

// New builds the renderer described by opts.
func New(opts Options) (Renderer, error) {
	switch opts.Kind {
	case "", KindFixed:
		content, err := GetTemplate(opts.TemplateFile)
		if err != nil {
			return nil, err
		}
		if opts.TemplateFile != "" {
			logger.Debug("Using custom fixed template: %s", opts.TemplateFile)
		}
		return NewFixed(content), nil
	case KindDocument:
		return NewDocument(opts.Dir, opts.Name, opts.Extension), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q (use %q or %q)", opts.Kind, KindFixed, KindDocument)
	}
}

// LoadFromFile loads a template from a file.
func LoadFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template file %s: %w", path, err)
	}
	return string(data), nil
}

// GetTemplate returns the fixed template content.
// If customPath is non-empty, loads from that file.
// Otherwise returns DefaultTemplate.
func GetTemplate(customPath string) (string, error) {
	if strings.TrimSpace(customPath) == "" {
		return DefaultTemplate, nil
	}
	return LoadFromFile(customPath)
}
