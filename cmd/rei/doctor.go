package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/otechdo/rei/internal/config"
	"github.com/otechdo/rei/internal/form"
	"github.com/otechdo/rei/internal/git"
	"github.com/otechdo/rei/internal/hooks"
	"github.com/otechdo/rei/internal/template"
)

// errDoctor is returned when at least one check failed.
var errDoctor = errors.New("some checks failed")

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, git and templates",
	RunE:  runDoctor,
}

// check is the outcome of one doctor step.
type check struct {
	name   string
	detail string
	err    error
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	checks := diagnose(cfg)
	if !report(cmd.OutOrStdout(), checks) {
		return errDoctor
	}
	return nil
}

// diagnose runs every check against cfg.
func diagnose(cfg *config.Config) []check {
	var checks []check

	source := "defaults"
	if config.Exists() {
		source = "config file"
	}
	checks = append(checks, check{name: "config", detail: source})

	committer := git.NewCommitter(cfg.GitBinary, cfg.WorkDir)
	checks = append(checks, check{name: "git", detail: cfg.GitBinary, err: committer.Check()})

	info, err := git.GetInfo(cfg.WorkDir)
	switch {
	case err != nil:
		checks = append(checks, check{name: "repository", err: err})
	case info == nil:
		checks = append(checks, check{name: "repository", err: fmt.Errorf("%s is not inside a git work tree", cfg.WorkDir)})
	default:
		checks = append(checks, check{name: "repository", detail: info.String()})
	}

	schema, err := cfg.FormSchema()
	c := check{name: "schema", err: err}
	if err == nil {
		c.detail = fmt.Sprintf("%d pages, %d fields", len(schema.Pages), len(schema.Names()))
	}
	checks = append(checks, c)

	checks = append(checks, checkRenderer(cfg, schema))

	switch f, err := hooks.Load(cfg.WorkDir); {
	case err != nil:
		checks = append(checks, check{name: "hooks", err: err})
	case f != nil && f.Hooks.PostCommit != nil:
		checks = append(checks, check{name: "hooks", detail: "post_commit: " + f.Hooks.PostCommit.Command})
	}

	return checks
}

// checkRenderer renders an empty form with the configured renderer.
func checkRenderer(cfg *config.Config, schema form.Schema) check {
	c := check{name: "renderer", detail: cfg.Renderer}
	renderer, err := template.New(cfg.TemplateOptions())
	if err != nil {
		c.err = err
		return c
	}
	if doc, ok := renderer.(*template.DocumentRenderer); ok {
		c.detail = doc.Path()
		if _, err := os.Stat(doc.Path()); err != nil {
			c.err = fmt.Errorf("%w (run 'rei gen-template')", err)
			return c
		}
	}
	if len(schema.Pages) > 0 {
		_, c.err = renderer.Render(form.New(schema).Snapshot())
	}
	return c
}

// report prints checks and returns whether all of them passed.
func report(w io.Writer, checks []check) bool {
	ok := true
	for _, c := range checks {
		if c.err != nil {
			ok = false
			_, _ = fmt.Fprintf(w, "✗ %-10s %v\n", c.name, c.err)
			continue
		}
		_, _ = fmt.Fprintf(w, "✓ %-10s %s\n", c.name, c.detail)
	}
	return ok
}
