package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/otechdo/rei/internal/form"
	"github.com/otechdo/rei/internal/git"
	"github.com/otechdo/rei/internal/logger"
)

var renderFlags struct {
	answers string
	commit  bool
	strict  bool
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a commit message from an answers file",
	Long: `Fill the form from a YAML answers file and print the rendered message.

The answers file maps field names to text or to a list of lines:

  title: Fix crash on empty input
  description: |
    The parser dereferenced a nil slice.
  authors:
    - alice

With --commit the message is also recorded with git commit.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFlags.answers, "answers", "a", "", "YAML answers file (required)")
	renderCmd.Flags().BoolVar(&renderFlags.commit, "commit", false, "Record the rendered message with git commit")
	renderCmd.Flags().BoolVar(&renderFlags.strict, "strict", false, "Fail on unknown fields or fields holding an over-length line")
	_ = renderCmd.MarkFlagRequired("answers")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	answers, err := form.LoadAnswers(renderFlags.answers)
	if err != nil {
		return err
	}

	committer := git.NewCommitter(cfg.GitBinary, cfg.WorkDir)
	c, err := newComposer(cfg, committer)
	if err != nil {
		return err
	}

	unknown := c.Form().Fill(answers)
	if len(unknown) > 0 {
		logger.Warn("Unknown fields in %s: %s", renderFlags.answers, strings.Join(unknown, ", "))
		if renderFlags.strict {
			return fmt.Errorf("unknown fields: %s", strings.Join(unknown, ", "))
		}
	}
	if renderFlags.strict {
		if names := overLength(c.Form()); len(names) > 0 {
			return fmt.Errorf("fields with a line over %d characters: %s", form.MaxLineLength, strings.Join(names, ", "))
		}
	}

	if !renderFlags.commit {
		message, err := c.Render()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), message)
		return nil
	}

	res := c.Submit(cmd.Context())
	if res.Err != nil {
		var ce *git.CommitError
		if errors.As(res.Err, &ce) && ce.Stderr != "" {
			return fmt.Errorf("commit failed: %s", ce.Stderr)
		}
		return res.Err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Committed: %s\n", res.Title)
	if res.Hook != nil {
		_, _ = fmt.Fprint(out, res.Hook.Stdout)
		if !res.Hook.OK() {
			logger.Warn("Post-commit hook: %s", res.Hook.Summary())
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), res.Hook.Summary())
		}
	}
	return nil
}

// overLength returns the names of the fields rated as errors.
func overLength(s *form.State) []string {
	var names []string
	for _, page := range s.Pages() {
		for _, f := range page.Fields {
			if f != nil && f.Quality() == form.Error {
				names = append(names, f.Spec.Name)
			}
		}
	}
	return names
}
