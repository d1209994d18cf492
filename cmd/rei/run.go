package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/otechdo/rei/internal/composer"
	"github.com/otechdo/rei/internal/config"
	"github.com/otechdo/rei/internal/form"
	"github.com/otechdo/rei/internal/git"
	"github.com/otechdo/rei/internal/hooks"
	"github.com/otechdo/rei/internal/logger"
	"github.com/otechdo/rei/internal/template"
	"github.com/otechdo/rei/internal/tui"
)

// errNotTerminal is returned when the form is started without a terminal.
var errNotTerminal = errors.New("rei needs an interactive terminal (use 'rei render' for scripts)")

// loadConfig loads the configuration, applies command line overrides,
// validates the result and configures logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("renderer") {
		cfg.Renderer = rootFlags.renderer
	}
	if flags.Changed("work-dir") {
		cfg.WorkDir = rootFlags.workDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	return cfg, nil
}

// newComposer wires the form, the renderer, the dispatcher and the optional
// post commit hook described by cfg.
func newComposer(cfg *config.Config, dispatcher composer.Dispatcher) (*composer.Composer, error) {
	schema, err := cfg.FormSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}

	renderer, err := template.New(cfg.TemplateOptions())
	if err != nil {
		return nil, err
	}

	var opts []composer.Option
	hooksFile, err := hooks.Load(cfg.WorkDir)
	if err != nil {
		return nil, err
	}
	if hooksFile != nil && hooksFile.Hooks.PostCommit != nil {
		logger.Debug("Post-commit hook: %s", hooksFile.Hooks.PostCommit.Command)
		opts = append(opts, composer.WithPostCommitHook(hooksFile.Hooks.PostCommit, cfg.WorkDir))
	}

	return composer.New(form.New(schema), renderer, dispatcher, opts...), nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	committer := git.NewCommitter(cfg.GitBinary, cfg.WorkDir)
	if err := committer.Check(); err != nil {
		return err
	}

	c, err := newComposer(cfg, committer)
	if err != nil {
		return err
	}

	logger.Info("Starting form (renderer: %s, work dir: %s)", c.Renderer().Kind(), cfg.WorkDir)
	return tui.Run(cmd.Context(), tui.Options{
		Composer:    c,
		WorkDir:     cfg.WorkDir,
		DataDir:     cfg.StateDir(),
		SkipWelcome: rootFlags.skipWelcome,
	})
}
