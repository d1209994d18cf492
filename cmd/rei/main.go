package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/otechdo/rei/internal/logger"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootFlags struct {
	renderer    string
	workDir     string
	skipWelcome bool
}

var rootCmd = &cobra.Command{
	Use:   "rei",
	Short: "Compose structured git commit messages in a terminal form",
	Long: `rei opens a multi-page form in the terminal, one page per section of a
structured commit message. Each field is rated on its line lengths while you
type. Submitting renders the form through a template and records the result
with git commit.

Configuration is loaded from multiple sources with the following precedence:
  CLI flags > Environment variables > Project config > Global config > Defaults

Project config: ./rei.yml
Global config: ~/.config/rei/rei.yml`,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFlags.renderer, "renderer", "r", "", "Renderer to use: fixed or template")
	rootCmd.PersistentFlags().StringVarP(&rootFlags.workDir, "work-dir", "C", "", "Repository directory (default: current directory)")
	rootCmd.Flags().BoolVar(&rootFlags.skipWelcome, "no-welcome", false, "Open the form directly")

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(genTemplateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(doctorCmd)
}
