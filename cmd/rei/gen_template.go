package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/otechdo/rei/internal/template"
)

var genTemplateFlags struct {
	dir   string
	force bool
}

var genTemplateCmd = &cobra.Command{
	Use:   "gen-template",
	Short: "Write the default commit document template",
	Long: `Write the default pongo2 commit document to the template directory.

Every form field is available in the document as a list of lines. Set
renderer: template in rei.yml to use it.`,
	RunE: runGenTemplate,
}

func init() {
	genTemplateCmd.Flags().StringVarP(&genTemplateFlags.dir, "dir", "d", "", "Template directory (default: template_dir from config)")
	genTemplateCmd.Flags().BoolVarP(&genTemplateFlags.force, "force", "f", false, "Overwrite an existing document")
}

func runGenTemplate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	dir := cfg.Resolve(cfg.TemplateDir)
	if genTemplateFlags.dir != "" {
		dir = genTemplateFlags.dir
	}
	path := template.NewDocument(dir, cfg.TemplateName, cfg.TemplateExt).Path()

	if !genTemplateFlags.force && fileExists(path) {
		return fmt.Errorf("template already exists at %s\n\nUse --force to overwrite", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create template directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(template.DefaultDocument), 0644); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Template written to: %s\n", path)
	return nil
}
