// Package config provides centralized configuration management using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/otechdo/rei/internal/form"
	"github.com/otechdo/rei/internal/template"
)

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all configuration values for rei.
type Config struct {
	Renderer     string `mapstructure:"renderer" yaml:"renderer" validate:"oneof=fixed template"`
	TemplateFile string `mapstructure:"template_file" yaml:"template_file,omitempty"`
	TemplateDir  string `mapstructure:"template_dir" yaml:"template_dir" validate:"required_if=Renderer template"`
	TemplateName string `mapstructure:"template_name" yaml:"template_name"`
	TemplateExt  string `mapstructure:"template_ext" yaml:"template_ext"`
	Schema       string `mapstructure:"schema" yaml:"schema,omitempty"`
	GitBinary    string `mapstructure:"git_binary" yaml:"git_binary" validate:"required"`
	WorkDir      string `mapstructure:"work_dir" yaml:"work_dir" validate:"required"`
	DataDir      string `mapstructure:"data_dir" yaml:"data_dir" validate:"required"`
	LogLevel     string `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogFile      string `mapstructure:"log_file" yaml:"log_file,omitempty"`
}

var validate = validator.New()

// keys lists every configuration key bound to a REI_ environment variable.
var keys = []string{
	"renderer",
	"template_file",
	"template_dir",
	"template_name",
	"template_ext",
	"schema",
	"git_binary",
	"work_dir",
	"data_dir",
	"log_level",
	"log_file",
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		Renderer:     template.KindFixed,
		TemplateDir:  filepath.Join(".rei", "templates"),
		TemplateName: template.DefaultDocumentName,
		TemplateExt:  template.DefaultExtension,
		GitBinary:    "git",
		WorkDir:      ".",
		DataDir:      ".rei",
		LogLevel:     "info",
	}
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("rei")

	d := Defaults()
	v.SetDefault("renderer", d.Renderer)
	v.SetDefault("template_file", "")
	v.SetDefault("template_dir", d.TemplateDir)
	v.SetDefault("template_name", d.TemplateName)
	v.SetDefault("template_ext", d.TemplateExt)
	v.SetDefault("schema", "")
	v.SetDefault("git_binary", d.GitBinary)
	v.SetDefault("work_dir", d.WorkDir)
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", "")

	v.SetEnvPrefix("REI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range keys {
		if err := v.BindEnv(key, "REI_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration. Failures wrap ErrInvalid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Resolve returns path relative to the work directory unless it is absolute.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.WorkDir, path)
}

// TemplateOptions returns the renderer options described by the config.
func (c *Config) TemplateOptions() template.Options {
	return template.Options{
		Kind:         c.Renderer,
		TemplateFile: c.Resolve(c.TemplateFile),
		Dir:          c.Resolve(c.TemplateDir),
		Name:         c.TemplateName,
		Extension:    c.TemplateExt,
	}
}

// FormSchema loads the configured schema, or the built-in one when none is
// set.
func (c *Config) FormSchema() (form.Schema, error) {
	if c.Schema == "" {
		return form.DefaultSchema(), nil
	}
	return form.LoadSchema(c.Resolve(c.Schema))
}

// StateDir returns the directory holding UI state and hook files.
func (c *Config) StateDir() string {
	return c.Resolve(c.DataDir)
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/rei/rei.yml or $XDG_CONFIG_HOME/rei/rei.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rei", "rei.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "rei", "rei.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./rei.yml in the current working directory.
func ProjectPath() string {
	return "rei.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
