// Package config loads pragent settings from an optional config file
// and PRAGENT_* environment variables over built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultBaseBranch is the base branch used when a tool call omits one.
	DefaultBaseBranch = "main"
	// DefaultMaxDiffLines bounds the diff returned by an analysis call.
	DefaultMaxDiffLines = 500
	// DefaultGitTimeoutSeconds bounds each git subprocess invocation.
	DefaultGitTimeoutSeconds = 30
)

// Config holds the server settings.
type Config struct {
	// TemplatesDir is the directory holding the PR template documents.
	TemplatesDir string `mapstructure:"templates_dir"`
	// DefaultBase is the fallback base branch for analysis calls.
	DefaultBase string `mapstructure:"default_base_branch"`
	// MaxDiffLines is the fallback diff line bound for analysis calls.
	MaxDiffLines int `mapstructure:"default_max_diff_lines"`
	// GitTimeoutSeconds bounds each git query subprocess.
	GitTimeoutSeconds int `mapstructure:"git_timeout_seconds"`
}

// GitTimeout returns the per-query subprocess bound as a duration.
func (c *Config) GitTimeout() time.Duration {
	return time.Duration(c.GitTimeoutSeconds) * time.Second
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.TemplatesDir == "" {
		return fmt.Errorf("templates_dir must not be empty")
	}
	if c.DefaultBase == "" {
		return fmt.Errorf("default_base_branch must not be empty")
	}
	if c.MaxDiffLines <= 0 {
		return fmt.Errorf("default_max_diff_lines must be positive, got %d", c.MaxDiffLines)
	}
	if c.GitTimeoutSeconds <= 0 {
		return fmt.Errorf("git_timeout_seconds must be positive, got %d", c.GitTimeoutSeconds)
	}
	return nil
}

// Load reads pragent.yaml from the current directory or
// ~/.config/pragent/, applies PRAGENT_* environment overrides, and
// validates the result. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("pragent")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pragent"))
	}

	v.SetEnvPrefix("PRAGENT")
	v.AutomaticEnv()

	v.SetDefault("templates_dir", defaultTemplatesDir())
	v.SetDefault("default_base_branch", DefaultBaseBranch)
	v.SetDefault("default_max_diff_lines", DefaultMaxDiffLines)
	v.SetDefault("git_timeout_seconds", DefaultGitTimeoutSeconds)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// defaultTemplatesDir prefers a templates/ directory next to the
// executable (the install layout) and falls back to ./templates (the
// development layout).
func defaultTemplatesDir() string {
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), "templates")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return "templates"
}
