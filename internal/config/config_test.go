package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches to dir for the duration of the test so Load picks up
// (or misses) a config file deterministically.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir()) // keep a real ~/.config/pragent out of the test

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "templates", cfg.TemplatesDir)
	assert.Equal(t, "main", cfg.DefaultBase)
	assert.Equal(t, 500, cfg.MaxDiffLines)
	assert.Equal(t, 30*time.Second, cfg.GitTimeout())
}

func TestLoad_ConfigFileOverrides(t *testing.T) {
	dir := t.TempDir()
	content := "templates_dir: /opt/pragent/templates\ndefault_base_branch: develop\ndefault_max_diff_lines: 1000\ngit_timeout_seconds: 5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pragent.yaml"), []byte(content), 0o644))
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/opt/pragent/templates", cfg.TemplatesDir)
	assert.Equal(t, "develop", cfg.DefaultBase)
	assert.Equal(t, 1000, cfg.MaxDiffLines)
	assert.Equal(t, 5*time.Second, cfg.GitTimeout())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PRAGENT_DEFAULT_BASE_BRANCH", "trunk")
	t.Setenv("PRAGENT_GIT_TIMEOUT_SECONDS", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "trunk", cfg.DefaultBase)
	assert.Equal(t, 10*time.Second, cfg.GitTimeout())
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PRAGENT_DEFAULT_MAX_DIFF_LINES", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_max_diff_lines")
}

func TestValidate(t *testing.T) {
	valid := Config{
		TemplatesDir:      "templates",
		DefaultBase:       "main",
		MaxDiffLines:      500,
		GitTimeoutSeconds: 30,
	}
	assert.NoError(t, valid.Validate())

	for name, mutate := range map[string]func(*Config){
		"empty templates dir": func(c *Config) { c.TemplatesDir = "" },
		"empty base branch":   func(c *Config) { c.DefaultBase = "" },
		"zero diff lines":     func(c *Config) { c.MaxDiffLines = 0 },
		"negative timeout":    func(c *Config) { c.GitTimeoutSeconds = -1 },
	} {
		cfg := valid
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}
