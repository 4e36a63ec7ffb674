package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1, cfg.Version)
	assert.Empty(t, cfg.ConfigPath())

	require.NotNil(t, cfg.Match)
	assert.Equal(t, 0.05, cfg.Threshold())
	assert.False(t, cfg.DropExact())
	assert.Equal(t, 1, cfg.Workers())

	require.NotNil(t, cfg.Input)
	assert.Equal(t, "auto", cfg.Input.Format)
	assert.True(t, *cfg.Input.SkipBlank)
	assert.False(t, *cfg.Input.TrimSpace)

	require.NotNil(t, cfg.Output)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Equal(t, "|", cfg.Output.Delimiter)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	configPath := writeConfig(t, `
version = 1

match {
  threshold  = 0.1
  drop_exact = true
  workers    = 4
}

input {
  format     = "sitemap"
  trim_space = true
  include    = ["/blog/**"]
  exclude    = ["/**/*.pdf", "/wp-admin/**"]
}

output {
  format    = "csv"
  color     = "never"
  delimiter = ";"
}
`)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, configPath, cfg.ConfigPath())
	assert.Equal(t, 0.1, cfg.Threshold())
	assert.True(t, cfg.DropExact())
	assert.Equal(t, 4, cfg.Workers())

	assert.Equal(t, "sitemap", cfg.Input.Format)
	assert.True(t, *cfg.Input.SkipBlank, "skip_blank keeps its default")
	assert.True(t, *cfg.Input.TrimSpace)
	assert.Equal(t, []string{"/blog/**"}, cfg.Input.Include)
	assert.Equal(t, []string{"/**/*.pdf", "/wp-admin/**"}, cfg.Input.Exclude)

	assert.Equal(t, "csv", cfg.Output.Format)
	assert.Equal(t, "never", cfg.Output.Color)
	assert.Equal(t, ";", cfg.Output.Delimiter)
}

func TestLoadPartialConfig(t *testing.T) {
	configPath := writeConfig(t, `
version = 1

match {
  workers = 2
}
`)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, DefaultThreshold, cfg.Threshold())
	assert.Equal(t, 2, cfg.Workers())
	require.NotNil(t, cfg.Output)
	assert.Equal(t, "text", cfg.Output.Format)
	require.NotNil(t, cfg.Input)
	assert.Equal(t, "auto", cfg.Input.Format)
}

func TestLoadEnvVariables(t *testing.T) {
	t.Setenv("RM_TEST_THRESHOLD", "0.2")
	t.Setenv("RM_TEST_FORMAT", "json")

	configPath := writeConfig(t, `
version = 1

match {
  threshold = env.RM_TEST_THRESHOLD
}

output {
  format = env.RM_TEST_FORMAT
}
`)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, 0.2, cfg.Threshold())
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadNoConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.ConfigPath(), "expected defaults")
}

func TestLoadFindsConfigInWorkingDirectory(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(FileName, []byte("version = 1\nmatch {\n  threshold = 0.3\n}\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0.3, cfg.Threshold())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{"bad syntax", "version = \n", "failed to parse config file"},
		{"missing version", "match {}\n", "failed to decode config"},
		{"unknown block", "version = 1\nrules {}\n", "failed to decode config"},
		{"unsupported version", "version = 2\n", "unsupported config version"},
		{"negative threshold", "version = 1\nmatch {\n  threshold = -0.1\n}\n", "invalid threshold"},
		{"zero workers", "version = 1\nmatch {\n  workers = 0\n}\n", "invalid workers"},
		{"bad output format", "version = 1\noutput {\n  format = \"xml\"\n}\n", "invalid output format"},
		{"bad color", "version = 1\noutput {\n  color = \"sometimes\"\n}\n", "invalid color mode"},
		{"bad input format", "version = 1\ninput {\n  format = \"csv\"\n}\n", "invalid input format"},
		{"bad glob", "version = 1\ninput {\n  exclude = [\"/[a-\"]\n}\n", "invalid exclude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestLoadExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestDefaultConfigHCLIsValid(t *testing.T) {
	cfg, err := Load(writeConfig(t, DefaultConfigHCL()))
	require.NoError(t, err, "starter config does not load")

	defaults := Default()
	assert.Equal(t, defaults.Threshold(), cfg.Threshold())
	assert.Equal(t, defaults.DropExact(), cfg.DropExact())
	assert.Equal(t, defaults.Workers(), cfg.Workers())
	assert.Equal(t, defaults.Input.Format, cfg.Input.Format)
	assert.Equal(t, defaults.Output.Format, cfg.Output.Format)
	assert.Equal(t, defaults.Output.Delimiter, cfg.Output.Delimiter)
}
