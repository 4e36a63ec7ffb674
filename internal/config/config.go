// Package config handles loading and validating redirect-mapper configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// FileName is the configuration file searched for in the working directory
const FileName = ".redirect-mapper.hcl"

// Config represents the redirect-mapper configuration
type Config struct {
	Version int           `hcl:"version,attr"`
	Match   *MatchConfig  `hcl:"match,block"`
	Input   *InputConfig  `hcl:"input,block"`
	Output  *OutputConfig `hcl:"output,block"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
}

// MatchConfig defines matching settings
type MatchConfig struct {
	Threshold *float64 `hcl:"threshold,optional"`
	DropExact *bool    `hcl:"drop_exact,optional"`
	Workers   *int     `hcl:"workers,optional"`
}

// InputConfig defines how the item lists are read and filtered
type InputConfig struct {
	Format    string   `hcl:"format,optional"`
	SkipBlank *bool    `hcl:"skip_blank,optional"`
	TrimSpace *bool    `hcl:"trim_space,optional"`
	Include   []string `hcl:"include,optional"`
	Exclude   []string `hcl:"exclude,optional"`
}

// OutputConfig defines output settings
type OutputConfig struct {
	Format    string `hcl:"format,optional"`
	Color     string `hcl:"color,optional"`
	Delimiter string `hcl:"delimiter,optional"`
}

// ConfigPath returns the path to the loaded config file, or empty if using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Threshold returns the configured tie window
func (c *Config) Threshold() float64 {
	return *c.Match.Threshold
}

// DropExact returns whether exact matches are omitted
func (c *Config) DropExact() bool {
	return *c.Match.DropExact
}

// Workers returns the configured number of matching workers
func (c *Config) Workers() int {
	return *c.Match.Workers
}

// Load loads configuration from the specified path or searches for it
// Search order: configPath (if provided), .redirect-mapper.hcl in cwd
func Load(configPath string) (*Config, error) {
	var path string

	if configPath != "" {
		// Explicit path provided
		path = configPath
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		path = findConfigFile()
	}

	if path == "" {
		// No config found, use defaults
		return Default(), nil
	}

	return loadFromFile(path)
}

// findConfigFile searches for .redirect-mapper.hcl in the working directory
func findConfigFile() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	cwdPath := filepath.Join(cwd, FileName)
	if _, err := os.Stat(cwdPath); err == nil {
		return cwdPath
	}
	return ""
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, evalContext(), &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}

	config.configPath = path

	// Apply defaults for missing optional blocks
	applyDefaults(&config)

	// Validate
	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// evalContext exposes the process environment as env.NAME
func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		env[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}

// applyDefaults fills in default values for missing optional config blocks
func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Match == nil {
		cfg.Match = defaults.Match
	} else {
		if cfg.Match.Threshold == nil {
			cfg.Match.Threshold = defaults.Match.Threshold
		}
		if cfg.Match.DropExact == nil {
			cfg.Match.DropExact = defaults.Match.DropExact
		}
		if cfg.Match.Workers == nil {
			cfg.Match.Workers = defaults.Match.Workers
		}
	}

	if cfg.Input == nil {
		cfg.Input = defaults.Input
	} else {
		if cfg.Input.Format == "" {
			cfg.Input.Format = defaults.Input.Format
		}
		if cfg.Input.SkipBlank == nil {
			cfg.Input.SkipBlank = defaults.Input.SkipBlank
		}
		if cfg.Input.TrimSpace == nil {
			cfg.Input.TrimSpace = defaults.Input.TrimSpace
		}
	}

	if cfg.Output == nil {
		cfg.Output = defaults.Output
	} else {
		if cfg.Output.Format == "" {
			cfg.Output.Format = defaults.Output.Format
		}
		if cfg.Output.Color == "" {
			cfg.Output.Color = defaults.Output.Color
		}
		if cfg.Output.Delimiter == "" {
			cfg.Output.Delimiter = defaults.Output.Delimiter
		}
	}
}
