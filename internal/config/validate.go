package config

import (
	"fmt"
	"math"

	"github.com/jsphpl/redirect-mapper/internal/input"
	"github.com/jsphpl/redirect-mapper/internal/output"
	"github.com/jsphpl/redirect-mapper/internal/pathfilter"
)

// Validate validates the configuration
func Validate(cfg *Config) error {
	// Version check
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (only version 1 is supported)", cfg.Version)
	}

	if cfg.Match != nil {
		if t := cfg.Match.Threshold; t != nil && (math.IsNaN(*t) || *t < 0) {
			return fmt.Errorf("invalid threshold: %v (must not be negative)", *t)
		}
		if w := cfg.Match.Workers; w != nil && *w < 1 {
			return fmt.Errorf("invalid workers: %d (must be at least 1)", *w)
		}
	}

	if cfg.Input != nil {
		if cfg.Input.Format != "" && !input.IsValidFormat(cfg.Input.Format) {
			return fmt.Errorf("invalid input format: %s (must be one of %v)", cfg.Input.Format, input.ValidFormats())
		}
		if err := pathfilter.Validate(cfg.Input.Include); err != nil {
			return fmt.Errorf("invalid include: %w", err)
		}
		if err := pathfilter.Validate(cfg.Input.Exclude); err != nil {
			return fmt.Errorf("invalid exclude: %w", err)
		}
	}

	if cfg.Output != nil {
		if cfg.Output.Format != "" && !output.IsValidFormat(cfg.Output.Format) {
			return fmt.Errorf("invalid output format: %s (must be one of %v)", cfg.Output.Format, output.ValidFormats())
		}

		if cfg.Output.Color != "" {
			switch cfg.Output.Color {
			case "auto", "always", "never":
				// valid
			default:
				return fmt.Errorf("invalid color mode: %s (must be 'auto', 'always', or 'never')", cfg.Output.Color)
			}
		}
	}

	return nil
}
