package config

// DefaultThreshold is the tie window used when none is configured
const DefaultThreshold = 0.05

// Default returns the default configuration
func Default() *Config {
	threshold := DefaultThreshold
	dropExact := false
	workers := 1
	skipBlank := true
	trimSpace := false
	return &Config{
		Version: 1,
		Match: &MatchConfig{
			Threshold: &threshold,
			DropExact: &dropExact,
			Workers:   &workers,
		},
		Input: &InputConfig{
			Format:    "auto",
			SkipBlank: &skipBlank,
			TrimSpace: &trimSpace,
			Include:   []string{},
			Exclude:   []string{},
		},
		Output: &OutputConfig{
			Format:    "text",
			Color:     "auto",
			Delimiter: "|",
		},
	}
}

// DefaultConfigHCL returns the documented starter configuration written by init
func DefaultConfigHCL() string {
	return `# redirect-mapper configuration
# Command line flags take precedence over the values in this file.
# Any expression may read environment variables, e.g. threshold = env.RM_THRESHOLD

version = 1

match {
  # Range below the best score within which candidates count as equal.
  # A source item with more than one candidate in this window is ambiguous.
  threshold = 0.05

  # Omit items that appear verbatim in the target list.
  drop_exact = false

  # Number of source items scored concurrently. Output order is unchanged.
  workers = 1
}

input {
  # auto picks by extension: .xml is a sitemap, .html/.htm a link page,
  # anything else one item per line.
  format = "auto"

  # Drop blank lines and optionally trim surrounding whitespace.
  skip_blank = true
  trim_space = false

  # Glob patterns matched against the URL path (or the raw item).
  include = []
  exclude = []
}

output {
  # text, csv, json, compact, nginx or apache
  format = "text"

  # auto, always or never
  color = "auto"

  # Separator for the Alternatives column in CSV output.
  delimiter = "|"
}
`
}
