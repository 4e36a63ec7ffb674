package cli

import (
	"github.com/spf13/cobra"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "redirect-mapper",
	Short: "Generate a redirect map from two sitemaps",
	Long: `redirect-mapper compares an old and a new list of URLs and assigns every
old URL its most similar new URL, to drive a redirect migration.

Items that appear verbatim in the new list are assigned right away, without
computing any distance or checking for ambiguity. All other items are scored
with a normalized Levenshtein similarity; when several new URLs score within
the threshold of the best one, the match is reported as ambiguous.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
