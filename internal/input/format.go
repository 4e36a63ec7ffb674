// Package input reads the source and target item lists.
package input

import (
	"path/filepath"
	"strings"
)

// Format represents an input list format
type Format string

const (
	FormatAuto    Format = "auto"
	FormatLines   Format = "lines"
	FormatSitemap Format = "sitemap"
	FormatHTML    Format = "html"
)

// ValidFormats returns all supported input format names
func ValidFormats() []string {
	return []string{
		string(FormatAuto),
		string(FormatLines),
		string(FormatSitemap),
		string(FormatHTML),
	}
}

// IsValidFormat checks if the given format string is supported
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats() {
		if f == format {
			return true
		}
	}
	return false
}

// DetectFormat picks a format from the file extension
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FormatSitemap
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatLines
	}
}
