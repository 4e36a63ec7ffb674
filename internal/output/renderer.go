// Package output renders match records for the console, for files and for
// web server redirect maps.
package output

import (
	"io"

	"github.com/jsphpl/redirect-mapper/internal/types"
)

// Renderer defines the interface for output renderers
type Renderer interface {
	// Render consumes the run's records and writes them to the writer
	Render(w io.Writer, run *types.Run) error
}

// Format represents an output format
type Format string

const (
	FormatText    Format = "text"
	FormatCSV     Format = "csv"
	FormatJSON    Format = "json"
	FormatCompact Format = "compact"
	FormatNginx   Format = "nginx"
	FormatApache  Format = "apache"
)

// DefaultDelimiter separates alternatives inside a single CSV cell
const DefaultDelimiter = "|"

// Options holds renderer settings shared across formats
type Options struct {
	ColorEnabled bool
	Delimiter    string
}

// NewRenderer creates a renderer for the given format
func NewRenderer(format Format, opts Options) Renderer {
	switch format {
	case FormatCSV:
		delim := opts.Delimiter
		if delim == "" {
			delim = DefaultDelimiter
		}
		return &CSVRenderer{Delimiter: delim}
	case FormatJSON:
		return &JSONRenderer{}
	case FormatCompact:
		return &CompactRenderer{}
	case FormatNginx:
		return &NginxRenderer{}
	case FormatApache:
		return &ApacheRenderer{}
	default:
		return &TextRenderer{ColorEnabled: opts.ColorEnabled}
	}
}

// ValidFormats returns all supported output format names
func ValidFormats() []string {
	return []string{
		string(FormatText),
		string(FormatCSV),
		string(FormatJSON),
		string(FormatCompact),
		string(FormatNginx),
		string(FormatApache),
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
