package input

import (
	"bufio"
	"io"
	"strings"
)

// maxLineSize bounds a single item; sitemap URLs are far shorter
const maxLineSize = 1024 * 1024

// LineOptions controls how newline-delimited lists are read
type LineOptions struct {
	// SkipBlank drops lines that are empty after trimming
	SkipBlank bool

	// TrimSpace strips leading and trailing whitespace from every line
	TrimSpace bool
}

// DefaultLineOptions returns the options used when none are configured
func DefaultLineOptions() LineOptions {
	return LineOptions{SkipBlank: true}
}

// ReadLines reads one item per line. Line terminators (\n or \r\n) are
// removed; everything else is kept verbatim unless TrimSpace is set.
func ReadLines(r io.Reader, opts LineOptions) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var items []string
	for scanner.Scan() {
		line := scanner.Text()
		if opts.TrimSpace {
			line = strings.TrimSpace(line)
		}
		if opts.SkipBlank && strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
