package input

import (
	"fmt"
	"io"
	"os"
)

// Stdin is the path that reads from standard input
const Stdin = "-"

// Load reads an item list from path. FormatAuto picks a format from the
// file extension; standard input defaults to lines.
func Load(path string, format Format, opts LineOptions) ([]string, error) {
	if format == "" || format == FormatAuto {
		format = DetectFormat(path)
	}
	if !IsValidFormat(string(format)) {
		return nil, fmt.Errorf("unknown input format: %s", format)
	}

	if path == Stdin {
		items, err := Read(os.Stdin, format, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return items, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file does not exist: %s", path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	items, err := Read(f, format, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return items, nil
}

// Read parses an item list from r in the given format
func Read(r io.Reader, format Format, opts LineOptions) ([]string, error) {
	switch format {
	case FormatSitemap:
		return ReadSitemap(r)
	case FormatHTML:
		return ReadHTMLLinks(r)
	case FormatLines, FormatAuto, "":
		return ReadLines(r, opts)
	default:
		return nil, fmt.Errorf("unknown input format: %s", format)
	}
}
