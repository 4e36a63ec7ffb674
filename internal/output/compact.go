package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphpl/redirect-mapper/internal/types"
)

// CompactRenderer renders output in a condensed single-line-per-record format
// This format is useful for logs and grep
type CompactRenderer struct{}

// Render writes the records in compact format
// Format: index: KIND score source -> match [alternatives]
func (r *CompactRenderer) Render(w io.Writer, run *types.Run) error {
	return run.Each(func(rec types.Record) error {
		match, score := rec.Match, formatScore(rec.Score)
		if !rec.HasMatch {
			match, score = "-", "-"
		}

		line := fmt.Sprintf("%d: %s %s %s -> %s", rec.Index+1, rec.Kind(), score, rec.Source, match)
		if len(rec.Alternatives) > 0 {
			line += " [" + strings.Join(rec.Alternatives, ", ") + "]"
		}
		_, err := fmt.Fprintln(w, line)
		return err
	})
}
