package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphpl/redirect-mapper/internal/types"
)

// ApacheRenderer renders mod_alias Redirect directives.
// Ambiguous redirects are written commented out for manual review.
type ApacheRenderer struct{}

// Render writes the records as Apache Redirect directives
func (r *ApacheRenderer) Render(w io.Writer, run *types.Run) error {
	fmt.Fprintf(w, "# redirect-mapper: %s -> %s (threshold %s)\n", run.SourcePath, run.TargetPath, formatScore(run.Threshold))

	return run.Each(func(rec types.Record) error {
		rule, ok := toRule(rec)
		if !ok {
			return nil
		}

		line := fmt.Sprintf("Redirect 301 %s %s", quoteIfNeeded(rule.From, ""), quoteIfNeeded(rule.To, ""))
		if rule.Ambiguous {
			fmt.Fprintf(w, "# ambiguous (%s), alternatives: %s\n", formatScore(rec.Score), strings.Join(rec.Alternatives, ", "))
			line = "# " + line
		}
		_, err := fmt.Fprintln(w, line)
		return err
	})
}
