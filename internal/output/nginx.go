package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphpl/redirect-mapper/internal/types"
)

// NginxRenderer renders a map block for use with
// `if ($redirect_target) { return 301 $redirect_target; }`.
// Ambiguous redirects are written commented out for manual review.
type NginxRenderer struct{}

// Render writes the records as an nginx map block
func (r *NginxRenderer) Render(w io.Writer, run *types.Run) error {
	fmt.Fprintf(w, "# redirect-mapper: %s -> %s (threshold %s)\n", run.SourcePath, run.TargetPath, formatScore(run.Threshold))
	fmt.Fprintln(w, "map $request_uri $redirect_target {")
	fmt.Fprintln(w, `    default "";`)

	err := run.Each(func(rec types.Record) error {
		rule, ok := toRule(rec)
		if !ok {
			return nil
		}

		line := fmt.Sprintf("%s %s;", quoteIfNeeded(rule.From, ";{}"), quoteIfNeeded(rule.To, ";{}"))
		if rule.Ambiguous {
			fmt.Fprintf(w, "    # ambiguous (%s), alternatives: %s\n", formatScore(rec.Score), strings.Join(rec.Alternatives, ", "))
			line = "# " + line
		}
		_, err := fmt.Fprintf(w, "    %s\n", line)
		return err
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, "}")
	return err
}
