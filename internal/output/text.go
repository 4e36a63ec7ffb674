package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/jsphpl/redirect-mapper/internal/types"
)

// TextRenderer renders output in human-readable text format
type TextRenderer struct {
	ColorEnabled bool
}

// Render writes the records in text format
func (r *TextRenderer) Render(w io.Writer, run *types.Run) error {
	// Header
	fmt.Fprintf(w, "redirect-mapper: mapping %s -> %s\n", run.SourcePath, run.TargetPath)
	fmt.Fprintf(w, "%d lines in list1, %d lines in list2, threshold %s\n\n",
		run.SourceCount, run.TargetCount, formatScore(run.Threshold))

	// Records
	err := run.Each(func(rec types.Record) error {
		r.renderRecord(w, rec)
		return nil
	})
	if err != nil {
		return err
	}

	// Separator
	fmt.Fprintln(w, strings.Repeat("-", 60))

	// Summary
	r.renderSummary(w, run.Summary)

	return nil
}

func (r *TextRenderer) renderRecord(w io.Writer, rec types.Record) {
	kind := r.colorKind(rec.Kind())
	match := rec.Match
	score := formatScore(rec.Score)
	if !rec.HasMatch {
		match = "(none)"
		score = "-"
	}
	fmt.Fprintf(w, "%s  %4s  %s -> %s\n", kind, score, rec.Source, match)

	for _, alt := range rec.Alternatives {
		fmt.Fprintf(w, "    or %s\n", alt)
	}
}

func (r *TextRenderer) renderSummary(w io.Writer, s types.Summary) {
	parts := []string{}

	if s.Exact > 0 {
		parts = append(parts, fmt.Sprintf("%d exact", s.Exact))
	}
	if s.Fuzzy > 0 {
		parts = append(parts, fmt.Sprintf("%d fuzzy", s.Fuzzy))
	}
	if s.Ambiguous > 0 {
		parts = append(parts, r.paint(color.New(color.FgYellow), fmt.Sprintf("%d ambiguous", s.Ambiguous)))
	}
	if s.Dropped > 0 {
		parts = append(parts, fmt.Sprintf("%d exact dropped", s.Dropped))
	}

	if len(parts) == 0 {
		parts = append(parts, "no items to map")
	}

	fmt.Fprintf(w, "Summary: %s\n", strings.Join(parts, ", "))
}

// colorKind pads the kind label to a fixed width before coloring it
func (r *TextRenderer) colorKind(k types.Kind) string {
	str := fmt.Sprintf("%-9s", k.String())

	switch k {
	case types.KindExact:
		return r.paint(color.New(color.FgGreen), str)
	case types.KindAmbiguous:
		return r.paint(color.New(color.FgYellow, color.Bold), str)
	case types.KindFuzzy:
		return r.paint(color.New(color.FgCyan), str)
	default:
		return str
	}
}

func (r *TextRenderer) paint(c *color.Color, s string) string {
	if !r.ColorEnabled {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}

// formatScore renders a score with two fraction digits
func formatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}
