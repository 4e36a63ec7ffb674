package output

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/jsphpl/redirect-mapper/internal/types"
)

// csvHeader is the fixed column order of CSV output
var csvHeader = []string{"Item (list1)", "Match (list2)", "Score", "Ambiguous", "Exact", "Alternatives"}

// CSVRenderer renders one row per record, streaming as records arrive
type CSVRenderer struct {
	// Delimiter joins alternatives inside the Alternatives cell
	Delimiter string
}

// Render writes the records in CSV format
func (r *CSVRenderer) Render(w io.Writer, run *types.Run) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	err := run.Each(func(rec types.Record) error {
		return writer.Write(r.row(rec))
	})
	if err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}

func (r *CSVRenderer) row(rec types.Record) []string {
	match, score := "", ""
	if rec.HasMatch {
		match = rec.Match
		score = formatScore(rec.Score)
	}

	return []string{
		rec.Source,
		match,
		score,
		formatBool(rec.Ambiguous),
		formatBool(rec.Exact),
		strings.Join(rec.Alternatives, r.Delimiter),
	}
}

// formatBool renders booleans as True/False
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
