package output

import (
	"encoding/json"
	"io"

	"github.com/jsphpl/redirect-mapper/internal/types"
)

// JSONRenderer renders output in JSON format
type JSONRenderer struct{}

// jsonRecord adds the derived kind to a record
type jsonRecord struct {
	types.Record
	Kind types.Kind `json:"kind"`
}

// jsonOutput is the structure for JSON output
type jsonOutput struct {
	Version     string        `json:"version"`
	SourcePath  string        `json:"source_path"`
	TargetPath  string        `json:"target_path"`
	SourceCount int           `json:"source_count"`
	TargetCount int           `json:"target_count"`
	Threshold   float64       `json:"threshold"`
	DropExact   bool          `json:"drop_exact"`
	Records     []jsonRecord  `json:"records"`
	Summary     types.Summary `json:"summary"`
}

// Render writes the run as a single JSON document
func (r *JSONRenderer) Render(w io.Writer, run *types.Run) error {
	records := make([]jsonRecord, 0, run.SourceCount)
	err := run.Each(func(rec types.Record) error {
		records = append(records, jsonRecord{Record: rec, Kind: rec.Kind()})
		return nil
	})
	if err != nil {
		return err
	}

	output := jsonOutput{
		Version:     "1.0",
		SourcePath:  run.SourcePath,
		TargetPath:  run.TargetPath,
		SourceCount: run.SourceCount,
		TargetCount: run.TargetCount,
		Threshold:   run.Threshold,
		DropExact:   run.DropExact,
		Records:     records,
		Summary:     run.Summary,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
