package types

import "iter"

// Record is the outcome of matching a single source item against the target list
type Record struct {
	// Index is the position of Source in the source list
	Index int `json:"index"`

	// Source is the item from the source list (list1)
	Source string `json:"source"`

	// Match is the chosen item from the target list (list2); only meaningful if HasMatch
	Match string `json:"match,omitempty"`

	// HasMatch is false only when no candidate exists at all
	HasMatch bool `json:"has_match"`

	// Score is the rounded similarity of Source and Match
	Score float64 `json:"score"`

	// Ambiguous is set when more than one candidate fell within the threshold
	Ambiguous bool `json:"ambiguous"`

	// Exact is set when Source appears verbatim in the target list
	Exact bool `json:"exact"`

	// Alternatives are the other tied candidates, highest target index first
	Alternatives []string `json:"alternatives"`
}

// NewExactRecord creates the record for a verbatim hit
func NewExactRecord(index int, item string) Record {
	return Record{
		Index:        index,
		Source:       item,
		Match:        item,
		HasMatch:     true,
		Score:        1.0,
		Exact:        true,
		Alternatives: []string{},
	}
}

// Kind returns the classification of the record
func (r Record) Kind() Kind {
	switch {
	case r.Exact:
		return KindExact
	case r.Ambiguous:
		return KindAmbiguous
	default:
		return KindFuzzy
	}
}

// Summary contains counts of records by kind
type Summary struct {
	Total     int `json:"total"`
	Exact     int `json:"exact"`
	Fuzzy     int `json:"fuzzy"`
	Ambiguous int `json:"ambiguous"`
	Dropped   int `json:"dropped"`
}

// Add counts a rendered record
func (s *Summary) Add(r Record) {
	s.Total++
	switch r.Kind() {
	case KindExact:
		s.Exact++
	case KindAmbiguous:
		s.Ambiguous++
	default:
		s.Fuzzy++
	}
}

// Run describes a single mapping run handed to an output renderer
type Run struct {
	// SourcePath is the path the source list was read from
	SourcePath string `json:"source_path"`

	// TargetPath is the path the target list was read from
	TargetPath string `json:"target_path"`

	// SourceCount is the number of items in the source list
	SourceCount int `json:"source_count"`

	// TargetCount is the number of items in the target list
	TargetCount int `json:"target_count"`

	// Threshold is the tie window below the best score
	Threshold float64 `json:"threshold"`

	// DropExact indicates exact matches are omitted from Records
	DropExact bool `json:"drop_exact"`

	// Records is the lazy, single-pass sequence of match records
	Records iter.Seq2[Record, error] `json:"-"`

	// Summary is filled in by the renderer while consuming Records
	Summary Summary `json:"summary"`
}

// NewRun creates a new Run
func NewRun(sourcePath, targetPath string, sourceCount, targetCount int, threshold float64, dropExact bool) *Run {
	return &Run{
		SourcePath:  sourcePath,
		TargetPath:  targetPath,
		SourceCount: sourceCount,
		TargetCount: targetCount,
		Threshold:   threshold,
		DropExact:   dropExact,
	}
}

// Each consumes Records, updating the summary, and calls fn for every record.
// It stops at the first error from the sequence or from fn.
func (r *Run) Each(fn func(Record) error) error {
	r.Summary = Summary{}
	if r.Records == nil {
		return nil
	}
	for rec, err := range r.Records {
		if err != nil {
			return err
		}
		r.Summary.Add(rec)
		if err := fn(rec); err != nil {
			return err
		}
	}
	if r.DropExact {
		r.Summary.Dropped = r.SourceCount - r.Summary.Total
	}
	return nil
}

// Slice returns a sequence over a fixed list of records
func Slice(records []Record) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for _, rec := range records {
			if !yield(rec, nil) {
				return
			}
		}
	}
}
