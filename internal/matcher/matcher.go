package matcher

import (
	"context"
	"fmt"
	"iter"
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/jsphpl/redirect-mapper/internal/types"
)

// Matcher finds the best match in a fixed target list for any number of
// source items. It is read-only after construction and safe for concurrent use.
type Matcher struct {
	target    []string
	exact     map[string]struct{}
	threshold float64
	dropExact bool
	workers   int
	logger    hclog.Logger
}

// New creates a Matcher over target. The target list must not be empty and
// the threshold must not be negative.
func New(target []string, opts ...Option) (*Matcher, error) {
	m := &Matcher{
		threshold: DefaultThreshold,
		workers:   1,
		logger:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if len(target) == 0 {
		return nil, fmt.Errorf("%w: target list is empty", ErrInvalidInput)
	}
	if math.IsNaN(m.threshold) || m.threshold < 0 {
		return nil, fmt.Errorf("%w: threshold must be a non-negative number, got %v", ErrInvalidInput, m.threshold)
	}
	if m.workers < 1 {
		m.workers = 1
	}

	m.target = target
	m.exact = make(map[string]struct{}, len(target))
	for _, t := range target {
		m.exact[t] = struct{}{}
	}

	return m, nil
}

// Match is the one-shot form of New followed by (*Matcher).Match.
func Match(source, target []string, threshold float64, dropExact bool) (iter.Seq[types.Record], error) {
	m, err := New(target, WithThreshold(threshold), WithDropExact(dropExact))
	if err != nil {
		return nil, err
	}
	return m.Match(source), nil
}

// Threshold returns the configured tie window
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Workers returns the number of workers used by MatchParallel
func (m *Matcher) Workers() int {
	return m.workers
}

// Match returns a lazy sequence with one record per source item, in source
// order. Exact matches are left out when the Matcher drops them.
func (m *Matcher) Match(source []string) iter.Seq[types.Record] {
	return func(yield func(types.Record) bool) {
		for i, key := range source {
			rec, keep := m.evaluate(i, key)
			if !keep {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// MatchContext is like Match but checks ctx before each source item. When ctx
// is done the sequence yields ctx.Err() once and stops.
func (m *Matcher) MatchContext(ctx context.Context, source []string) iter.Seq2[types.Record, error] {
	return func(yield func(types.Record, error) bool) {
		for i, key := range source {
			if err := ctx.Err(); err != nil {
				yield(types.Record{}, err)
				return
			}
			rec, keep := m.evaluate(i, key)
			if !keep {
				continue
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// evaluate matches a single source item. The boolean is false when the
// record is suppressed.
func (m *Matcher) evaluate(index int, key string) (types.Record, bool) {
	if _, ok := m.exact[key]; ok {
		if m.dropExact {
			m.logger.Trace("dropping exact match", "key", key)
			return types.Record{}, false
		}
		m.logger.Trace("exact match", "key", key)
		return types.NewExactRecord(index, key), true
	}

	rec := Best(key, m.target, m.threshold)
	rec.Index = index
	m.logger.Debug("fuzzy match", "key", key, "match", rec.Match, "score", rec.Score,
		"ambiguous", rec.Ambiguous, "alternatives", len(rec.Alternatives))
	return rec, true
}

// Best scores key against every item of target and selects the winner.
// Every candidate scoring within threshold below the maximum is a winner;
// among winners the highest target index is chosen and the others become
// alternatives, highest index first. Best does not look for exact matches.
func Best(key string, target []string, threshold float64) types.Record {
	rec := types.Record{
		Source:       key,
		Alternatives: []string{},
	}
	if len(target) == 0 {
		return rec
	}
	if math.IsNaN(threshold) || threshold < 0 {
		threshold = 0
	}

	scores := make([]float64, len(target))
	maxScore := math.Inf(-1)
	for i, candidate := range target {
		scores[i] = Score(key, candidate)
		if scores[i] > maxScore {
			maxScore = scores[i]
		}
	}

	// Walk backwards so winners come out in descending index order
	winner := -1
	for i := len(target) - 1; i >= 0; i-- {
		if maxScore-scores[i] > threshold {
			continue
		}
		if winner < 0 {
			winner = i
			continue
		}
		rec.Alternatives = append(rec.Alternatives, target[i])
	}

	rec.Match = target[winner]
	rec.HasMatch = true
	rec.Score = scores[winner]
	rec.Ambiguous = len(rec.Alternatives) > 0
	return rec
}
