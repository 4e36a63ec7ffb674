package matcher

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsphpl/redirect-mapper/internal/types"
)

func collect(t *testing.T, seq func(func(types.Record, error) bool)) ([]types.Record, error) {
	t.Helper()
	var out []types.Record
	for rec, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func TestNew_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		target []string
		opts   []Option
	}{
		{"nil target", nil, nil},
		{"empty target", []string{}, nil},
		{"negative threshold", []string{"a"}, []Option{WithThreshold(-0.01)}},
		{"NaN threshold", []string{"a"}, []Option{WithThreshold(math.NaN())}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.target, tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, m)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	m, err := New([]string{"a"}, WithWorkers(0))
	require.NoError(t, err)
	assert.Equal(t, DefaultThreshold, m.Threshold())
	assert.Equal(t, 1, m.Workers())
}

func TestMatch_ExactMatch(t *testing.T) {
	seq, err := Match([]string{"apple"}, []string{"apple", "apply"}, 0.05, false)
	require.NoError(t, err)

	records := slices.Collect(seq)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "apple", rec.Source)
	assert.Equal(t, "apple", rec.Match)
	assert.True(t, rec.HasMatch)
	assert.Equal(t, 1.0, rec.Score)
	assert.False(t, rec.Ambiguous)
	assert.True(t, rec.Exact)
	assert.Empty(t, rec.Alternatives)
}

func TestMatch_AmbiguousWindow(t *testing.T) {
	seq, err := Match([]string{"kitten"}, []string{"sitting", "bitten"}, 0.5, false)
	require.NoError(t, err)

	records := slices.Collect(seq)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "bitten", rec.Match)
	assert.Equal(t, 0.92, rec.Score)
	assert.True(t, rec.Ambiguous)
	assert.False(t, rec.Exact)
	assert.Equal(t, []string{"sitting"}, rec.Alternatives)
}

func TestMatch_EmptyTarget(t *testing.T) {
	seq, err := Match([]string{"kitten"}, nil, 0.05, false)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, seq)
}

func TestMatch_EmptySource(t *testing.T) {
	seq, err := Match(nil, []string{"a"}, 0.05, false)
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(seq))
}

func TestMatch_DropExact(t *testing.T) {
	source := []string{"apple", "aple", "apply", "banana"}
	target := []string{"apple", "apply", "bandana"}

	seq, err := Match(source, target, 0.05, true)
	require.NoError(t, err)
	records := slices.Collect(seq)

	require.Len(t, records, 2)
	assert.Equal(t, "aple", records[0].Source)
	assert.Equal(t, 1, records[0].Index)
	assert.Equal(t, "banana", records[1].Source)
	assert.Equal(t, 3, records[1].Index)
	for _, rec := range records {
		assert.False(t, rec.Exact)
	}
}

func TestMatch_ExactIsCaseSensitive(t *testing.T) {
	seq, err := Match([]string{"Apple"}, []string{"apple"}, 0, false)
	require.NoError(t, err)
	records := slices.Collect(seq)

	require.Len(t, records, 1)
	assert.False(t, records[0].Exact)
	assert.Equal(t, "apple", records[0].Match)
	assert.Equal(t, 0.9, records[0].Score)
}

func TestMatch_OrderPreserved(t *testing.T) {
	source := []string{"/c", "/a", "/b", "/zz", "/a"}
	target := []string{"/a", "/b", "/c"}

	m, err := New(target)
	require.NoError(t, err)

	var got []string
	for rec := range m.Match(source) {
		got = append(got, rec.Source)
	}
	assert.Equal(t, source, got)
}

func TestMatch_StopsEarly(t *testing.T) {
	m, err := New([]string{"a", "b"})
	require.NoError(t, err)

	n := 0
	for range m.Match([]string{"a", "b", "c", "d"}) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestBest_TieBreakHighestIndex(t *testing.T) {
	rec := Best("c", []string{"a", "b"}, 0)

	assert.Equal(t, "b", rec.Match)
	assert.Equal(t, 0.5, rec.Score)
	assert.True(t, rec.Ambiguous)
	assert.Equal(t, []string{"a"}, rec.Alternatives)
}

func TestBest_AlternativesDescendingIndex(t *testing.T) {
	rec := Best("x0", []string{"x1", "x2", "zz", "x3"}, 0)

	assert.Equal(t, "x3", rec.Match)
	assert.Equal(t, 0.75, rec.Score)
	assert.Equal(t, []string{"x2", "x1"}, rec.Alternatives)
}

func TestBest_StrictWinner(t *testing.T) {
	rec := Best("kitten", []string{"sitting", "bitten"}, 0.05)

	assert.Equal(t, "bitten", rec.Match)
	assert.False(t, rec.Ambiguous)
	assert.NotNil(t, rec.Alternatives)
	assert.Empty(t, rec.Alternatives)
}

func TestBest_NegativeThresholdTreatedAsZero(t *testing.T) {
	rec := Best("c", []string{"a", "b"}, -1)
	assert.Equal(t, "b", rec.Match)
	assert.Equal(t, []string{"a"}, rec.Alternatives)
}

func TestBest_EmptyTarget(t *testing.T) {
	rec := Best("c", nil, 0.05)
	assert.False(t, rec.HasMatch)
	assert.Empty(t, rec.Match)
}

func TestBest_WindowCorrectness(t *testing.T) {
	target := []string{
		"/blog/hello-world",
		"/news/hello-world",
		"/blog/hello-word",
		"/about-us",
		"/contact",
		"/blog/goodbye-world",
	}
	keys := []string{"/blog/2019/hello-world", "/about", "/kontakt", "/hello"}

	for _, threshold := range []float64{0, 0.05, 0.1, 0.3} {
		for _, key := range keys {
			t.Run(fmt.Sprintf("%s@%v", key, threshold), func(t *testing.T) {
				rec := Best(key, target, threshold)

				maxScore := 0.0
				for _, c := range target {
					maxScore = max(maxScore, Score(key, c))
				}

				// Expected winners, highest index first
				var want []string
				for i := len(target) - 1; i >= 0; i-- {
					if maxScore-Score(key, target[i]) <= threshold {
						want = append(want, target[i])
					}
				}
				require.NotEmpty(t, want)

				assert.Equal(t, want[0], rec.Match)
				assert.Equal(t, Score(key, want[0]), rec.Score)
				assert.Equal(t, want[1:], rec.Alternatives)

				winners := append([]string{rec.Match}, rec.Alternatives...)
				for _, c := range target {
					inWindow := maxScore-Score(key, c) <= threshold
					assert.Equal(t, inWindow, slices.Contains(winners, c), "candidate %q", c)
				}
				assert.Equal(t, len(rec.Alternatives) > 0, rec.Ambiguous)
			})
		}
	}
}

func TestMatchContext_Canceled(t *testing.T) {
	m, err := New([]string{"a"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records, err := collect(t, m.MatchContext(ctx, []string{"a", "b"}))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, records)
}

func TestMatchContext_CancelMidway(t *testing.T) {
	m, err := New([]string{"a", "b"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var records []types.Record
	var gotErr error
	for rec, err := range m.MatchContext(ctx, []string{"a", "b", "c"}) {
		if err != nil {
			gotErr = err
			break
		}
		records = append(records, rec)
		cancel()
	}

	assert.ErrorIs(t, gotErr, context.Canceled)
	require.Len(t, records, 1)
	assert.Equal(t, "a", records[0].Source)
}

func TestMatcher_LogsFuzzyMatches(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "test",
		Output: &buf,
		Level:  hclog.Debug,
	})

	m, err := New([]string{"kitten"}, WithLogger(logger))
	require.NoError(t, err)
	slices.Collect(m.Match([]string{"sitting", "kitten"}))

	out := buf.String()
	assert.Contains(t, out, "fuzzy match")
	assert.Contains(t, out, "key=sitting")
	assert.NotContains(t, out, "exact match")
}
