package matcher

import "github.com/hashicorp/go-hclog"

// DefaultThreshold is the tie window used when none is configured
const DefaultThreshold = 0.05

// Option configures a Matcher
type Option func(*Matcher)

// WithThreshold sets the range below the best score within which candidates
// are considered equal
func WithThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.threshold = threshold
	}
}

// WithDropExact omits records for items found verbatim in the target list
func WithDropExact(drop bool) Option {
	return func(m *Matcher) {
		m.dropExact = drop
	}
}

// WithWorkers sets the number of concurrent workers used by MatchParallel
func WithWorkers(n int) Option {
	return func(m *Matcher) {
		m.workers = n
	}
}

// WithLogger sets the logger used for per-item debug output
func WithLogger(logger hclog.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}
