package output

import (
	"net/url"
	"strings"

	"github.com/jsphpl/redirect-mapper/internal/types"
)

// redirectRule is a single source -> target redirect derived from a record
type redirectRule struct {
	From      string
	To        string
	Ambiguous bool
}

// requestPath reduces an absolute URL to the path and query a web server
// sees; anything else is returned unchanged.
func requestPath(item string) string {
	u, err := url.Parse(item)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return item
	}
	return u.RequestURI()
}

// toRule converts a record into a redirect. Records without a match and
// identity redirects (exact matches, or the same path on both sides) yield
// false.
func toRule(rec types.Record) (redirectRule, bool) {
	if !rec.HasMatch || rec.Exact {
		return redirectRule{}, false
	}
	from := requestPath(rec.Source)
	if from == requestPath(rec.Match) {
		return redirectRule{}, false
	}
	return redirectRule{
		From:      from,
		To:        rec.Match,
		Ambiguous: rec.Ambiguous,
	}, true
}

// quoteIfNeeded wraps values containing whitespace or quote characters
func quoteIfNeeded(s string, special string) string {
	if s == "" || strings.ContainsAny(s, " \t\"'"+special) {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return s
}
