// Package pathfilter provides glob-based item filtering using doublestar patterns.
package pathfilter

import (
	"fmt"
	"net/url"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter holds the include and exclude patterns for item filtering
type Filter struct {
	include []string
	exclude []string
}

// New creates a new Filter with the given include and exclude patterns.
// An empty include list includes every item.
func New(include, exclude []string) *Filter {
	return &Filter{
		include: include,
		exclude: exclude,
	}
}

// Empty reports whether the filter lets every item through
func (f *Filter) Empty() bool {
	return len(f.include) == 0 && len(f.exclude) == 0
}

// Subject returns the string patterns are matched against: the path of an
// absolute URL, or the item itself.
func Subject(item string) string {
	u, err := url.Parse(item)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return item
	}
	if u.Path == "" {
		return "/"
	}
	return u.Path
}

// Match checks if a single item matches the filter criteria
func (f *Filter) Match(item string) (bool, error) {
	subject := Subject(item)

	// Check if it matches any include pattern
	included := len(f.include) == 0
	for _, pattern := range f.include {
		match, err := doublestar.Match(pattern, subject)
		if err != nil {
			return false, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		if match {
			included = true
			break
		}
	}

	if !included {
		return false, nil
	}

	// Check if it matches any exclude pattern
	for _, pattern := range f.exclude {
		match, err := doublestar.Match(pattern, subject)
		if err != nil {
			return false, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		if match {
			return false, nil
		}
	}

	return true, nil
}

// Apply returns the items that pass the filter, preserving their order
func (f *Filter) Apply(items []string) ([]string, error) {
	if f.Empty() {
		return items, nil
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		ok, err := f.Match(item)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, item)
		}
	}
	return result, nil
}

// Validate checks that every pattern is a well-formed doublestar glob
func Validate(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid glob pattern: %q", p)
		}
	}
	return nil
}
