package matcher

import (
	"strconv"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Distance returns the Levenshtein distance between a and b, counted in runes.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Similarity calculates a normalized similarity score between two strings.
// Returns a value between 0.0 (completely different) and 1.0 (identical).
// The formula is: 1 - (levenshtein_distance / (len(a) + len(b)))
func Similarity(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 1.0 // Two empty strings are identical
	}

	return 1.0 - float64(Distance(a, b))/float64(total)
}

// Score is Similarity rounded to two decimal places. All window comparisons
// are made on this value.
func Score(a, b string) float64 {
	return round2(Similarity(a, b))
}

// round2 rounds half to even on the exact decimal value of x.
func round2(x float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	if err != nil {
		return x
	}
	return v
}
