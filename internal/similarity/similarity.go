// Package similarity rates how close a typed answer is to an expected one.
//
// Scores are integer percentages: 100 for identical strings, near 0 for
// strings with nothing in common. Callers normalize their input before
// scoring; the scorers compare exactly what they are given.
package similarity

import (
	"math"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Scorer rates the similarity of two strings as a percentage in [0, 100].
type Scorer interface {
	Score(a, b string) int
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(a, b string) int

// Score calls f(a, b).
func (f ScorerFunc) Score(a, b string) int { return f(a, b) }

// Ratio returns the Ratcliff/Obershelp ratio of a and b as a percentage:
// twice the number of matched runes over the total rune count.
// Two empty strings score 100.
func Ratio(a, b string) int {
	m := difflib.NewMatcher(runes(a), runes(b))
	return percent(m.Ratio())
}

// runes splits s into single-rune elements so the matcher works on
// characters rather than lines.
func runes(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}

// percent converts a 0..1 similarity to a clamped integer percentage,
// rounding half to even.
func percent(f float64) int {
	p := int(math.RoundToEven(100 * f))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
