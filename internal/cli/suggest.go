package cli

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// closestMatch returns the candidate nearest to input by edit distance.
// Matching ignores case; candidates further than a third of the input length
// (at least two edits) are not considered.
func closestMatch(input string, candidates []string) (string, bool) {
	maxDist := len(input) / 3
	if maxDist < 2 {
		maxDist = 2
	}

	best, bestDist := "", maxDist+1
	lower := strings.ToLower(input)
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}

// didYouMean formats a suggestion for input, or returns "" when nothing is close.
func didYouMean(input string, candidates []string) string {
	if m, ok := closestMatch(input, candidates); ok && m != input {
		return "did you mean '" + m + "'?"
	}
	return ""
}
