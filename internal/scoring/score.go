// Package scoring computes local-alignment similarity between a query and a candidate.
package scoring

import (
	"golang.org/x/text/cases"
)

const (
	matchReward = 16
	gapPenalty  = -1
	// mismatch can never beat restarting at zero, and adding it to any
	// reachable cell value stays well inside int range
	mismatchPenalty = -1 << 30
)

// Fold returns the case-folded scalar sequence of s
func Fold(s string) []rune {
	return []rune(cases.Fold().String(s))
}

// Score returns the similarity of candidate to query. An empty query scores 0.
func Score(query, candidate string) int {
	if query == "" {
		return 0
	}
	return ScoreFolded(Fold(query), Fold(candidate))
}

// ScoreFolded scores two already folded sequences with a Smith-Waterman
// recurrence. Only one row of the grid is kept; the row runs over the shorter
// sequence since the score is symmetric in its arguments.
func ScoreFolded(query, candidate []rune) int {
	if len(query) == 0 || len(candidate) == 0 {
		return 0
	}

	outer, inner := query, candidate
	if len(inner) > len(outer) {
		outer, inner = inner, outer
	}

	row := make([]int, len(inner)+1)
	best := 0

	for _, a := range outer {
		diag := 0 // row[0] of the previous row is always 0
		for j := 1; j <= len(inner); j++ {
			up := row[j]

			step := mismatchPenalty
			if a == inner[j-1] {
				step = matchReward
			}

			cell := max(0, diag+step, up+gapPenalty, row[j-1]+gapPenalty)

			diag = up
			row[j] = cell
			if cell > best {
				best = cell
			}
		}
	}

	return best
}
