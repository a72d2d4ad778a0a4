package logic

import (
	"sort"

	"fuzz/internal/domain"
	"fuzz/internal/scoring"
)

// rankEntry pairs a candidate with data that never changes during a session
type rankEntry struct {
	domain.Candidate
	folded []rune // case-folded text, computed once
	length int    // text length in scalars
	order  int    // position in the input
}

// CandidateRanker is the in-memory Ranker implementation
type CandidateRanker struct {
	entries []rankEntry
}

// NewCandidateRanker creates a ranker over texts in input order. The initial
// order reflects an empty query.
func NewCandidateRanker(texts []string) *CandidateRanker {
	r := &CandidateRanker{
		entries: make([]rankEntry, len(texts)),
	}
	for i, text := range texts {
		folded := scoring.Fold(text)
		r.entries[i] = rankEntry{
			Candidate: domain.Candidate{Text: text},
			folded:    folded,
			length:    len([]rune(text)),
			order:     i,
		}
	}
	r.Rerank("")
	return r
}

// Rerank rescores all candidates and sorts them by score descending, then by
// length ascending. Remaining ties keep input order so the result depends on
// the query alone.
func (r *CandidateRanker) Rerank(query string) {
	var q []rune
	if query != "" {
		q = scoring.Fold(query)
	}
	for i := range r.entries {
		r.entries[i].Score = scoring.ScoreFolded(q, r.entries[i].folded)
	}

	sort.Slice(r.entries, func(i, j int) bool {
		a, b := &r.entries[i], &r.entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.length != b.length {
			return a.length < b.length
		}
		return a.order < b.order
	})
}

// Candidates returns a copy of the ranked list
func (r *CandidateRanker) Candidates() []domain.Candidate {
	return r.Top(len(r.entries))
}

// Top returns a copy of at most n leading candidates
func (r *CandidateRanker) Top(n int) []domain.Candidate {
	n = min(max(n, 0), len(r.entries))
	out := make([]domain.Candidate, n)
	for i := 0; i < n; i++ {
		out[i] = r.entries[i].Candidate
	}
	return out
}

// Len returns the number of candidates
func (r *CandidateRanker) Len() int {
	return len(r.entries)
}
