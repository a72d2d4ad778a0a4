package logic

import "fuzz/internal/domain"

// Ranker keeps a candidate set ordered by similarity to a query
type Ranker interface {
	// Rerank rescores every candidate against query and reorders the set
	Rerank(query string)
	// Candidates returns a copy of the ranked list, best match first
	Candidates() []domain.Candidate
	// Top returns a copy of at most n leading candidates
	Top(n int) []domain.Candidate
	Len() int
}
