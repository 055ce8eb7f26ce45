// Package search provides the fuzzy-scoring capability used to rank
// bookmark candidates against the typed query.
package search

import "github.com/sahilm/fuzzy"

// Scorer ranks a single corpus text against a query. ok is false when the
// text does not match at all; non-positive scores are treated as misses by
// the caller. Higher scores are better matches.
type Scorer interface {
	Score(text, query string) (score int, ok bool)
}

// FuzzyScorer scores with sahilm/fuzzy's subsequence matcher.
type FuzzyScorer struct{}

// Score implements Scorer.
func (FuzzyScorer) Score(text, query string) (int, bool) {
	if query == "" {
		return 0, false
	}
	matches := fuzzy.Find(query, []string{text})
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Score, true
}
