package browse

import (
	"sort"

	"shellmark/internal/bookmarks"
	"shellmark/internal/search"
)

// NoSelection marks a Selection without a highlighted candidate.
const NoSelection = -1

// Selection is the ordered candidate list plus the highlighted entry.
// Candidates index into the bookmark list of the surrounding state;
// Selected indexes into Candidates.
//
// Invariant: Selected == NoSelection iff Candidates is empty, otherwise
// 0 <= Selected < len(Candidates).
type Selection struct {
	Candidates []int
	Selected   int
}

// newSelection builds a Selection from candidates and the previously
// highlighted position. An existing highlight is clamped into the new
// candidate range so the cursor survives refiltering; with no prior
// highlight the first candidate is picked.
func newSelection(candidates []int, prevSelected int) Selection {
	if len(candidates) == 0 {
		return Selection{Candidates: candidates, Selected: NoSelection}
	}
	sel := 0
	if prevSelected != NoSelection {
		sel = min(prevSelected, len(candidates)-1)
	}
	return Selection{Candidates: candidates, Selected: sel}
}

func identityCandidates(n int) []int {
	candidates := make([]int, n)
	for i := range candidates {
		candidates[i] = i
	}
	return candidates
}

// recomputeSelection rebuilds the candidate list for the given query.
// An empty query yields all bookmarks in storage order. Otherwise each
// bookmark's corpus is scored and only positive scores survive, ordered by
// descending score with ties broken by ascending bookmark index.
func recomputeSelection(list []bookmarks.Bookmark, scorer search.Scorer, query string, prevSelected int) Selection {
	if query == "" {
		return newSelection(identityCandidates(len(list)), prevSelected)
	}

	type ranked struct {
		idx   int
		score int
	}
	matches := make([]ranked, 0, len(list))
	for i, bm := range list {
		score, ok := scorer.Score(bm.Corpus(), query)
		if !ok || score <= 0 {
			continue
		}
		matches = append(matches, ranked{idx: i, score: score})
	}
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].score > matches[b].score
	})

	candidates := make([]int, len(matches))
	for i, m := range matches {
		candidates[i] = m.idx
	}
	return newSelection(candidates, prevSelected)
}

// MoveHighlight shifts the highlight one step, clamped to the candidate
// range without wrapping. With no candidates it is a no-op; with candidates
// but no highlight it highlights the first one.
func (s Selection) MoveHighlight(dir MoveDirection) Selection {
	if len(s.Candidates) == 0 {
		return s
	}
	if s.Selected == NoSelection {
		return Selection{Candidates: s.Candidates, Selected: 0}
	}
	next := s.Selected + dir.delta()
	if next < 0 {
		next = 0
	}
	if next > len(s.Candidates)-1 {
		next = len(s.Candidates) - 1
	}
	return Selection{Candidates: s.Candidates, Selected: next}
}

// HasSelection reports whether a candidate is highlighted.
func (s Selection) HasSelection() bool { return s.Selected != NoSelection }

// Equal compares two selections by value.
func (s Selection) Equal(other Selection) bool {
	if s.Selected != other.Selected || len(s.Candidates) != len(other.Candidates) {
		return false
	}
	for i, c := range s.Candidates {
		if other.Candidates[i] != c {
			return false
		}
	}
	return true
}
