package search

import (
	"github.com/nikbrunner/rum/internal/model"
	"github.com/sahilm/fuzzy"
)

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Group          model.Group
	MatchedIndexes []int
	Score          int
}

// groupNames implements fuzzy.Source for a group slice.
type groupNames []model.Group

func (g groupNames) String(i int) string {
	return g[i].GroupName
}

func (g groupNames) Len() int {
	return len(g)
}

// FuzzySearchGroups searches groups by name using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchGroups(groups []model.Group, query string) []SearchResult {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, groupNames(groups))

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Group:          groups[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}

// MatchingIDs returns the set of group IDs matching query.
// An empty query matches nothing; callers treat that as "no filter".
func MatchingIDs(groups []model.Group, query string) map[string]bool {
	results := FuzzySearchGroups(groups, query)
	ids := make(map[string]bool, len(results))
	for _, r := range results {
		ids[r.Group.GroupID] = true
	}
	return ids
}
