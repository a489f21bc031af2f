package recommender

import "sort"

// TopN returns at most n items sorted by descending score. The sort is
// stable, equal scores keep their original (catalog) relative order. An empty
// input yields an empty slice, never nil panics or faults.
func TopN(scored []ScoredItem, n int) []ScoredItem {
	if n <= 0 || len(scored) == 0 {
		return []ScoredItem{}
	}

	ranked := make([]ScoredItem, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
