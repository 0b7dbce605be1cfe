package discovery

import "sort"

// Rank stable-sorts results by match score descending, breaking ties by
// ascending total cost (cheaper option first). Score ties are common because
// many countries share adjustment patterns, so the tie-break must be explicit
// for reproducibility. Remaining ties keep catalog order via the stable sort.
func Rank(results []ScoreResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].MatchScore != results[j].MatchScore {
			return results[i].MatchScore > results[j].MatchScore
		}
		return results[i].TotalCost < results[j].TotalCost
	})
}

// RankStrategies ranks each bucket in place.
func RankStrategies(s *Strategies) {
	Rank(s.SafeBets)
	Rank(s.FastTrack)
	Rank(s.Moonshots)
}

// TopRanked merges all three buckets under the same ordering and returns the
// best overall result. The second return value is false when every bucket is
// empty.
func TopRanked(s Strategies) (ScoreResult, bool) {
	merged := make([]ScoreResult, 0, len(s.SafeBets)+len(s.FastTrack)+len(s.Moonshots))
	merged = append(merged, s.SafeBets...)
	merged = append(merged, s.FastTrack...)
	merged = append(merged, s.Moonshots...)
	if len(merged) == 0 {
		return ScoreResult{}, false
	}
	Rank(merged)
	return merged[0], true
}
