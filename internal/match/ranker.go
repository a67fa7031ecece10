package match

import "sort"

// Rank orders scored candidates deterministically: match score descending,
// then admission-type priority (neighborhood first), then graduation rate
// descending with missing rates last, then original input order. The input
// slice is not modified; the returned slice carries ranks and band labels.
func Rank(items []ScoredCandidate, bands []Band) []ScoredCandidate {
	out := make([]ScoredCandidate, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.MatchScore != b.MatchScore {
			return a.MatchScore > b.MatchScore
		}
		if ap, bp := a.Admission.Priority(), b.Admission.Priority(); ap != bp {
			return ap < bp
		}
		switch {
		case a.GraduationRate != nil && b.GraduationRate != nil:
			if *a.GraduationRate != *b.GraduationRate {
				return *a.GraduationRate > *b.GraduationRate
			}
		case a.GraduationRate != nil:
			return true
		case b.GraduationRate != nil:
			return false
		}
		return false
	})

	for i := range out {
		out[i].Rank = i + 1
		out[i].Band = BandFor(bands, out[i].MatchScore)
	}
	return out
}
