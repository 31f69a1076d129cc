package detection

import (
	"math"
	"sort"
)

// Suppress collapses overlapping candidates into a disjoint set, keeping the
// highest-scoring circle per cluster (non-maximum suppression).
//
// Candidates are sorted descending by score, then accepted greedily: a
// candidate is kept only if its center is farther than (r1+r2)*spacing from
// every already accepted center and outside every accepted circle — a ball
// cannot sit inside another ball, so a center that falls within an accepted
// radius is always a duplicate of that ball. The result stays sorted by
// score and the input slice is not modified. Running Suppress on its own
// output returns the same set.
func Suppress(candidates []Candidate, spacing float64) []Candidate {
	if len(candidates) == 0 {
		return nil
	}

	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	kept := make([]Candidate, 0, len(sorted))
	for _, c := range sorted {
		overlaps := false
		for _, k := range kept {
			dx := float64(c.X - k.X)
			dy := float64(c.Y - k.Y)
			minDist := float64(c.Radius+k.Radius) * spacing
			if larger := math.Max(float64(c.Radius), float64(k.Radius)); larger > minDist {
				minDist = larger
			}
			if math.Hypot(dx, dy) <= minDist {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, c)
		}
	}
	return kept
}
