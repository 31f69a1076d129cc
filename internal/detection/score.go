package detection

import (
	"math"

	"cuevision/internal/imaging"
)

// Candidate is a provisional (position, radius) hypothesis for a ball in
// working-resolution pixel coordinates. Candidates are transient: created
// during the grid search, thinned by non-maximum suppression, and discarded
// after classification.
type Candidate struct {
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Radius int     `json:"radius"`
	Score  float64 `json:"score"` // 0-1 combined edge/color score
}

// scoreCircle rates how well a circle of the given center and radius matches
// a ball.
//
// The score combines two terms over evenly spaced perimeter samples:
//
//   - edge alignment: the fraction of samples whose edge-map value exceeds
//     the edge threshold. Each sample tolerates a 1px radial offset — the
//     rim band in the edge map is only a few pixels wide, and a radius
//     hypothesis one pixel off the true rim should not lose the whole term.
//   - color consistency: the average absolute RGB difference between each
//     sample and the center pixel, mapped to 0-1 — balls are uniformly
//     colored, unlike felt seams or clusters of touching balls
//
// Color consistency is scaled by edge alignment rather than added
// independently: a circle drawn on open cloth, or one merely grazing a
// ball's rim, is perfectly color-consistent around most of its perimeter,
// and an additive color term would let such circles outscore the acceptance
// threshold with almost no boundary evidence. Scaling makes consistency a
// reinforcement of edge support, never a substitute for it.
//
// A center that is transparent, pocket-dark, felt-colored, or otherwise not
// ball-like scores zero outright, as does a circle with almost no perimeter
// edge support.
func scoreCircle(buf *imaging.PixelBuffer, edges []uint8, cx, cy, radius int, p Params) float64 {
	if !buf.In(cx, cy) {
		return 0
	}
	r8, g8, b8, a8 := buf.RGBA(cx, cy)
	if a8 < 128 {
		return 0
	}
	center := imaging.RGBColor{R: r8, G: g8, B: b8}

	border := radius * 2
	nearBorder := cx < border || cy < border || cx >= buf.Width-border || cy >= buf.Height-border
	if IsPocketShadow(center, nearBorder) {
		return 0
	}
	if IsTableFelt(center) {
		return 0
	}
	if !IsBallLike(center) {
		return 0
	}

	samples := p.PerimeterSamples
	if samples <= 0 {
		samples = 16
	}

	edgeHits := 0
	total := 0
	var diffSum float64
	for i := 0; i < samples; i++ {
		theta := 2 * math.Pi * float64(i) / float64(samples)
		cos, sin := math.Cos(theta), math.Sin(theta)
		px := cx + int(math.Round(float64(radius)*cos))
		py := cy + int(math.Round(float64(radius)*sin))
		if !buf.In(px, py) {
			continue
		}
		total++
		for dr := -1; dr <= 1; dr++ {
			ex := cx + int(math.Round(float64(radius+dr)*cos))
			ey := cy + int(math.Round(float64(radius+dr)*sin))
			if buf.In(ex, ey) && edges[ey*buf.Width+ex] >= p.EdgeThreshold {
				edgeHits++
				break
			}
		}
		s := buf.RGB(px, py)
		diffSum += (math.Abs(float64(s.R)-float64(center.R)) +
			math.Abs(float64(s.G)-float64(center.G)) +
			math.Abs(float64(s.B)-float64(center.B))) / 3
	}
	// A circle mostly outside the frame is not a usable hypothesis.
	if total < samples*3/4 {
		return 0
	}

	edgeScore := float64(edgeHits) / float64(total)
	if edgeScore < p.MinEdgeFraction {
		return 0
	}
	colorScore := math.Max(0, 1-(diffSum/float64(total))/p.ColorDiffDivisor)

	return edgeScore * (p.EdgeWeight + p.ColorWeight*colorScore)
}
