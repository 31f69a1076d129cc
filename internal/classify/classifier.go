package classify

import (
	"math"

	"cuevision/internal/imaging"
)

// fallbackConfidence is assigned when no range matches convincingly. White
// is the statistically safest fallback: misclassifying a colored ball as
// "possibly cue" is less harmful downstream than a wrong color.
const fallbackConfidence = 0.5

// minMatchConfidence is the floor below which a best match is discarded in
// favor of the cue fallback.
const minMatchConfidence = 0.3

// Classification is the color verdict for one detected circle.
type Classification struct {
	// Type is the ball category.
	Type BallType `json:"type"`

	// Name is the human color label from the matched range ("yellow",
	// "white", ...). The stripe refiner may change Type while Name keeps
	// the underlying color.
	Name string `json:"name"`

	// Number is the pool solid number or snooker point value, 0 when the
	// category carries none (cue, stripes).
	Number int `json:"number,omitempty"`

	// Confidence is the computed match score scaled by the range's prior,
	// in [0, 1].
	Confidence float64 `json:"confidence"`

	// Color is the dominant sampled color the verdict was based on.
	Color imaging.RGBColor `json:"color"`
}

// DominantColor averages the RGB values over the inner disk of a circle —
// all pixels within 0.6×radius of the center. The tighter disk avoids the
// perimeter highlights and shadows that contaminate the full ball area.
func DominantColor(buf *imaging.PixelBuffer, cx, cy, radius int) imaging.RGBColor {
	ir := int(0.6 * float64(radius))
	if ir < 1 {
		ir = 1
	}

	var rSum, gSum, bSum, n int
	for dy := -ir; dy <= ir; dy++ {
		py := cy + dy
		if py < 0 || py >= buf.Height {
			continue
		}
		for dx := -ir; dx <= ir; dx++ {
			px := cx + dx
			if px < 0 || px >= buf.Width || dx*dx+dy*dy > ir*ir {
				continue
			}
			c := buf.RGB(px, py)
			rSum += int(c.R)
			gSum += int(c.G)
			bSum += int(c.B)
			n++
		}
	}
	if n == 0 {
		return buf.RGB(clampInt(cx, 0, buf.Width-1), clampInt(cy, 0, buf.Height-1))
	}
	return imaging.RGBColor{
		R: uint8(rSum / n),
		G: uint8(gSum / n),
		B: uint8(bSum / n),
	}
}

// Classify assigns a ball type to a circle by matching its dominant color
// against the active game mode's range table.
//
// Every matching range is scored — overlapping rules are resolved by the
// highest computed confidence, not first match. When nothing matches, or
// the best match scores below 0.3, the verdict falls back to the cue ball
// at confidence 0.5. Cue verdicts are floored at the fallback confidence so
// a pale, washed-out cue ball never reports less certainty than the
// fallback it would otherwise have received.
func Classify(buf *imaging.PixelBuffer, cx, cy, radius int, mode GameMode) Classification {
	dominant := DominantColor(buf, cx, cy, radius)
	hsv := imaging.RGBToHSV(dominant)

	ranges := Ranges(mode)
	var best *ColorRange
	bestConf := 0.0
	for i := range ranges {
		r := &ranges[i]
		if !hsv.InRange(r.Min, r.Max) {
			continue
		}
		if conf := r.match(hsv); conf > bestConf {
			best = r
			bestConf = conf
		}
	}

	if best == nil || bestConf < minMatchConfidence {
		return Classification{
			Type:       BallCue,
			Name:       "white",
			Confidence: fallbackConfidence,
			Color:      dominant,
		}
	}

	if best.Type == BallCue && bestConf < fallbackConfidence {
		bestConf = fallbackConfidence
	}

	return Classification{
		Type:       best.Type,
		Name:       best.Name,
		Number:     best.Number,
		Confidence: bestConf,
		Color:      dominant,
	}
}

// match scores how centrally a sample sits inside the range's HSV box.
//
// Each component's distance from the box midpoint is normalized by that
// component's own span (a degenerate zero span is treated as a unit span,
// so a sample at the box edge scores 0.5), hue is weighted 2×, and the
// Euclidean norm is mapped through max(0, 1 - distance/2) before scaling by
// the range's static prior.
func (r ColorRange) match(c imaging.HSVColor) float64 {
	var dh float64
	if !r.fullHue() {
		span := math.Mod(r.Max.H-r.Min.H+360, 360)
		if span < 1 {
			span = 1
		}
		mid := math.Mod(r.Min.H+span/2, 360)
		dh = 2 * imaging.HueDistance(c.H, mid) / span
	}
	ds := normalizedOffset(c.S, r.Min.S, r.Max.S)
	dv := normalizedOffset(c.V, r.Min.V, r.Max.V)

	dist := math.Sqrt(dh*dh + ds*ds + dv*dv)
	return math.Max(0, 1-dist/2) * r.Confidence
}

// normalizedOffset returns the distance of v from the interval midpoint in
// units of the span. Zero-length intervals count as unit spans.
func normalizedOffset(v, lo, hi float64) float64 {
	span := hi - lo
	if span < 1 {
		span = 1
	}
	return math.Abs(v-(lo+span/2)) / span
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
