package classify

import (
	"math"

	"cuevision/internal/imaging"
)

// Stripe refiner constants. This is a coarse periodicity heuristic, not
// texture analysis: a striped ball's perimeter alternates between the white
// body and the color band, producing several large brightness transitions.
const (
	stripeSamples        = 16  // perimeter samples
	stripeSampleRadius   = 0.7 // sampled at this fraction of the ball radius
	stripeVThreshold     = 30  // min V delta (0-100 scale) to count a transition
	stripeMinTransitions = 4   // transitions required to call a ball striped
	stripeConfidenceCost = 0.9 // pattern detection is noisier than color matching
)

// countValueTransitions counts consecutive sample pairs (wrapping around)
// whose brightness differs by more than the threshold.
func countValueTransitions(values []float64, threshold float64) int {
	n := 0
	for i := range values {
		next := values[(i+1)%len(values)]
		if math.Abs(values[i]-next) > threshold {
			n++
		}
	}
	return n
}

// perimeterValues samples V (HSV value) at evenly spaced points around the
// circle at stripeSampleRadius of the radius. Out-of-bounds points are
// clamped to the image edge.
func perimeterValues(buf *imaging.PixelBuffer, cx, cy, radius int) []float64 {
	r := float64(radius) * stripeSampleRadius
	values := make([]float64, stripeSamples)
	for i := 0; i < stripeSamples; i++ {
		theta := 2 * math.Pi * float64(i) / stripeSamples
		px := clampInt(cx+int(math.Round(r*math.Cos(theta))), 0, buf.Width-1)
		py := clampInt(cy+int(math.Round(r*math.Sin(theta))), 0, buf.Height-1)
		values[i] = imaging.RGBToHSV(buf.RGB(px, py)).V
	}
	return values
}

// RefinePool decides solid versus striped for a pool ball and overrides the
// classifier's generic verdict accordingly.
//
// It applies only when the base classification is neither the cue nor the
// eight ball — those are unambiguous from color alone. A reclassification to
// stripes costs 10% confidence since pattern detection is noisier than color
// matching; a solid verdict keeps the base confidence. The specific striped
// ball number (9-15) cannot be recovered here.
func RefinePool(buf *imaging.PixelBuffer, cx, cy, radius int, base Classification) Classification {
	if base.Type == BallCue || base.Type == BallEight {
		return base
	}

	values := perimeterValues(buf, cx, cy, radius)
	if countValueTransitions(values, stripeVThreshold) >= stripeMinTransitions {
		base.Type = BallStripe
		base.Number = 0
		base.Confidence *= stripeConfidenceCost
	} else {
		base.Type = BallSolid
	}
	return base
}
