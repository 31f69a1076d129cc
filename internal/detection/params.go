package detection

// TraceFunc receives debug output from the hot search loops. A nil TraceFunc
// disables tracing entirely; the scorer never formats messages unless a hook
// is installed, since per-candidate logging at grid-search volume would
// dominate runtime.
type TraceFunc func(format string, args ...any)

// Params holds every tunable threshold of the circle search.
//
// The defaults are tuned empirically against photographs of pool and snooker
// tables under typical hall lighting; none of them are physical constants.
// Callers experimenting with difficult images should adjust these rather
// than forking the search code.
type Params struct {
	// BlurRadius is the Gaussian pre-filter radius applied to the
	// grayscale buffer before edge extraction. 0 disables the filter.
	BlurRadius int

	// EdgeThreshold is the minimum Sobel magnitude (0-255) for a
	// perimeter sample to count as lying on an edge.
	EdgeThreshold uint8

	// PerimeterSamples is how many evenly spaced points are tested around
	// a candidate circle. More samples cost time linearly.
	PerimeterSamples int

	// EdgeWeight and ColorWeight combine the two scoring terms as
	// edge*(EdgeWeight + ColorWeight*color). Edge alignment is weighted at
	// least as high as color consistency since geometric roundness is the
	// primary ball signal; the color term only ever scales edge support.
	EdgeWeight  float64
	ColorWeight float64

	// ColorDiffDivisor converts the average perimeter-to-center RGB
	// difference into a 0-1 consistency score via max(0, 1 - avg/divisor).
	ColorDiffDivisor float64

	// AcceptScore is the minimum combined score for a grid candidate to be
	// kept. Raising it trades recall for fewer false positives from felt
	// texture, pockets and rail shadows.
	AcceptScore float64

	// ConfirmScore is the minimum score a candidate must reach after the
	// local refinement in Select. A true ball refined onto its rim scores
	// at least EdgeWeight; a circle that merely grazes a rim cannot improve
	// much under refinement and plateaus well below that.
	ConfirmScore float64

	// MinEdgeFraction is the minimum fraction of perimeter samples that
	// must land on edges for a candidate to survive at all. A cheap early
	// reject for circles with almost no boundary evidence.
	MinEdgeFraction float64

	// MinRadiusFrac and MaxRadiusFrac bound the radius search relative to
	// min(width, height). Heuristics, not measurements: there is no
	// camera calibration, only the assumption that balls occupy a
	// plausible fraction of the frame.
	MinRadiusFrac float64
	MaxRadiusFrac float64

	// StepFrac sets the grid step as a fraction of the minimum radius.
	StepFrac float64

	// RadiusSteps is how many discrete radii are tried between the
	// minimum and maximum radius.
	RadiusSteps int

	// TwoPhase enables the cue-ball-first search: locate the white ball,
	// then restrict all other radius searches to a band around its
	// radius. Falls back to the full-range search when no cue ball is
	// found.
	TwoPhase bool

	// ReferenceBand is the half-width of the radius band around the cue
	// reference, as a fraction (0.2 means ±20%).
	ReferenceBand float64

	// NMSSpacing is the suppression factor k: two kept circles must have
	// center distance greater than (r1+r2)*k.
	NMSSpacing float64

	// MaxDetections caps the surviving candidate count. 22 is the
	// maximum simultaneous balls in snooker (15 reds + 6 colors + cue).
	MaxDetections int
}

// DefaultParams returns the tuned defaults.
func DefaultParams() Params {
	return Params{
		BlurRadius:       2,
		EdgeThreshold:    45,
		PerimeterSamples: 20,
		EdgeWeight:       0.6,
		ColorWeight:      0.4,
		ColorDiffDivisor: 110,
		AcceptScore:      0.30,
		ConfirmScore:     0.45,
		MinEdgeFraction:  0.15,
		MinRadiusFrac:    0.018,
		MaxRadiusFrac:    0.13,
		StepFrac:         0.8,
		RadiusSteps:      12,
		TwoPhase:         true,
		ReferenceBand:    0.2,
		NMSSpacing:       0.55,
		MaxDetections:    22,
	}
}

// RadiusBounds derives the pixel radius search range for an image of the
// given working dimensions. The minimum is floored at 4px so perimeter
// sampling stays meaningful on small images.
func (p Params) RadiusBounds(width, height int) (min, max int) {
	smaller := width
	if height < smaller {
		smaller = height
	}
	min = int(p.MinRadiusFrac * float64(smaller))
	if min < 4 {
		min = 4
	}
	max = int(p.MaxRadiusFrac * float64(smaller))
	if max < min {
		max = min
	}
	return min, max
}
