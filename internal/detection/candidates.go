package detection

import (
	"cuevision/internal/imaging"
)

// FindCandidates enumerates plausible ball positions and sizes in the
// working buffer.
//
// An exhaustive per-pixel, per-radius search is computationally prohibitive,
// so centers are visited on a grid whose step is a fraction of the minimum
// radius, and only a discretized set of radii is tried at each center.
//
// When two-phase search is enabled, phase 1 locates the cue ball (bright,
// low-saturation centers) and phase 2 restricts the radius search at every
// other grid point to a band around the cue radius — balls on a table are
// physically uniform in size, so one good reference sharply narrows the
// search space and improves both speed and precision. If no cue ball scores
// above the acceptance threshold, the full radius range is searched instead.
//
// The returned candidates overlap freely; callers run Select to collapse
// them to one confirmed circle per physical ball. trace may be nil.
func FindCandidates(buf *imaging.PixelBuffer, edges []uint8, p Params, trace TraceFunc) []Candidate {
	minR, maxR := p.RadiusBounds(buf.Width, buf.Height)
	step, radiusStep := searchSteps(p, minR, maxR)

	lo, hi := minR, maxR
	var out []Candidate

	if p.TwoPhase {
		if ref, ok := findCueReference(buf, edges, minR, maxR, step, radiusStep, p); ok {
			if trace != nil {
				trace("cue reference at (%d,%d) r=%d score=%.3f", ref.X, ref.Y, ref.Radius, ref.Score)
			}
			lo = int(float64(ref.Radius) * (1 - p.ReferenceBand))
			hi = int(float64(ref.Radius)*(1+p.ReferenceBand)) + 1
			if lo < minR {
				lo = minR
			}
			if hi > maxR {
				hi = maxR
			}
			out = append(out, ref)
		} else if trace != nil {
			trace("no cue reference found, falling back to full radius range")
		}
	}

	for cy := minR; cy < buf.Height-minR; cy += step {
		for cx := minR; cx < buf.Width-minR; cx += step {
			if best, ok := bestRadiusAt(buf, edges, cx, cy, lo, hi, radiusStep, p); ok {
				out = append(out, best)
			}
		}
	}

	if trace != nil {
		trace("grid search produced %d candidates (radii %d-%d, step %d)", len(out), lo, hi, step)
	}
	return out
}

// Select collapses raw grid candidates into the final detection set.
//
// Overlapping candidates are suppressed first, then each survivor is
// polished with a local search in position and radius. The polished score
// is held to the confirmation threshold: a grid candidate near a real ball
// refines onto the rim and its score jumps, while a candidate that was only
// grazing a rim — a circle centered on cloth next to a ball can pick up
// enough tangent edge samples to clear the grid-level accept — has no
// better circle nearby and stays low. A final suppression pass removes any
// survivors that refinement pulled together.
func Select(buf *imaging.PixelBuffer, edges []uint8, candidates []Candidate, p Params, trace TraceFunc) []Candidate {
	kept := Suppress(candidates, p.NMSSpacing)
	if len(kept) == 0 {
		return nil
	}

	minR, maxR := p.RadiusBounds(buf.Width, buf.Height)
	step, radiusStep := searchSteps(p, minR, maxR)

	confirmed := make([]Candidate, 0, len(kept))
	for _, c := range kept {
		r := refine(buf, edges, c, step/2+1, radiusStep, p)
		if r.Score >= p.ConfirmScore {
			confirmed = append(confirmed, r)
		} else if trace != nil {
			trace("dropped candidate (%d,%d) r=%d: refined score %.3f below confirmation", c.X, c.Y, c.Radius, r.Score)
		}
	}
	return Suppress(confirmed, p.NMSSpacing)
}

// searchSteps derives the grid spacing and radius increment from the radius
// bounds.
func searchSteps(p Params, minR, maxR int) (step, radiusStep int) {
	step = int(float64(minR) * p.StepFrac)
	if step < 2 {
		step = 2
	}
	radiusStep = (maxR - minR) / p.RadiusSteps
	if radiusStep < 1 {
		radiusStep = 1
	}
	return step, radiusStep
}

// bestRadiusAt scores every discretized radius at one center and returns the
// best candidate if it clears the acceptance threshold.
func bestRadiusAt(buf *imaging.PixelBuffer, edges []uint8, cx, cy, lo, hi, radiusStep int, p Params) (Candidate, bool) {
	best := Candidate{X: cx, Y: cy}
	for r := lo; r <= hi; r += radiusStep {
		if s := scoreCircle(buf, edges, cx, cy, r, p); s > best.Score {
			best.Radius = r
			best.Score = s
		}
	}
	return best, best.Score >= p.AcceptScore
}

// findCueReference runs the phase-1 scan: grid centers whose pixel looks
// like cue-ball white are scored across the full radius range, and the best
// one is polished with a local 1px search so the reference radius is as
// exact as the image allows. The polish iterates to convergence — a single
// pass from a coarse grid hit can stop short of the true rim, and a
// reference radius that is off by more than the band width would exclude
// every real ball from the phase-2 search.
func findCueReference(buf *imaging.PixelBuffer, edges []uint8, minR, maxR, step, radiusStep int, p Params) (Candidate, bool) {
	var best Candidate
	for cy := minR; cy < buf.Height-minR; cy += step {
		for cx := minR; cx < buf.Width-minR; cx += step {
			if !isCueScanSeed(buf.RGB(cx, cy)) {
				continue
			}
			if c, ok := bestRadiusAt(buf, edges, cx, cy, minR, maxR, radiusStep, p); ok && c.Score > best.Score {
				best = c
			}
		}
	}
	if best.Score < p.AcceptScore {
		return Candidate{}, false
	}
	return refine(buf, edges, best, step/2+1, radiusStep, p), true
}

// refine hill-climbs a candidate at 1px granularity: each pass exhaustively
// searches a small neighborhood in position and radius, recentered on the
// best variant found, until a pass yields no improvement. Scores strictly
// increase, so the walk terminates.
func refine(buf *imaging.PixelBuffer, edges []uint8, c Candidate, reach, radiusReach int, p Params) Candidate {
	best := c
	for {
		improved := false
		at := best
		for dy := -reach; dy <= reach; dy++ {
			for dx := -reach; dx <= reach; dx++ {
				for dr := -radiusReach; dr <= radiusReach; dr++ {
					r := at.Radius + dr
					if r < 2 {
						continue
					}
					if s := scoreCircle(buf, edges, at.X+dx, at.Y+dy, r, p); s > best.Score {
						best = Candidate{X: at.X + dx, Y: at.Y + dy, Radius: r, Score: s}
						improved = true
					}
				}
			}
		}
		if !improved {
			return best
		}
	}
}
