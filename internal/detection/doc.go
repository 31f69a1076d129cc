// Package detection implements the circle candidate search at the heart of
// the ball detection pipeline.
//
// # Algorithm Overview
//
// The search follows a scored grid enumeration rather than a full Hough
// transform:
//
//  1. Radius bounds are derived from image size (roughly 2%-13% of the
//     smaller dimension) — heuristics, since there is no camera calibration.
//  2. Candidate centers are visited on a grid stepped at a fraction of the
//     minimum radius, and a discretized radius set is scored at each center.
//  3. Each (x, y, r) is scored by how well its perimeter aligns with the
//     edge map and how uniform the perimeter color is relative to the
//     center pixel.
//  4. Non-maximum suppression collapses overlapping candidates to one per
//     physical ball.
//
// The preferred two-phase variant first locates the white cue ball and then
// searches only radii near the cue radius at all other positions, with an
// explicit fallback to the full-range search when no cue ball is found.
//
// # Rejection Heuristics
//
// Candidate centers on table felt (saturated cyan or green cloth), inside
// pockets or shadows, or with colors matching no ball profile are rejected
// before any perimeter sampling. The heuristic bands are deliberately wide:
// hall lighting varies, and a false negative here cannot be recovered
// downstream.
//
// # Tuning
//
// Every threshold lives in Params with documented defaults. A single bad
// candidate never aborts a search; the only failure mode is an empty result,
// which callers must treat as a valid "found nothing" outcome.
package detection
