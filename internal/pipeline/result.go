package pipeline

import (
	"time"

	"cuevision/internal/classify"
)

// BallDetection is one located, classified ball.
//
// Position and radius are reported in original image coordinates (working
// coordinates divided by the downscale factor) precisely so a renderer can
// map them directly onto the unscaled displayed image. Detections are
// immutable; no ball identity persists across separate pipeline runs.
type BallDetection struct {
	// ID numbers the detection within this result, starting at 1,
	// ordered by descending geometric score.
	ID int `json:"id"`

	// X and Y are the ball center in original image coordinates.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Radius is the ball radius in original image coordinates.
	Radius float64 `json:"radius"`

	// Confidence combines the classifier confidence with the geometric
	// circle score (and the stripe-refiner attenuation for pool), in [0, 1].
	Confidence float64 `json:"confidence"`

	// BallType is the category verdict ("cue", "solids", "red", ...).
	BallType classify.BallType `json:"ball_type"`

	// Label is the human color label of the matched rule.
	Label string `json:"label"`

	// Color is the dominant sampled color as "#rrggbb".
	Color string `json:"color"`

	// Number is the pool solid number or snooker point value, omitted
	// when the category carries none.
	Number int `json:"number,omitempty"`
}

// DetectionResult is the sole artifact handed back to the caller.
//
// An empty Balls slice is a valid outcome, distinct from a processing
// failure: it means the pipeline ran and found nothing.
type DetectionResult struct {
	// Balls holds the detections, at most 22 (the snooker maximum),
	// sorted by descending geometric score.
	Balls []BallDetection `json:"balls"`

	// ImageWidth and ImageHeight are the original image dimensions.
	ImageWidth  int `json:"image_width"`
	ImageHeight int `json:"image_height"`

	// Timestamp is when the detection run completed.
	Timestamp time.Time `json:"timestamp"`

	// ProcessingTimeMs is the wall-clock pipeline duration.
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}
