// Package pipeline composes the detection stages into the single entry
// point consumed by callers: decode, downscale, edge extraction, circle
// search, suppression, classification, and coordinate de-scaling.
//
// The pipeline is a pure, synchronous transformation of an in-memory pixel
// buffer — no shared mutable state, no locks, fresh buffers per run. The
// only asynchronous boundary is image decoding. A caller that needs
// responsiveness runs the whole pipeline off its main goroutine and discards
// the result if a newer request supersedes it; there is no mid-run
// cancellation. Progress reporting is a purely informational side channel
// invoked at fixed milestones.
package pipeline

import (
	"fmt"
	"image"
	"io"
	"time"

	"cuevision/internal/classify"
	"cuevision/internal/detection"
	"cuevision/internal/imaging"
)

// Progress milestones reported to the optional callback.
const (
	StageLoad       = "load"
	StagePreprocess = "preprocess"
	StageDetect     = "detect"
	StageClassify   = "classify"
	StageDone       = "done"
)

// DefaultMaxWorkingDim bounds the working resolution. Downscaling before
// the grid search is the pipeline's primary latency control; there is no
// adaptive time budget beyond this fixed cap.
const DefaultMaxWorkingDim = 800

// ProgressFunc receives milestone notifications. It must not block; it has
// no effect on the computation.
type ProgressFunc func(percent int, stage string)

// Detector runs the detection pipeline. Detectors are stateless between
// runs and safe for concurrent use as long as the installed hooks are.
type Detector struct {
	params        detection.Params
	maxWorkingDim int
	progress      ProgressFunc
	trace         detection.TraceFunc
}

// Option configures a Detector.
type Option func(*Detector)

// WithParams replaces the default detection parameters.
func WithParams(p detection.Params) Option {
	return func(d *Detector) { d.params = p }
}

// WithMaxWorkingDim overrides the working-resolution bound. Values <= 0
// disable downscaling.
func WithMaxWorkingDim(dim int) Option {
	return func(d *Detector) { d.maxWorkingDim = dim }
}

// WithProgress installs a milestone callback.
func WithProgress(fn ProgressFunc) Option {
	return func(d *Detector) { d.progress = fn }
}

// WithTrace installs a debug trace hook forwarded to the candidate search.
func WithTrace(fn detection.TraceFunc) Option {
	return func(d *Detector) { d.trace = fn }
}

// New creates a Detector with tuned default parameters.
func New(opts ...Option) *Detector {
	d := &Detector{
		params:        detection.DefaultParams(),
		maxWorkingDim: DefaultMaxWorkingDim,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect decodes an encoded image from r and runs the pipeline. A decode
// failure aborts the run; it is the only internally fatal error.
func (d *Detector) Detect(r io.Reader, mode classify.GameMode) (*DetectionResult, error) {
	d.report(5, StageLoad)
	img, _, err := imaging.Decode(r)
	if err != nil {
		return nil, err
	}
	return d.DetectImage(img, mode)
}

// DetectImage runs the pipeline on an already decoded image.
//
// Per-candidate problems never abort the batch: a circle that fails
// classification simply falls back to the cue verdict, and zero detections
// is a valid result, not an error.
func (d *Detector) DetectImage(img image.Image, mode classify.GameMode) (*DetectionResult, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown game mode %q", mode)
	}

	start := time.Now()
	d.report(10, StageLoad)
	src := imaging.Prepare(img, d.maxWorkingDim)
	work := src.Working

	d.report(25, StagePreprocess)
	edges := imaging.EdgeMap(work, d.params.BlurRadius)

	d.report(45, StageDetect)
	candidates := detection.FindCandidates(work, edges, d.params, d.trace)
	kept := detection.Select(work, edges, candidates, d.params, d.trace)
	if len(kept) > d.params.MaxDetections {
		kept = kept[:d.params.MaxDetections]
	}

	d.report(75, StageClassify)
	balls := make([]BallDetection, 0, len(kept))
	for i, c := range kept {
		cls := classify.Classify(work, c.X, c.Y, c.Radius, mode)
		if mode == classify.ModePool {
			cls = classify.RefinePool(work, c.X, c.Y, c.Radius, cls)
		}
		balls = append(balls, BallDetection{
			ID:         i + 1,
			X:          float64(c.X) / src.Scale,
			Y:          float64(c.Y) / src.Scale,
			Radius:     float64(c.Radius) / src.Scale,
			Confidence: cls.Confidence * c.Score,
			BallType:   cls.Type,
			Label:      cls.Name,
			Color:      cls.Color.Hex(),
			Number:     cls.Number,
		})
	}

	d.report(100, StageDone)
	return &DetectionResult{
		Balls:            balls,
		ImageWidth:       src.Width,
		ImageHeight:      src.Height,
		Timestamp:        time.Now(),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

func (d *Detector) report(percent int, stage string) {
	if d.progress != nil {
		d.progress(percent, stage)
	}
}
