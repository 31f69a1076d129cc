package classify

import "cuevision/internal/imaging"

// GameMode selects which classification table is active.
type GameMode string

// Supported game modes.
const (
	ModePool    GameMode = "pool"
	ModeSnooker GameMode = "snooker"
)

// Valid reports whether m names a known game mode.
func (m GameMode) Valid() bool {
	return m == ModePool || m == ModeSnooker
}

// BallType is the category-level classification of a detected ball.
//
// Specific ball numbers for stripes (9-15) cannot be recovered from color
// alone; the classifier only ever returns categories and named colors.
type BallType string

// Ball categories. Pool uses the first four; snooker uses cue plus the
// named colors.
const (
	BallCue    BallType = "cue"
	BallEight  BallType = "eightball"
	BallSolid  BallType = "solids"
	BallStripe BallType = "stripes"

	BallRed    BallType = "red"
	BallYellow BallType = "yellow"
	BallGreen  BallType = "green"
	BallBrown  BallType = "brown"
	BallBlue   BallType = "blue"
	BallPink   BallType = "pink"
	BallBlack  BallType = "black"
)

// ColorRange is one named classification rule: an HSV box bound to a ball
// type, with a static prior confidence that scales the computed match score.
//
// Ranges within one game mode's table may overlap (the striped catch-all
// overlaps most solid ranges); the classifier picks the rule with the
// highest computed confidence, never the first match. A hue bound may wrap
// past 360 — Min.H=340, Max.H=10 covers red — and Min.H=0, Max.H=360 means
// the rule ignores hue entirely (achromatic balls).
type ColorRange struct {
	Name       string
	Type       BallType
	Number     int // pool solid number or snooker point value; 0 when none
	Min, Max   imaging.HSVColor
	Confidence float64
}

// fullHue reports whether the rule spans the whole hue circle, in which
// case hue contributes nothing to the match distance.
func (r ColorRange) fullHue() bool {
	return r.Max.H-r.Min.H >= 360
}

// poolRanges is the fixed classification table for 8-ball pool: cue, the
// eight ball, the seven solid colors, and a generic striped catch-all for
// balls whose white-dominated average color matches no solid.
var poolRanges = []ColorRange{
	{Name: "white", Type: BallCue, Min: imaging.HSVColor{H: 0, S: 0, V: 75}, Max: imaging.HSVColor{H: 360, S: 20, V: 100}, Confidence: 0.95},
	{Name: "black", Type: BallEight, Number: 8, Min: imaging.HSVColor{H: 0, S: 0, V: 0}, Max: imaging.HSVColor{H: 360, S: 60, V: 22}, Confidence: 0.9},
	{Name: "yellow", Type: BallSolid, Number: 1, Min: imaging.HSVColor{H: 40, S: 40, V: 50}, Max: imaging.HSVColor{H: 70, S: 100, V: 100}, Confidence: 0.85},
	{Name: "blue", Type: BallSolid, Number: 2, Min: imaging.HSVColor{H: 200, S: 40, V: 30}, Max: imaging.HSVColor{H: 250, S: 100, V: 95}, Confidence: 0.85},
	{Name: "red", Type: BallSolid, Number: 3, Min: imaging.HSVColor{H: 345, S: 50, V: 55}, Max: imaging.HSVColor{H: 15, S: 100, V: 100}, Confidence: 0.85},
	{Name: "purple", Type: BallSolid, Number: 4, Min: imaging.HSVColor{H: 250, S: 25, V: 20}, Max: imaging.HSVColor{H: 300, S: 100, V: 80}, Confidence: 0.8},
	{Name: "orange", Type: BallSolid, Number: 5, Min: imaging.HSVColor{H: 15, S: 50, V: 50}, Max: imaging.HSVColor{H: 40, S: 100, V: 100}, Confidence: 0.85},
	{Name: "green", Type: BallSolid, Number: 6, Min: imaging.HSVColor{H: 90, S: 40, V: 25}, Max: imaging.HSVColor{H: 160, S: 100, V: 90}, Confidence: 0.85},
	{Name: "maroon", Type: BallSolid, Number: 7, Min: imaging.HSVColor{H: 340, S: 40, V: 20}, Max: imaging.HSVColor{H: 20, S: 100, V: 55}, Confidence: 0.75},
	{Name: "stripe", Type: BallStripe, Min: imaging.HSVColor{H: 0, S: 8, V: 55}, Max: imaging.HSVColor{H: 360, S: 60, V: 100}, Confidence: 0.5},
}

// snookerRanges is the fixed table for snooker: cue plus the seven named
// colors, each carrying its point value.
var snookerRanges = []ColorRange{
	{Name: "white", Type: BallCue, Min: imaging.HSVColor{H: 0, S: 0, V: 75}, Max: imaging.HSVColor{H: 360, S: 20, V: 100}, Confidence: 0.95},
	{Name: "red", Type: BallRed, Number: 1, Min: imaging.HSVColor{H: 345, S: 50, V: 40}, Max: imaging.HSVColor{H: 15, S: 100, V: 100}, Confidence: 0.9},
	{Name: "yellow", Type: BallYellow, Number: 2, Min: imaging.HSVColor{H: 40, S: 40, V: 50}, Max: imaging.HSVColor{H: 70, S: 100, V: 100}, Confidence: 0.85},
	{Name: "green", Type: BallGreen, Number: 3, Min: imaging.HSVColor{H: 90, S: 40, V: 25}, Max: imaging.HSVColor{H: 160, S: 100, V: 90}, Confidence: 0.85},
	{Name: "brown", Type: BallBrown, Number: 4, Min: imaging.HSVColor{H: 10, S: 40, V: 25}, Max: imaging.HSVColor{H: 40, S: 90, V: 65}, Confidence: 0.8},
	{Name: "blue", Type: BallBlue, Number: 5, Min: imaging.HSVColor{H: 200, S: 40, V: 30}, Max: imaging.HSVColor{H: 250, S: 100, V: 95}, Confidence: 0.85},
	{Name: "pink", Type: BallPink, Number: 6, Min: imaging.HSVColor{H: 320, S: 15, V: 60}, Max: imaging.HSVColor{H: 355, S: 60, V: 100}, Confidence: 0.8},
	{Name: "black", Type: BallBlack, Number: 7, Min: imaging.HSVColor{H: 0, S: 0, V: 0}, Max: imaging.HSVColor{H: 360, S: 60, V: 22}, Confidence: 0.9},
}

// Ranges returns the classification table for a game mode. The tables are
// static configuration; swapping them never touches detection logic.
func Ranges(mode GameMode) []ColorRange {
	if mode == ModeSnooker {
		return snookerRanges
	}
	return poolRanges
}
