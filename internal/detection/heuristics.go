package detection

import "cuevision/internal/imaging"

// Pure pixel classifiers applied at candidate centers. These are deliberately
// permissive (wide bands) because lighting in real pool halls varies;
// over-tightening causes false negatives that cannot be recovered downstream.

// brightness returns the mean of the three channels.
func brightness(c imaging.RGBColor) int {
	return (int(c.R) + int(c.G) + int(c.B)) / 3
}

// channelSpread returns the difference between the largest and smallest
// channel, a cheap stand-in for saturation.
func channelSpread(c imaging.RGBColor) int {
	max, min := int(c.R), int(c.R)
	for _, v := range []int{int(c.G), int(c.B)} {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	return max - min
}

// IsTableFelt reports whether a pixel matches the cloth of a pool or snooker
// table: saturated cyan/turquoise or green at medium-high brightness.
func IsTableFelt(c imaging.RGBColor) bool {
	br := brightness(c)
	// Cyan/turquoise cloth
	if c.G > 100 && c.B > 100 && c.R < 100 && br > 100 {
		return true
	}
	// Green cloth
	if c.G > 120 && float64(c.G) > 1.5*float64(c.R) && float64(c.G) > 1.2*float64(c.B) && br > 80 {
		return true
	}
	return false
}

// IsPocketShadow reports whether a pixel is dark enough to be a pocket or a
// rail shadow. Pockets sit structurally at rail and corner positions, so the
// brightness cutoff is looser near the image border.
func IsPocketShadow(c imaging.RGBColor, nearBorder bool) bool {
	br := brightness(c)
	if br < 15 {
		return true
	}
	return nearBorder && br < 25
}

// IsCueWhite reports whether a pixel looks like the cue ball: bright and
// nearly neutral.
func IsCueWhite(c imaging.RGBColor) bool {
	return brightness(c) > 180 && channelSpread(c) < 40
}

// isCueScanSeed is the stricter variant used to seed the phase-1 cue search:
// bright, with adjacent channel pairs close together.
func isCueScanSeed(c imaging.RGBColor) bool {
	if brightness(c) <= 180 {
		return false
	}
	dRG := int(c.R) - int(c.G)
	if dRG < 0 {
		dRG = -dRG
	}
	dGB := int(c.G) - int(c.B)
	if dGB < 0 {
		dGB = -dGB
	}
	return dRG < 30 && dGB < 30
}

// IsBallLike reports whether a pixel color fits any ball profile: bright
// near-neutral (cue), saturated chromatic color that is not table felt, or
// the dark neutral band of the black ball.
func IsBallLike(c imaging.RGBColor) bool {
	if IsCueWhite(c) {
		return true
	}
	br := brightness(c)
	spread := channelSpread(c)
	// Chromatic balls
	if spread > 30 && br > 40 && br < 230 && !IsTableFelt(c) {
		return true
	}
	// 8-ball / snooker black: dark but not pocket-black, nearly neutral
	return br > 10 && br < 70 && spread < 25
}
