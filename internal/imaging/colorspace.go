package imaging

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSVColor represents a color in HSV (Hue, Saturation, Value) space.
//
// HSV isolates luminance in V, which makes classification far more tolerant
// of the variable lighting found in real pool halls than raw RGB:
//   - Hue is the position on the color wheel (red=0, green=120, blue=240)
//   - Saturation is the color intensity (gray to vivid)
//   - Value is the brightness (black to full intensity)
type HSVColor struct {
	H float64 `json:"h"` // Hue: 0-360 degrees (circular)
	S float64 `json:"s"` // Saturation: 0-100 percent
	V float64 `json:"v"` // Value: 0-100 percent
}

// Hex returns the color in "#rrggbb" notation.
func (c RGBColor) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// ParseHex parses a "#rrggbb" string into an RGBColor.
func ParseHex(s string) (RGBColor, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBColor{}, err
	}
	r, g, b := c.RGB255()
	return RGBColor{R: r, G: g, B: b}, nil
}

// RGBToHSV converts an 8-bit RGB color to HSV.
//
// Hue is computed from whichever channel is largest and normalized to
// [0, 360). Saturation is (max-min)/max, or 0 when max is 0. Both S and V
// are scaled to [0, 100].
func RGBToHSV(c RGBColor) HSVColor {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	var h float64
	switch {
	case delta == 0:
		h = 0
	case max == r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case max == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	var s float64
	if max > 0 {
		s = delta / max
	}

	return HSVColor{H: h, S: s * 100, V: max * 100}
}

// HSVToRGB converts an HSV color back to 8-bit RGB.
//
// Standard sector-based inverse of RGBToHSV. Round-tripping a valid RGB
// triple through both conversions reproduces it within ±1 per channel.
func HSVToRGB(c HSVColor) RGBColor {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	s := c.S / 100.0
	v := c.V / 100.0

	sector := h / 60.0
	i := int(sector) % 6
	f := sector - math.Floor(sector)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return RGBColor{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
	}
}

// HueInRange reports whether hue h lies inside the circular interval
// [min, max].
//
// When min <= max this is an ordinary closed interval. When min > max the
// interval wraps past 360 (e.g. min=340, max=10 covers red), and membership
// means h >= min OR h <= max.
func HueInRange(h, min, max float64) bool {
	if min <= max {
		return h >= min && h <= max
	}
	return h >= min || h <= max
}

// InRange reports whether the color lies inside the HSV box [min, max].
// Saturation and value are compared as ordinary closed intervals; hue
// handles wraparound per HueInRange.
func (c HSVColor) InRange(min, max HSVColor) bool {
	if !HueInRange(c.H, min.H, max.H) {
		return false
	}
	return c.S >= min.S && c.S <= max.S && c.V >= min.V && c.V <= max.V
}

// HueDistance returns the circular distance between two hues in degrees,
// always in [0, 180].
func HueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// HSVDistance computes a hue-weighted distance between two HSV colors.
//
// The circular hue difference is normalized by 180 and weighted 2x, since
// hue is the dominant discriminator between ball colors under variable
// lighting; saturation and value differences are normalized by 100. The
// result is the Euclidean norm of the three terms.
func HSVDistance(a, b HSVColor) float64 {
	dh := 2 * HueDistance(a.H, b.H) / 180.0
	ds := (a.S - b.S) / 100.0
	dv := (a.V - b.V) / 100.0
	return math.Sqrt(dh*dh + ds*ds + dv*dv)
}
