package imaging

import (
	"image"
	"image/color"
	"image/draw"
)

// Marker describes one circle to draw on an annotated image: a detected
// ball's center, radius, display color and optional label.
type Marker struct {
	X      int    // Center X in image coordinates
	Y      int    // Center Y in image coordinates
	Radius int    // Circle radius in pixels
	Label  string // Optional label drawn beside the center (digits only)
	Hex    string // Outline color as "#rrggbb"; invalid values fall back to red
}

// Annotate draws circle outlines and labels onto a copy of src.
//
// The source image is never modified. Each marker's outline is drawn three
// pixels thick so it stays visible on high-resolution photographs.
func Annotate(src image.Image, markers []Marker) *image.RGBA {
	bounds := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), src, bounds.Min, draw.Src)

	for _, m := range markers {
		outline := color.RGBA{255, 0, 0, 255}
		if c, err := ParseHex(m.Hex); err == nil {
			outline = color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
		}
		for dr := 0; dr < 3; dr++ {
			drawCircle(out, m.X, m.Y, m.Radius+dr, outline)
		}
		if m.Label != "" {
			drawLabel(out, m.X+3, m.Y-3, m.Label,
				color.RGBA{255, 255, 255, 255}, color.RGBA{0, 0, 0, 180})
		}
	}
	return out
}

// drawCircle plots a circle outline using the midpoint circle algorithm.
func drawCircle(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	if radius <= 0 {
		return
	}
	set := func(x, y int) {
		if (image.Point{x, y}).In(img.Bounds()) {
			img.SetRGBA(x, y, c)
		}
	}

	x := radius
	y := 0
	err := 0
	for x >= y {
		set(cx+x, cy+y)
		set(cx+y, cy+x)
		set(cx-y, cy+x)
		set(cx-x, cy+y)
		set(cx-x, cy-y)
		set(cx-y, cy-x)
		set(cx+y, cy-x)
		set(cx+x, cy-y)

		if err <= 0 {
			y++
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

// Bitmap rows for the digits 0-9, 3 bits wide, top to bottom. Ball labels
// only ever contain digits, so nothing else is representable; any other
// rune renders as a blank advance.
var digitGlyphs = [10][5]uint8{
	{0b111, 0b101, 0b101, 0b101, 0b111}, // 0
	{0b010, 0b110, 0b010, 0b010, 0b111}, // 1
	{0b111, 0b001, 0b111, 0b100, 0b111}, // 2
	{0b111, 0b001, 0b111, 0b001, 0b111}, // 3
	{0b101, 0b101, 0b111, 0b001, 0b001}, // 4
	{0b111, 0b100, 0b111, 0b001, 0b111}, // 5
	{0b111, 0b100, 0b111, 0b101, 0b111}, // 6
	{0b111, 0b001, 0b001, 0b001, 0b001}, // 7
	{0b111, 0b101, 0b111, 0b101, 0b111}, // 8
	{0b111, 0b101, 0b111, 0b001, 0b111}, // 9
}

const (
	glyphWidth   = 3
	glyphHeight  = 5
	glyphAdvance = glyphWidth + 1
)

// drawLabel renders a digit string over a solid background plate. Pixels
// falling outside the image are clipped.
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	plate := image.Rect(x-1, y-1, x+len(text)*glyphAdvance, y+glyphHeight+1)
	draw.Draw(img, plate.Intersect(img.Bounds()), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	bounds := img.Bounds()
	for _, ch := range text {
		if ch >= '0' && ch <= '9' {
			for row, bits := range digitGlyphs[ch-'0'] {
				for col := 0; col < glyphWidth; col++ {
					if bits&(1<<(glyphWidth-1-col)) == 0 {
						continue
					}
					if (image.Point{X: x + col, Y: y + row}).In(bounds) {
						img.SetRGBA(x+col, y+row, fg)
					}
				}
			}
		}
		x += glyphAdvance
	}
}
