package imaging

import (
	"image"
	"image/draw"
)

// PixelBuffer is a flat RGBA pixel store with direct index access.
//
// All pipeline stages operate on PixelBuffers instead of image.Image so the
// hot loops avoid interface dispatch and color-model conversion per pixel.
// Pix holds 4 bytes per pixel (R, G, B, A) in row-major order.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// FromImage copies an image into a fresh PixelBuffer, converting whatever
// color model the decoder produced into 8-bit RGBA.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	buf := &PixelBuffer{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    make([]uint8, len(rgba.Pix)),
	}
	copy(buf.Pix, rgba.Pix)
	return buf
}

// In reports whether (x, y) lies inside the buffer.
func (b *PixelBuffer) In(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// RGBA returns the four channels at (x, y). The caller must ensure the
// coordinates are in bounds.
func (b *PixelBuffer) RGBA(x, y int) (r, g, bl, a uint8) {
	i := (y*b.Width + x) * 4
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]
}

// RGB returns the color channels at (x, y), ignoring alpha. The caller must
// ensure the coordinates are in bounds.
func (b *PixelBuffer) RGB(x, y int) RGBColor {
	i := (y*b.Width + x) * 4
	return RGBColor{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2]}
}
