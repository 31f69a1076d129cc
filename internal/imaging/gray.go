package imaging

import "math"

// Grayscale converts an RGBA buffer to a single-channel luminance buffer.
//
// Luminance uses the ITU-R BT.601 weights (0.299*R + 0.587*G + 0.114*B),
// computed in integer arithmetic so neutral grays map to themselves exactly.
// The result has one byte per pixel in row-major order, same dimensions as
// the input.
func Grayscale(buf *PixelBuffer) []uint8 {
	gray := make([]uint8, buf.Width*buf.Height)
	for i, j := 0, 0; i < len(gray); i, j = i+1, j+4 {
		r := int(buf.Pix[j])
		g := int(buf.Pix[j+1])
		b := int(buf.Pix[j+2])
		gray[i] = uint8((299*r + 587*g + 114*b) / 1000)
	}
	return gray
}

// GaussianBlur smooths a single-channel buffer with a 2D Gaussian kernel.
//
// The kernel covers [-radius, radius] in both axes with sigma = radius/3.
// Border pixels are convolved with a truncated kernel renormalized by the
// sum of the weights actually sampled, so edges do not darken the way they
// would with zero padding. A radius <= 0 returns a copy of the input.
func GaussianBlur(gray []uint8, width, height, radius int) []uint8 {
	out := make([]uint8, len(gray))
	if radius <= 0 {
		copy(out, gray)
		return out
	}

	sigma := float64(radius) / 3.0
	size := 2*radius + 1
	kernel := make([][]float64, size)
	for ky := -radius; ky <= radius; ky++ {
		kernel[ky+radius] = make([]float64, size)
		for kx := -radius; kx <= radius; kx++ {
			kernel[ky+radius][kx+radius] = math.Exp(-float64(kx*kx+ky*ky) / (2 * sigma * sigma))
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum, weight float64
			for ky := -radius; ky <= radius; ky++ {
				py := y + ky
				if py < 0 || py >= height {
					continue
				}
				for kx := -radius; kx <= radius; kx++ {
					px := x + kx
					if px < 0 || px >= width {
						continue
					}
					w := kernel[ky+radius][kx+radius]
					sum += float64(gray[py*width+px]) * w
					weight += w
				}
			}
			out[y*width+x] = uint8(sum/weight + 0.5)
		}
	}
	return out
}
