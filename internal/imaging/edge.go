package imaging

import "math"

// Sobel kernels for horizontal and vertical gradients.
var (
	sobelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// EdgeMap builds the edge map used by the circle search: each of the
// luminance plane and the three color channels is blurred and run through
// SobelEdges, and the per-pixel maximum of the four responses is kept.
//
// A luminance-only gradient misses chroma boundaries — a red ball on green
// cloth can be nearly isoluminant, so its rim vanishes from a grayscale
// Sobel even though both the red and green channels change sharply there.
// Taking the strongest per-channel response keeps such rims visible without
// inflating magnitudes elsewhere.
func EdgeMap(buf *PixelBuffer, blurRadius int) []uint8 {
	planes := [][]uint8{
		Grayscale(buf),
		channelPlane(buf, 0),
		channelPlane(buf, 1),
		channelPlane(buf, 2),
	}

	out := make([]uint8, buf.Width*buf.Height)
	for _, plane := range planes {
		blurred := GaussianBlur(plane, buf.Width, buf.Height, blurRadius)
		edges := SobelEdges(blurred, buf.Width, buf.Height)
		for i, v := range edges {
			if v > out[i] {
				out[i] = v
			}
		}
	}
	return out
}

// channelPlane extracts one RGBA channel as a single-channel buffer.
func channelPlane(buf *PixelBuffer, channel int) []uint8 {
	plane := make([]uint8, buf.Width*buf.Height)
	for i, j := 0, channel; i < len(plane); i, j = i+1, j+4 {
		plane[i] = buf.Pix[j]
	}
	return plane
}

// SobelEdges computes a gradient-magnitude edge map from a single-channel
// luminance buffer.
//
// For every interior pixel the standard 3x3 Sobel kernels produce Gx and Gy;
// the output value is min(255, sqrt(Gx² + Gy²)). Border pixels (row/column 0
// and the last row/column) are left at 0 — there is no wraparound.
//
// The result has the same dimensions as the input, one byte per pixel, where
// higher values mark stronger luminance transitions.
func SobelEdges(gray []uint8, width, height int) []uint8 {
	edges := make([]uint8, len(gray))
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := float64(gray[(y+ky)*width+(x+kx)])
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			mag := math.Sqrt(gx*gx + gy*gy)
			if mag > 255 {
				mag = 255
			}
			edges[y*width+x] = uint8(mag)
		}
	}
	return edges
}
