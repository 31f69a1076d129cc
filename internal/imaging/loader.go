package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"

	"github.com/disintegration/imaging"
)

// Source is a decoded photograph together with the working-resolution buffer
// the detection stages operate on.
//
// Detection runs at a bounded resolution for latency control; Scale records
// the working/original ratio so results can be mapped back. When the original
// image already fits within the working bound, Scale is exactly 1 and Working
// is a direct conversion of the original pixels.
type Source struct {
	// Original is the decoded input image, untouched.
	Original image.Image

	// Working is the downscaled RGBA buffer used by all pipeline stages.
	Working *PixelBuffer

	// Width is the original image width in pixels.
	Width int

	// Height is the original image height in pixels.
	Height int

	// Scale is the working-resolution scale factor (working / original),
	// in (0, 1]. Divide working-space coordinates by Scale to obtain
	// original-image coordinates.
	Scale float64

	// Format is the decoded image format name ("png", "jpeg", "gif").
	// Empty when the Source was built from an already decoded image.
	Format string
}

// Decode reads and decodes an encoded image from r.
//
// A decode failure is fatal for the current request and is returned as a
// wrapped error; there is no internal retry.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// Load decodes an image from r and prepares the working-resolution buffer.
//
// maxDim bounds the larger working dimension; values <= 0 disable
// downscaling. Resizing uses Lanczos resampling, which preserves the sharp
// ball/felt boundaries the edge detector depends on better than box
// filtering does.
func Load(r io.Reader, maxDim int) (*Source, error) {
	img, format, err := Decode(r)
	if err != nil {
		return nil, err
	}
	src := Prepare(img, maxDim)
	src.Format = format
	return src, nil
}

// Prepare builds a Source from an already decoded image.
func Prepare(img image.Image, maxDim int) *Source {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	scale := 1.0
	working := img
	if maxDim > 0 {
		larger := width
		if height > larger {
			larger = height
		}
		if larger > maxDim {
			scale = float64(maxDim) / float64(larger)
			if width >= height {
				working = imaging.Resize(img, maxDim, 0, imaging.Lanczos)
			} else {
				working = imaging.Resize(img, 0, maxDim, imaging.Lanczos)
			}
		}
	}

	return &Source{
		Original: img,
		Working:  FromImage(working),
		Width:    width,
		Height:   height,
		Scale:    scale,
	}
}
