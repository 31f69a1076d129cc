package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestEdgeMap_KeepsIsoluminantChromaBoundary(t *testing.T) {
	// Red on green with nearly identical luminance: the boundary is almost
	// invisible to a grayscale gradient but sharp in the individual color
	// channels.
	red := color.RGBA{200, 30, 30, 255}
	green := color.RGBA{30, 120, 40, 255}
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if x < 20 {
				img.SetRGBA(x, y, red)
			} else {
				img.SetRGBA(x, y, green)
			}
		}
	}
	buf := FromImage(img)

	lumaOnly := SobelEdges(Grayscale(buf), buf.Width, buf.Height)
	if v := lumaOnly[20*buf.Width+20]; v > 40 {
		t.Fatalf("luminance gradient at the boundary = %d; scene is not isoluminant", v)
	}

	edges := EdgeMap(buf, 0)
	if v := edges[20*buf.Width+20]; v < 200 {
		t.Errorf("edge map at the red/green boundary = %d, want a strong response", v)
	}
	if v := edges[20*buf.Width+5]; v != 0 {
		t.Errorf("edge map inside the red region = %d, want 0", v)
	}
}

func TestEdgeMap_UniformIsZero(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.SetRGBA(x, y, color.RGBA{30, 120, 40, 255})
		}
	}

	edges := EdgeMap(FromImage(img), 2)
	for i, v := range edges {
		if v != 0 {
			t.Fatalf("uniform image produced edge value %d at %d", v, i)
		}
	}
}

func TestSobelEdges_VerticalStep(t *testing.T) {
	width, height := 30, 30
	gray := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		for x := 15; x < width; x++ {
			gray[y*width+x] = 255
		}
	}

	edges := SobelEdges(gray, width, height)

	// Strong response flanking the step at x=15.
	if edges[10*width+14] == 0 || edges[10*width+15] == 0 {
		t.Error("expected strong gradient at the step boundary")
	}
	// Flat regions stay silent.
	if edges[10*width+5] != 0 || edges[10*width+25] != 0 {
		t.Error("expected zero gradient far from the step")
	}
}

func TestSobelEdges_UniformIsZero(t *testing.T) {
	width, height := 25, 25
	gray := make([]uint8, width*height)
	for i := range gray {
		gray[i] = 128
	}

	edges := SobelEdges(gray, width, height)
	for i, v := range edges {
		if v != 0 {
			t.Fatalf("uniform image produced edge value %d at %d", v, i)
		}
	}
}

func TestSobelEdges_BordersZero(t *testing.T) {
	width, height := 30, 30
	gray := make([]uint8, width*height)
	// Alternating columns: strong gradients everywhere in the interior.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x += 2 {
			gray[y*width+x] = 255
		}
	}

	edges := SobelEdges(gray, width, height)

	for x := 0; x < width; x++ {
		if edges[x] != 0 || edges[(height-1)*width+x] != 0 {
			t.Fatal("top/bottom border rows must stay zero")
		}
	}
	for y := 0; y < height; y++ {
		if edges[y*width] != 0 || edges[y*width+width-1] != 0 {
			t.Fatal("left/right border columns must stay zero")
		}
	}
}

func TestSobelEdges_MagnitudeCapped(t *testing.T) {
	width, height := 10, 10
	gray := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		for x := 5; x < width; x++ {
			gray[y*width+x] = 255
		}
	}

	edges := SobelEdges(gray, width, height)

	// The raw Sobel magnitude at a full-height step exceeds 255, so the
	// cap must actually engage.
	if edges[5*width+5] != 255 {
		t.Errorf("step magnitude = %d, want capped 255", edges[5*width+5])
	}
}
