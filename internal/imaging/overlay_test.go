package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestAnnotate_DrawsOutline(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))

	out := Annotate(img, []Marker{{X: 50, Y: 50, Radius: 20, Hex: "#00ff00"}})

	// The cardinal points of the circle must carry the outline color.
	want := color.RGBA{0, 255, 0, 255}
	for _, p := range []image.Point{{70, 50}, {30, 50}, {50, 70}, {50, 30}} {
		if out.RGBAAt(p.X, p.Y) != want {
			t.Errorf("pixel %v = %v, want outline color", p, out.RGBAAt(p.X, p.Y))
		}
	}
	// The center stays untouched.
	if out.RGBAAt(50, 50) == want {
		t.Error("circle interior must not be filled")
	}
}

func TestAnnotate_InvalidHexFallsBackToRed(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 60, 60))

	out := Annotate(img, []Marker{{X: 30, Y: 30, Radius: 10, Hex: "nope"}})

	if out.RGBAAt(40, 30) != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("fallback outline = %v, want red", out.RGBAAt(40, 30))
	}
}

func TestAnnotate_SourceUnchanged(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 60, 60))

	Annotate(img, []Marker{{X: 30, Y: 30, Radius: 10, Hex: "#ffffff", Label: "8"}})

	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("source image modified at byte %d", i)
		}
	}
}

func TestAnnotate_LabelDrawn(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 60, 60))

	out := Annotate(img, []Marker{{X: 30, Y: 30, Radius: 10, Hex: "#0000ff", Label: "7"}})

	// The label background plate sits just beside the center; at least one
	// pixel there must be non-zero.
	found := false
	for dy := -5; dy <= 5 && !found; dy++ {
		for dx := 0; dx <= 8 && !found; dx++ {
			r, g, b, a := out.At(30+dx, 30+dy).RGBA()
			if r|g|b|a != 0 {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected label pixels near the marker center")
	}
}

func TestAnnotate_ClipsAtImageEdge(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))

	// Must not panic for circles extending past the bounds.
	Annotate(img, []Marker{{X: 2, Y: 2, Radius: 15, Hex: "#123456"}})
}
