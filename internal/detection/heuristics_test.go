package detection

import (
	"testing"

	"cuevision/internal/imaging"
)

func TestIsTableFelt(t *testing.T) {
	tests := []struct {
		name string
		c    imaging.RGBColor
		want bool
	}{
		{"cyan cloth", imaging.RGBColor{R: 20, G: 150, B: 160}, true},
		{"green cloth", imaging.RGBColor{R: 40, G: 160, B: 60}, true},
		{"dark green ball", imaging.RGBColor{R: 20, G: 120, B: 60}, false},
		{"white", imaging.RGBColor{R: 250, G: 250, B: 250}, false},
		{"red ball", imaging.RGBColor{R: 200, G: 30, B: 30}, false},
		{"black", imaging.RGBColor{R: 10, G: 10, B: 10}, false},
	}
	for _, tt := range tests {
		if got := IsTableFelt(tt.c); got != tt.want {
			t.Errorf("IsTableFelt(%s %v) = %v, want %v", tt.name, tt.c, got, tt.want)
		}
	}
}

func TestIsPocketShadow(t *testing.T) {
	deep := imaging.RGBColor{R: 8, G: 8, B: 10}
	if !IsPocketShadow(deep, false) {
		t.Error("very dark pixel is a pocket anywhere in the frame")
	}

	dim := imaging.RGBColor{R: 20, G: 20, B: 22}
	if IsPocketShadow(dim, false) {
		t.Error("brightness 20 in the interior is not a pocket")
	}
	if !IsPocketShadow(dim, true) {
		t.Error("brightness 20 near the border is a pocket")
	}
}

func TestIsCueWhite(t *testing.T) {
	if !IsCueWhite(imaging.RGBColor{R: 250, G: 250, B: 248}) {
		t.Error("near-white should read as cue")
	}
	if IsCueWhite(imaging.RGBColor{R: 120, G: 120, B: 120}) {
		t.Error("mid-gray is too dark for the cue ball")
	}
	if IsCueWhite(imaging.RGBColor{R: 250, G: 200, B: 150}) {
		t.Error("a strongly tinted bright pixel is not cue white")
	}
}

func TestIsBallLike(t *testing.T) {
	tests := []struct {
		name string
		c    imaging.RGBColor
		want bool
	}{
		{"cue white", imaging.RGBColor{R: 250, G: 250, B: 248}, true},
		{"yellow ball", imaging.RGBColor{R: 250, G: 210, B: 30}, true},
		{"blue ball", imaging.RGBColor{R: 30, G: 60, B: 200}, true},
		{"eight ball", imaging.RGBColor{R: 40, G: 40, B: 45}, true},
		{"cyan felt", imaging.RGBColor{R: 20, G: 150, B: 160}, false},
		{"mid gray", imaging.RGBColor{R: 150, G: 150, B: 150}, false},
		{"pocket black", imaging.RGBColor{R: 5, G: 5, B: 5}, false},
	}
	for _, tt := range tests {
		if got := IsBallLike(tt.c); got != tt.want {
			t.Errorf("IsBallLike(%s %v) = %v, want %v", tt.name, tt.c, got, tt.want)
		}
	}
}
