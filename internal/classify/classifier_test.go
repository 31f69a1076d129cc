package classify

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuevision/internal/imaging"
)

// uniformBuffer fills a buffer with a single color so classification depends
// only on the range tables, not on sampling geometry.
func uniformBuffer(width, height int, c color.RGBA) *imaging.PixelBuffer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return imaging.FromImage(img)
}

func classifyUniform(t *testing.T, c color.RGBA, mode GameMode) Classification {
	t.Helper()
	buf := uniformBuffer(64, 64, c)
	return Classify(buf, 32, 32, 20, mode)
}

func TestClassify_CueBallBothModes(t *testing.T) {
	nearWhite := color.RGBA{250, 250, 248, 255}

	for _, mode := range []GameMode{ModePool, ModeSnooker} {
		cls := classifyUniform(t, nearWhite, mode)
		assert.Equal(t, BallCue, cls.Type, "mode %s", mode)
		assert.Equal(t, "white", cls.Name, "mode %s", mode)
		assert.GreaterOrEqual(t, cls.Confidence, 0.5, "mode %s", mode)
	}
}

func TestClassify_PoolSolids(t *testing.T) {
	cases := []struct {
		name   string
		color  color.RGBA
		number int
	}{
		{"yellow", color.RGBA{250, 210, 30, 255}, 1},
		{"blue", color.RGBA{30, 70, 200, 255}, 2},
		{"red", color.RGBA{200, 30, 30, 255}, 3},
		{"orange", color.RGBA{240, 120, 20, 255}, 5},
		{"green", color.RGBA{30, 140, 60, 255}, 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cls := classifyUniform(t, tc.color, ModePool)
			require.Equal(t, BallSolid, cls.Type)
			assert.Equal(t, tc.name, cls.Name)
			assert.Equal(t, tc.number, cls.Number)
			assert.GreaterOrEqual(t, cls.Confidence, 0.3)
		})
	}
}

func TestClassify_PoolEightBall(t *testing.T) {
	cls := classifyUniform(t, color.RGBA{30, 30, 35, 255}, ModePool)
	require.Equal(t, BallEight, cls.Type)
	assert.Equal(t, 8, cls.Number)
	assert.Equal(t, "black", cls.Name)
}

func TestClassify_SnookerColors(t *testing.T) {
	cases := []struct {
		color  color.RGBA
		typ    BallType
		points int
	}{
		{color.RGBA{200, 30, 30, 255}, BallRed, 1},
		{color.RGBA{250, 210, 30, 255}, BallYellow, 2},
		{color.RGBA{30, 140, 60, 255}, BallGreen, 3},
		{color.RGBA{30, 70, 200, 255}, BallBlue, 5},
		{color.RGBA{30, 30, 35, 255}, BallBlack, 7},
	}

	for _, tc := range cases {
		t.Run(string(tc.typ), func(t *testing.T) {
			cls := classifyUniform(t, tc.color, ModeSnooker)
			require.Equal(t, tc.typ, cls.Type)
			assert.Equal(t, tc.points, cls.Number)
		})
	}
}

func TestClassify_FallbackToCue(t *testing.T) {
	// Saturated cyan sits outside every pool range: green tops out at
	// hue 160, blue starts at 200.
	cls := classifyUniform(t, color.RGBA{30, 200, 200, 255}, ModePool)
	assert.Equal(t, BallCue, cls.Type)
	assert.Equal(t, "white", cls.Name)
	assert.Equal(t, 0.5, cls.Confidence)
}

func TestClassify_OverlapResolvedByConfidence(t *testing.T) {
	// A washed-out pale pink matches both the cue box and the striped
	// catch-all; the cue rule scores higher and must win.
	cls := classifyUniform(t, color.RGBA{230, 195, 195, 255}, ModePool)
	assert.Equal(t, BallCue, cls.Type)
	assert.Greater(t, cls.Confidence, 0.5)
}

func TestDominantColor_InnerDiskOnly(t *testing.T) {
	// Paint the perimeter band green; the sampler only reads within
	// 0.6×radius and must see pure red.
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			img.SetRGBA(x, y, color.RGBA{20, 20, 200, 255})
		}
	}
	cx, cy, r := 50, 50, 20
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d2 := dx*dx + dy*dy
			if d2 > r*r {
				continue
			}
			c := color.RGBA{200, 30, 30, 255}
			if d2 > 13*13 {
				c = color.RGBA{30, 200, 30, 255}
			}
			img.SetRGBA(cx+dx, cy+dy, c)
		}
	}
	buf := imaging.FromImage(img)

	got := DominantColor(buf, cx, cy, r)
	assert.Equal(t, imaging.RGBColor{R: 200, G: 30, B: 30}, got)
}

func TestDominantColor_ClampsAtBorders(t *testing.T) {
	buf := uniformBuffer(20, 20, color.RGBA{100, 110, 120, 255})

	got := DominantColor(buf, 1, 1, 10)
	assert.Equal(t, imaging.RGBColor{R: 100, G: 110, B: 120}, got)
}

func TestGameMode_Valid(t *testing.T) {
	assert.True(t, ModePool.Valid())
	assert.True(t, ModeSnooker.Valid())
	assert.False(t, GameMode("billiards").Valid())
	assert.False(t, GameMode("").Valid())
}
