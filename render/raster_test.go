package render

import (
	"image/color"
	"testing"

	"github.com/phanxgames/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertColor(t *testing.T, want, got color.NRGBA) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 2, "R")
	assert.InDelta(t, want.G, got.G, 2, "G")
	assert.InDelta(t, want.B, got.B, 2, "B")
	assert.InDelta(t, want.A, got.A, 2, "A")
}

func filledSquare() *motion.Node {
	sq := motion.NewSquare("sq", 2)
	sq.SetFill(motion.ColorRed)
	sq.SetStrokeWidth(0)
	return sq
}

func TestRasterizeFill(t *testing.T) {
	img := Rasterize(filledSquare(), Options{Width: 100, Height: 100})
	require.Equal(t, 100, img.Bounds().Dx())

	// 12.5 px per unit: the square covers 37.5..62.5.
	assertColor(t, motion.ColorRed.NRGBA(), ColorAt(img, 50, 50))
	assertColor(t, motion.ColorBlack.NRGBA(), ColorAt(img, 5, 5))
	assertColor(t, motion.ColorBlack.NRGBA(), ColorAt(img, 70, 50))
}

func TestRasterizeBackground(t *testing.T) {
	bg := motion.ColorWhite
	img := Rasterize(nil, Options{Width: 10, Height: 10, Background: &bg})
	assertColor(t, motion.ColorWhite.NRGBA(), ColorAt(img, 3, 7))
}

func TestRasterizeStroke(t *testing.T) {
	line := motion.NewLine("l", motion.Vec3{X: -3}, motion.Vec3{X: 3})
	line.SetStroke(motion.ColorBlue, 40)
	img := Rasterize(line, Options{Width: 100, Height: 100})

	assertColor(t, motion.ColorBlue.NRGBA(), ColorAt(img, 50, 50))
	assertColor(t, motion.ColorBlue.NRGBA(), ColorAt(img, 20, 50))
	assertColor(t, motion.ColorBlack.NRGBA(), ColorAt(img, 50, 30))
}

func TestRasterizeTransparentFillSkipped(t *testing.T) {
	sq := filledSquare()
	sq.SetOpacity(0)
	img := Rasterize(sq, Options{Width: 40, Height: 40})
	assertColor(t, motion.ColorBlack.NRGBA(), ColorAt(img, 20, 20))
}

func TestRasterizePoints(t *testing.T) {
	cloud := motion.NewPointCloud("pc", []motion.Vec3{motion.Origin})
	cloud.SetStroke(motion.ColorGreen, 2)
	img := Rasterize(cloud, Options{Width: 40, Height: 40, PointSize: 4})
	assertColor(t, motion.ColorGreen.NRGBA(), ColorAt(img, 20, 20))
	assertColor(t, motion.ColorBlack.NRGBA(), ColorAt(img, 30, 30))
}

func TestRasterizeChildren(t *testing.T) {
	left := filledSquare()
	left.Shift(motion.Vec3{X: -2})
	right := filledSquare()
	right.SetFill(motion.ColorBlue)
	right.Shift(motion.Vec3{X: 2})
	img := Rasterize(motion.NewGroup("g", left, right), Options{Width: 100, Height: 100})

	assertColor(t, motion.ColorRed.NRGBA(), ColorAt(img, 25, 50))
	assertColor(t, motion.ColorBlue.NRGBA(), ColorAt(img, 75, 50))
	assertColor(t, motion.ColorBlack.NRGBA(), ColorAt(img, 50, 50))
}

func TestRasterizeSupersample(t *testing.T) {
	img := Rasterize(filledSquare(), Options{Width: 100, Height: 100, Supersample: 2})
	assert.Equal(t, 100, img.Bounds().Dx())
	assertColor(t, motion.ColorRed.NRGBA(), ColorAt(img, 50, 50))
	assertColor(t, motion.ColorBlack.NRGBA(), ColorAt(img, 5, 95))
}

func TestRendererReusesBuffer(t *testing.T) {
	r := NewRenderer(Options{Width: 50, Height: 50})
	sq := filledSquare()
	first := r.Render(sq)
	sq.Shift(motion.Vec3{X: 10})
	second := r.Render(sq)
	assert.Same(t, first, second)
	assertColor(t, motion.ColorBlack.NRGBA(), ColorAt(second, 25, 25))
}
