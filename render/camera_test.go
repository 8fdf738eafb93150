package render

import (
	"math"
	"testing"

	"github.com/phanxgames/motion"
	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

func TestCameraOriginMapsToCenter(t *testing.T) {
	cam := NewCamera(640, 480)
	x, y := cam.WorldToScreen(motion.Origin)
	assert.InDelta(t, 320, x, 1e-9)
	assert.InDelta(t, 240, y, 1e-9)
}

func TestCameraYUp(t *testing.T) {
	cam := NewCamera(640, 480)
	// 480 px / 8 units = 60 px per unit.
	assert.InDelta(t, 60, cam.PixelsPerUnit(), 1e-9)
	x, y := cam.WorldToScreen(motion.Vec3{X: 1, Y: 4})
	assert.InDelta(t, 380, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}

func TestCameraRoundTrip(t *testing.T) {
	cam := NewCamera(320, 200)
	cam.X, cam.Y, cam.Zoom, cam.Rotation = 1.5, -2, 1.7, 0.4
	cam.MarkDirty()
	p := motion.Vec3{X: -0.75, Y: 2.25}
	sx, sy := cam.WorldToScreen(p)
	back := cam.ScreenToWorld(sx, sy)
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
}

func TestCameraRotation(t *testing.T) {
	cam := NewCamera(100, 100)
	cam.Rotation = math.Pi / 2
	cam.MarkDirty()
	// Rotating the camera counterclockwise turns scene +X toward screen
	// down.
	x, y := cam.WorldToScreen(motion.Right)
	assert.InDelta(t, 50, x, 1e-9)
	assert.InDelta(t, 50+cam.PixelsPerUnit(), y, 1e-9)
}

func TestCameraVisibleBounds(t *testing.T) {
	cam := NewCamera(800, 400)
	lo, hi := cam.VisibleBounds()
	assert.InDelta(t, -8, lo.X, 1e-9)
	assert.InDelta(t, 8, hi.X, 1e-9)
	assert.InDelta(t, -4, lo.Y, 1e-9)
	assert.InDelta(t, 4, hi.Y, 1e-9)
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(100, 100)
	cam.ScrollTo(2, -1, 1, ease.Linear)
	assert.True(t, cam.Scrolling())

	cam.Update(0.5)
	assert.InDelta(t, 1, cam.X, 1e-4)
	assert.InDelta(t, -0.5, cam.Y, 1e-4)

	cam.Update(0.5)
	assert.InDelta(t, 2, cam.X, 1e-4)
	assert.InDelta(t, -1, cam.Y, 1e-4)
	assert.False(t, cam.Scrolling())

	x, y := cam.WorldToScreen(motion.Vec3{X: 2, Y: -1})
	assert.InDelta(t, 50, x, 1e-3)
	assert.InDelta(t, 50, y, 1e-3)
}

func TestCameraFollow(t *testing.T) {
	cam := NewCamera(100, 100)
	dot := motion.NewDot("d", motion.Vec3{X: 3, Y: 1})
	cam.Follow(dot, 1)
	cam.Update(1.0 / 30)
	assert.InDelta(t, 3, cam.X, 1e-9)
	assert.InDelta(t, 1, cam.Y, 1e-9)

	cam.Unfollow()
	dot.Shift(motion.Right)
	cam.Update(1.0 / 30)
	assert.InDelta(t, 3, cam.X, 1e-9)
}

func TestInvertAffineSingular(t *testing.T) {
	inv := invertAffine([6]float64{0, 0, 5, 0, 0, 7})
	assert.Equal(t, [6]float64{1, 0, 0, 0, 1, 0}, [6]float64(inv))
}
