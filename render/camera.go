package render

import (
	"math"

	"github.com/phanxgames/motion"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/math/f64"
)

// DefaultFrameHeight is the number of scene units visible vertically at
// zoom 1.
const DefaultFrameHeight = 8.0

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera maps scene units (Y up) to image pixels (Y down).
type Camera struct {
	// X and Y are the scene position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (counterclockwise in the
	// scene).
	Rotation float64
	// FrameHeight is the scene height visible at zoom 1.
	FrameHeight float64
	// Width and Height are the output size in pixels.
	Width, Height int

	followTarget *motion.Node
	followLerp   float64

	viewMatrix    f64.Aff3
	invViewMatrix f64.Aff3
	dirty         bool

	scrollTween *scrollAnim
}

// NewCamera creates a camera centered on the origin for an image of the
// given pixel size.
func NewCamera(width, height int) *Camera {
	return &Camera{
		Zoom:        1.0,
		FrameHeight: DefaultFrameHeight,
		Width:       width,
		Height:      height,
		dirty:       true,
	}
}

// Follow makes the camera track the center of node. A lerp of 1.0 snaps
// immediately; lower values give smoother following.
func (c *Camera) Follow(node *motion.Node, lerp float64) {
	c.followTarget = node
	c.followLerp = lerp
}

// Unfollow stops tracking the current target node.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera to the given scene position over duration
// seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// Update advances follow and scroll by dt seconds.
func (c *Camera) Update(dt float32) {
	prevX, prevY := c.X, c.Y

	if c.followTarget != nil {
		target := c.followTarget.Center()
		c.X += (target.X - c.X) * c.followLerp
		c.Y += (target.Y - c.Y) * c.followLerp
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.X != prevX || c.Y != prevY {
		c.dirty = true
	}
}

// PixelsPerUnit returns the current scale from scene units to pixels.
func (c *Camera) PixelsPerUnit() float64 {
	return float64(c.Height) / c.FrameHeight * c.Zoom
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// view = Translate(cx, cy) * Scale(s, -s) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy is the image center and s the pixels per unit.
func (c *Camera) computeViewMatrix() f64.Aff3 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := float64(c.Width) / 2
	cy := float64(c.Height) / 2
	s := c.PixelsPerUnit()
	sin, cos := math.Sincos(-c.Rotation)

	// Rows of Scale(s,-s) * Rotate(-rot):
	// [ s*cos  -s*sin ]
	// [-s*sin  -s*cos ]
	a, b := s*cos, -s*sin
	d, e := -s*sin, -s*cos
	c.viewMatrix = f64.Aff3{
		a, b, cx - (a*c.X + b*c.Y),
		d, e, cy - (d*c.X + e*c.Y),
	}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// MarkDirty forces a recomputation of the view matrix. Call it after
// changing X, Y, Zoom, Rotation or FrameHeight directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// WorldToScreen converts a scene point to pixel coordinates.
func (c *Camera) WorldToScreen(p motion.Vec3) (sx, sy float64) {
	return transformPoint(c.computeViewMatrix(), p.X, p.Y)
}

// ScreenToWorld converts pixel coordinates to a scene point with Z = 0.
func (c *Camera) ScreenToWorld(sx, sy float64) motion.Vec3 {
	c.computeViewMatrix()
	x, y := transformPoint(c.invViewMatrix, sx, sy)
	return motion.Vec3{X: x, Y: y}
}

// VisibleBounds returns the scene-space bounds of the camera's view.
func (c *Camera) VisibleBounds() (lo, hi motion.Vec3) {
	w, h := float64(c.Width), float64(c.Height)
	lo = motion.Vec3{X: math.Inf(1), Y: math.Inf(1)}
	hi = motion.Vec3{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, corner := range [4][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}} {
		p := c.ScreenToWorld(corner[0], corner[1])
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	return lo, hi
}

// invertAffine returns the inverse of m, or the identity when m is
// singular.
func invertAffine(m f64.Aff3) f64.Aff3 {
	det := m[0]*m[4] - m[1]*m[3]
	if det > -1e-12 && det < 1e-12 {
		return f64.Aff3{1, 0, 0, 0, 1, 0}
	}
	inv := 1 / det
	a, b := m[4]*inv, -m[1]*inv
	d, e := -m[3]*inv, m[0]*inv
	return f64.Aff3{
		a, b, -(a*m[2] + b*m[5]),
		d, e, -(d*m[2] + e*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}
