package motion

import (
	"image/color"
	"math"
)

// Vec3 is a point or direction in scene space. Scenes are usually planar
// (Z = 0) but rotations and arcs are defined about arbitrary axes.
type Vec3 struct {
	X, Y, Z float64
}

// Standard directions. Y increases upward.
var (
	Origin = Vec3{}
	Up     = Vec3{0, 1, 0}
	Down   = Vec3{0, -1, 0}
	Left   = Vec3{-1, 0, 0}
	Right  = Vec3{1, 0, 0}
	Out    = Vec3{0, 0, 1}
	In     = Vec3{0, 0, -1}
)

// Common angles in radians.
const (
	Tau    = 2 * math.Pi
	Degree = math.Pi / 180
)

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Scale returns a * s.
func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }

// Mul returns the component-wise product of a and b.
func (a Vec3) Mul(b Vec3) Vec3 { return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }

// Dot returns the dot product of a and b.
func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length of a.
func (a Vec3) Len() float64 { return math.Sqrt(a.Dot(a)) }

// Normalize returns a scaled to unit length. A zero-length vector has no
// direction, so fallback is returned instead.
func (a Vec3) Normalize(fallback Vec3) Vec3 {
	l := a.Len()
	if l < 1e-12 {
		return fallback
	}
	return a.Scale(1 / l)
}

// Lerp returns (1-t)*a + t*b. Exact at t = 0 and t = 1.
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return Vec3{lerp(a.X, b.X, t), lerp(a.Y, b.Y, t), lerp(a.Z, b.Z, t)}
}

// RotateAbout rotates v by angle radians about axis (through the origin)
// using Rodrigues' formula. A zero axis rotates about Out.
func (a Vec3) RotateAbout(angle float64, axis Vec3) Vec3 {
	k := axis.Normalize(Out)
	sin, cos := math.Sincos(angle)
	return a.Scale(cos).
		Add(k.Cross(a).Scale(sin)).
		Add(k.Scale(k.Dot(a) * (1 - cos)))
}

// lerp interpolates between two scalars, exactly at t = 0 and t = 1.
func lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// clamp restricts x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// A is the opacity of whichever channel (stroke or fill) the color belongs to.
type Color struct {
	R, G, B, A float64
}

// Palette used by shape constructors and scripts.
var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorRed    = Color{0.988, 0.384, 0.333, 1}
	ColorGreen  = Color{0.514, 0.757, 0.404, 1}
	ColorBlue   = Color{0.345, 0.769, 0.867, 1}
	ColorYellow = Color{1, 1, 0, 1}
	ColorClear  = Color{}
)

// Lerp interpolates every component, including opacity.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		lerp(c.R, o.R, t),
		lerp(c.G, o.G, t),
		lerp(c.B, o.B, t),
		lerp(c.A, o.A, t),
	}
}

// WithAlpha returns c with its opacity replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// NRGBA converts c to an 8-bit straight-alpha color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(clamp(c.A, 0, 1)*255 + 0.5),
	}
}
