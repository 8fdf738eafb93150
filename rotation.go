package motion

import "fmt"

// RotateOptions configures Rotating and Rotate.
type RotateOptions struct {
	// Angle in radians; zero uses the family default.
	Angle float64
	// Axis of rotation; zero means Out.
	Axis Vec3
	// About is the pivot. When nil, AboutEdge picks a bounding box point of
	// the starting state; when both are nil the pivot is its center.
	About     *Vec3
	AboutEdge *Vec3
}

// rotatingVariant rotates the starting points by rate(alpha) * angle each
// frame, so the rotation never accumulates error.
type rotatingVariant struct {
	baseVariant
	opts RotateOptions
}

func (r *rotatingVariant) interpolateMobject(a *Anim, alpha float64) bool {
	for _, mobs := range a.families {
		copy(mobs[0].Points, mobs[1].Points)
	}
	var about Vec3
	switch {
	case r.opts.About != nil:
		about = *r.opts.About
	case r.opts.AboutEdge != nil:
		about = a.starting.BoundingBoxPoint(*r.opts.AboutEdge)
	default:
		about = a.starting.Center()
	}
	a.mobject.Rotate(a.cfg.rate(alpha)*r.opts.Angle, r.opts.Axis, about)
	return true
}

func newRotating(n *Node, opts RotateOptions, cfg Config, d settings, angle float64) (*Anim, error) {
	if n == nil {
		return nil, fmt.Errorf("motion: %s: %w", d.name, ErrNilNode)
	}
	if opts.Angle == 0 {
		opts.Angle = angle
	}
	a, err := newAnim(n, &rotatingVariant{opts: opts}, cfg, d)
	if err != nil {
		return nil, err
	}
	a.pointsOnly = true
	return a, nil
}

// Rotating spins n by a full turn over 5 seconds at constant speed. n's
// updaters keep running.
func Rotating(n *Node, opts RotateOptions, cfg Config) (*Anim, error) {
	d := defaultSettings("Rotating")
	d.runTime = 5
	d.rate = Linear
	d.suspend = false
	return newRotating(n, opts, cfg, d, Tau)
}

// Rotate turns n by half a turn with a smooth start and stop.
func Rotate(n *Node, opts RotateOptions, cfg Config) (*Anim, error) {
	d := defaultSettings("Rotate")
	d.suspend = false
	return newRotating(n, opts, cfg, d, Tau/2)
}
