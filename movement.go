package motion

import "fmt"

// homotopyVariant maps every member's starting points through fn at the
// member's eased progress.
type homotopyVariant struct {
	baseVariant
	fn func(p Vec3, t float64) Vec3
}

func (h *homotopyVariant) interpolateMember(a *Anim, mobs []*Node, alpha float64) {
	sub, start := mobs[0], mobs[1]
	for i, p := range start.Points {
		sub.Points[i] = h.fn(p, alpha)
	}
}

// Homotopy deforms n continuously: at progress t each starting point p is
// placed at fn(p, t). fn(p, 0) should be p for the motion to start in place.
// Default run time is 3 seconds.
func Homotopy(n *Node, fn func(p Vec3, t float64) Vec3, cfg Config) (*Anim, error) {
	return homotopy("Homotopy", n, fn, cfg)
}

// ComplexHomotopy is Homotopy on the complex plane: x + iy is mapped
// through fn and z is kept.
func ComplexHomotopy(n *Node, fn func(z complex128, t float64) complex128, cfg Config) (*Anim, error) {
	if fn == nil {
		return nil, fmt.Errorf("motion: ComplexHomotopy: nil function: %w", ErrBadConfig)
	}
	return homotopy("ComplexHomotopy", n, func(p Vec3, t float64) Vec3 {
		w := fn(complex(p.X, p.Y), t)
		return Vec3{real(w), imag(w), p.Z}
	}, cfg)
}

func homotopy(name string, n *Node, fn func(Vec3, float64) Vec3, cfg Config) (*Anim, error) {
	if fn == nil {
		return nil, fmt.Errorf("motion: %s: nil function: %w", name, ErrBadConfig)
	}
	d := defaultSettings(name)
	d.runTime = 3
	a, err := newAnim(n, &homotopyVariant{fn: fn}, cfg, d)
	if err != nil {
		return nil, err
	}
	a.pointsOnly = true
	return a, nil
}

// phaseFlowVariant integrates a vector field with one Euler step per frame.
type phaseFlowVariant struct {
	baseVariant
	field       func(Vec3) Vec3
	virtualTime float64
	lastAlpha   float64
	started     bool
}

func (f *phaseFlowVariant) prepare(*Anim) error {
	f.started = false
	return nil
}

func (f *phaseFlowVariant) interpolateMobject(a *Anim, alpha float64) bool {
	alpha = a.cfg.rate(alpha)
	if f.started {
		dt := f.virtualTime * (alpha - f.lastAlpha)
		for _, m := range a.families {
			pts := m[0].Points
			for i, p := range pts {
				pts[i] = p.Add(f.field(p).Scale(dt))
			}
		}
	}
	f.lastAlpha = alpha
	f.started = true
	return true
}

// PhaseFlow moves n's points along the vector field for virtualTime
// seconds of simulated time; zero uses the run time. The motion is
// integrated frame by frame, so the result depends on the frame rate.
func PhaseFlow(n *Node, field func(Vec3) Vec3, virtualTime float64, cfg Config) (*Anim, error) {
	if field == nil {
		return nil, fmt.Errorf("motion: PhaseFlow: nil field: %w", ErrBadConfig)
	}
	d := defaultSettings("PhaseFlow")
	d.runTime = 3
	d.rate = Linear
	d.suspend = false
	f := &phaseFlowVariant{field: field}
	a, err := newAnim(n, f, cfg, d)
	if err != nil {
		return nil, err
	}
	a.pointsOnly = true
	f.virtualTime = virtualTime
	if f.virtualTime <= 0 {
		f.virtualTime = a.cfg.runTime
	}
	return a, nil
}

type moveAlongPathVariant struct {
	baseVariant
	path *Node
}

func (m *moveAlongPathVariant) interpolateMobject(a *Anim, alpha float64) bool {
	a.mobject.MoveTo(m.path.PointFromProportion(a.cfg.rate(alpha)))
	return true
}

// MoveAlongPath moves n's center along path.
func MoveAlongPath(n, path *Node, cfg Config) (*Anim, error) {
	if path == nil || len(path.Points) == 0 {
		return nil, fmt.Errorf("motion: MoveAlongPath: empty path: %w", ErrNoTarget)
	}
	d := defaultSettings("MoveAlongPath")
	d.suspend = false
	return newAnim(n, &moveAlongPathVariant{path: path}, cfg, d)
}
