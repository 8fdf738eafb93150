package motion

import "fmt"

// Animation is a time-parameterized change to a node tree. The lifecycle is
// Begin, any number of Update calls with non-decreasing alpha in [0, 1],
// then Finish. CleanUp applies scene side effects afterwards. Calling Update
// or Finish out of order panics.
//
// There is no global animation manager; a Scene or the caller drives
// animations explicitly.
type Animation interface {
	// Begin captures the starting state and prepares interpolation.
	Begin() error
	// Update sets the animated nodes to their state at global alpha.
	Update(alpha float64)
	// Finish applies the final alpha and releases per-run state.
	Finish()
	// Tick advances the updaters of helper nodes the animation owns.
	Tick(dt float64)
	// CleanUp applies scene membership changes after Finish.
	CleanUp(s *Scene)

	RunTime() float64
	IsRemover() bool
	Mobject() *Node
	Name() string
}

type animState uint8

const (
	stateIdle animState = iota
	stateRunning
	stateFinished
)

// Anim drives every single-node animation family. What varies between
// families is held in a variant; timing, lag, locking and lifecycle checks
// are shared.
type Anim struct {
	cfg     settings
	mobject *Node
	v       variant
	state   animState

	// pointsOnly restricts per-member dispatch to members with points.
	pointsOnly bool

	starting *Node
	extras   []*Node
	// families[i] holds member i of the mobject, the starting snapshot and
	// every extra family the variant zips in.
	families [][]*Node
}

// newAnim resolves cfg against the family defaults d.
func newAnim(n *Node, v variant, cfg Config, d settings) (*Anim, error) {
	s, err := cfg.resolve(d)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, fmt.Errorf("motion: %s: %w", s.name, ErrNilNode)
	}
	return &Anim{cfg: s, mobject: n, v: v}, nil
}

// Begin captures the starting snapshot and interpolates alpha 0. Begin may
// be called again after Finish to replay the animation.
func (a *Anim) Begin() error {
	if a.state == stateRunning {
		panic("motion: Begin called on a running animation")
	}
	if err := a.v.prepare(a); err != nil {
		return err
	}
	a.starting = a.mobject.Copy()
	a.v.adjustStart(a)
	if a.cfg.suspend {
		a.mobject.SuspendUpdating()
	}
	a.extras = a.v.extra(a)
	a.families = zipFamilies(a.pointsOnly, append([]*Node{a.mobject, a.starting}, a.extras...)...)
	a.state = stateRunning
	a.interpolate(0)
	a.v.begun(a)
	return nil
}

// Update sets the mobject to its state at alpha.
func (a *Anim) Update(alpha float64) {
	switch a.state {
	case stateIdle:
		panic(fmt.Sprintf("motion: Update called before Begin on %q", a.cfg.name))
	case stateFinished:
		panic(fmt.Sprintf("motion: Update called after Finish on %q", a.cfg.name))
	}
	a.interpolate(alpha)
}

// Finish interpolates the final alpha, releases data locks and resumes
// updaters. The starting snapshot is dropped.
func (a *Anim) Finish() {
	if a.state != stateRunning {
		panic(fmt.Sprintf("motion: Finish called without a running Begin on %q", a.cfg.name))
	}
	a.interpolate(a.cfg.finalAlpha)
	a.v.finish(a)
	if a.cfg.suspend {
		a.mobject.ResumeUpdating()
	}
	a.state = stateFinished
	a.families = nil
	a.starting = nil
	a.extras = nil
}

// Tick runs the updaters of the starting snapshot and any helper nodes.
// The mobject itself is updated by its scene.
func (a *Anim) Tick(dt float64) {
	if a.state != stateRunning {
		return
	}
	a.starting.Update(dt)
	for _, n := range a.extras {
		n.Update(dt)
	}
}

// CleanUp removes a remover's mobject from s and applies family-specific
// scene changes.
func (a *Anim) CleanUp(s *Scene) {
	if a.cfg.remover {
		s.Remove(a.mobject)
	}
	a.v.cleanUp(a, s)
}

// RunTime returns the duration in seconds.
func (a *Anim) RunTime() float64 { return a.cfg.runTime }

// IsRemover reports whether the mobject leaves the scene on completion.
func (a *Anim) IsRemover() bool { return a.cfg.remover }

// Mobject returns the animated node.
func (a *Anim) Mobject() *Node { return a.mobject }

// Name returns the animation's label.
func (a *Anim) Name() string { return a.cfg.name }

// LagRatio returns the stagger between family members.
func (a *Anim) LagRatio() float64 { return a.cfg.lagRatio }

// StartingState returns the snapshot captured by Begin, or nil outside a
// run.
func (a *Anim) StartingState() *Node { return a.starting }

func (a *Anim) interpolate(alpha float64) {
	alpha = a.timeSpanned(alpha)
	if a.v.interpolateMobject(a, alpha) {
		return
	}
	n := len(a.families)
	for i, mobs := range a.families {
		a.v.interpolateMember(a, mobs, a.subAlpha(alpha, i, n))
	}
}

// timeSpanned maps global alpha into the configured time span.
func (a *Anim) timeSpanned(alpha float64) float64 {
	ts := a.cfg.timeSpan
	if ts == nil {
		return alpha
	}
	width := ts.End - ts.Start
	return clamp(alpha*a.cfg.runTime-ts.Start, 0, width) / width
}

// subAlpha returns the eased progress of member index out of count. With
// lag ratio r the members' windows start r apart on a timeline of length
// (count-1)*r + 1.
func (a *Anim) subAlpha(alpha float64, index, count int) float64 {
	return a.cfg.rate(rawSubAlpha(alpha, a.cfg.lagRatio, index, count))
}

func rawSubAlpha(alpha, lag float64, index, count int) float64 {
	full := float64(count-1)*lag + 1
	return clamp(alpha*full-float64(index)*lag, 0, 1)
}

// zipFamilies returns the families of roots zipped by index. The families
// must be congruent; extra members of longer families are ignored.
func zipFamilies(pointsOnly bool, roots ...*Node) [][]*Node {
	fams := make([][]*Node, len(roots))
	size := -1
	for i, r := range roots {
		fams[i] = r.Family()
		if size < 0 || len(fams[i]) < size {
			size = len(fams[i])
		}
	}
	backing := make([]*Node, 0, size*len(roots))
	out := make([][]*Node, 0, size)
	for m := 0; m < size; m++ {
		if pointsOnly && len(fams[0][m].Points) == 0 {
			continue
		}
		start := len(backing)
		for _, f := range fams {
			backing = append(backing, f[m])
		}
		out = append(out, backing[start:len(backing):len(backing)])
	}
	return out
}

// variant holds the per-family behavior of an Anim. Every variant embeds
// baseVariant and overrides only what it needs.
type variant interface {
	// prepare runs at Begin before the snapshot: target creation, alignment.
	prepare(a *Anim) error
	// adjustStart edits the starting snapshot right after it is taken.
	adjustStart(a *Anim)
	// extra returns additional roots zipped after mobject and snapshot.
	extra(a *Anim) []*Node
	// begun runs after the alpha-0 interpolation.
	begun(a *Anim)
	// interpolateMobject handles a whole frame; false falls back to
	// per-member dispatch.
	interpolateMobject(a *Anim, alpha float64) bool
	// interpolateMember updates one zipped member tuple.
	interpolateMember(a *Anim, mobs []*Node, alpha float64)
	finish(a *Anim)
	cleanUp(a *Anim, s *Scene)
}

type baseVariant struct{}

func (baseVariant) prepare(*Anim) error { return nil }
func (baseVariant) adjustStart(*Anim) {}
func (baseVariant) extra(*Anim) []*Node { return nil }
func (baseVariant) begun(*Anim) {}
func (baseVariant) interpolateMobject(*Anim, float64) bool { return false }
func (baseVariant) interpolateMember(*Anim, []*Node, float64) {}
func (baseVariant) finish(*Anim) {}
func (baseVariant) cleanUp(*Anim, *Scene) {}
