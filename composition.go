package motion

import (
	"fmt"
	"math"
)

// Composite is implemented by animations that drive child animations.
type Composite interface {
	Animations() []Animation
}

type timing struct {
	start, end float64
}

// Group runs child animations on one timeline. Each child's window starts
// lag ratio of the way through the previous child's window; the group's
// rate function reshapes the whole timeline, and each child applies its own
// rate function inside its window.
//
// A Group has no mobject of its own: Mobject returns nil and the scene adds
// each child's mobject instead.
type Group struct {
	name    string
	anims   []Animation
	lag     float64
	rate    RateFunc
	runTime float64
	remover bool

	timings []timing
	maxEnd  float64
	state   animState

	// succession begins each child only once its window opens.
	succession bool
	active     int
	// skipped marks succession children whose Begin failed; err holds the
	// first such error.
	skipped []bool
	err     error
}

func newGroup(cfg Config, d settings, anims []Animation) (*Group, error) {
	if cfg.TimeSpan != nil {
		return nil, fmt.Errorf("motion: %s: time span on a group: %w", d.name, ErrBadConfig)
	}
	d.rate = Linear
	d.runTime = 0
	s, err := cfg.resolve(d)
	if err != nil {
		return nil, err
	}
	for i, a := range anims {
		if a == nil {
			return nil, fmt.Errorf("motion: %s: animation %d is nil: %w", s.name, i, ErrBadConfig)
		}
	}
	g := &Group{
		name:    s.name,
		anims:   anims,
		lag:     s.lagRatio,
		rate:    s.rate,
		remover: s.remover,
	}
	g.buildTimings()
	g.runTime = s.runTime
	if g.runTime <= 0 {
		g.runTime = g.maxEnd
	}
	return g, nil
}

// buildTimings lays the children out: child i starts at
// lerp(start[i-1], end[i-1], lag) and lasts its own run time.
func (g *Group) buildTimings() {
	g.timings = make([]timing, len(g.anims))
	g.maxEnd = 0
	curr := 0.0
	for i, a := range g.anims {
		start := curr
		end := start + a.RunTime()
		g.timings[i] = timing{start, end}
		g.maxEnd = math.Max(g.maxEnd, end)
		curr = lerp(start, end, g.lag)
	}
}

// AnimationGroup plays anims together (lag ratio 0 by default). The run
// time defaults to the end of the latest child window.
func AnimationGroup(cfg Config, anims ...Animation) (*Group, error) {
	return newGroup(cfg, defaultSettings("AnimationGroup"), anims)
}

// LaggedStart is AnimationGroup with a default lag ratio of
// DefaultLaggedRatio.
func LaggedStart(cfg Config, anims ...Animation) (*Group, error) {
	d := defaultSettings("LaggedStart")
	d.lagRatio = DefaultLaggedRatio
	return newGroup(cfg, d, anims)
}

// LaggedStartMap builds one animation per child of group with fn and
// staggers them. The run time defaults to 1 second for fewer than 15
// children and 2 seconds otherwise.
func LaggedStartMap(fn func(child *Node) (Animation, error), group *Node, cfg Config) (*Group, error) {
	if group == nil {
		return nil, fmt.Errorf("motion: LaggedStartMap: %w", ErrNilNode)
	}
	if fn == nil {
		return nil, fmt.Errorf("motion: LaggedStartMap: nil function: %w", ErrBadConfig)
	}
	anims := make([]Animation, 0, len(group.children))
	for _, c := range group.children {
		a, err := fn(c)
		if err != nil {
			return nil, fmt.Errorf("motion: LaggedStartMap child %q: %w", c.Name, err)
		}
		anims = append(anims, a)
	}
	if cfg.RunTime <= 0 {
		cfg.RunTime = 1
		if len(anims) >= 15 {
			cfg.RunTime = 2
		}
	}
	d := defaultSettings("LaggedStartMap")
	d.lagRatio = DefaultLaggedRatio
	return newGroup(cfg, d, anims)
}

// Succession plays anims one after another (lag ratio 1 by default). Each
// child is begun only when its window opens, so it starts from whatever
// state the previous children left behind. A child that fails to begin then
// is skipped; Err reports its error and Scene.Advance stops the play.
func Succession(cfg Config, anims ...Animation) (*Group, error) {
	d := defaultSettings("Succession")
	d.lagRatio = 1
	g, err := newGroup(cfg, d, anims)
	if err != nil {
		return nil, err
	}
	g.succession = true
	return g, nil
}

// Begin begins every child; a Succession begins only its first child.
func (g *Group) Begin() error {
	if g.state == stateRunning {
		panic("motion: Begin called on a running animation")
	}
	g.err = nil
	if g.succession {
		g.active = 0
		g.skipped = make([]bool, len(g.anims))
		if len(g.anims) > 0 {
			if err := g.anims[0].Begin(); err != nil {
				return fmt.Errorf("motion: %s: %w", g.name, err)
			}
		}
	} else {
		for i, a := range g.anims {
			if err := a.Begin(); err != nil {
				for j := i - 1; j >= 0; j-- {
					g.anims[j].Finish()
				}
				return fmt.Errorf("motion: %s: %w", g.name, err)
			}
		}
	}
	g.state = stateRunning
	g.interpolate(0)
	return nil
}

// Update maps alpha onto the group timeline and forwards each child its
// local progress.
func (g *Group) Update(alpha float64) {
	switch g.state {
	case stateIdle:
		panic(fmt.Sprintf("motion: Update called before Begin on %q", g.name))
	case stateFinished:
		panic(fmt.Sprintf("motion: Update called after Finish on %q", g.name))
	}
	g.interpolate(alpha)
}

func (g *Group) interpolate(alpha float64) {
	t := g.rate(alpha) * g.maxEnd
	if g.succession {
		g.advanceTo(t)
		if g.running(g.active) {
			g.anims[g.active].Update(g.localAlpha(g.active, t))
		}
		return
	}
	for i, a := range g.anims {
		a.Update(g.localAlpha(i, t))
	}
}

// localAlpha returns child i's progress at group time t. Zero-length
// windows report 0.
func (g *Group) localAlpha(i int, t float64) float64 {
	tm := g.timings[i]
	length := tm.end - tm.start
	if length == 0 {
		return 0
	}
	return clamp((t-tm.start)/length, 0, 1)
}

// advanceTo finishes the active child of a succession and begins the next
// for every window that has closed by time t. A child whose Begin fails is
// skipped and its error is reported by Err.
func (g *Group) advanceTo(t float64) {
	for g.active+1 < len(g.anims) && t >= g.timings[g.active+1].start && t >= g.timings[g.active].end {
		if g.running(g.active) {
			cur := g.anims[g.active]
			cur.Update(1)
			cur.Finish()
		}
		g.active++
		next := g.anims[g.active]
		if err := next.Begin(); err != nil {
			g.skipped[g.active] = true
			if g.err == nil {
				g.err = fmt.Errorf("motion: %s: begin %q: %w", g.name, next.Name(), err)
			}
		}
	}
}

// running reports whether succession child i has been begun successfully.
func (g *Group) running(i int) bool {
	return i < len(g.anims) && !g.isSkipped(i)
}

func (g *Group) isSkipped(i int) bool {
	return i < len(g.skipped) && g.skipped[i]
}

// Err returns the first error a child reported after Begin, such as a
// Succession child that failed to begin when its window opened.
func (g *Group) Err() error {
	if g.err != nil {
		return g.err
	}
	for _, a := range g.anims {
		if e, ok := a.(interface{ Err() error }); ok {
			if err := e.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Finish finishes every child. A succession first plays through the
// children it has not reached yet.
func (g *Group) Finish() {
	if g.state != stateRunning {
		panic(fmt.Sprintf("motion: Finish called without a running Begin on %q", g.name))
	}
	if g.succession {
		g.advanceTo(math.Inf(1))
		if g.running(g.active) {
			g.anims[g.active].Finish()
		}
	} else {
		for _, a := range g.anims {
			a.Finish()
		}
	}
	g.state = stateFinished
}

// Tick advances the helper nodes of running children.
func (g *Group) Tick(dt float64) {
	if g.state != stateRunning {
		return
	}
	if g.succession {
		if g.running(g.active) {
			g.anims[g.active].Tick(dt)
		}
		return
	}
	for _, a := range g.anims {
		a.Tick(dt)
	}
}

// CleanUp cleans up every child. When the group is a remover, every
// child's mobject leaves the scene too.
func (g *Group) CleanUp(s *Scene) {
	for i, a := range g.anims {
		if g.isSkipped(i) {
			continue
		}
		a.CleanUp(s)
		if g.remover {
			removeMobjects(s, a)
		}
	}
}

func removeMobjects(s *Scene, a Animation) {
	if c, ok := a.(Composite); ok {
		for _, child := range c.Animations() {
			removeMobjects(s, child)
		}
		return
	}
	if m := a.Mobject(); m != nil {
		s.Remove(m)
	}
}

// RunTime returns the group's duration in seconds.
func (g *Group) RunTime() float64 { return g.runTime }

// IsRemover reports whether the children's mobjects leave the scene.
func (g *Group) IsRemover() bool { return g.remover }

// Mobject returns nil; see Animations.
func (g *Group) Mobject() *Node { return nil }

// Name returns the group's label.
func (g *Group) Name() string { return g.name }

// Animations returns the children. The slice MUST NOT be mutated.
func (g *Group) Animations() []Animation { return g.anims }

// LagRatio returns the stagger between child windows.
func (g *Group) LagRatio() float64 { return g.lag }

// Window returns the start and end time of child i in seconds of the
// unscaled group timeline.
func (g *Group) Window(i int) (start, end float64) {
	return g.timings[i].start, g.timings[i].end
}
