package motion

import (
	"fmt"
	"math"
)

// FadeOptions configures FadeIn and FadeOut. Shift and Scale describe the
// faded state relative to the visible one.
type FadeOptions struct {
	Shift Vec3
	// Scale of the faded state; nil means 1. FadeOut may shrink to zero;
	// FadeIn cannot start from a zero scale, use FadeInFromPoint instead.
	Scale *float64
}

func (o FadeOptions) scale() float64 {
	if o.Scale == nil {
		return 1
	}
	return *o.Scale
}

// FadeIn fades n in from transparent, starting shifted back by Shift and
// scaled by 1/Scale.
func FadeIn(n *Node, opts FadeOptions, cfg Config) (*Anim, error) {
	s := opts.scale()
	if s <= 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		return nil, fmt.Errorf("motion: FadeIn: scale %v: %w", s, ErrBadConfig)
	}
	return fadeIn("FadeIn", n, opts.Shift, 1/s, cfg)
}

// FadeInFromPoint fades n in while growing out of point.
func FadeInFromPoint(n *Node, point Vec3, cfg Config) (*Anim, error) {
	if n == nil {
		return nil, fmt.Errorf("motion: FadeInFromPoint: %w", ErrNilNode)
	}
	return fadeIn("FadeInFromPoint", n, n.Center().Sub(point), 0, cfg)
}

// fadeIn starts from a transparent copy scaled by startScale about its
// center and shifted by -shift.
func fadeIn(name string, n *Node, shift Vec3, startScale float64, cfg Config) (*Anim, error) {
	t := &transformVariant{
		create: func(a *Anim) (*Node, error) { return a.mobject.Copy(), nil },
		start: func(start *Node) {
			start.SetOpacity(0)
			start.Scale(startScale)
			start.Shift(shift.Scale(-1))
		},
	}
	return newAnim(n, t, cfg, defaultSettings(name))
}

// FadeOut fades n to transparent while moving by Shift and scaling by
// Scale. It removes n from the scene and Finish leaves n at alpha 0, so n
// is intact if it is added back later.
func FadeOut(n *Node, opts FadeOptions, cfg Config) (*Anim, error) {
	s := opts.scale()
	if s < 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		return nil, fmt.Errorf("motion: FadeOut: scale %v: %w", s, ErrBadConfig)
	}
	return fadeOut("FadeOut", n, opts.Shift, s, cfg)
}

// FadeOutToPoint fades n out while shrinking into point.
func FadeOutToPoint(n *Node, point Vec3, cfg Config) (*Anim, error) {
	if n == nil {
		return nil, fmt.Errorf("motion: FadeOutToPoint: %w", ErrNilNode)
	}
	return fadeOut("FadeOutToPoint", n, point.Sub(n.Center()), 0, cfg)
}

func fadeOut(name string, n *Node, shift Vec3, scale float64, cfg Config) (*Anim, error) {
	d := defaultSettings(name)
	d.remover = true
	d.finalAlpha = 0
	return newAnim(n, copyTarget(func(t *Node) {
		t.SetOpacity(0)
		t.Shift(shift)
		t.Scale(scale)
	}), cfg, d)
}

// fadeTransformVariant cross-fades between two nodes: each becomes a
// transparent ghost stretched over the other.
type fadeTransformVariant struct {
	baseVariant
	source, target *Node
	stretch        bool
	ending         *Node
}

func (f *fadeTransformVariant) prepare(a *Anim) error {
	f.ending = a.mobject.Copy()
	ghostTo(f.ending.children[0], f.ending.children[1], f.stretch)
	return nil
}

func (f *fadeTransformVariant) adjustStart(a *Anim) {
	ghostTo(a.starting.children[1], a.starting.children[0], f.stretch)
}

func (f *fadeTransformVariant) extra(*Anim) []*Node {
	return []*Node{f.ending}
}

func (f *fadeTransformVariant) interpolateMember(a *Anim, mobs []*Node, alpha float64) {
	mobs[0].Interpolate(mobs[1], mobs[2], alpha, a.cfg.path)
}

func (f *fadeTransformVariant) cleanUp(a *Anim, s *Scene) {
	s.Remove(a.mobject)
	f.source.RestoreState()
	if !a.cfg.remover {
		s.Add(f.target)
	}
}

func ghostTo(source, target *Node, stretch bool) {
	source.Replace(target, stretch)
	source.SetOpacity(0)
}

// FadeTransform cross-fades n into target: n fades out while stretching
// over target, and a copy of target fades in from n's bounds. On clean up
// n is restored and target takes its place in the scene.
func FadeTransform(n, target *Node, stretch bool, cfg Config) (*Anim, error) {
	if n == nil {
		return nil, fmt.Errorf("motion: FadeTransform: %w", ErrNilNode)
	}
	if target == nil {
		return nil, fmt.Errorf("motion: FadeTransform: %w", ErrNoTarget)
	}
	n.SaveState()
	group := NewGroup(n.Name+"+"+target.Name, n, target.Copy())
	return newAnim(group, &fadeTransformVariant{source: n, target: target, stretch: stretch}, cfg, defaultSettings("FadeTransform"))
}

// vfadeVariant fades stroke and fill opacity of vector paths without
// touching their geometry.
type vfadeVariant struct {
	baseVariant
	out bool
}

func (v *vfadeVariant) interpolateMember(a *Anim, mobs []*Node, alpha float64) {
	if v.out {
		alpha = 1 - alpha
	}
	sub, start := mobs[0], mobs[1]
	sub.Stroke.A = lerp(0, start.Stroke.A, alpha)
	sub.Fill.A = lerp(0, start.Fill.A, alpha)
}

// requireVector rejects nodes whose family holds non-vector data.
func requireVector(name string, n *Node) error {
	if n == nil {
		return fmt.Errorf("motion: %s: %w", name, ErrNilNode)
	}
	for _, m := range n.Family() {
		if m.Type == NodeTypePoints || m.Type == NodeTypeValue {
			return fmt.Errorf("motion: %s on %s node %q: %w", name, m.Type, m.Name, ErrUnsupportedNode)
		}
	}
	return nil
}

func vfade(name string, n *Node, out bool, cfg Config, d settings) (*Anim, error) {
	if err := requireVector(name, n); err != nil {
		return nil, err
	}
	d.suspend = false
	return newAnim(n, &vfadeVariant{out: out}, cfg, d)
}

// VFadeIn raises a vector node's stroke and fill opacity from zero to
// their current values.
func VFadeIn(n *Node, cfg Config) (*Anim, error) {
	return vfade("VFadeIn", n, false, cfg, defaultSettings("VFadeIn"))
}

// VFadeOut lowers a vector node's opacity to zero and removes it.
func VFadeOut(n *Node, cfg Config) (*Anim, error) {
	d := defaultSettings("VFadeOut")
	d.remover = true
	d.finalAlpha = 0
	return vfade("VFadeOut", n, true, cfg, d)
}

// VFadeInThenOut fades a vector node in and back out, then removes it.
func VFadeInThenOut(n *Node, cfg Config) (*Anim, error) {
	d := defaultSettings("VFadeInThenOut")
	d.rate = ThereAndBack
	d.remover = true
	d.finalAlpha = 0.5
	return vfade("VFadeInThenOut", n, false, cfg, d)
}
