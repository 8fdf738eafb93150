package motion

import "fmt"

// valueVariant sets a value node's number from fn at time-spanned
// progress. The rate function is not applied; fn owns the easing.
type valueVariant struct {
	baseVariant
	fn func(alpha float64) float64

	// from captures the starting value at Begin when set.
	from func(start float64)
}

func (v *valueVariant) prepare(a *Anim) error {
	if v.from != nil {
		v.from(a.mobject.Value)
	}
	return nil
}

func (v *valueVariant) interpolateMobject(a *Anim, alpha float64) bool {
	a.mobject.Value = v.fn(alpha)
	return true
}

func newValueAnim(name string, n *Node, v *valueVariant, cfg Config) (*Anim, error) {
	if n == nil {
		return nil, fmt.Errorf("motion: %s: %w", name, ErrNilNode)
	}
	if n.Type != NodeTypeValue {
		return nil, fmt.Errorf("motion: %s on %s node %q: %w", name, n.Type, n.Name, ErrUnsupportedNode)
	}
	d := defaultSettings(name)
	d.suspend = false
	return newAnim(n, v, cfg, d)
}

// ChangingValue drives a value node with fn(alpha).
func ChangingValue(n *Node, fn func(alpha float64) float64, cfg Config) (*Anim, error) {
	if fn == nil {
		return nil, fmt.Errorf("motion: ChangingValue: nil function: %w", ErrBadConfig)
	}
	return newValueAnim("ChangingValue", n, &valueVariant{fn: fn}, cfg)
}

// ChangeValueTo moves a value node linearly from its value at Begin to
// target.
func ChangeValueTo(n *Node, target float64, cfg Config) (*Anim, error) {
	var start float64
	v := &valueVariant{
		fn:   func(alpha float64) float64 { return lerp(start, target, alpha) },
		from: func(s float64) { start = s },
	}
	return newValueAnim("ChangeValueTo", n, v, cfg)
}

// CountInFrom counts a value node up (or down) from source to the value it
// holds now.
func CountInFrom(n *Node, source float64, cfg Config) (*Anim, error) {
	if n == nil {
		return nil, fmt.Errorf("motion: CountInFrom: %w", ErrNilNode)
	}
	end := n.Value
	v := &valueVariant{fn: func(alpha float64) float64 {
		return lerp(source, end, clamp(alpha, 0, 1))
	}}
	return newValueAnim("CountInFrom", n, v, cfg)
}
