package motion

import (
	"fmt"
	"math/cmplx"

	"golang.org/x/image/math/f64"
)

// transformVariant morphs the mobject into a target. The target is resolved
// at Begin, aligned against the mobject and zipped in as the third family.
type transformVariant struct {
	baseVariant

	target *Node
	// create builds the target at Begin; nil uses target as given.
	create func(a *Anim) (*Node, error)
	// start edits the starting snapshot (fades and growth start elsewhere).
	start func(start *Node)
	// replace swaps mobject for target in the scene on clean up.
	replace bool

	resolved   *Node
	targetCopy *Node
}

func (t *transformVariant) prepare(a *Anim) error {
	target := t.target
	if t.create != nil {
		var err error
		if target, err = t.create(a); err != nil {
			return err
		}
	}
	if target == nil {
		return fmt.Errorf("motion: %s: %w", a.cfg.name, ErrNoTarget)
	}
	t.resolved = target
	if target != a.mobject && a.mobject.IsAlignedWith(target) {
		t.targetCopy = target
	} else {
		t.targetCopy = target.Copy()
		a.mobject.AlignFamily(t.targetCopy)
	}
	return nil
}

func (t *transformVariant) adjustStart(a *Anim) {
	if t.start != nil {
		t.start(a.starting)
	}
}

func (t *transformVariant) extra(*Anim) []*Node {
	return []*Node{t.targetCopy}
}

func (t *transformVariant) begun(a *Anim) {
	if !a.mobject.HasUpdaters() {
		a.mobject.LockMatchingData(a.starting, t.targetCopy)
	}
}

func (t *transformVariant) interpolateMember(a *Anim, mobs []*Node, alpha float64) {
	mobs[0].Interpolate(mobs[1], mobs[2], alpha, a.cfg.path)
}

func (t *transformVariant) finish(a *Anim) {
	a.mobject.UnlockData()
}

func (t *transformVariant) cleanUp(a *Anim, s *Scene) {
	if t.replace {
		s.Remove(a.mobject)
		s.Add(t.resolved)
	}
}

// Transform morphs n into target. n's family is aligned with a copy of
// target at Begin; target itself is never modified.
func Transform(n, target *Node, cfg Config) (*Anim, error) {
	if target == nil {
		return nil, fmt.Errorf("motion: Transform: %w", ErrNoTarget)
	}
	return newAnim(n, &transformVariant{target: target}, cfg, defaultSettings("Transform"))
}

// ReplacementTransform is Transform that leaves target, not n, in the scene.
func ReplacementTransform(n, target *Node, cfg Config) (*Anim, error) {
	if target == nil {
		return nil, fmt.Errorf("motion: ReplacementTransform: %w", ErrNoTarget)
	}
	return newAnim(n, &transformVariant{target: target, replace: true}, cfg, defaultSettings("ReplacementTransform"))
}

// TransformFromCopy morphs a copy of n into target, leaving n in place.
func TransformFromCopy(n, target *Node, cfg Config) (*Anim, error) {
	if n == nil {
		return nil, fmt.Errorf("motion: TransformFromCopy: %w", ErrNilNode)
	}
	if target == nil {
		return nil, fmt.Errorf("motion: TransformFromCopy: %w", ErrNoTarget)
	}
	return newAnim(n.Copy(), &transformVariant{target: target, replace: true}, cfg, defaultSettings("TransformFromCopy"))
}

// MoveToTarget transforms n into n.Target (see GenerateTarget).
func MoveToTarget(n *Node, cfg Config) (*Anim, error) {
	if n == nil {
		return nil, fmt.Errorf("motion: MoveToTarget: %w", ErrNilNode)
	}
	if n.Target == nil {
		return nil, fmt.Errorf("motion: MoveToTarget on %q: %w", n.Name, ErrNoTarget)
	}
	return newAnim(n, &transformVariant{target: n.Target}, cfg, defaultSettings("MoveToTarget"))
}

// Restore transforms n back into its saved state (see SaveState).
func Restore(n *Node, cfg Config) (*Anim, error) {
	if n == nil {
		return nil, fmt.Errorf("motion: Restore: %w", ErrNilNode)
	}
	if n.saved == nil {
		return nil, fmt.Errorf("motion: Restore on %q: %w", n.Name, ErrNoSavedState)
	}
	return newAnim(n, &transformVariant{target: n.saved}, cfg, defaultSettings("Restore"))
}

// copyTarget returns a transform variant whose target is a copy of the
// mobject edited by method at Begin.
func copyTarget(method func(target *Node)) *transformVariant {
	return &transformVariant{create: func(a *Anim) (*Node, error) {
		target := a.mobject.Copy()
		method(target)
		return target, nil
	}}
}

// ApplyMethod transforms n into a copy of itself edited by method.
func ApplyMethod(n *Node, method func(target *Node), cfg Config) (*Anim, error) {
	if method == nil {
		return nil, fmt.Errorf("motion: ApplyMethod: nil method: %w", ErrBadConfig)
	}
	return newAnim(n, copyTarget(method), cfg, defaultSettings("ApplyMethod"))
}

// ApplyFunction transforms n into whatever fn returns for a copy of n.
// A nil result fails Begin with ErrNoTarget.
func ApplyFunction(n *Node, fn func(copy *Node) *Node, cfg Config) (*Anim, error) {
	if fn == nil {
		return nil, fmt.Errorf("motion: ApplyFunction: nil function: %w", ErrBadConfig)
	}
	t := &transformVariant{create: func(a *Anim) (*Node, error) {
		return fn(a.mobject.Copy()), nil
	}}
	return newAnim(n, t, cfg, defaultSettings("ApplyFunction"))
}

// ApplyPointwiseFunction transforms n by mapping every point through fn.
// Default run time is 3 seconds.
func ApplyPointwiseFunction(n *Node, fn func(Vec3) Vec3, cfg Config) (*Anim, error) {
	if fn == nil {
		return nil, fmt.Errorf("motion: ApplyPointwiseFunction: nil function: %w", ErrBadConfig)
	}
	d := defaultSettings("ApplyPointwiseFunction")
	d.runTime = 3
	return newAnim(n, copyTarget(func(t *Node) { t.ApplyFunc(fn) }), cfg, d)
}

// ApplyPointwiseFunctionToCenter moves n so its center becomes fn(center).
func ApplyPointwiseFunctionToCenter(n *Node, fn func(Vec3) Vec3, cfg Config) (*Anim, error) {
	if fn == nil {
		return nil, fmt.Errorf("motion: ApplyPointwiseFunctionToCenter: nil function: %w", ErrBadConfig)
	}
	return newAnim(n, copyTarget(func(t *Node) { t.MoveTo(fn(t.Center())) }),
		cfg, defaultSettings("ApplyPointwiseFunctionToCenter"))
}

// ApplyMatrix transforms n by a linear map about the origin. The matrix is
// given row by row and must be 2x2 (acting on X and Y) or 3x3.
func ApplyMatrix(n *Node, matrix [][]float64, cfg Config) (*Anim, error) {
	m, err := toMat3(matrix)
	if err != nil {
		return nil, fmt.Errorf("motion: ApplyMatrix: %w", err)
	}
	d := defaultSettings("ApplyMatrix")
	d.runTime = 3
	return newAnim(n, copyTarget(func(t *Node) {
		t.ApplyFunc(func(p Vec3) Vec3 { return mulMat3(m, p) })
	}), cfg, d)
}

// toMat3 promotes a 2x2 matrix into the upper-left of an identity 3x3.
func toMat3(rows [][]float64) (f64.Mat3, error) {
	m := f64.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
	size := len(rows)
	if size != 2 && size != 3 {
		return m, fmt.Errorf("%d rows: %w", size, ErrBadMatrix)
	}
	for i, row := range rows {
		if len(row) != size {
			return m, fmt.Errorf("row %d has %d columns: %w", i, len(row), ErrBadMatrix)
		}
		for j, v := range row {
			m[3*i+j] = v
		}
	}
	return m, nil
}

func mulMat3(m f64.Mat3, p Vec3) Vec3 {
	return Vec3{
		m[0]*p.X + m[1]*p.Y + m[2]*p.Z,
		m[3]*p.X + m[4]*p.Y + m[5]*p.Z,
		m[6]*p.X + m[7]*p.Y + m[8]*p.Z,
	}
}

// ApplyComplexFunction maps every point, read as x + iy, through fn. Unless
// configured otherwise, points travel along an arc whose angle is the
// argument of fn(1), so rotations look like rotations.
func ApplyComplexFunction(n *Node, fn func(complex128) complex128, cfg Config) (*Anim, error) {
	if fn == nil {
		return nil, fmt.Errorf("motion: ApplyComplexFunction: nil function: %w", ErrBadConfig)
	}
	d := defaultSettings("ApplyComplexFunction")
	d.pathArc = imag(cmplx.Log(fn(1)))
	return newAnim(n, copyTarget(func(t *Node) {
		t.ApplyFunc(func(p Vec3) Vec3 {
			w := fn(complex(p.X, p.Y))
			return Vec3{real(w), imag(w), p.Z}
		})
	}), cfg, d)
}

// FadeToColor transforms n's stroke and fill to color.
func FadeToColor(n *Node, color Color, cfg Config) (*Anim, error) {
	return newAnim(n, copyTarget(func(t *Node) { t.SetColor(color) }), cfg, defaultSettings("FadeToColor"))
}

// ScaleInPlace scales n about its center.
func ScaleInPlace(n *Node, factor float64, cfg Config) (*Anim, error) {
	return newAnim(n, copyTarget(func(t *Node) { t.Scale(factor) }), cfg, defaultSettings("ScaleInPlace"))
}

// ShrinkToCenter scales n down to its center point.
func ShrinkToCenter(n *Node, cfg Config) (*Anim, error) {
	a, err := ScaleInPlace(n, 0, cfg)
	if err == nil && cfg.Name == "" {
		a.cfg.name = "ShrinkToCenter"
	}
	return a, err
}

// CyclicReplace moves every child of group to the position of the child
// before it (the first moves to the last), along a 90 degree arc by
// default. group needs at least two children.
func CyclicReplace(group *Node, cfg Config) (*Anim, error) {
	return cyclicReplace("CyclicReplace", group, cfg)
}

// Swap exchanges the positions of the two children of group.
func Swap(group *Node, cfg Config) (*Anim, error) {
	return cyclicReplace("Swap", group, cfg)
}

func cyclicReplace(name string, group *Node, cfg Config) (*Anim, error) {
	if group == nil {
		return nil, fmt.Errorf("motion: %s: %w", name, ErrNilNode)
	}
	if len(group.children) < 2 {
		return nil, fmt.Errorf("motion: %s needs at least 2 members, got %d: %w", name, len(group.children), ErrTooFewMembers)
	}
	d := defaultSettings(name)
	d.pathArc = 90 * Degree
	t := &transformVariant{create: func(a *Anim) (*Node, error) {
		src := a.mobject.children
		target := a.mobject.Copy()
		k := len(src)
		for i, m := range target.children {
			m.MoveTo(src[(i-1+k)%k].Center())
		}
		return target, nil
	}}
	return newAnim(group, t, cfg, d)
}
