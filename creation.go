package motion

import (
	"fmt"
	"math"
)

// CreationBounds returns the partial-reveal window of ShowCreation: the
// path from its start up to alpha.
func CreationBounds(alpha float64) (lo, hi float64) {
	return 0, alpha
}

// FlashBounds returns the partial-reveal window of ShowPassingFlash: a
// sliver of the given width whose leading edge sits at alpha, clipped to
// [0, 1].
func FlashBounds(width float64) func(alpha float64) (lo, hi float64) {
	return func(alpha float64) (float64, float64) {
		return clamp(alpha-width, 0, 1), clamp(alpha, 0, 1)
	}
}

// partialVariant reveals each member's path between the bounds returned
// for its sub-alpha.
type partialVariant struct {
	baseVariant
	bounds func(alpha float64) (lo, hi float64)
	// restore puts every member's full path back at Finish.
	restore bool
}

func (p *partialVariant) interpolateMember(a *Anim, mobs []*Node, alpha float64) {
	sub, start := mobs[0], mobs[1]
	lo, hi := p.bounds(alpha)
	sub.PointwiseBecomePartial(start, lo, hi)
	if a.cfg.matchStart {
		sub.Stroke, sub.StrokeWidth, sub.Fill = start.Stroke, start.StrokeWidth, start.Fill
	}
}

func (p *partialVariant) finish(a *Anim) {
	if !p.restore {
		return
	}
	for _, mobs := range a.families {
		mobs[0].PointwiseBecomePartial(mobs[1], 0, 1)
	}
}

func newPartial(n *Node, p *partialVariant, cfg Config, d settings) (*Anim, error) {
	a, err := newAnim(n, p, cfg, d)
	if err != nil {
		return nil, err
	}
	a.pointsOnly = true
	return a, nil
}

// ShowCreation draws n's paths from start to end. Members are drawn one
// after another (lag ratio 1) unless configured otherwise.
func ShowCreation(n *Node, cfg Config) (*Anim, error) {
	d := defaultSettings("ShowCreation")
	d.lagRatio = 1
	return newPartial(n, &partialVariant{bounds: CreationBounds}, cfg, d)
}

// Uncreate erases n by running ShowCreation backwards, then removes it.
func Uncreate(n *Node, cfg Config) (*Anim, error) {
	d := defaultSettings("Uncreate")
	d.lagRatio = 1
	d.rate = Reverse(Smooth)
	d.remover = true
	d.matchStart = true
	return newPartial(n, &partialVariant{bounds: CreationBounds}, cfg, d)
}

// ShowPassingFlash runs a short lit section along n's paths. width is the
// length of the section as a proportion of the path; zero uses
// DefaultFlashWidth. n is removed at the end with its paths intact.
func ShowPassingFlash(n *Node, width float64, cfg Config) (*Anim, error) {
	if width < 0 || width > 1 {
		return nil, fmt.Errorf("motion: ShowPassingFlash: width %v: %w", width, ErrBadConfig)
	}
	if width == 0 {
		width = DefaultFlashWidth
	}
	d := defaultSettings("ShowPassingFlash")
	d.remover = true
	return newPartial(n, &partialVariant{bounds: FlashBounds(width), restore: true}, cfg, d)
}

// BorderOptions configures DrawBorderThenFill and Write.
type BorderOptions struct {
	// StrokeWidth of the drawn outline; zero uses DefaultBorderWidth.
	StrokeWidth float64
	// StrokeColor of the outline; nil keeps each member's stroke color.
	StrokeColor *Color
}

// borderFillVariant draws an unfilled outline during the first half of
// each member's window, then blends from the outline to the real style.
type borderFillVariant struct {
	baseVariant
	opts    BorderOptions
	outline *Node
	// swapped marks members that already jumped to the outline data.
	swapped []bool
}

func (b *borderFillVariant) prepare(a *Anim) error {
	b.outline = a.mobject.Copy()
	for _, m := range b.outline.Family() {
		m.Fill.A = 0
		if len(m.Points) == 0 {
			continue
		}
		m.StrokeWidth = b.opts.StrokeWidth
		if b.opts.StrokeColor != nil {
			m.Stroke = *b.opts.StrokeColor
		}
	}
	return nil
}

func (b *borderFillVariant) extra(*Anim) []*Node {
	return []*Node{b.outline}
}

func (b *borderFillVariant) interpolateMobject(a *Anim, alpha float64) bool {
	if len(b.swapped) != len(a.families) {
		b.swapped = make([]bool, len(a.families))
	}
	n := len(a.families)
	for i, mobs := range a.families {
		sub, start, outline := mobs[0], mobs[1], mobs[2]
		index, subAlpha := IntegerInterpolate(0, 2, a.subAlpha(alpha, i, n))
		if index == 1 && !b.swapped[i] {
			sub.copyOwnData(outline)
			b.swapped[i] = true
		}
		if index == 0 {
			sub.PointwiseBecomePartial(outline, 0, subAlpha)
		} else {
			sub.Interpolate(outline, start, subAlpha, StraightPath)
		}
	}
	return true
}

func (b *borderFillVariant) begun(a *Anim) {
	a.mobject.MatchStyle(b.outline)
}

func (b *borderFillVariant) finish(*Anim) {
	b.swapped = b.swapped[:0]
}

func newBorderFill(n *Node, opts BorderOptions, cfg Config, d settings) (*Anim, error) {
	if err := requireVector(d.name, n); err != nil {
		return nil, err
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = DefaultBorderWidth
	}
	a, err := newAnim(n, &borderFillVariant{opts: opts}, cfg, d)
	if err != nil {
		return nil, err
	}
	a.pointsOnly = true
	return a, nil
}

// DrawBorderThenFill traces n's outline, then fades its fill in.
func DrawBorderThenFill(n *Node, opts BorderOptions, cfg Config) (*Anim, error) {
	d := defaultSettings("DrawBorderThenFill")
	d.runTime = 2
	d.rate = DoubleSmooth
	return newBorderFill(n, opts, cfg, d)
}

// Write is DrawBorderThenFill tuned for text: members are staggered and
// the run time grows with the number of members. The outline uses the
// color of the first member with points unless opts say otherwise.
func Write(n *Node, opts BorderOptions, cfg Config) (*Anim, error) {
	if err := requireVector("Write", n); err != nil {
		return nil, err
	}
	members := n.FamilyWithPoints()
	size := len(members)
	d := defaultSettings("Write")
	d.rate = Linear
	d.runTime = 1
	if size >= 15 {
		d.runTime = 2
	}
	d.lagRatio = math.Min(4/(float64(size)+1), 0.2)
	if opts.StrokeColor == nil && size > 0 {
		c := members[0].Stroke
		if members[0].StrokeWidth == 0 {
			c = members[0].Fill
		}
		c.A = 1
		opts.StrokeColor = &c
	}
	return newBorderFill(n, opts, cfg, d)
}

// subsetsVariant replaces the mobject's child list each frame with a slice
// of the children it had at construction.
type subsetsVariant struct {
	baseVariant
	all      []*Node
	intFunc  func(float64) float64
	oneByOne bool
	// text is restored into the scene on clean up of a word-by-word reveal.
	text *Node
}

func (s *subsetsVariant) interpolateMobject(a *Anim, alpha float64) bool {
	count := len(s.all)
	index := int(s.intFunc(a.cfg.rate(alpha) * float64(count)))
	index = max(0, min(index, count))
	switch {
	case !s.oneByOne:
		a.mobject.SetChildren(s.all[:index])
	case index == 0:
		a.mobject.SetChildren(nil)
	default:
		a.mobject.SetChildren(s.all[index-1 : index])
	}
	return true
}

func (s *subsetsVariant) cleanUp(a *Anim, sc *Scene) {
	if s.text == nil {
		return
	}
	sc.Remove(a.mobject)
	if !a.cfg.remover {
		sc.Add(s.text)
	}
}

func newSubsets(group *Node, s *subsetsVariant, cfg Config, d settings) (*Anim, error) {
	if group == nil {
		return nil, fmt.Errorf("motion: %s: %w", d.name, ErrNilNode)
	}
	s.all = append([]*Node(nil), group.children...)
	d.suspend = false
	return newAnim(group, s, cfg, d)
}

// ShowIncreasingSubsets reveals group's children one prefix at a time:
// at progress p the first intFunc(p*n) children are shown. A nil intFunc
// uses math.Round.
func ShowIncreasingSubsets(group *Node, intFunc func(float64) float64, cfg Config) (*Anim, error) {
	if intFunc == nil {
		intFunc = math.Round
	}
	return newSubsets(group, &subsetsVariant{intFunc: intFunc}, cfg, defaultSettings("ShowIncreasingSubsets"))
}

// ShowSubmobjectsOneByOne shows exactly one of group's children at a time,
// in order. A nil intFunc uses math.Ceil.
func ShowSubmobjectsOneByOne(group *Node, intFunc func(float64) float64, cfg Config) (*Anim, error) {
	if intFunc == nil {
		intFunc = math.Ceil
	}
	return newSubsets(group, &subsetsVariant{intFunc: intFunc, oneByOne: true}, cfg, defaultSettings("ShowSubmobjectsOneByOne"))
}

// AddTextWordByWord reveals a text node one word at a time, timePerWord
// seconds per word (zero uses DefaultTimePerWord). The words animate as a
// separate group; on clean up the text node takes its place.
func AddTextWordByWord(text *Node, timePerWord float64, cfg Config) (*Anim, error) {
	if text == nil {
		return nil, fmt.Errorf("motion: AddTextWordByWord: %w", ErrNilNode)
	}
	if text.Type != NodeTypeText {
		return nil, fmt.Errorf("motion: AddTextWordByWord on %s node %q: %w", text.Type, text.Name, ErrUnsupportedNode)
	}
	if timePerWord <= 0 {
		timePerWord = DefaultTimePerWord
	}
	words := text.BuildWordGroups()
	d := defaultSettings("AddTextWordByWord")
	d.rate = Linear
	d.runTime = timePerWord * float64(words.NumChildren())
	if d.runTime == 0 {
		d.runTime = timePerWord
	}
	return newSubsets(words, &subsetsVariant{intFunc: math.Round, text: text}, cfg, d)
}
