package motion

import (
	"math"
	"strings"
	"unicode"
)

// Default geometry for the shape constructors, in scene units.
const (
	DefaultDotRadius   = 0.08
	DefaultArrowTip    = 0.25
	DefaultGlyphHeight = 0.5
	arcSegmentsPerTurn = 8
)

// lineSegment returns the cubic control points of a straight segment.
func lineSegment(a, b Vec3) [4]Vec3 {
	return [4]Vec3{a, a.Lerp(b, 1.0/3), a.Lerp(b, 2.0/3), b}
}

// NewLine creates a straight path from a to b.
func NewLine(name string, a, b Vec3) *Node {
	seg := lineSegment(a, b)
	return NewPath(name, seg[:])
}

// NewPolyline creates a path through the given corners. A closed polyline
// gets an extra segment back to the first corner.
func NewPolyline(name string, corners []Vec3, closed bool) *Node {
	pts := make([]Vec3, 0, 4*len(corners))
	for i := 0; i+1 < len(corners); i++ {
		seg := lineSegment(corners[i], corners[i+1])
		pts = append(pts, seg[:]...)
	}
	if closed && len(corners) > 2 {
		seg := lineSegment(corners[len(corners)-1], corners[0])
		pts = append(pts, seg[:]...)
	}
	return NewPath(name, pts)
}

// NewRectangle creates a closed rectangle centered at the origin.
func NewRectangle(name string, width, height float64) *Node {
	w, h := width/2, height/2
	return NewPolyline(name, []Vec3{
		{w, h, 0}, {-w, h, 0}, {-w, -h, 0}, {w, -h, 0},
	}, true)
}

// NewSquare creates a closed square centered at the origin.
func NewSquare(name string, side float64) *Node {
	return NewRectangle(name, side, side)
}

// NewArc creates a circular arc centered at the origin. The arc is split
// into segments of at most an eighth of a turn.
func NewArc(name string, radius, startAngle, angle float64) *Node {
	segs := int(math.Ceil(math.Abs(angle) / (Tau / arcSegmentsPerTurn)))
	if segs < 1 {
		segs = 1
	}
	step := angle / float64(segs)
	// Control arm length for a cubic approximating an arc of angle step.
	k := 4.0 / 3.0 * math.Tan(step/4) * radius
	pts := make([]Vec3, 0, 4*segs)
	for i := 0; i < segs; i++ {
		a0 := startAngle + float64(i)*step
		a1 := a0 + step
		s0, c0 := math.Sincos(a0)
		s1, c1 := math.Sincos(a1)
		p0 := Vec3{radius * c0, radius * s0, 0}
		p3 := Vec3{radius * c1, radius * s1, 0}
		p1 := p0.Add(Vec3{-s0, c0, 0}.Scale(k))
		p2 := p3.Sub(Vec3{-s1, c1, 0}.Scale(k))
		pts = append(pts, p0, p1, p2, p3)
	}
	return NewPath(name, pts)
}

// NewCircle creates a closed circle centered at the origin.
func NewCircle(name string, radius float64) *Node {
	return NewArc(name, radius, 0, Tau)
}

// NewDot creates a small filled circle at center.
func NewDot(name string, center Vec3) *Node {
	n := NewCircle(name, DefaultDotRadius)
	n.Shift(center)
	n.StrokeWidth = 0
	n.Fill = ColorWhite
	return n
}

// NewArrow creates a path from start to end with a filled triangular tip
// as its only child. The shaft's first point is the arrow's start.
func NewArrow(name string, start, end Vec3) *Node {
	dir := end.Sub(start).Normalize(Right)
	length := end.Sub(start).Len()
	tip := math.Min(DefaultArrowTip, length/2)
	base := end.Sub(dir.Scale(tip))
	shaft := NewLine(name, start, base)
	normal := Out.Cross(dir).Scale(tip / 2)
	head := NewPolyline(name+".tip", []Vec3{end, base.Add(normal), base.Sub(normal)}, true)
	head.Fill = ColorWhite
	shaft.AddChild(head)
	return shaft
}

// NewText creates a text node whose children are one box-shaped glyph per
// non-space rune, laid out on a fixed advance. The node keeps its content
// so word groups can be rebuilt from it.
func NewText(name, content string, height float64) *Node {
	if height <= 0 {
		height = DefaultGlyphHeight
	}
	n := &Node{Name: name, Type: NodeTypeText, Content: content}
	nodeDefaults(n)
	n.StrokeWidth = 0
	n.Fill = ColorWhite
	advance := height * 0.6
	x := 0.0
	for _, r := range content {
		if unicode.IsSpace(r) {
			x += advance
			continue
		}
		g := NewRectangle(string(r), advance*0.8, height)
		g.Shift(Vec3{x + advance/2, height / 2, 0})
		g.StrokeWidth = 0
		g.Fill = ColorWhite
		n.AddChild(g)
		x += advance
	}
	n.MoveTo(Origin)
	return n
}

// BuildWordGroups returns a group holding one sub-group per word of a text
// node. Each sub-group contains copies of that word's glyphs, so the text
// node itself is left untouched.
func (n *Node) BuildWordGroups() *Node {
	groups := NewGroup(n.Name + ".words")
	glyph := 0
	for _, word := range strings.Fields(n.Content) {
		g := NewGroup(word)
		for range word {
			if glyph >= len(n.children) {
				break
			}
			g.AddChild(n.children[glyph].Copy())
			glyph++
		}
		groups.AddChild(g)
	}
	return groups
}
