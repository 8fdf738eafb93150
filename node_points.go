package motion

import "math"

// --- Bounds ---

// BoundingBox returns the axis-aligned bounds of every point in the family.
// ok is false when no family member has points.
func (n *Node) BoundingBox() (lo, hi Vec3, ok bool) {
	lo = Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	n.growBounds(&lo, &hi, &ok)
	if !ok {
		return Origin, Origin, false
	}
	return lo, hi, true
}

func (n *Node) growBounds(lo, hi *Vec3, ok *bool) {
	for _, p := range n.Points {
		lo.X, hi.X = math.Min(lo.X, p.X), math.Max(hi.X, p.X)
		lo.Y, hi.Y = math.Min(lo.Y, p.Y), math.Max(hi.Y, p.Y)
		lo.Z, hi.Z = math.Min(lo.Z, p.Z), math.Max(hi.Z, p.Z)
		*ok = true
	}
	for _, c := range n.children {
		c.growBounds(lo, hi, ok)
	}
}

// BoundingBoxPoint returns the point of the family bounds selected by dir:
// per axis, negative picks the minimum, positive the maximum and zero the
// middle. BoundingBoxPoint(Origin) is the center.
func (n *Node) BoundingBoxPoint(dir Vec3) Vec3 {
	lo, hi, ok := n.BoundingBox()
	if !ok {
		return Origin
	}
	pick := func(d, l, h float64) float64 {
		switch {
		case d < 0:
			return l
		case d > 0:
			return h
		default:
			return (l + h) / 2
		}
	}
	return Vec3{pick(dir.X, lo.X, hi.X), pick(dir.Y, lo.Y, hi.Y), pick(dir.Z, lo.Z, hi.Z)}
}

// Center returns the center of the family bounding box, or Origin when the
// family has no points.
func (n *Node) Center() Vec3 {
	return n.BoundingBoxPoint(Origin)
}

// Width returns the X extent of the family bounds.
func (n *Node) Width() float64 {
	lo, hi, _ := n.BoundingBox()
	return hi.X - lo.X
}

// Height returns the Y extent of the family bounds.
func (n *Node) Height() float64 {
	lo, hi, _ := n.BoundingBox()
	return hi.Y - lo.Y
}

// --- Point transforms (whole family) ---

// ApplyFunc maps every family point through fn.
func (n *Node) ApplyFunc(fn func(Vec3) Vec3) {
	for i, p := range n.Points {
		n.Points[i] = fn(p)
	}
	for _, c := range n.children {
		c.ApplyFunc(fn)
	}
}

// Shift translates the family by v.
func (n *Node) Shift(v Vec3) {
	for i := range n.Points {
		n.Points[i] = n.Points[i].Add(v)
	}
	for _, c := range n.children {
		c.Shift(v)
	}
}

// MoveTo shifts the family so its center lands on p.
func (n *Node) MoveTo(p Vec3) {
	n.Shift(p.Sub(n.Center()))
}

// ScaleAbout scales the family by factor about the given point.
func (n *Node) ScaleAbout(factor float64, about Vec3) {
	n.StretchAbout(Vec3{factor, factor, factor}, about)
}

// Scale scales the family by factor about its center.
func (n *Node) Scale(factor float64) {
	n.ScaleAbout(factor, n.Center())
}

// StretchAbout scales each axis independently about the given point.
func (n *Node) StretchAbout(factors Vec3, about Vec3) {
	for i, p := range n.Points {
		n.Points[i] = about.Add(p.Sub(about).Mul(factors))
	}
	for _, c := range n.children {
		c.StretchAbout(factors, about)
	}
}

// Rotate rotates the family by angle about axis through the given point.
func (n *Node) Rotate(angle float64, axis, about Vec3) {
	for i, p := range n.Points {
		n.Points[i] = about.Add(p.Sub(about).RotateAbout(angle, axis))
	}
	for _, c := range n.children {
		c.Rotate(angle, axis, about)
	}
}

// Replace moves and scales n to cover other's bounding box. With stretch
// each axis is scaled independently; otherwise the scale matches height.
// Degenerate extents are left unscaled.
func (n *Node) Replace(other *Node, stretch bool) {
	w, h := n.Width(), n.Height()
	ow, oh := other.Width(), other.Height()
	center := n.Center()
	f := Vec3{1, 1, 1}
	if stretch {
		if w > 1e-12 {
			f.X = ow / w
		}
		if h > 1e-12 {
			f.Y = oh / h
		}
	} else if h > 1e-12 {
		f = Vec3{oh / h, oh / h, 1}
	} else if w > 1e-12 {
		f = Vec3{ow / w, ow / w, 1}
	}
	n.StretchAbout(f, center)
	n.MoveTo(other.Center())
}

// --- Path data ---

// NumSegments returns the number of cubic segments in n's own path.
func (n *Node) NumSegments() int {
	return len(n.Points) / 4
}

// StartPoint returns the first point of n's own data, or its center.
func (n *Node) StartPoint() Vec3 {
	if len(n.Points) == 0 {
		return n.Center()
	}
	return n.Points[0]
}

// EndPoint returns the last point of n's own data, or its center.
func (n *Node) EndPoint() Vec3 {
	if len(n.Points) == 0 {
		return n.Center()
	}
	return n.Points[len(n.Points)-1]
}

// PointFromProportion returns the point at proportion alpha along n's
// path, treating every segment as equally long.
func (n *Node) PointFromProportion(alpha float64) Vec3 {
	segs := n.NumSegments()
	if segs == 0 {
		if len(n.Points) > 0 {
			i := int(clamp(alpha, 0, 1) * float64(len(n.Points)-1))
			return n.Points[i]
		}
		return n.Center()
	}
	index, residue := IntegerInterpolate(0, segs, alpha)
	return bezierPoint(n.segment(index), residue)
}

// segment returns the four control points of segment i.
func (n *Node) segment(i int) [4]Vec3 {
	var s [4]Vec3
	copy(s[:], n.Points[4*i:4*i+4])
	return s
}

// bezierPoint evaluates a cubic Bézier at t.
func bezierPoint(p [4]Vec3, t float64) Vec3 {
	return blossom(p, t, t, t)
}

// blossom evaluates the polar form of a cubic at (t1, t2, t3). Equal
// arguments give a point on the curve; mixed ones give control points of
// the sub-curve between them.
func blossom(p [4]Vec3, t1, t2, t3 float64) Vec3 {
	a := p[0].Lerp(p[1], t1)
	b := p[1].Lerp(p[2], t1)
	c := p[2].Lerp(p[3], t1)
	d := a.Lerp(b, t2)
	e := b.Lerp(c, t2)
	return d.Lerp(e, t3)
}

// partialCubic returns the control points of the portion of p between
// parameters a and b.
func partialCubic(p [4]Vec3, a, b float64) [4]Vec3 {
	return [4]Vec3{
		blossom(p, a, a, a),
		blossom(p, a, a, b),
		blossom(p, a, b, b),
		blossom(p, b, b, b),
	}
}

// IntegerInterpolate splits alpha in [0,1] into an integer index in
// [start, end) and the residue within that step. alpha = 1 maps to the
// last index with residue 1.
func IntegerInterpolate(start, end int, alpha float64) (int, float64) {
	if alpha >= 1 {
		return end - 1, 1
	}
	if alpha <= 0 {
		return start, 0
	}
	value := float64(start) + alpha*float64(end-start)
	index := int(math.Floor(value))
	if index >= end {
		return end - 1, 1
	}
	return index, value - float64(index)
}

// PointwiseBecomePartial sets n's own points to the portion of src's path
// between proportions a and b. The point count always equals src's:
// segments before the window collapse onto its start and segments after it
// collapse onto its end. Point clouds collapse points outside the window
// the same way.
func (n *Node) PointwiseBecomePartial(src *Node, a, b float64) {
	a, b = clamp(a, 0, 1), clamp(b, 0, 1)
	if b < a {
		a = b
	}
	if len(n.Points) != len(src.Points) {
		n.Points = append(n.Points[:0], src.Points...)
	}
	if len(src.Points) == 0 {
		return
	}
	if n.Type == NodeTypePoints || len(src.Points)%4 != 0 {
		last := len(src.Points) - 1
		lo := int(math.Floor(a * float64(last)))
		hi := int(math.Ceil(b * float64(last)))
		for i, p := range src.Points {
			switch {
			case i < lo:
				n.Points[i] = src.Points[lo]
			case i > hi:
				n.Points[i] = src.Points[hi]
			default:
				n.Points[i] = p
			}
		}
		return
	}

	segs := len(src.Points) / 4
	li, lr := IntegerInterpolate(0, segs, a)
	ui, ur := IntegerInterpolate(0, segs, b)
	startPt := bezierPoint(src.segment(li), lr)
	endPt := bezierPoint(src.segment(ui), ur)
	for i := 0; i < segs; i++ {
		var seg [4]Vec3
		switch {
		case i < li:
			seg = [4]Vec3{startPt, startPt, startPt, startPt}
		case i > ui:
			seg = [4]Vec3{endPt, endPt, endPt, endPt}
		case i == li && i == ui:
			seg = partialCubic(src.segment(i), lr, ur)
		case i == li:
			seg = partialCubic(src.segment(i), lr, 1)
		case i == ui:
			seg = partialCubic(src.segment(i), 0, ur)
		default:
			seg = src.segment(i)
		}
		copy(n.Points[4*i:4*i+4], seg[:])
	}
}

// InsertSegments subdivides n's path until it has target segments.
// Segments are split at their midpoint, first to last, pass after pass,
// so the traced shape is unchanged.
func (n *Node) InsertSegments(target int) {
	segs := n.NumSegments()
	if segs == 0 || segs >= target {
		return
	}
	for segs < target {
		need := target - segs
		out := make([]Vec3, 0, 4*(segs+min(need, segs)))
		for i := 0; i < segs; i++ {
			seg := n.segment(i)
			if need > 0 {
				first := partialCubic(seg, 0, 0.5)
				second := partialCubic(seg, 0.5, 1)
				out = append(out, first[:]...)
				out = append(out, second[:]...)
				need--
				continue
			}
			out = append(out, seg[:]...)
		}
		n.Points = out
		segs = n.NumSegments()
	}
}

// padPoints repeats the last point of a point cloud until it has count points.
func (n *Node) padPoints(count int) {
	if len(n.Points) >= count {
		return
	}
	last := n.Center()
	if len(n.Points) > 0 {
		last = n.Points[len(n.Points)-1]
	}
	for len(n.Points) < count {
		n.Points = append(n.Points, last)
	}
}

// collapseTo gives a pointless node count copies of p.
func (n *Node) collapseTo(p Vec3, count int) {
	n.Points = n.Points[:0]
	for i := 0; i < count; i++ {
		n.Points = append(n.Points, p)
	}
}
