package motion

// SetStroke sets stroke color and width on the whole family.
func (n *Node) SetStroke(c Color, width float64) {
	n.Stroke = c
	n.StrokeWidth = width
	for _, ch := range n.children {
		ch.SetStroke(c, width)
	}
}

// SetStrokeWidth sets the stroke width on the whole family.
func (n *Node) SetStrokeWidth(width float64) {
	n.StrokeWidth = width
	for _, ch := range n.children {
		ch.SetStrokeWidth(width)
	}
}

// SetFill sets the fill color (including opacity) on the whole family.
func (n *Node) SetFill(c Color) {
	n.Fill = c
	for _, ch := range n.children {
		ch.SetFill(c)
	}
}

// SetColor sets the RGB of both stroke and fill on the whole family,
// keeping each channel's opacity.
func (n *Node) SetColor(c Color) {
	n.Stroke = Color{c.R, c.G, c.B, n.Stroke.A}
	n.Fill = Color{c.R, c.G, c.B, n.Fill.A}
	for _, ch := range n.children {
		ch.SetColor(c)
	}
}

// SetOpacity sets both stroke and fill opacity on the whole family.
func (n *Node) SetOpacity(opacity float64) {
	n.Stroke.A = opacity
	n.Fill.A = opacity
	for _, ch := range n.children {
		ch.SetOpacity(opacity)
	}
}

// Opacity returns the larger of n's stroke and fill opacity.
func (n *Node) Opacity() float64 {
	return max(n.Stroke.A, n.Fill.A)
}

// MatchStyle copies stroke and fill from other, member by member.
func (n *Node) MatchStyle(other *Node) {
	n.Stroke = other.Stroke
	n.StrokeWidth = other.StrokeWidth
	n.Fill = other.Fill
	for i, ch := range n.children {
		if i < len(other.children) {
			ch.MatchStyle(other.children[i])
		}
	}
}

// Interpolate sets n's own data to the blend of start and end at alpha.
// Points move along path; colors, stroke width and value blend linearly.
// Locked channels are skipped. The point buffers of n, start and end must
// have equal length; n's buffer is reused, so the call does not allocate
// once the node has been aligned.
func (n *Node) Interpolate(start, end *Node, alpha float64, path PathFunc) {
	if !n.IsLocked(ChannelPoints) {
		if len(n.Points) != len(start.Points) {
			n.Points = append(n.Points[:0], start.Points...)
		}
		m := min(len(start.Points), len(end.Points))
		for i := 0; i < m; i++ {
			n.Points[i] = path(start.Points[i], end.Points[i], alpha)
		}
	}
	n.InterpolateStyle(start, end, alpha)
	n.Value = lerp(start.Value, end.Value, alpha)
}

// InterpolateStyle blends only the stroke and fill of n's own data.
func (n *Node) InterpolateStyle(start, end *Node, alpha float64) {
	if !n.IsLocked(ChannelStroke) {
		n.Stroke = start.Stroke.Lerp(end.Stroke, alpha)
		n.StrokeWidth = lerp(start.StrokeWidth, end.StrokeWidth, alpha)
	}
	if !n.IsLocked(ChannelFill) {
		n.Fill = start.Fill.Lerp(end.Fill, alpha)
	}
}
