package motion

import "fmt"

// GrowFromPoint grows n out of point. A non-nil color tints the starting
// state, so n also fades from that color to its own.
func GrowFromPoint(n *Node, point Vec3, color *Color, cfg Config) (*Anim, error) {
	return grow("GrowFromPoint", n, func(*Node) Vec3 { return point }, color, cfg)
}

// GrowFromCenter grows n out of its own center.
func GrowFromCenter(n *Node, color *Color, cfg Config) (*Anim, error) {
	return grow("GrowFromCenter", n, (*Node).Center, color, cfg)
}

// GrowFromEdge grows n out of the bounding box point in direction edge,
// for example Left for the middle of the left side.
func GrowFromEdge(n *Node, edge Vec3, color *Color, cfg Config) (*Anim, error) {
	return grow("GrowFromEdge", n, func(m *Node) Vec3 { return m.BoundingBoxPoint(edge) }, color, cfg)
}

// GrowArrow grows an arrow out of its start point.
func GrowArrow(arrow *Node, color *Color, cfg Config) (*Anim, error) {
	return grow("GrowArrow", arrow, (*Node).StartPoint, color, cfg)
}

// SpinInFromNothing grows n out of its center while turning half a turn.
func SpinInFromNothing(n *Node, color *Color, cfg Config) (*Anim, error) {
	d := defaultSettings("SpinInFromNothing")
	d.pathArc = Tau / 2
	return growWith(d, n, (*Node).Center, color, cfg)
}

func grow(name string, n *Node, point func(*Node) Vec3, color *Color, cfg Config) (*Anim, error) {
	return growWith(defaultSettings(name), n, point, color, cfg)
}

// growWith transforms a collapsed copy of n back into n. point is evaluated
// on n at construction so later edits to n do not move the origin.
func growWith(d settings, n *Node, point func(*Node) Vec3, color *Color, cfg Config) (*Anim, error) {
	if n == nil {
		return nil, fmt.Errorf("motion: %s: %w", d.name, ErrNilNode)
	}
	origin := point(n)
	t := &transformVariant{
		create: func(a *Anim) (*Node, error) { return a.mobject.Copy(), nil },
		start: func(start *Node) {
			start.Scale(0)
			start.MoveTo(origin)
			if color != nil {
				start.SetColor(*color)
			}
		},
	}
	return newAnim(n, t, cfg, d)
}
