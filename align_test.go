package motion

import (
	"math"
	"testing"
)

func TestAlignFamilyPadsShorterChildList(t *testing.T) {
	a := NewGroup("a", NewSquare("a0", 1), NewSquare("a1", 1), NewCircle("a2", 1))
	b := NewGroup("b")
	for i := 0; i < 5; i++ {
		b.AddChild(NewSquare("b", 1))
	}
	a.AlignFamily(b)

	if a.NumChildren() != 5 {
		t.Fatalf("children = %d, want 5", a.NumChildren())
	}
	third := a.ChildAt(2)
	for i := 3; i < 5; i++ {
		pad := a.ChildAt(i)
		if pad == third {
			t.Errorf("pad %d should be a copy, not the same node", i)
		}
		if pad.Name != third.Name || !pointsEqual(pad.Points, third.Points) {
			t.Errorf("pad %d is not a copy of the third member", i)
		}
	}
	if !a.IsAlignedWith(b) {
		t.Error("families not aligned")
	}
}

func TestAlignFamilyNeverReorders(t *testing.T) {
	a := NewGroup("a", NewSquare("x", 1), NewCircle("y", 1))
	b := NewGroup("b", NewCircle("p", 2), NewSquare("q", 2), NewSquare("r", 2))
	a.AlignFamily(b)
	if a.ChildAt(0).Name != "x" || a.ChildAt(1).Name != "y" {
		t.Errorf("order = %s, %s", a.ChildAt(0).Name, a.ChildAt(1).Name)
	}
	if b.ChildAt(0).Name != "p" || b.ChildAt(1).Name != "q" || b.ChildAt(2).Name != "r" {
		t.Error("target reordered")
	}
}

func TestAlignFamilyIdempotent(t *testing.T) {
	a := NewGroup("a", NewSquare("x", 1))
	b := NewGroup("b", NewCircle("y", 1), NewCircle("z", 1))
	a.AlignFamily(b)
	snapA, snapB := a.Copy(), b.Copy()

	a.AlignFamily(b)
	if !a.IsAlignedWith(snapA) || !b.IsAlignedWith(snapB) {
		t.Fatal("second alignment changed structure")
	}
	fa, fs := a.Family(), snapA.Family()
	for i := range fa {
		if !pointsEqual(fa[i].Points, fs[i].Points) {
			t.Errorf("member %d points changed", i)
		}
	}
}

func TestAlignFamilySubdividesPath(t *testing.T) {
	sq := NewSquare("sq", 2)
	c := NewCircle("c", 1)
	sq.AlignFamily(c)
	if len(sq.Points) != len(c.Points) {
		t.Fatalf("points = %d vs %d", len(sq.Points), len(c.Points))
	}
	if sq.NumSegments() != 8 {
		t.Errorf("segments = %d, want 8", sq.NumSegments())
	}
}

func TestAlignFamilyChildlessNodeGrowsFromCenter(t *testing.T) {
	sq := NewSquare("sq", 2)
	sq.Shift(Vec3{1, 1, 0})
	g := NewGroup("g", NewSquare("a", 1), NewSquare("b", 1))
	sq.AlignFamily(g)
	if sq.NumChildren() != 2 {
		t.Fatalf("children = %d, want 2", sq.NumChildren())
	}
	for _, pad := range sq.Children() {
		if pad.Name != "sq.pad" {
			t.Errorf("pad name = %q", pad.Name)
		}
		for _, p := range pad.Points {
			if !vecNear(p, Vec3{1, 1, 0}, 1e-12) {
				t.Fatalf("pad point %v, want collapsed at (1,1)", p)
			}
		}
	}
}

func TestAlignFamilyEmptyGroupBecomesDegenerate(t *testing.T) {
	empty := NewGroup("empty")
	sq := NewSquare("sq", 2)
	empty.AlignFamily(sq)
	if len(empty.Points) != len(sq.Points) {
		t.Fatalf("points = %d, want %d", len(empty.Points), len(sq.Points))
	}
	if empty.Type != NodeTypePath {
		t.Errorf("Type = %v, want path", empty.Type)
	}
}

func TestAlignFamilyPointClouds(t *testing.T) {
	a := NewPointCloud("a", []Vec3{Origin, Right})
	b := NewPointCloud("b", []Vec3{Origin, Up, Left, Down})
	a.AlignFamily(b)
	if len(a.Points) != 4 {
		t.Fatalf("points = %d, want 4", len(a.Points))
	}
	if a.Points[2] != Right || a.Points[3] != Right {
		t.Errorf("padding should repeat the last point: %v", a.Points)
	}
}

func TestInsertSegmentsPreservesShape(t *testing.T) {
	c := NewCircle("c", 1)
	ref := c.Copy()
	c.InsertSegments(13)
	if c.NumSegments() != 13 {
		t.Fatalf("segments = %d, want 13", c.NumSegments())
	}
	// Every new point lies on the original curve.
	for i, p := range c.Points {
		if math.Abs(p.Len()-1) > 0.3 {
			t.Errorf("point %d radius %v", i, p.Len())
		}
	}
	for i := 0; i < c.NumSegments(); i++ {
		start := c.Points[4*i]
		if math.Abs(start.Len()-1) > 1e-3 {
			t.Errorf("segment %d starts off the curve at %v", i, start)
		}
	}
	if c.StartPoint() != ref.StartPoint() || !vecNear(c.EndPoint(), ref.EndPoint(), 1e-12) {
		t.Error("subdivision moved the endpoints")
	}
	c.InsertSegments(5)
	if c.NumSegments() != 13 {
		t.Error("InsertSegments must not reduce segments")
	}
}

func TestIntegerInterpolate(t *testing.T) {
	tests := []struct {
		alpha   float64
		index   int
		residue float64
	}{
		{0, 0, 0},
		{0.25, 1, 0},
		{0.3, 1, 0.2},
		{0.99, 3, 0.96},
		{1, 3, 1},
		{-0.5, 0, 0},
		{1.5, 3, 1},
	}
	for _, tt := range tests {
		i, r := IntegerInterpolate(0, 4, tt.alpha)
		if i != tt.index || math.Abs(r-tt.residue) > 1e-9 {
			t.Errorf("IntegerInterpolate(0,4,%v) = %d, %v; want %d, %v", tt.alpha, i, r, tt.index, tt.residue)
		}
	}
}

func TestPointwiseBecomePartialKeepsCount(t *testing.T) {
	src := NewCircle("c", 1)
	n := src.Copy()
	for _, w := range [][2]float64{{0, 0}, {0, 0.3}, {0.2, 0.7}, {0.5, 1}, {1, 1}, {0.8, 0.2}} {
		n.PointwiseBecomePartial(src, w[0], w[1])
		if len(n.Points) != len(src.Points) {
			t.Errorf("window %v: %d points, want %d", w, len(n.Points), len(src.Points))
		}
	}
}

func TestPointwiseBecomePartialLine(t *testing.T) {
	src := NewPolyline("p", []Vec3{Origin, Right, {2, 0, 0}, {3, 0, 0}}, false)
	n := src.Copy()
	n.PointwiseBecomePartial(src, 0, 0.5)
	if !vecNear(n.EndPoint(), Vec3{1.5, 0, 0}, 1e-12) {
		t.Errorf("end = %v, want (1.5,0,0)", n.EndPoint())
	}
	n.PointwiseBecomePartial(src, 0, 1)
	if !pointsEqual(n.Points, src.Points) {
		for i := range n.Points {
			if !vecNear(n.Points[i], src.Points[i], 1e-12) {
				t.Fatalf("full window point %d = %v, want %v", i, n.Points[i], src.Points[i])
			}
		}
	}
	n.PointwiseBecomePartial(src, 0, 0)
	for i, p := range n.Points {
		if p != Origin {
			t.Fatalf("empty window point %d = %v, want origin", i, p)
		}
	}
}

func TestPointwiseBecomePartialPointCloud(t *testing.T) {
	src := NewPointCloud("pc", []Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}, {4, 0, 0}})
	n := src.Copy()
	n.PointwiseBecomePartial(src, 0, 0.5)
	want := []Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {2, 0, 0}, {2, 0, 0}}
	for i := range want {
		if n.Points[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, n.Points[i], want[i])
		}
	}
}
