package motion

import (
	"errors"
	"testing"
)

func TestHomotopy(t *testing.T) {
	sq := NewSquare("sq", 2)
	orig := append([]Vec3(nil), sq.Points...)
	a := mustAnim(t)(Homotopy(sq, func(p Vec3, t float64) Vec3 {
		return p.Add(Vec3{t, 0, 0})
	}, Config{RateFunc: Linear}))
	if a.RunTime() != 3 {
		t.Errorf("RunTime = %v, want 3", a.RunTime())
	}
	mustBegin(t, a)
	a.Update(0.5)
	for i, p := range sq.Points {
		if want := orig[i].Add(Vec3{0.5, 0, 0}); p != want {
			t.Fatalf("point %d = %v, want %v", i, p, want)
		}
	}
	a.Update(0.25)
	if want := orig[0].Add(Vec3{0.25, 0, 0}); sq.Points[0] != want {
		t.Errorf("homotopy should map from the starting points, got %v", sq.Points[0])
	}
}

func TestComplexHomotopy(t *testing.T) {
	pc := NewPointCloud("p", []Vec3{{1, 0, 2}})
	a := mustAnim(t)(ComplexHomotopy(pc, func(z complex128, t float64) complex128 {
		return z + complex(0, t)
	}, Config{RateFunc: Linear}))
	mustBegin(t, a)
	a.Update(1)
	if pc.Points[0] != (Vec3{1, 1, 2}) {
		t.Errorf("point = %v, want (1,1,2)", pc.Points[0])
	}
}

func TestPhaseFlow(t *testing.T) {
	pc := NewPointCloud("p", []Vec3{Origin, Up})
	a := mustAnim(t)(PhaseFlow(pc, func(Vec3) Vec3 { return Right }, 2, Config{}))
	mustBegin(t, a)
	a.Update(0.5)
	if pc.Points[0] != (Vec3{1, 0, 0}) || pc.Points[1] != (Vec3{1, 1, 0}) {
		t.Errorf("after half the run = %v", pc.Points)
	}
	a.Update(1)
	a.Finish()
	if pc.Points[0] != (Vec3{2, 0, 0}) {
		t.Errorf("after Finish = %v, want (2,0,0)", pc.Points[0])
	}
}

func TestPhaseFlowRestarts(t *testing.T) {
	pc := NewPointCloud("p", []Vec3{Origin})
	a := mustAnim(t)(PhaseFlow(pc, func(Vec3) Vec3 { return Right }, 0, Config{RunTime: 1}))
	mustBegin(t, a)
	a.Update(1)
	a.Finish()
	mustBegin(t, a)
	if pc.Points[0] != (Vec3{1, 0, 0}) {
		t.Errorf("second Begin moved the points to %v", pc.Points[0])
	}
}

func TestMoveAlongPath(t *testing.T) {
	dot := NewDot("d", Origin)
	path := NewLine("path", Origin, Vec3{4, 0, 0})
	a := mustAnim(t)(MoveAlongPath(dot, path, Config{RateFunc: Linear}))
	mustBegin(t, a)
	a.Update(0.5)
	if c := dot.Center(); !vecNear(c, Vec3{2, 0, 0}, 1e-9) {
		t.Errorf("center = %v, want (2,0,0)", c)
	}
	if _, err := MoveAlongPath(dot, NewGroup("empty"), Config{}); !errors.Is(err, ErrNoTarget) {
		t.Errorf("empty path error = %v, want ErrNoTarget", err)
	}
}
