package motion

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3, eps float64) bool {
	return a.Sub(b).Len() <= eps
}

var pathPairs = [][2]Vec3{
	{{0, 0, 0}, {1, 0, 0}},
	{{-3.5, 2, 1}, {4, -1.25, 0}},
	{{1e-9, 0, 0}, {1e-9, 0, 0}},
	{{1e6, -1e6, 3}, {-2e6, 0.5, -7}},
}

func TestStraightPathRoundTrip(t *testing.T) {
	for _, p := range pathPairs {
		if got := StraightPath(p[0], p[1], 0); got != p[0] {
			t.Errorf("StraightPath(%v, %v, 0) = %v", p[0], p[1], got)
		}
		if got := StraightPath(p[0], p[1], 1); got != p[1] {
			t.Errorf("StraightPath(%v, %v, 1) = %v", p[0], p[1], got)
		}
	}
}

func TestPathAlongArcEndpoints(t *testing.T) {
	for _, angle := range []float64{math.Pi / 2, -math.Pi / 3, math.Pi, Tau * 0.9} {
		path := PathAlongArc(angle, Out)
		for _, p := range pathPairs {
			if got := path(p[0], p[1], 0); got != p[0] {
				t.Errorf("arc %v: alpha 0 = %v, want %v", angle, got, p[0])
			}
			if got := path(p[0], p[1], 1); got != p[1] {
				t.Errorf("arc %v: alpha 1 = %v, want %v", angle, got, p[1])
			}
		}
	}
}

func TestPathAlongArcHalfTurn(t *testing.T) {
	// Half a turn from (1,0) to (-1,0) is centered on the chord midpoint.
	got := CounterclockwisePath()(Right, Left, 0.5)
	if !vecNear(got, Up, 1e-12) {
		t.Errorf("ccw midpoint = %v, want %v", got, Up)
	}
	got = ClockwisePath()(Right, Left, 0.5)
	if !vecNear(got, Down, 1e-12) {
		t.Errorf("cw midpoint = %v, want %v", got, Down)
	}
}

func TestPathAlongArcQuarterTurnRadius(t *testing.T) {
	// A quarter turn from (1,0) to (0,1) is the unit circle about the origin.
	path := PathAlongArc(math.Pi/2, Out)
	for _, alpha := range []float64{0.1, 0.3, 0.5, 0.8} {
		p := path(Right, Up, alpha)
		if math.Abs(p.Len()-1) > 1e-12 {
			t.Errorf("alpha %v: radius %v, want 1", alpha, p.Len())
		}
		want := Vec3{math.Cos(alpha * math.Pi / 2), math.Sin(alpha * math.Pi / 2), 0}
		if !vecNear(p, want, 1e-12) {
			t.Errorf("alpha %v: %v, want %v", alpha, p, want)
		}
	}
}

func TestPathAlongArcTinyAngleIsStraight(t *testing.T) {
	path := PathAlongArc(0.001, Out)
	got := path(Origin, Vec3{2, 0, 0}, 0.5)
	if got != (Vec3{1, 0, 0}) {
		t.Errorf("tiny arc midpoint = %v, want (1,0,0)", got)
	}
}

func TestPathAlongArcZeroAxis(t *testing.T) {
	a := PathAlongArc(math.Pi/2, Vec3{})(Right, Up, 0.5)
	b := PathAlongArc(math.Pi/2, Out)(Right, Up, 0.5)
	if !vecNear(a, b, 1e-12) {
		t.Errorf("zero axis = %v, want Out result %v", a, b)
	}
}

func TestPathAlongArcCoincidentPoints(t *testing.T) {
	p := Vec3{2, 3, 0}
	got := PathAlongArc(math.Pi/2, Out)(p, p, 0.5)
	if !vecNear(got, p, 1e-12) || math.IsNaN(got.X) {
		t.Errorf("coincident arc = %v, want %v", got, p)
	}
}
