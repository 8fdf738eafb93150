package motion

import (
	"errors"
	"math"
	"testing"
)

// alphaTracers returns n value nodes driven with their own local alpha, so a
// group's timing can be read back from the values.
func alphaTracers(t *testing.T, n int, runTime float64) ([]*Node, []Animation) {
	t.Helper()
	nodes := make([]*Node, n)
	anims := make([]Animation, n)
	for i := range nodes {
		nodes[i] = NewValue("tracer", -1)
		a, err := ChangingValue(nodes[i], func(x float64) float64 { return x }, Config{RunTime: runTime})
		if err != nil {
			t.Fatal(err)
		}
		anims[i] = a
	}
	return nodes, anims
}

func assertValues(t *testing.T, label string, nodes []*Node, want ...float64) {
	t.Helper()
	for i, w := range want {
		if math.Abs(nodes[i].Value-w) > 1e-12 {
			t.Errorf("%s: child %d alpha = %v, want %v", label, i, nodes[i].Value, w)
		}
	}
}

func TestLaggedStartTimings(t *testing.T) {
	nodes, anims := alphaTracers(t, 3, 1)
	g, err := LaggedStart(Config{LagRatio: Float(0.5), RunTime: 3}, anims...)
	if err != nil {
		t.Fatal(err)
	}
	wantWindows := [][2]float64{{0, 1}, {0.5, 1.5}, {1, 2}}
	for i, w := range wantWindows {
		if s, e := g.Window(i); s != w[0] || e != w[1] {
			t.Errorf("Window(%d) = %v, %v; want %v", i, s, e, w)
		}
	}
	if g.RunTime() != 3 {
		t.Errorf("RunTime = %v, want 3", g.RunTime())
	}

	mustBegin(t, g)
	assertValues(t, "alpha 0", nodes, 0, 0, 0)
	g.Update(0.5)
	assertValues(t, "alpha 0.5", nodes, 1, 0.5, 0)
	g.Update(0.75)
	assertValues(t, "alpha 0.75", nodes, 1, 1, 0.5)
	g.Update(1)
	assertValues(t, "alpha 1", nodes, 1, 1, 1)
	g.Finish()
}

func TestLaggedStartDefaultLag(t *testing.T) {
	_, anims := alphaTracers(t, 2, 1)
	g, err := LaggedStart(Config{}, anims...)
	if err != nil {
		t.Fatal(err)
	}
	if g.LagRatio() != DefaultLaggedRatio {
		t.Errorf("LagRatio = %v, want %v", g.LagRatio(), DefaultLaggedRatio)
	}
	if math.Abs(g.RunTime()-1.05) > 1e-12 {
		t.Errorf("RunTime = %v, want 1.05", g.RunTime())
	}
}

func TestAnimationGroupZeroLagMatchesChildren(t *testing.T) {
	nodes, anims := alphaTracers(t, 3, 1)
	g, err := AnimationGroup(Config{}, anims...)
	if err != nil {
		t.Fatal(err)
	}
	if g.RunTime() != 1 {
		t.Errorf("RunTime = %v, want 1", g.RunTime())
	}
	mustBegin(t, g)
	for _, alpha := range []float64{0.1, 0.37, 0.8, 1} {
		g.Update(alpha)
		assertValues(t, "zero lag", nodes, alpha, alpha, alpha)
	}
}

func TestAnimationGroupUnequalRunTimes(t *testing.T) {
	short := NewValue("short", 0)
	long := NewValue("long", 0)
	a, _ := ChangingValue(short, func(x float64) float64 { return x }, Config{RunTime: 1})
	b, _ := ChangingValue(long, func(x float64) float64 { return x }, Config{RunTime: 2})
	g, err := AnimationGroup(Config{}, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if g.RunTime() != 2 {
		t.Errorf("RunTime = %v, want 2", g.RunTime())
	}
	mustBegin(t, g)
	g.Update(0.25)
	if short.Value != 0.5 || long.Value != 0.25 {
		t.Errorf("values = %v, %v; want 0.5, 0.25", short.Value, long.Value)
	}
	g.Update(0.75)
	if short.Value != 1 || long.Value != 0.75 {
		t.Errorf("values = %v, %v; want 1, 0.75", short.Value, long.Value)
	}
}

func TestGroupRateFuncReshapesTimeline(t *testing.T) {
	nodes, anims := alphaTracers(t, 1, 1)
	g, err := AnimationGroup(Config{RateFunc: ThereAndBack}, anims...)
	if err != nil {
		t.Fatal(err)
	}
	mustBegin(t, g)
	g.Update(0.5)
	assertValues(t, "there", nodes, 1)
	g.Update(1)
	assertValues(t, "back", nodes, 0)
}

func TestLaggedStartMap(t *testing.T) {
	g := NewGroup("g", NewSquare("a", 1), NewSquare("b", 1), NewSquare("c", 1))
	lm, err := LaggedStartMap(func(c *Node) (Animation, error) {
		return FadeIn(c, FadeOptions{}, Config{})
	}, g, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if len(lm.Animations()) != 3 || lm.RunTime() != 1 {
		t.Errorf("children %d run %v", len(lm.Animations()), lm.RunTime())
	}
	for i, a := range lm.Animations() {
		if a.Mobject() != g.ChildAt(i) {
			t.Errorf("child %d animates %v", i, a.Mobject())
		}
	}

	big := NewGroup("big")
	for i := 0; i < 15; i++ {
		big.AddChild(NewSquare("s", 1))
	}
	lm, err = LaggedStartMap(func(c *Node) (Animation, error) {
		return GrowFromCenter(c, nil, Config{})
	}, big, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if lm.RunTime() != 2 {
		t.Errorf("15 children RunTime = %v, want 2", lm.RunTime())
	}
}

func TestLaggedStartMapPropagatesError(t *testing.T) {
	g := NewGroup("g", NewSquare("a", 1))
	_, err := LaggedStartMap(func(c *Node) (Animation, error) {
		return ChangingValue(c, func(x float64) float64 { return x }, Config{})
	}, g, Config{})
	if !errors.Is(err, ErrUnsupportedNode) {
		t.Errorf("error = %v, want ErrUnsupportedNode", err)
	}
}

func TestSuccessionChainsState(t *testing.T) {
	v := NewValue("v", 0)
	first := mustAnim(t)(ChangeValueTo(v, 10, Config{}))
	second := mustAnim(t)(ChangeValueTo(v, 20, Config{}))
	g, err := Succession(Config{}, first, second)
	if err != nil {
		t.Fatal(err)
	}
	if g.LagRatio() != 1 || g.RunTime() != 2 {
		t.Errorf("lag %v run %v", g.LagRatio(), g.RunTime())
	}
	mustBegin(t, g)
	g.Update(0.25)
	if v.Value != 5 {
		t.Errorf("value = %v, want 5", v.Value)
	}
	g.Update(0.75)
	if v.Value != 15 {
		t.Errorf("value = %v, want 15 (second child starts from 10)", v.Value)
	}
	g.Finish()
	if v.Value != 20 {
		t.Errorf("final value = %v, want 20", v.Value)
	}
}

func TestSuccessionFinishPlaysThrough(t *testing.T) {
	v := NewValue("v", 0)
	a1 := mustAnim(t)(ChangeValueTo(v, 1, Config{}))
	a2 := mustAnim(t)(ChangeValueTo(v, 2, Config{}))
	a3 := mustAnim(t)(ChangeValueTo(v, 3, Config{}))
	g, err := Succession(Config{}, a1, a2, a3)
	if err != nil {
		t.Fatal(err)
	}
	mustBegin(t, g)
	g.Finish()
	if v.Value != 3 {
		t.Errorf("value = %v, want 3", v.Value)
	}
}

func TestAnimationGroupBeginErrorFinishesBegun(t *testing.T) {
	nodes, anims := alphaTracers(t, 2, 1)
	bad := mustAnim(t)(ApplyFunction(NewSquare("sq", 1), func(*Node) *Node { return nil }, Config{}))
	g, err := AnimationGroup(Config{}, anims[0], anims[1], bad)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Begin(); !errors.Is(err, ErrNoTarget) {
		t.Fatalf("error = %v, want ErrNoTarget", err)
	}
	assertValues(t, "after failed Begin", nodes, 1, 1)
	for _, a := range anims {
		mustBegin(t, a)
		a.Finish()
	}
}

func TestSuccessionSkipsChildThatFailsToBegin(t *testing.T) {
	v := NewValue("v", 0)
	first := mustAnim(t)(ChangeValueTo(v, 10, Config{}))
	bad := mustAnim(t)(ApplyFunction(NewSquare("sq", 1), func(*Node) *Node { return nil }, Config{}))
	last := mustAnim(t)(ChangeValueTo(v, 30, Config{}))
	g, err := Succession(Config{}, first, bad, last)
	if err != nil {
		t.Fatal(err)
	}
	mustBegin(t, g)
	if g.Err() != nil {
		t.Fatalf("Err before the window opens = %v", g.Err())
	}
	g.Update(0.5)
	if v.Value != 10 {
		t.Errorf("value = %v, want 10", v.Value)
	}
	if !errors.Is(g.Err(), ErrNoTarget) {
		t.Errorf("Err = %v, want ErrNoTarget", g.Err())
	}
	g.Update(0.75)
	if v.Value != 15 {
		t.Errorf("value = %v, want 15 from the child after the skipped one", v.Value)
	}
	g.Finish()
	if v.Value != 30 {
		t.Errorf("final value = %v, want 30", v.Value)
	}
	g.CleanUp(NewScene(SceneConfig{}))
}

func TestGroupLifecyclePanics(t *testing.T) {
	_, anims := alphaTracers(t, 1, 1)
	g, err := AnimationGroup(Config{}, anims...)
	if err != nil {
		t.Fatal(err)
	}
	expectPanic(t, "before Begin", func() { g.Update(0.5) })
	expectPanic(t, "without a running Begin", g.Finish)
}

func TestGroupErrors(t *testing.T) {
	_, anims := alphaTracers(t, 1, 1)
	if _, err := AnimationGroup(Config{TimeSpan: &TimeSpan{0, 1}}, anims...); !errors.Is(err, ErrBadConfig) {
		t.Errorf("time span error = %v, want ErrBadConfig", err)
	}
	if _, err := LaggedStart(Config{}, anims[0], nil); !errors.Is(err, ErrBadConfig) {
		t.Errorf("nil child error = %v, want ErrBadConfig", err)
	}
	if _, err := LaggedStartMap(nil, NewGroup("g"), Config{}); !errors.Is(err, ErrBadConfig) {
		t.Errorf("nil fn error = %v, want ErrBadConfig", err)
	}
}

func TestGroupHasNoMobject(t *testing.T) {
	_, anims := alphaTracers(t, 2, 1)
	g, err := AnimationGroup(Config{}, anims...)
	if err != nil {
		t.Fatal(err)
	}
	if g.Mobject() != nil {
		t.Error("Mobject should be nil")
	}
}

func TestNestedGroups(t *testing.T) {
	nodes, anims := alphaTracers(t, 3, 1)
	inner, err := Succession(Config{}, anims[0], anims[1])
	if err != nil {
		t.Fatal(err)
	}
	outer, err := AnimationGroup(Config{}, inner, anims[2])
	if err != nil {
		t.Fatal(err)
	}
	if outer.RunTime() != 2 {
		t.Errorf("RunTime = %v, want 2", outer.RunTime())
	}
	mustBegin(t, outer)
	outer.Update(0.25)
	// The second succession child has not begun yet.
	assertValues(t, "nested", nodes, 0.5, -1, 0.5)
	outer.Update(0.75)
	assertValues(t, "nested", nodes, 1, 0.5, 1)
}
