package motion

import (
	"errors"
	"testing"
)

type recordingSink struct {
	events []LifecycleEvent
}

func (r *recordingSink) EmitEvent(e LifecycleEvent) { r.events = append(r.events, e) }

func (r *recordingSink) kinds() []LifecycleEventKind {
	out := make([]LifecycleEventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

func TestNewScene(t *testing.T) {
	s := NewScene(SceneConfig{})
	if s.FPS() != DefaultFPS {
		t.Errorf("FPS = %d, want %d", s.FPS(), DefaultFPS)
	}
	if s.Root() == nil || s.Root().Type != NodeTypeGroup {
		t.Error("root should be a group")
	}
	if s.Time() != 0 || s.FrameIndex() != 0 {
		t.Errorf("time %v frame %d", s.Time(), s.FrameIndex())
	}
}

func TestSceneAddRemove(t *testing.T) {
	s := NewScene(SceneConfig{})
	sq := NewSquare("sq", 1)
	s.Add(sq, nil)
	s.Add(sq)
	if s.Root().NumChildren() != 1 || !s.Contains(sq) {
		t.Fatalf("children = %d", s.Root().NumChildren())
	}
	child := NewSquare("child", 1)
	sq.AddChild(child)
	s.Add(child)
	if child.Parent != sq {
		t.Error("Add should leave nodes already in the tree in place")
	}
	s.Remove(sq, s.Root(), NewGroup("stranger"))
	if s.Contains(sq) || s.Root().NumChildren() != 0 {
		t.Error("Remove did not detach")
	}
}

func TestScenePlayFrames(t *testing.T) {
	s := NewScene(SceneConfig{FPS: 10})
	var frames []Frame
	s.OnFrame = func(f Frame) error {
		frames = append(frames, f)
		return nil
	}
	sq := NewSquare("sq", 1)
	a := mustAnim(t)(FadeIn(sq, FadeOptions{}, Config{}))
	if err := s.Play(a); err != nil {
		t.Fatal(err)
	}
	if len(frames) != 10 {
		t.Fatalf("frames = %d, want 10", len(frames))
	}
	if frames[0].Index != 1 || frames[9].Index != 10 {
		t.Errorf("indices %d..%d", frames[0].Index, frames[9].Index)
	}
	if frames[9].Time != 1 {
		t.Errorf("last frame time = %v, want 1", frames[9].Time)
	}
	if !s.Contains(sq) || sq.Stroke.A != 1 {
		t.Error("FadeIn should leave the node visible in the scene")
	}

	if err := s.Wait(0.5); err != nil {
		t.Fatal(err)
	}
	if len(frames) != 15 || s.Time() != 1.5 {
		t.Errorf("after Wait frames %d time %v", len(frames), s.Time())
	}
}

func TestScenePlayRoundsFramesUp(t *testing.T) {
	s := NewScene(SceneConfig{FPS: 10})
	count := 0
	s.OnFrame = func(Frame) error { count++; return nil }
	a := mustAnim(t)(ShowCreation(NewSquare("sq", 1), Config{RunTime: 0.25}))
	if err := s.Play(a); err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("frames = %d, want 3", count)
	}
}

func TestSceneWaitRunsUpdaters(t *testing.T) {
	s := NewScene(SceneConfig{FPS: 4})
	v := NewValue("clock", 0)
	v.AddUpdater(func(n *Node, dt float64) { n.Value += dt })
	s.Add(v)
	if err := s.Wait(1); err != nil {
		t.Fatal(err)
	}
	if v.Value != 1 {
		t.Errorf("clock = %v, want 1", v.Value)
	}
}

func TestSceneSuspendsUpdatersDuringPlay(t *testing.T) {
	s := NewScene(SceneConfig{FPS: 10})
	sq := NewSquare("sq", 1)
	ticks := 0
	sq.AddUpdater(func(n *Node, _ float64) {
		if n == sq {
			ticks++
		}
	})
	s.Add(sq)
	if err := s.Play(mustAnim(t)(ScaleInPlace(sq, 2, Config{}))); err != nil {
		t.Fatal(err)
	}
	if ticks != 0 {
		t.Errorf("updater ran %d times during a suspending play", ticks)
	}
	if sq.IsUpdatingSuspended() {
		t.Error("Finish should resume updating")
	}
}

func TestSceneEvents(t *testing.T) {
	s := NewScene(SceneConfig{FPS: 10})
	sink := &recordingSink{}
	s.SetEventSink(sink)
	sq := NewSquare("sq", 1)
	if err := s.Play(mustAnim(t)(FadeIn(sq, FadeOptions{}, Config{}))); err != nil {
		t.Fatal(err)
	}
	if err := s.Play(mustAnim(t)(FadeOut(sq, FadeOptions{}, Config{}))); err != nil {
		t.Fatal(err)
	}
	want := []LifecycleEventKind{EventBegin, EventFinish, EventBegin, EventRemove, EventFinish}
	got := sink.kinds()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
	first := sink.events[0]
	if first.Animation != "FadeIn" || first.Node != "sq" || first.NodeID != sq.ID || first.Time != 0 {
		t.Errorf("begin event = %+v", first)
	}
	if last := sink.events[4]; last.Time != 2 {
		t.Errorf("last event time = %v, want 2", last.Time)
	}
}

func TestSceneOnFrameErrorStopsPlay(t *testing.T) {
	s := NewScene(SceneConfig{FPS: 10})
	boom := errors.New("boom")
	count := 0
	s.OnFrame = func(Frame) error {
		count++
		if count == 3 {
			return boom
		}
		return nil
	}
	sq := NewSquare("sq", 1)
	a := mustAnim(t)(ShowCreation(sq, Config{}))
	if err := s.Play(a); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
	if count != 3 {
		t.Errorf("frames = %d, want 3", count)
	}
	// End still ran, so the animation can be replayed.
	if err := a.Begin(); err != nil {
		t.Errorf("Begin after failed play: %v", err)
	}
}

func TestSceneBeginError(t *testing.T) {
	s := NewScene(SceneConfig{})
	a := mustAnim(t)(ApplyFunction(NewSquare("sq", 1), func(*Node) *Node { return nil }, Config{}))
	if err := s.Play(a); !errors.Is(err, ErrNoTarget) {
		t.Errorf("error = %v, want ErrNoTarget", err)
	}
}

func TestSceneBeginErrorRollsBack(t *testing.T) {
	s := NewScene(SceneConfig{})
	sink := &recordingSink{}
	s.SetEventSink(sink)
	kept := NewSquare("kept", 1)
	s.Add(kept)
	fresh := NewSquare("fresh", 1)
	other := NewSquare("other", 1)

	keep := mustAnim(t)(ShowCreation(kept, Config{}))
	create := mustAnim(t)(ShowCreation(fresh, Config{}))
	bad := mustAnim(t)(ApplyFunction(other, func(*Node) *Node { return nil }, Config{}))
	if err := s.Play(keep, create, bad); !errors.Is(err, ErrNoTarget) {
		t.Fatalf("error = %v, want ErrNoTarget", err)
	}
	if !s.Contains(kept) {
		t.Error("node already in the scene was removed")
	}
	if s.Contains(fresh) || s.Contains(other) {
		t.Error("nodes added for the failed play are still in the scene")
	}
	want := []LifecycleEventKind{EventBegin, EventBegin, EventFinish, EventFinish}
	got := sink.kinds()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
	if sink.events[2].Animation != "ShowCreation" || sink.events[2].Node != "fresh" {
		t.Errorf("first finish event = %+v, want the last begun animation", sink.events[2])
	}
	if s.FrameIndex() != 0 {
		t.Errorf("frame = %d, want 0", s.FrameIndex())
	}

	// The rolled back animations can run again.
	if err := s.Play(create); err != nil {
		t.Fatal(err)
	}
	mustBegin(t, keep)
	keep.Finish()
}

func TestSceneStopsOnSuccessionBeginError(t *testing.T) {
	s := NewScene(SceneConfig{FPS: 10})
	v := NewValue("v", 0)
	first := mustAnim(t)(ChangeValueTo(v, 10, Config{}))
	bad := mustAnim(t)(ApplyFunction(NewSquare("sq", 1), func(*Node) *Node { return nil }, Config{}))
	last := mustAnim(t)(ChangeValueTo(v, 30, Config{}))
	g, err := Succession(Config{}, first, bad, last)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Play(g); !errors.Is(err, ErrNoTarget) {
		t.Fatalf("error = %v, want ErrNoTarget", err)
	}
	if f := s.FrameIndex(); f < 10 || f >= 30 {
		t.Errorf("stopped at frame %d, want inside the failed child's window", f)
	}
	if v.Value != 30 {
		t.Errorf("value = %v, want 30 after End plays through", v.Value)
	}
}

func TestSceneManualAdvance(t *testing.T) {
	s := NewScene(SceneConfig{FPS: 2})
	a := mustAnim(t)(ShowCreation(NewSquare("sq", 1), Config{RunTime: 2}))
	if err := s.Begin(a); err != nil {
		t.Fatal(err)
	}
	expectPanic(t, "in progress", func() { _ = s.Begin(a) })
	steps := 0
	for {
		more, err := s.Advance()
		if err != nil {
			t.Fatal(err)
		}
		steps++
		if !more {
			break
		}
	}
	s.End()
	if steps != 4 {
		t.Errorf("steps = %d, want 4", steps)
	}
	if more, _ := s.Advance(); more {
		t.Error("Advance with nothing playing should report no more frames")
	}
	s.End()
}

func TestLifecycleEventKindString(t *testing.T) {
	tests := []struct {
		kind LifecycleEventKind
		want string
	}{
		{EventBegin, "begin"},
		{EventFinish, "finish"},
		{EventRemove, "remove"},
		{LifecycleEventKind(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
