package motion

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// EventSink is the interface for optional lifecycle observers, such as the
// ECS bridge in the ecs module. When set on a Scene, animation begin and
// finish and node removal are forwarded to it.
type EventSink interface {
	EmitEvent(event LifecycleEvent)
}

// LifecycleEventKind identifies a LifecycleEvent.
type LifecycleEventKind uint8

const (
	EventBegin LifecycleEventKind = iota
	EventFinish
	EventRemove
)

// String returns the lowercase name of the event kind.
func (k LifecycleEventKind) String() string {
	switch k {
	case EventBegin:
		return "begin"
	case EventFinish:
		return "finish"
	case EventRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// LifecycleEvent carries animation lifecycle data to an EventSink.
type LifecycleEvent struct {
	Kind LifecycleEventKind
	// Animation is the animation name (begin, finish).
	Animation string
	// Node is the node name and NodeID its ID (remove, or the animated node
	// of begin and finish when it has one).
	Node   string
	NodeID uint32
	// Time is the scene time in seconds.
	Time float64
}

// Frame is passed to Scene.OnFrame after every rendered frame.
type Frame struct {
	Index int
	Time  float64
	Root  *Node
}

// DefaultFPS is the frame rate used when SceneConfig.FPS is zero.
const DefaultFPS = 30

// SceneConfig configures NewScene.
type SceneConfig struct {
	FPS   int
	Debug bool
}

// Scene owns a node tree and plays animations on it frame by frame. Time
// is derived from an integer frame counter, so long scenes do not drift.
type Scene struct {
	root  *Node
	fps   int
	frame int
	sink  EventSink
	debug bool

	// OnFrame is called after every frame of Play and Wait. A non-nil error
	// stops playback and is returned.
	OnFrame func(Frame) error

	playing    []Animation
	playStart  int
	playFrames int
	stats      debugStats
}

// NewScene creates a scene with an empty root group.
func NewScene(cfg SceneConfig) *Scene {
	fps := cfg.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Scene{root: NewGroup("root"), fps: fps, debug: cfg.Debug}
}

// Root returns the scene's root group.
func (s *Scene) Root() *Node { return s.root }

// FPS returns the frame rate.
func (s *Scene) FPS() int { return s.fps }

// FrameIndex returns the number of frames played so far.
func (s *Scene) FrameIndex() int { return s.frame }

// Time returns the scene time in seconds.
func (s *Scene) Time() float64 { return float64(s.frame) / float64(s.fps) }

// SetEventSink sets the optional lifecycle observer.
func (s *Scene) SetEventSink(sink EventSink) { s.sink = sink }

// SetDebugMode enables or disables debug mode. When enabled, per-play
// timing stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) { s.debug = enabled }

// Add puts nodes under the root. Nodes already in the tree stay where they
// are; nodes in another tree are moved.
func (s *Scene) Add(nodes ...*Node) {
	for _, n := range nodes {
		if n == nil || s.Contains(n) {
			continue
		}
		s.root.AddChild(n)
	}
}

// Remove detaches nodes from the tree. Nodes not in the tree are ignored.
func (s *Scene) Remove(nodes ...*Node) {
	for _, n := range nodes {
		if n == nil || n == s.root || !s.Contains(n) {
			continue
		}
		n.RemoveFromParent()
		s.emit(LifecycleEvent{Kind: EventRemove, Node: n.Name, NodeID: n.ID})
	}
}

// Contains reports whether n is in the scene's tree.
func (s *Scene) Contains(n *Node) bool {
	return n != nil && n.Root() == s.root
}

// Begin adds the animations' nodes to the scene and begins them. Frames
// are then produced with Advance and the play is completed with End.
func (s *Scene) Begin(anims ...Animation) error {
	if s.playing != nil {
		panic("motion: Begin called while a play is in progress")
	}
	longest := 0.0
	var added []*Node
	for _, a := range anims {
		added = s.addMobjects(a, added)
	}
	for i, a := range anims {
		if err := a.Begin(); err != nil {
			s.abortBegin(anims[:i], added)
			return fmt.Errorf("motion: play: %w", err)
		}
		s.emitAnim(EventBegin, a)
		longest = math.Max(longest, a.RunTime())
	}
	s.playing = anims
	s.playStart = s.frame
	s.playFrames = max(1, int(math.Ceil(longest*float64(s.fps)-1e-9)))
	s.stats = debugStats{}
	return nil
}

// addMobjects adds the nodes a animates and appends the ones that were not
// already in the scene to added.
func (s *Scene) addMobjects(a Animation, added []*Node) []*Node {
	if c, ok := a.(Composite); ok {
		for _, child := range c.Animations() {
			added = s.addMobjects(child, added)
		}
		return added
	}
	if m := a.Mobject(); m != nil && !s.Contains(m) {
		s.Add(m)
		added = append(added, m)
	}
	return added
}

// abortBegin finishes the already begun animations in reverse order and
// takes out the nodes Begin put into the scene.
func (s *Scene) abortBegin(begun []Animation, added []*Node) {
	for i := len(begun) - 1; i >= 0; i-- {
		begun[i].Finish()
		s.emitAnim(EventFinish, begun[i])
	}
	for i := len(added) - 1; i >= 0; i-- {
		added[i].RemoveFromParent()
	}
}

// Advance produces one frame of the current play. It reports whether more
// frames remain. The error is the one returned by OnFrame, or the Begin
// error of a Succession child that could not start.
func (s *Scene) Advance() (more bool, err error) {
	if s.playing == nil {
		return false, nil
	}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.frame++
	dt := 1 / float64(s.fps)
	index := s.frame - s.playStart
	elapsed := float64(index) / float64(s.fps)
	for _, a := range s.playing {
		a.Tick(dt)
		alpha := 1.0
		if rt := a.RunTime(); rt > 0 {
			alpha = math.Min(elapsed/rt, 1)
		}
		a.Update(alpha)
	}
	s.root.Update(dt)
	for _, a := range s.playing {
		if e, ok := a.(interface{ Err() error }); ok {
			if err := e.Err(); err != nil {
				return false, fmt.Errorf("motion: play: %w", err)
			}
		}
	}
	if s.debug {
		s.stats.record(time.Since(t0))
	}
	if err := s.emitFrame(); err != nil {
		return false, err
	}
	return index < s.playFrames, nil
}

// End finishes and cleans up the current play.
func (s *Scene) End() {
	if s.playing == nil {
		return
	}
	anims := s.playing
	s.playing = nil
	for _, a := range anims {
		a.Finish()
	}
	for _, a := range anims {
		a.CleanUp(s)
		s.emitAnim(EventFinish, a)
	}
	if s.debug {
		s.debugLog(playName(anims), s.stats)
	}
}

// Play runs anims to completion, one frame at a time. Animations run
// together; the play lasts as long as the longest of them.
func (s *Scene) Play(anims ...Animation) error {
	if err := s.Begin(anims...); err != nil {
		return err
	}
	for {
		more, err := s.Advance()
		if err != nil {
			s.End()
			return err
		}
		if !more {
			break
		}
	}
	s.End()
	return nil
}

// Wait advances time by seconds, running node updaters only.
func (s *Scene) Wait(seconds float64) error {
	frames := int(math.Round(seconds * float64(s.fps)))
	dt := 1 / float64(s.fps)
	for i := 0; i < frames; i++ {
		s.frame++
		s.root.Update(dt)
		if err := s.emitFrame(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) emitFrame() error {
	if s.OnFrame == nil {
		return nil
	}
	return s.OnFrame(Frame{Index: s.frame, Time: s.Time(), Root: s.root})
}

func (s *Scene) emit(e LifecycleEvent) {
	if s.sink == nil {
		return
	}
	e.Time = s.Time()
	s.sink.EmitEvent(e)
}

func (s *Scene) emitAnim(kind LifecycleEventKind, a Animation) {
	if s.sink == nil {
		return
	}
	e := LifecycleEvent{Kind: kind, Animation: a.Name()}
	if m := a.Mobject(); m != nil {
		e.Node, e.NodeID = m.Name, m.ID
	}
	s.emit(e)
}

func playName(anims []Animation) string {
	names := make([]string, len(anims))
	for i, a := range anims {
		names[i] = a.Name()
	}
	return strings.Join(names, ", ")
}
