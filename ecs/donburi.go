// Package ecs provides ECS adapters for motion.
package ecs

import (
	"github.com/phanxgames/motion"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// LifecycleEventType is the Donburi event type for motion lifecycle events.
var LifecycleEventType = events.NewEventType[motion.LifecycleEvent]()

// ActiveAnimationData describes an animation that has begun and not yet
// finished.
type ActiveAnimationData struct {
	Animation string
	Node      string
	NodeID    uint32
	// Started is the scene time of the begin event, in seconds.
	Started float64
}

// ActiveAnimation is attached to one entity per running animation.
var ActiveAnimation = donburi.NewComponentType[ActiveAnimationData]()

var activeQuery = donburi.NewQuery(filter.Contains(ActiveAnimation))

type activeKey struct {
	anim string
	node uint32
}

type donburiSink struct {
	world  donburi.World
	active map[activeKey][]donburi.Entity
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events
// are published to LifecycleEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) motion.EventSink {
	return &donburiSink{world: world, active: make(map[activeKey][]donburi.Entity)}
}

func (s *donburiSink) EmitEvent(event motion.LifecycleEvent) {
	key := activeKey{anim: event.Animation, node: event.NodeID}
	switch event.Kind {
	case motion.EventBegin:
		e := s.world.Create(ActiveAnimation)
		ActiveAnimation.SetValue(s.world.Entry(e), ActiveAnimationData{
			Animation: event.Animation,
			Node:      event.Node,
			NodeID:    event.NodeID,
			Started:   event.Time,
		})
		s.active[key] = append(s.active[key], e)
	case motion.EventFinish:
		// Begin and finish pair up first in, first out.
		if q := s.active[key]; len(q) > 0 {
			if s.world.Valid(q[0]) {
				s.world.Remove(q[0])
			}
			if len(q) == 1 {
				delete(s.active, key)
			} else {
				s.active[key] = q[1:]
			}
		}
	}
	LifecycleEventType.Publish(s.world, event)
}

// ActiveAnimations returns the animations currently running in world, in
// no particular order.
func ActiveAnimations(world donburi.World) []ActiveAnimationData {
	var out []ActiveAnimationData
	activeQuery.Each(world, func(e *donburi.Entry) {
		out = append(out, *ActiveAnimation.Get(e))
	})
	return out
}
