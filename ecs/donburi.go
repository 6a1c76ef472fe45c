package ecs

import (
	"github.com/phanxgames/tactile"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType carries every recognized gesture.
var GestureEventType = events.NewEventType[tactile.GestureEvent]()

// Per-kind event types. A gesture is published to its kind's type as well as
// to GestureEventType, so a system that only cares about swipes can subscribe
// to SwipeEventType without switching on Kind.
var (
	SwipeEventType     = events.NewEventType[tactile.GestureEvent]()
	TapEventType       = events.NewEventType[tactile.GestureEvent]()
	DoubleTapEventType = events.NewEventType[tactile.GestureEvent]()
	LongPressEventType = events.NewEventType[tactile.GestureEvent]()
	PinchEventType     = events.NewEventType[tactile.GestureEvent]()
)

// EventTypeFor returns the per-kind event type for k, or nil for
// GestureNone and unknown kinds.
func EventTypeFor(k tactile.GestureKind) *events.EventType[tactile.GestureEvent] {
	switch k {
	case tactile.GestureSwipe:
		return SwipeEventType
	case tactile.GestureTap:
		return TapEventType
	case tactile.GestureDoubleTap:
		return DoubleTapEventType
	case tactile.GestureLongPress:
		return LongPressEventType
	case tactile.GesturePinch:
		return PinchEventType
	}
	return nil
}

type donburiSink struct {
	world donburi.World
	kinds map[tactile.GestureKind]bool
}

// NewDonburiSink creates an EventSink that publishes gestures into world.
// With no kinds every gesture is published; otherwise only the listed kinds
// are, which keeps pinch streams out of worlds that never read them.
// Events queue until events.ProcessAllEvents or ProcessEvents runs.
func NewDonburiSink(world donburi.World, kinds ...tactile.GestureKind) tactile.EventSink {
	s := &donburiSink{world: world}
	if len(kinds) > 0 {
		s.kinds = make(map[tactile.GestureKind]bool, len(kinds))
		for _, k := range kinds {
			s.kinds[k] = true
		}
	}
	return s
}

func (s *donburiSink) EmitGesture(event tactile.GestureEvent) {
	if s.kinds != nil && !s.kinds[event.Kind] {
		return
	}
	GestureEventType.Publish(s.world, event)
	if et := EventTypeFor(event.Kind); et != nil {
		et.Publish(s.world, event)
	}
}
