package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/tactile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	require.NotNil(t, NewDonburiSink(world))
}

func TestDonburiSink_EmitGesture(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []tactile.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e tactile.GestureEvent) {
		received = append(received, e)
	})

	sink.EmitGesture(tactile.GestureEvent{
		Kind:      tactile.GestureSwipe,
		Direction: tactile.DirectionLeft,
		Delta:     tactile.Vec2{X: -80},
		Distance:  80,
	})
	sink.EmitGesture(tactile.GestureEvent{
		Kind:   tactile.GesturePinch,
		Scale:  1.5,
		ZoomIn: true,
	})

	// Events are queued until processed.
	assert.Empty(t, received)
	GestureEventType.ProcessEvents(world)

	require.Len(t, received, 2)
	assert.Equal(t, tactile.DirectionLeft, received[0].Direction)
	assert.Equal(t, 80.0, received[0].Distance)
	assert.Equal(t, tactile.GesturePinch, received[1].Kind)
	assert.True(t, received[1].ZoomIn)
}

func TestDonburiSink_FromRecognizer(t *testing.T) {
	world := donburi.NewWorld()
	cfg := tactile.DefaultConfig()
	cfg.Vibrator = nil
	cfg.Sink = NewDonburiSink(world)
	rec := tactile.NewRecognizer(cfg)

	var kinds []tactile.GestureKind
	GestureEventType.Subscribe(world, func(w donburi.World, e tactile.GestureEvent) {
		kinds = append(kinds, e.Kind)
	})

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rec.ContactStart([]tactile.Vec2{{X: 10, Y: 10}}, t0)
	rec.ContactEnd(t0.Add(30 * time.Millisecond))
	rec.ContactStart([]tactile.Vec2{{X: 10, Y: 10}}, t0.Add(1000*time.Millisecond))
	rec.ContactMove([]tactile.Vec2{{X: 10, Y: 90}}, t0.Add(1050*time.Millisecond))
	rec.ContactEnd(t0.Add(1100 * time.Millisecond))

	events.ProcessAllEvents(world)
	assert.Equal(t, []tactile.GestureKind{tactile.GestureTap, tactile.GestureSwipe}, kinds)
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	GestureEventType.Subscribe(world, func(w donburi.World, e tactile.GestureEvent) { count1++ })
	GestureEventType.Subscribe(world, func(w donburi.World, e tactile.GestureEvent) { count2++ })

	sink.EmitGesture(tactile.GestureEvent{Kind: tactile.GestureTap})
	events.ProcessAllEvents(world)

	assert.Equal(t, 1, count1)
	assert.Equal(t, 1, count2)
}

func TestDonburiSink_PerKindEventTypes(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var swipes, taps, all int
	SwipeEventType.Subscribe(world, func(w donburi.World, e tactile.GestureEvent) { swipes++ })
	TapEventType.Subscribe(world, func(w donburi.World, e tactile.GestureEvent) { taps++ })
	GestureEventType.Subscribe(world, func(w donburi.World, e tactile.GestureEvent) { all++ })

	sink.EmitGesture(tactile.GestureEvent{Kind: tactile.GestureSwipe, Direction: tactile.DirectionUp})
	sink.EmitGesture(tactile.GestureEvent{Kind: tactile.GestureTap})
	sink.EmitGesture(tactile.GestureEvent{Kind: tactile.GestureDoubleTap})
	events.ProcessAllEvents(world)

	assert.Equal(t, 1, swipes)
	assert.Equal(t, 1, taps, "double-taps have their own type")
	assert.Equal(t, 3, all)
}

func TestDonburiSink_KindFilter(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world, tactile.GestureLongPress, tactile.GestureDoubleTap)

	var kinds []tactile.GestureKind
	GestureEventType.Subscribe(world, func(w donburi.World, e tactile.GestureEvent) {
		kinds = append(kinds, e.Kind)
	})

	sink.EmitGesture(tactile.GestureEvent{Kind: tactile.GesturePinch, Scale: 1.2})
	sink.EmitGesture(tactile.GestureEvent{Kind: tactile.GestureLongPress})
	sink.EmitGesture(tactile.GestureEvent{Kind: tactile.GestureTap})
	sink.EmitGesture(tactile.GestureEvent{Kind: tactile.GestureDoubleTap})
	events.ProcessAllEvents(world)

	assert.Equal(t, []tactile.GestureKind{tactile.GestureLongPress, tactile.GestureDoubleTap}, kinds)
}

func TestEventTypeFor(t *testing.T) {
	assert.Same(t, SwipeEventType, EventTypeFor(tactile.GestureSwipe))
	assert.Same(t, PinchEventType, EventTypeFor(tactile.GesturePinch))
	assert.Nil(t, EventTypeFor(tactile.GestureNone))
}
