package tactile

import (
	"math"
	"time"
)

// Vec2 is a 2D point or offset in screen pixels. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Mid returns the point halfway between v and o.
func (v Vec2) Mid(o Vec2) Vec2 {
	return Vec2{(v.X + o.X) / 2, (v.Y + o.Y) / 2}
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return o.Sub(v).Len()
}

// SampleKind says which contact transition a Sample describes.
type SampleKind uint8

const (
	SampleStart SampleKind = iota // one or more contacts went down
	SampleMove                    // tracked contacts moved
	SampleEnd                     // a contact was lifted
)

// Sample is one pointer/touch event record from the host: the list of
// active contacts and when it was observed.
type Sample struct {
	Kind   SampleKind
	Points []Vec2
	Time   time.Time
}

// GestureKind identifies a recognized gesture.
type GestureKind uint8

const (
	GestureNone      GestureKind = iota // motion matched nothing
	GestureSwipe                        // fast directional movement past the threshold
	GestureTap                          // near-stationary press and release
	GestureDoubleTap                    // second tap inside the double-tap window
	GestureLongPress                    // stationary hold past the long-press delay
	GesturePinch                        // continuous two-contact scale change
)

var gestureNames = [...]string{"none", "swipe", "tap", "double-tap", "long-press", "pinch"}

func (k GestureKind) String() string {
	if int(k) < len(gestureNames) {
		return gestureNames[k]
	}
	return "unknown"
}

// Direction is the dominant axis and sign of a swipe.
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
)

var directionNames = [...]string{"none", "left", "right", "up", "down"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// SwipeContext describes a completed swipe.
type SwipeContext struct {
	Direction Direction
	Start     Vec2
	End       Vec2
	Delta     Vec2
	Distance  float64
	Duration  time.Duration
}

// TapContext describes a tap or double-tap.
type TapContext struct {
	Position Vec2
	Time     time.Time
}

// LongPressContext describes a fired long press.
type LongPressContext struct {
	Position Vec2
	Held     time.Duration
}

// PinchContext carries one pinch update.
type PinchContext struct {
	Scale      float64 // current distance / initial distance
	ScaleDelta float64 // change since the previous reported update
	Center     Vec2    // midpoint of the two contacts
	ZoomIn     bool    // Scale > 1
	ZoomOut    bool    // Scale < 1
}

// GestureEvent is a flat record of a dispatched gesture, delivered to an
// EventSink.
type GestureEvent struct {
	Kind      GestureKind
	Direction Direction
	Position  Vec2
	Start     Vec2
	Delta     Vec2
	Distance  float64
	// Pinch fields (valid for GesturePinch)
	Scale      float64
	ScaleDelta float64
	ZoomIn     bool
	ZoomOut    bool
	Time       time.Time
}

// EventSink receives every dispatched gesture. See package ecs for a Donburi
// implementation.
type EventSink interface {
	EmitGesture(event GestureEvent)
}
