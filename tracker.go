package tactile

import (
	"math"
	"time"

	"github.com/phanxgames/tactile/timer"
)

// TouchState is the live state of one interaction, from contact start to
// contact end.
type TouchState struct {
	Touching             bool
	Start                Vec2
	Current              Vec2
	Delta                Vec2
	Distance             float64
	Pinching             bool
	InitialPinchDistance float64
	Scale                float64
}

func (s *TouchState) reset() {
	*s = TouchState{Scale: 1}
}

func (s *TouchState) moveTo(p Vec2) {
	s.Current = p
	s.Delta = p.Sub(s.Start)
	s.Distance = s.Delta.Len()
}

// endResult is what the tracker hands to the classifier at contact end.
type endResult struct {
	state          TouchState
	startTime      time.Time
	endTime        time.Time
	longPressFired bool
}

// tracker owns the TouchState and the long-press timer. It never calls
// application code: long presses and pinch updates are reported back to the
// Recognizer.
type tracker struct {
	state     TouchState
	startTime time.Time
	queue     *timer.Queue

	jitter           float64
	longPressDelay   time.Duration
	pinchSensitivity float64

	longPress      timer.Handle
	longPressFired bool
	lastPinchScale float64

	onLongPress func(LongPressContext, time.Time)
}

func newTracker(cfg *Config, queue *timer.Queue, onLongPress func(LongPressContext, time.Time)) *tracker {
	t := &tracker{
		queue:            queue,
		jitter:           cfg.JitterThreshold,
		longPressDelay:   cfg.LongPressDelay,
		pinchSensitivity: cfg.PinchSensitivity,
		onLongPress:      onLongPress,
	}
	t.state.reset()
	t.lastPinchScale = 1
	return t
}

// start begins (or restarts, when a finger is added) an interaction.
// Returns false if points is empty.
func (t *tracker) start(points []Vec2, at time.Time) bool {
	if len(points) == 0 {
		return false
	}
	t.longPress.Cancel()
	t.state.reset()
	t.longPressFired = false
	t.lastPinchScale = 1

	t.state.Touching = true
	t.state.Start = points[0]
	t.state.Current = points[0]
	t.startTime = at

	switch len(points) {
	case 1:
		t.longPress = t.queue.Schedule(at.Add(t.longPressDelay), t.fireLongPress)
	case 2:
		t.state.Pinching = true
		t.state.InitialPinchDistance = points[0].Dist(points[1])
	}
	return true
}

func (t *tracker) fireLongPress(now time.Time) {
	if !t.state.Touching || t.state.Pinching || t.state.Distance > t.jitter {
		return
	}
	t.longPressFired = true
	held := t.longPressDelay
	if d := now.Sub(t.startTime); d > held {
		held = d
	}
	if t.onLongPress != nil {
		t.onLongPress(LongPressContext{Position: t.state.Current, Held: held}, now)
	}
}

// accepts reports whether points is a valid move for the running
// interaction. A pinch only takes two-contact moves.
func (t *tracker) accepts(points []Vec2) bool {
	if len(points) == 0 {
		return false
	}
	return !t.state.Pinching || len(points) == 2
}

// move updates the state. The bool result reports whether a pinch update
// crossed the sensitivity gate and should be dispatched.
func (t *tracker) move(points []Vec2) (PinchContext, bool) {
	if !t.state.Touching || !t.accepts(points) {
		return PinchContext{}, false
	}
	t.state.moveTo(points[0])
	if t.state.Distance > t.jitter {
		t.longPress.Cancel()
	}

	if !t.state.Pinching || t.state.InitialPinchDistance <= 0 {
		return PinchContext{}, false
	}
	t.state.Scale = points[0].Dist(points[1]) / t.state.InitialPinchDistance
	change := t.state.Scale - t.lastPinchScale
	if math.Abs(change) <= t.pinchSensitivity {
		return PinchContext{}, false
	}
	t.lastPinchScale = t.state.Scale
	return PinchContext{
		Scale:      t.state.Scale,
		ScaleDelta: change,
		Center:     points[0].Mid(points[1]),
		ZoomIn:     t.state.Scale > 1,
		ZoomOut:    t.state.Scale < 1,
	}, true
}

// end finishes the interaction and resets the state. Returns false when no
// interaction was in progress.
func (t *tracker) end(at time.Time) (endResult, bool) {
	if !t.state.Touching {
		return endResult{}, false
	}
	t.longPress.Cancel()
	res := endResult{
		state:          t.state,
		startTime:      t.startTime,
		endTime:        at,
		longPressFired: t.longPressFired,
	}
	t.state.reset()
	t.longPressFired = false
	t.lastPinchScale = 1
	return res, true
}
