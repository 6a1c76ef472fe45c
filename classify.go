package tactile

import (
	"math"
	"time"
)

// Outcome is the classification of a completed single-contact motion.
type Outcome struct {
	Kind      GestureKind
	Direction Direction
}

// Classify decides what a finished motion with the given delta is, ignoring
// taps-in-sequence. distance >= threshold is a swipe whose direction follows
// the larger axis, horizontal on ties; distance < jitter is a tap; anything
// in between is GestureNone.
func Classify(delta Vec2, threshold, jitter float64) Outcome {
	distance := delta.Len()
	if distance >= threshold {
		return Outcome{Kind: GestureSwipe, Direction: SwipeDirection(delta)}
	}
	if distance < jitter {
		return Outcome{Kind: GestureTap}
	}
	return Outcome{}
}

// SwipeDirection returns the dominant direction of delta. Equal magnitudes
// resolve to horizontal.
func SwipeDirection(delta Vec2) Direction {
	if math.Abs(delta.X) >= math.Abs(delta.Y) {
		if delta.X < 0 {
			return DirectionLeft
		}
		return DirectionRight
	}
	if delta.Y < 0 {
		return DirectionUp
	}
	return DirectionDown
}

// tapSequence turns a tap into a double-tap when it started within window
// of the previous tap's start. A double-tap consumes the pair.
type tapSequence struct {
	window  time.Duration
	last    time.Time
	pending bool
}

func (s *tapSequence) observe(start time.Time) GestureKind {
	if s.pending && start.Sub(s.last) < s.window && !start.Before(s.last) {
		s.pending = false
		return GestureDoubleTap
	}
	s.last = start
	s.pending = true
	return GestureTap
}

// forget drops the remembered tap so the next one cannot pair with it.
func (s *tapSequence) forget() {
	s.pending = false
}

// classifier applies end-of-contact policy to a tracker result.
type classifier struct {
	threshold float64
	jitter    float64
	taps      tapSequence
}

func newClassifier(cfg *Config) *classifier {
	return &classifier{
		threshold: cfg.Threshold,
		jitter:    cfg.JitterThreshold,
		taps:      tapSequence{window: cfg.DoubleTapWindow},
	}
}

func (c *classifier) classify(res endResult) Outcome {
	// A fired long press or a pinch owns the whole interaction.
	if res.longPressFired || res.state.Pinching {
		c.taps.forget()
		return Outcome{}
	}
	out := Classify(res.state.Delta, c.threshold, c.jitter)
	switch out.Kind {
	case GestureTap:
		out.Kind = c.taps.observe(res.startTime)
	default:
		c.taps.forget()
	}
	return out
}
