package tactile

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/tactile/timer"
)

// HapticPattern alternates vibrate and pause durations, starting with a
// vibration.
type HapticPattern []time.Duration

func ms(n ...int) HapticPattern {
	p := make(HapticPattern, len(n))
	for i, v := range n {
		p[i] = time.Duration(v) * time.Millisecond
	}
	return p
}

// Preset patterns.
var (
	HapticLightTap  = ms(10)
	HapticMediumTap = ms(20)
	HapticHeavyTap  = ms(30)
	HapticDoubleTap = ms(10, 50, 10)
	HapticLongPress = ms(50)
	HapticSuccess   = ms(10, 50, 10, 50, 10)
	HapticError     = ms(100, 50, 100)
)

// Vibrator is the host's vibration capability: one pulse of the given length.
type Vibrator interface {
	Vibrate(d time.Duration)
}

// PatternVibrator is implemented by hosts that accept a whole pattern at
// once, such as the browser vibration API.
type PatternVibrator interface {
	Vibrator
	VibratePattern(p HapticPattern)
}

// EbitenVibrator vibrates through ebiten.Vibrate. On desktop builds and
// devices without a motor Ebitengine ignores the request.
type EbitenVibrator struct {
	// Magnitude in [0, 1]. Zero selects 1.
	Magnitude float64
}

// Vibrate implements Vibrator.
func (v EbitenVibrator) Vibrate(d time.Duration) {
	m := v.Magnitude
	if m <= 0 || m > 1 {
		m = 1
	}
	ebiten.Vibrate(&ebiten.VibrateOptions{Duration: d, Magnitude: m})
}

// HapticEmitter plays patterns on a Vibrator. Pattern segments after the
// first are deferred on a timer.Queue, so the owner must keep advancing it.
type HapticEmitter struct {
	vib   Vibrator
	queue *timer.Queue
}

// NewHapticEmitter returns an emitter for vib. A nil vib makes every Emit a
// no-op; a nil queue plays only the first pulse of multi-pulse patterns.
func NewHapticEmitter(vib Vibrator, queue *timer.Queue) *HapticEmitter {
	return &HapticEmitter{vib: vib, queue: queue}
}

// Emit plays p once, starting at now.
func (e *HapticEmitter) Emit(p HapticPattern, now time.Time) {
	if e == nil || e.vib == nil || len(p) == 0 {
		return
	}
	if pv, ok := e.vib.(PatternVibrator); ok {
		pv.VibratePattern(p)
		return
	}

	e.vib.Vibrate(p[0])
	if e.queue == nil {
		return
	}
	offset := p[0]
	for i := 1; i < len(p); i++ {
		d := p[i]
		if i%2 == 0 && d > 0 {
			e.queue.Schedule(now.Add(offset), func(time.Time) {
				e.vib.Vibrate(d)
			})
		}
		offset += d
	}
}
