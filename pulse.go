package tactile

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pulse is a 0 → 1 → 0 intensity curve for visual touch feedback, the
// on-screen counterpart of a haptic pattern. Call Trigger when a gesture
// fires and Update(dt) each frame; draw with the returned value.
//
// There is no global animation manager; callers own their pulses.
type Pulse struct {
	rise    *gween.Tween
	fall    *gween.Tween
	falling bool
	value   float32
	// Done is true once the pulse has fallen back to 0.
	Done bool
}

// NewPulse creates an idle pulse that rises over rise seconds and falls over
// fall seconds.
func NewPulse(rise, fall float32) *Pulse {
	return &Pulse{
		rise: gween.New(0, 1, rise, ease.OutQuad),
		fall: gween.New(1, 0, fall, ease.InQuad),
		Done: true,
	}
}

// PulseFor returns a pulse whose length matches a haptic pattern.
func PulseFor(p HapticPattern) *Pulse {
	var total float32
	for _, d := range p {
		total += float32(d.Seconds())
	}
	if total <= 0 {
		total = 0.01
	}
	// Visual feedback lingers longer than the motor.
	return NewPulse(total, total*4)
}

// Trigger restarts the pulse from 0.
func (p *Pulse) Trigger() {
	p.rise.Reset()
	p.fall.Reset()
	p.falling = false
	p.value = 0
	p.Done = false
}

// Update advances the pulse by dt seconds and returns the current value.
func (p *Pulse) Update(dt float32) float32 {
	if p.Done {
		return 0
	}
	if !p.falling {
		v, finished := p.rise.Update(dt)
		p.value = v
		p.falling = finished
		return v
	}
	v, finished := p.fall.Update(dt)
	p.value = v
	if finished {
		p.value = 0
		p.Done = true
	}
	return p.value
}

// Value returns the last computed value.
func (p *Pulse) Value() float32 {
	return p.value
}
