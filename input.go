package tactile

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxContacts = 10

// Poller reads Ebitengine touch and mouse state once per tick and feeds the
// resulting contact transitions into a Recognizer.
//
// Touch IDs are mapped to stable slots so contact order does not change
// while fingers stay down. When no finger is touching and MouseAsTouch is
// set, a held left mouse button acts as a single contact.
type Poller struct {
	rec *Recognizer

	// MouseAsTouch lets the left mouse button stand in for a finger.
	MouseAsTouch bool

	clock func() time.Time

	touchMap     [maxContacts]ebiten.TouchID
	touchUsed    [maxContacts]bool
	prevTouchIDs []ebiten.TouchID

	prev        []Vec2
	injectQueue [][]Vec2
}

// NewPoller returns a Poller that drives rec using the wall clock.
func NewPoller(rec *Recognizer) *Poller {
	return &Poller{
		rec:          rec,
		MouseAsTouch: true,
		clock:        time.Now,
	}
}

// SetClock replaces the time source used to timestamp samples.
func (p *Poller) SetClock(clock func() time.Time) {
	if clock == nil {
		clock = time.Now
	}
	p.clock = clock
}

// Recognizer returns the driven recognizer.
func (p *Poller) Recognizer() *Recognizer {
	return p.rec
}

// Update polls input and dispatches any gestures. Call it from the game's
// Update method. Injected frames take priority over real input.
func (p *Poller) Update() {
	if frame, ok := p.popInjected(); ok {
		p.feed(frame, p.clock())
		return
	}
	p.feed(p.pollContacts(), p.clock())
}

// pollContacts reads the current Ebitengine contacts in slot order.
func (p *Poller) pollContacts() []Vec2 {
	touchIDs := ebiten.AppendTouchIDs(p.prevTouchIDs[:0])
	p.prevTouchIDs = touchIDs

	var active [maxContacts]bool
	var pos [maxContacts]Vec2
	for _, tid := range touchIDs {
		slot := p.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		x, y := ebiten.TouchPosition(tid)
		pos[slot] = Vec2{float64(x), float64(y)}
	}

	// Release slots whose touch ended.
	for i := 0; i < maxContacts; i++ {
		if p.touchUsed[i] && !active[i] {
			p.touchUsed[i] = false
			p.touchMap[i] = 0
		}
	}

	var points []Vec2
	for i := 0; i < maxContacts; i++ {
		if active[i] {
			points = append(points, pos[i])
		}
	}
	if len(points) == 0 && p.MouseAsTouch && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		points = append(points, Vec2{float64(mx), float64(my)})
	}
	return points
}

// touchSlot maps an ebiten.TouchID to a slot. Returns the existing slot or
// allocates a new one. Returns -1 if full.
func (p *Poller) touchSlot(tid ebiten.TouchID) int {
	for i := 0; i < maxContacts; i++ {
		if p.touchUsed[i] && p.touchMap[i] == tid {
			return i
		}
	}
	for i := 0; i < maxContacts; i++ {
		if !p.touchUsed[i] {
			p.touchUsed[i] = true
			p.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// feed translates the change from the previous frame's contacts into
// recognizer calls: more contacts start (or restart) the interaction, fewer
// end it, and moved contacts update it.
func (p *Poller) feed(points []Vec2, now time.Time) {
	p.rec.Advance(now)

	switch {
	case len(points) > len(p.prev):
		p.rec.ContactStart(points, now)
	case len(points) < len(p.prev):
		p.rec.ContactEnd(now)
	case len(points) > 0 && contactsMoved(p.prev, points):
		p.rec.ContactMove(points, now)
	}
	p.prev = append(p.prev[:0], points...)
}

func contactsMoved(a, b []Vec2) bool {
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}
	return false
}
