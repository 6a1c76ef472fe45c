package tactile

// InjectContacts queues one synthetic frame with the given contacts. An
// empty call queues a frame with every contact lifted. Each queued frame is
// consumed by one Update call instead of real input.
func (p *Poller) InjectContacts(points ...Vec2) {
	frame := make([]Vec2, len(points))
	copy(frame, points)
	p.injectQueue = append(p.injectQueue, frame)
}

// InjectRelease queues a frame with no contacts.
func (p *Poller) InjectRelease() {
	p.injectQueue = append(p.injectQueue, nil)
}

// InjectTap queues a press and release at (x, y). Consumes two frames.
func (p *Poller) InjectTap(x, y float64) {
	p.InjectContacts(Vec2{x, y})
	p.InjectRelease()
}

// InjectHold queues a press at (x, y) held for frames frames, then a
// release. Minimum frames is 1.
func (p *Poller) InjectHold(x, y float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 0; i < frames; i++ {
		p.InjectContacts(Vec2{x, y})
	}
	p.InjectRelease()
}

// InjectSwipe queues a press at from, linearly interpolated moves over
// frames-2 intermediate frames, and a release after reaching to. The total
// sequence consumes frames+1 frames. Minimum frames is 2.
func (p *Poller) InjectSwipe(from, to Vec2, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectContacts(from)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectContacts(lerp(from, to, t))
	}
	p.InjectContacts(to)
	p.InjectRelease()
}

// InjectPinch queues a horizontal two-finger pinch around center, from
// finger spacing fromDist to toDist over frames frames, then a release.
// Minimum frames is 2.
func (p *Poller) InjectPinch(center Vec2, fromDist, toDist float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		half := (fromDist + (toDist-fromDist)*t) / 2
		p.InjectContacts(Vec2{center.X - half, center.Y}, Vec2{center.X + half, center.Y})
	}
	p.InjectRelease()
}

// Injected returns the number of queued synthetic frames.
func (p *Poller) Injected() int {
	return len(p.injectQueue)
}

func (p *Poller) popInjected() ([]Vec2, bool) {
	if len(p.injectQueue) == 0 {
		return nil, false
	}
	frame := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue[len(p.injectQueue)-1] = nil
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]
	return frame, true
}

func lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}
