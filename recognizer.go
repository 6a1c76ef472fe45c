package tactile

import (
	"time"

	"go.uber.org/zap"

	"github.com/phanxgames/tactile/timer"
)

// --- Handler registry ---

type swipeHandler struct {
	id uint32
	fn func(SwipeContext)
}

type tapHandler struct {
	id uint32
	fn func(TapContext)
}

type longPressHandler struct {
	id uint32
	fn func(LongPressContext)
}

type pinchHandler struct {
	id uint32
	fn func(PinchContext)
}

type handlerRegistry struct {
	swipe     []swipeHandler
	tap       []tapHandler
	doubleTap []tapHandler
	longPress []longPressHandler
	pinch     []pinchHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered listener.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind GestureKind
}

// Remove unregisters this listener so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case GestureSwipe:
		h.reg.swipe = removeHandler(h.reg.swipe, h.id, func(x swipeHandler) uint32 { return x.id })
	case GestureTap:
		h.reg.tap = removeHandler(h.reg.tap, h.id, func(x tapHandler) uint32 { return x.id })
	case GestureDoubleTap:
		h.reg.doubleTap = removeHandler(h.reg.doubleTap, h.id, func(x tapHandler) uint32 { return x.id })
	case GestureLongPress:
		h.reg.longPress = removeHandler(h.reg.longPress, h.id, func(x longPressHandler) uint32 { return x.id })
	case GesturePinch:
		h.reg.pinch = removeHandler(h.reg.pinch, h.id, func(x pinchHandler) uint32 { return x.id })
	}
}

func removeHandler[H any](s []H, id uint32, idOf func(H) uint32) []H {
	for i := range s {
		if idOf(s[i]) == id {
			// Fresh backing array: a dispatch loop ranging over s keeps its view.
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

// --- Recognizer ---

// Recognizer turns contact samples into gestures. It owns the touch tracker,
// the classifier, and the haptic emitter, and it is the only part that calls
// application code.
//
// A Recognizer is single-threaded: feed it from one goroutine (the Ebitengine
// Update loop, usually through a Poller) and call Advance once per tick so the
// long-press timer and haptic segments can fire.
type Recognizer struct {
	cfg      Config
	log      *zap.Logger
	queue    timer.Queue
	haptics  *HapticEmitter
	tracker  *tracker
	classify *classifier
	handlers handlerRegistry
	sink     EventSink
}

// NewRecognizer creates a Recognizer. See Config for defaults.
func NewRecognizer(cfg Config) *Recognizer {
	cfg = cfg.withDefaults()
	r := &Recognizer{
		cfg:  cfg,
		log:  cfg.Logger,
		sink: cfg.Sink,
	}
	if cfg.EnableHaptics {
		r.haptics = NewHapticEmitter(cfg.Vibrator, &r.queue)
	}
	r.tracker = newTracker(&r.cfg, &r.queue, r.dispatchLongPress)
	r.classify = newClassifier(&r.cfg)
	return r
}

// Config returns the effective configuration.
func (r *Recognizer) Config() Config {
	return r.cfg
}

// State returns a copy of the current touch state.
func (r *Recognizer) State() TouchState {
	return r.tracker.state
}

// SetEventSink replaces the sink set through Config.
func (r *Recognizer) SetEventSink(sink EventSink) {
	r.sink = sink
}

// Advance fires the long-press timer and pending haptic segments that are
// due at now.
func (r *Recognizer) Advance(now time.Time) {
	r.queue.Advance(now)
}

// Pending reports whether any deferred task (long press, haptic segment) is
// still scheduled.
func (r *Recognizer) Pending() bool {
	return r.queue.Pending() > 0
}

// Handle routes a sample to ContactStart, ContactMove, or ContactEnd.
func (r *Recognizer) Handle(s Sample) {
	switch s.Kind {
	case SampleStart:
		r.ContactStart(s.Points, s.Time)
	case SampleMove:
		r.ContactMove(s.Points, s.Time)
	case SampleEnd:
		r.ContactEnd(s.Time)
	}
}

// ContactStart begins an interaction with the given contacts. Adding a
// finger to a running interaction restarts it; two contacts start a pinch.
func (r *Recognizer) ContactStart(points []Vec2, at time.Time) {
	if len(points) == 0 {
		r.log.Debug("contact start ignored: no contacts")
		return
	}
	r.queue.Advance(at)
	r.tracker.start(points, at)
	r.log.Debug("contact start",
		zap.Int("contacts", len(points)),
		zap.Float64("x", points[0].X),
		zap.Float64("y", points[0].Y))
	r.haptics.Emit(HapticLightTap, at)
}

// ContactMove updates the interaction with the latest contacts. A move with
// no contacts, or with a contact count that does not match a running pinch,
// is ignored without advancing timers.
func (r *Recognizer) ContactMove(points []Vec2, at time.Time) {
	if !r.tracker.accepts(points) {
		r.log.Debug("contact move ignored",
			zap.Int("contacts", len(points)),
			zap.Bool("pinching", r.tracker.state.Pinching))
		return
	}
	r.queue.Advance(at)
	ctx, ok := r.tracker.move(points)
	if !ok {
		return
	}
	r.dispatchPinch(ctx, at)
}

// ContactEnd finishes the interaction and dispatches the classified gesture.
func (r *Recognizer) ContactEnd(at time.Time) {
	r.queue.Advance(at)
	res, ok := r.tracker.end(at)
	if !ok {
		r.log.Debug("contact end ignored: no interaction")
		return
	}
	out := r.classify.classify(res)
	r.log.Debug("contact end",
		zap.Stringer("gesture", out.Kind),
		zap.Stringer("direction", out.Direction),
		zap.Float64("distance", res.state.Distance))

	switch out.Kind {
	case GestureSwipe:
		r.dispatchSwipe(SwipeContext{
			Direction: out.Direction,
			Start:     res.state.Start,
			End:       res.state.Current,
			Delta:     res.state.Delta,
			Distance:  res.state.Distance,
			Duration:  res.endTime.Sub(res.startTime),
		}, at)
	case GestureTap, GestureDoubleTap:
		r.dispatchTap(out.Kind, TapContext{Position: res.state.Current, Time: res.startTime}, at)
	}
}

// --- Listener registration ---

// OnSwipe registers a listener for swipes in every direction.
func (r *Recognizer) OnSwipe(fn func(SwipeContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.swipe = append(r.handlers.swipe, swipeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, kind: GestureSwipe}
}

// OnTap registers a listener for single taps.
func (r *Recognizer) OnTap(fn func(TapContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.tap = append(r.handlers.tap, tapHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, kind: GestureTap}
}

// OnDoubleTap registers a listener for double taps.
func (r *Recognizer) OnDoubleTap(fn func(TapContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.doubleTap = append(r.handlers.doubleTap, tapHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, kind: GestureDoubleTap}
}

// OnLongPress registers a listener for long presses.
func (r *Recognizer) OnLongPress(fn func(LongPressContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.longPress = append(r.handlers.longPress, longPressHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, kind: GestureLongPress}
}

// OnPinch registers a listener for pinch updates.
func (r *Recognizer) OnPinch(fn func(PinchContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.pinch = append(r.handlers.pinch, pinchHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, kind: GesturePinch}
}

// --- Dispatch ---

func (r *Recognizer) dispatchSwipe(ctx SwipeContext, at time.Time) {
	// Config callback first, then registered listeners.
	var fn func(SwipeContext)
	switch ctx.Direction {
	case DirectionLeft:
		fn = r.cfg.OnSwipeLeft
	case DirectionRight:
		fn = r.cfg.OnSwipeRight
	case DirectionUp:
		fn = r.cfg.OnSwipeUp
	case DirectionDown:
		fn = r.cfg.OnSwipeDown
	}
	if fn != nil {
		fn(ctx)
	}
	for _, h := range r.handlers.swipe {
		h.fn(ctx)
	}
	r.haptics.Emit(HapticMediumTap, at)
	r.emit(GestureEvent{
		Kind:      GestureSwipe,
		Direction: ctx.Direction,
		Position:  ctx.End,
		Start:     ctx.Start,
		Delta:     ctx.Delta,
		Distance:  ctx.Distance,
		Time:      at,
	})
}

func (r *Recognizer) dispatchTap(kind GestureKind, ctx TapContext, at time.Time) {
	pattern := HapticLightTap
	if kind == GestureDoubleTap {
		pattern = HapticDoubleTap
		if r.cfg.OnDoubleTap != nil {
			r.cfg.OnDoubleTap(ctx)
		}
		for _, h := range r.handlers.doubleTap {
			h.fn(ctx)
		}
	} else {
		if r.cfg.OnTap != nil {
			r.cfg.OnTap(ctx)
		}
		for _, h := range r.handlers.tap {
			h.fn(ctx)
		}
	}
	r.haptics.Emit(pattern, at)
	r.emit(GestureEvent{
		Kind:     kind,
		Position: ctx.Position,
		Start:    ctx.Position,
		Time:     at,
	})
}

func (r *Recognizer) dispatchLongPress(ctx LongPressContext, at time.Time) {
	r.log.Debug("long press",
		zap.Float64("x", ctx.Position.X),
		zap.Float64("y", ctx.Position.Y),
		zap.Duration("held", ctx.Held))
	if r.cfg.OnLongPress != nil {
		r.cfg.OnLongPress(ctx)
	}
	for _, h := range r.handlers.longPress {
		h.fn(ctx)
	}
	r.haptics.Emit(HapticLongPress, at)
	r.emit(GestureEvent{
		Kind:     GestureLongPress,
		Position: ctx.Position,
		Start:    ctx.Position,
		Time:     at,
	})
}

func (r *Recognizer) dispatchPinch(ctx PinchContext, at time.Time) {
	r.log.Debug("pinch",
		zap.Float64("scale", ctx.Scale),
		zap.Float64("scaleDelta", ctx.ScaleDelta))
	if r.cfg.OnPinch != nil {
		r.cfg.OnPinch(ctx)
	}
	for _, h := range r.handlers.pinch {
		h.fn(ctx)
	}
	r.emit(GestureEvent{
		Kind:       GesturePinch,
		Position:   ctx.Center,
		Scale:      ctx.Scale,
		ScaleDelta: ctx.ScaleDelta,
		ZoomIn:     ctx.ZoomIn,
		ZoomOut:    ctx.ZoomOut,
		Time:       at,
	})
}

func (r *Recognizer) emit(e GestureEvent) {
	if r.sink == nil {
		return
	}
	r.sink.EmitGesture(e)
}
