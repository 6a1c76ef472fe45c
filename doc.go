// Package tactile recognizes touch gestures for [Ebitengine] games and apps.
//
// A [Recognizer] turns raw contact samples into taps, double-taps, long
// presses, four-way swipes, and continuous pinch updates, fires haptic
// feedback through the host's vibration motor, and calls your callbacks.
//
// # Quick start
//
// Build a Recognizer from [DefaultConfig], wrap it in a [Poller], and call
// [Poller.Update] from your game's Update:
//
//	cfg := tactile.DefaultConfig()
//	cfg.OnSwipeLeft = func(ctx tactile.SwipeContext) { pages.Next() }
//	cfg.OnDoubleTap = func(ctx tactile.TapContext) { view.ResetZoom() }
//	cfg.OnPinch = func(ctx tactile.PinchContext) { view.Zoom(ctx.Scale) }
//
//	poller := tactile.NewPoller(tactile.NewRecognizer(cfg))
//
//	func (g *Game) Update() error { g.poller.Update(); return nil }
//
// Hosts that already have contact events (a replay, a remote input stream)
// call [Recognizer.ContactStart], [Recognizer.ContactMove], and
// [Recognizer.ContactEnd] directly with timestamps, and [Recognizer.Advance]
// once per tick.
//
// # Classification
//
// On contact end, movement of at least Threshold pixels (default 50) is a
// swipe in the direction of the larger axis, horizontal on ties. Movement
// under JitterThreshold (10) is a tap; a second tap that starts within
// DoubleTapWindow (300ms) of the first becomes a double-tap. A single
// contact that stays within the jitter threshold for LongPressDelay (500ms)
// fires a long press from a timer, and that interaction then classifies
// nothing at release. Two contacts at start make a pinch, reported while
// moving whenever the scale changes by more than PinchSensitivity (0.1).
//
// # Concurrency
//
// Everything is single-threaded and synchronous. Deferred work (the
// long-press timer, multi-pulse haptic patterns) lives on a [timer.Queue]
// and runs inside Advance or the next contact call. No goroutines are
// started.
//
// # Related packages
//
// Package history provides the linear undo/redo history used by text
// editors, with debounced coalescing of keystrokes. Package ecs publishes
// gestures into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package tactile
