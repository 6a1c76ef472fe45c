// Package ecs provides ECS adapters for tactile's gesture events.
//
// The primary adapter is [NewDonburiSink], which bridges recognized gestures
// (tap, double-tap, long press, swipe, pinch) into a [Donburi] world as typed
// events. Subscribe to [GestureEventType] in your ECS systems to receive them,
// or to a per-kind type such as [SwipeEventType] to skip the Kind switch.
// Passing kinds to NewDonburiSink publishes only those gestures.
//
// Usage:
//
//	cfg := tactile.DefaultConfig()
//	cfg.Sink = ecs.NewDonburiSink(world)
//	rec := tactile.NewRecognizer(cfg)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
