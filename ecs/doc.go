// Package ecs provides ECS adapters for gesture output.
//
// The primary adapter is [NewDonburiStore], which publishes every gesture a
// handler's delegate accepted into a [Donburi] world as a typed event.
// Subscribe to [GestureEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	handler.SetGestureStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
