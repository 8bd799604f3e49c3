package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for recognized gestures.
var GestureEventType = events.NewEventType[gesture.Gesture]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates a GestureStore backed by a Donburi world.
// Gestures are published to GestureEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) gesture.GestureStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitGesture(g gesture.Gesture) {
	GestureEventType.Publish(s.world, g)
}
