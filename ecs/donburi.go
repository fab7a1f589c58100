// Package ecs provides ECS adapters for tether.
package ecs

import (
	"github.com/phanxgames/tether"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for tether interaction events.
// Subscribe to this in your ECS systems to receive grab, drop, select, and hover events.
var InteractionEventType = events.NewEventType[tether.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) tether.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event tether.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
