// Package ecs provides ECS adapters for tether's interaction events.
//
// The primary adapter is [NewDonburiStore], which bridges tether interaction
// events (grab, drop, select, deselect, hover) into a [Donburi] world as typed
// events. Subscribe to [InteractionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
