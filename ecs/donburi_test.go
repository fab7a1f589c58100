package ecs

import (
	"testing"

	"github.com/phanxgames/tether"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	require.NotNil(t, store)

	var received []tether.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e tether.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(tether.InteractionEvent{Type: tether.EventGrab, Object: 42, Group: 1,
		Position: tether.Vec2{X: 100, Y: 200}})
	store.EmitEvent(tether.InteractionEvent{Type: tether.EventDrop, Object: 42, Group: 1})

	// Events are queued until processed.
	require.Empty(t, received)
	InteractionEventType.ProcessEvents(world)

	require.Len(t, received, 2)
	require.Equal(t, tether.EventGrab, received[0].Type)
	require.Equal(t, tether.ObjectID(42), received[0].Object)
	require.Equal(t, tether.Vec2{X: 100, Y: 200}, received[0].Position)
	require.Equal(t, tether.EventDrop, received[1].Type)
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e tether.InteractionEvent) { count1++ })
	InteractionEventType.Subscribe(world, func(w donburi.World, e tether.InteractionEvent) { count2++ })

	store.EmitEvent(tether.InteractionEvent{Type: tether.EventSelect})
	events.ProcessAllEvents(world)

	require.Equal(t, 1, count1)
	require.Equal(t, 1, count2)
}

func TestDonburiStore_SceneBridge(t *testing.T) {
	world := donburi.NewWorld()
	scene := tether.NewScene()
	scene.SetEntityStore(NewDonburiStore(world))
	scene.SetWindowSize(800, 600)
	scene.AddPointerSource(tether.PointerSource{Camera: tether.NewCamera(tether.Rect{}), Groups: []tether.Group{1}})

	reg := scene.Registry()
	box := reg.Spawn("box")
	reg.SetInteractable(box, tether.Interactable{Groups: []tether.Group{1}, Bounds: tether.CenteredBox(100, 100)})
	reg.SetDraggable(box, tether.Draggable{Groups: []tether.Group{1}})

	var types []tether.EventType
	InteractionEventType.Subscribe(world, func(w donburi.World, e tether.InteractionEvent) {
		require.Equal(t, box, e.Object)
		types = append(types, e.Type)
	})

	// Screen center maps to the world origin.
	scene.Step(tether.FrameInput{Moves: []tether.Vec2{{X: 400, Y: 300}}, Pressed: true, JustPressed: true})
	scene.Step(tether.FrameInput{Moves: []tether.Vec2{{X: 450, Y: 300}}, Pressed: true})
	scene.Step(tether.FrameInput{JustReleased: true})
	InteractionEventType.ProcessEvents(world)

	require.Equal(t, []tether.EventType{tether.EventGrab, tether.EventDrop}, types)
}
