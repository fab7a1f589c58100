// Package tether is the interactive layer of a 2D scene for [Ebitengine].
//
// Every frame it works out which objects the pointer is touching, drives
// pick-up and drop dragging of those objects, switches item visuals between
// normal, glow, and selected, and keeps follower objects tiled around a
// leader with horizontal wraparound.
//
// # Quick start
//
//	scene := tether.NewScene()
//	cam := tether.NewCamera(tether.Rect{})
//	scene.AddPointerSource(tether.PointerSource{Camera: cam, Groups: []tether.Group{0, 1}})
//
//	reg := scene.Registry()
//	box := reg.Spawn("box")
//	reg.SetInteractable(box, tether.Interactable{
//		Groups: []tether.Group{1},
//		Bounds: tether.CenteredBox(80, 80),
//	})
//	reg.SetDraggable(box, tether.Draggable{Groups: []tether.Group{1}, LockY: true})
//
//	tether.Run(scene, tether.RunConfig{Title: "demo", Width: 640, Height: 480})
//
// For full control, call [Scene.Step] with a [FrameInput] each frame instead.
//
// # Frame order
//
// [Scene.Step] runs four phases in a fixed order:
//
//  1. Hit testing: the pointer is converted to world space once per
//     [PointerSource] and every [Interactable] is tested against it. The result
//     is a fresh [Snapshot].
//  2. Dragging: on the press edge each hit [Draggable] is bound to the
//     pointer; on the release edge the binding ends and the [DropPolicy] runs;
//     in between bound objects follow the cursor.
//  3. Item states: [ItemVisual] hover, select, and drag flags are updated and
//     the active visual chosen. Selection is decided before hover.
//  4. Followers: objects with a [FollowerLink] are placed relative to their
//     leader, wrapping horizontally inside the strip's span.
//
// Registering two pointer sources for the same group, or interacting through a
// source with no camera, panics: both are setup bugs.
//
// [Ebitengine]: https://ebitengine.org
package tether
