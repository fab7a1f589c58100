package tether

import (
	"slices"
	"testing"
)

func spawnItem(reg *Registry, name string, x, y float64, g Group) ObjectID {
	normal := Visual{Name: name}
	id := reg.Spawn(name)
	reg.SetPosition(id, x, y)
	reg.SetInteractable(id, Interactable{Groups: []Group{g}, Bounds: BoundsFromVisual(normal)})
	reg.SetItemVisual(id, NewItemVisual(g, normal, Visual{Name: name + "-glow"}, Visual{Name: name + "-selected"}))
	return id
}

func TestVisualPlaceholderSize(t *testing.T) {
	v := Visual{Name: "missing"}
	assertVec(t, "size", v.Size(), Vec2{64, 64})

	b := BoundsFromVisual(v)
	assertVec(t, "min", b.Min, Vec2{-32, -32})
	assertVec(t, "max", b.Max, Vec2{32, 32})
}

func TestNewItemVisualIdle(t *testing.T) {
	v := NewItemVisual(1, Visual{Name: "n"}, Visual{Name: "g"}, Visual{Name: "s"})
	if v.Hovering || v.Selected || v.Dragging {
		t.Errorf("new item should be idle: %+v", v)
	}
	if v.Current().Name != "n" {
		t.Errorf("Current = %q, want normal", v.Current().Name)
	}
}

func TestItemHoverGlow(t *testing.T) {
	s := newTestScene(1)
	reg := s.Registry()
	id := spawnItem(reg, "hoodie", 0, 0, 1)

	s.Step(moveTo(10, 10))
	v := reg.ItemVisual(id)
	if !v.Hovering || v.Active != VisualGlow {
		t.Fatalf("hover: %+v", v)
	}
	if v.Current().Name != "hoodie-glow" {
		t.Errorf("Current = %q", v.Current().Name)
	}

	s.Step(moveTo(200, 200))
	if v.Hovering || v.Active != VisualNormal {
		t.Errorf("leave: %+v", v)
	}
}

func TestItemClickSelects(t *testing.T) {
	s := newTestScene(1)
	reg := s.Registry()
	id := spawnItem(reg, "hoodie", 0, 0, 1)

	s.Step(moveTo(0, 0))
	s.Step(press(0, 0))
	v := reg.ItemVisual(id)
	if !v.Selected || v.Active != VisualSelected {
		t.Errorf("after press: %+v", v)
	}
}

func TestItemSelectionBeatsHoverSameFrame(t *testing.T) {
	s := newTestScene(1)
	reg := s.Registry()
	id := spawnItem(reg, "hoodie", 0, 0, 1)

	var events recordedEvents
	events.record(s, EventSelect, EventHoverEnter)

	// First contact and press in the same frame.
	s.Step(press(0, 0))
	v := reg.ItemVisual(id)
	if !v.Selected || !v.Hovering {
		t.Fatalf("state: %+v", v)
	}
	if v.Active != VisualSelected {
		t.Errorf("Active = %v, want selected", v.Active)
	}
	if !slices.Equal(events.types(), []EventType{EventSelect, EventHoverEnter}) {
		t.Errorf("events = %v", events.types())
	}
}

func TestItemSelectedKeepsVisualWhenCursorLeaves(t *testing.T) {
	s := newTestScene(1)
	reg := s.Registry()
	id := spawnItem(reg, "hoodie", 0, 0, 1)

	s.Step(press(0, 0))
	s.Step(release(0, 0))
	s.Step(moveTo(500, 0))

	v := reg.ItemVisual(id)
	if !v.Selected || v.Active != VisualSelected {
		t.Errorf("selection lost on leave: %+v", v)
	}
	if !v.Hovering {
		t.Error("hover leave is suppressed while selected")
	}
}

func TestItemEmptyClickDeselects(t *testing.T) {
	s := newTestScene(1)
	reg := s.Registry()
	id := spawnItem(reg, "hoodie", 0, 0, 1)

	var events recordedEvents
	events.record(s, EventDeselect)

	s.Step(press(0, 0))
	s.Step(release(0, 0))
	s.Step(press(500, 500))

	v := reg.ItemVisual(id)
	if v.Selected || v.Hovering || v.Active != VisualNormal {
		t.Errorf("after empty click: %+v", v)
	}
	if len(events) != 1 || events[0].Object != id {
		t.Errorf("deselect events = %+v", events)
	}
}

func TestItemClickOnOtherItemDeselects(t *testing.T) {
	s := newTestScene(1)
	reg := s.Registry()
	a := spawnItem(reg, "a", 0, 0, 1)
	b := spawnItem(reg, "b", 200, 0, 1)

	s.Step(press(0, 0))
	s.Step(release(0, 0))
	s.Step(press(200, 0))

	if reg.ItemVisual(a).Selected {
		t.Error("a should lose selection when b is clicked")
	}
	if reg.ItemVisual(a).Active != VisualNormal {
		t.Errorf("a Active = %v", reg.ItemVisual(a).Active)
	}
	if !reg.ItemVisual(b).Selected {
		t.Error("b should be selected")
	}
}

func TestItemClickAlreadySelectedStays(t *testing.T) {
	s := newTestScene(1)
	reg := s.Registry()
	id := spawnItem(reg, "hoodie", 0, 0, 1)

	var events recordedEvents
	events.record(s, EventSelect)

	s.Step(press(0, 0))
	s.Step(release(0, 0))
	s.Step(press(0, 0))

	if !reg.ItemVisual(id).Selected {
		t.Error("item should stay selected")
	}
	if len(events) != 1 {
		t.Errorf("select events = %d, want 1", len(events))
	}
}

func TestItemDraggingFlag(t *testing.T) {
	s := newTestScene(1)
	reg := s.Registry()
	id := spawnItem(reg, "hoodie", 0, 0, 1)
	v := reg.ItemVisual(id)

	s.Step(press(0, 0))
	if !v.Dragging {
		t.Error("Dragging should be set while pressed on the item")
	}
	s.Step(hold(10, 0))
	if !v.Dragging {
		t.Error("Dragging should stay set while held")
	}
	s.Step(release(10, 0))
	if v.Dragging {
		t.Error("Dragging should clear on release")
	}
}

func TestItemEmptyClickIsPerGroup(t *testing.T) {
	s := newTestScene(1, 2)
	reg := s.Registry()
	a := spawnItem(reg, "a", 0, 0, 1)
	b := spawnItem(reg, "b", 500, 0, 2)

	s.Step(press(500, 0))
	s.Step(release(500, 0))
	if !reg.ItemVisual(b).Selected {
		t.Fatal("b should be selected")
	}

	// Group 1 has a hit, group 2 does not.
	s.Step(press(0, 0))
	if !reg.ItemVisual(a).Selected {
		t.Error("a should be selected")
	}
	if reg.ItemVisual(b).Selected {
		t.Error("empty press in group 2 should deselect b")
	}
}

func TestItemHoverEventPositions(t *testing.T) {
	s := newTestScene(1)
	reg := s.Registry()
	spawnItem(reg, "hoodie", 0, 0, 1)

	var events recordedEvents
	events.record(s, EventHoverEnter, EventHoverLeave)

	s.Step(moveTo(5, 6))
	s.Step(moveTo(300, 0))

	if !slices.Equal(events.types(), []EventType{EventHoverEnter, EventHoverLeave}) {
		t.Fatalf("events = %v", events.types())
	}
	assertVec(t, "enter", events[0].Position, Vec2{5, 6})
	assertVec(t, "leave", events[1].Position, Vec2{300, 0})
}
