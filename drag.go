package tether

// Draggable marks an object that the pointer can pick up.
type Draggable struct {
	// Groups that can start the drag, checked in order.
	Groups []Group
	// Hook, when set, is the fixed cursor-to-object offset used while dragging.
	// When nil the offset is captured at grab time.
	Hook *Vec2
	// Drop is applied on release.
	Drop DropPolicy
	// LockY pins the object's world Y to its grab-time value.
	LockY bool
}

// DragState exists only while an object is bound to the pointer.
type DragState struct {
	Group  Group
	Offset Vec2 // added to the cursor to get the object's world position
	Origin Vec2 // world position at grab time

	// JustGrabbed is true only on the frame the drag started.
	JustGrabbed bool
	// JustDropped is true on the release frame, unless the drag also started
	// on that frame.
	JustDropped bool

	originLocal Vec2
}

// Drop records a drag that ended this frame.
type Drop struct {
	ID    ObjectID
	State DragState
}

// runDrag advances the drag controller by one frame: age existing drags,
// grab on the press edge, release on the release edge, then move whatever is
// still bound.
func (s *Scene) runDrag(snap *Snapshot, in FrameInput) {
	reg := s.reg
	for i := 1; i < len(reg.dragState); i++ {
		if ds := reg.dragState[i]; ds != nil {
			ds.JustGrabbed = false
		}
	}
	if in.JustPressed {
		s.grab(snap)
	}
	if in.JustReleased {
		s.release()
	}
	s.follow(snap)
}

// grab binds every idle draggable that is hit in one of its groups. The first
// matching group in the draggable's own declaration order wins.
func (s *Scene) grab(snap *Snapshot) {
	reg := s.reg
	for i := 1; i < len(reg.objects); i++ {
		d := reg.draggable[i]
		if d == nil || reg.dragState[i] != nil || reg.interactable[i] == nil || !reg.objects[i].alive {
			continue
		}
		id := ObjectID(i)
		for _, g := range d.Groups {
			hitPos, ok := snap.HitPosition(g, id)
			if !ok {
				continue
			}
			pos := reg.WorldPosition(id)
			offset := pos.Sub(hitPos)
			if d.Hook != nil {
				offset = *d.Hook
			}
			reg.dragState[i] = &DragState{
				Group:       g,
				Offset:      offset,
				Origin:      pos,
				JustGrabbed: true,
				originLocal: reg.Position(id),
			}
			s.emit(EventGrab, id, g, hitPos)
			break
		}
	}
}

// release ends every drag. Reset restores the grab-time local position;
// depth is never touched.
func (s *Scene) release() {
	reg := s.reg
	for i := 1; i < len(reg.dragState); i++ {
		ds := reg.dragState[i]
		if ds == nil {
			continue
		}
		id := ObjectID(i)
		ds.JustDropped = !ds.JustGrabbed
		if d := reg.draggable[i]; d != nil && d.Drop == DropReset {
			reg.SetPosition(id, ds.originLocal.X, ds.originLocal.Y)
		}
		reg.dragState[i] = nil
		s.drops = append(s.drops, Drop{ID: id, State: *ds})
		if ds.JustDropped {
			s.emit(EventDrop, id, ds.Group, reg.WorldPosition(id))
		}
	}
}

// follow places every bound object at cursor + offset in world space,
// converted into its parent's space.
func (s *Scene) follow(snap *Snapshot) {
	reg := s.reg
	for i := 1; i < len(reg.dragState); i++ {
		ds := reg.dragState[i]
		if ds == nil {
			continue
		}
		cursor, ok := snap.Cursor(ds.Group)
		if !ok {
			continue
		}
		wx := cursor.X + ds.Offset.X
		wy := cursor.Y + ds.Offset.Y
		if d := reg.draggable[i]; d != nil && d.LockY {
			wy = ds.Origin.Y
		}
		reg.SetWorldPosition(ObjectID(i), wx, wy)
	}
}
