package tether

import "fmt"

// object is one slot of the registry arena. Slots are never reused, so a stale
// ObjectID always resolves to a dead slot rather than to a different object.
type object struct {
	name     string
	alive    bool
	parent   ObjectID
	children []ObjectID

	// Local transform
	x, y     float64
	z        float64
	scaleX   float64
	scaleY   float64
	rotation float64

	// Computed during refresh
	world          [6]float64
	transformDirty bool
}

// Registry is an arena of objects plus parallel stores for every kind of
// attached interaction state, all indexed by ObjectID. Iteration over a store
// visits objects in spawn order.
type Registry struct {
	objects []object // index 0 is a permanently dead sentinel

	interactable []*Interactable
	draggable    []*Draggable
	dragState    []*DragState
	item         []*ItemVisual
	follower     []*FollowerLink

	dirty bool
	live  int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.grow()
	return r
}

// grow appends one empty slot to the arena and every store.
func (r *Registry) grow() {
	r.objects = append(r.objects, object{})
	r.interactable = append(r.interactable, nil)
	r.draggable = append(r.draggable, nil)
	r.dragState = append(r.dragState, nil)
	r.item = append(r.item, nil)
	r.follower = append(r.follower, nil)
}

// Spawn adds a root object at the origin with unit scale and returns its id.
func (r *Registry) Spawn(name string) ObjectID {
	id := ObjectID(len(r.objects))
	r.grow()
	o := &r.objects[id]
	o.name = name
	o.alive = true
	o.scaleX = 1
	o.scaleY = 1
	o.transformDirty = true
	r.dirty = true
	r.live++
	return id
}

// Despawn removes the object, its descendants, and all state attached to them.
// No-op for ids that are already dead.
func (r *Registry) Despawn(id ObjectID) {
	if !r.Alive(id) {
		return
	}
	if p := r.objects[id].parent; p != 0 {
		r.detach(p, id)
	}
	r.despawn(id)
	r.dirty = true
}

func (r *Registry) despawn(id ObjectID) {
	o := &r.objects[id]
	for _, c := range o.children {
		r.despawn(c)
	}
	*o = object{}
	r.interactable[id] = nil
	r.draggable[id] = nil
	r.dragState[id] = nil
	r.item[id] = nil
	r.follower[id] = nil
	r.live--
}

// Alive reports whether id refers to a spawned, not yet despawned object.
func (r *Registry) Alive(id ObjectID) bool {
	return id != 0 && int(id) < len(r.objects) && r.objects[id].alive
}

// Len returns the number of live objects.
func (r *Registry) Len() int {
	return r.live
}

// Name returns the name given at spawn time.
func (r *Registry) Name(id ObjectID) string {
	return r.mustGet(id).name
}

func (r *Registry) mustGet(id ObjectID) *object {
	if !r.Alive(id) {
		panic(fmt.Sprintf("tether: unknown object %d", id))
	}
	return &r.objects[id]
}

// --- Hierarchy ---

// SetParent attaches child under parent. A zero parent makes child a root.
// Panics if either id is dead or the attachment would create a cycle.
func (r *Registry) SetParent(child, parent ObjectID) {
	c := r.mustGet(child)
	if parent != 0 {
		r.mustGet(parent)
		if r.isAncestor(child, parent) {
			panic("tether: parenting would create a cycle")
		}
	}
	if c.parent == parent {
		return
	}
	if c.parent != 0 {
		r.detach(c.parent, child)
	}
	c.parent = parent
	if parent != 0 {
		p := &r.objects[parent]
		p.children = append(p.children, child)
	}
	r.markSubtreeDirty(child)
}

// Parent returns the parent id, or zero for roots.
func (r *Registry) Parent(id ObjectID) ObjectID {
	return r.mustGet(id).parent
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (r *Registry) Children(id ObjectID) []ObjectID {
	return r.mustGet(id).children
}

// isAncestor reports whether candidate is id or one of its ancestors.
func (r *Registry) isAncestor(candidate, id ObjectID) bool {
	for p := id; p != 0; p = r.objects[p].parent {
		if p == candidate {
			return true
		}
	}
	return false
}

func (r *Registry) detach(parent, child ObjectID) {
	p := &r.objects[parent]
	for i, c := range p.children {
		if c == child {
			copy(p.children[i:], p.children[i+1:])
			p.children = p.children[:len(p.children)-1]
			return
		}
	}
}

func (r *Registry) markSubtreeDirty(id ObjectID) {
	r.objects[id].transformDirty = true
	for _, c := range r.objects[id].children {
		r.markSubtreeDirty(c)
	}
	r.dirty = true
}

// --- Local transform ---

// SetPosition sets the object's local translation.
func (r *Registry) SetPosition(id ObjectID, x, y float64) {
	o := r.mustGet(id)
	o.x, o.y = x, y
	r.markSubtreeDirty(id)
}

// Position returns the object's local translation.
func (r *Registry) Position(id ObjectID) Vec2 {
	o := r.mustGet(id)
	return Vec2{o.x, o.y}
}

// SetZ sets the depth value. Depth never takes part in hit testing or
// dragging; it is carried for the renderer.
func (r *Registry) SetZ(id ObjectID, z float64) {
	r.mustGet(id).z = z
}

// Z returns the depth value.
func (r *Registry) Z(id ObjectID) float64 {
	return r.mustGet(id).z
}

// SetScale sets the object's local scale.
func (r *Registry) SetScale(id ObjectID, sx, sy float64) {
	o := r.mustGet(id)
	o.scaleX, o.scaleY = sx, sy
	r.markSubtreeDirty(id)
}

// Scale returns the object's local scale.
func (r *Registry) Scale(id ObjectID) Vec2 {
	o := r.mustGet(id)
	return Vec2{o.scaleX, o.scaleY}
}

// SetRotation sets the local rotation in radians. Rotation composes into world
// transforms for parenting, but hit testing ignores it.
func (r *Registry) SetRotation(id ObjectID, rad float64) {
	r.mustGet(id).rotation = rad
	r.markSubtreeDirty(id)
}

// --- Attached state ---

// SetInteractable attaches (or replaces) the object's Interactable record.
func (r *Registry) SetInteractable(id ObjectID, in Interactable) {
	r.mustGet(id)
	r.interactable[id] = &in
}

// Interactable returns the attached record, or nil.
func (r *Registry) Interactable(id ObjectID) *Interactable {
	if !r.Alive(id) {
		return nil
	}
	return r.interactable[id]
}

// RemoveInteractable detaches the Interactable record.
func (r *Registry) RemoveInteractable(id ObjectID) {
	if r.Alive(id) {
		r.interactable[id] = nil
	}
}

// SetDraggable attaches (or replaces) the object's Draggable record.
func (r *Registry) SetDraggable(id ObjectID, d Draggable) {
	r.mustGet(id)
	r.draggable[id] = &d
}

// Draggable returns the attached record, or nil.
func (r *Registry) Draggable(id ObjectID) *Draggable {
	if !r.Alive(id) {
		return nil
	}
	return r.draggable[id]
}

// DragState returns the live drag state, or nil when the object is idle.
// The record is owned by the drag controller and must not be modified.
func (r *Registry) DragState(id ObjectID) *DragState {
	if !r.Alive(id) {
		return nil
	}
	return r.dragState[id]
}

// IsDragging reports whether the object is currently bound to the pointer.
func (r *Registry) IsDragging(id ObjectID) bool {
	return r.DragState(id) != nil
}

// SetItemVisual attaches (or replaces) the object's visual state record.
func (r *Registry) SetItemVisual(id ObjectID, v ItemVisual) {
	r.mustGet(id)
	r.item[id] = &v
}

// ItemVisual returns the attached record, or nil.
func (r *Registry) ItemVisual(id ObjectID) *ItemVisual {
	if !r.Alive(id) {
		return nil
	}
	return r.item[id]
}

// SetFollower attaches a follower link. Links are never reassigned; calling
// this twice on the same object panics.
func (r *Registry) SetFollower(id ObjectID, link FollowerLink) {
	r.mustGet(id)
	if r.follower[id] != nil {
		panic(fmt.Sprintf("tether: object %d already follows %d", id, r.follower[id].Leader))
	}
	r.follower[id] = &link
}

// Follower returns the attached link, or nil.
func (r *Registry) Follower(id ObjectID) *FollowerLink {
	if !r.Alive(id) {
		return nil
	}
	return r.follower[id]
}
