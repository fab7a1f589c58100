package tether

import (
	"fmt"
	"slices"
)

// Interactable makes an object visible to pointer queries.
type Interactable struct {
	// Groups the object participates in.
	Groups []Group
	// Bounds is the hit area in the object's local, unscaled space.
	Bounds Box
}

// Hit is one entry of a group's hit list.
type Hit struct {
	ID       ObjectID
	Position Vec2 // world-space cursor position at the hit
}

// Snapshot is the per-frame interaction state: where the pointer is in each
// group's world space and which objects it overlaps. A new Snapshot is built
// every frame; later phases only read it.
type Snapshot struct {
	Frame   uint64
	cursors map[Group]Vec2
	hits    map[Group][]Hit
}

func newSnapshot(frame uint64) *Snapshot {
	return &Snapshot{
		Frame:   frame,
		cursors: make(map[Group]Vec2),
		hits:    make(map[Group][]Hit),
	}
}

// Cursor returns the world-space pointer position for the group.
func (s *Snapshot) Cursor(g Group) (Vec2, bool) {
	p, ok := s.cursors[g]
	return p, ok
}

// Hits returns the group's hit list in iteration order. The slice MUST NOT be
// mutated. Order is not depth order.
func (s *Snapshot) Hits(g Group) []Hit {
	return s.hits[g]
}

// HitPosition returns the cursor position recorded when id was hit in g.
func (s *Snapshot) HitPosition(g Group, id ObjectID) (Vec2, bool) {
	for _, h := range s.hits[g] {
		if h.ID == id {
			return h.Position, true
		}
	}
	return Vec2{}, false
}

// IsHit reports whether id is in the group's hit list.
func (s *Snapshot) IsHit(g Group, id ObjectID) bool {
	_, ok := s.HitPosition(g, id)
	return ok
}

// Groups returns the groups that have a cursor this frame, in ascending order.
func (s *Snapshot) Groups() []Group {
	gs := make([]Group, 0, len(s.cursors))
	for g := range s.cursors {
		gs = append(gs, g)
	}
	slices.Sort(gs)
	return gs
}

// setCursor records a group's cursor. A second source claiming the same group
// is a configuration bug.
func (s *Snapshot) setCursor(g Group, p Vec2) {
	if _, taken := s.cursors[g]; taken {
		panic(fmt.Sprintf("tether: multiple pointer sources assigned to group %d", g))
	}
	s.cursors[g] = p
}

// resolveCursors converts the pointer's screen position into world space once
// per source and assigns it to every group the source declares.
func (s *Snapshot) resolveCursors(sources []*PointerSource, screen, window Vec2) {
	for _, src := range sources {
		if src.Camera == nil {
			panic("tether: interacting without a camera is not supported")
		}
		vp := src.Camera.viewportSize(window)
		if vp.X <= 0 || vp.Y <= 0 {
			continue // no window yet
		}
		world := src.Camera.ScreenToWorld(screen, vp)
		for _, g := range src.Groups {
			s.setCursor(g, world)
		}
	}
}

// collectHits rebuilds every group's hit list from scratch. Objects are
// visited in registry order; a hit is the cursor, moved into the object's
// local space by translation and scale, falling inside its bounds.
func (s *Snapshot) collectHits(reg *Registry) {
	if len(s.cursors) == 0 {
		return
	}
	for i := 1; i < len(reg.objects); i++ {
		in := reg.interactable[i]
		if in == nil || !reg.objects[i].alive {
			continue
		}
		id := ObjectID(i)
		for _, g := range in.Groups {
			cursor, ok := s.cursors[g]
			if !ok {
				continue
			}
			list := s.hits[g]
			if n := len(list); n > 0 && list[n-1].ID == id {
				continue // group declared twice on one object
			}
			lx, ly := reg.WorldToLocal(id, cursor.X, cursor.Y)
			if in.Bounds.Contains(lx, ly) {
				s.hits[g] = append(list, Hit{ID: id, Position: cursor})
			}
		}
	}
}
