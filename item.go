package tether

import "github.com/hajimehoshi/ebiten/v2"

// placeholderSize is the edge length reported for visuals whose image is not
// loaded yet.
const placeholderSize = 64

// Visual is a handle to one visual representation of an item.
type Visual struct {
	Name  string
	Image *ebiten.Image // nil until the asset is ready
}

// Size returns the image size, or a square placeholder while the image is missing.
func (v Visual) Size() Vec2 {
	if v.Image == nil {
		return Vec2{placeholderSize, placeholderSize}
	}
	b := v.Image.Bounds()
	return Vec2{float64(b.Dx()), float64(b.Dy())}
}

// BoundsFromVisual returns a hit box matching the visual, centered on the origin.
func BoundsFromVisual(v Visual) Box {
	sz := v.Size()
	return CenteredBox(sz.X, sz.Y)
}

// VisualKind selects which representation an item shows.
type VisualKind uint8

const (
	VisualNormal VisualKind = iota
	VisualGlow
	VisualSelected
)

// ItemVisual is the hover/select/drag state of a visually reactive object.
type ItemVisual struct {
	// Group whose hit list drives this item.
	Group Group

	Hovering bool
	Selected bool
	Dragging bool

	// Visuals holds the normal, glow, and selected representations, indexed by VisualKind.
	Visuals [3]Visual
	// Active is the representation currently shown.
	Active VisualKind
}

// NewItemVisual creates an idle item showing its normal visual.
func NewItemVisual(g Group, normal, glow, selected Visual) ItemVisual {
	return ItemVisual{
		Group:   g,
		Visuals: [3]Visual{normal, glow, selected},
	}
}

// Current returns the active representation.
func (v *ItemVisual) Current() Visual {
	return v.Visuals[v.Active]
}

// runItems drives every item's state from this frame's hit lists.
func (s *Scene) runItems(snap *Snapshot, in FrameInput) {
	reg := s.reg
	if in.JustPressed {
		s.deselectOnEmptyClick(snap)
	}
	for i := 1; i < len(reg.item); i++ {
		v := reg.item[i]
		if v == nil {
			continue
		}
		s.stepItem(ObjectID(i), v, snap, in)
	}
}

// deselectOnEmptyClick clears selection and hover for every item of a group
// whose hit list is empty when the button goes down.
func (s *Scene) deselectOnEmptyClick(snap *Snapshot) {
	reg := s.reg
	for i := 1; i < len(reg.item); i++ {
		v := reg.item[i]
		if v == nil || len(snap.Hits(v.Group)) > 0 {
			continue
		}
		if v.Selected {
			s.emit(EventDeselect, ObjectID(i), v.Group, Vec2{})
		}
		v.Selected = false
		v.Hovering = false
	}
}

// stepItem applies one frame of transitions. Selection is evaluated before
// hover so a freshly selected item keeps the selected visual.
func (s *Scene) stepItem(id ObjectID, v *ItemVisual, snap *Snapshot, in FrameInput) {
	pos, hit := snap.HitPosition(v.Group, id)
	if !hit {
		pos, _ = snap.Cursor(v.Group)
	}

	if in.JustPressed {
		if hit && !v.Selected {
			v.Selected = true
			v.Active = VisualSelected
			s.emit(EventSelect, id, v.Group, pos)
		} else if !hit {
			if v.Selected {
				s.emit(EventDeselect, id, v.Group, pos)
			}
			v.Selected = false
			v.Active = VisualNormal
		}
	}

	if in.Pressed && hit && !v.Dragging {
		v.Dragging = true
	} else if in.JustReleased {
		v.Dragging = false
	}

	if hit && !v.Hovering {
		v.Hovering = true
		if !v.Selected {
			v.Active = VisualGlow
		}
		s.emit(EventHoverEnter, id, v.Group, pos)
	} else if v.Hovering && !hit && !v.Selected {
		v.Hovering = false
		v.Active = VisualNormal
		s.emit(EventHoverLeave, id, v.Group, pos)
	}
}
