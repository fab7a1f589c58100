package tether

import "fmt"

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Rect is an axis-aligned screen-space rectangle, used for camera viewports.
type Rect struct {
	X, Y, Width, Height float64
}

// Size returns the rectangle's width and height as a vector.
func (r Rect) Size() Vec2 {
	return Vec2{r.Width, r.Height}
}

// Box is an axis-aligned bounding box in an object's local (unscaled,
// unrotated) space, given by its min and max corners.
type Box struct {
	Min, Max Vec2
}

// Contains reports whether (x, y) lies inside the box. Both axes use half-open
// ranges [Min, Max), so boxes that share an edge never both contain a point on it.
func (b Box) Contains(x, y float64) bool {
	return x >= b.Min.X && x < b.Max.X &&
		y >= b.Min.Y && y < b.Max.Y
}

// CenteredBox returns a box of the given size centered on the local origin.
func CenteredBox(w, h float64) Box {
	return Box{
		Min: Vec2{-w / 2, -h / 2},
		Max: Vec2{w / 2, h / 2},
	}
}

// Group partitions pointer sources and interactive objects into independent
// interaction channels. An object may belong to several groups.
type Group uint8

// ObjectID identifies an object in a Registry. Zero is never a valid id.
type ObjectID uint32

// DropPolicy selects what happens to a dragged object's position on release.
type DropPolicy uint8

const (
	DropLeave DropPolicy = iota // keep the post-drag position
	DropReset                   // snap back to the position held at grab time
)

// String returns the config spelling of the policy.
func (p DropPolicy) String() string {
	switch p {
	case DropLeave:
		return "leave"
	case DropReset:
		return "reset"
	default:
		return fmt.Sprintf("DropPolicy(%d)", uint8(p))
	}
}

// ParseDropPolicy parses "leave" or "reset". An empty string means leave.
func ParseDropPolicy(s string) (DropPolicy, error) {
	switch s {
	case "", "leave":
		return DropLeave, nil
	case "reset":
		return DropReset, nil
	default:
		return DropLeave, fmt.Errorf("unknown drop policy %q", s)
	}
}

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventGrab       EventType = iota // an object became bound to the pointer
	EventDrop                        // a drag ended on a later frame than it started
	EventSelect                      // an item became selected
	EventDeselect                    // an item lost its selection
	EventHoverEnter                  // an item started hovering
	EventHoverLeave                  // an item stopped hovering
)

var eventNames = [...]string{"grab", "drop", "select", "deselect", "hover-enter", "hover-leave"}

// String returns a short lowercase name for the event type.
func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return fmt.Sprintf("EventType(%d)", uint8(e))
}
