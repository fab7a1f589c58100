package tether

import (
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// FrameInput is the pointer state for a single frame, polled once and then
// handed to every interaction phase.
type FrameInput struct {
	// Moves holds the screen positions the pointer moved to this frame, oldest
	// first. Only the last one matters; an empty list keeps the previous position.
	Moves []Vec2

	Pressed      bool // primary button held
	JustPressed  bool // primary button went down this frame
	JustReleased bool // primary button went up this frame

	// WindowSize is the logical window size. Zero keeps the last known size.
	WindowSize Vec2

	// DT is the frame time in seconds. Zero means 1/60.
	DT float32
}

// InputSource produces one FrameInput per frame.
type InputSource interface {
	Poll() FrameInput
}

// PointerSource ties the pointer to a camera and the groups whose cursor it
// provides. Each group may be provided by at most one source.
type PointerSource struct {
	Camera *Camera
	Groups []Group
}

// AddPointerSource registers a source. Panics if any of its groups is listed
// twice or already provided by another source, since the cursor for that
// group would be ambiguous.
func (s *Scene) AddPointerSource(src PointerSource) *PointerSource {
	for i, g := range src.Groups {
		if slices.Contains(src.Groups[:i], g) {
			panic(fmt.Sprintf("tether: pointer source lists group %d more than once", g))
		}
		for _, other := range s.sources {
			for _, og := range other.Groups {
				if og == g {
					panic(fmt.Sprintf("tether: multiple pointer sources assigned to group %d", g))
				}
			}
		}
	}
	p := &src
	s.sources = append(s.sources, p)
	return p
}

// RemovePointerSource unregisters a source previously returned by AddPointerSource.
func (s *Scene) RemovePointerSource(src *PointerSource) {
	for i, p := range s.sources {
		if p == src {
			s.sources = append(s.sources[:i], s.sources[i+1:]...)
			return
		}
	}
}

// PointerSources returns the registered sources. The returned slice MUST NOT be mutated.
func (s *Scene) PointerSources() []*PointerSource {
	return s.sources
}

// EbitenInput polls the mouse through ebiten. It reports a move only when the
// cursor position actually changed since the previous poll.
type EbitenInput struct {
	last Vec2
	seen bool
}

// Poll reads the current cursor, left button edges, and window size.
func (e *EbitenInput) Poll() FrameInput {
	cx, cy := ebiten.CursorPosition()
	pos := Vec2{float64(cx), float64(cy)}

	var in FrameInput
	if !e.seen || pos != e.last {
		in.Moves = []Vec2{pos}
		e.last = pos
		e.seen = true
	}
	in.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	w, h := ebiten.WindowSize()
	in.WindowSize = Vec2{float64(w), float64(h)}
	in.DT = float32(1.0 / float64(ebiten.TPS()))
	return in
}
