package tether

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates. It is converted to world space through the pointer sources,
// exactly like real mouse input.
type syntheticPointerEvent struct {
	screen  Vec2
	pressed bool
}

// InjectPress queues a button press at the given screen position. Each queued
// event is consumed by one Update call, which then skips the input source.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{screen: Vec2{x, y}, pressed: true})
}

// InjectMove queues a move with the button held. Use it between InjectPress
// and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{screen: Vec2{x, y}, pressed: true})
}

// InjectHover queues a move with the button up.
func (s *Scene) InjectHover(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{screen: Vec2{x, y}})
}

// InjectRelease queues a button release at the given screen position.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{screen: Vec2{x, y}})
}

// InjectClick queues a press followed by a release. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), linearly interpolated moves over
// frames-2 intermediate frames, and a release at (toX, toY). Minimum frames is 2.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (s *Scene) Pending() int {
	return len(s.injectQueue)
}

// nextInjected pops one synthetic event and turns it into a FrameInput,
// deriving button edges from the previous injected state.
func (s *Scene) nextInjected() (FrameInput, bool) {
	if len(s.injectQueue) == 0 {
		return FrameInput{}, false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	in := FrameInput{
		Moves:        []Vec2{evt.screen},
		Pressed:      evt.pressed,
		JustPressed:  evt.pressed && !s.injectDown,
		JustReleased: !evt.pressed && s.injectDown,
	}
	s.injectDown = evt.pressed
	return in, true
}
