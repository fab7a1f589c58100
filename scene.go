package tether

import (
	"log/slog"
	"time"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent describes one state change produced by a frame.
type InteractionEvent struct {
	Type     EventType
	Object   ObjectID
	Group    Group
	Position Vec2 // world-space cursor position, zero when unknown
	Frame    uint64
}

const defaultDT = float32(1.0 / 60.0)

// Scene is the frame scheduler. It owns the registry, the pointer sources, and
// the last known pointer position, and runs the interaction phases in a fixed
// order every frame: hit testing, dragging, item states, followers.
type Scene struct {
	reg     *Registry
	sources []*PointerSource
	store   EntityStore
	logger  *slog.Logger
	debug   bool

	input      InputSource
	updateFunc func() error

	frame      uint64
	screen     Vec2
	hasScreen  bool
	windowSize Vec2

	snapshot *Snapshot
	drops    []Drop

	handlers handlerRegistry

	// Synthetic input (inject.go, testrunner.go)
	injectQueue []syntheticPointerEvent
	injectDown  bool
	testRunner  *TestRunner
}

// NewScene creates a scene with an empty registry and no pointer sources.
func NewScene() *Scene {
	return &Scene{
		reg:      NewRegistry(),
		logger:   slog.New(slog.DiscardHandler),
		snapshot: newSnapshot(0),
	}
}

// Registry returns the scene's object registry.
func (s *Scene) Registry() *Registry {
	return s.reg
}

// Snapshot returns the interaction snapshot of the most recent frame.
func (s *Scene) Snapshot() *Snapshot {
	return s.snapshot
}

// Drops returns the drags that ended during the most recent frame, including
// same-frame clicks whose JustDropped is false. The slice MUST NOT be mutated.
func (s *Scene) Drops() []Drop {
	return s.drops
}

// Frame returns the number of frames stepped so far.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// SetWindowSize sets the logical window size used when a camera has no viewport.
func (s *Scene) SetWindowSize(w, h float64) {
	s.windowSize = Vec2{w, h}
}

// SetInputSource sets where Update polls input from.
func (s *Scene) SetInputSource(src InputSource) {
	s.input = src
}

// SetUpdateFunc sets a callback run at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetLogger sets the structured logger. A nil logger discards output.
func (s *Scene) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	s.logger = l
}

// SetDebugMode enables per-frame debug records on the scene logger.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update runs one frame from the next injected event, or from the input
// source when nothing is queued, then calls the update func.
func (s *Scene) Update() error {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	in, ok := s.nextInjected()
	if !ok && s.input != nil {
		in = s.input.Poll()
	}
	s.Step(in)
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Step runs the interaction phases for one frame and returns the new snapshot.
func (s *Scene) Step(in FrameInput) *Snapshot {
	s.frame++
	if in.WindowSize.X > 0 && in.WindowSize.Y > 0 {
		s.windowSize = in.WindowSize
	}
	if n := len(in.Moves); n > 0 {
		s.screen = in.Moves[n-1]
		s.hasScreen = true
	}
	dt := in.DT
	if dt <= 0 {
		dt = defaultDT
	}
	s.updateCameras(dt)

	var stats frameStats
	t0 := time.Now()

	snap := newSnapshot(s.frame)
	if s.hasScreen {
		snap.resolveCursors(s.sources, s.screen, s.windowSize)
		snap.collectHits(s.reg)
	}
	s.snapshot = snap
	stats.hitTime = time.Since(t0)

	t0 = time.Now()
	s.drops = s.drops[:0]
	s.runDrag(snap, in)
	stats.dragTime = time.Since(t0)

	t0 = time.Now()
	s.runItems(snap, in)
	stats.itemTime = time.Since(t0)

	t0 = time.Now()
	s.propagateFollowers()
	stats.followTime = time.Since(t0)

	if s.debug {
		s.debugLog(snap, in, stats)
	}
	return snap
}

// updateCameras advances each distinct camera once.
func (s *Scene) updateCameras(dt float32) {
	for i, src := range s.sources {
		if src.Camera == nil || cameraSeen(s.sources[:i], src.Camera) {
			continue
		}
		src.Camera.update(dt, s.reg)
	}
}

func cameraSeen(sources []*PointerSource, cam *Camera) bool {
	for _, p := range sources {
		if p.Camera == cam {
			return true
		}
	}
	return false
}

// --- Events ---

type eventHandler struct {
	id  uint32
	typ EventType
	fn  func(InteractionEvent)
}

type handlerRegistry struct {
	handlers []eventHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	hs := h.reg.handlers
	for i := range hs {
		if hs[i].id == h.id {
			copy(hs[i:], hs[i+1:])
			hs[len(hs)-1] = eventHandler{}
			h.reg.handlers = hs[:len(hs)-1]
			return
		}
	}
}

// On registers a callback for one event type. Callbacks run synchronously
// inside the phase that produced the event.
func (s *Scene) On(typ EventType, fn func(InteractionEvent)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.handlers = append(s.handlers.handlers, eventHandler{id: id, typ: typ, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers}
}

func (s *Scene) emit(typ EventType, id ObjectID, g Group, pos Vec2) {
	ev := InteractionEvent{Type: typ, Object: id, Group: g, Position: pos, Frame: s.frame}
	for _, h := range s.handlers.handlers {
		if h.typ == typ {
			h.fn(ev)
		}
	}
	if s.store != nil {
		s.store.EmitEvent(ev)
	}
	if s.debug {
		s.logger.Debug("interaction event",
			"type", typ.String(), "object", id, "group", g, "frame", s.frame)
	}
}
