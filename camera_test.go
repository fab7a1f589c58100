package tether

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

var testViewport = Vec2{800, 600}

func TestScreenToWorldCenterIsCameraPosition(t *testing.T) {
	cam := NewCamera(Rect{})
	assertVec(t, "origin", cam.ScreenToWorld(Vec2{400, 300}, testViewport), Vec2{})

	cam.X, cam.Y = 250, -75
	assertVec(t, "moved", cam.ScreenToWorld(Vec2{400, 300}, testViewport), Vec2{250, -75})
}

func TestScreenToWorldCorners(t *testing.T) {
	cam := NewCamera(Rect{})
	assertVec(t, "top-left", cam.ScreenToWorld(Vec2{0, 0}, testViewport), Vec2{-400, -300})
	assertVec(t, "bottom-right", cam.ScreenToWorld(Vec2{800, 600}, testViewport), Vec2{400, 300})
}

func TestScreenToWorldZoom(t *testing.T) {
	cam := NewCamera(Rect{})
	cam.Zoom = 2
	assertVec(t, "zoomed", cam.ScreenToWorld(Vec2{0, 0}, testViewport), Vec2{-200, -150})
}

func TestScreenToWorldRotation(t *testing.T) {
	cam := NewCamera(Rect{})
	cam.Rotation = math.Pi / 2
	assertVec(t, "rotated", cam.ScreenToWorld(Vec2{500, 300}, testViewport), Vec2{0, 100})
}

func TestWorldToScreenRoundTrip(t *testing.T) {
	cam := NewCamera(Rect{})
	cam.X, cam.Y = 30, 40
	cam.Zoom = 1.5
	cam.Rotation = 0.3

	tests := []Vec2{{0, 0}, {123, 456}, {800, 600}, {-10, 20}}
	for _, screen := range tests {
		world := cam.ScreenToWorld(screen, testViewport)
		back := cam.WorldToScreen(world, testViewport)
		if !approxEqual(back.X, screen.X, 1e-6) || !approxEqual(back.Y, screen.Y, 1e-6) {
			t.Errorf("round trip %v -> %v -> %v", screen, world, back)
		}
	}
}

func TestWorldToScreenOffsetViewport(t *testing.T) {
	cam := NewCamera(Rect{X: 100, Y: 50, Width: 200, Height: 100})
	cam.X, cam.Y = 10, 20
	vp := cam.Viewport.Size()

	assertVec(t, "center", cam.WorldToScreen(Vec2{10, 20}, vp), Vec2{200, 100})
	for _, screen := range []Vec2{{100, 50}, {250, 120}, {300, 150}} {
		back := cam.WorldToScreen(cam.ScreenToWorld(screen, vp), vp)
		assertVec(t, "round trip", back, screen)
	}
}

func TestViewportSizeFallsBackToWindow(t *testing.T) {
	cam := NewCamera(Rect{})
	assertVec(t, "fallback", cam.viewportSize(Vec2{1024, 768}), Vec2{1024, 768})

	cam.Viewport = Rect{Width: 320, Height: 240}
	assertVec(t, "explicit", cam.viewportSize(Vec2{1024, 768}), Vec2{320, 240})
}

func TestCameraZeroZoomTreatedAsOne(t *testing.T) {
	cam := &Camera{}
	assertVec(t, "zero zoom", cam.ScreenToWorld(Vec2{0, 0}, testViewport), Vec2{-400, -300})
}

func TestCameraFollow(t *testing.T) {
	reg := NewRegistry()
	target := reg.Spawn("target")
	reg.SetPosition(target, 500, 200)

	cam := NewCamera(Rect{})
	cam.Follow(target, 10, -20, 1.0)
	cam.update(defaultDT, reg)

	if !approxEqual(cam.X, 510, 0.01) || !approxEqual(cam.Y, 180, 0.01) {
		t.Errorf("follow: cam = (%f,%f), want (510,180)", cam.X, cam.Y)
	}
}

func TestCameraFollowLerp(t *testing.T) {
	reg := NewRegistry()
	target := reg.Spawn("target")
	reg.SetPosition(target, 100, 0)

	cam := NewCamera(Rect{})
	cam.Follow(target, 0, 0, 0.5)
	cam.update(defaultDT, reg)

	if !approxEqual(cam.X, 50, 0.01) {
		t.Errorf("lerp: cam.X = %f, want 50", cam.X)
	}
}

func TestCameraFollowDeadTargetIgnored(t *testing.T) {
	reg := NewRegistry()
	target := reg.Spawn("target")
	reg.SetPosition(target, 100, 100)

	cam := NewCamera(Rect{})
	cam.Follow(target, 0, 0, 1)
	reg.Despawn(target)
	cam.update(defaultDT, reg)

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("dead target moved camera to (%f,%f)", cam.X, cam.Y)
	}
}

func TestCameraUnfollow(t *testing.T) {
	reg := NewRegistry()
	target := reg.Spawn("target")
	reg.SetPosition(target, 100, 100)

	cam := NewCamera(Rect{})
	cam.Follow(target, 0, 0, 1)
	cam.Unfollow()
	cam.update(defaultDT, reg)

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("unfollowed camera moved to (%f,%f)", cam.X, cam.Y)
	}
}

func TestCameraScrollTo(t *testing.T) {
	reg := NewRegistry()
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.ScrollTo(100, 200, 1.0, ease.Linear)
	if !cam.Scrolling() {
		t.Fatal("Scrolling should be true after ScrollTo")
	}

	cam.update(0.5, reg)
	if !approxEqual(cam.X, 50, 1.0) || !approxEqual(cam.Y, 100, 1.0) {
		t.Errorf("scroll halfway: cam = (%f,%f), want ~(50,100)", cam.X, cam.Y)
	}

	cam.update(0.5, reg)
	if !approxEqual(cam.X, 100, 1.0) || !approxEqual(cam.Y, 200, 1.0) {
		t.Errorf("scroll end: cam = (%f,%f), want ~(100,200)", cam.X, cam.Y)
	}
	if cam.Scrolling() {
		t.Error("scroll should be finished")
	}
}
