package tether

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is an orthographic 2D camera. Pointer sources convert screen
// positions into world space through it.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians.
	Rotation float64
	// Viewport is the screen-space rectangle the camera covers. A zero-sized
	// viewport falls back to the window size.
	Viewport Rect

	followTarget  ObjectID
	followOffsetX float64
	followOffsetY float64
	followLerp    float64

	scrollTween *scrollAnim
}

// NewCamera creates a camera at the origin with zoom 1.
func NewCamera(viewport Rect) *Camera {
	return &Camera{Zoom: 1, Viewport: viewport}
}

// Follow makes the camera track an object with the given offset and lerp factor.
// A lerp of 1.0 snaps immediately; lower values give smoother following.
func (c *Camera) Follow(id ObjectID, offsetX, offsetY, lerp float64) {
	c.followTarget = id
	c.followOffsetX = offsetX
	c.followOffsetY = offsetY
	c.followLerp = lerp
}

// Unfollow stops tracking the current target.
func (c *Camera) Unfollow() {
	c.followTarget = 0
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// update advances follow and scroll. A dead follow target is ignored.
func (c *Camera) update(dt float32, reg *Registry) {
	if c.followTarget != 0 && reg.Alive(c.followTarget) {
		p := reg.WorldPosition(c.followTarget)
		c.X += (p.X + c.followOffsetX - c.X) * c.followLerp
		c.Y += (p.Y + c.followOffsetY - c.Y) * c.followLerp
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}
}

// worldMatrix is the camera's own world transform:
// Translate(X, Y) * Rotate(Rotation) * Scale(1/Zoom).
func (c *Camera) worldMatrix() [6]float64 {
	z := c.Zoom
	if z == 0 {
		z = 1
	}
	inv := 1 / z
	sin, cos := math.Sincos(c.Rotation)
	return [6]float64{cos * inv, sin * inv, -sin * inv, cos * inv, c.X, c.Y}
}

// viewportSize returns the size used for the projection, falling back to the
// window when the camera has no explicit viewport.
func (c *Camera) viewportSize(window Vec2) Vec2 {
	if c.Viewport.Width > 0 && c.Viewport.Height > 0 {
		return c.Viewport.Size()
	}
	return window
}

// viewportOrigin returns the screen position of the viewport's top-left
// corner. A camera without an explicit viewport covers the window from (0, 0).
func (c *Camera) viewportOrigin() Vec2 {
	if c.Viewport.Width > 0 && c.Viewport.Height > 0 {
		return Vec2{c.Viewport.X, c.Viewport.Y}
	}
	return Vec2{}
}

// ScreenToWorld converts a screen position into world space. The screen
// position is made relative to the viewport's top-left corner, mapped to
// normalized device coordinates, passed through the inverse of an
// orthographic projection spanning the viewport (half extents around the
// origin, near 0, far 1), then through the camera's world matrix.
func (c *Camera) ScreenToWorld(screen, viewport Vec2) Vec2 {
	o := c.viewportOrigin()
	ndcX := (screen.X-o.X)/viewport.X*2 - 1
	ndcY := (screen.Y-o.Y)/viewport.Y*2 - 1
	// Inverse orthographic: ndc * half extent. Depth is dropped.
	vx := ndcX * viewport.X / 2
	vy := ndcY * viewport.Y / 2
	wx, wy := transformPoint(c.worldMatrix(), vx, vy)
	return Vec2{wx, wy}
}

// WorldToScreen is the inverse of ScreenToWorld.
func (c *Camera) WorldToScreen(world, viewport Vec2) Vec2 {
	vx, vy := transformPoint(invertAffine(c.worldMatrix()), world.X, world.Y)
	o := c.viewportOrigin()
	return Vec2{vx + viewport.X/2 + o.X, vy + viewport.Y/2 + o.Y}
}
