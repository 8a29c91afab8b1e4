package bough

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

// cameraFilterer is implemented by drawables that can hide from cameras.
// Node provides it.
type cameraFilterer interface {
	CameraFilter() uint32
}

// Camera is the standard VisibilityOracle and Viewer. It maps world space to
// its viewport and scrolls each drawable by ScrollX/ScrollY multiplied by the
// drawable's effective scroll factor.
type Camera struct {
	// ScrollX and ScrollY are the world-space offset of the viewport's top-left
	// for a drawable with scroll factor 1.
	ScrollX, ScrollY float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// BoundsEnabled clamps the scroll position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	Bounds        Rect

	id          uint32
	scrollTween *scrollAnim
}

// NewCamera creates a standalone camera with the given viewport. Use
// Scene.NewCamera to get a camera that drawables can ignore.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
	}
}

// ID returns the camera's bit in a node's camera filter, or 0.
func (c *Camera) ID() uint32 {
	return c.id
}

// IsVisible reports whether d is visible and not filtered from this camera.
func (c *Camera) IsVisible(d Drawable) bool {
	if !d.Visible() {
		return false
	}
	if c.id != 0 {
		if f, ok := d.(cameraFilterer); ok && f.CameraFilter()&c.id != 0 {
			return false
		}
	}
	return true
}

// View returns the world-to-screen matrix for a drawable with the given
// effective scroll factor:
//
//	Translate(center) ∘ Scale(zoom) ∘ Rotate(-rotation) ∘ Translate(-halfView - scroll*factor)
//
// where center is the viewport center in screen space and halfView is half
// the viewport size, so scroll (0, 0) shows world (0, 0) at the viewport's
// top-left.
func (c *Camera) View(scrollFactor Vec2) Transform {
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	t := IdentityTransform()
	t.Translate(cx, cy).
		Scale(c.Zoom, c.Zoom).
		Rotate(-c.Rotation).
		Translate(-c.Viewport.Width/2-c.ScrollX*scrollFactor.X, -c.Viewport.Height/2-c.ScrollY*scrollFactor.Y)
	return t
}

// WorldToScreen converts world coordinates to screen coordinates for scroll factor 1.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	v := c.View(Vec2{1, 1})
	return v.Apply(wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates for scroll factor 1.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	v := c.View(Vec2{1, 1})
	inv := v.Invert()
	return inv.Apply(sx, sy)
}

// ScrollTo animates the scroll position to (x, y) over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.ScrollX), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.ScrollY), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// SetBounds enables scroll clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables scroll clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Update advances the scroll animation and applies bounds clamping.
func (c *Camera) Update(dt float32) {
	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.ScrollX = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.ScrollY = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts scroll so the visible area stays within Bounds.
// If Bounds is smaller than the visible area the view is centered on it.
func (c *Camera) clampToBounds() {
	visW := c.Viewport.Width / c.Zoom
	visH := c.Viewport.Height / c.Zoom
	// Scroll is measured at zoom 1; the visible area at other zooms is
	// centered on the unzoomed viewport center.
	offX := (c.Viewport.Width - visW) / 2
	offY := (c.Viewport.Height - visH) / 2

	minX := c.Bounds.X - offX
	maxX := c.Bounds.X + c.Bounds.Width - visW - offX
	minY := c.Bounds.Y - offY
	maxY := c.Bounds.Y + c.Bounds.Height - visH - offY

	if minX > maxX {
		c.ScrollX = c.Bounds.X + c.Bounds.Width/2 - c.Viewport.Width/2
	} else {
		c.ScrollX = math.Max(minX, math.Min(c.ScrollX, maxX))
	}
	if minY > maxY {
		c.ScrollY = c.Bounds.Y + c.Bounds.Height/2 - c.Viewport.Height/2
	} else {
		c.ScrollY = math.Max(minY, math.Min(c.ScrollY, maxY))
	}
}
