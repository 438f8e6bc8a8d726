// Package view maps between world space (y up) and screen space (y down).
package view

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Zoom limits for ZoomAt.
const (
	MinZoom = 0.05
	MaxZoom = 20
)

// Camera looks at Center from a screen of Width x Height pixels. Zoom is pixels per
// world unit.
type Camera struct {
	Center        rl.Vector2
	Zoom          float32
	Width, Height float32
}

// New returns a camera centered on center at one pixel per unit.
func New(width, height float32, center rl.Vector2) Camera {
	return Camera{Center: center, Zoom: 1, Width: width, Height: height}
}

// ToScreen maps a world point to screen pixels.
func (c Camera) ToScreen(p rl.Vector2) rl.Vector2 {
	return rl.NewVector2(
		(p.X-c.Center.X)*c.Zoom+c.Width/2,
		c.Height/2-(p.Y-c.Center.Y)*c.Zoom,
	)
}

// ToWorld maps a screen point to world space. It is the inverse of ToScreen.
func (c Camera) ToWorld(s rl.Vector2) rl.Vector2 {
	return rl.NewVector2(
		(s.X-c.Width/2)/c.Zoom+c.Center.X,
		(c.Height/2-s.Y)/c.Zoom+c.Center.Y,
	)
}

// Pan moves the view by a screen-space drag of delta pixels, so the world follows
// the cursor.
func (c *Camera) Pan(delta rl.Vector2) {
	c.Center.X -= delta.X / c.Zoom
	c.Center.Y += delta.Y / c.Zoom
}

// ZoomAt scales the zoom by 1.1 per wheel step, keeping the world point under the
// screen point s fixed.
func (c *Camera) ZoomAt(s rl.Vector2, wheel float32) {
	if wheel == 0 {
		return
	}
	anchor := c.ToWorld(s)
	zoom := c.Zoom * math32.Pow(1.1, wheel)
	c.Zoom = math32.Min(math32.Max(zoom, MinZoom), MaxZoom)
	after := c.ToWorld(s)
	c.Center = rl.Vector2Add(c.Center, rl.Vector2Subtract(anchor, after))
}

// Resize updates the screen size, keeping Center in the middle.
func (c *Camera) Resize(width, height float32) {
	c.Width, c.Height = width, height
}
