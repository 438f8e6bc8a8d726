// Package render draws world snapshots into images without a window.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/image/vector"

	"rigid2d/internal/physics"
	"rigid2d/internal/view"
)

const (
	circleSegments = 32
	outlineWidth   = 1.5
	pointRadius    = 3
	rayWidth       = 1.5
)

var outlineColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}

// Options sets the frame size and the mapping from world to pixels. World y points up;
// Center is the world point drawn in the middle of the frame and Scale is pixels per
// world unit.
type Options struct {
	Width, Height int
	Scale         float32
	Center        rl.Vector2
	Background    color.RGBA
}

// DefaultOptions returns a 1280x720 frame at one pixel per unit, centered on the
// default scene.
func DefaultOptions() Options {
	return Options{
		Width:      1280,
		Height:     720,
		Scale:      1,
		Center:     rl.NewVector2(300, 200),
		Background: color.RGBA{R: 11, G: 187, B: 202, A: 255},
	}
}

// Camera returns the view these options describe.
func (o Options) Camera() view.Camera {
	return view.Camera{Center: o.Center, Zoom: o.Scale, Width: float32(o.Width), Height: float32(o.Height)}
}

// ToScreen maps a world point to pixel coordinates.
func (o Options) ToScreen(p rl.Vector2) rl.Vector2 {
	return o.Camera().ToScreen(p)
}

// canvas accumulates filled paths with one rasterizer.
type canvas struct {
	dst  *image.RGBA
	ras  *vector.Rasterizer
	opts Options
}

func (c *canvas) fill(pts []rl.Vector2, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	c.ras.Reset(c.opts.Width, c.opts.Height)
	c.ras.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.ras.LineTo(p.X, p.Y)
	}
	c.ras.ClosePath()
	c.ras.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col), image.Point{})
}

// line fills a quad of the given pixel width around the segment a-b.
func (c *canvas) line(a, b rl.Vector2, width float32, col color.RGBA) {
	d := rl.Vector2Subtract(b, a)
	if rl.Vector2LengthSqr(d) == 0 {
		return
	}
	n := rl.Vector2Scale(rl.Vector2Normalize(rl.NewVector2(-d.Y, d.X)), width/2)
	c.fill([]rl.Vector2{
		rl.Vector2Add(a, n), rl.Vector2Add(b, n),
		rl.Vector2Subtract(b, n), rl.Vector2Subtract(a, n),
	}, col)
}

func (c *canvas) outline(pts []rl.Vector2, col color.RGBA) {
	for i, p := range pts {
		c.line(p, pts[(i+1)%len(pts)], outlineWidth, col)
	}
}

// disc returns a screen-space polygon approximating a circle.
func disc(center rl.Vector2, r float32) []rl.Vector2 {
	pts := make([]rl.Vector2, circleSegments)
	for i := range pts {
		s, c := math32.Sincos(2 * math32.Pi * float32(i) / circleSegments)
		pts[i] = rl.NewVector2(center.X+r*c, center.Y+r*s)
	}
	return pts
}

// Outline returns the screen-space outline of b: its vertices, or a polygon
// approximating the circle.
func (o Options) Outline(b *physics.Body) []rl.Vector2 {
	if r, ok := b.Radius(); ok {
		return disc(o.ToScreen(b.Position), r*o.Scale)
	}
	pts := make([]rl.Vector2, len(b.Vertices))
	for i, v := range b.Vertices {
		pts[i] = o.ToScreen(rl.Vector2Add(b.Position, v))
	}
	return pts
}

// Frame draws bodies in order, then the debug primitives on top.
func Frame(bodies []physics.Body, prims []physics.DebugPrimitive, opts Options) *image.RGBA {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	c := &canvas{dst: dst, ras: vector.NewRasterizer(opts.Width, opts.Height), opts: opts}

	for i := range bodies {
		b := &bodies[i]
		pts := opts.Outline(b)
		c.fill(pts, b.Color)
		c.outline(pts, outlineColor)
		if r, ok := b.Radius(); ok {
			// A spoke makes circle rotation visible.
			tip := rl.Vector2Add(b.Position, rl.Vector2Rotate(rl.NewVector2(r, 0), b.Angle))
			c.line(opts.ToScreen(b.Position), opts.ToScreen(tip), outlineWidth, outlineColor)
		}
	}
	for _, p := range prims {
		origin := opts.ToScreen(p.Origin)
		switch p.Kind {
		case physics.PrimitivePoint:
			c.fill(disc(origin, pointRadius), p.Color)
		case physics.PrimitiveRay:
			c.line(origin, opts.ToScreen(rl.Vector2Add(p.Origin, p.Vector)), rayWidth, p.Color)
		}
	}
	return dst
}

// SavePNG writes img to path as a PNG, creating the parent directory if needed.
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
