// Package graphics runs the raylib window and draws worlds into it.
package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"rigid2d/internal/physics"
	"rigid2d/internal/view"
)

// Background is the window clear color.
var Background = color.RGBA{R: 11, G: 187, B: 202, A: 255}

var outlineColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}

const (
	outlineThickness = 1.5
	pointRadius      = 3
	rayThickness     = 1.5
)

// Run opens a resizable window and runs the main loop until it is closed or Esc is
// pressed. Each frame it calls update, then clears the screen and calls draw.
func Run(title string, width, height int32, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(Background)
		draw()
		rl.EndDrawing()
	}
}

// ScreenSize returns the current window size in pixels.
func ScreenSize() (float32, float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}

// DrawBodies draws each body filled with its color and outlined. Circles get a spoke
// so their rotation shows.
func DrawBodies(cam view.Camera, bodies []physics.Body) {
	for i := range bodies {
		b := &bodies[i]
		center := cam.ToScreen(b.Position)
		if r, ok := b.Radius(); ok {
			rl.DrawCircleV(center, r*cam.Zoom, b.Color)
			rl.DrawCircleLinesV(center, r*cam.Zoom, outlineColor)
			tip := rl.Vector2Add(b.Position, rl.Vector2Rotate(rl.NewVector2(r, 0), b.Angle))
			rl.DrawLineEx(center, cam.ToScreen(tip), outlineThickness, outlineColor)
			continue
		}
		pts := ScreenOutline(cam, b)
		rl.DrawTriangleFan(pts, b.Color)
		for j, p := range pts {
			rl.DrawLineEx(p, pts[(j+1)%len(pts)], outlineThickness, outlineColor)
		}
	}
}

// DrawDebug draws contact points as dots and rays as lines.
func DrawDebug(cam view.Camera, prims []physics.DebugPrimitive) {
	for _, p := range prims {
		origin := cam.ToScreen(p.Origin)
		switch p.Kind {
		case physics.PrimitivePoint:
			rl.DrawCircleV(origin, pointRadius, p.Color)
		case physics.PrimitiveRay:
			rl.DrawLineEx(origin, cam.ToScreen(rl.Vector2Add(p.Origin, p.Vector)), rayThickness, p.Color)
		}
	}
}

// ScreenOutline returns the polygon of b in screen space, wound counterclockwise as seen
// on screen, which is the order raylib fills triangles in.
func ScreenOutline(cam view.Camera, b *physics.Body) []rl.Vector2 {
	pts := make([]rl.Vector2, len(b.Vertices))
	for i, v := range b.Vertices {
		pts[i] = cam.ToScreen(rl.Vector2Add(b.Position, v))
	}
	// y grows downwards on screen, so a visually counterclockwise loop has a negative
	// shoelace sum.
	if shoelace(pts) > 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return pts
}

func shoelace(pts []rl.Vector2) float32 {
	var sum float32
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}
