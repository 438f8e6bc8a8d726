package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min rl.Vector2
	Max rl.Vector2
}

// Overlaps reports whether a and o overlap on both axes. Boxes that only touch do not overlap.
func (a AABB) Overlaps(o AABB) bool {
	if a.Max.X <= o.Min.X || o.Max.X <= a.Min.X {
		return false
	}
	if a.Max.Y <= o.Min.Y || o.Max.Y <= a.Min.Y {
		return false
	}
	return true
}

// UpdateAABB recomputes the bounding box from the current vertices and position.
func (b *Body) UpdateAABB() {
	if r, ok := b.Radius(); ok {
		b.AABB = AABB{
			Min: rl.NewVector2(b.Position.X-r, b.Position.Y-r),
			Max: rl.NewVector2(b.Position.X+r, b.Position.Y+r),
		}
		return
	}
	box := AABB{
		Min: rl.NewVector2(math32.MaxFloat32, math32.MaxFloat32),
		Max: rl.NewVector2(-math32.MaxFloat32, -math32.MaxFloat32),
	}
	for _, v := range b.Vertices {
		x, y := v.X+b.Position.X, v.Y+b.Position.Y
		box.Min.X = math32.Min(box.Min.X, x)
		box.Min.Y = math32.Min(box.Min.Y, y)
		box.Max.X = math32.Max(box.Max.X, x)
		box.Max.Y = math32.Max(box.Max.Y, y)
	}
	b.AABB = box
}

// BroadPhase refreshes both bounding boxes and reports whether the pair needs a narrow
// phase test. Pairs of static bodies are always rejected.
func BroadPhase(a, b *Body) bool {
	if a.Static && b.Static {
		return false
	}
	a.UpdateAABB()
	b.UpdateAABB()
	return a.AABB.Overlaps(b.AABB)
}
