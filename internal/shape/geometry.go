package shape

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Area returns the surface of k. Bodies use it as their mass (unit density).
func Area(k Kind) float32 {
	switch k := k.(type) {
	case Circle:
		return math32.Pi * k.Radius * k.Radius
	case Rectangle:
		return k.Width * k.Height
	case RegularPolygon:
		n := float32(k.Sides)
		return 0.5 * n * k.Radius * k.Radius * math32.Sin(2*math32.Pi/n)
	}
	return 0
}

// LocalVertices returns the vertices of k around its centroid, unrotated.
// Rectangles wind top-left, top-right, bottom-right, bottom-left. Polygon vertex i sits at
// angle pi/2 + 2*pi*i/n, so the first vertex points straight up. Circles have none.
func LocalVertices(k Kind) []rl.Vector2 {
	switch k := k.(type) {
	case Rectangle:
		hw, hh := k.Width/2, k.Height/2
		return []rl.Vector2{
			rl.NewVector2(-hw, hh),
			rl.NewVector2(hw, hh),
			rl.NewVector2(hw, -hh),
			rl.NewVector2(-hw, -hh),
		}
	case RegularPolygon:
		out := make([]rl.Vector2, k.Sides)
		step := 2 * math32.Pi / float32(k.Sides)
		for i := range out {
			sin, cos := math32.Sincos(math32.Pi/2 + float32(i)*step)
			out[i] = rl.NewVector2(k.Radius*cos, k.Radius*sin)
		}
		return out
	}
	return nil
}

// Extents returns the width and height of the local bounding box of k
// (max minus min of the local vertices on each axis; 2r by 2r for circles).
func Extents(k Kind) rl.Vector2 {
	if c, ok := k.(Circle); ok {
		return rl.NewVector2(2*c.Radius, 2*c.Radius)
	}
	verts := LocalVertices(k)
	if len(verts) == 0 {
		return rl.Vector2{}
	}
	minV, maxV := verts[0], verts[0]
	for _, v := range verts[1:] {
		minV.X = math32.Min(minV.X, v.X)
		minV.Y = math32.Min(minV.Y, v.Y)
		maxV.X = math32.Max(maxV.X, v.X)
		maxV.Y = math32.Max(maxV.Y, v.Y)
	}
	return rl.NewVector2(maxV.X-minV.X, maxV.Y-minV.Y)
}

// Inertia returns the moment of inertia of k about its centroid for the given mass.
//
// Regular polygons use the rectangle formula over their bounding Extents, which
// overestimates the exact polygon inertia.
func Inertia(k Kind, mass float32) float32 {
	switch k := k.(type) {
	case Circle:
		return 0.5 * mass * k.Radius * k.Radius
	case Rectangle:
		return mass * (k.Width*k.Width + k.Height*k.Height) / 12
	case RegularPolygon:
		e := Extents(k)
		return mass * (e.X*e.X + e.Y*e.Y) / 12
	}
	return 0
}

// Radius returns the circle radius of k and whether k is a circle.
func Radius(k Kind) (float32, bool) {
	c, ok := k.(Circle)
	return c.Radius, ok
}
