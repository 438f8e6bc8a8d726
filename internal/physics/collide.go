package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"rigid2d/internal/shape"
)

// Collision is the result of a narrow phase test. Normal is a unit vector pointing from
// the first body toward the second and Depth is the penetration along it.
// The zero value means "no collision".
type Collision struct {
	Normal rl.Vector2
	Depth  float32
}

// Colliding reports whether the collision carries a penetration.
func (c Collision) Colliding() bool {
	return c.Depth > 0
}

// Collide runs the separating axis test for a and b.
//
// When several axes share the minimum depth the first one tested wins: edges of a
// before edges of b. The reported normal may therefore differ between Collide(a, b)
// and Collide(b, a) for symmetric overlaps, although it is always oriented from the
// first argument toward the second.
func Collide(a, b *Body) Collision {
	switch ka := a.Kind.(type) {
	case shape.Circle:
		switch kb := b.Kind.(type) {
		case shape.Circle:
			return circleCircle(a.Position, ka.Radius, b.Position, kb.Radius)
		case shape.Rectangle, shape.RegularPolygon:
			// polygonCircle orients from the polygon (b) toward the circle (a); flip it.
			c := polygonCircle(b, a.Position, ka.Radius)
			c.Normal = rl.Vector2Negate(c.Normal)
			return c
		}
	case shape.Rectangle, shape.RegularPolygon:
		switch kb := b.Kind.(type) {
		case shape.Circle:
			return polygonCircle(a, b.Position, kb.Radius)
		case shape.Rectangle, shape.RegularPolygon:
			return polygonPolygon(a, b)
		}
	}
	return Collision{}
}

func circleCircle(ca rl.Vector2, ra float32, cb rl.Vector2, rb float32) Collision {
	distance := rl.Vector2Distance(ca, cb)
	radii := ra + rb
	if distance >= radii {
		return Collision{}
	}
	normal := rl.Vector2Normalize(rl.Vector2Subtract(cb, ca))
	if normal.X == 0 && normal.Y == 0 {
		// Concentric: there is no meaningful direction to push along.
		return Collision{}
	}
	return Collision{Normal: normal, Depth: radii - distance}
}

// axisSearch tracks the axis of least penetration over a SAT scan.
type axisSearch struct {
	normal rl.Vector2
	depth  float32
}

func newAxisSearch() axisSearch {
	return axisSearch{depth: math32.MaxFloat32}
}

// test projects both intervals on axis and reports false on separation.
func (s *axisSearch) test(axis rl.Vector2, minA, maxA, minB, maxB float32) bool {
	if minA >= maxB || minB >= maxA {
		return false
	}
	if d := math32.Min(maxB-minA, maxA-minB); d < s.depth {
		s.depth = d
		s.normal = axis
	}
	return true
}

// finish orients the best axis from ca toward cb.
func (s *axisSearch) finish(ca, cb rl.Vector2) Collision {
	normal := rl.Vector2Normalize(s.normal)
	if rl.Vector2DotProduct(rl.Vector2Subtract(cb, ca), normal) < 0 {
		normal = rl.Vector2Negate(normal)
	}
	return Collision{Normal: normal, Depth: s.depth}
}

func polygonPolygon(a, b *Body) Collision {
	va, vb := worldVertices(a), worldVertices(b)
	s := newAxisSearch()
	for _, verts := range [][]rl.Vector2{va, vb} {
		for i := range verts {
			axis := edgeAxis(verts, i)
			if axis.X == 0 && axis.Y == 0 {
				continue
			}
			minA, maxA := project(va, axis)
			minB, maxB := project(vb, axis)
			if !s.test(axis, minA, maxA, minB, maxB) {
				return Collision{}
			}
		}
	}
	if s.depth == math32.MaxFloat32 {
		return Collision{}
	}
	return s.finish(a.Position, b.Position)
}

// polygonCircle tests polygon p against a circle; the normal points from p toward center.
func polygonCircle(p *Body, center rl.Vector2, radius float32) Collision {
	verts := worldVertices(p)
	s := newAxisSearch()
	for i := range verts {
		axis := edgeAxis(verts, i)
		if axis.X == 0 && axis.Y == 0 {
			continue
		}
		minA, maxA := project(verts, axis)
		minB, maxB := projectCircle(center, radius, axis)
		if !s.test(axis, minA, maxA, minB, maxB) {
			return Collision{}
		}
	}

	// Edge normals miss separation near a corner: also test the axis from the
	// closest vertex to the circle center.
	closest := verts[closestVertex(verts, center)]
	if axis := rl.Vector2Normalize(rl.Vector2Subtract(center, closest)); axis.X != 0 || axis.Y != 0 {
		minA, maxA := project(verts, axis)
		minB, maxB := projectCircle(center, radius, axis)
		if !s.test(axis, minA, maxA, minB, maxB) {
			return Collision{}
		}
	}
	if s.depth == math32.MaxFloat32 {
		return Collision{}
	}
	return s.finish(p.Position, center)
}

// edgeAxis returns the unit normal of edge i of verts.
func edgeAxis(verts []rl.Vector2, i int) rl.Vector2 {
	edge := rl.Vector2Subtract(verts[(i+1)%len(verts)], verts[i])
	return rl.Vector2Normalize(perp(edge))
}

// project returns the interval covered by verts on a unit axis.
func project(verts []rl.Vector2, axis rl.Vector2) (lo, hi float32) {
	lo, hi = math32.MaxFloat32, -math32.MaxFloat32
	for _, v := range verts {
		p := rl.Vector2DotProduct(v, axis)
		lo = math32.Min(lo, p)
		hi = math32.Max(hi, p)
	}
	return lo, hi
}

func projectCircle(center rl.Vector2, radius float32, axis rl.Vector2) (lo, hi float32) {
	c := rl.Vector2DotProduct(center, axis)
	return c - radius, c + radius
}

func closestVertex(verts []rl.Vector2, p rl.Vector2) int {
	best, bestDist := 0, float32(math32.MaxFloat32)
	for i, v := range verts {
		if d := rl.Vector2DistanceSqr(v, p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
