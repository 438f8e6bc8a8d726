package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"rigid2d/internal/shape"
)

// DefaultContactTolerance is the squared-distance tolerance under which two candidate
// contacts of a polygon pair count as simultaneous.
const DefaultContactTolerance = 5e-4

// Manifold holds the world-space contact points of an overlapping pair.
type Manifold struct {
	Points [2]rl.Vector2
	Count  int
}

// Contacts returns the contact manifold of a and b, which are assumed to overlap.
// tolerance decides when a second polygon contact is as close as the first.
func Contacts(a, b *Body, tolerance float32) Manifold {
	switch ka := a.Kind.(type) {
	case shape.Circle:
		switch b.Kind.(type) {
		case shape.Circle:
			dir := rl.Vector2Normalize(rl.Vector2Subtract(b.Position, a.Position))
			return Manifold{Points: [2]rl.Vector2{rl.Vector2Add(a.Position, rl.Vector2Scale(dir, ka.Radius))}, Count: 1}
		case shape.Rectangle, shape.RegularPolygon:
			return polygonCircleContact(b, a.Position)
		}
	case shape.Rectangle, shape.RegularPolygon:
		switch b.Kind.(type) {
		case shape.Circle:
			return polygonCircleContact(a, b.Position)
		case shape.Rectangle, shape.RegularPolygon:
			return polygonPolygonContacts(a, b, tolerance)
		}
	}
	return Manifold{}
}

func polygonCircleContact(p *Body, center rl.Vector2) Manifold {
	verts := worldVertices(p)
	var best rl.Vector2
	bestDist := float32(math32.MaxFloat32)
	for i := range verts {
		cp, d := closestOnSegment(center, verts[i], verts[(i+1)%len(verts)])
		if d < bestDist {
			best, bestDist = cp, d
		}
	}
	return Manifold{Points: [2]rl.Vector2{best}, Count: 1}
}

func polygonPolygonContacts(a, b *Body, tolerance float32) Manifold {
	va, vb := worldVertices(a), worldVertices(b)
	var m Manifold
	minDist := float32(math32.MaxFloat32)

	scan := func(points, edges []rl.Vector2) {
		for _, p := range points {
			for i := range edges {
				cp, d := closestOnSegment(p, edges[i], edges[(i+1)%len(edges)])
				switch {
				case d < minDist-tolerance:
					minDist = d
					m.Points[0] = cp
					m.Count = 1
				case m.Count > 0 && math32.Abs(d-minDist) <= tolerance:
					if rl.Vector2DistanceSqr(cp, m.Points[0]) <= tolerance {
						continue
					}
					// The closer of two tied candidates is the first contact.
					if d < minDist {
						m.Points[1] = m.Points[0]
						m.Points[0] = cp
						minDist = d
					} else {
						m.Points[1] = cp
					}
					m.Count = 2
				}
			}
		}
	}
	scan(va, vb)
	scan(vb, va)
	return m
}
