package physics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PrimitiveKind says how a renderer should draw a DebugPrimitive.
type PrimitiveKind int

const (
	// PrimitivePoint is a marker at Origin.
	PrimitivePoint PrimitiveKind = iota
	// PrimitiveRay is a segment from Origin to Origin+Vector.
	PrimitiveRay
)

// DebugPrimitive is a piece of debug geometry produced by a tick for an external renderer.
type DebugPrimitive struct {
	Kind   PrimitiveKind
	Origin rl.Vector2
	Vector rl.Vector2
	Color  color.RGBA
}

var (
	contactColor = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	normalColor  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	axisXColor   = color.RGBA{G: 200, A: 255}
	axisYColor   = color.RGBA{R: 220, A: 255}
)

// normalRayLength is the drawn length of a contact normal, in world units.
const normalRayLength = 20

func (w *World) debugContacts(res Result) {
	for i := range res.Manifold.Count {
		p := res.Manifold.Points[i]
		w.debug = append(w.debug,
			DebugPrimitive{Kind: PrimitivePoint, Origin: p, Color: contactColor},
			DebugPrimitive{Kind: PrimitiveRay, Origin: p, Vector: rl.Vector2Scale(res.Collision.Normal, normalRayLength), Color: normalColor},
		)
	}
}

// debugAxes draws the position vector of b as its x and y components.
func (w *World) debugAxes(b *Body) {
	x := rl.NewVector2(b.Position.X, 0)
	w.debug = append(w.debug,
		DebugPrimitive{Kind: PrimitiveRay, Vector: x, Color: axisXColor},
		DebugPrimitive{Kind: PrimitiveRay, Origin: x, Vector: rl.NewVector2(0, b.Position.Y), Color: axisYColor},
	)
}
