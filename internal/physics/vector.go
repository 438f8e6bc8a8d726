package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// perp returns v rotated by +90 degrees.
func perp(v rl.Vector2) rl.Vector2 {
	return rl.NewVector2(-v.Y, v.X)
}

// cross is the 2D cross product (perp dot) a.x*b.y - a.y*b.x.
func cross(a, b rl.Vector2) float32 {
	return a.X*b.Y - a.Y*b.X
}

// closestOnSegment projects p onto segment ab, clamped to the segment, and returns the
// projected point with its squared distance to p.
func closestOnSegment(p, a, b rl.Vector2) (rl.Vector2, float32) {
	ab := rl.Vector2Subtract(b, a)
	ap := rl.Vector2Subtract(p, a)
	lenSq := rl.Vector2LengthSqr(ab)
	var cp rl.Vector2
	switch t := rl.Vector2DotProduct(ap, ab) / lenSq; {
	case lenSq == 0, t <= 0:
		cp = a
	case t >= 1:
		cp = b
	default:
		cp = rl.Vector2Add(a, rl.Vector2Scale(ab, t))
	}
	return cp, rl.Vector2DistanceSqr(p, cp)
}

// worldVertices returns the body's vertices translated to world space.
func worldVertices(b *Body) []rl.Vector2 {
	out := make([]rl.Vector2, len(b.Vertices))
	for i, v := range b.Vertices {
		out[i] = rl.Vector2Add(v, b.Position)
	}
	return out
}
