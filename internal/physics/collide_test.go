package physics

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rigid2d/internal/shape"
)

const eps = 1e-3

func newBody(t *testing.T, kind shape.Kind, x, y float32, static bool, opts ...BodyOption) *Body {
	t.Helper()
	b, err := NewBody(kind, rl.NewVector2(x, y), static, false, opts...)
	require.NoError(t, err)
	return b
}

func assertVec(t *testing.T, want, got rl.Vector2, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, delta, "y of %v", got)
}

func TestCircleCircleScenario(t *testing.T) {
	a := newBody(t, shape.Circle{Radius: 10}, 0, 0, false)
	b := newBody(t, shape.Circle{Radius: 10}, 15, 0, false)

	c := Collide(a, b)
	require.True(t, c.Colliding())
	assert.InDelta(t, 5, c.Depth, eps)
	assertVec(t, rl.NewVector2(1, 0), c.Normal, eps)

	c = Collide(b, a)
	assert.InDelta(t, 5, c.Depth, eps)
	assertVec(t, rl.NewVector2(-1, 0), c.Normal, eps)
}

func TestCircleCircleDepthProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 500 {
		ra := 1 + rng.Float32()*20
		rb := 1 + rng.Float32()*20
		angle := rng.Float32() * 2 * math32.Pi
		d := 0.05 + rng.Float32()*(ra+rb-0.1)
		sin, cos := math32.Sincos(angle)
		a := newBody(t, shape.Circle{Radius: ra}, 3, -2, false)
		b := newBody(t, shape.Circle{Radius: rb}, 3+d*cos, -2+d*sin, false)

		c := Collide(a, b)
		require.True(t, c.Colliding())
		assert.InDelta(t, 1, rl.Vector2Length(c.Normal), eps)
		assert.InDelta(t, ra+rb-rl.Vector2Distance(a.Position, b.Position), c.Depth, eps)
	}
}

func TestCircleCircleSeparatedAndTouching(t *testing.T) {
	a := newBody(t, shape.Circle{Radius: 10}, 0, 0, false)
	b := newBody(t, shape.Circle{Radius: 10}, 20, 0, false)
	assert.Equal(t, Collision{}, Collide(a, b))

	b.Position = rl.NewVector2(35, 0)
	assert.Equal(t, Collision{}, Collide(a, b))
}

func TestConcentricCirclesAreNoCollision(t *testing.T) {
	a := newBody(t, shape.Circle{Radius: 10}, 4, 4, false)
	b := newBody(t, shape.Circle{Radius: 3}, 4, 4, false)
	c := Collide(a, b)
	assert.False(t, c.Colliding())
	assert.Equal(t, rl.Vector2{}, c.Normal)
}

func TestRectangleRectangle(t *testing.T) {
	a := newBody(t, shape.Rectangle{Width: 20, Height: 20}, 0, 0, false)
	b := newBody(t, shape.Rectangle{Width: 20, Height: 20}, 18, 5, false)

	c := Collide(a, b)
	require.True(t, c.Colliding())
	assert.InDelta(t, 2, c.Depth, eps)
	assertVec(t, rl.NewVector2(1, 0), c.Normal, eps)

	b.Position = rl.NewVector2(25, 0)
	assert.False(t, Collide(a, b).Colliding())
}

func TestPolygonPolygonSeparatedOnSecondShapeAxis(t *testing.T) {
	// A diamond next to a square corner: only the diamond's own edges separate them.
	a := newBody(t, shape.Rectangle{Width: 10, Height: 10}, 0, 0, false)
	b := newBody(t, shape.RegularPolygon{Radius: 5, Sides: 4}, 9.5, 9.5, false)
	a.UpdateAABB()
	b.UpdateAABB()
	require.True(t, a.AABB.Overlaps(b.AABB))
	assert.False(t, Collide(a, b).Colliding())
}

func TestSATNormalAntisymmetry(t *testing.T) {
	kinds := []shape.Kind{
		shape.Rectangle{Width: 30, Height: 12},
		shape.Rectangle{Width: 8, Height: 25},
		shape.RegularPolygon{Radius: 10, Sides: 3},
		shape.RegularPolygon{Radius: 14, Sides: 5},
		shape.RegularPolygon{Radius: 9, Sides: 8},
	}
	rng := rand.New(rand.NewSource(7))
	tested := 0
	for range 400 {
		ka := kinds[rng.Intn(len(kinds))]
		kb := kinds[rng.Intn(len(kinds))]
		a := newBody(t, ka, 0, 0, false, WithAngle(rng.Float32()*2*math32.Pi))
		b := newBody(t, kb, rng.Float32()*40-20, rng.Float32()*40-20, false,
			WithAngle(rng.Float32()*2*math32.Pi))

		ab, ba := Collide(a, b), Collide(b, a)
		require.Equal(t, ab.Colliding(), ba.Colliding())
		if !ab.Colliding() {
			continue
		}
		tested++
		assert.InDelta(t, 1, rl.Vector2Length(ab.Normal), eps)
		assert.InDelta(t, ab.Depth, ba.Depth, eps)
		assertVec(t, rl.Vector2Negate(ab.Normal), ba.Normal, eps)
		dir := rl.Vector2Subtract(b.Position, a.Position)
		assert.GreaterOrEqual(t, rl.Vector2DotProduct(dir, ab.Normal), float32(0))
	}
	assert.Greater(t, tested, 50)
}

func TestSATTieKeepsFirstAxis(t *testing.T) {
	// Equal overlap on x and y: the first edge of the first shape (its top edge) wins,
	// whichever order the shapes are given in.
	a := newBody(t, shape.Rectangle{Width: 10, Height: 10}, 0, 0, false)
	b := newBody(t, shape.Rectangle{Width: 10, Height: 10}, 8, 8, false)

	ab, ba := Collide(a, b), Collide(b, a)
	assert.InDelta(t, 2, ab.Depth, eps)
	assert.InDelta(t, 2, ba.Depth, eps)
	assertVec(t, rl.NewVector2(0, 1), ab.Normal, eps)
	assertVec(t, rl.NewVector2(0, -1), ba.Normal, eps)
}

func TestPolygonCircle(t *testing.T) {
	box := newBody(t, shape.Rectangle{Width: 20, Height: 20}, 0, 0, false)
	ball := newBody(t, shape.Circle{Radius: 5}, 12, 0, false)

	c := Collide(box, ball)
	require.True(t, c.Colliding())
	assert.InDelta(t, 3, c.Depth, eps)
	assertVec(t, rl.NewVector2(1, 0), c.Normal, eps)

	c = Collide(ball, box)
	assert.InDelta(t, 3, c.Depth, eps)
	assertVec(t, rl.NewVector2(-1, 0), c.Normal, eps)
}

func TestPolygonCircleCorner(t *testing.T) {
	box := newBody(t, shape.Rectangle{Width: 20, Height: 20}, 0, 0, false)
	ball := newBody(t, shape.Circle{Radius: 5}, 13, 13, false)

	c := Collide(box, ball)
	require.True(t, c.Colliding())
	assert.InDelta(t, 5-math32.Sqrt(18), c.Depth, eps)
	d := math32.Sqrt(0.5)
	assertVec(t, rl.NewVector2(d, d), c.Normal, eps)

	// Past the corner the edge axes still overlap; only the vertex axis separates.
	ball.Position = rl.NewVector2(14, 14)
	assert.False(t, Collide(box, ball).Colliding())
	assert.False(t, Collide(ball, box).Colliding())
}

func TestPolygonCircleAntisymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 200 {
		poly := newBody(t, shape.RegularPolygon{Radius: 12, Sides: 3 + rng.Intn(6)}, 0, 0, false,
			WithAngle(rng.Float32()*2*math32.Pi))
		ball := newBody(t, shape.Circle{Radius: 2 + rng.Float32()*8}, rng.Float32()*30-15, rng.Float32()*30-15, false)

		pc, cp := Collide(poly, ball), Collide(ball, poly)
		require.Equal(t, pc.Colliding(), cp.Colliding())
		if pc.Colliding() {
			assertVec(t, rl.Vector2Negate(pc.Normal), cp.Normal, eps)
			assert.InDelta(t, pc.Depth, cp.Depth, eps)
		}
	}
}
