package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rigid2d/internal/shape"
)

func TestContactsCircleCircle(t *testing.T) {
	a := newBody(t, shape.Circle{Radius: 10}, 0, 0, false)
	b := newBody(t, shape.Circle{Radius: 10}, 15, 0, false)

	m := Contacts(a, b, DefaultContactTolerance)
	require.Equal(t, 1, m.Count)
	assertVec(t, rl.NewVector2(10, 0), m.Points[0], eps)

	m = Contacts(b, a, DefaultContactTolerance)
	assertVec(t, rl.NewVector2(5, 0), m.Points[0], eps)
}

func TestContactsPolygonCircle(t *testing.T) {
	box := newBody(t, shape.Rectangle{Width: 20, Height: 20}, 0, 0, false)
	ball := newBody(t, shape.Circle{Radius: 5}, 12, 3, false)

	for _, m := range []Manifold{
		Contacts(box, ball, DefaultContactTolerance),
		Contacts(ball, box, DefaultContactTolerance),
	} {
		require.Equal(t, 1, m.Count)
		assertVec(t, rl.NewVector2(10, 3), m.Points[0], eps)
	}

	// Near a corner the closest point is the corner itself.
	ball.Position = rl.NewVector2(13, 13)
	m := Contacts(box, ball, DefaultContactTolerance)
	assertVec(t, rl.NewVector2(10, 10), m.Points[0], eps)
}

func TestContactsBoxRestingOnBoxHasTwoPoints(t *testing.T) {
	ground := newBody(t, shape.Rectangle{Width: 100, Height: 100}, 0, 0, true)
	box := newBody(t, shape.Rectangle{Width: 10, Height: 10}, 0, 54.9, false)

	m := Contacts(ground, box, DefaultContactTolerance)
	require.Equal(t, 2, m.Count)
	lo, hi := min(m.Points[0].X, m.Points[1].X), max(m.Points[0].X, m.Points[1].X)
	assert.InDelta(t, -5, lo, eps)
	assert.InDelta(t, 5, hi, eps)
	assert.InDelta(t, 50, m.Points[0].Y, eps)
	assert.InDelta(t, 50, m.Points[1].Y, eps)
}

func TestContactsCornerOnFaceHasOnePoint(t *testing.T) {
	ground := newBody(t, shape.Rectangle{Width: 100, Height: 100}, 0, 0, true)
	// A diamond touching the ground with a single vertex.
	tip := newBody(t, shape.RegularPolygon{Radius: 10, Sides: 4}, 3, 59.5, false)

	m := Contacts(ground, tip, DefaultContactTolerance)
	require.Equal(t, 1, m.Count)
	assertVec(t, rl.NewVector2(3, 50), m.Points[0], eps)
}

func TestContactsToleranceMergesNearTies(t *testing.T) {
	ground := newBody(t, shape.Rectangle{Width: 100, Height: 100}, 0, 0, true)
	// Tilted by a hair: the two bottom corners are almost, but not exactly, equally deep.
	box := newBody(t, shape.Rectangle{Width: 10, Height: 10}, 0, 54.9, false, WithAngle(1e-5))

	assert.Equal(t, 2, Contacts(ground, box, DefaultContactTolerance).Count)
	assert.Equal(t, 1, Contacts(ground, box, 1e-12).Count)
}

func TestContactsCloserTieComesFirst(t *testing.T) {
	ground := newBody(t, shape.Rectangle{Width: 100, Height: 100}, 0, 0, true)
	// The right corner sits slightly shallower than the left, within the tolerance.
	box := newBody(t, shape.Rectangle{Width: 10, Height: 10}, 0, 54.9, false, WithAngle(2e-4))

	m := Contacts(ground, box, DefaultContactTolerance)
	require.Equal(t, 2, m.Count)
	assert.InDelta(t, 5, m.Points[0].X, 1e-2)
	assert.InDelta(t, -5, m.Points[1].X, 1e-2)
}
