package shape

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-3

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		ok   bool
	}{
		{"circle", Circle{Radius: 10}, true},
		{"zero radius", Circle{Radius: 0}, false},
		{"negative radius", Circle{Radius: -1}, false},
		{"nan radius", Circle{Radius: math32.NaN()}, false},
		{"rectangle", Rectangle{Width: 2, Height: 3}, true},
		{"flat rectangle", Rectangle{Width: 2, Height: 0}, false},
		{"infinite rectangle", Rectangle{Width: math32.Inf(1), Height: 1}, false},
		{"triangle", RegularPolygon{Radius: 5, Sides: 3}, true},
		{"two sides", RegularPolygon{Radius: 5, Sides: 2}, false},
		{"polygon zero radius", RegularPolygon{Radius: 0, Sides: 6}, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.kind)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidShapeParameters)
			}
		})
	}
}

func TestConstructorsReject(t *testing.T) {
	_, err := NewCircle(-3)
	assert.ErrorIs(t, err, ErrInvalidShapeParameters)
	_, err = NewRectangle(1, -1)
	assert.ErrorIs(t, err, ErrInvalidShapeParameters)
	_, err = NewRegularPolygon(4, 1)
	assert.ErrorIs(t, err, ErrInvalidShapeParameters)

	p, err := NewRegularPolygon(4, 5)
	require.NoError(t, err)
	assert.Equal(t, RegularPolygon{Radius: 4, Sides: 5}, p)
}

func TestArea(t *testing.T) {
	assert.InDelta(t, math32.Pi*100, Area(Circle{Radius: 10}), tol)
	assert.InDelta(t, 6, Area(Rectangle{Width: 2, Height: 3}), tol)
	// A square inscribed in radius r has side r*sqrt(2), area 2r^2.
	assert.InDelta(t, 2*25, Area(RegularPolygon{Radius: 5, Sides: 4}), tol)
	// Many sides approach the circle.
	assert.InDelta(t, math32.Pi*25, Area(RegularPolygon{Radius: 5, Sides: 512}), 0.01)
}

func TestLocalVertices(t *testing.T) {
	assert.Empty(t, LocalVertices(Circle{Radius: 1}))

	rect := LocalVertices(Rectangle{Width: 4, Height: 2})
	require.Len(t, rect, 4)
	assert.Equal(t, float32(-2), rect[0].X)
	assert.Equal(t, float32(1), rect[0].Y)
	assert.Equal(t, float32(2), rect[2].X)
	assert.Equal(t, float32(-1), rect[2].Y)

	hex := LocalVertices(RegularPolygon{Radius: 3, Sides: 6})
	require.Len(t, hex, 6)
	assert.InDelta(t, 0, hex[0].X, tol)
	assert.InDelta(t, 3, hex[0].Y, tol)
	for _, v := range hex {
		assert.InDelta(t, 3, math32.Sqrt(v.X*v.X+v.Y*v.Y), tol)
	}
}

func TestExtents(t *testing.T) {
	e := Extents(Rectangle{Width: 4, Height: 2})
	assert.InDelta(t, 4, e.X, tol)
	assert.InDelta(t, 2, e.Y, tol)

	e = Extents(Circle{Radius: 3})
	assert.InDelta(t, 6, e.X, tol)

	// Triangle pointing up: height is r + r/2, width is r*sqrt(3).
	e = Extents(RegularPolygon{Radius: 2, Sides: 3})
	assert.InDelta(t, 2*math32.Sqrt(3), e.X, tol)
	assert.InDelta(t, 3, e.Y, tol)
}

func TestInertia(t *testing.T) {
	assert.InDelta(t, 0.5*2*9, Inertia(Circle{Radius: 3}, 2), tol)
	assert.InDelta(t, 12.0*(16+4)/12, Inertia(Rectangle{Width: 4, Height: 2}, 12), tol)

	// Polygons use the bounding-box approximation, so a square polygon matches the
	// rectangle of its extents rather than the exact value.
	sq := RegularPolygon{Radius: 2, Sides: 4}
	e := Extents(sq)
	want := Inertia(Rectangle{Width: e.X, Height: e.Y}, 5)
	assert.InDelta(t, want, Inertia(sq, 5), tol)
}

func TestRadius(t *testing.T) {
	r, ok := Radius(Circle{Radius: 7})
	assert.True(t, ok)
	assert.Equal(t, float32(7), r)
	_, ok = Radius(Rectangle{Width: 1, Height: 1})
	assert.False(t, ok)
}
