package shape

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrInvalidShapeParameters is returned when a shape is built with a non-positive or
// non-finite dimension, or a regular polygon with fewer than three sides.
var ErrInvalidShapeParameters = errors.New("invalid shape parameters")

// Kind is the closed set of convex shapes a body can have: Circle, Rectangle or
// RegularPolygon. Every routine that depends on the shape switches over these three
// types; no other implementation exists outside this package.
type Kind interface {
	isKind()
}

// Circle is a disc of the given radius centered on the body position.
type Circle struct {
	Radius float32
}

// Rectangle is an axis-aligned (in its local frame) box centered on the body position.
type Rectangle struct {
	Width  float32
	Height float32
}

// RegularPolygon has Sides vertices evenly spaced on a circle of radius Radius.
type RegularPolygon struct {
	Radius float32
	Sides  int
}

func (Circle) isKind()         {}
func (Rectangle) isKind()      {}
func (RegularPolygon) isKind() {}

// NewCircle returns a validated circle.
func NewCircle(radius float32) (Circle, error) {
	c := Circle{Radius: radius}
	return c, Validate(c)
}

// NewRectangle returns a validated rectangle.
func NewRectangle(width, height float32) (Rectangle, error) {
	r := Rectangle{Width: width, Height: height}
	return r, Validate(r)
}

// NewRegularPolygon returns a validated regular polygon.
func NewRegularPolygon(radius float32, sides int) (RegularPolygon, error) {
	p := RegularPolygon{Radius: radius, Sides: sides}
	return p, Validate(p)
}

// Validate reports whether k can be simulated. Errors wrap ErrInvalidShapeParameters.
func Validate(k Kind) error {
	switch k := k.(type) {
	case Circle:
		if !positive(k.Radius) {
			return fmt.Errorf("circle radius %v: %w", k.Radius, ErrInvalidShapeParameters)
		}
	case Rectangle:
		if !positive(k.Width) || !positive(k.Height) {
			return fmt.Errorf("rectangle %vx%v: %w", k.Width, k.Height, ErrInvalidShapeParameters)
		}
	case RegularPolygon:
		if !positive(k.Radius) {
			return fmt.Errorf("polygon radius %v: %w", k.Radius, ErrInvalidShapeParameters)
		}
		if k.Sides < 3 {
			return fmt.Errorf("polygon with %d sides: %w", k.Sides, ErrInvalidShapeParameters)
		}
	case nil:
		return fmt.Errorf("missing shape: %w", ErrInvalidShapeParameters)
	default:
		return fmt.Errorf("unknown shape %T: %w", k, ErrInvalidShapeParameters)
	}
	return nil
}

func positive(v float32) bool {
	return v > 0 && !math32.IsInf(v, 1) && !math32.IsNaN(v)
}

// Name returns the lower-case name used in scene files and logs.
func Name(k Kind) string {
	switch k.(type) {
	case Circle:
		return "circle"
	case Rectangle:
		return "rectangle"
	case RegularPolygon:
		return "polygon"
	}
	return "unknown"
}
