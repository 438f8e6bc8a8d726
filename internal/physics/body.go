package physics

import (
	"image/color"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"rigid2d/internal/shape"
)

// Default material values for new bodies.
const (
	DefaultRestitution     = 0.05
	DefaultStaticFriction  = 0.6
	DefaultDynamicFriction = 0.4
)

// Body is a 2D rigid body. Static bodies have infinite mass: InvMass and InvInertia are
// exactly zero and the integrator and solver never move them.
//
// Vertices holds the polygon outline relative to Position, already rotated by Angle.
// It is regenerated from Local whenever the orientation changes, so rounding never
// accumulates across ticks. Circles have no vertices.
type Body struct {
	Kind shape.Kind

	Position     rl.Vector2
	Velocity     rl.Vector2
	Acceleration rl.Vector2
	// Force is accumulated between ticks and reset by Integrate.
	Force rl.Vector2

	// Rotation is the rotation to apply on the next tick, in radians. It is consumed
	// and zeroed every tick.
	Rotation        float32
	AngularVelocity float32
	Angle           float32

	Mass       float32
	InvMass    float32
	Inertia    float32
	InvInertia float32

	Restitution     float32
	StaticFriction  float32
	DynamicFriction float32

	Static bool
	// Mobile bodies accept velocity commands from input (see World.Drive).
	Mobile bool
	// ShowAxes emits debug rays from the body to both axes every tick.
	ShowAxes bool

	Local    []rl.Vector2
	Vertices []rl.Vector2
	AABB     AABB
	Area     float32
	Extents  rl.Vector2

	Color color.RGBA
}

// BodyOption customizes a body built by NewBody.
type BodyOption func(*Body)

// WithVelocity sets the initial linear velocity.
func WithVelocity(v rl.Vector2) BodyOption {
	return func(b *Body) { b.Velocity = v }
}

// WithAngularVelocity sets the initial angular velocity in radians per second.
func WithAngularVelocity(w float32) BodyOption {
	return func(b *Body) { b.AngularVelocity = w }
}

// WithAngle sets the initial orientation in radians.
func WithAngle(angle float32) BodyOption {
	return func(b *Body) { b.SetAngle(angle) }
}

// WithRotation queues a rotation of delta radians for the first tick.
func WithRotation(delta float32) BodyOption {
	return func(b *Body) { b.Rotation = delta }
}

// WithRestitution overrides the default restitution, clamped to [0, 1].
func WithRestitution(e float32) BodyOption {
	return func(b *Body) { b.Restitution = math32.Min(math32.Max(e, 0), 1) }
}

// WithFriction overrides the default static and dynamic friction. Negative
// coefficients are clamped to zero.
func WithFriction(static, dynamic float32) BodyOption {
	return func(b *Body) {
		b.StaticFriction = math32.Max(static, 0)
		b.DynamicFriction = math32.Max(dynamic, 0)
	}
}

// WithColor sets the color renderers use for the body.
func WithColor(c color.RGBA) BodyOption {
	return func(b *Body) { b.Color = c }
}

// WithAxes turns on per-body axis rays in the debug stream.
func WithAxes() BodyOption {
	return func(b *Body) { b.ShowAxes = true }
}

// NewBody builds a body of the given shape at pos. Mass equals the shape area.
// It returns an error wrapping shape.ErrInvalidShapeParameters for invalid shapes.
func NewBody(kind shape.Kind, pos rl.Vector2, static, mobile bool, opts ...BodyOption) (*Body, error) {
	if err := shape.Validate(kind); err != nil {
		return nil, err
	}
	area := shape.Area(kind)
	b := &Body{
		Kind:            kind,
		Position:        pos,
		Static:          static,
		Mobile:          mobile,
		Area:            area,
		Mass:            area,
		Extents:         shape.Extents(kind),
		Local:           shape.LocalVertices(kind),
		Restitution:     DefaultRestitution,
		StaticFriction:  DefaultStaticFriction,
		DynamicFriction: DefaultDynamicFriction,
		Color:           color.RGBA{R: 200, G: 200, B: 200, A: 255},
	}
	b.Inertia = shape.Inertia(kind, b.Mass)
	if !static {
		b.InvMass = 1 / b.Mass
		b.InvInertia = 1 / b.Inertia
	}
	b.Vertices = make([]rl.Vector2, len(b.Local))
	copy(b.Vertices, b.Local)
	for _, opt := range opts {
		opt(b)
	}
	b.UpdateAABB()
	return b, nil
}

// SetAngle sets the orientation, wrapped to [-π, π], and regenerates the vertices
// from the local frame.
func (b *Body) SetAngle(angle float32) {
	angle = math32.Remainder(angle, 2*math32.Pi)
	b.Angle = angle
	if len(b.Vertices) != len(b.Local) {
		b.Vertices = make([]rl.Vector2, len(b.Local))
	}
	for i, v := range b.Local {
		b.Vertices[i] = rl.Vector2Rotate(v, angle)
	}
}

// Rotate queues a rotation of delta radians, applied on the next tick.
func (b *Body) Rotate(delta float32) {
	b.Rotation += delta
}

// ApplyForce adds f to the force accumulator.
func (b *Body) ApplyForce(f rl.Vector2) {
	b.Force = rl.Vector2Add(b.Force, f)
}

// Radius returns the circle radius and whether the body is a circle.
func (b *Body) Radius() (float32, bool) {
	return shape.Radius(b.Kind)
}
