package physics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"

	"rigid2d/internal/physicsconfig"
	"rigid2d/internal/shape"
)

// Logger receives one line per notable world event. *logger.Logger satisfies it.
type Logger interface {
	Log(line string)
}

// BodyID identifies a body for the lifetime of a World. IDs are never reused.
type BodyID uint64

// Command is a velocity/rotation order for a mobile body, typically built from input.
type Command struct {
	// Velocity replaces the body's linear velocity.
	Velocity rl.Vector2
	// Rotate is added to the rotation queued for the next tick, in radians.
	Rotate float32
}

// World owns a set of bodies and advances them one fixed tick at a time.
//
// A World is not safe for concurrent use. Step processes body pairs one after the other
// in insertion order, mutating both bodies of a pair in place; with three or more
// bodies overlapping at once the outcome depends on that order.
type World struct {
	Gravity  rl.Vector2
	Resolver Resolver
	settings physicsconfig.Settings

	bodies []*Body
	ids    []BodyID
	index  map[BodyID]int
	nextID BodyID

	debug    []DebugPrimitive
	contacts int
	ticks    uint64
	log      Logger
}

// NewWorld returns an empty world configured from s.
func NewWorld(s physicsconfig.Settings) *World {
	s = s.Normalize()
	return &World{
		Gravity: rl.NewVector2(s.Gravity[0], s.Gravity[1]),
		Resolver: Resolver{
			Iterations:         s.Iterations,
			VelocityIterations: s.VelocityIterations,
			Friction:           s.Friction,
			ContactTolerance:   s.ContactTolerance,
		},
		settings: s,
		index:    make(map[BodyID]int),
		nextID:   1,
	}
}

// Settings returns the normalized settings the world was built with.
func (w *World) Settings() physicsconfig.Settings {
	return w.settings
}

// SetLogger sets where world events are logged. nil disables logging.
func (w *World) SetLogger(l Logger) {
	w.log = l
}

func (w *World) logf(format string, args ...any) {
	if w.log != nil {
		w.log.Log(fmt.Sprintf(format, args...))
	}
}

// SetGravity sets the standing acceleration given to dynamic bodies added afterwards.
func (w *World) SetGravity(g rl.Vector2) {
	w.Gravity = g
}

// AddBody builds a body from kind at pos and appends it to the world. Dynamic bodies
// start with the world gravity as their acceleration and the configured material
// defaults; opts are applied after these defaults. Invalid shapes return an error
// wrapping shape.ErrInvalidShapeParameters.
func (w *World) AddBody(kind shape.Kind, pos rl.Vector2, static, mobile bool, opts ...BodyOption) (BodyID, error) {
	defaults := func(b *Body) {
		b.Restitution = w.settings.Restitution
		b.StaticFriction = w.settings.StaticFriction
		b.DynamicFriction = w.settings.DynamicFriction
		if !b.Static {
			b.Acceleration = w.Gravity
		}
	}
	b, err := NewBody(kind, pos, static, mobile, append([]BodyOption{defaults}, opts...)...)
	if err != nil {
		w.logf("add body rejected: %v", err)
		return 0, err
	}
	return w.Insert(b), nil
}

// Insert appends an already built body and returns its id.
func (w *World) Insert(b *Body) BodyID {
	id := w.nextID
	w.nextID++
	w.index[id] = len(w.bodies)
	w.bodies = append(w.bodies, b)
	w.ids = append(w.ids, id)
	w.logf("body %d added: %s at (%.1f, %.1f) static=%t", id, shape.Name(b.Kind), b.Position.X, b.Position.Y, b.Static)
	return id
}

// RemoveBody deletes the body with the given id, keeping the order of the others.
func (w *World) RemoveBody(id BodyID) bool {
	i, ok := w.index[id]
	if !ok {
		return false
	}
	w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
	w.ids = append(w.ids[:i], w.ids[i+1:]...)
	delete(w.index, id)
	for j := i; j < len(w.ids); j++ {
		w.index[w.ids[j]] = j
	}
	w.logf("body %d removed", id)
	return true
}

// Body returns the body with the given id.
func (w *World) Body(id BodyID) (*Body, bool) {
	i, ok := w.index[id]
	if !ok {
		return nil, false
	}
	return w.bodies[i], true
}

// Bodies returns the ids of all bodies in processing order.
func (w *World) Bodies() []BodyID {
	out := make([]BodyID, len(w.ids))
	copy(out, w.ids)
	return out
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Drive applies cmd to a mobile, non-static body. It returns false for other bodies.
func (w *World) Drive(id BodyID, cmd Command) bool {
	b, ok := w.Body(id)
	if !ok || !b.Mobile || b.Static {
		return false
	}
	b.Velocity = cmd.Velocity
	b.Rotate(cmd.Rotate)
	return true
}

// DriveMobile applies cmd to every mobile body and returns how many were driven.
func (w *World) DriveMobile(cmd Command) int {
	n := 0
	for _, id := range w.ids {
		if w.Drive(id, cmd) {
			n++
		}
	}
	return n
}

// Step advances the world by dt seconds: every body is integrated, then every unordered
// pair is resolved in turn. The debug stream is rebuilt from scratch.
func (w *World) Step(dt float32) {
	w.debug = w.debug[:0]
	w.contacts = 0
	for _, b := range w.bodies {
		Integrate(b, dt)
		if b.ShowAxes {
			w.debugAxes(b)
		}
	}
	for i := 0; i < len(w.bodies); i++ {
		for j := i + 1; j < len(w.bodies); j++ {
			res := w.Resolver.Resolve(w.bodies[i], w.bodies[j])
			if !res.Collided {
				continue
			}
			w.contacts++
			w.debugContacts(res)
		}
	}
	w.ticks++
}

// Debug returns the debug primitives produced by the last Step. The slice is reused by
// the next Step.
func (w *World) Debug() []DebugPrimitive {
	return w.debug
}

// Contacts returns the number of colliding pairs found by the last Step.
func (w *World) Contacts() int {
	return w.contacts
}

// Ticks returns the number of completed steps.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Snapshot returns deep copies of all bodies in processing order. Changing a snapshot
// never affects the world.
func (w *World) Snapshot() []Body {
	out := make([]Body, len(w.bodies))
	for i, b := range w.bodies {
		if err := copier.CopyWithOption(&out[i], b, copier.Option{DeepCopy: true}); err != nil {
			w.logf("snapshot of body %d: %v", w.ids[i], err)
		}
		// Shapes are immutable values; share them rather than rebuilding the interface.
		out[i].Kind = b.Kind
	}
	return out
}
