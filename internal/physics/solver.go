package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxIterations bounds the positional correction passes per pair.
const MaxIterations = 16

// Resolver separates an overlapping pair and applies collision impulses to it.
type Resolver struct {
	// Iterations is the number of broad phase, narrow phase and correction passes run
	// per pair; it is clamped to [1, MaxIterations].
	Iterations int
	// VelocityIterations is the number of normal impulse passes per pair, clamped to
	// [1, MaxIterations]. Restitution only applies on the first pass; later passes remove
	// whatever approach velocity the earlier ones left.
	VelocityIterations int
	// Friction enables the Coulomb friction pass after the normal impulses.
	Friction bool
	// ContactTolerance is passed to Contacts.
	ContactTolerance float32
}

// Result describes what Resolve did to a pair.
type Result struct {
	// Collision is the last overlap found during correction.
	Collision Collision
	Manifold  Manifold
	// Collided is true when at least one correction pass found an overlap.
	Collided bool
	// Impulses counts contact points that received a normal impulse.
	Impulses int
}

// Resolve corrects the positions of a and b until they no longer overlap (or the
// iteration budget runs out), then runs up to VelocityIterations impulse passes at the
// contacts, followed by one friction pass when Friction is set.
// a and b must be distinct bodies. A pair that does not overlap is left untouched apart
// from its refreshed bounding boxes.
func (r Resolver) Resolve(a, b *Body) Result {
	var res Result
	iterations := min(max(r.Iterations, 1), MaxIterations)
	for range iterations {
		if !BroadPhase(a, b) {
			break
		}
		c := Collide(a, b)
		if !c.Colliding() {
			break
		}
		res.Collision = c
		res.Collided = true
		correct(a, b, c)
	}
	if !res.Collided {
		return res
	}

	tolerance := r.ContactTolerance
	if tolerance <= 0 {
		tolerance = DefaultContactTolerance
	}
	res.Manifold = Contacts(a, b, tolerance)

	var normals [2]float32
	e := math32.Min(a.Restitution, b.Restitution)
	passes := min(max(r.VelocityIterations, 1), MaxIterations)
	for pass := range passes {
		if pass > 0 {
			e = 0
		}
		js := applyImpulses(a, b, res.Collision.Normal, res.Manifold, e)
		if js == [2]float32{} {
			break
		}
		normals[0] += js[0]
		normals[1] += js[1]
	}
	for _, j := range normals {
		if j > 0 {
			res.Impulses++
		}
	}
	if r.Friction {
		applyFriction(a, b, res.Collision.Normal, res.Manifold, normals)
	}
	return res
}

// correct moves the pair apart along the normal. A static body never moves; a single
// dynamic body takes the whole correction; two dynamic bodies split it evenly.
func correct(a, b *Body, c Collision) {
	push := rl.Vector2Scale(c.Normal, c.Depth)
	switch {
	case a.Static:
		b.Position = rl.Vector2Add(b.Position, push)
	case b.Static:
		a.Position = rl.Vector2Subtract(a.Position, push)
	default:
		half := rl.Vector2Scale(push, 0.5)
		a.Position = rl.Vector2Subtract(a.Position, half)
		b.Position = rl.Vector2Add(b.Position, half)
	}
}

// contactVelocity returns the velocity of b relative to a at the contact point,
// given the lever arms ra and rb.
func contactVelocity(a, b *Body, ra, rb rl.Vector2) rl.Vector2 {
	va := rl.Vector2Add(a.Velocity, rl.Vector2Scale(perp(ra), a.AngularVelocity))
	vb := rl.Vector2Add(b.Velocity, rl.Vector2Scale(perp(rb), b.AngularVelocity))
	return rl.Vector2Subtract(vb, va)
}

// effectiveMass returns the inverse mass seen along dir at the contact.
func effectiveMass(a, b *Body, ra, rb, dir rl.Vector2) float32 {
	raDot := rl.Vector2DotProduct(perp(ra), dir)
	rbDot := rl.Vector2DotProduct(perp(rb), dir)
	return a.InvMass + b.InvMass + raDot*raDot*a.InvInertia + rbDot*rbDot*b.InvInertia
}

// applyImpulse pushes b along impulse and a the opposite way, linearly and angularly.
func applyImpulse(a, b *Body, ra, rb, impulse rl.Vector2) {
	a.Velocity = rl.Vector2Subtract(a.Velocity, rl.Vector2Scale(impulse, a.InvMass))
	a.AngularVelocity -= cross(ra, impulse) * a.InvInertia
	b.Velocity = rl.Vector2Add(b.Velocity, rl.Vector2Scale(impulse, b.InvMass))
	b.AngularVelocity += cross(rb, impulse) * b.InvInertia
}

// applyImpulses computes the normal impulse of every contact from the velocities before
// any of them is applied, then applies them all. It returns the impulse magnitudes;
// contacts that were already separating get zero.
func applyImpulses(a, b *Body, normal rl.Vector2, m Manifold, e float32) [2]float32 {
	var js [2]float32
	var arms [2][2]rl.Vector2
	for i := range m.Count {
		ra := rl.Vector2Subtract(m.Points[i], a.Position)
		rb := rl.Vector2Subtract(m.Points[i], b.Position)
		arms[i] = [2]rl.Vector2{ra, rb}

		vn := rl.Vector2DotProduct(contactVelocity(a, b, ra, rb), normal)
		if vn >= 0 {
			continue
		}
		denom := effectiveMass(a, b, ra, rb, normal)
		if denom == 0 {
			continue
		}
		js[i] = -(1 + e) * vn / denom / float32(m.Count)
	}
	for i := range m.Count {
		if js[i] == 0 {
			continue
		}
		applyImpulse(a, b, arms[i][0], arms[i][1], rl.Vector2Scale(normal, js[i]))
	}
	return js
}

// applyFriction runs the Coulomb pass: the tangential impulse that would stop sliding is
// kept while it stays under the static limit, otherwise the dynamic coefficient applies.
func applyFriction(a, b *Body, normal rl.Vector2, m Manifold, normals [2]float32) {
	sf := (a.StaticFriction + b.StaticFriction) * 0.5
	df := (a.DynamicFriction + b.DynamicFriction) * 0.5

	var impulses [2]rl.Vector2
	var arms [2][2]rl.Vector2
	for i := range m.Count {
		j := normals[i]
		if j == 0 {
			continue
		}
		ra := rl.Vector2Subtract(m.Points[i], a.Position)
		rb := rl.Vector2Subtract(m.Points[i], b.Position)
		arms[i] = [2]rl.Vector2{ra, rb}

		rv := contactVelocity(a, b, ra, rb)
		tangent := rl.Vector2Subtract(rv, rl.Vector2Scale(normal, rl.Vector2DotProduct(rv, normal)))
		if rl.Vector2LengthSqr(tangent) < 1e-12 {
			continue
		}
		tangent = rl.Vector2Normalize(tangent)

		denom := effectiveMass(a, b, ra, rb, tangent)
		if denom == 0 {
			continue
		}
		jt := -rl.Vector2DotProduct(rv, tangent) / denom / float32(m.Count)
		if math32.Abs(jt) <= j*sf {
			impulses[i] = rl.Vector2Scale(tangent, jt)
		} else {
			impulses[i] = rl.Vector2Scale(tangent, -j*df)
		}
	}
	for i := range m.Count {
		if impulses[i].X == 0 && impulses[i].Y == 0 {
			continue
		}
		applyImpulse(a, b, arms[i][0], arms[i][1], impulses[i])
	}
}
