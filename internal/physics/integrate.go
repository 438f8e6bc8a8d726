package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Integrate advances b by dt seconds with semi-implicit Euler and applies the queued
// rotation. Forces feed the standing acceleration (which also carries gravity), velocity
// is updated before position, and the force accumulator is cleared.
// Static bodies keep their position and velocity but still consume queued rotation.
func Integrate(b *Body, dt float32) {
	if !b.Static {
		b.Rotation += b.AngularVelocity * dt
		b.Acceleration = rl.Vector2Add(b.Acceleration, rl.Vector2Scale(b.Force, b.InvMass*dt))
		b.Velocity = rl.Vector2Add(b.Velocity, rl.Vector2Scale(b.Acceleration, dt))
		b.Position = rl.Vector2Add(b.Position, rl.Vector2Scale(b.Velocity, dt))
		b.Force = rl.Vector2{}
	}
	if b.Rotation != 0 {
		b.SetAngle(b.Angle + b.Rotation)
		b.Rotation = 0
	}
}
