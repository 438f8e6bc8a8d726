// Package input turns keyboard and mouse state into world commands.
package input

import (
	"math/rand"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"rigid2d/internal/physics"
	"rigid2d/internal/scenefile"
	"rigid2d/internal/terrain"
	"rigid2d/internal/view"
)

// Drive speed in units per second and turn rate in radians per tick.
const (
	DriveSpeed = 250
	TurnRate   = 2 * math32.Pi / 180
)

// Keys is the subset of keyboard state that drives mobile bodies.
type Keys struct {
	Left, Right, Up, Down bool
	// TurnLeft rotates counterclockwise, TurnRight clockwise.
	TurnLeft, TurnRight bool
}

// Command returns the drive command for k. With no arrow held the velocity is zero,
// so mobile bodies stop as soon as the keys are released.
func (k Keys) Command() physics.Command {
	var cmd physics.Command
	if k.Left {
		cmd.Velocity.X = -DriveSpeed
	}
	if k.Right {
		cmd.Velocity.X = DriveSpeed
	}
	if k.Up {
		cmd.Velocity.Y = DriveSpeed
	}
	if k.Down {
		cmd.Velocity.Y = -DriveSpeed
	}
	if k.TurnLeft {
		cmd.Rotate += TurnRate
	}
	if k.TurnRight {
		cmd.Rotate -= TurnRate
	}
	return cmd
}

// ReadKeys polls the keyboard: arrows move, A and D turn.
func ReadKeys() Keys {
	return Keys{
		Left:      rl.IsKeyDown(rl.KeyLeft),
		Right:     rl.IsKeyDown(rl.KeyRight),
		Up:        rl.IsKeyDown(rl.KeyUp),
		Down:      rl.IsKeyDown(rl.KeyDown),
		TurnLeft:  rl.IsKeyDown(rl.KeyA),
		TurnRight: rl.IsKeyDown(rl.KeyD),
	}
}

// Button identifies what a click spawns.
type Button int

const (
	ButtonNone Button = iota
	// ButtonCircle spawns a circle.
	ButtonCircle
	// ButtonBlock spawns a rectangle or a polygon.
	ButtonBlock
)

// Spawn returns the body a click of b at the world point pos creates.
func Spawn(rng *rand.Rand, b Button, pos rl.Vector2) (scenefile.BodyDef, bool) {
	p := [2]float32{pos.X, pos.Y}
	switch b {
	case ButtonCircle:
		return terrain.RandomCircle(rng, p), true
	case ButtonBlock:
		return terrain.RandomBlock(rng, p), true
	}
	return scenefile.BodyDef{}, false
}

// ReadClick returns the button pressed this frame: left spawns circles, right spawns
// blocks.
func ReadClick() Button {
	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		return ButtonCircle
	case rl.IsMouseButtonPressed(rl.MouseButtonRight):
		return ButtonBlock
	}
	return ButtonNone
}

// UpdateCamera zooms cam with the mouse wheel around the cursor and pans it while the
// middle button is held.
func UpdateCamera(cam *view.Camera) {
	mouse := rl.GetMousePosition()
	cam.ZoomAt(mouse, rl.GetMouseWheelMove())
	if rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		cam.Pan(rl.GetMouseDelta())
	}
}
