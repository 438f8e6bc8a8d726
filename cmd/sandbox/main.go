package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"rigid2d/internal/debug"
	"rigid2d/internal/env"
	"rigid2d/internal/graphics"
	"rigid2d/internal/input"
	"rigid2d/internal/logger"
	"rigid2d/internal/physics"
	"rigid2d/internal/physicsconfig"
	"rigid2d/internal/scenefile"
	"rigid2d/internal/view"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	// maxFrameTime caps the simulated time per frame so a stall does not trigger a
	// burst of catch-up ticks.
	maxFrameTime = 0.25
)

func main() {
	scenePath := flag.String("scene", "", "scene YAML to load instead of the built-in scene")
	configPath := flag.String("config", physicsconfig.DefaultPath, "physics config JSON")
	flag.Parse()

	log := logger.New(logger.DefaultPath)
	if err := env.Load(env.DefaultPath); err != nil {
		log.Logf("env: %v", err)
	}
	settings, err := physicsconfig.Load(*configPath)
	if err != nil {
		log.Logf("config: %v", err)
	}
	if settings, err = physicsconfig.ApplyEnv(settings); err != nil {
		log.Logf("config: %v", err)
	}

	sc := scenefile.Default()
	if *scenePath != "" {
		if sc, err = scenefile.Load(*scenePath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	world := physics.NewWorld(settings)
	world.SetLogger(log)
	if _, err := scenefile.Build(world, sc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cam := view.New(windowWidth, windowHeight, rl.NewVector2(300, 200))
	overlay := debug.New()
	overlay.Toggle()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	dt := settings.Timestep()
	var acc float32

	update := func() {
		cam.Resize(graphics.ScreenSize())
		input.UpdateCamera(&cam)
		if rl.IsKeyPressed(rl.KeyF1) {
			overlay.Toggle()
		}
		if def, ok := input.Spawn(rng, input.ReadClick(), cam.ToWorld(rl.GetMousePosition())); ok {
			if _, err := scenefile.Build(world, scenefile.Scene{Bodies: []scenefile.BodyDef{def}}); err != nil {
				log.Logf("spawn: %v", err)
			}
		}

		acc = min(acc+rl.GetFrameTime(), maxFrameTime)
		cmd := input.ReadKeys().Command()
		for acc >= dt {
			world.DriveMobile(cmd)
			world.Step(dt)
			acc -= dt
		}
	}
	draw := func() {
		graphics.DrawBodies(cam, world.Snapshot())
		graphics.DrawDebug(cam, world.Debug())
		overlay.Draw(debug.Stats{
			Bodies:   world.Len(),
			Contacts: world.Contacts(),
			Ticks:    world.Ticks(),
			Zoom:     cam.Zoom,
		})
	}
	graphics.Run("rigid2d sandbox", windowWidth, windowHeight, update, draw)
}
