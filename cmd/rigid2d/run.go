package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/chewxy/math32"

	"rigid2d/internal/logger"
	"rigid2d/internal/physics"
	"rigid2d/internal/physicsconfig"
	"rigid2d/internal/render"
	"rigid2d/internal/scenefile"
	"rigid2d/internal/shape"
	"rigid2d/internal/terrain"
)

type runOptions struct {
	scene  string
	config string
	log    string
	ticks  int
}

type renderOptions struct {
	runOptions
	every int
	out   string
	frame render.Options
}

// loadWorld builds a world from the config and scene files. An empty scene path
// selects the built-in scene.
func loadWorld(opts runOptions) (*physics.World, *logger.Logger, error) {
	log := logger.New(opts.log)
	settings, err := physicsconfig.Load(opts.config)
	if err != nil {
		log.Logf("config: %v", err)
	}
	if settings, err = physicsconfig.ApplyEnv(settings); err != nil {
		log.Logf("config: %v", err)
	}

	sc := scenefile.Default()
	if opts.scene != "" {
		if sc, err = scenefile.Load(opts.scene); err != nil {
			return nil, log, err
		}
	}
	w := physics.NewWorld(settings)
	w.SetLogger(log)
	if _, err := scenefile.Build(w, sc); err != nil {
		return nil, log, err
	}
	return w, log, nil
}

func runScene(out io.Writer, opts runOptions) error {
	w, log, err := loadWorld(opts)
	if err != nil {
		return err
	}
	dt := w.Settings().Timestep()
	for range max(opts.ticks, 0) {
		w.Step(dt)
	}
	log.Logf("ran %d ticks", w.Ticks())
	printState(out, w)
	return nil
}

func printState(out io.Writer, w *physics.World) {
	fmt.Fprintf(out, "ticks=%d bodies=%d contacts=%d\n", w.Ticks(), w.Len(), w.Contacts())
	for _, id := range w.Bodies() {
		b, _ := w.Body(id)
		fmt.Fprintf(out, "%d %-9s pos=(%.2f, %.2f) vel=(%.2f, %.2f) angle=%.1f static=%t\n",
			id, shape.Name(b.Kind), b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y,
			b.Angle*180/math32.Pi, b.Static)
	}
}

func renderScene(out io.Writer, opts renderOptions) error {
	if opts.frame.Width <= 0 || opts.frame.Height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", opts.frame.Width, opts.frame.Height)
	}
	w, log, err := loadWorld(opts.runOptions)
	if err != nil {
		return err
	}
	every := max(opts.every, 1)
	dt := w.Settings().Timestep()
	frames := 0
	save := func() error {
		path := filepath.Join(opts.out, fmt.Sprintf("frame_%05d.png", w.Ticks()))
		if err := render.SavePNG(path, render.Frame(w.Snapshot(), w.Debug(), opts.frame)); err != nil {
			return err
		}
		frames++
		return nil
	}
	if err := save(); err != nil {
		return err
	}
	for i := 1; i <= opts.ticks; i++ {
		w.Step(dt)
		if i%every == 0 {
			if err := save(); err != nil {
				return err
			}
		}
	}
	log.Logf("rendered %d frames to %s", frames, opts.out)
	fmt.Fprintf(out, "wrote %d frames to %s\n", frames, opts.out)
	return nil
}

func generateTerrain(out io.Writer, opts terrain.Options, path string) error {
	sc := terrain.Generate(opts)
	if path != "" {
		if err := scenefile.Save(path, sc); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %d bodies to %s\n", len(sc.Bodies), path)
		return nil
	}
	data, err := scenefile.Marshal(sc)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
