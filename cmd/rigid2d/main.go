package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"rigid2d/internal/commands"
	"rigid2d/internal/env"
	"rigid2d/internal/logger"
	"rigid2d/internal/physicsconfig"
	"rigid2d/internal/render"
	"rigid2d/internal/terrain"
)

func main() {
	if err := env.Load(env.DefaultPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	if err := newRegistry(os.Stdout).Execute(os.Args[1:]); err != nil {
		if errors.Is(err, commands.ErrMissingCommand) || errors.Is(err, commands.ErrUnknownCommand) {
			fmt.Fprintf(os.Stderr, "%v\n\nusage: rigid2d <command> [flags]\n", err)
			newRegistry(io.Discard).Usage(os.Stderr)
			os.Exit(2)
		}
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRegistry wires the subcommands; command output goes to out.
func newRegistry(out io.Writer) *commands.Registry {
	r := commands.NewRegistry()

	runFS := flag.NewFlagSet("run", flag.ContinueOnError)
	var run runOptions
	runFS.StringVar(&run.scene, "scene", "", "scene YAML (default: built-in scene)")
	runFS.StringVar(&run.config, "config", physicsconfig.DefaultPath, "physics config JSON")
	runFS.StringVar(&run.log, "log", logger.DefaultPath, "log file (empty: no file)")
	runFS.IntVar(&run.ticks, "ticks", 640, "number of ticks to simulate")
	r.Register("run", "simulate a scene and print the final state", runFS, func() error {
		return runScene(out, run)
	})

	renderFS := flag.NewFlagSet("render", flag.ContinueOnError)
	var rend renderOptions
	defaults := render.DefaultOptions()
	renderFS.StringVar(&rend.scene, "scene", "", "scene YAML (default: built-in scene)")
	renderFS.StringVar(&rend.config, "config", physicsconfig.DefaultPath, "physics config JSON")
	renderFS.StringVar(&rend.log, "log", logger.DefaultPath, "log file (empty: no file)")
	renderFS.IntVar(&rend.ticks, "ticks", 640, "number of ticks to simulate")
	renderFS.IntVar(&rend.every, "every", 16, "write a frame every N ticks")
	renderFS.StringVar(&rend.out, "out", "frames", "output directory")
	renderFS.IntVar(&rend.frame.Width, "width", defaults.Width, "frame width in pixels")
	renderFS.IntVar(&rend.frame.Height, "height", defaults.Height, "frame height in pixels")
	scale := renderFS.Float64("scale", float64(defaults.Scale), "pixels per world unit")
	cx := renderFS.Float64("cx", float64(defaults.Center.X), "world x at the frame center")
	cy := renderFS.Float64("cy", float64(defaults.Center.Y), "world y at the frame center")
	r.Register("render", "simulate a scene and write PNG frames", renderFS, func() error {
		rend.frame.Background = defaults.Background
		rend.frame.Scale = float32(*scale)
		rend.frame.Center.X, rend.frame.Center.Y = float32(*cx), float32(*cy)
		return renderScene(out, rend)
	})

	terrainFS := flag.NewFlagSet("terrain", flag.ContinueOnError)
	topts := terrain.DefaultOptions()
	var terrainOut string
	terrainFS.Int64Var(&topts.Seed, "seed", 0, "noise seed (0: time based)")
	terrainFS.IntVar(&topts.Columns, "columns", topts.Columns, "number of ground columns")
	terrainFS.IntVar(&topts.Bodies, "bodies", topts.Bodies, "number of random bodies")
	terrainFS.StringVar(&terrainOut, "out", "", "output YAML file (default: stdout)")
	r.Register("terrain", "generate a random scene YAML", terrainFS, func() error {
		return generateTerrain(out, topts, terrainOut)
	})
	return r
}
