package scenefile

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"rigid2d/internal/physics"
	"rigid2d/internal/shape"
)

// Shape names accepted in scene files.
const (
	ShapeCircle    = "circle"
	ShapeRectangle = "rectangle"
	ShapePolygon   = "polygon"
)

var (
	ErrUnknownShape = errors.New("unknown shape")
	ErrInvalidColor = errors.New("invalid color")
)

// Palette is the set of colors used for generated and spawned bodies.
var Palette = []string{
	"#ff0000", "#00ff00", "#0000ff", "#00ffff",
	"#008000", "#7fffd4", "#f0ffff", "#ffff00",
}

// BodyDef is the YAML definition of one body. Which size fields are read depends on
// Shape: radius for circles, width and height for rectangles, radius and sides for
// polygons.
type BodyDef struct {
	Shape  string  `yaml:"shape"`
	Radius float32 `yaml:"radius,omitempty"`
	Width  float32 `yaml:"width,omitempty"`
	Height float32 `yaml:"height,omitempty"`
	Sides  int     `yaml:"sides,omitempty"`

	Position        [2]float32 `yaml:"position"`
	Velocity        [2]float32 `yaml:"velocity,omitempty"`
	AngularVelocity float32    `yaml:"angular_velocity,omitempty"`
	// Rotation is in degrees and is applied on the first tick.
	Rotation float32 `yaml:"rotation,omitempty"`

	Static bool `yaml:"static,omitempty"`
	Mobile bool `yaml:"mobile,omitempty"`
	Axes   bool `yaml:"axes,omitempty"`

	Restitution *float32 `yaml:"restitution,omitempty"`
	// Color is a hex color such as "#2e7d32".
	Color string `yaml:"color,omitempty"`
}

// Scene is a YAML scene: an optional gravity override and the bodies in insertion order.
type Scene struct {
	Gravity *[2]float32 `yaml:"gravity,omitempty"`
	Bodies  []BodyDef   `yaml:"bodies"`
}

// Kind returns the shape described by d, validated.
func (d BodyDef) Kind() (shape.Kind, error) {
	var k shape.Kind
	switch d.Shape {
	case ShapeCircle:
		k = shape.Circle{Radius: d.Radius}
	case ShapeRectangle:
		k = shape.Rectangle{Width: d.Width, Height: d.Height}
	case ShapePolygon:
		k = shape.RegularPolygon{Radius: d.Radius, Sides: d.Sides}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, d.Shape)
	}
	if err := shape.Validate(k); err != nil {
		return nil, err
	}
	return k, nil
}

// Options returns the body options described by d.
func (d BodyDef) Options() ([]physics.BodyOption, error) {
	opts := []physics.BodyOption{
		physics.WithVelocity(rl.NewVector2(d.Velocity[0], d.Velocity[1])),
		physics.WithAngularVelocity(d.AngularVelocity),
	}
	if d.Rotation != 0 {
		opts = append(opts, physics.WithRotation(d.Rotation*math32.Pi/180))
	}
	if d.Restitution != nil {
		opts = append(opts, physics.WithRestitution(*d.Restitution))
	}
	if d.Axes {
		opts = append(opts, physics.WithAxes())
	}
	if d.Color != "" {
		c, err := ParseColor(d.Color)
		if err != nil {
			return nil, err
		}
		opts = append(opts, physics.WithColor(c))
	}
	return opts, nil
}

// ParseColor parses a "#rgb" or "#rrggbb" hex color.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Parse decodes a scene from YAML.
func Parse(data []byte) (Scene, error) {
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scene{}, err
	}
	return sc, nil
}

// Load reads and decodes the scene file at path.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("read %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return sc, nil
}

// Marshal encodes sc as YAML.
func Marshal(sc Scene) ([]byte, error) {
	return yaml.Marshal(sc)
}

// Save writes sc to path, creating the parent directory if needed.
func Save(path string, sc Scene) error {
	data, err := Marshal(sc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build adds the bodies of sc to w, in order, and returns their ids. The gravity
// override, if any, is applied first. Every definition is checked before the first
// body is added, so on error w is left unchanged.
func Build(w *physics.World, sc Scene) ([]physics.BodyID, error) {
	type prepared struct {
		kind shape.Kind
		opts []physics.BodyOption
	}
	defs := make([]prepared, len(sc.Bodies))
	for i, d := range sc.Bodies {
		kind, err := d.Kind()
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		opts, err := d.Options()
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		defs[i] = prepared{kind: kind, opts: opts}
	}

	if sc.Gravity != nil {
		w.SetGravity(rl.NewVector2(sc.Gravity[0], sc.Gravity[1]))
	}
	ids := make([]physics.BodyID, 0, len(defs))
	for i, p := range defs {
		d := sc.Bodies[i]
		id, err := w.AddBody(p.kind, rl.NewVector2(d.Position[0], d.Position[1]), d.Static, d.Mobile, p.opts...)
		if err != nil {
			return ids, fmt.Errorf("body %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Default returns the sandbox scene: a mobile 50x50 box, a long static floor and a
// static ramp tilted by -20 degrees.
func Default() Scene {
	return Scene{
		Bodies: []BodyDef{
			{Shape: ShapeRectangle, Width: 50, Height: 50, Mobile: true, Color: "#00ff00"},
			{Shape: ShapeRectangle, Width: 1000, Height: 100, Position: [2]float32{500, 50}, Static: true, Color: "#008000"},
			{Shape: ShapeRectangle, Width: 500, Height: 50, Position: [2]float32{50, 500}, Static: true, Rotation: -20, Color: "#ff0000"},
		},
	}
}
