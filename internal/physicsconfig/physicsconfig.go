package physicsconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultPath is the path to the physics config file, relative to the process working directory.
const DefaultPath = "config/physics.json"

// Environment variables that override the file.
const (
	EnvIterations = "RIGID2D_ITERATIONS"
	EnvFriction   = "RIGID2D_FRICTION"
	EnvTickRate   = "RIGID2D_TICK_RATE"
)

// Settings holds simulation parameters. Persisted across runs.
type Settings struct {
	// Iterations is the number of positional correction passes per pair (1-16).
	Iterations int `json:"iterations"`
	// VelocityIterations is the number of normal impulse passes per pair (1-16).
	VelocityIterations int `json:"velocity_iterations"`
	// Gravity is the standing acceleration of new dynamic bodies, in units/s².
	Gravity [2]float32 `json:"gravity"`
	// Friction turns on the Coulomb friction pass.
	Friction bool `json:"friction"`
	// TickRate is the number of fixed ticks per second.
	TickRate int `json:"tick_rate"`
	// ContactTolerance is the squared distance under which two polygon contacts are simultaneous.
	ContactTolerance float32 `json:"contact_tolerance"`

	Restitution     float32 `json:"restitution"`
	StaticFriction  float32 `json:"static_friction"`
	DynamicFriction float32 `json:"dynamic_friction"`
}

// Default returns the default settings: 64 Hz ticks, gravity (0, -196), four correction
// passes, friction on.
func Default() Settings {
	return Settings{
		Iterations:         4,
		VelocityIterations: 8,
		Gravity:            [2]float32{0, -196},
		Friction:           true,
		TickRate:           64,
		ContactTolerance:   5e-4,
		Restitution:        0.05,
		StaticFriction:     0.6,
		DynamicFriction:    0.4,
	}
}

// Normalize clamps values into their valid ranges, falling back to defaults for
// anything unusable.
func (s Settings) Normalize() Settings {
	d := Default()
	s.Iterations = min(max(s.Iterations, 1), 16)
	s.VelocityIterations = min(max(s.VelocityIterations, 1), 16)
	if s.TickRate <= 0 {
		s.TickRate = d.TickRate
	}
	if s.ContactTolerance <= 0 {
		s.ContactTolerance = d.ContactTolerance
	}
	s.Restitution = min(max(s.Restitution, 0), 1)
	s.StaticFriction = max(s.StaticFriction, 0)
	s.DynamicFriction = max(s.DynamicFriction, 0)
	return s
}

// Timestep returns the duration of one tick in seconds.
func (s Settings) Timestep() float32 {
	return 1 / float32(s.Normalize().TickRate)
}

// Load reads settings from path. A missing file is not an error and yields Default().
// Fields absent from the file keep their default values.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return s.Normalize(), nil
}

// Save writes settings to path, creating the parent directory if needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides s from RIGID2D_* environment variables. Unparsable values are
// reported and leave the setting unchanged.
func ApplyEnv(s Settings) (Settings, error) {
	var errs []error
	if v, ok := os.LookupEnv(EnvIterations); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvIterations, err))
		} else {
			s.Iterations = n
		}
	}
	if v, ok := os.LookupEnv(EnvFriction); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvFriction, err))
		} else {
			s.Friction = b
		}
	}
	if v, ok := os.LookupEnv(EnvTickRate); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvTickRate, err))
		} else {
			s.TickRate = n
		}
	}
	return s.Normalize(), errors.Join(errs...)
}
