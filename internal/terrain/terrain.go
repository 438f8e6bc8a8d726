package terrain

import (
	"math/rand"
	"time"

	"github.com/chewxy/math32"

	"rigid2d/internal/scenefile"
)

// Options controls procedural ground generation.
// Columns is the number of static ground columns, each ColumnWidth wide, laid out
// centered on x = 0 with their bottoms on y = 0. Column heights range from MinHeight
// to MaxHeight. Bodies is the number of random bodies dropped from above the ground.
// Seed controls randomness; Seed == 0 uses a time-based seed.
// Octaves, Frequency, Lacunarity, and Gain control the fractal noise shape.
type Options struct {
	Columns     int
	ColumnWidth float32
	MinHeight   float32
	MaxHeight   float32
	Bodies      int

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultOptions returns a 1200 unit wide ground with 40 bodies above it.
func DefaultOptions() Options {
	return Options{
		Columns:     24,
		ColumnWidth: 50,
		MinHeight:   20,
		MaxHeight:   160,
		Bodies:      40,
		Octaves:     4,
		Frequency:   0.15,
		Lacunarity:  2.0,
		Gain:        0.5,
	}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.Columns < 0 {
		o.Columns = 0
	}
	if o.ColumnWidth <= 0 {
		o.ColumnWidth = d.ColumnWidth
	}
	if o.MinHeight <= 0 {
		o.MinHeight = d.MinHeight
	}
	if o.MaxHeight < o.MinHeight {
		o.MaxHeight = o.MinHeight
	}
	if o.Bodies < 0 {
		o.Bodies = 0
	}
	if o.Octaves <= 0 {
		o.Octaves = 1
	}
	if o.Frequency <= 0 {
		o.Frequency = d.Frequency
	}
	if o.Lacunarity <= 0 {
		o.Lacunarity = d.Lacunarity
	}
	if o.Gain <= 0 {
		o.Gain = d.Gain
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

// Generate builds a scene of static ground columns shaped by fractal value noise, with
// random circles, rectangles and polygons stacked above it. The same non-zero seed
// always yields the same scene.
func Generate(opts Options) scenefile.Scene {
	opts = opts.normalized()
	rng := rand.New(rand.NewSource(opts.Seed))

	bodies := make([]scenefile.BodyDef, 0, opts.Columns+opts.Bodies)
	width := float32(opts.Columns) * opts.ColumnWidth
	startX := -width*0.5 + opts.ColumnWidth*0.5
	for i := range opts.Columns {
		h := fractalValueNoise1D(float32(i)*opts.Frequency, int32(opts.Seed), opts.Octaves, opts.Lacunarity, opts.Gain)
		height := opts.MinHeight + h*(opts.MaxHeight-opts.MinHeight)
		if !isFinite(height) || height <= 0 {
			height = opts.MinHeight
		}
		bodies = append(bodies, scenefile.BodyDef{
			Shape:    scenefile.ShapeRectangle,
			Width:    opts.ColumnWidth,
			Height:   height,
			Position: [2]float32{startX + float32(i)*opts.ColumnWidth, height * 0.5},
			Static:   true,
			Color:    "#008000",
		})
	}

	// Bodies are spread over the ground in rows far enough apart that none start
	// overlapping: each slot is larger than the biggest spawnable body.
	const slot = 2*MaxSize + 10
	perRow := max(int(math32.Max(width, slot)/slot), 1)
	left := -float32(perRow) * slot * 0.5
	for i := range opts.Bodies {
		row, col := i/perRow, i%perRow
		pos := [2]float32{
			left + (float32(col)+0.5)*slot,
			opts.MaxHeight + (float32(row)+0.5)*slot + slot,
		}
		if rng.Intn(2) == 0 {
			bodies = append(bodies, RandomCircle(rng, pos))
		} else {
			bodies = append(bodies, RandomBlock(rng, pos))
		}
	}
	return scenefile.Scene{Bodies: bodies}
}

// fractalValueNoise1D is layered smooth value noise with configurable octaves,
// lacunarity, and gain. Output is in [0,1].
func fractalValueNoise1D(x float32, seed int32, octaves int, lacunarity, gain float32) float32 {
	var sum, maxAmp float32
	amplitude, freq := float32(1), float32(1)
	for i := range octaves {
		sum += valueNoise1D(x*freq, seed+int32(i)) * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise1D is smooth value noise in [0,1] over a hashed integer lattice.
func valueNoise1D(x float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	t := smoothStep(x - float32(x0))
	return lerp(hash1D(x0, seed), hash1D(x0+1, seed), t)
}

// hash1D maps a lattice coordinate to a deterministic pseudo-random float in [0,1].
func hash1D(x, seed int32) float32 {
	n := x*374761393 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is cubic easing: 3t^2 - 2t^3.
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
