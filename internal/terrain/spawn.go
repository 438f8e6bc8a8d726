package terrain

import (
	"math/rand"

	"rigid2d/internal/scenefile"
)

// Size range of randomly spawned bodies: circle and polygon radii, rectangle sides.
const (
	MinSize = 10
	MaxSize = 50
)

// Polygon side counts for random polygons.
const (
	MinSides = 3
	MaxSides = 10
)

func randomSize(rng *rand.Rand) float32 {
	return float32(MinSize + rng.Intn(MaxSize-MinSize+1))
}

func randomColor(rng *rand.Rand) string {
	return scenefile.Palette[rng.Intn(len(scenefile.Palette))]
}

// RandomCircle returns a dynamic circle at pos with a random radius and color.
func RandomCircle(rng *rand.Rand, pos [2]float32) scenefile.BodyDef {
	return scenefile.BodyDef{
		Shape:    scenefile.ShapeCircle,
		Radius:   randomSize(rng),
		Position: pos,
		Color:    randomColor(rng),
	}
}

// RandomBlock returns a dynamic rectangle at pos or, half of the time, a regular
// polygon with a random number of sides.
func RandomBlock(rng *rand.Rand, pos [2]float32) scenefile.BodyDef {
	w, h := randomSize(rng), randomSize(rng)
	d := scenefile.BodyDef{Position: pos, Color: randomColor(rng)}
	if rng.Intn(2) == 0 {
		d.Shape = scenefile.ShapeRectangle
		d.Width, d.Height = w, h
	} else {
		d.Shape = scenefile.ShapePolygon
		d.Radius = w
		d.Sides = MinSides + rng.Intn(MaxSides-MinSides+1)
	}
	return d
}
