package render

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rigid2d/internal/physics"
	"rigid2d/internal/shape"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
	bg   = color.RGBA{R: 1, G: 2, B: 3, A: 255}
)

func testOptions() Options {
	return Options{Width: 100, Height: 100, Scale: 1, Background: bg}
}

func body(t *testing.T, kind shape.Kind, x, y float32, c color.RGBA) physics.Body {
	t.Helper()
	b, err := physics.NewBody(kind, rl.NewVector2(x, y), false, false, physics.WithColor(c))
	require.NoError(t, err)
	return *b
}

func TestToScreenFlipsY(t *testing.T) {
	o := testOptions()
	o.Center = rl.NewVector2(10, 10)
	o.Scale = 2
	assert.Equal(t, rl.NewVector2(50, 50), o.ToScreen(rl.NewVector2(10, 10)))
	assert.Equal(t, rl.NewVector2(70, 30), o.ToScreen(rl.NewVector2(20, 20)))
}

func TestFrameDrawsBodies(t *testing.T) {
	bodies := []physics.Body{
		body(t, shape.Rectangle{Width: 40, Height: 20}, 0, 0, red),
		body(t, shape.Circle{Radius: 10}, 0, 30, blue),
	}
	img := Frame(bodies, nil, testOptions())

	require.Equal(t, image.Rect(0, 0, 100, 100), img.Bounds())
	assert.Equal(t, bg, img.RGBAAt(0, 0))
	assert.Equal(t, red, img.RGBAAt(50, 50))
	// World y is up: the circle above the box lands in the upper half of the image.
	assert.Equal(t, blue, img.RGBAAt(50, 25))
	assert.Equal(t, bg, img.RGBAAt(50, 90))
}

func TestFrameDrawsDebugPrimitives(t *testing.T) {
	yellow := color.RGBA{R: 255, G: 255, A: 255}
	prims := []physics.DebugPrimitive{
		{Kind: physics.PrimitivePoint, Origin: rl.NewVector2(-30, -30), Color: red},
		{Kind: physics.PrimitiveRay, Origin: rl.NewVector2(0, 20), Vector: rl.NewVector2(0, 20), Color: yellow},
	}
	img := Frame(nil, prims, testOptions())
	assert.Equal(t, red, img.RGBAAt(20, 80))
	// The ray spans screen y 10..30 along x = 50; the pixel column 49..50 is half covered.
	c := img.RGBAAt(49, 20)
	assert.NotEqual(t, bg, c)
	assert.Equal(t, bg, img.RGBAAt(49, 5))
}

func TestOutline(t *testing.T) {
	o := testOptions()
	b := body(t, shape.Rectangle{Width: 10, Height: 4}, 5, 5, red)
	pts := o.Outline(&b)
	require.Len(t, pts, 4)
	// Top-left corner (0, 7) in world space.
	assert.Equal(t, rl.NewVector2(50, 43), pts[0])

	c := body(t, shape.Circle{Radius: 3}, 0, 0, red)
	assert.Len(t, o.Outline(&c), circleSegments)
}

func TestSavePNG(t *testing.T) {
	img := Frame([]physics.Body{body(t, shape.Circle{Radius: 20}, 0, 0, red)}, nil, testOptions())
	path := filepath.Join(t.TempDir(), "frames", "0001.png")
	require.NoError(t, SavePNG(path, img))

	got, err := imgio.Open(path)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), got.Bounds())
	r, g, b, a := got.At(50, 40).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, b, a})
}
