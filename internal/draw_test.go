package internal

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	clipPolygon, inputPolygon := DemoSquare(), DemoTriangle()
	result, ok := SutherlandHodgman{}.Clip(clipPolygon, inputPolygon)
	require.True(t, ok)

	path := filepath.Join(t.TempDir(), "clip.png")
	err := Render(path, 2, RenderOptions{LabelVertices: true},
		NewLayer(clipPolygon, ClipLayerColors),
		NewLayer(inputPolygon, InputLayerColors),
		NewLayer(result, ResultLayerColors),
	)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	// The triangle spans 200x100 units
	bounds := img.Bounds()
	assert.Equal(t, 2*200+2*drawPadding, bounds.Dx())
	assert.Equal(t, 2*100+2*drawPadding, bounds.Dy())

	// The corners are padding, so they're black
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{r, g, b})
}

func TestRender_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.png")
	assert.EqualError(t, Render(path, 1, RenderOptions{}), "nothing to draw")
	assert.EqualError(t, Render(path, 1, RenderOptions{}, NewLayer(Polygon{}, ClipLayerColors)), "nothing to draw")
	assert.EqualError(t, Render(path, 0, RenderOptions{}, NewLayer(DemoSquare(), ClipLayerColors)), "scale must be positive, got 0")
}

func TestRender_NonFiniteVertices(t *testing.T) {
	withNaN := Polygon{[]Point{{0, 0}, {math.NaN(), 5}, {100, 0}, {100, 50}, {math.Inf(1), 0}}}
	c, err := drawLayers(1, RenderOptions{LabelVertices: true}, []Layer{NewLayer(withNaN, InputLayerColors)})
	require.NoError(t, err)
	// Sized by the finite vertices only
	assert.Equal(t, 100+2*drawPadding, c.Width())
	assert.Equal(t, 50+2*drawPadding, c.Height())

	path := filepath.Join(t.TempDir(), "clip.png")
	onlyNaN := Polygon{[]Point{{math.NaN(), 0}, {0, math.NaN()}}}
	assert.EqualError(t, Render(path, 1, RenderOptions{}, NewLayer(onlyNaN, ClipLayerColors)), "nothing to draw")
}
