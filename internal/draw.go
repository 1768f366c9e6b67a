package internal

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/polyclip/internal/dbg"
	"github.com/pkg/errors"
)

// Padding around the shapes so edges on the bounding box stay visible
const drawPadding = 40

// One polygon to draw, with fill and stroke colors as RGBA in [0, 1].
type Layer struct {
	Polygon Polygon
	Fill    [4]float64
	Stroke  [4]float64
}

type RenderOptions struct {
	// Label each vertex with a readable name from dbg.Name
	LabelVertices bool
}

var (
	ClipLayerColors   = [2][4]float64{{1, 1, 0, 0.2}, {1, 1, 0, 1}}
	InputLayerColors  = [2][4]float64{{0.3, 0.2, 1, 0.3}, {0.5, 0.5, 1, 1}}
	ResultLayerColors = [2][4]float64{{0, 0.5, 0, 0.6}, {0, 1, 1, 1}}
)

func NewLayer(poly Polygon, colors [2][4]float64) Layer {
	return Layer{Polygon: poly, Fill: colors[0], Stroke: colors[1]}
}

// Draw the layers in order onto a black canvas and save it as a PNG. The
// origin is at the bottom left, so counterclockwise polygons look
// counterclockwise.
func Render(path string, scale float64, opts RenderOptions, layers ...Layer) error {
	c, err := drawLayers(scale, opts, layers)
	if err != nil {
		return err
	}
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

func drawLayers(scale float64, opts RenderOptions, layers []Layer) (*gg.Context, error) {
	if scale <= 0 {
		return nil, errors.Errorf("scale must be positive, got %v", scale)
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, layer := range layers {
		for _, p := range finitePoints(layer.Polygon.Points) {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return nil, errors.New("nothing to draw")
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	for _, layer := range layers {
		points := finitePoints(layer.Polygon.Points)
		if len(points) == 0 {
			continue
		}
		c.NewSubPath()
		c.MoveTo(points[0].X, points[0].Y)
		for _, p := range points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(layer.Fill[0], layer.Fill[1], layer.Fill[2], layer.Fill[3])
		c.FillPreserve()
		c.SetRGBA(layer.Stroke[0], layer.Stroke[1], layer.Stroke[2], layer.Stroke[3])
		c.SetLineWidth(2)
		c.Stroke()
	}

	if opts.LabelVertices {
		c.SetRGB(1, 1, 1)
		for _, layer := range layers {
			for _, p := range finitePoints(layer.Polygon.Points) {
				// Text has to be drawn in device space, or it comes out upside down
				x, y := c.TransformPoint(p.X, p.Y)
				c.Push()
				c.Identity()
				c.DrawStringAnchored(dbg.Name(p), x, y, 0.5, -0.5)
				c.Pop()
			}
		}
	}
	return c, nil
}

// Vertices with NaN or infinite coordinates can't be placed, so they're left
// out of the drawing.
func finitePoints(points []Point) []Point {
	result := make([]Point, 0, len(points))
	for _, p := range points {
		if p.IsFinite() {
			result = append(result, p)
		}
	}
	return result
}

// Print a PNG to a terminal that supports inline images (iTerm).
func CatPNG(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "displaying %s", path)
}
