package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polyclip/internal"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Clip one polygon against another. The input holds two polygons: the convex
// clip polygon first, then the polygon to clip. In the default text format,
// each line is a point "x y", with an empty line between the polygons.
//
// The clip polygon should wind counterclockwise. With --strict this, along with
// degenerate polygons, is checked and reported as an error.
//
// Exit status is 0 when there is a result, 1 when the polygons don't
// intersect, and 2 on errors.

type options struct {
	input         string
	format        string
	output        string
	strict        bool
	png           string
	imgcat        bool
	scale         float64
	labelVertices bool
	dump          bool
	color         bool
	verbose       bool
}

func main() {
	opts := parseFlags(os.Args[1:])
	au := aurora.NewAurora(opts.color)

	if opts.verbose {
		internal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	found, err := run(opts, au, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", au.Red("error:"), err)
		os.Exit(2)
	}
	if !found {
		os.Exit(1)
	}
}

func parseFlags(args []string) options {
	var opts options
	app := kingpin.New("polyclip", "Clip a polygon against a convex clip polygon (Sutherland-Hodgman).")
	app.Flag("format", "Input format.").Short('f').Default("text").EnumVar(&opts.format, "text", "svg", "geojson")
	app.Flag("output", "Output format for the result.").Short('o').Default("text").EnumVar(&opts.output, "text", "geojson")
	app.Flag("strict", "Reject degenerate polygons and clip polygons that aren't convex and counterclockwise.").BoolVar(&opts.strict)
	app.Flag("png", "Draw the clip polygon, the input and the result to this PNG file.").PlaceHolder("PATH").StringVar(&opts.png)
	app.Flag("imgcat", "Show the drawing in the terminal (iTerm). Implies a temporary --png if none is given.").BoolVar(&opts.imgcat)
	app.Flag("scale", "Pixels per unit in the drawing.").Default("1").Float64Var(&opts.scale)
	app.Flag("labels", "Label vertices in the drawing.").BoolVar(&opts.labelVertices)
	app.Flag("dump", "Pretty print the result value to stderr.").BoolVar(&opts.dump)
	app.Flag("color", "Colorize output.").Default("true").BoolVar(&opts.color)
	app.Flag("verbose", "Log every clipping step to stderr.").Short('v').BoolVar(&opts.verbose)
	app.Arg("input", "Input file. Defaults to stdin.").StringVar(&opts.input)
	kingpin.MustParse(app.Parse(args))
	return opts
}

func run(opts options, au aurora.Aurora, stdout, stderr io.Writer) (bool, error) {
	polygons, err := readInput(opts)
	if err != nil {
		return false, err
	}
	if len(polygons) < 2 {
		return false, errors.Errorf("expected a clip polygon and an input polygon, got %d polygon(s)", len(polygons))
	}
	if len(polygons) > 2 {
		fmt.Fprintf(stderr, "%s ignoring %d extra polygon(s)\n", au.Yellow("warning:"), len(polygons)-2)
	}
	clipPolygon, inputPolygon := polygons[0], polygons[1]

	calc := internal.NewPolygonClippingCalculator(internal.SutherlandHodgman{})
	var (
		result internal.Polygon
		found  bool
	)
	if opts.strict {
		result, found, err = calc.ClipStrict(clipPolygon, inputPolygon)
		if err != nil {
			return false, err
		}
	} else {
		result, found = calc.Clip(clipPolygon, inputPolygon)
	}

	if opts.dump {
		fmt.Fprintf(stderr, "%# v\n", pretty.Formatter(result))
	}

	if err := draw(opts, stderr, clipPolygon, inputPolygon, result, found); err != nil {
		return false, err
	}

	if !found {
		fmt.Fprintln(stderr, au.Red("no intersection"))
		return false, nil
	}
	fmt.Fprintf(stderr, "%s %d vertices\n", au.Green("clipped:"), au.Bold(result.Len()))
	return true, writeResult(opts, stdout, result)
}

func readInput(opts options) (internal.PolygonList, error) {
	in := os.Stdin
	if opts.input != "" && opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}

	switch opts.format {
	case "svg":
		return internal.ReadSVGPolygons(in)
	case "geojson":
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, errors.Wrap(err, "reading input")
		}
		return internal.ReadGeoJSONPolygons(data)
	default:
		return internal.ReadPolygons(in)
	}
}

func writeResult(opts options, w io.Writer, result internal.Polygon) error {
	if opts.output == "geojson" {
		data, err := internal.MarshalGeoJSON(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return errors.Wrap(err, "writing result")
	}
	return internal.WritePolygon(w, result)
}

func draw(opts options, terminal io.Writer, clipPolygon, inputPolygon, result internal.Polygon, found bool) error {
	path, cleanup, err := drawingPath(opts)
	if err != nil || path == "" {
		return err
	}
	defer cleanup()

	layers := []internal.Layer{
		internal.NewLayer(clipPolygon, internal.ClipLayerColors),
		internal.NewLayer(inputPolygon, internal.InputLayerColors),
	}
	if found {
		layers = append(layers, internal.NewLayer(result, internal.ResultLayerColors))
	}
	renderOpts := internal.RenderOptions{LabelVertices: opts.labelVertices}
	if err := internal.Render(path, opts.scale, renderOpts, layers...); err != nil {
		return err
	}
	if opts.imgcat {
		return internal.CatPNG(path, terminal)
	}
	return nil
}

// Where to draw, if anywhere. Without --png, --imgcat gets its own temporary
// file, which cleanup removes.
func drawingPath(opts options) (path string, cleanup func(), err error) {
	if opts.png != "" {
		return opts.png, func() {}, nil
	}
	if !opts.imgcat {
		return "", func() {}, nil
	}
	f, err := os.CreateTemp("", "polyclip-*.png")
	if err != nil {
		return "", nil, errors.Wrap(err, "creating drawing file")
	}
	path = f.Name()
	f.Close()
	return path, func() { os.Remove(path) }, nil
}
