package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg reader. It finds every <polygon>
// element in document order and reads its points attribute. Coordinates are
// taken as they are, so winding is whatever it is in Y-up terms; nothing is
// reversed.
func ReadSVGPolygons(in io.Reader) (PolygonList, error) {
	rootEl, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygonEls := findPolygons(rootEl)
	if len(polygonEls) == 0 {
		return nil, errors.New("no polygons found in svg")
	}

	polygons := make(PolygonList, 0, len(polygonEls))
	for i, polygonEl := range polygonEls {
		points, err := parseSVGPoints(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		polygons = append(polygons, Polygon{Points: points})
	}
	return polygons, nil
}

func findPolygons(rootEl *svgparser.Element) []*svgparser.Element {
	if rootEl.Name == "polygon" {
		return []*svgparser.Element{rootEl}
	}
	return rootEl.FindAll("polygon")
}

// Points are separated by whitespace and/or commas: "1,2 3,4" and "1 2 3 4"
// are the same.
func parseSVGPoints(attr string) ([]Point, error) {
	fields := strings.Fields(strings.ReplaceAll(attr, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attr)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}
