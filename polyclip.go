// Sutherland-Hodgman polygon clipping for Go.
//
// This package computes the part of a simple polygon that lies inside a convex
// clip polygon. The clip polygon must wind counterclockwise (with Y pointing
// up), so that its interior is on the left of every edge.
package polyclip

import (
	"log/slog"

	"github.com/osuushi/polyclip/advanced"
)

type Point = advanced.Point
type Line = advanced.Line
type Polygon = advanced.Polygon
type PolygonList = advanced.PolygonList

var defaultCalculator = advanced.NewPolygonClippingCalculator(advanced.SutherlandHodgman{})

// Build a polygon from a copy of points.
func NewPolygon(points ...Point) Polygon {
	return advanced.NewPolygon(points...)
}

// Clip inputPolygon against clipPolygon. The second result is false if they
// don't intersect.
//
// Nothing is validated. A clockwise or non-convex clip polygon, or a polygon
// with fewer than three vertices, gives a result but not a meaningful one. Use
// ClipStrict to reject such input.
func Clip(clipPolygon, inputPolygon Polygon) (Polygon, bool) {
	return defaultCalculator.Clip(clipPolygon, inputPolygon)
}

// Like Clip, but returns an error for polygons with fewer than three vertices,
// non-finite coordinates, or a clip polygon that is not convex and
// counterclockwise. The errors wrap advanced.ErrDegeneratePolygon,
// advanced.ErrNonFiniteCoordinate and advanced.ErrNonConvexClip.
func ClipStrict(clipPolygon, inputPolygon Polygon) (result Polygon, ok bool, err error) {
	return defaultCalculator.ClipStrict(clipPolygon, inputPolygon)
}

// Configure debug logging for the clipper. By default nothing is logged. Pass
// nil to go back to that.
func SetLogger(l *slog.Logger) {
	advanced.SetLogger(l)
}
