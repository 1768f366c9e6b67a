// Lower level access to the clipper, for callers that want to supply their own
// clipping strategy or use the edge classification directly.
package advanced

import (
	"log/slog"

	"github.com/osuushi/polyclip/internal"
)

type Point = internal.Point
type Line = internal.Line
type Polygon = internal.Polygon
type PolygonList = internal.PolygonList

type ClippingStrategy = internal.ClippingStrategy
type SutherlandHodgman = internal.SutherlandHodgman
type PolygonClippingCalculator = internal.PolygonClippingCalculator

type PointPosition = internal.PointPosition
type PointPositions = internal.PointPositions

const (
	Inside  = internal.Inside
	Outside = internal.Outside
)

var (
	ErrDegeneratePolygon   = internal.ErrDegeneratePolygon
	ErrNonFiniteCoordinate = internal.ErrNonFiniteCoordinate
	ErrNonConvexClip       = internal.ErrNonConvexClip
)

// Create a calculator around a strategy. A nil strategy means
// SutherlandHodgman.
func NewPolygonClippingCalculator(strategy ClippingStrategy) *PolygonClippingCalculator {
	return internal.NewPolygonClippingCalculator(strategy)
}

// Classify both endpoints of the subject edge start->end against a directed
// clip edge.
func Classify(edge Line, start, end Point) PointPositions {
	return internal.Classify(edge, start, end)
}

func RemoveConsecutiveDuplicates(points []Point) []Point {
	return internal.RemoveConsecutiveDuplicates(points)
}

func ValidateClipInput(clipPolygon, inputPolygon Polygon) error {
	return internal.ValidateClipInput(clipPolygon, inputPolygon)
}

func NewPolygon(points ...Point) Polygon {
	return internal.NewPolygon(points...)
}

func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
