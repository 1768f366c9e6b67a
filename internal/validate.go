package internal

import "github.com/pkg/errors"

var (
	ErrDegeneratePolygon   = errors.New("polygon has fewer than 3 vertices")
	ErrNonFiniteCoordinate = errors.New("polygon has a non-finite coordinate")
	ErrNonConvexClip       = errors.New("clip polygon is not convex and counterclockwise")
)

// Check the preconditions the clipper relies on but never checks itself.
// Panics via throw, so callers must recover with HandleClipPanicRecover.
func validateClipInput(clipPolygon, inputPolygon Polygon) {
	validatePolygon("clip", clipPolygon)
	validatePolygon("input", inputPolygon)

	if err := clipPolygon.convexityViolation(); err != nil {
		throw(err)
	}
}

func validatePolygon(role string, poly Polygon) {
	if poly.Len() < 3 {
		throw(errors.Wrapf(ErrDegeneratePolygon, "%s polygon has %d", role, poly.Len()))
	}
	for i, p := range poly.Points {
		if !p.IsFinite() {
			throw(errors.Wrapf(ErrNonFiniteCoordinate, "%s polygon vertex %d is %v", role, i, p))
		}
	}
}

// Validate both polygons, returning the first problem found.
func ValidateClipInput(clipPolygon, inputPolygon Polygon) (err error) {
	defer func() {
		if recoveredErr := HandleClipPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	validateClipInput(clipPolygon, inputPolygon)
	return nil
}
