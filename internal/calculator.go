package internal

// Holds the clipping strategy so call sites don't depend on a concrete
// algorithm.
type PolygonClippingCalculator struct {
	strategy ClippingStrategy
}

// A nil strategy means SutherlandHodgman.
func NewPolygonClippingCalculator(strategy ClippingStrategy) *PolygonClippingCalculator {
	if strategy == nil {
		strategy = SutherlandHodgman{}
	}
	return &PolygonClippingCalculator{strategy: strategy}
}

func (calc *PolygonClippingCalculator) Strategy() ClippingStrategy {
	return calc.strategy
}

// Clip inputPolygon against clipPolygon. The second result is false when the
// polygons don't intersect.
func (calc *PolygonClippingCalculator) Clip(clipPolygon, inputPolygon Polygon) (Polygon, bool) {
	return calc.strategy.Clip(clipPolygon, inputPolygon)
}

// Like Clip, but first rejects degenerate polygons, non-finite coordinates and
// clip polygons that are not convex and counterclockwise.
func (calc *PolygonClippingCalculator) ClipStrict(clipPolygon, inputPolygon Polygon) (result Polygon, ok bool, err error) {
	if err := ValidateClipInput(clipPolygon, inputPolygon); err != nil {
		return Polygon{}, false, err
	}
	result, ok = calc.strategy.Clip(clipPolygon, inputPolygon)
	return result, ok, nil
}
