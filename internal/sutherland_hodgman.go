package internal

// Something that can clip an input polygon against a convex clip polygon. The
// second result is false when nothing of the input is left.
type ClippingStrategy interface {
	Clip(clipPolygon, inputPolygon Polygon) (Polygon, bool)
}

// Sutherland-Hodgman clipping. The clip polygon must be convex and wound so
// that its interior is to the left of each edge (counterclockwise with Y up).
// The input polygon may be any simple polygon. Nothing is validated: a
// clockwise clip polygon clips against the outside of each edge instead, and
// degenerate polygons give whatever the arithmetic gives.
type SutherlandHodgman struct{}

var _ ClippingStrategy = SutherlandHodgman{}

func (SutherlandHodgman) Clip(clipPolygon, inputPolygon Polygon) (Polygon, bool) {
	logger := Logger()
	current := copyPoints(inputPolygon.Points)

	for i := range clipPolygon.Points {
		edge := clipPolygon.Edge(i)
		next := make([]Point, 0, len(current)+1)

		for j, start := range current {
			end := current[CircularIndex(j+1, len(current))]
			next = Classify(edge, start, end).AppendVertices(next, edge, start, end)
		}

		logger.Debug("clipped against edge",
			"edge", i, "start", edge.Start, "end", edge.End,
			"in", len(current), "out", len(next))
		current = next
	}

	if len(current) == 0 {
		logger.Debug("nothing left after clipping",
			"clipVertices", len(clipPolygon.Points), "inputVertices", len(inputPolygon.Points))
		return Polygon{}, false
	}
	return Polygon{Points: RemoveConsecutiveDuplicates(current)}, true
}
