package internal

// Classification of a single point against one directed clip edge.
type PointPosition int

const (
	Inside PointPosition = iota
	Outside
)

func (pos PointPosition) String() string {
	switch pos {
	case Inside:
		return "Inside"
	case Outside:
		return "Outside"
	}
	return "PointPosition(?)"
}

func positionOf(edge Line, p Point) PointPosition {
	if edge.IsInside(p) {
		return Inside
	}
	return Outside
}

// Positions of both endpoints of a subject edge relative to a clip edge.
type PointPositions struct {
	Start PointPosition
	End   PointPosition
}

func Classify(edge Line, start, end Point) PointPositions {
	return PointPositions{positionOf(edge, start), positionOf(edge, end)}
}

// Append the vertices the subject edge start->end contributes after clipping
// against edge. This is the Sutherland-Hodgman edge rule:
//
//	Inside  -> Inside:  end
//	Inside  -> Outside: crossing
//	Outside -> Inside:  crossing, end
//	Outside -> Outside: nothing
//
// When the crossing can't be computed (parallel, or outside either segment),
// that vertex is silently skipped.
func (positions PointPositions) AppendVertices(dst []Point, edge Line, start, end Point) []Point {
	switch positions {
	case PointPositions{Inside, Inside}:
		dst = append(dst, end)
	case PointPositions{Inside, Outside}:
		if crossing, ok := edge.Intersection(Line{start, end}); ok {
			dst = append(dst, crossing)
		}
	case PointPositions{Outside, Inside}:
		if crossing, ok := edge.Intersection(Line{start, end}); ok {
			dst = append(dst, crossing)
		}
		dst = append(dst, end)
	}
	return dst
}
