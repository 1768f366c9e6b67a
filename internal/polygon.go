package internal

import (
	"math"

	"github.com/pkg/errors"
)

// Build a polygon from a copy of the given points. No validation is done, so
// polygons with fewer than three vertices are accepted.
func NewPolygon(points ...Point) Polygon {
	return Polygon{Points: copyPoints(points)}
}

func (poly Polygon) Len() int {
	return len(poly.Points)
}

// Vertex with circular indexing, so -1 is the last vertex.
func (poly Polygon) Vertex(i int) Point {
	return poly.Points[CircularIndex(i, len(poly.Points))]
}

// The directed edge from vertex i to vertex i+1, wrapping at the end. On a
// single vertex polygon, this is a degenerate self edge.
func (poly Polygon) Edge(i int) Line {
	return Line{poly.Vertex(i), poly.Vertex(i + 1)}
}

func (poly Polygon) Edges() []Line {
	edges := make([]Line, len(poly.Points))
	for i := range poly.Points {
		edges[i] = poly.Edge(i)
	}
	return edges
}

func (poly Polygon) Copy() Polygon {
	return Polygon{Points: copyPoints(poly.Points)}
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Same vertices in the same order, starting at the same index.
func (poly Polygon) Equal(other Polygon) bool {
	if len(poly.Points) != len(other.Points) {
		return false
	}
	for i, p := range poly.Points {
		if !p.Equal(other.Points[i]) {
			return false
		}
	}
	return true
}

// Even-odd point-in-polygon. Points exactly on the boundary may land on
// either side.
func (poly Polygon) ContainsPoint(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Count edges crossed by the horizontal ray from p towards +X.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Vertex(i + 1)
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if p.X < x {
			crossingCount++
		}
	}
	return crossingCount
}

// Convex and wound counterclockwise, which is what the clipper needs from a
// clip polygon: its interior passes the IsInside test of every edge.
// Collinear vertices are allowed.
func (poly Polygon) IsConvexCCW() bool {
	return poly.convexityViolation() == nil
}

// Describe why the polygon is not convex and counterclockwise, or nil if it
// is. Left turns everywhere aren't enough on their own: a boundary can keep
// turning left and wind around more than once (a pentagram), or enclose
// nothing at all.
func (poly Polygon) convexityViolation() error {
	for i := range poly.Points {
		if !poly.Edge(i).IsInside(poly.Vertex(i + 2)) {
			j := CircularIndex(i+1, len(poly.Points))
			return errors.Wrapf(ErrNonConvexClip, "right turn at vertex %d %v", j, poly.Points[j])
		}
	}
	if area := poly.signedArea(); !(area > 0) {
		return errors.Wrapf(ErrNonConvexClip, "signed area is %v", area)
	}
	if turns := poly.turningNumber(); turns != 1 {
		return errors.Wrapf(ErrNonConvexClip, "boundary winds around %d times", turns)
	}
	return nil
}

// Shoelace area, positive for counterclockwise polygons.
func (poly Polygon) signedArea() float64 {
	var sum float64
	for i, vertex := range poly.Points {
		nextVertex := poly.Vertex(i + 1)
		sum += vertex.X*nextVertex.Y - nextVertex.X*vertex.Y
	}
	return sum / 2
}

// Total turning of the edge directions around the boundary, in whole turns.
// Counterclockwise turns count up. A simple counterclockwise polygon is 1.
// Zero length edges have no direction and are skipped.
func (poly Polygon) turningNumber() int {
	var directions []Point
	for _, edge := range poly.Edges() {
		d := Point{edge.End.X - edge.Start.X, edge.End.Y - edge.Start.Y}
		if d.X != 0 || d.Y != 0 {
			directions = append(directions, d)
		}
	}
	var total float64
	for i, a := range directions {
		b := directions[CircularIndex(i+1, len(directions))]
		total += math.Atan2(a.X*b.Y-a.Y*b.X, a.X*b.X+a.Y*b.Y)
	}
	return int(math.Round(total / (2 * math.Pi)))
}

// Collapse runs of identical adjacent vertices into one. Only neighbours in
// sequence are compared. The last vertex is not compared to the first, and
// repeats further apart are kept.
func RemoveConsecutiveDuplicates(points []Point) []Point {
	result := make([]Point, 0, len(points))
	for i, p := range points {
		if i > 0 && p.Equal(points[i-1]) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func copyPoints(points []Point) []Point {
	if points == nil {
		return nil
	}
	result := make([]Point, len(points))
	copy(result, points)
	return result
}
