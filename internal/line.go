package internal

import "math"

// Signed magnitude of (End-Start) x (p-Start). Positive means p is to the
// left of the line, zero means it is on the (infinite) line.
func (l Line) CrossProduct(p Point) float64 {
	edgeX, edgeY := l.End.X-l.Start.X, l.End.Y-l.Start.Y
	vertexX, vertexY := p.X-l.Start.X, p.Y-l.Start.Y
	return edgeX*vertexY - edgeY*vertexX
}

// Half-plane test used by the clipper. Points on the line count as inside.
func (l Line) IsInside(p Point) bool {
	return l.CrossProduct(p) >= 0
}

func (l Line) IsLeft(p Point) bool {
	return l.IsInside(p)
}

// Intersection of two segments. Each segment is turned into its implicit line
// equation a*x + b*y = c, and the 2x2 system is solved directly. A zero
// determinant (parallel or collinear) yields no point, as does a solution
// lying outside either segment's bounding box.
func (l Line) Intersection(other Line) (Point, bool) {
	a1, b1, c1 := l.coefficients()
	a2, b2, c2 := other.coefficients()

	determinant := a1*b2 - a2*b1
	if determinant == 0 {
		return Point{}, false
	}

	p := Point{
		X: (b2*c1 - b1*c2) / determinant,
		Y: (a1*c2 - a2*c1) / determinant,
	}
	if !l.boundsContain(p) || !other.boundsContain(p) {
		return Point{}, false
	}
	return p, true
}

func (l Line) coefficients() (a, b, c float64) {
	a = l.End.Y - l.Start.Y
	b = l.Start.X - l.End.X
	c = a*l.Start.X + b*l.Start.Y
	return
}

// Inclusive on both axes
func (l Line) boundsContain(p Point) bool {
	return p.X >= math.Min(l.Start.X, l.End.X) && p.X <= math.Max(l.Start.X, l.End.X) &&
		p.Y >= math.Min(l.Start.Y, l.End.Y) && p.Y <= math.Max(l.Start.Y, l.End.Y)
}
