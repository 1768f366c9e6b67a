package internal

// This contains no actual tests. It is just a helper for testing clipping
// results.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every vertex is inside every edge of the clip polygon, exactly.
func assertContained(t *testing.T, clipPolygon, result Polygon) {
	t.Helper()
	for _, edge := range clipPolygon.Edges() {
		for _, v := range result.Points {
			assert.True(t, edge.IsInside(v), "vertex %v is outside clip edge %v->%v (cross %v)", v, edge.Start, edge.End, edge.CrossProduct(v))
		}
	}
}

// No vertex equals the one before it. The last and first are not compared.
func assertNoConsecutiveDuplicates(t *testing.T, poly Polygon) {
	t.Helper()
	for i := 1; i < len(poly.Points); i++ {
		assert.NotEqual(t, poly.Points[i-1], poly.Points[i], "duplicate vertex at index %d", i)
	}
}

// Same vertices in the same cyclic order, starting anywhere.
func assertCyclicEqual(t *testing.T, expected, actual Polygon) {
	t.Helper()
	require.Equal(t, expected.Len(), actual.Len(), "vertex count")
	if expected.Len() == 0 {
		return
	}
	for offset := range actual.Points {
		match := true
		for i, p := range expected.Points {
			if !p.Equal(actual.Vertex(i + offset)) {
				match = false
				break
			}
		}
		if match {
			return
		}
	}
	assert.Fail(t, "polygons are not cyclically equal", "expected %v, got %v", expected.Points, actual.Points)
}

func assertPointsInDelta(t *testing.T, expected, actual []Point, delta float64) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i].X, actual[i].X, delta, "x of vertex %d", i)
		assert.InDelta(t, expected[i].Y, actual[i].Y, delta, "y of vertex %d", i)
	}
}

// Sample a grid over both operands, checking that a point is in the result
// exactly when it is in both the clip polygon and the input polygon. Only
// valid where the result is the true intersection. Points too close to any
// boundary are skipped.
func validateClipBySampling(t *testing.T, result Polygon, ok bool, clipPolygon, inputPolygon Polygon) {
	t.Helper()
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, poly := range []Polygon{clipPolygon, inputPolygon} {
		for _, p := range poly.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	step := math.Max(maxX-minX, maxY-minY) / 50
	boundaryTolerance := step * 1e-6

	for y := minY; y <= maxY; y += step {
		for x := minX; x <= maxX; x += step {
			p := Point{X: x, Y: y}
			if nearBoundary(p, boundaryTolerance, clipPolygon, inputPolygon, result) {
				continue
			}

			expected := clipPolygon.ContainsPoint(p) && inputPolygon.ContainsPoint(p)
			actual := ok && result.ContainsPoint(p)
			if expected {
				assert.True(t, actual, "point %v should be in the clipped polygon", p)
			} else {
				assert.False(t, actual, "point %v should not be in the clipped polygon", p)
			}
		}
	}
}

func nearBoundary(p Point, tolerance float64, polygons ...Polygon) bool {
	for _, poly := range polygons {
		for _, edge := range poly.Edges() {
			if distanceToSegment(p, edge) < tolerance {
				return true
			}
		}
	}
	return false
}

func distanceToSegment(p Point, l Line) float64 {
	dx, dy := l.End.X-l.Start.X, l.End.Y-l.Start.Y
	lengthSquared := dx*dx + dy*dy
	if lengthSquared == 0 {
		return math.Hypot(p.X-l.Start.X, p.Y-l.Start.Y)
	}
	t := ((p.X-l.Start.X)*dx + (p.Y-l.Start.Y)*dy) / lengthSquared
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(l.Start.X+t*dx), p.Y-(l.Start.Y+t*dy))
}
