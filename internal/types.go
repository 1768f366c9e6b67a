package internal

// Points are plain values. Every vertex list built during clipping holds its
// own copies, so a result never aliases the polygons it was computed from.
type Point struct {
	X float64
	Y float64
}

// A directed segment. The side to the left of Start->End is "inside".
type Line struct {
	Start Point
	End   Point
}

// An ordered cycle of vertices. The last vertex connects back to the first.
type Polygon struct {
	Points []Point
}

type PolygonList []Polygon
