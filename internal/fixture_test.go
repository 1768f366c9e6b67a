package internal

import (
	"embed"
	"log"
	"math"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each holds the clip polygon first and the input polygon second.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) (clipPolygon, inputPolygon Polygon) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	polygons, err := ReadSVGPolygons(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(polygons) != 2 {
		log.Fatalf("Expected 2 polygons in fixture %q, found %d", name, len(polygons))
	}
	return polygons[0], polygons[1]
}

// Some ad hoc code specified fixtures

// Counterclockwise axis aligned square
func Square(minX, minY, size float64) Polygon {
	return Polygon{[]Point{
		{minX, minY},
		{minX + size, minY},
		{minX + size, minY + size},
		{minX, minY + size},
	}}
}

func SimpleStar() Polygon {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{points}
}

// A five pointed star drawn without lifting the pen: vertices 0, 2, 4, 1, 3 of
// a regular pentagon. Every turn is left, but it winds around twice.
func Pentagram(radius float64) Polygon {
	var points []Point
	for i := 0; i < 5; i++ {
		angle := math.Pi/2 + 2*math.Pi*float64(i*2%5)/5
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{points}
}

// The two shapes from the demo
func DemoSquare() Polygon {
	return Polygon{[]Point{{150, 150}, {200, 150}, {200, 200}, {150, 200}}}
}

// Note that this winds clockwise
func DemoTriangle() Polygon {
	return Polygon{[]Point{{100, 150}, {200, 250}, {300, 200}}}
}
