package internal

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// Read the outer ring of every polygon in a GeoJSON document. The document
// may be a FeatureCollection, a single Feature, or a bare geometry. Holes are
// ignored, and the closing vertex GeoJSON repeats is dropped.
func ReadGeoJSONPolygons(data []byte) (PolygonList, error) {
	geometries, err := unmarshalGeometries(data)
	if err != nil {
		return nil, err
	}

	var polygons PolygonList
	for _, geometry := range geometries {
		switch g := geometry.(type) {
		case orb.Polygon:
			polygons = appendOuterRing(polygons, g)
		case orb.MultiPolygon:
			for _, p := range g {
				polygons = appendOuterRing(polygons, p)
			}
		case orb.Ring:
			polygons = append(polygons, polygonFromRing(g))
		}
	}
	if len(polygons) == 0 {
		return nil, errors.New("no polygons found in geojson")
	}
	return polygons, nil
}

func unmarshalGeometries(data []byte) ([]orb.Geometry, error) {
	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil && len(fc.Features) > 0 {
		geometries := make([]orb.Geometry, 0, len(fc.Features))
		for _, f := range fc.Features {
			geometries = append(geometries, f.Geometry)
		}
		return geometries, nil
	}
	if f, err := geojson.UnmarshalFeature(data); err == nil && f.Geometry != nil {
		return []orb.Geometry{f.Geometry}, nil
	}
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, errors.Wrap(err, "parsing geojson")
	}
	return []orb.Geometry{g.Geometry()}, nil
}

func appendOuterRing(polygons PolygonList, p orb.Polygon) PolygonList {
	if len(p) == 0 {
		return polygons
	}
	return append(polygons, polygonFromRing(p[0]))
}

func polygonFromRing(ring orb.Ring) Polygon {
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}
	points := make([]Point, len(ring))
	for i, p := range ring {
		points[i] = Point{p.X(), p.Y()}
	}
	return Polygon{Points: points}
}

func (poly Polygon) ToOrb() orb.Polygon {
	ring := make(orb.Ring, 0, len(poly.Points)+1)
	for _, p := range poly.Points {
		ring = append(ring, orb.Point{p.X, p.Y})
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return orb.Polygon{ring}
}

// A FeatureCollection holding the polygon as its only feature.
func MarshalGeoJSON(poly Polygon) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(poly.ToOrb()))
	data, err := fc.MarshalJSON()
	return data, errors.Wrap(err, "encoding geojson")
}
