package geo

import (
	"errors"
	"fmt"

	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/wroge/wgs84"

	"github.com/mapfront/extension/pkg/core"
)

// Coordinates arrive as WGS 84 (EPSG:4326) from the editor and the geocoder.
// Viewport fitting happens in web mercator (EPSG:3857), matching what the
// client-side map library renders in.

// ErrEmptyPath is returned when a polygon path has no vertices
var ErrEmptyPath = errors.New("empty vertex path")

// Project3857 converts a WGS 84 coordinate to web mercator meters
func Project3857(ll core.LatLng) (x, y float64) {
	epsg := wgs84.EPSG()
	f := epsg.Transform(4326, 3857)
	x, y, _ = f(ll.Lng, ll.Lat, 0)
	return x, y
}

// Unproject3857 converts web mercator meters back to a WGS 84 coordinate
func Unproject3857(x, y float64) core.LatLng {
	epsg := wgs84.EPSG()
	f := epsg.Transform(3857, 4326)
	lng, lat, _ := f(x, y, 0)
	return core.LatLng{Lat: lat, Lng: lng}
}

// RingFromPath builds a closed simplefeatures polygon from a vertex path.
// The ring is closed implicitly; the editor does not repeat the first vertex.
func RingFromPath(path []core.LatLng) (geom.Polygon, error) {
	if len(path) == 0 {
		return geom.Polygon{}, ErrEmptyPath
	}
	coords := make([]float64, 0, (len(path)+1)*2)
	for _, ll := range path {
		coords = append(coords, ll.Lng, ll.Lat)
	}
	// close the ring
	coords = append(coords, path[0].Lng, path[0].Lat)

	seq := geom.NewSequence(coords, geom.DimXY)
	ring, err := geom.NewLineString(seq)
	if err != nil {
		return geom.Polygon{}, fmt.Errorf("error building ring: %w", err)
	}
	poly, err := geom.NewPolygon([]geom.LineString{ring})
	if err != nil {
		return geom.Polygon{}, fmt.Errorf("error building polygon: %w", err)
	}
	return poly, nil
}

// Centroid returns the centroid of a polygon path. Degenerate paths yield
// false.
func Centroid(path []core.LatLng) (core.LatLng, bool) {
	poly, err := RingFromPath(path)
	if err != nil {
		return core.LatLng{}, false
	}
	c, ok := poly.AsGeometry().Centroid().XY()
	if !ok {
		return core.LatLng{}, false
	}
	return core.LatLng{Lat: c.Y, Lng: c.X}, true
}

// CentroidOfPaths returns the combined area-weighted centroid of several
// polygon paths, used to center a map whose only overlays are polygons.
// Degenerate paths are skipped; overlapping polygons yield false and the
// caller falls back to bounds fitting.
func CentroidOfPaths(paths [][]core.LatLng) (core.LatLng, bool) {
	polys := make([]geom.Polygon, 0, len(paths))
	for _, path := range paths {
		poly, err := RingFromPath(path)
		if err != nil {
			continue
		}
		polys = append(polys, poly)
	}
	if len(polys) == 0 {
		return core.LatLng{}, false
	}

	mp, err := geom.NewMultiPolygon(polys)
	if err != nil {
		return core.LatLng{}, false
	}
	c, ok := mp.AsGeometry().Centroid().XY()
	if !ok {
		return core.LatLng{}, false
	}
	return core.LatLng{Lat: c.Y, Lng: c.X}, true
}

// FitCenter returns the midpoint of the bounds taken in web mercator space,
// the way the client library fits a viewport. Taking the midpoint in
// projected meters keeps high-latitude spans from biasing the center toward
// the equator.
func FitCenter(b core.Bounds) core.LatLng {
	minX, minY := Project3857(core.LatLng{Lat: b.MinLat, Lng: b.MinLng})
	maxX, maxY := Project3857(core.LatLng{Lat: b.MaxLat, Lng: b.MaxLng})
	return Unproject3857((minX+maxX)/2, (minY+maxY)/2)
}

// BoundsFromPositions computes the bounding box spanning all positions.
// Returns false when there are no positions to span.
func BoundsFromPositions(positions []core.LatLng) (core.Bounds, bool) {
	if len(positions) == 0 {
		return core.Bounds{}, false
	}
	b := core.Bounds{
		MinLat: positions[0].Lat, MaxLat: positions[0].Lat,
		MinLng: positions[0].Lng, MaxLng: positions[0].Lng,
	}
	for _, p := range positions[1:] {
		b.Extend(p)
	}
	return b, true
}
