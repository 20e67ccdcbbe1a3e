// pkg/core/latlng.go
package core

// LatLng is a WGS 84 geographic coordinate
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point is a pixel offset relative to an anchor
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is an explicit pixel dimension pair
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Bounds is a geographic bounding box spanning all overlay positions of a map
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MinLng float64 `json:"minLng"`
	MaxLat float64 `json:"maxLat"`
	MaxLng float64 `json:"maxLng"`
}

// Center returns the midpoint of the bounds
func (b Bounds) Center() LatLng {
	return LatLng{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lng: (b.MinLng + b.MaxLng) / 2,
	}
}

// Extend grows the bounds to include p. The zero Bounds already spans the
// origin; callers seed the bounds from a first point before extending
// (see geo.BoundsFromPositions), since {0,0} is a valid overlay position.
func (b *Bounds) Extend(p LatLng) {
	if p.Lat < b.MinLat {
		b.MinLat = p.Lat
	}
	if p.Lat > b.MaxLat {
		b.MaxLat = p.Lat
	}
	if p.Lng < b.MinLng {
		b.MinLng = p.Lng
	}
	if p.Lng > b.MaxLng {
		b.MaxLng = p.Lng
	}
}
