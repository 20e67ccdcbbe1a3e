package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsExtendKeepsOrigin(t *testing.T) {
	// polygon vertices with missing coordinates default to 0, so {0,0} is a
	// legitimate position and must stay inside the bounds
	b := Bounds{MinLat: 0, MaxLat: 0, MinLng: 0, MaxLng: 0}
	b.Extend(LatLng{Lat: 10, Lng: 20})

	assert.Equal(t, 0.0, b.MinLat)
	assert.Equal(t, 0.0, b.MinLng)
	assert.Equal(t, 10.0, b.MaxLat)
	assert.Equal(t, 20.0, b.MaxLng)

	c := b.Center()
	assert.InDelta(t, 5.0, c.Lat, 1e-9)
	assert.InDelta(t, 10.0, c.Lng, 1e-9)
}

func TestBoundsExtend(t *testing.T) {
	b := Bounds{MinLat: 48.1, MaxLat: 48.1, MinLng: 11.6, MaxLng: 11.6}
	b.Extend(LatLng{Lat: 52.5, Lng: 13.4})
	b.Extend(LatLng{Lat: 50.0, Lng: 6.0})

	assert.InDelta(t, 48.1, b.MinLat, 1e-9)
	assert.InDelta(t, 52.5, b.MaxLat, 1e-9)
	assert.InDelta(t, 6.0, b.MinLng, 1e-9)
	assert.InDelta(t, 13.4, b.MaxLng, 1e-9)
}
