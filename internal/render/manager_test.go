package render

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapfront/extension/internal/files"
	"github.com/mapfront/extension/internal/model"
	"github.com/mapfront/extension/internal/overlay"
	"github.com/mapfront/extension/internal/storage/memory"
	"github.com/mapfront/extension/internal/translate"
	"github.com/mapfront/extension/pkg/core"
)

// coordinateResolver passes coordinates through and resolves one known
// address, mirroring a warmed geocode cache.
type coordinateResolver struct{}

func (coordinateResolver) Resolve(pos overlay.Position) (core.LatLng, bool) {
	switch pos.Mode {
	case overlay.PositionCoordinate:
		return pos.Coordinate, true
	case overlay.PositionAddress:
		if pos.Address == "Main Square 1, Vienna" {
			return core.LatLng{Lat: 48.2082, Lng: 16.3738}, true
		}
	}
	return core.LatLng{}, false
}

func newTestManager(t *testing.T, store *memory.Backend) *Manager {
	t.Helper()
	translator := translate.New(translate.Dependencies{
		Resolver: coordinateResolver{},
		Files:    files.StaticResolver{},
	})
	m, err := NewManager(store, translator, coordinateResolver{}, nil, nil)
	require.NoError(t, err)
	return m
}

func TestRenderMissingElement(t *testing.T) {
	m := newTestManager(t, memory.New())

	_, err := m.Render(context.Background(), 99)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestRenderUnpublishedElement(t *testing.T) {
	store := memory.New()
	store.PutMapElement(model.MapElement{ID: 4, Title: "Draft map", Published: false})
	m := newTestManager(t, store)

	_, err := m.Render(context.Background(), 4)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestRenderBackendScopePlaceholder(t *testing.T) {
	store := memory.New()
	store.PutMapElement(model.MapElement{
		ID:        7,
		Title:     "Admin preview",
		Scope:     "backend",
		Published: true,
	})
	m := newTestManager(t, store)

	result, err := m.Render(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, BackendPlaceholder, result.HTML)
	assert.Nil(t, result.Graph)
}

func TestRenderFrontendElement(t *testing.T) {
	store := memory.New()
	store.PutMapElement(model.MapElement{
		ID:         5,
		Title:      "Store locator",
		Scope:      "frontend",
		CenterMode: "coordinate",
		CenterLat:  "48.2",
		CenterLng:  "16.37",
		Zoom:       13,
		MapType:    "roadmap",
		Width:      640,
		Height:     480,
		APIKey:     "test-key",
		Published:  true,
	})
	store.PutOverlay(model.Overlay{
		ID:           1,
		MapElementID: 5,
		Type:         overlay.TypeMarker,
		PositionMode: "coordinate",
		Lat:          "48.21",
		Lng:          "16.38",
		MarkerType:   "pin",
		TitleMode:    "title",
		Title:        "Main store",
		Published:    true,
	})
	store.PutOverlay(model.Overlay{
		ID:           2,
		MapElementID: 5,
		Type:         overlay.TypePolygon,
		Vertices:     []byte(`[{"lat":48.2,"lng":16.3},{"lat":48.3,"lng":16.4},{"lat":48.25,"lng":16.5}]`),
		FillColor:    "00ff00",
		Published:    true,
	})
	m := newTestManager(t, store)

	result, err := m.Render(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, uint(5), result.MapID)
	assert.Equal(t, "Store locator", result.Title)
	assert.Equal(t, "test-key", result.APIKey)

	require.NotNil(t, result.Graph)
	assert.Equal(t, 2, result.Graph.OverlayCount())
	assert.Equal(t, 13, result.Graph.Zoom)
	require.NotNil(t, result.Graph.Center)
	assert.InDelta(t, 48.2, result.Graph.Center.Lat, 1e-9)
	require.NotNil(t, result.Graph.Size)
	assert.Equal(t, 640, result.Graph.Size.Width)

	assert.Contains(t, result.HTML, `id="map_5"`)
	assert.Contains(t, result.HTML, `width:640px;height:480px`)
	assert.Contains(t, result.HTML, `data-map="5"`)
	assert.Contains(t, result.HTML, `"markers"`)
}

func TestRenderSkipsUnpublishedOverlays(t *testing.T) {
	store := memory.New()
	store.PutMapElement(model.MapElement{
		ID: 5, Scope: "frontend", CenterMode: "coordinate",
		CenterLat: "1", CenterLng: "1", Published: true,
	})
	store.PutOverlay(model.Overlay{
		ID: 1, MapElementID: 5, Type: overlay.TypeMarker,
		PositionMode: "coordinate", Lat: "2", Lng: "2",
		MarkerType: "pin", Published: false,
	})
	m := newTestManager(t, store)

	result, err := m.Render(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Graph.OverlayCount())
}

func TestRenderFitsViewportWhenCenterUnresolved(t *testing.T) {
	store := memory.New()
	store.PutMapElement(model.MapElement{
		ID:            5,
		Scope:         "frontend",
		CenterMode:    "address",
		CenterAddress: "nowhere at all",
		Published:     true,
	})
	// symmetric about the equator so the mercator midpoint is exact
	store.PutOverlay(model.Overlay{
		ID: 1, MapElementID: 5, Type: overlay.TypeMarker,
		PositionMode: "coordinate", Lat: "-20", Lng: "20",
		MarkerType: "pin", Published: true,
	})
	store.PutOverlay(model.Overlay{
		ID: 2, MapElementID: 5, Type: overlay.TypeMarker,
		PositionMode: "coordinate", Lat: "20", Lng: "40",
		MarkerType: "pin", Published: true,
	})
	m := newTestManager(t, store)

	result, err := m.Render(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, result.Graph.Center)
	assert.InDelta(t, 0.0, result.Graph.Center.Lat, 1e-6)
	assert.InDelta(t, 30.0, result.Graph.Center.Lng, 1e-6)
}

func TestRenderCentersPolygonOnlyMapOnCentroid(t *testing.T) {
	store := memory.New()
	store.PutMapElement(model.MapElement{
		ID:            5,
		Scope:         "frontend",
		CenterMode:    "address",
		CenterAddress: "nowhere at all",
		Published:     true,
	})
	// the square includes a vertex at the origin
	store.PutOverlay(model.Overlay{
		ID: 1, MapElementID: 5, Type: overlay.TypePolygon,
		Vertices:  []byte(`[{"lat":0,"lng":0},{"lat":0,"lng":2},{"lat":2,"lng":2},{"lat":2,"lng":0}]`),
		Published: true,
	})
	m := newTestManager(t, store)

	result, err := m.Render(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, result.Graph.Center)
	assert.InDelta(t, 1.0, result.Graph.Center.Lat, 1e-9)
	assert.InDelta(t, 1.0, result.Graph.Center.Lng, 1e-9)
}

func TestRenderAbortsOnInvalidOverlay(t *testing.T) {
	store := memory.New()
	store.PutMapElement(model.MapElement{
		ID: 5, Scope: "frontend", CenterMode: "coordinate",
		CenterLat: "1", CenterLng: "1", Published: true,
	})
	store.PutOverlay(model.Overlay{
		ID: 12, MapElementID: 5, Type: overlay.TypeMarker,
		PositionMode: "coordinate", Lat: "2", Lng: "2",
		MarkerType: "icon", IconFileID: "0e0f7a3e-8f4c-4f52-9f0f-1d2c3b4a5968",
		Published: true,
	})
	m := newTestManager(t, store)

	_, err := m.Render(context.Background(), 5)
	require.Error(t, err)

	var cfgErr *translate.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, uint(12), cfgErr.OverlayID)
	assert.True(t, strings.Contains(err.Error(), "overlay record 12"))
}
