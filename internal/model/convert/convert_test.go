package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapfront/extension/internal/model"
	"github.com/mapfront/extension/internal/overlay"
	"gorm.io/datatypes"
)

func TestFromRecordMarker(t *testing.T) {
	rec := model.Overlay{
		ID:           7,
		Type:         overlay.TypeMarker,
		Name:         "office",
		PositionMode: "coordinate",
		Lat:          "50.9375",
		Lng:          "6.9603",
		MarkerType:   "icon",
		IconFileID:   "8b3b6f74-3a9f-4c4e-9a3e-2f1f9a1c0d11",
		IconWidth:    "32",
		IconHeight:   "32",
		IconAnchorX:  "16",
		IconAnchorY:  "32",
		TitleMode:    "custom",
		CustomText:   "Head office",
		ClickMode:    "link",
		LinkURL:      "{{link_url::12}}",
		LinkTarget:   "_blank",
		ZIndex:       "5",
	}

	cfg := FromRecord(rec)
	m, ok := cfg.(overlay.MarkerConfig)
	require.True(t, ok, "expected MarkerConfig, got %T", cfg)

	assert.Equal(t, uint(7), m.ID())
	assert.Equal(t, overlay.PositionCoordinate, m.Position.Mode)
	assert.InDelta(t, 50.9375, m.Position.Coordinate.Lat, 1e-9)
	assert.InDelta(t, 6.9603, m.Position.Coordinate.Lng, 1e-9)
	assert.True(t, m.UseIcon)
	require.NotNil(t, m.IconSize)
	assert.Equal(t, 32, m.IconSize.Width)
	assert.Equal(t, 16, m.IconAnchor.X)
	assert.Equal(t, overlay.TitleCustom, m.TitleMode)
	assert.Equal(t, overlay.ClickLink, m.ClickMode)
	assert.True(t, m.LinkNewTab)
	require.NotNil(t, m.ZIndex)
	assert.Equal(t, 5, *m.ZIndex)
}

func TestFromRecordMarkerMissingIconSize(t *testing.T) {
	rec := model.Overlay{
		ID:         3,
		Type:       overlay.TypeMarker,
		MarkerType: "icon",
		IconWidth:  "32",
		// IconHeight left empty by the editor
	}

	m := FromRecord(rec).(overlay.MarkerConfig)
	assert.True(t, m.UseIcon)
	assert.Nil(t, m.IconSize, "size must be nil when either dimension is missing")
}

func TestFromRecordAddressPosition(t *testing.T) {
	rec := model.Overlay{
		Type:         overlay.TypeInfoWindow,
		PositionMode: "address",
		Address:      "Domkloster 4, Cologne",
	}

	w := FromRecord(rec).(overlay.InfoWindowConfig)
	assert.Equal(t, overlay.PositionAddress, w.Position.Mode)
	assert.Equal(t, "Domkloster 4, Cologne", w.Position.Address)
}

func TestFromRecordPolygonVertices(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"three vertices", `[{"lat":1,"lng":2},{"lat":3,"lng":4},{"lat":5,"lng":6}]`, 3},
		{"missing coords default to zero", `[{"lat":1},{},{"lng":2}]`, 3},
		{"malformed blob", `{"lat":1}`, 0},
		{"empty", ``, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := model.Overlay{
				Type:     overlay.TypePolygon,
				Vertices: datatypes.JSON(tt.raw),
			}
			p := FromRecord(rec).(overlay.PolygonConfig)
			require.Len(t, p.Path, tt.want)
		})
	}

	t.Run("defaults are zero", func(t *testing.T) {
		rec := model.Overlay{
			Type:     overlay.TypePolygon,
			Vertices: datatypes.JSON(`[{"lat":9.5}]`),
		}
		p := FromRecord(rec).(overlay.PolygonConfig)
		require.Len(t, p.Path, 1)
		assert.InDelta(t, 9.5, p.Path[0].Lat, 1e-9)
		assert.Zero(t, p.Path[0].Lng)
	})
}

func TestFromRecordKmlLayer(t *testing.T) {
	rec := model.Overlay{
		Type:         overlay.TypeKmlLayer,
		KmlURL:       "https://example.org/track.kml",
		KmlClickable: true,
	}

	k := FromRecord(rec).(overlay.KmlLayerConfig)
	assert.Equal(t, "https://example.org/track.kml", k.URL)
	assert.True(t, k.Clickable)
	assert.False(t, k.PreserveViewport)
	assert.Nil(t, k.ZIndex)
}

func TestFromRecordUnknownType(t *testing.T) {
	rec := model.Overlay{ID: 9, Type: "heatmap"}

	u, ok := FromRecord(rec).(overlay.UnknownConfig)
	require.True(t, ok)
	assert.Equal(t, "heatmap", u.Type)
	assert.Equal(t, uint(9), u.ID())
}
