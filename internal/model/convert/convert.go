// Package convert maps flat persisted overlay records to their typed
// configurations. Editor inputs are strings; empty or unparsable optional
// fields convert to nil rather than zero so the translator can tell "unset"
// from "0".
package convert

import (
	"encoding/json"
	"strconv"

	"github.com/mapfront/extension/internal/model"
	"github.com/mapfront/extension/internal/overlay"
	"github.com/mapfront/extension/pkg/core"
)

// FromRecord converts a persisted overlay record into its typed
// configuration. Unrecognized discriminator values convert to an
// UnknownConfig, which the translator ignores.
func FromRecord(rec model.Overlay) overlay.Config {
	common := overlay.Common{RecordID: rec.ID, Name: rec.Name}

	switch rec.Type {
	case overlay.TypeMarker:
		return overlay.MarkerConfig{
			Common:        common,
			Position:      position(rec),
			UseIcon:       rec.MarkerType == "icon",
			IconFileID:    rec.IconFileID,
			IconSize:      size(rec.IconWidth, rec.IconHeight),
			IconAnchor:    core.Point{X: atoiDefault(rec.IconAnchorX, 0), Y: atoiDefault(rec.IconAnchorY, 0)},
			Animation:     rec.Animation,
			ZIndex:        intPtr(rec.ZIndex),
			TitleMode:     overlay.TitleMode(rec.TitleMode),
			Title:         rec.Title,
			CustomText:    rec.CustomText,
			ClickMode:     overlay.ClickMode(rec.ClickMode),
			LinkURL:       rec.LinkURL,
			LinkNewTab:    rec.LinkTarget == "_blank",
			WindowContent: rec.WindowContent,
			WindowOffset:  core.Point{X: atoiDefault(rec.WindowOffsetX, 0), Y: atoiDefault(rec.WindowOffsetY, 0)},
			WindowZIndex:  intPtr(rec.ZIndex),
		}
	case overlay.TypeInfoWindow:
		return overlay.InfoWindowConfig{
			Common:     common,
			Position:   position(rec),
			Content:    rec.WindowContent,
			Width:      intPtr(rec.WindowWidth),
			Height:     intPtr(rec.WindowHeight),
			AddRouting: rec.AddRouting,
			ZIndex:     intPtr(rec.ZIndex),
		}
	case overlay.TypeKmlLayer:
		return overlay.KmlLayerConfig{
			Common:              common,
			URL:                 rec.KmlURL,
			Clickable:           rec.KmlClickable,
			PreserveViewport:    rec.KmlPreserveViewport,
			ScreenOverlays:      rec.KmlScreenOverlays,
			SuppressInfoWindows: rec.KmlSuppressInfoWindows,
			ZIndex:              intPtr(rec.ZIndex),
		}
	case overlay.TypePolygon:
		return overlay.PolygonConfig{
			Common:        common,
			Path:          vertices(rec.Vertices),
			StrokeWeight:  intPtr(rec.StrokeWeight),
			StrokeColor:   rec.StrokeColor,
			StrokeOpacity: floatPtr(rec.StrokeOpacity),
			FillColor:     rec.FillColor,
			FillOpacity:   floatPtr(rec.FillOpacity),
			ZIndex:        intPtr(rec.ZIndex),
		}
	default:
		return overlay.UnknownConfig{Common: common, Type: rec.Type}
	}
}

// CenterPosition converts the editor-configured map center of an element
// into a resolvable position.
func CenterPosition(el model.MapElement) overlay.Position {
	if el.CenterMode == string(overlay.PositionAddress) {
		return overlay.Position{Mode: overlay.PositionAddress, Address: el.CenterAddress}
	}
	return overlay.Position{
		Mode: overlay.PositionCoordinate,
		Coordinate: core.LatLng{
			Lat: atofDefault(el.CenterLat, 0),
			Lng: atofDefault(el.CenterLng, 0),
		},
	}
}

// position builds the typed position from the record's positioning fields
func position(rec model.Overlay) overlay.Position {
	if rec.PositionMode == string(overlay.PositionAddress) {
		return overlay.Position{Mode: overlay.PositionAddress, Address: rec.Address}
	}
	return overlay.Position{
		Mode: overlay.PositionCoordinate,
		Coordinate: core.LatLng{
			Lat: atofDefault(rec.Lat, 0),
			Lng: atofDefault(rec.Lng, 0),
		},
	}
}

// vertices decodes a serialized array of lat/lng pairs. Entries with missing
// coordinates decode to 0; a malformed blob yields no vertices at all.
func vertices(raw []byte) []core.LatLng {
	if len(raw) == 0 {
		return nil
	}
	var path []core.LatLng
	if err := json.Unmarshal(raw, &path); err != nil {
		return nil
	}
	return path
}

// size returns a Size only when both dimensions are present and parse
func size(w, h string) *core.Size {
	wi := intPtr(w)
	hi := intPtr(h)
	if wi == nil || hi == nil {
		return nil
	}
	return &core.Size{Width: *wi, Height: *hi}
}

func intPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func floatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func atoiDefault(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func atofDefault(s string, def float64) float64 {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return def
}
