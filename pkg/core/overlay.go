// pkg/core/overlay.go
package core

// Icon is a custom marker image
type Icon struct {
	Path   string `json:"path"`
	Size   Size   `json:"size"`
	Anchor Point  `json:"anchor"`
}

// ClickAction is a client-side navigation handler attached to a marker
type ClickAction struct {
	URL      string `json:"url"`
	NewTab   bool   `json:"newTab"`
	Variable string `json:"variable"` // marker variable the handler is bound to
}

// Marker represents a point overlay
type Marker struct {
	Variable   string       `json:"variable"`
	Position   LatLng       `json:"position"`
	Title      string       `json:"title,omitempty"`
	Icon       *Icon        `json:"icon,omitempty"`
	Animation  string       `json:"animation,omitempty"`
	ZIndex     *int         `json:"zIndex,omitempty"`
	OnClick    *ClickAction `json:"onClick,omitempty"`
	InfoWindow *InfoWindow  `json:"infoWindow,omitempty"`
}

// InfoWindow is a popup content box anchored to a position or a marker
type InfoWindow struct {
	Variable    string  `json:"variable"`
	Position    *LatLng `json:"position,omitempty"`
	Content     string  `json:"content"`
	PixelOffset *Point  `json:"pixelOffset,omitempty"`
	ZIndex      *int    `json:"zIndex,omitempty"`
	AutoOpen    bool    `json:"autoOpen,omitempty"`
}

// KmlOptions carries the optional display flags of a KML layer.
// Nil pointers mean the flag is absent from the layer options, not false.
type KmlOptions struct {
	Clickable           *bool `json:"clickable,omitempty"`
	PreserveViewport    *bool `json:"preserveViewport,omitempty"`
	ScreenOverlays      *bool `json:"screenOverlays,omitempty"`
	SuppressInfoWindows *bool `json:"suppressInfoWindows,omitempty"`
	ZIndex              *int  `json:"zIndex,omitempty"`
}

// KmlLayer is a layer rendered from a KML file by URL
type KmlLayer struct {
	Variable string     `json:"variable"`
	URL      string     `json:"url"`
	Options  KmlOptions `json:"options"`
}

// PolygonStyle carries the optional stroke and fill settings of a polygon
type PolygonStyle struct {
	StrokeWeight  *int     `json:"strokeWeight,omitempty"`
	StrokeColor   string   `json:"strokeColor,omitempty"`
	StrokeOpacity *float64 `json:"strokeOpacity,omitempty"`
	FillColor     string   `json:"fillColor,omitempty"`
	FillOpacity   *float64 `json:"fillOpacity,omitempty"`
	ZIndex        *int     `json:"zIndex,omitempty"`
}

// Polygon is a closed shape overlay built from a vertex path
type Polygon struct {
	Variable string       `json:"variable"`
	Path     []LatLng     `json:"path"`
	Style    PolygonStyle `json:"style"`
}
