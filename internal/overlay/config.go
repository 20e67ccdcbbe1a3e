// Package overlay defines the typed overlay configurations produced from
// persisted editor records. Each overlay kind carries exactly the fields it
// needs; the translator switches exhaustively over the sealed Config
// interface.
package overlay

import "github.com/mapfront/extension/pkg/core"

// Discriminator values stored in the editor's type field
const (
	TypeMarker     = "marker"
	TypeInfoWindow = "infowindow"
	TypeKmlLayer   = "kml"
	TypePolygon    = "polygon"
)

// PositionMode selects how an overlay's location is determined
type PositionMode string

const (
	// PositionCoordinate uses the editor-entered lat/lng directly
	PositionCoordinate PositionMode = "coordinate"
	// PositionAddress geocodes a static address string
	PositionAddress PositionMode = "address"
)

// Position is the editor-configured location of an overlay
type Position struct {
	Mode       PositionMode
	Coordinate core.LatLng // valid when Mode == PositionCoordinate
	Address    string      // valid when Mode == PositionAddress
}

// ClickMode selects the marker click interaction
type ClickMode string

const (
	ClickNone       ClickMode = ""
	ClickLink       ClickMode = "link"
	ClickInfoWindow ClickMode = "infowindow"
)

// TitleMode selects where a marker title comes from
type TitleMode string

const (
	TitleField  TitleMode = "title"
	TitleCustom TitleMode = "custom"
)

// Config is the sealed interface over the overlay kinds. The unexported
// method keeps the set of implementations closed to this package.
type Config interface {
	// ID returns the persisted editor record id
	ID() uint
	sealed()
}

// Common holds the fields shared by every overlay kind
type Common struct {
	RecordID uint
	Name     string
}

// ID returns the persisted editor record id
func (c Common) ID() uint { return c.RecordID }

func (Common) sealed() {}

// MarkerConfig configures a point marker overlay
type MarkerConfig struct {
	Common
	Position   Position
	UseIcon    bool
	IconFileID string // managed file uuid
	IconSize   *core.Size
	IconAnchor core.Point
	Animation  string
	ZIndex     *int
	TitleMode  TitleMode
	Title      string
	CustomText string
	ClickMode  ClickMode
	LinkURL    string
	LinkNewTab bool
	// info window shown on click
	WindowContent string
	WindowOffset  core.Point
	WindowZIndex  *int
}

// InfoWindowConfig configures a standalone info window overlay
type InfoWindowConfig struct {
	Common
	Position   Position
	Content    string
	Width      *int
	Height     *int
	AddRouting bool
	ZIndex     *int
}

// KmlLayerConfig configures a KML layer overlay
type KmlLayerConfig struct {
	Common
	URL                 string
	Clickable           bool
	PreserveViewport    bool
	ScreenOverlays      bool
	SuppressInfoWindows bool
	ZIndex              *int
}

// PolygonConfig configures a polygon overlay
type PolygonConfig struct {
	Common
	Path          []core.LatLng
	StrokeWeight  *int
	StrokeColor   string
	StrokeOpacity *float64
	FillColor     string
	FillOpacity   *float64
	ZIndex        *int
}

// UnknownConfig is produced for discriminator values this subsystem does not
// recognize. The translator treats it as a no-op so future overlay kinds do
// not break existing maps.
type UnknownConfig struct {
	Common
	Type string
}
