package model

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

// ErrNotFound is returned by storage backends when a requested record does
// not exist.
var ErrNotFound = errors.New("record not found")

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&MapElement{},
	&Overlay{},
	&File{},
	&GeocodeEntry{},
}

// MapElement is an editor-configured map content element. Overlays reference
// it by MapElementID.
type MapElement struct {
	ID        uint      `json:"id" gorm:"primarykey;autoIncrement;"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title         string `json:"title" gorm:"size:255"`
	Scope         string `json:"scope" gorm:"size:16;default:frontend"` // frontend or backend
	CenterMode    string `json:"centerMode" gorm:"size:32"`             // coordinate or address
	CenterLat     string `json:"centerLat" gorm:"size:64"`              // editor input, may be empty
	CenterLng     string `json:"centerLng" gorm:"size:64"`
	CenterAddress string `json:"centerAddress" gorm:"size:255"`
	Zoom          int    `json:"zoom" gorm:"default:12"`
	MapType       string `json:"mapType" gorm:"size:32;default:roadmap"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	APIKey        string `json:"apiKey" gorm:"size:128"`
	Published     bool   `json:"published" gorm:"default:true"`
}

func (*MapElement) TableName() string {
	return "map_elements"
}

// Overlay is the flat persisted editor record for one map overlay. It is a
// read-only snapshot from the translator's point of view; numeric editor
// inputs are kept as strings because an empty input is distinct from zero.
type Overlay struct {
	ID        uint      `json:"id" gorm:"primarykey;autoIncrement;"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	MapElementID uint       `json:"mapElementId" gorm:"index:idx_overlay_map_element_id"`
	MapElement   MapElement `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:MapElementID;"`

	Name    string `json:"name" gorm:"size:255"`
	Type    string `json:"type" gorm:"size:32;index:idx_overlay_type"` // marker, infowindow, kml, polygon
	Sorting int    `json:"sorting" gorm:"default:0"`

	// positioning
	PositionMode string `json:"positionMode" gorm:"size:32"` // coordinate or address
	Lat          string `json:"lat" gorm:"size:64"`
	Lng          string `json:"lng" gorm:"size:64"`
	Address      string `json:"address" gorm:"size:255"`

	// marker
	MarkerType  string `json:"markerType" gorm:"size:32"` // pin or icon
	IconFileID  string `json:"iconFileId" gorm:"size:36"` // managed file uuid
	IconWidth   string `json:"iconWidth" gorm:"size:16"`
	IconHeight  string `json:"iconHeight" gorm:"size:16"`
	IconAnchorX string `json:"iconAnchorX" gorm:"size:16"`
	IconAnchorY string `json:"iconAnchorY" gorm:"size:16"`
	Animation   string `json:"animation" gorm:"size:32"`
	TitleMode   string `json:"titleMode" gorm:"size:32"` // title or custom
	Title       string `json:"title" gorm:"size:255"`
	CustomText  string `json:"customText" gorm:"size:512"`

	// interaction
	ClickMode  string `json:"clickMode" gorm:"size:32"` // link or infowindow
	LinkURL    string `json:"linkUrl" gorm:"size:512"`
	LinkTarget string `json:"linkTarget" gorm:"size:16"` // _blank for a new tab

	// info window (standalone, or nested for marker click)
	WindowContent string `json:"windowContent" gorm:"type:text"`
	WindowOffsetX string `json:"windowOffsetX" gorm:"size:16"`
	WindowOffsetY string `json:"windowOffsetY" gorm:"size:16"`
	WindowWidth   string `json:"windowWidth" gorm:"size:16"`
	WindowHeight  string `json:"windowHeight" gorm:"size:16"`
	AddRouting    bool   `json:"addRouting" gorm:"default:false"`

	// kml layer
	KmlURL                 string `json:"kmlUrl" gorm:"size:512"`
	KmlClickable           bool   `json:"kmlClickable" gorm:"default:false"`
	KmlPreserveViewport    bool   `json:"kmlPreserveViewport" gorm:"default:false"`
	KmlScreenOverlays      bool   `json:"kmlScreenOverlays" gorm:"default:false"`
	KmlSuppressInfoWindows bool   `json:"kmlSuppressInfoWindows" gorm:"default:false"`

	// polygon
	Vertices      datatypes.JSON `json:"vertices"` // JSON array of {lat,lng} pairs
	StrokeWeight  string         `json:"strokeWeight" gorm:"size:16"`
	StrokeColor   string         `json:"strokeColor" gorm:"size:16"`
	StrokeOpacity string         `json:"strokeOpacity" gorm:"size:16"`
	FillColor     string         `json:"fillColor" gorm:"size:16"`
	FillOpacity   string         `json:"fillOpacity" gorm:"size:16"`

	ZIndex    string `json:"zIndex" gorm:"size:16"`
	Published bool   `json:"published" gorm:"default:true"`
}

func (*Overlay) TableName() string {
	return "map_overlays"
}

// File maps a managed-file uuid to its path on disk
type File struct {
	ID   uint   `json:"id" gorm:"primarykey;autoIncrement;"`
	UUID string `json:"uuid" gorm:"size:36;uniqueIndex:idx_file_uuid"`
	Path string `json:"path" gorm:"size:512"`
	Name string `json:"name" gorm:"size:255"`
}

func (*File) TableName() string {
	return "managed_files"
}

// GeocodeEntry memoizes an address lookup. Entries have no TTL; a geocoded
// address is assumed stable indefinitely.
type GeocodeEntry struct {
	ID        uint      `json:"id" gorm:"primarykey;autoIncrement;"`
	CreatedAt time.Time `json:"createdAt"`
	Key       string    `json:"key" gorm:"size:512;uniqueIndex:idx_geocode_key"`
	Value     string    `json:"value" gorm:"size:255"`
}

func (*GeocodeEntry) TableName() string {
	return "geocode_entries"
}
