// Package translate builds map overlay objects from their typed
// configurations and attaches them to a target map object graph.
package translate

import (
	"fmt"
	"log/slog"

	"github.com/mapfront/extension/internal/files"
	"github.com/mapfront/extension/internal/inserttag"
	"github.com/mapfront/extension/internal/overlay"
	"github.com/mapfront/extension/internal/template"
	"github.com/mapfront/extension/pkg/core"
)

// PositionResolver resolves an overlay position to a coordinate
type PositionResolver interface {
	Resolve(pos overlay.Position) (core.LatLng, bool)
}

// Dependencies holds the collaborators the translator needs
type Dependencies struct {
	Resolver   PositionResolver
	Files      files.Resolver
	Templates  template.Renderer
	InsertTags inserttag.Replacer
	Logger     *slog.Logger
}

// Translator attaches overlay configurations to a map object graph.
type Translator struct {
	deps Dependencies
}

// New creates a new translator
func New(deps Dependencies) *Translator {
	if deps.InsertTags == nil {
		deps.InsertTags = inserttag.Noop{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Translator{deps: deps}
}

// Context carries per-render state. It replaces what used to be process-wide
// shared state: the mapping from overlay record id to the generated marker
// variable name, which other overlays (routing links) reference within the
// same render pass.
type Context struct {
	markerVars map[uint]string
}

// NewContext creates a fresh render context
func NewContext() *Context {
	return &Context{markerVars: make(map[uint]string)}
}

// MarkerVar returns the client-side variable name generated for the marker of
// the given overlay record within this render pass.
func (c *Context) MarkerVar(recordID uint) (string, bool) {
	name, ok := c.markerVars[recordID]
	return name, ok
}

func (c *Context) registerMarker(recordID uint, name string) {
	c.markerVars[recordID] = name
}

// ConfigError reports an invalid overlay configuration that the editor must
// fix. Unlike soft resolution failures it aborts the render and names the
// offending record.
type ConfigError struct {
	OverlayID uint
	Field     string
	Message   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("overlay record %d: %s (field %s)", e.OverlayID, e.Message, e.Field)
}

// Attach builds the overlay described by cfg and appends it to the graph.
// Exactly one top-level overlay object is created per configuration; a marker
// may additionally carry one nested info window. Unknown overlay kinds are
// skipped so future editor types do not break existing maps.
func (t *Translator) Attach(g *core.Graph, cfg overlay.Config, ctx *Context) error {
	switch c := cfg.(type) {
	case overlay.MarkerConfig:
		return t.attachMarker(g, c, ctx)
	case overlay.InfoWindowConfig:
		return t.attachInfoWindow(g, c)
	case overlay.KmlLayerConfig:
		return t.attachKmlLayer(g, c)
	case overlay.PolygonConfig:
		return t.attachPolygon(g, c)
	case overlay.UnknownConfig:
		t.deps.Logger.Debug("Skipping overlay of unknown type", "id", c.ID(), "type", c.Type)
		return nil
	default:
		t.deps.Logger.Debug("Skipping overlay of unknown type", "id", cfg.ID())
		return nil
	}
}

func varName(prefix string, id uint) string {
	return fmt.Sprintf("%s_%d", prefix, id)
}

func boolPtr(v bool) *bool { return &v }
