package translate

import (
	"github.com/mapfront/extension/internal/overlay"
	"github.com/mapfront/extension/internal/util"
	"github.com/mapfront/extension/pkg/core"
)

// attachPolygon builds a polygon overlay from the configured vertex path.
// Colors pass the hex sanitizer so malformed editor input degrades to black
// instead of breaking the render.
func (t *Translator) attachPolygon(g *core.Graph, c overlay.PolygonConfig) error {
	p := &core.Polygon{
		Variable: varName("polygon", c.ID()),
		Path:     c.Path,
	}

	if c.StrokeWeight != nil {
		p.Style.StrokeWeight = c.StrokeWeight
	}
	if c.StrokeColor != "" {
		p.Style.StrokeColor = util.SanitizeHexColor(c.StrokeColor)
	}
	if c.StrokeOpacity != nil {
		p.Style.StrokeOpacity = c.StrokeOpacity
	}
	if c.FillColor != "" {
		p.Style.FillColor = util.SanitizeHexColor(c.FillColor)
	}
	if c.FillOpacity != nil {
		p.Style.FillOpacity = c.FillOpacity
	}
	if c.ZIndex != nil {
		p.Style.ZIndex = c.ZIndex
	}

	g.AddPolygon(p)
	return nil
}
