package translate

import (
	"github.com/mapfront/extension/internal/overlay"
	"github.com/mapfront/extension/pkg/core"
)

// attachMarker builds a marker overlay and appends it to the graph. The
// marker's variable name is recorded in the render context so later overlays
// can reference it by record id.
func (t *Translator) attachMarker(g *core.Graph, c overlay.MarkerConfig, ctx *Context) error {
	pos, ok := t.deps.Resolver.Resolve(c.Position)
	if !ok {
		t.deps.Logger.Warn("Marker position could not be resolved, skipping overlay", "id", c.ID())
		return nil
	}

	m := &core.Marker{
		Variable: varName("marker", c.ID()),
		Position: pos,
	}

	if c.UseIcon {
		if c.IconSize == nil {
			return &ConfigError{
				OverlayID: c.ID(),
				Field:     "iconSize",
				Message:   "an icon marker requires explicit width and height",
			}
		}
		if path, found := t.deps.Files.PathFromFileID(c.IconFileID); found {
			m.Icon = &core.Icon{
				Path:   path,
				Size:   *c.IconSize,
				Anchor: c.IconAnchor,
			}
		} else {
			t.deps.Logger.Warn("Marker icon file could not be resolved", "id", c.ID(), "fileId", c.IconFileID)
		}
	}

	if c.Animation != "" {
		m.Animation = c.Animation
	}
	if c.ZIndex != nil {
		m.ZIndex = c.ZIndex
	}

	switch c.TitleMode {
	case overlay.TitleCustom:
		m.Title = c.CustomText
	default:
		m.Title = c.Title
	}

	switch c.ClickMode {
	case overlay.ClickLink:
		if c.LinkURL != "" {
			m.OnClick = &core.ClickAction{
				URL:      t.deps.InsertTags.Replace(c.LinkURL),
				NewTab:   c.LinkNewTab,
				Variable: m.Variable,
			}
		}
	case overlay.ClickInfoWindow:
		offset := c.WindowOffset
		m.InfoWindow = &core.InfoWindow{
			Variable:    varName("marker", c.ID()) + "_window",
			Content:     c.WindowContent,
			PixelOffset: &offset,
			ZIndex:      c.WindowZIndex,
			AutoOpen:    true,
		}
	}

	g.AddMarker(m)
	ctx.registerMarker(c.ID(), m.Variable)
	return nil
}
