package translate

import (
	"fmt"

	"github.com/mapfront/extension/internal/overlay"
	"github.com/mapfront/extension/pkg/core"
)

// attachInfoWindow builds a standalone info window overlay. The routing
// snippet is appended only when routing is enabled and a position could be
// resolved; a window without a resolvable position is still attached.
func (t *Translator) attachInfoWindow(g *core.Graph, c overlay.InfoWindowConfig) error {
	w := &core.InfoWindow{
		Variable: varName("window", c.ID()),
	}

	content := c.Content

	pos, ok := t.deps.Resolver.Resolve(c.Position)
	if ok {
		w.Position = &pos
	}

	if c.AddRouting && ok {
		snippet, err := t.deps.Templates.Render("routing", map[string]any{
			"Lat": pos.Lat,
			"Lng": pos.Lng,
		})
		if err != nil {
			t.deps.Logger.Warn("Routing snippet could not be rendered", "id", c.ID(), "error", err)
		} else {
			content += snippet
		}
	}

	if c.Width != nil && c.Height != nil {
		content = fmt.Sprintf(`<div style="width:%dpx;height:%dpx;">%s</div>`, *c.Width, *c.Height, content)
	}

	w.Content = content
	if c.ZIndex != nil {
		w.ZIndex = c.ZIndex
	}

	g.AddInfoWindow(w)
	return nil
}
