package translate

import (
	"github.com/mapfront/extension/internal/overlay"
	"github.com/mapfront/extension/pkg/core"
)

// attachKmlLayer builds a KML layer overlay. Display flags are copied into
// the layer options only when truthy in the config; the client must not see
// an explicit false where the editor left the flag untouched.
func (t *Translator) attachKmlLayer(g *core.Graph, c overlay.KmlLayerConfig) error {
	l := &core.KmlLayer{
		Variable: varName("kml", c.ID()),
		URL:      c.URL,
	}

	if c.Clickable {
		l.Options.Clickable = boolPtr(true)
	}
	if c.PreserveViewport {
		l.Options.PreserveViewport = boolPtr(true)
	}
	if c.ScreenOverlays {
		l.Options.ScreenOverlays = boolPtr(true)
	}
	if c.SuppressInfoWindows {
		l.Options.SuppressInfoWindows = boolPtr(true)
	}
	if c.ZIndex != nil {
		l.Options.ZIndex = c.ZIndex
	}

	g.AddKmlLayer(l)
	return nil
}
