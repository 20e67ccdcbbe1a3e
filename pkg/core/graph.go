// pkg/core/graph.go
package core

// Graph is the target map object graph. The translator only appends to it;
// nothing in this subsystem removes or reorders overlays once attached.
type Graph struct {
	Center      *LatLng       `json:"center,omitempty"`
	Zoom        int           `json:"zoom,omitempty"`
	MapType     string        `json:"mapType,omitempty"`
	Size        *Size         `json:"size,omitempty"`
	Markers     []*Marker     `json:"markers,omitempty"`
	InfoWindows []*InfoWindow `json:"infoWindows,omitempty"`
	KmlLayers   []*KmlLayer   `json:"kmlLayers,omitempty"`
	Polygons    []*Polygon    `json:"polygons,omitempty"`
}

// AddMarker appends a marker to the graph
func (g *Graph) AddMarker(m *Marker) {
	g.Markers = append(g.Markers, m)
}

// AddInfoWindow appends a standalone info window to the graph
func (g *Graph) AddInfoWindow(w *InfoWindow) {
	g.InfoWindows = append(g.InfoWindows, w)
}

// AddKmlLayer appends a KML layer to the graph
func (g *Graph) AddKmlLayer(l *KmlLayer) {
	g.KmlLayers = append(g.KmlLayers, l)
}

// AddPolygon appends a polygon to the graph
func (g *Graph) AddPolygon(p *Polygon) {
	g.Polygons = append(g.Polygons, p)
}

// OverlayCount returns the number of top-level overlays attached so far.
// Nested info windows carried by markers are not counted.
func (g *Graph) OverlayCount() int {
	return len(g.Markers) + len(g.InfoWindows) + len(g.KmlLayers) + len(g.Polygons)
}

// Positions returns every resolved overlay position in the graph, used for
// viewport fitting.
func (g *Graph) Positions() []LatLng {
	var out []LatLng
	for _, m := range g.Markers {
		out = append(out, m.Position)
	}
	for _, w := range g.InfoWindows {
		if w.Position != nil {
			out = append(out, *w.Position)
		}
	}
	for _, p := range g.Polygons {
		out = append(out, p.Path...)
	}
	return out
}
