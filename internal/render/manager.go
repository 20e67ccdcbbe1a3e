// Package render produces the presentation output for one map element: the
// object graph consumed by the client map library plus the HTML snippet the
// content element embeds.
package render

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/mapfront/extension/internal/geo"
	"github.com/mapfront/extension/internal/influx"
	"github.com/mapfront/extension/internal/model/convert"
	"github.com/mapfront/extension/internal/storage"
	"github.com/mapfront/extension/internal/translate"
	"github.com/mapfront/extension/pkg/core"
)

// BackendPlaceholder is emitted instead of the map markup when a map element
// is scoped to the backend: the editor preview substitutes its own rendering
// and only needs a stable wildcard to find.
const BackendPlaceholder = "### MAP ###"

// Result is the output of one render pass.
type Result struct {
	MapID  uint        `json:"mapId"`
	Title  string      `json:"title"`
	APIKey string      `json:"apiKey,omitempty"`
	Graph  *core.Graph `json:"graph,omitempty"`
	HTML   string      `json:"html"`
}

// Manager loads editor records and turns them into render results.
type Manager struct {
	store      storage.Backend
	translator *translate.Translator
	resolver   translate.PositionResolver
	perf       *influx.Manager
	logger     *slog.Logger

	rendersTotal  metric.Int64Counter
	overlaysTotal metric.Int64Counter
}

// NewManager creates a render manager. perf may be nil when InfluxDB is not
// configured.
func NewManager(
	store storage.Backend,
	translator *translate.Translator,
	resolver translate.PositionResolver,
	perf *influx.Manager,
	logger *slog.Logger,
) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	renders, err := meter().Int64Counter("mapfront.render.total",
		metric.WithDescription("Completed map render passes"))
	if err != nil {
		return nil, fmt.Errorf("error creating render counter: %w", err)
	}
	overlays, err := meter().Int64Counter("mapfront.render.overlays",
		metric.WithDescription("Overlays attached across all render passes"))
	if err != nil {
		return nil, fmt.Errorf("error creating overlay counter: %w", err)
	}

	return &Manager{
		store:         store,
		translator:    translator,
		resolver:      resolver,
		perf:          perf,
		logger:        logger,
		rendersTotal:  renders,
		overlaysTotal: overlays,
	}, nil
}

// Render builds the full render result for one map element. Unpublished or
// missing elements yield model.ErrNotFound; an invalid overlay configuration
// yields a *translate.ConfigError naming the offending record.
func (m *Manager) Render(ctx context.Context, id uint) (*Result, error) {
	start := time.Now()

	element, err := m.store.GetMapElement(id)
	if err != nil {
		return nil, err
	}
	if !element.Published {
		return nil, storage.ErrNotFound
	}

	if element.Scope == "backend" {
		m.logger.Debug("Backend-scoped map element, emitting placeholder", "mapId", id)
		return &Result{MapID: id, Title: element.Title, HTML: BackendPlaceholder}, nil
	}

	graph := &core.Graph{
		Zoom:    element.Zoom,
		MapType: element.MapType,
	}
	if element.Width > 0 && element.Height > 0 {
		graph.Size = &core.Size{Width: element.Width, Height: element.Height}
	}
	if center, ok := m.resolver.Resolve(convert.CenterPosition(*element)); ok {
		graph.Center = &center
	}

	records, err := m.store.ListOverlays(id)
	if err != nil {
		return nil, fmt.Errorf("error loading overlays for map element %d: %w", id, err)
	}

	rctx := translate.NewContext()
	for _, rec := range records {
		if err := m.translator.Attach(graph, convert.FromRecord(rec), rctx); err != nil {
			return nil, err
		}
	}

	// without an explicit center, fit the viewport to the overlays
	if graph.Center == nil {
		if center, ok := fitCenter(graph); ok {
			graph.Center = &center
		}
	}

	html, err := elementHTML(id, element.Width, element.Height, graph)
	if err != nil {
		return nil, fmt.Errorf("error building element markup for map %d: %w", id, err)
	}

	result := &Result{
		MapID:  id,
		Title:  element.Title,
		APIKey: element.APIKey,
		Graph:  graph,
		HTML:   html,
	}

	elapsed := time.Since(start)
	m.rendersTotal.Add(ctx, 1)
	m.overlaysTotal.Add(ctx, int64(graph.OverlayCount()))
	m.logger.Debug("Rendered map element",
		"mapId", id,
		"overlays", graph.OverlayCount(),
		"duration", elapsed,
	)

	if m.perf != nil {
		point := influx.RenderPoint(id, graph.OverlayCount(), elapsed)
		if err := m.perf.WritePoint(ctx, "render_performance", point); err != nil {
			m.logger.Warn("Failed to record render performance", "mapId", id, "error", err)
		}
	}

	return result, nil
}

// fitCenter picks a viewport center from the attached overlays. A map whose
// only overlays are polygons centers on their area-weighted centroid;
// anything else uses the midpoint of the overlay bounds taken in mercator
// space, matching how the client library fits a viewport.
func fitCenter(g *core.Graph) (core.LatLng, bool) {
	if len(g.Markers) == 0 && len(g.InfoWindows) == 0 && len(g.Polygons) > 0 {
		paths := make([][]core.LatLng, 0, len(g.Polygons))
		for _, p := range g.Polygons {
			paths = append(paths, p.Path)
		}
		if c, ok := geo.CentroidOfPaths(paths); ok {
			return c, true
		}
	}

	if bounds, ok := geo.BoundsFromPositions(g.Positions()); ok {
		return geo.FitCenter(bounds), true
	}
	return core.LatLng{}, false
}

// elementHTML builds the embeddable content-element snippet: the container
// div and the serialized graph the client loader reads.
func elementHTML(id uint, width, height int, graph *core.Graph) (string, error) {
	encoded, err := json.Marshal(graph)
	if err != nil {
		return "", err
	}

	style := ""
	if width > 0 && height > 0 {
		style = fmt.Sprintf(` style="width:%dpx;height:%dpx;"`, width, height)
	}

	return fmt.Sprintf(
		`<div id="map_%d" class="map-element"%s></div>`+"\n"+
			`<script type="application/json" data-map="%d">%s</script>`,
		id, style, id, encoded,
	), nil
}
