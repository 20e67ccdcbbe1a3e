// Package prefetch warms the geocode cache ahead of render time. Overlays
// with static addresses resolve once here so the first page view does not pay
// for geocoder round trips.
package prefetch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/mapfront/extension/internal/overlay"
	"github.com/mapfront/extension/internal/queue"
	"github.com/mapfront/extension/internal/storage"
	"github.com/mapfront/extension/pkg/core"
)

// DefaultWorkers is the worker count used when none is configured.
const DefaultWorkers = 4

// Resolver is the slice of the positioning resolver the warmer needs.
type Resolver interface {
	Resolve(pos overlay.Position) (core.LatLng, bool)
}

// Warmer resolves static-address positions through the shared resolver so
// their results land in the address cache. Concurrent warms of the same
// address may both miss and both query the geocoder; both write the same
// value, so the race is benign.
type Warmer struct {
	store    storage.Backend
	resolver Resolver
	workers  int
	logger   *slog.Logger
}

// NewWarmer creates a cache warmer
func NewWarmer(store storage.Backend, resolver Resolver, workers int, logger *slog.Logger) *Warmer {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Warmer{
		store:    store,
		resolver: resolver,
		workers:  workers,
		logger:   logger,
	}
}

// WarmMap resolves every distinct static address configured on the map
// element and its overlays. It returns the number of addresses that resolved
// to a coordinate.
func (w *Warmer) WarmMap(ctx context.Context, mapElementID uint) (int, error) {
	addresses := make(map[string]struct{})

	element, err := w.store.GetMapElement(mapElementID)
	if err != nil {
		return 0, fmt.Errorf("error loading map element %d: %w", mapElementID, err)
	}
	if element.CenterMode == string(overlay.PositionAddress) && element.CenterAddress != "" {
		addresses[element.CenterAddress] = struct{}{}
	}

	records, err := w.store.ListOverlays(mapElementID)
	if err != nil {
		return 0, fmt.Errorf("error loading overlays for map element %d: %w", mapElementID, err)
	}
	for _, rec := range records {
		if rec.PositionMode == string(overlay.PositionAddress) && rec.Address != "" {
			addresses[rec.Address] = struct{}{}
		}
	}

	if len(addresses) == 0 {
		return 0, nil
	}

	pending := queue.New[string]()
	for addr := range addresses {
		pending.Push(addr)
	}

	var resolved atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < w.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				addr := pending.Pop()
				if addr == "" {
					return
				}
				pos := overlay.Position{Mode: overlay.PositionAddress, Address: addr}
				if _, ok := w.resolver.Resolve(pos); ok {
					resolved.Add(1)
				} else {
					w.logger.Warn("Prefetch could not resolve address", "address", addr)
				}
			}
		}()
	}
	wg.Wait()

	w.logger.Debug("Warmed geocode cache",
		"mapId", mapElementID,
		"addresses", len(addresses),
		"resolved", resolved.Load(),
	)

	return int(resolved.Load()), nil
}
