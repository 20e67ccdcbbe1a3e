package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/mapfront/extension/internal/overlay"
	"github.com/mapfront/extension/pkg/core"
)

// cacheKeyPrefix namespaces address entries in the shared key/value cache
const cacheKeyPrefix = "geocode:"

// Store is the key/value cache the resolver memoizes lookups in. Entries
// written here never expire through this code path.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Resolver resolves an overlay position to a coordinate.
type Resolver struct {
	cache    Store
	geocoder Geocoder
	apiKey   string
	logger   *slog.Logger

	cacheHits   metric.Int64Counter
	cacheMisses metric.Int64Counter
}

// NewResolver creates a resolver backed by the given cache and geocoder.
func NewResolver(cache Store, geocoder Geocoder, apiKey string, logger *slog.Logger) (*Resolver, error) {
	r := &Resolver{
		cache:    cache,
		geocoder: geocoder,
		apiKey:   apiKey,
		logger:   logger,
	}

	m := meter()
	var err error

	r.cacheHits, err = m.Int64Counter(
		"geocode.cache.hits",
		metric.WithDescription("Address lookups served from the cache"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cache hit counter: %w", err)
	}

	r.cacheMisses, err = m.Int64Counter(
		"geocode.cache.misses",
		metric.WithDescription("Address lookups that required a geocoder call"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cache miss counter: %w", err)
	}

	return r, nil
}

// Resolve returns the coordinate for a position. The boolean is false when no
// position could be determined; resolution failures never surface as errors
// because a missing position must not interrupt the render of the rest of the
// map.
func (r *Resolver) Resolve(pos overlay.Position) (core.LatLng, bool) {
	switch pos.Mode {
	case overlay.PositionCoordinate:
		return pos.Coordinate, true
	case overlay.PositionAddress:
		return r.resolveAddress(pos.Address)
	}
	return core.LatLng{}, false
}

func (r *Resolver) resolveAddress(address string) (core.LatLng, bool) {
	if address == "" {
		return core.LatLng{}, false
	}

	key := cacheKeyPrefix + address
	if raw, ok := r.cache.Get(key); ok {
		r.cacheHits.Add(context.Background(), 1)
		var ll core.LatLng
		if err := json.Unmarshal([]byte(raw), &ll); err != nil {
			r.logger.Warn("Undeserializable geocode cache entry", "address", address, "error", err)
			return core.LatLng{}, false
		}
		return ll, true
	}
	r.cacheMisses.Add(context.Background(), 1)

	ll, ok, err := r.geocoder.CoordinatesFromAddress(address, r.apiKey)
	if err != nil {
		r.logger.Warn("Geocode lookup failed", "address", address, "error", err)
		return core.LatLng{}, false
	}
	if !ok {
		r.logger.Warn("Geocode yielded no result", "address", address)
		return core.LatLng{}, false
	}

	raw, err := json.Marshal(ll)
	if err == nil {
		r.cache.Set(key, string(raw))
	}
	return ll, true
}
