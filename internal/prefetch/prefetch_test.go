package prefetch

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapfront/extension/internal/model"
	"github.com/mapfront/extension/internal/overlay"
	"github.com/mapfront/extension/internal/storage/memory"
	"github.com/mapfront/extension/pkg/core"
)

type recordingResolver struct {
	mu    sync.Mutex
	seen  []string
	known map[string]core.LatLng
}

func (r *recordingResolver) Resolve(pos overlay.Position) (core.LatLng, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, pos.Address)
	ll, ok := r.known[pos.Address]
	return ll, ok
}

func TestWarmMapResolvesDistinctAddresses(t *testing.T) {
	store := memory.New()
	store.PutMapElement(model.MapElement{
		ID: 3, CenterMode: "address", CenterAddress: "Central Plaza 1", Published: true,
	})
	store.PutOverlay(model.Overlay{
		ID: 1, MapElementID: 3, Type: overlay.TypeMarker,
		PositionMode: "address", Address: "North Road 5", Published: true,
	})
	store.PutOverlay(model.Overlay{
		ID: 2, MapElementID: 3, Type: overlay.TypeMarker,
		PositionMode: "address", Address: "North Road 5", Published: true,
	})
	store.PutOverlay(model.Overlay{
		ID: 3, MapElementID: 3, Type: overlay.TypeMarker,
		PositionMode: "coordinate", Lat: "1", Lng: "2", Published: true,
	})

	resolver := &recordingResolver{known: map[string]core.LatLng{
		"Central Plaza 1": {Lat: 48.2, Lng: 16.37},
		"North Road 5":    {Lat: 48.3, Lng: 16.4},
	}}

	w := NewWarmer(store, resolver, 2, nil)
	resolved, err := w.WarmMap(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, 2, resolved)
	// duplicates collapse before hitting the resolver
	assert.Len(t, resolver.seen, 2)
	assert.ElementsMatch(t, []string{"Central Plaza 1", "North Road 5"}, resolver.seen)
}

func TestWarmMapCountsOnlyResolvedAddresses(t *testing.T) {
	store := memory.New()
	store.PutMapElement(model.MapElement{ID: 3, CenterMode: "coordinate", Published: true})
	store.PutOverlay(model.Overlay{
		ID: 1, MapElementID: 3, Type: overlay.TypeMarker,
		PositionMode: "address", Address: "unknown street", Published: true,
	})

	resolver := &recordingResolver{known: map[string]core.LatLng{}}

	w := NewWarmer(store, resolver, 1, nil)
	resolved, err := w.WarmMap(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 0, resolved)
}

func TestWarmMapMissingElement(t *testing.T) {
	w := NewWarmer(memory.New(), &recordingResolver{}, 1, nil)

	_, err := w.WarmMap(context.Background(), 42)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestWarmMapNoAddresses(t *testing.T) {
	store := memory.New()
	store.PutMapElement(model.MapElement{ID: 3, CenterMode: "coordinate", Published: true})

	resolver := &recordingResolver{}
	w := NewWarmer(store, resolver, 3, nil)

	resolved, err := w.WarmMap(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 0, resolved)
	assert.Empty(t, resolver.seen)
}
