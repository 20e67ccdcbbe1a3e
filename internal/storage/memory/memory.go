// internal/storage/memory/memory.go
package memory

import (
	"sort"
	"sync"

	"github.com/mapfront/extension/internal/model"
)

// Backend stores editor records in memory. It backs tests and demo setups
// where no database is configured.
type Backend struct {
	mu       sync.RWMutex
	elements map[uint]model.MapElement
	overlays map[uint][]model.Overlay // keyed by MapElementID
	files    map[string]model.File    // keyed by UUID
}

// New creates a new memory backend
func New() *Backend {
	return &Backend{
		elements: make(map[uint]model.MapElement),
		overlays: make(map[uint][]model.Overlay),
		files:    make(map[string]model.File),
	}
}

// Init initializes the backend
func (b *Backend) Init() error {
	return nil
}

// Close cleans up resources
func (b *Backend) Close() error {
	return nil
}

// PutMapElement stores a map element, replacing any previous record with the
// same id.
func (b *Backend) PutMapElement(e model.MapElement) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.elements[e.ID] = e
}

// PutOverlay stores an overlay under its map element
func (b *Backend) PutOverlay(o model.Overlay) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.overlays[o.MapElementID] = append(b.overlays[o.MapElementID], o)
}

// PutFile stores a managed file record
func (b *Backend) PutFile(f model.File) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.files[f.UUID] = f
}

// GetMapElement returns the map element with the given id
func (b *Backend) GetMapElement(id uint) (*model.MapElement, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	e, ok := b.elements[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &e, nil
}

// ListOverlays returns the published overlays of a map element in sorting order
func (b *Backend) ListOverlays(mapElementID uint) ([]model.Overlay, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []model.Overlay
	for _, o := range b.overlays[mapElementID] {
		if o.Published {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sorting < out[j].Sorting
	})
	return out, nil
}

// GetFile returns the managed file with the given uuid
func (b *Backend) GetFile(uuid string) (*model.File, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	f, ok := b.files[uuid]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &f, nil
}
