// internal/storage/storage.go
package storage

import (
	"github.com/mapfront/extension/internal/model"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = model.ErrNotFound

// Backend is the interface all editor-record stores must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Editor records
	GetMapElement(id uint) (*model.MapElement, error)
	ListOverlays(mapElementID uint) ([]model.Overlay, error)
	GetFile(uuid string) (*model.File, error)
}
