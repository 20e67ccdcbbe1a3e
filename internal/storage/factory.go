// internal/storage/factory.go
package storage

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mapfront/extension/internal/config"
	gormstorage "github.com/mapfront/extension/internal/storage/gorm"
	"github.com/mapfront/extension/internal/storage/memory"
)

// NewBackend creates a storage backend based on configuration. db may be nil
// for the memory backend.
func NewBackend(cfg config.StorageConfig, db *gorm.DB) (Backend, error) {
	switch cfg.Type {
	case "gorm":
		if db == nil {
			return nil, fmt.Errorf("gorm storage requires a database connection")
		}
		return gormstorage.New(db), nil
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
