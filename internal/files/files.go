// Package files resolves managed-file ids to paths.
package files

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mapfront/extension/internal/model"
)

// Resolver maps a managed-file uuid to its path. The boolean is false when
// the id is unknown or malformed.
type Resolver interface {
	PathFromFileID(id string) (string, bool)
}

// GormResolver looks up managed files in the database.
type GormResolver struct {
	db *gorm.DB
}

// NewGormResolver creates a database-backed file resolver
func NewGormResolver(db *gorm.DB) *GormResolver {
	return &GormResolver{db: db}
}

// PathFromFileID resolves a file uuid to its stored path
func (r *GormResolver) PathFromFileID(id string) (string, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	var f model.File
	err := r.db.Where("uuid = ?", id).First(&f).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false
		}
		return "", false
	}
	return f.Path, true
}

// StaticResolver resolves from a fixed map, used in tests and demo setups.
type StaticResolver map[string]string

// PathFromFileID resolves a file uuid from the static map
func (r StaticResolver) PathFromFileID(id string) (string, bool) {
	p, ok := r[id]
	return p, ok
}
