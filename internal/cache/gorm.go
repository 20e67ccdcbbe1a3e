package cache

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mapfront/extension/internal/model"
)

// GormCache persists geocode entries in the database so address lookups
// survive process restarts. It satisfies the same Get/Set contract as
// AddressCache.
type GormCache struct {
	db *gorm.DB
}

// NewGormCache creates a database-backed cache
func NewGormCache(db *gorm.DB) *GormCache {
	return &GormCache{db: db}
}

// Get retrieves a cached value by key
func (c *GormCache) Get(key string) (string, bool) {
	var e model.GeocodeEntry
	err := c.db.Where("key = ?", key).First(&e).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			// treat unreachable storage as a miss; the resolver will geocode again
			return "", false
		}
		return "", false
	}
	return e.Value, true
}

// Set stores a value by key. Concurrent first-time writes for the same
// address are benign because the value is deterministic, so the upsert just
// takes the newest.
func (c *GormCache) Set(key, value string) {
	e := model.GeocodeEntry{Key: key, Value: value}
	c.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&e)
}
