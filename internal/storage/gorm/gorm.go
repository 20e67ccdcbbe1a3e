// Package gormstorage implements the storage.Backend interface on top of a
// GORM connection (Postgres, or the SQLite fallback).
package gormstorage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mapfront/extension/internal/model"
)

// Backend reads editor records from the database.
type Backend struct {
	db *gorm.DB
}

// New creates a new GORM storage backend.
func New(db *gorm.DB) *Backend {
	return &Backend{db: db}
}

// Init migrates the schema.
func (b *Backend) Init() error {
	if err := b.db.AutoMigrate(model.DatabaseModels...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close is a no-op; the connection is owned by the database manager.
func (b *Backend) Close() error {
	return nil
}

// GetMapElement returns the map element with the given id.
func (b *Backend) GetMapElement(id uint) (*model.MapElement, error) {
	var e model.MapElement
	err := b.db.First(&e, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load map element %d: %w", id, err)
	}
	return &e, nil
}

// ListOverlays returns the published overlays of a map element in sorting order.
func (b *Backend) ListOverlays(mapElementID uint) ([]model.Overlay, error) {
	var overlays []model.Overlay
	err := b.db.
		Where("map_element_id = ? AND published = ?", mapElementID, true).
		Order("sorting asc").
		Find(&overlays).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load overlays for map element %d: %w", mapElementID, err)
	}
	return overlays, nil
}

// GetFile returns the managed file with the given uuid.
func (b *Backend) GetFile(uuid string) (*model.File, error) {
	var f model.File
	err := b.db.Where("uuid = ?", uuid).First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load file %s: %w", uuid, err)
	}
	return &f, nil
}
