package repositories

import (
	"errors"
	"fmt"

	"funds-mover/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormStore implements KeyValueStoreInterface over the client_storage table
type gormStore struct {
	db *gorm.DB
}

// NewGormKeyValueStore creates a key-value store backed by a SQL database
func NewGormKeyValueStore(db *gorm.DB) KeyValueStoreInterface {
	return &gormStore{
		db: db,
	}
}

// Get retrieves the value for key
func (r *gormStore) Get(key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	var entry models.StorageEntry
	if err := r.db.Where(&models.StorageEntry{Key: key}).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get storage entry: %w", err)
	}

	return entry.Value, nil
}

// Set upserts the value for key
func (r *gormStore) Set(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	entry := &models.StorageEntry{Key: key, Value: value}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return fmt.Errorf("failed to save storage entry: %w", err)
	}

	return nil
}

// HealthCheck pings the underlying database
func (r *gormStore) HealthCheck() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.Ping()
}
