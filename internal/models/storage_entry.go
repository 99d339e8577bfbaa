package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// StorageEntry is one key/value pair of client-durable storage
type StorageEntry struct {
	Key       string    `gorm:"type:varchar(255);primary_key" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for StorageEntry
func (e *StorageEntry) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	return e.Validate()
}

// BeforeUpdate hook for StorageEntry
func (e *StorageEntry) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return e.Validate()
}

// Validate validates the entry fields
func (e *StorageEntry) Validate() error {
	if e.Key == "" {
		return errors.New("storage key is required")
	}

	if len(e.Key) > 255 {
		return errors.New("storage key too long")
	}

	return nil
}

// TableName returns the table name for StorageEntry
func (e *StorageEntry) TableName() string {
	return "client_storage"
}
