package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"telehealth-server/internal/models"
)

// GormStorage stores values as rows of the storage_entries table.
type GormStorage struct {
	DB *gorm.DB
}

// NewGormStorage creates a database-backed storage. The table is expected
// to exist (see models.InitDB).
func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{DB: db}
}

func (g *GormStorage) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.StorageEntry
	err := g.DB.WithContext(ctx).Where("storage_key = ?", key).Take(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("storage: load %s: %w", key, err)
	}
	return entry.Value, true, nil
}

func (g *GormStorage) Set(ctx context.Context, key, value string) error {
	entry := models.StorageEntry{StorageKey: key, Value: value, UpdatedAt: time.Now()}
	err := g.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("storage: save %s: %w", key, err)
	}
	return nil
}

func (g *GormStorage) Delete(ctx context.Context, key string) error {
	if err := g.DB.WithContext(ctx).Where("storage_key = ?", key).Delete(&models.StorageEntry{}).Error; err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}
