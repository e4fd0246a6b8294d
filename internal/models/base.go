package models

import (
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// StorageEntry is one key/value pair of the persisted client storage.
// Values are whole JSON documents; every save overwrites the row.
type StorageEntry struct {
	StorageKey string    `gorm:"primaryKey;size:191;column:storage_key" json:"key"`
	Value      string    `gorm:"type:longtext;not null" json:"value"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// InitDB initializes database connection
func InitDB(config DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(config.DSN), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto migrate the database models
	if err := db.AutoMigrate(&StorageEntry{}); err != nil {
		return nil, err
	}

	return db, nil
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DSN string
}
