package store

import (
	"context" // Request-scoped DB calls
	"errors"  // Sentinel comparison
	"fmt"     // Error wrapping

	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/clause" // Upsert clause
)

// Entry Model
type Entry struct {
	Key       string `gorm:"primaryKey;size:191"`    // Storage key
	Value     string `gorm:"type:longtext;not null"` // Serialized value
	UpdatedAt int64  `gorm:"autoUpdateTime:milli"`   // Last write in milliseconds
}

// TableName pins the table name independent of naming strategy
func (Entry) TableName() string {
	return "kv_entries"
}

// GormKV stores values in a single SQL table keyed by Entry.Key
type GormKV struct {
	db *gorm.DB
}

// NewGormKV wraps an open GORM connection. The kv_entries table must already exist.
func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

// Get fetches the entry for key
func (g *GormKV) Get(ctx context.Context, key string) (string, bool, error) {
	var e Entry
	err := g.db.WithContext(ctx).Where("`key` = ?", key).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil // Key does not exist
	}
	if err != nil {
		return "", false, fmt.Errorf("load entry %s: %w", key, err)
	}
	return e.Value, true, nil
}

// Set inserts or fully replaces the entry for key
func (g *GormKV) Set(ctx context.Context, key, value string) error {
	e := Entry{Key: key, Value: value}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("save entry %s: %w", key, err)
	}
	return nil
}

// Delete removes the entry for key
func (g *GormKV) Delete(ctx context.Context, key string) error {
	if err := g.db.WithContext(ctx).Where("`key` = ?", key).Delete(&Entry{}).Error; err != nil {
		return fmt.Errorf("delete entry %s: %w", key, err)
	}
	return nil
}
