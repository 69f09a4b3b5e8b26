package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"monipee-hotel/models"
)

// GormBackend stores each bucket as one row of the buckets table.
type GormBackend struct {
	DB *gorm.DB
}

// NewGormBackend migrates the buckets table and returns the backend.
func NewGormBackend(db *gorm.DB) (*GormBackend, error) {
	if err := db.AutoMigrate(&models.Bucket{}); err != nil {
		return nil, fmt.Errorf("migrate buckets: %w", err)
	}
	return &GormBackend{DB: db}, nil
}

func (g *GormBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var row models.Bucket
	if err := g.DB.WithContext(ctx).Where("`key` = ?", key).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load bucket %s: %w", key, err)
	}
	return []byte(row.Value), nil
}

func (g *GormBackend) Set(ctx context.Context, key string, value []byte) error {
	return save(g.DB.WithContext(ctx), key, value)
}

func (g *GormBackend) Delete(ctx context.Context, key string) error {
	if err := g.DB.WithContext(ctx).Where("`key` = ?", key).Delete(&models.Bucket{}).Error; err != nil {
		return fmt.Errorf("delete bucket %s: %w", key, err)
	}
	return nil
}

// Update locks the bucket row for the duration of fn. sqlite ignores FOR UPDATE
// but serializes writers on the database lock instead.
func (g *GormBackend) Update(ctx context.Context, key string, fn UpdateFunc) error {
	err := g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row models.Bucket
		exists := true
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("`key` = ?", key).
			First(&row).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("lock bucket %s: %w", key, err)
			}
			exists = false
		}

		var cur []byte
		if exists {
			cur = []byte(row.Value)
		}
		next, err := fn(cur, exists)
		if err != nil {
			return err
		}
		return save(tx, key, next)
	})
	if errors.Is(err, ErrSkipWrite) {
		return nil
	}
	return err
}

func (g *GormBackend) Close() error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func save(db *gorm.DB, key string, value []byte) error {
	row := models.Bucket{Key: key, Value: models.BucketValue(value), UpdatedAt: time.Now().UTC()}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save bucket %s: %w", key, err)
	}
	return nil
}
