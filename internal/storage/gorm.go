package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

// GormProvider keeps one entity_records row per key.
type GormProvider struct {
	db *gorm.DB
}

func NewGormProvider(db *gorm.DB) *GormProvider {
	return &GormProvider{db: db}
}

func (g *GormProvider) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec models.EntityRecord
	err := g.db.WithContext(ctx).
		Where("record_key = ?", key).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select entity record: %w", err)
	}
	return []byte(rec.Value), true, nil
}

func (g *GormProvider) Put(ctx context.Context, key string, value []byte) error {
	rec := models.EntityRecord{Key: key, Value: string(value)}
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "record_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("upsert entity record: %w", err)
	}
	return nil
}

func (g *GormProvider) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
