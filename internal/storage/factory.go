package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/barberpro/internal/config"
	dbpkg "github.com/BruksfildServices01/barberpro/internal/db"
)

// NewProvider opens the backend selected by STORAGE_BACKEND.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return NewMemoryProvider(), nil

	case config.BackendBadger:
		return OpenBadger(cfg.BadgerPath)

	case config.BackendPostgres:
		db, err := dbpkg.NewDB(cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		return NewGormProvider(db), nil

	case config.BackendRedis:
		p := NewRedisProvider(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			_ = p.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return p, nil

	case config.BackendS3:
		return NewS3Provider(S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		}), nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
