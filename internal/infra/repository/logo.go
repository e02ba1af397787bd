package repository

import (
	"context"

	"github.com/BruksfildServices01/barberpro/internal/storage"
)

// LogoRepository holds the single shop logo as a data URI.
type LogoRepository struct {
	store *storage.Store
}

func NewLogoRepository(store *storage.Store) *LogoRepository {
	return &LogoRepository{store: store}
}

func (r *LogoRepository) Get(ctx context.Context) (string, bool, error) {
	return r.store.LoadLogo(ctx)
}

func (r *LogoRepository) Save(ctx context.Context, dataURI string) error {
	return r.store.SaveLogo(ctx, dataURI)
}
