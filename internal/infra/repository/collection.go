package repository

import (
	"context"

	"github.com/BruksfildServices01/barberpro/internal/storage"
)

// collection is the shared CRUD over one entity store key. There is no
// per-item primitive: every mutation loads the collection, edits it in
// memory and saves the whole sequence back.
type collection[T any] struct {
	store *storage.Store
	name  string
	id    func(*T) string

	// prepare normalizes and validates a record before it is written.
	prepare func(*T) error
}

func (c *collection[T]) list(ctx context.Context) ([]T, error) {
	return storage.Load[T](ctx, c.store, c.name)
}

func (c *collection[T]) get(ctx context.Context, id string) (T, bool, error) {
	var zero T
	items, err := c.list(ctx)
	if err != nil {
		return zero, false, err
	}
	for i := range items {
		if c.id(&items[i]) == id {
			return items[i], true, nil
		}
	}
	return zero, false, nil
}

func (c *collection[T]) replaceAll(ctx context.Context, items []T) error {
	prepared := make([]T, len(items))
	copy(prepared, items)
	for i := range prepared {
		if err := c.prepare(&prepared[i]); err != nil {
			return err
		}
	}
	return storage.Save(ctx, c.store, c.name, prepared)
}

func (c *collection[T]) add(ctx context.Context, item T) (T, error) {
	if err := c.prepare(&item); err != nil {
		return item, err
	}
	items, err := c.list(ctx)
	if err != nil {
		return item, err
	}
	if err := storage.Save(ctx, c.store, c.name, append(items, item)); err != nil {
		return item, err
	}
	return item, nil
}

// replace swaps the record with the given id in place; found=false leaves
// the collection untouched.
func (c *collection[T]) replace(ctx context.Context, id string, item T) (bool, error) {
	if err := c.prepare(&item); err != nil {
		return false, err
	}
	items, err := c.list(ctx)
	if err != nil {
		return false, err
	}
	for i := range items {
		if c.id(&items[i]) == id {
			items[i] = item
			return true, storage.Save(ctx, c.store, c.name, items)
		}
	}
	return false, nil
}

func (c *collection[T]) remove(ctx context.Context, id string) (bool, error) {
	items, err := c.list(ctx)
	if err != nil {
		return false, err
	}
	kept := items[:0:0]
	for i := range items {
		if c.id(&items[i]) != id {
			kept = append(kept, items[i])
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}
	return true, storage.Save(ctx, c.store, c.name, kept)
}
