package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/storage"
)

type ClientRepository struct {
	c   *collection[models.Client]
	now func() time.Time
}

func NewClientRepository(store *storage.Store) *ClientRepository {
	return &ClientRepository{
		c: &collection[models.Client]{
			store: store,
			name:  storage.CollectionClients,
			id:    func(c *models.Client) string { return c.ID },
			prepare: func(c *models.Client) error {
				c.Name = strings.TrimSpace(c.Name)
				c.Normalize()
				return models.Validate(c)
			},
		},
		now: time.Now,
	}
}

func (r *ClientRepository) List(ctx context.Context) ([]models.Client, error) {
	return r.c.list(ctx)
}

// ReplaceAll refuses a sequence holding the same cpf twice.
func (r *ClientRepository) ReplaceAll(ctx context.Context, clients []models.Client) error {
	seen := make(map[string]bool, len(clients))
	for _, c := range clients {
		cpf := models.NormalizeCPF(c.Cpf)
		if seen[cpf] {
			return httperr.ErrBusiness("duplicate_cpf")
		}
		seen[cpf] = true
	}
	return r.c.replaceAll(ctx, clients)
}

// Add registers a client unless one with the same normalized cpf exists,
// in which case it returns added=false and leaves storage untouched.
//
// The duplicate check and the save are two separate storage round trips:
// two concurrent registrations of the same cpf can both succeed.
func (r *ClientRepository) Add(ctx context.Context, c models.Client) (models.Client, bool, error) {
	c.ID = uuid.NewString()
	if c.JoinedAt.IsZero() {
		c.JoinedAt = r.now().UTC()
	}
	if err := r.c.prepare(&c); err != nil {
		return c, false, err
	}

	clients, err := r.c.list(ctx)
	if err != nil {
		return c, false, err
	}
	for _, existing := range clients {
		if models.NormalizeCPF(existing.Cpf) == c.Cpf {
			return c, false, nil
		}
	}

	if err := storage.Save(ctx, r.c.store, r.c.name, append(clients, c)); err != nil {
		return c, false, err
	}
	return c, true, nil
}

// FindByCpf compares against the stored value as is.
func (r *ClientRepository) FindByCpf(ctx context.Context, cpf string) (models.Client, bool, error) {
	clients, err := r.c.list(ctx)
	if err != nil {
		return models.Client{}, false, err
	}
	for _, c := range clients {
		if c.Cpf == cpf {
			return c, true, nil
		}
	}
	return models.Client{}, false, nil
}

// Search matches name or phone (case-insensitive) or cpf digits.
func (r *ClientRepository) Search(ctx context.Context, query string) ([]models.Client, error) {
	clients, err := r.c.list(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return clients, nil
	}

	digits := models.NormalizeCPF(query)
	out := make([]models.Client, 0)
	for _, c := range clients {
		switch {
		case strings.Contains(strings.ToLower(c.Name), query),
			strings.Contains(c.Phone, query),
			digits != "" && strings.Contains(c.Cpf, digits):
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *ClientRepository) Remove(ctx context.Context, id string) (bool, error) {
	return r.c.remove(ctx, id)
}
