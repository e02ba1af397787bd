package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/storage"
)

// --------------------------------------------------
// Services
// --------------------------------------------------

type ServiceRepository struct {
	c *collection[models.Service]
}

func NewServiceRepository(store *storage.Store) *ServiceRepository {
	return &ServiceRepository{c: &collection[models.Service]{
		store: store,
		name:  storage.CollectionServices,
		id:    func(s *models.Service) string { return s.ID },
		prepare: func(s *models.Service) error {
			s.Name = strings.TrimSpace(s.Name)
			return models.Validate(s)
		},
	}}
}

func (r *ServiceRepository) List(ctx context.Context) ([]models.Service, error) {
	return r.c.list(ctx)
}

func (r *ServiceRepository) Get(ctx context.Context, id string) (models.Service, bool, error) {
	return r.c.get(ctx, id)
}

func (r *ServiceRepository) ReplaceAll(ctx context.Context, services []models.Service) error {
	return r.c.replaceAll(ctx, services)
}

// Add assigns a fresh id and appends.
func (r *ServiceRepository) Add(ctx context.Context, s models.Service) (models.Service, error) {
	s.ID = uuid.NewString()
	return r.c.add(ctx, s)
}

func (r *ServiceRepository) Update(ctx context.Context, id string, s models.Service) (bool, error) {
	s.ID = id
	return r.c.replace(ctx, id, s)
}

func (r *ServiceRepository) Remove(ctx context.Context, id string) (bool, error) {
	return r.c.remove(ctx, id)
}

// --------------------------------------------------
// Professionals
// --------------------------------------------------

type ProfessionalRepository struct {
	c *collection[models.Professional]
}

func NewProfessionalRepository(store *storage.Store) *ProfessionalRepository {
	return &ProfessionalRepository{c: &collection[models.Professional]{
		store: store,
		name:  storage.CollectionProfessionals,
		id:    func(p *models.Professional) string { return p.ID },
		prepare: func(p *models.Professional) error {
			p.Name = strings.TrimSpace(p.Name)
			return models.Validate(p)
		},
	}}
}

func (r *ProfessionalRepository) List(ctx context.Context) ([]models.Professional, error) {
	return r.c.list(ctx)
}

func (r *ProfessionalRepository) Get(ctx context.Context, id string) (models.Professional, bool, error) {
	return r.c.get(ctx, id)
}

func (r *ProfessionalRepository) ReplaceAll(ctx context.Context, pros []models.Professional) error {
	return r.c.replaceAll(ctx, pros)
}

func (r *ProfessionalRepository) Add(ctx context.Context, p models.Professional) (models.Professional, error) {
	p.ID = uuid.NewString()
	return r.c.add(ctx, p)
}

func (r *ProfessionalRepository) Update(ctx context.Context, id string, p models.Professional) (bool, error) {
	p.ID = id
	return r.c.replace(ctx, id, p)
}

func (r *ProfessionalRepository) Remove(ctx context.Context, id string) (bool, error) {
	return r.c.remove(ctx, id)
}

// --------------------------------------------------
// Products
// --------------------------------------------------

type ProductRepository struct {
	c *collection[models.Product]
}

func NewProductRepository(store *storage.Store) *ProductRepository {
	return &ProductRepository{c: &collection[models.Product]{
		store: store,
		name:  storage.CollectionProducts,
		id:    func(p *models.Product) string { return p.ID },
		prepare: func(p *models.Product) error {
			p.Name = strings.TrimSpace(p.Name)
			return models.Validate(p)
		},
	}}
}

func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	return r.c.list(ctx)
}

func (r *ProductRepository) ReplaceAll(ctx context.Context, products []models.Product) error {
	return r.c.replaceAll(ctx, products)
}

func (r *ProductRepository) Add(ctx context.Context, p models.Product) (models.Product, error) {
	p.ID = uuid.NewString()
	return r.c.add(ctx, p)
}

func (r *ProductRepository) Update(ctx context.Context, id string, p models.Product) (bool, error) {
	p.ID = id
	return r.c.replace(ctx, id, p)
}

func (r *ProductRepository) Remove(ctx context.Context, id string) (bool, error) {
	return r.c.remove(ctx, id)
}

// --------------------------------------------------
// Expenses
// --------------------------------------------------

type ExpenseRepository struct {
	c *collection[models.Expense]
}

func NewExpenseRepository(store *storage.Store) *ExpenseRepository {
	return &ExpenseRepository{c: &collection[models.Expense]{
		store: store,
		name:  storage.CollectionExpenses,
		id:    func(e *models.Expense) string { return e.ID },
		prepare: func(e *models.Expense) error {
			e.Normalize()
			return models.Validate(e)
		},
	}}
}

func (r *ExpenseRepository) List(ctx context.Context) ([]models.Expense, error) {
	return r.c.list(ctx)
}

func (r *ExpenseRepository) ReplaceAll(ctx context.Context, expenses []models.Expense) error {
	return r.c.replaceAll(ctx, expenses)
}

func (r *ExpenseRepository) Add(ctx context.Context, e models.Expense) (models.Expense, error) {
	e.ID = uuid.NewString()
	return r.c.add(ctx, e)
}

func (r *ExpenseRepository) Update(ctx context.Context, id string, e models.Expense) (bool, error) {
	e.ID = id
	return r.c.replace(ctx, id, e)
}

func (r *ExpenseRepository) Remove(ctx context.Context, id string) (bool, error) {
	return r.c.remove(ctx, id)
}
