package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/storage"
)

// StatusAll disables the status filter of ListByStatus.
const StatusAll = "all"

type AppointmentRepository struct {
	c *collection[models.Appointment]
}

func NewAppointmentRepository(store *storage.Store) *AppointmentRepository {
	return &AppointmentRepository{c: &collection[models.Appointment]{
		store: store,
		name:  storage.CollectionAppointments,
		id:    func(a *models.Appointment) string { return a.ID },
		prepare: func(a *models.Appointment) error {
			a.Normalize()
			return models.Validate(a)
		},
	}}
}

func (r *AppointmentRepository) List(ctx context.Context) ([]models.Appointment, error) {
	return r.c.list(ctx)
}

func (r *AppointmentRepository) Get(ctx context.Context, id string) (models.Appointment, bool, error) {
	return r.c.get(ctx, id)
}

func (r *AppointmentRepository) ReplaceAll(ctx context.Context, apps []models.Appointment) error {
	return r.c.replaceAll(ctx, apps)
}

// Add assigns a fresh id and always stores the booking as pending,
// whatever status the caller sent.
func (r *AppointmentRepository) Add(ctx context.Context, a models.Appointment) (models.Appointment, error) {
	a.ID = uuid.NewString()
	a.Status = domain.InitialStatus()
	return r.c.add(ctx, a)
}

func (r *AppointmentRepository) Remove(ctx context.Context, id string) (bool, error) {
	return r.c.remove(ctx, id)
}

// FindByCpf matches clientCpf byte for byte; callers normalize first.
func (r *AppointmentRepository) FindByCpf(ctx context.Context, cpf string) ([]models.Appointment, error) {
	apps, err := r.c.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Appointment, 0)
	for _, a := range apps {
		if a.ClientCpf == cpf {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListByStatus filters by status; "" and "all" return everything.
func (r *AppointmentRepository) ListByStatus(ctx context.Context, status string) ([]models.Appointment, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	apps, err := r.c.list(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" || status == StatusAll {
		return apps, nil
	}

	want := models.AppointmentStatus(status)
	if !want.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	out := make([]models.Appointment, 0, len(apps))
	for _, a := range apps {
		if a.Status == want {
			out = append(out, a)
		}
	}
	return out, nil
}

// UpdateStatus applies a status transition and saves the whole collection.
// found=false when no appointment has that id.
func (r *AppointmentRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status models.AppointmentStatus,
) (models.Appointment, bool, error) {

	status = models.AppointmentStatus(strings.ToLower(strings.TrimSpace(string(status))))

	apps, err := r.c.list(ctx)
	if err != nil {
		return models.Appointment{}, false, err
	}

	for i := range apps {
		if apps[i].ID != id {
			continue
		}
		if err := domain.ChangeStatus(&apps[i], status); err != nil {
			return apps[i], true, err
		}
		if err := storage.Save(ctx, r.c.store, r.c.name, apps); err != nil {
			return apps[i], true, err
		}
		return apps[i], true, nil
	}
	return models.Appointment{}, false, nil
}
