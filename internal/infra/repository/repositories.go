package repository

import (
	"context"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/storage"
)

// Repositories groups every collection façade over one entity store.
type Repositories struct {
	Services      *ServiceRepository
	Professionals *ProfessionalRepository
	Products      *ProductRepository
	Appointments  *AppointmentRepository
	Clients       *ClientRepository
	Expenses      *ExpenseRepository
	Logo          *LogoRepository
}

func New(store *storage.Store) *Repositories {
	return &Repositories{
		Services:      NewServiceRepository(store),
		Professionals: NewProfessionalRepository(store),
		Products:      NewProductRepository(store),
		Appointments:  NewAppointmentRepository(store),
		Clients:       NewClientRepository(store),
		Expenses:      NewExpenseRepository(store),
		Logo:          NewLogoRepository(store),
	}
}

// --------------------------------------------------
// Scheduling
// --------------------------------------------------

// SchedulingRepository is the view of the store the booking use cases need.
type SchedulingRepository struct {
	repos *Repositories
}

func NewSchedulingRepository(repos *Repositories) *SchedulingRepository {
	return &SchedulingRepository{repos: repos}
}

func (r *SchedulingRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	return r.repos.Services.List(ctx)
}

func (r *SchedulingRepository) ListProfessionals(ctx context.Context) ([]models.Professional, error) {
	return r.repos.Professionals.List(ctx)
}

func (r *SchedulingRepository) GetService(ctx context.Context, id string) (models.Service, bool, error) {
	return r.repos.Services.Get(ctx, id)
}

func (r *SchedulingRepository) GetProfessional(ctx context.Context, id string) (models.Professional, bool, error) {
	return r.repos.Professionals.Get(ctx, id)
}

func (r *SchedulingRepository) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return r.repos.Appointments.List(ctx)
}

func (r *SchedulingRepository) CreateAppointment(ctx context.Context, ap models.Appointment) (models.Appointment, error) {
	return r.repos.Appointments.Add(ctx, ap)
}

func (r *SchedulingRepository) UpdateAppointmentStatus(
	ctx context.Context,
	id string,
	status models.AppointmentStatus,
) (models.Appointment, bool, error) {
	return r.repos.Appointments.UpdateStatus(ctx, id, status)
}

// Compile-time check
var _ domain.Repository = (*SchedulingRepository)(nil)
