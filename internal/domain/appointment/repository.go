package appointment

import (
	"context"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	ListServices(
		ctx context.Context,
	) ([]models.Service, error)

	ListProfessionals(
		ctx context.Context,
	) ([]models.Professional, error)

	GetService(
		ctx context.Context,
		id string,
	) (models.Service, bool, error)

	GetProfessional(
		ctx context.Context,
		id string,
	) (models.Professional, bool, error)

	// -------- Appointment --------
	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap models.Appointment,
	) (models.Appointment, error)

	UpdateAppointmentStatus(
		ctx context.Context,
		id string,
		status models.AppointmentStatus,
	) (models.Appointment, bool, error)
}
