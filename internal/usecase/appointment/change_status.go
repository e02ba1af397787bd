package appointment

import (
	"context"

	"github.com/BruksfildServices01/barberpro/internal/audit"
	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

type ChangeAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ChangeAppointmentStatus {
	return &ChangeAppointmentStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ChangeAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID string,
	status models.AppointmentStatus,
	actor string,
) (models.Appointment, error) {

	ap, found, err := uc.repo.UpdateAppointmentStatus(ctx, appointmentID, status)
	if err != nil {
		return models.Appointment{}, err
	}
	if !found {
		return models.Appointment{}, httperr.ErrBusiness("appointment_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_" + string(ap.Status),
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
