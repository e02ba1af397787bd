package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/barberpro/internal/audit"
	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ClientName  string
	ClientPhone string
	ClientCpf   string

	ServiceID      string
	ProfessionalID string

	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
	now   func() time.Time
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Cliente
	// --------------------------------------------------
	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		return models.Appointment{}, httperr.ErrBusiness("invalid_client_name")
	}

	cpf := ""
	if strings.TrimSpace(in.ClientCpf) != "" {
		if !models.IsValidCPF(in.ClientCpf) {
			return models.Appointment{}, httperr.ErrBusiness("invalid_cpf")
		}
		cpf = models.NormalizeCPF(in.ClientCpf)
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora no timezone da barbearia
	// --------------------------------------------------
	start, err := domain.ParseSlot(in.Date, in.Time, uc.loc)
	if err != nil {
		return models.Appointment{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	if !domain.IsSlot(in.Time) {
		return models.Appointment{}, httperr.ErrBusiness("invalid_slot")
	}
	if start.Before(uc.now().In(uc.loc)) {
		return models.Appointment{}, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// 3️⃣ Serviço e profissional
	// --------------------------------------------------
	if _, ok, err := uc.repo.GetService(ctx, in.ServiceID); err != nil {
		return models.Appointment{}, err
	} else if !ok {
		return models.Appointment{}, httperr.ErrBusiness("service_not_found")
	}

	if _, ok, err := uc.repo.GetProfessional(ctx, in.ProfessionalID); err != nil {
		return models.Appointment{}, err
	} else if !ok {
		return models.Appointment{}, httperr.ErrBusiness("professional_not_found")
	}

	// --------------------------------------------------
	// 4️⃣ Conflito de horário
	// --------------------------------------------------
	// Read-then-write: two simultaneous bookings of the same slot can
	// both pass this check.
	existing, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return models.Appointment{}, err
	}
	free := domain.Availability(domain.AvailabilityInput{
		ProfessionalID: in.ProfessionalID,
		Date:           in.Date,
	}, existing)
	if !contains(free, in.Time) {
		return models.Appointment{}, httperr.ErrBusiness("time_conflict")
	}

	// --------------------------------------------------
	// 5️⃣ Criação (sempre pending)
	// --------------------------------------------------
	ap, err := uc.repo.CreateAppointment(ctx, models.Appointment{
		ClientName:     name,
		ClientPhone:    strings.TrimSpace(in.ClientPhone),
		ClientCpf:      cpf,
		ServiceID:      in.ServiceID,
		ProfessionalID: in.ProfessionalID,
		Date:           in.Date,
		Time:           in.Time,
	})
	if err != nil {
		return models.Appointment{}, err
	}

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Actor:    "public",
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"date":            ap.Date,
			"time":            ap.Time,
			"professional_id": ap.ProfessionalID,
		},
	})

	return ap, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
