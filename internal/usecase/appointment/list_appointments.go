package appointment

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/dto"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

// UnknownReference labels a service or professional that no longer exists.
const UnknownReference = "Desconhecido"

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute resolves names for the given bookings, newest date first.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	appointments []models.Appointment,
) ([]dto.AppointmentListDTO, error) {

	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	pros, err := uc.repo.ListProfessionals(ctx)
	if err != nil {
		return nil, err
	}

	svcByID := make(map[string]models.Service, len(services))
	for _, s := range services {
		svcByID[s.ID] = s
	}
	proByID := make(map[string]models.Professional, len(pros))
	for _, p := range pros {
		proByID[p.ID] = p
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		item := dto.AppointmentListDTO{
			ID:               ap.ID,
			ClientName:       ap.ClientName,
			ClientPhone:      ap.ClientPhone,
			ClientCpf:        ap.ClientCpf,
			Date:             ap.Date,
			Time:             ap.Time,
			Status:           ap.Status,
			ServiceID:        ap.ServiceID,
			ServiceName:      UnknownReference,
			ProfessionalID:   ap.ProfessionalID,
			ProfessionalName: UnknownReference,
		}
		if s, ok := svcByID[ap.ServiceID]; ok {
			item.ServiceName = s.Name
			item.ServicePrice = s.Price
		}
		if p, ok := proByID[ap.ProfessionalID]; ok {
			item.ProfessionalName = p.Name
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Time > out[j].Time
	})

	return out, nil
}
