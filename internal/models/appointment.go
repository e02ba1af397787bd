package models

import "strings"

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment references its service and professional by id only; price and
// duration are always resolved live from the current catalog.
type Appointment struct {
	ID             string            `json:"id" validate:"required"`
	ClientName     string            `json:"clientName" validate:"required"`
	ClientPhone    string            `json:"clientPhone"`
	ClientCpf      string            `json:"clientCpf,omitempty" validate:"omitempty,len=11,numeric"`
	ServiceID      string            `json:"serviceId"`
	ProfessionalID string            `json:"professionalId"`
	Date           string            `json:"date"` // YYYY-MM-DD
	Time           string            `json:"time"` // HH:MM
	Status         AppointmentStatus `json:"status" validate:"oneof=pending confirmed completed cancelled"`
}

func (a *Appointment) Normalize() {
	a.Status = AppointmentStatus(normalizeEnum(string(a.Status)))
	if a.ClientCpf != "" {
		a.ClientCpf = NormalizeCPF(a.ClientCpf)
	}
}

func normalizeEnum(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
