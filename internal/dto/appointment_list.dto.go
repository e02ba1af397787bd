package dto

import "github.com/BruksfildServices01/barberpro/internal/models"

// AppointmentListDTO is a booking with its references resolved against the
// current catalog.
type AppointmentListDTO struct {
	ID               string                   `json:"id"`
	ClientName       string                   `json:"clientName"`
	ClientPhone      string                   `json:"clientPhone"`
	ClientCpf        string                   `json:"clientCpf,omitempty"`
	Date             string                   `json:"date"`
	Time             string                   `json:"time"`
	Status           models.AppointmentStatus `json:"status"`
	ServiceID        string                   `json:"serviceId"`
	ServiceName      string                   `json:"serviceName"`
	ServicePrice     float64                  `json:"servicePrice"`
	ProfessionalID   string                   `json:"professionalId"`
	ProfessionalName string                   `json:"professionalName"`
}
