package appointment

import (
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

// ===============================
// Appointment Status
// ===============================

// InitialStatus is the status every new booking starts with.
func InitialStatus() models.AppointmentStatus {
	return models.StatusPending
}

// IsTerminal reports whether no further transition is allowed.
func IsTerminal(s models.AppointmentStatus) bool {
	return s == models.StatusCompleted || s == models.StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanTransition: pending -> confirmed -> completed, and any non-terminal
// status may be cancelled. Pending may also be completed directly (walk-in
// confirmed at the chair).
func CanTransition(from, to models.AppointmentStatus) error {
	if !to.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}
	if IsTerminal(from) || from == to {
		return httperr.ErrBusiness("invalid_state")
	}

	switch to {
	case models.StatusConfirmed:
		if from != models.StatusPending {
			return httperr.ErrBusiness("invalid_state")
		}
	case models.StatusPending:
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// OccupiesSlot reports whether the booking still blocks its time slot.
func OccupiesSlot(s models.AppointmentStatus) bool {
	return s != models.StatusCancelled
}
