package appointment

import "github.com/BruksfildServices01/barberpro/internal/models"

// ===============================
// Domain Actions
// ===============================

// ChangeStatus applies the transition in place, leaving ap untouched when
// it is refused.
func ChangeStatus(ap *models.Appointment, to models.AppointmentStatus) error {
	if err := CanTransition(ap.Status, to); err != nil {
		return err
	}
	ap.Status = to
	return nil
}
