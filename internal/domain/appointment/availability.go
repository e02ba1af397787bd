package appointment

import (
	"time"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Slots is the fixed daily grid offered for booking. Lunch (12:00-14:00)
// is simply absent from it.
var Slots = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00", "18:00"}

type AvailabilityInput struct {
	ProfessionalID string
	Date           string // YYYY-MM-DD
}

// IsSlot reports whether hm is one of the bookable slots.
func IsSlot(hm string) bool {
	for _, s := range Slots {
		if s == hm {
			return true
		}
	}
	return false
}

// Availability returns the grid minus the slots held by bookings of the same
// professional on the same date.
func Availability(in AvailabilityInput, appointments []models.Appointment) []string {
	taken := make(map[string]bool)
	for _, ap := range appointments {
		if ap.ProfessionalID != in.ProfessionalID || ap.Date != in.Date {
			continue
		}
		if OccupiesSlot(ap.Status) {
			taken[ap.Time] = true
		}
	}

	out := make([]string, 0, len(Slots))
	for _, s := range Slots {
		if !taken[s] {
			out = append(out, s)
		}
	}
	return out
}

// ParseSlot parses a booking date and time in loc.
func ParseSlot(date, hm string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+hm, loc)
}
