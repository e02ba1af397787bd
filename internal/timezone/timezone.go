// Package timezone resolves the shop's wall clock. Booking dates and slot
// times are local to the shop, never UTC.
package timezone

import (
	"time"

	"github.com/BruksfildServices01/barberpro/internal/logging"
)

const DefaultTimezone = "America/Sao_Paulo"

// Location loads tz, falling back to DefaultTimezone and then to a fixed
// UTC-3 zone when the host has no tz database.
func Location(tz string) *time.Location {
	if loc, err := time.LoadLocation(tz); err == nil && tz != "" {
		return loc
	}
	if tz != "" {
		logging.Warn().Str("timezone", tz).Msg("unknown timezone, using default")
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.FixedZone("BRT", -3*60*60)
}
