package analytics

import (
	"time"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

var monthLabels = [12]string{
	"jan.", "fev.", "mar.", "abr.", "mai.", "jun.",
	"jul.", "ago.", "set.", "out.", "nov.", "dez.",
}

type Dashboard struct {
	TotalRevenue  float64    `json:"totalRevenue"`
	BarData       []BarDatum `json:"barData"`
	MaxRevenue    float64    `json:"maxRevenue"`
	TotalServices int        `json:"totalServices"`
	PieData       []Slice    `json:"pieData"`
	Arcs          []Arc      `json:"arcs"`
	ConicGradient string     `json:"conicGradient"`
}

// earnsRevenue: only confirmed and completed bookings are money in.
func earnsRevenue(s models.AppointmentStatus) bool {
	return s == models.StatusConfirmed || s == models.StatusCompleted
}

// countsAsDemand: popularity excludes only cancelled bookings, so pending
// ones count here while earning nothing. The two filters differ on purpose.
func countsAsDemand(s models.AppointmentStatus) bool {
	return s != models.StatusCancelled
}

// MonthLabel returns the short pt-BR month of the calendar date at the start
// of date ("2025-03-10" -> "mar."). ok=false when it does not parse.
func MonthLabel(date string) (string, bool) {
	if len(date) > 10 {
		date = date[:10]
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", false
	}
	return monthLabels[t.Month()-1], true
}

// BuildDashboard aggregates revenue per month and service popularity.
// Prices are resolved from the current catalog; an unknown service earns 0
// and is counted as UnknownService.
func BuildDashboard(appointments []models.Appointment, services []models.Service) Dashboard {
	catalog := servicesByID(services)

	revenue := newBucket()
	popularity := newBucket()
	var total float64

	for _, ap := range appointments {
		svc, known := catalog[ap.ServiceID]

		if earnsRevenue(ap.Status) {
			total += svc.Price
			if label, ok := MonthLabel(ap.Date); ok {
				revenue.add(label, svc.Price)
			}
		}

		if countsAsDemand(ap.Status) {
			name := UnknownService
			if known {
				name = svc.Name
			}
			popularity.add(name, 1)
		}
	}

	d := Dashboard{
		TotalRevenue: total,
		BarData:      make([]BarDatum, 0, len(revenue.names)),
		MaxRevenue:   1,
	}
	for _, n := range revenue.names {
		v := revenue.values[n]
		d.BarData = append(d.BarData, BarDatum{Name: n, Value: v})
		if v > d.MaxRevenue {
			d.MaxRevenue = v
		}
	}

	pie := popularity.sorted()
	var count float64
	for _, s := range pie {
		count += s.Value
	}
	d.TotalServices = int(count)
	percentages(pie, count)

	var before float64
	for i := range pie {
		pie[i].StartAngle = 360 * before / count
		before += pie[i].Value
		pie[i].EndAngle = 360 * before / count
	}

	d.PieData = pie
	d.Arcs = arcs(pie)
	d.ConicGradient = ConicGradient(d.Arcs)
	return d
}
