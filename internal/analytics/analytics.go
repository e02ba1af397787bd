// Package analytics derives the admin dashboard figures from snapshots of
// the collections. Everything is recomputed from scratch on every call; no
// function here touches storage.
package analytics

import (
	"slices"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

// UnknownService labels bookings whose service no longer exists.
const UnknownService = "Desconhecido"

// NeutralColor fills the chart when there is nothing to plot.
const NeutralColor = "#2d2d2d"

// Palette is cycled over chart slices in their sorted order.
var Palette = []string{"#d4af37", "#a18323", "#7a6112", "#f3d97f", "#4a3b0b", "#8c701c"}

type BarDatum struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Slice is one entry of a pie chart. StartAngle/EndAngle are degrees of
// the conic sweep, in [0, 360].
type Slice struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
}

// Arc is a renderable segment of a conic chart.
type Arc struct {
	Color      string  `json:"color"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
}

// bucket accumulates values per label, remembering first-seen order.
type bucket struct {
	names  []string
	values map[string]float64
}

func newBucket() *bucket {
	return &bucket{values: make(map[string]float64)}
}

func (b *bucket) add(name string, v float64) {
	if _, ok := b.values[name]; !ok {
		b.names = append(b.names, name)
	}
	b.values[name] += v
}

// sorted returns the entries by value descending; ties keep first-seen order.
func (b *bucket) sorted() []Slice {
	out := make([]Slice, 0, len(b.names))
	for _, n := range b.names {
		out = append(out, Slice{Name: n, Value: b.values[n]})
	}
	slices.SortStableFunc(out, func(a, b Slice) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		}
		return 0
	})
	for i := range out {
		out[i].Color = Palette[i%len(Palette)]
	}
	return out
}

func percentages(items []Slice, total float64) {
	for i := range items {
		if total > 0 {
			items[i].Percentage = 100 * items[i].Value / total
		}
	}
}

// arcs closes the partition: the last slice always ends at exactly 360.
func arcs(items []Slice) []Arc {
	if len(items) == 0 {
		return []Arc{{Color: NeutralColor, StartAngle: 0, EndAngle: 360}}
	}
	items[len(items)-1].EndAngle = 360

	out := make([]Arc, 0, len(items))
	for _, it := range items {
		out = append(out, Arc{Color: it.Color, StartAngle: it.StartAngle, EndAngle: it.EndAngle})
	}
	return out
}

// ConicGradient renders arcs as a CSS conic-gradient() value.
func ConicGradient(arcs []Arc) string {
	parts := make([]string, 0, len(arcs))
	for _, a := range arcs {
		parts = append(parts, a.Color+" "+deg(a.StartAngle)+" "+deg(a.EndAngle))
	}
	return "conic-gradient(" + strings.Join(parts, ", ") + ")"
}

func deg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "deg"
}

func servicesByID(services []models.Service) map[string]models.Service {
	out := make(map[string]models.Service, len(services))
	for _, s := range services {
		if _, dup := out[s.ID]; !dup {
			out[s.ID] = s
		}
	}
	return out
}
