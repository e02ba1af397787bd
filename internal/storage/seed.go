package storage

import "github.com/BruksfildServices01/barberpro/internal/models"

// Returned by Load while the collection has never been saved.
var seeds = map[string]any{
	CollectionServices: []models.Service{
		{
			ID:          "1",
			Name:        "Corte Clássico",
			Price:       50,
			Duration:    45,
			Description: "Um corte tradicional com tesoura e acabamento na navalha, incluindo lavagem e finalização.",
		},
		{
			ID:          "2",
			Name:        "Barba Terapia",
			Price:       40,
			Duration:    30,
			Description: "Ritual completo com toalha quente, esfoliação, hidratação e modelagem da barba.",
		},
		{
			ID:          "3",
			Name:        "Corte + Barba (Combo)",
			Price:       80,
			Duration:    75,
			Description: "A experiência completa para o homem moderno. Renovação total do visual.",
		},
	},
	CollectionProfessionals: []models.Professional{
		{
			ID:        "1",
			Name:      `Carlos "Navalha" Silva`,
			Specialty: "Cortes Clássicos",
			Bio:       "Mais de 10 anos de experiência transformando visuais com precisão cirúrgica.",
			AvatarURL: "https://picsum.photos/200/200?random=1",
		},
		{
			ID:        "2",
			Name:      "André Fade",
			Specialty: "Degradê e Freestyle",
			Bio:       "Especialista em cortes modernos e desenhos artísticos no cabelo.",
			AvatarURL: "https://picsum.photos/200/200?random=2",
		},
	},
}

func seedFor[T any](collection string) []T {
	rows, ok := seeds[collection].([]T)
	if !ok {
		return []T{}
	}
	out := make([]T, len(rows))
	copy(out, rows)
	return out
}
