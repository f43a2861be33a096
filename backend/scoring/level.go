package scoring

import (
	"sort"

	"progreso/backend/models"
)

// DefaultLevel es el nivel sugerido cuando no hay historial.
const DefaultLevel = 2

// SuggestLevel deriva el nivel sugerido a partir de los últimos resultados
// del estudiante: media de aciertos de los 3 más recientes. Es solo una
// sugerencia, no cambia el nivel activo.
func SuggestLevel(results []models.Result) int {
	if len(results) == 0 {
		return DefaultLevel
	}

	recent := make([]models.Result, len(results))
	copy(recent, results)
	// Orden estable: con created_at iguales gana el orden de inserción.
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt > recent[j].CreatedAt
	})
	if len(recent) > 3 {
		recent = recent[:3]
	}

	sum := 0
	for _, r := range recent {
		sum += r.Correct
	}
	avg := float64(sum) / float64(len(recent))

	switch {
	case avg >= 4:
		return 3
	case avg >= 2.5:
		return 2
	default:
		return 1
	}
}
