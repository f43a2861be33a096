package scoring

import (
	"fmt"
	"math"
	"sort"

	"progreso/backend/models"
)

// Stats es la vista derivada de estadísticas de un estudiante. Se calcula
// siempre desde los ledgers, no desde los contadores del registro Student.
type Stats struct {
	TotalPoints    int     `json:"total_points"`
	TestsCompleted int     `json:"tests_completed"`
	VideosWatched  int     `json:"videos_watched"`
	SuggestedLevel int     `json:"suggested_level"`
	AvgScore       float64 `json:"avg_score"`
}

// BuildStats agrega resultados y recompensas de un estudiante.
func BuildStats(results []models.Result, rewards []models.Reward) Stats {
	stats := Stats{
		TestsCompleted: len(results),
		SuggestedLevel: SuggestLevel(results),
	}
	for _, r := range rewards {
		stats.TotalPoints += r.Points
		if r.Type == models.RewardTypeVideo {
			stats.VideosWatched++
		}
	}
	if len(results) > 0 {
		sum := 0
		for _, r := range results {
			sum += r.Correct
		}
		stats.AvgScore = float64(sum) / float64(len(results))
	}
	return stats
}

// ActivityEntry es un elemento del feed de actividad reciente.
type ActivityEntry struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Points      int    `json:"points"`
}

// RecentActivity construye el feed: los últimos 5 tests más los videos
// recompensados, ordenados por fecha descendente y recortados a 5.
//
// Los puntos de las entradas de test son una estimación de pantalla
// (10 + aciertos*8, con aciertos recortados a 0-5) y no el importe real del
// ledger. Las dos fórmulas se mantienen separadas a propósito.
func RecentActivity(results []models.Result, rewards []models.Reward) []ActivityEntry {
	entries := []ActivityEntry{}

	recent := results
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	for _, r := range recent {
		entries = append(entries, ActivityEntry{
			Type:        "test",
			Description: fmt.Sprintf("Test completado: %d/5 correctas", r.Correct),
			Date:        r.CreatedAt,
			Points:      displayTestPoints(r.Correct),
		})
	}

	for _, w := range rewards {
		if w.Type == models.RewardTypeVideo {
			entries = append(entries, ActivityEntry{
				Type:        "video",
				Description: w.Reason,
				Date:        w.CreatedAt,
				Points:      w.Points,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
	if len(entries) > 5 {
		entries = entries[:5]
	}
	return entries
}

func displayTestPoints(correct int) int {
	if correct < 0 {
		correct = 0
	}
	if correct > 5 {
		correct = 5
	}
	return TestBasePoints + correct*PointsPerCorrect
}

// TypeSummary acumula recuento y puntos por tipo de recompensa.
type TypeSummary struct {
	Count  int `json:"count"`
	Points int `json:"points"`
}

// SummarizeRewards devuelve el total de puntos y el resumen por tipo.
// La suma de puntos del resumen siempre coincide con el total.
func SummarizeRewards(rewards []models.Reward) (int, map[string]TypeSummary) {
	total := 0
	byType := make(map[string]TypeSummary)
	for _, r := range rewards {
		total += r.Points
		key := r.Type
		if key == "" {
			key = "other"
		}
		s := byType[key]
		s.Count++
		s.Points += r.Points
		byType[key] = s
	}
	return total, byType
}

// ResultAnalytics resume el historial de tests de un estudiante.
type ResultAnalytics struct {
	TotalTests int     `json:"total_tests"`
	AvgScore   float64 `json:"avg_score"`
	BestScore  int     `json:"best_score"`
	AvgLevel   float64 `json:"avg_level"`
}

// AnalyzeResults calcula media, mejor puntuación y nivel medio, con las
// medias redondeadas a un decimal.
func AnalyzeResults(results []models.Result) ResultAnalytics {
	analytics := ResultAnalytics{TotalTests: len(results)}
	if len(results) == 0 {
		return analytics
	}

	sumCorrect, sumLevel := 0, 0
	analytics.BestScore = results[0].Correct
	for _, r := range results {
		sumCorrect += r.Correct
		sumLevel += r.FinalLevel
		if r.Correct > analytics.BestScore {
			analytics.BestScore = r.Correct
		}
	}
	n := float64(len(results))
	analytics.AvgScore = round1(float64(sumCorrect) / n)
	analytics.AvgLevel = round1(float64(sumLevel) / n)
	return analytics
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
