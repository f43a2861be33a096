package scoring

import (
	"errors"
	"math/rand"
	"sort"

	"progreso/backend/models"
)

// ErrNoQuestions indica que el banco de preguntas está vacío para cualquier
// nivel utilizable.
var ErrNoQuestions = errors.New("no questions found")

// PickQuestion elige una pregunta del nivel pedido, o del nivel existente
// más cercano si no hay ninguna exacta (empate: gana el nivel menor). La
// elección dentro del conjunto final es uniforme sobre rng, inyectado para
// poder fijarla en tests. Cada llamada es independiente: no se evita repetir.
func PickQuestion(questions []models.Question, level int, rng *rand.Rand) (models.Question, error) {
	subset := atLevel(questions, level)

	if len(subset) == 0 {
		levels := distinctLevels(questions)
		if len(levels) > 0 {
			closest := levels[0]
			for _, l := range levels[1:] {
				if abs(l-level) < abs(closest-level) {
					closest = l
				}
			}
			subset = atLevel(questions, closest)
		}
	}

	if len(subset) == 0 {
		return models.Question{}, ErrNoQuestions
	}
	return subset[rng.Intn(len(subset))], nil
}

func atLevel(questions []models.Question, level int) []models.Question {
	var out []models.Question
	for _, q := range questions {
		if q.Level == level {
			out = append(out, q)
		}
	}
	return out
}

func distinctLevels(questions []models.Question) []int {
	seen := make(map[int]bool)
	var levels []int
	for _, q := range questions {
		if q.Level != 0 && !seen[q.Level] {
			seen[q.Level] = true
			levels = append(levels, q.Level)
		}
	}
	sort.Ints(levels)
	return levels
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
