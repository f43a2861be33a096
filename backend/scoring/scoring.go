package scoring

import (
	"strconv"
	"strings"
)

const (
	VideoBasePoints  = 10
	VideoLongPoints  = 20
	longVideoSeconds = 600

	TestBasePoints   = 10
	PointsPerCorrect = 8
	PointsPerLevel   = 5
)

// Breakdown detalla cómo se compone la recompensa de un test.
type Breakdown struct {
	Base     int `json:"base"`
	Accuracy int `json:"accuracy"`
	Speed    int `json:"speed"`
	Level    int `json:"level"`
}

// ScoreVideo calcula los puntos por completar un video según su duración
// "mm:ss". Una duración malformada vale como video corto: nunca falla.
func ScoreVideo(duration string) int {
	seconds, ok := parseDuration(duration)
	if !ok {
		return VideoBasePoints
	}
	if seconds >= longVideoSeconds {
		return VideoLongPoints
	}
	return VideoBasePoints
}

func parseDuration(d string) (int, bool) {
	parts := strings.Split(d, ":")
	if len(parts) != 2 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	s, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return m*60 + s, true
}

// ScoreTest calcula los puntos de un test terminado. No valida rangos:
// valores fuera de 0-5 entran tal cual en la fórmula.
func ScoreTest(correct, finalLevel, durationSeconds int) (int, Breakdown) {
	speed := 10 - durationSeconds/60
	if speed < 0 {
		speed = 0
	}
	b := Breakdown{
		Base:     TestBasePoints,
		Accuracy: correct * PointsPerCorrect,
		Speed:    speed,
		Level:    finalLevel * PointsPerLevel,
	}
	return b.Base + b.Accuracy + b.Speed + b.Level, b
}
