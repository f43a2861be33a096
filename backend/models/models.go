package models

import (
	"encoding/json"
	"strings"
)

// Student combina la cuenta y el progreso acumulado. Los contadores
// total_points/tests_completed/videos_watched son orientativos; la fuente
// de verdad son los ledgers de rewards y results.
type Student struct {
	ID             string `gorm:"primaryKey" json:"id"`
	Name           string `json:"name"`
	Course         string `json:"course"`
	Username       string `gorm:"index" json:"username,omitempty"`
	PasswordHash   string `json:"-"`
	CreatedAt      string `json:"created_at"`
	TotalPoints    int    `json:"total_points"`
	Level          int    `gorm:"default:2" json:"level"`
	TestsCompleted int    `json:"tests_completed"`
	VideosWatched  int    `json:"videos_watched"`
}

// StudentID deriva el id estable a partir de nombre y curso.
func StudentID(name, course string) string {
	slug := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(s), " ", "_")
	}
	return slug(name) + "__" + slug(course)
}

// Public devuelve el estudiante sin el hash de contraseña.
func (s Student) Public() map[string]interface{} {
	out := map[string]interface{}{
		"id":              s.ID,
		"name":            s.Name,
		"course":          s.Course,
		"created_at":      s.CreatedAt,
		"total_points":    s.TotalPoints,
		"level":           s.Level,
		"tests_completed": s.TestsCompleted,
		"videos_watched":  s.VideosWatched,
	}
	if s.Username != "" {
		out["username"] = s.Username
	}
	return out
}

type Video struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Subject     string `gorm:"index" json:"subject"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"` // mm:ss
	URL         string `json:"url"`
}

type Question struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Level       int    `gorm:"index" json:"level"`
	Text        string `json:"text"`
	Options     string `json:"-"` // JSON array of 4 options
	AnswerIndex int    `json:"answer_index"`
}

// OptionList decodifica las opciones almacenadas.
func (q Question) OptionList() []string {
	var opts []string
	if err := json.Unmarshal([]byte(q.Options), &opts); err != nil {
		return []string{}
	}
	return opts
}

// Result registra un intento de test adaptativo terminado. Append-only.
type Result struct {
	ID              uint   `gorm:"primaryKey" json:"-"`
	StudentID       string `gorm:"index" json:"student_id"`
	Correct         int    `json:"correct"`
	FinalLevel      int    `json:"final_level"`
	DurationSeconds int    `json:"duration_seconds"`
	CreatedAt       string `json:"created_at"`
}

// Reward es una entrada del ledger de puntos. Append-only; para type=video
// existe como máximo una entrada por (student_id, video_id), garantizada por
// el índice único compuesto. VideoID es NULL en las recompensas de test y
// los NULL nunca chocan entre sí en el índice.
type Reward struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	StudentID string  `gorm:"index;uniqueIndex:idx_video_reward" json:"student_id"`
	Type      string  `json:"type"` // "video" | "test"
	VideoID   *string `gorm:"uniqueIndex:idx_video_reward" json:"video_id,omitempty"`
	Points    int     `json:"points"`
	Reason    string  `json:"reason"`
	CreatedAt string  `json:"created_at"`
}

const (
	RewardTypeVideo = "video"
	RewardTypeTest  = "test"
)
