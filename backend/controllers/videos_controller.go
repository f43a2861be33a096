package controllers

import (
	"errors"
	"fmt"

	"progreso/backend/config"
	"progreso/backend/models"
	"progreso/backend/scoring"
	"progreso/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type VideosController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewVideosController(db *gorm.DB, cfg *config.Config) *VideosController {
	return &VideosController{DB: db, Cfg: cfg}
}

// GetMaterias devuelve la lista ordenada de materias con videos.
func (vc *VideosController) GetMaterias(c *fiber.Ctx) error {
	var materias []string
	if err := vc.DB.Model(&models.Video{}).
		Where("subject <> ''").
		Distinct().
		Order("subject").
		Pluck("subject", &materias).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if materias == nil {
		materias = []string{}
	}
	return c.JSON(materias)
}

// GetVideos godoc
// @Summary List videos
// @Description Lista videos, filtrable por materia; con student_id marca los completados
// @Tags videos
// @Produce json
// @Param materia query string false "Filtrar por materia"
// @Param student_id query string false "Marcar completados para este estudiante"
// @Success 200 {array} map[string]interface{}
// @Router /videos [get]
func (vc *VideosController) GetVideos(c *fiber.Ctx) error {
	query := vc.DB.Model(&models.Video{}).Order("id")
	if materia := c.Query("materia"); materia != "" {
		query = query.Where("subject = ?", materia)
	}

	var videos []models.Video
	if err := query.Find(&videos).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	completed := make(map[string]bool)
	if studentID := c.Query("student_id"); studentID != "" {
		var videoIDs []string
		if err := vc.DB.Model(&models.Reward{}).
			Where("student_id = ? AND type = ?", studentID, models.RewardTypeVideo).
			Pluck("video_id", &videoIDs).Error; err != nil {
			return utils.InternalServerError(c, "Could not query database")
		}
		for _, id := range videoIDs {
			completed[id] = true
		}
	}

	out := make([]fiber.Map, 0, len(videos))
	for _, v := range videos {
		out = append(out, fiber.Map{
			"id":          v.ID,
			"subject":     v.Subject,
			"title":       v.Title,
			"description": v.Description,
			"duration":    v.Duration,
			"url":         v.URL,
			"completed":   completed[v.ID],
		})
	}
	return c.JSON(out)
}

// CompleteVideo godoc
// @Summary Mark a video as completed
// @Description Registra la recompensa por video; la segunda vez no otorga puntos
// @Tags videos
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "student_id, video_id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /video-completo [post]
func (vc *VideosController) CompleteVideo(c *fiber.Ctx) error {
	type CompleteInput struct {
		StudentID string `json:"student_id"`
		VideoID   string `json:"video_id"`
	}

	var input CompleteInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.StudentID == "" || input.VideoID == "" {
		return utils.BadRequest(c, "student_id y video_id son requeridos")
	}

	var student models.Student
	if err := vc.DB.Where("id = ?", input.StudentID).First(&student).Error; err != nil {
		return utils.NotFound(c, "Student or video not found")
	}
	var video models.Video
	if err := vc.DB.Where("id = ?", input.VideoID).First(&video).Error; err != nil {
		return utils.NotFound(c, "Student or video not found")
	}

	// La comprobación dentro de la transacción resuelve el caso secuencial;
	// dos peticiones concurrentes pueden ver ambas count == 0, y entonces
	// la segunda inserción choca con el índice único (student_id, video_id).
	awarded := 0
	err := vc.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Reward{}).
			Where("student_id = ? AND type = ? AND video_id = ?",
				input.StudentID, models.RewardTypeVideo, input.VideoID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		points := scoring.ScoreVideo(video.Duration)
		reward := models.Reward{
			StudentID: input.StudentID,
			Type:      models.RewardTypeVideo,
			VideoID:   &input.VideoID,
			Points:    points,
			Reason:    fmt.Sprintf("Video completado: %s", video.Title),
			CreatedAt: utils.NowISO(),
		}
		if err := tx.Create(&reward).Error; err != nil {
			return err
		}

		student.VideosWatched++
		student.TotalPoints += points
		if err := tx.Save(&student).Error; err != nil {
			return err
		}

		awarded = points
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(fiber.Map{"ok": true, "awarded": 0, "message": "Video ya completado"})
		}
		return utils.InternalServerError(c, "Could not record completion")
	}

	if awarded == 0 {
		return c.JSON(fiber.Map{"ok": true, "awarded": 0, "message": "Video ya completado"})
	}
	return c.JSON(fiber.Map{"ok": true, "awarded": awarded})
}
