package controllers

import (
	"encoding/json"
	"strings"

	"progreso/backend/config"
	"progreso/backend/models"
	"progreso/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminController gestiona el contenido de referencia: catálogo de videos y
// banco de preguntas. Las rutas van protegidas por el middleware de auth.
type AdminController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAdminController(db *gorm.DB, cfg *config.Config) *AdminController {
	return &AdminController{DB: db, Cfg: cfg}
}

// CreateVideo godoc
// @Summary Add a video to the catalogue
// @Tags admin
// @Accept json
// @Produce json
// @Success 201 {object} models.Video
// @Failure 400 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin/videos [post]
func (ac *AdminController) CreateVideo(c *fiber.Ctx) error {
	var video models.Video
	if err := c.BodyParser(&video); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	video.Subject = strings.TrimSpace(video.Subject)
	video.Title = strings.TrimSpace(video.Title)
	if video.Subject == "" || video.Title == "" {
		return utils.BadRequest(c, "subject y title son requeridos")
	}
	if video.ID == "" {
		video.ID = uuid.NewString()
	}

	if err := ac.DB.Create(&video).Error; err != nil {
		return utils.InternalServerError(c, "Could not create video")
	}
	return c.Status(fiber.StatusCreated).JSON(video)
}

// CreateQuestion godoc
// @Summary Add a question to the bank
// @Tags admin
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin/questions [post]
func (ac *AdminController) CreateQuestion(c *fiber.Ctx) error {
	type QuestionInput struct {
		ID          string   `json:"id"`
		Level       int      `json:"level"`
		Text        string   `json:"text"`
		Options     []string `json:"options"`
		AnswerIndex int      `json:"answer_index"`
	}

	var input QuestionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	input.Text = strings.TrimSpace(input.Text)
	if input.Text == "" {
		return utils.BadRequest(c, "text es requerido")
	}
	if len(input.Options) != 4 {
		return utils.BadRequest(c, "options debe tener exactamente 4 elementos")
	}
	if input.AnswerIndex < 0 || input.AnswerIndex >= len(input.Options) {
		return utils.BadRequest(c, "answer_index fuera de rango")
	}
	if input.Level == 0 {
		input.Level = 2
	}
	if input.ID == "" {
		input.ID = uuid.NewString()
	}

	encoded, err := json.Marshal(input.Options)
	if err != nil {
		return utils.InternalServerError(c, "Could not encode options")
	}

	question := models.Question{
		ID:          input.ID,
		Level:       input.Level,
		Text:        input.Text,
		Options:     string(encoded),
		AnswerIndex: input.AnswerIndex,
	}
	if err := ac.DB.Create(&question).Error; err != nil {
		return utils.InternalServerError(c, "Could not create question")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":           question.ID,
		"level":        question.Level,
		"text":         question.Text,
		"options":      input.Options,
		"answer_index": question.AnswerIndex,
	})
}
