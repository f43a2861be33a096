package controllers

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"progreso/backend/config"
	"progreso/backend/models"
	"progreso/backend/scoring"
	"progreso/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TestsController struct {
	DB  *gorm.DB
	Cfg *config.Config

	mu  sync.Mutex
	rng *rand.Rand
}

func NewTestsController(db *gorm.DB, cfg *config.Config) *TestsController {
	return &TestsController{
		DB:  db,
		Cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewTestsControllerWithRand permite fijar la fuente aleatoria en tests.
func NewTestsControllerWithRand(db *gorm.DB, cfg *config.Config, rng *rand.Rand) *TestsController {
	return &TestsController{DB: db, Cfg: cfg, rng: rng}
}

// GetQuestion godoc
// @Summary Get an adaptive question
// @Description Devuelve una pregunta del nivel pedido, o del más cercano disponible
// @Tags tests
// @Produce json
// @Param nivel query int false "Nivel de dificultad (1-3)" default(2)
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /pregunta [get]
func (tc *TestsController) GetQuestion(c *fiber.Ctx) error {
	nivel := c.QueryInt("nivel", scoring.DefaultLevel)

	var questions []models.Question
	if err := tc.DB.Find(&questions).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	tc.mu.Lock()
	question, err := scoring.PickQuestion(questions, nivel, tc.rng)
	tc.mu.Unlock()
	if err != nil {
		if errors.Is(err, scoring.ErrNoQuestions) {
			return utils.NotFound(c, "no questions found")
		}
		return utils.InternalServerError(c, "Could not pick question")
	}

	return c.JSON(fiber.Map{
		"id":           question.ID,
		"level":        question.Level,
		"text":         question.Text,
		"options":      question.OptionList(),
		"answer_index": question.AnswerIndex,
	})
}

// SubmitResult godoc
// @Summary Submit a test result
// @Description Registra el resultado, calcula la recompensa y devuelve el desglose
// @Tags tests
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "student_id, correct, final_level, duration_seconds"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /test-result [post]
func (tc *TestsController) SubmitResult(c *fiber.Ctx) error {
	type ResultInput struct {
		StudentID       string `json:"student_id"`
		Correct         int    `json:"correct"`
		FinalLevel      *int   `json:"final_level"`
		DurationSeconds int    `json:"duration_seconds"`
	}

	var input ResultInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.StudentID == "" {
		return utils.BadRequest(c, "student_id required")
	}

	finalLevel := scoring.DefaultLevel
	if input.FinalLevel != nil {
		finalLevel = *input.FinalLevel
	}

	total, breakdown := scoring.ScoreTest(input.Correct, finalLevel, input.DurationSeconds)

	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		result := models.Result{
			StudentID:       input.StudentID,
			Correct:         input.Correct,
			FinalLevel:      finalLevel,
			DurationSeconds: input.DurationSeconds,
			CreatedAt:       utils.NowISO(),
		}
		if err := tx.Create(&result).Error; err != nil {
			return err
		}

		reward := models.Reward{
			StudentID: input.StudentID,
			Type:      models.RewardTypeTest,
			Points:    total,
			Reason: fmt.Sprintf("Test completado (%d/5) nivel final %d en %dm %ds",
				input.Correct, finalLevel, input.DurationSeconds/60, input.DurationSeconds%60),
			CreatedAt: utils.NowISO(),
		}
		if err := tx.Create(&reward).Error; err != nil {
			return err
		}

		// Contadores orientativos; si el estudiante no existe el resultado
		// queda registrado igualmente.
		var student models.Student
		if err := tx.Where("id = ?", input.StudentID).First(&student).Error; err == nil {
			student.TestsCompleted++
			student.TotalPoints += total
			if err := tx.Save(&student).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not record result")
	}

	return c.JSON(fiber.Map{
		"ok":        true,
		"awarded":   total,
		"breakdown": breakdown,
	})
}
