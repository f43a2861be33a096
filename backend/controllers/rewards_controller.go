package controllers

import (
	"progreso/backend/config"
	"progreso/backend/models"
	"progreso/backend/scoring"
	"progreso/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RewardsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewRewardsController(db *gorm.DB, cfg *config.Config) *RewardsController {
	return &RewardsController{DB: db, Cfg: cfg}
}

// GetRewards godoc
// @Summary List rewards
// @Description Ledger de recompensas con total y resumen por tipo
// @Tags rewards
// @Produce json
// @Param student_id query string false "Filtrar por estudiante"
// @Success 200 {object} map[string]interface{}
// @Router /rewards [get]
func (rc *RewardsController) GetRewards(c *fiber.Ctx) error {
	query := rc.DB.Model(&models.Reward{}).Order("created_at DESC, id DESC")
	if studentID := c.Query("student_id"); studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}

	var rewards []models.Reward
	if err := query.Find(&rewards).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	total, summary := scoring.SummarizeRewards(rewards)
	if rewards == nil {
		rewards = []models.Reward{}
	}
	return c.JSON(fiber.Map{
		"total":   total,
		"items":   rewards,
		"summary": summary,
	})
}

// GetResults godoc
// @Summary List test results
// @Description Historial de tests con analítica agregada
// @Tags results
// @Produce json
// @Param student_id query string false "Filtrar por estudiante"
// @Success 200 {object} map[string]interface{}
// @Router /results [get]
func (rc *RewardsController) GetResults(c *fiber.Ctx) error {
	query := rc.DB.Model(&models.Result{}).Order("created_at DESC, id DESC")
	if studentID := c.Query("student_id"); studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}

	var results []models.Result
	if err := query.Find(&results).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	analytics := scoring.AnalyzeResults(results)
	if results == nil {
		results = []models.Result{}
	}
	return c.JSON(fiber.Map{
		"results":   results,
		"analytics": analytics,
	})
}
