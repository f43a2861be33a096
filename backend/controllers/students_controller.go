package controllers

import (
	"errors"
	"strings"

	"progreso/backend/config"
	"progreso/backend/models"
	"progreso/backend/scoring"
	"progreso/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StudentsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewStudentsController(db *gorm.DB, cfg *config.Config) *StudentsController {
	return &StudentsController{DB: db, Cfg: cfg}
}

// CreateOrGetStudent godoc
// @Summary Create or fetch a student
// @Description Crea el estudiante derivando su id de nombre+curso, o devuelve el existente
// @Tags students
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "name, course"
// @Success 200 {object} models.Student
// @Failure 400 {object} map[string]interface{}
// @Router /students [post]
func (sc *StudentsController) CreateOrGetStudent(c *fiber.Ctx) error {
	type StudentInput struct {
		Name   string `json:"name"`
		Course string `json:"course"`
	}

	var input StudentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	name := strings.TrimSpace(input.Name)
	course := strings.TrimSpace(input.Course)
	if name == "" || course == "" {
		return utils.BadRequest(c, "name and course are required")
	}

	sid := models.StudentID(name, course)

	var student models.Student
	err := sc.DB.Where("id = ?", sid).First(&student).Error
	if err == nil {
		return c.JSON(student)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "Could not query database")
	}

	student = models.Student{
		ID:        sid,
		Name:      name,
		Course:    course,
		CreatedAt: utils.NowISO(),
		Level:     scoring.DefaultLevel,
	}
	if err := sc.DB.Create(&student).Error; err != nil {
		return utils.InternalServerError(c, "Could not create student")
	}
	return c.JSON(student)
}

// GetStudentStats godoc
// @Summary Get student statistics
// @Description Estadísticas derivadas de los ledgers más el feed de actividad reciente
// @Tags students
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /student-stats/{id} [get]
func (sc *StudentsController) GetStudentStats(c *fiber.Ctx) error {
	studentID := c.Params("id")

	var student models.Student
	if err := sc.DB.Where("id = ?", studentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Student not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	// Orden de inserción: los agregadores dependen de él para los empates.
	var results []models.Result
	if err := sc.DB.Where("student_id = ?", studentID).Order("id").Find(&results).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var rewards []models.Reward
	if err := sc.DB.Where("student_id = ?", studentID).Order("id").Find(&rewards).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{
		"student":         student,
		"stats":           scoring.BuildStats(results, rewards),
		"recent_activity": scoring.RecentActivity(results, rewards),
	})
}
