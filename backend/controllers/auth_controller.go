package controllers

import (
	"errors"
	"strings"

	"progreso/backend/config"
	"progreso/backend/models"
	"progreso/backend/scoring"
	"progreso/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// Register godoc
// @Summary Register a new account
// @Description Registra un usuario nuevo y crea su student asociado
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "username, password, name, course"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	type RegisterInput struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Course   string `json:"course"`
	}

	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	username := strings.ToLower(strings.TrimSpace(input.Username))
	password := strings.TrimSpace(input.Password)
	name := strings.TrimSpace(input.Name)
	course := strings.TrimSpace(input.Course)

	if username == "" || password == "" || name == "" || course == "" {
		return utils.BadRequest(c, "username, password, name y course son requeridos")
	}

	// username único (case-insensitive; se guarda ya en minúsculas)
	var existing models.Student
	if err := ac.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		return utils.Conflict(c, "username ya existe")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "Could not query database")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	student := models.Student{
		ID:           "user_" + username,
		Username:     username,
		PasswordHash: string(hashedPassword),
		Name:         name,
		Course:       course,
		CreatedAt:    utils.NowISO(),
		Level:        scoring.DefaultLevel,
	}
	if err := ac.DB.Create(&student).Error; err != nil {
		return utils.InternalServerError(c, "Could not create student")
	}

	token, err := utils.GenerateJWTToken(student.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	out := student.Public()
	out["token"] = token
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary Log in
// @Description Inicia sesión y devuelve el student con su token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "username, password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	username := strings.ToLower(strings.TrimSpace(input.Username))
	password := strings.TrimSpace(input.Password)

	if username == "" || password == "" {
		return utils.BadRequest(c, "username y password son requeridos")
	}

	var student models.Student
	if err := ac.DB.Where("username = ?", username).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, "credenciales inválidas")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password)); err != nil {
		return utils.Unauthorized(c, "credenciales inválidas")
	}

	token, err := utils.GenerateJWTToken(student.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	out := student.Public()
	out["token"] = token
	return c.JSON(out)
}

// Logout confirma el cierre de sesión. Stateless: el cliente borra su token.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}
