package middleware

import (
	"progreso/backend/config"
	"progreso/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware exige un token JWT válido en Authorization.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, err := utils.ExtractStudentIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		return c.Next()
	}
}
