package utils

import "github.com/gofiber/fiber/v2"

// Todos los errores de los handlers comparten la forma {"error": mensaje}.

func Err(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Err(c, fiber.StatusBadRequest, message)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Err(c, fiber.StatusUnauthorized, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Err(c, fiber.StatusNotFound, message)
}

func Conflict(c *fiber.Ctx, message string) error {
	return Err(c, fiber.StatusConflict, message)
}

func InternalServerError(c *fiber.Ctx, message string) error {
	return Err(c, fiber.StatusInternalServerError, message)
}
