package api

import (
	"github.com/dpereira/gymflow/internal/models"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func currentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(contextUserKey).(models.User)
	return user, ok
}
