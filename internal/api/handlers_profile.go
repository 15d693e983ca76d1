package api

import (
	"github.com/dpereira/gymflow/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := handler.profiles.Load(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	return c.JSON(profile)
}

func (handler *Handler) SaveProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input profileInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	profile, err := handler.profiles.Save(models.Profile{
		UserID:     user.ID,
		Age:        input.Age,
		Weight:     input.Weight,
		Height:     input.Height,
		Goal:       input.Goal,
		Experience: input.Experience,
		Bio:        input.Bio,
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}
	return c.JSON(profile)
}
