package api

import (
	"errors"
	"time"

	"github.com/dpereira/gymflow/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListPhotos(c *fiber.Ctx) error {
	groups, err := handler.photos.GroupedByDate()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load photos")
	}
	return c.JSON(groups)
}

func (handler *Handler) CreatePhoto(c *fiber.Ctx) error {
	var input photoInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	photo, err := handler.photos.Add(input.Data, input.FileName, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrPhotoDataRequired) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save photo")
	}
	return c.Status(fiber.StatusCreated).JSON(photo)
}

func (handler *Handler) DeletePhoto(c *fiber.Ctx) error {
	if err := handler.photos.Remove(c.Params("id")); err != nil {
		if errors.Is(err, services.ErrPhotoNotFound) {
			return apiError(c, fiber.StatusNotFound, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete photo")
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}
