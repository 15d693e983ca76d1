package api

import (
	"errors"

	"github.com/dpereira/gymflow/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validateLoginInput(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := handler.session.Login(c.Context(), input.Name, input.Email)
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) || errors.Is(err, services.ErrEmailRequired) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		handler.logger.Error("login failed", "error", err)
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}
	return c.JSON(user)
}

// Logout drops the session pointer and the cookie. Collections and the
// local-user registry stay behind.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	if err := handler.session.Logout(); err != nil {
		handler.logger.Warn("logout cleanup failed", "error", err)
	}
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"status": "logged out"})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}

func (handler *Handler) SessionState(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"state": handler.session.State()})
}
