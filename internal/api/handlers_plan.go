package api

import (
	"github.com/gofiber/fiber/v2"
)

// UpgradePlan is idempotent: upgrading an already-premium user leaves the
// plan unchanged and duplicates nothing.
func (handler *Handler) UpgradePlan(c *fiber.Ctx) error {
	user, err := handler.session.UpgradeToPremium(c.Context())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to change plan")
	}
	return c.JSON(user)
}

func (handler *Handler) DowngradePlan(c *fiber.Ctx) error {
	user, err := handler.session.DowngradeToBasic(c.Context())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to change plan")
	}
	return c.JSON(user)
}
