package api

import (
	"github.com/gofiber/fiber/v2"
)

// SyncPush is the manual foreground push; unlike the background auto-sync
// its outcome is reported to the caller.
func (handler *Handler) SyncPush(c *fiber.Ctx) error {
	if err := handler.session.SyncToCloud(c.Context()); err != nil {
		handler.logger.Warn("manual push failed", "error", err)
		return apiError(c, fiber.StatusBadGateway, "sync to cloud failed")
	}
	return c.JSON(fiber.Map{"status": "pushed"})
}

// SyncPull overwrites local state with the last-pushed remote snapshot.
// Local changes made since the last push are lost by design.
func (handler *Handler) SyncPull(c *fiber.Ctx) error {
	updated, err := handler.session.SyncFromCloud(c.Context())
	if err != nil {
		handler.logger.Warn("manual pull failed", "error", err)
		return apiError(c, fiber.StatusBadGateway, "sync from cloud failed")
	}
	if !updated {
		return c.JSON(fiber.Map{"status": "nothing to pull"})
	}

	user, _ := handler.session.CurrentUser()
	return c.JSON(fiber.Map{"status": "pulled", "user": user})
}
