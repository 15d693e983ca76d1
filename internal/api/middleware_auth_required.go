package api

import (
	"github.com/gofiber/fiber/v2"
)

// AuthRequired validates the auth cookie and re-checks the token against
// the stored session pointer: a token minted for a user who is no longer
// the active session does not authenticate.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	tokenString := c.Cookies(authCookieName)
	if tokenString == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	claims, err := handler.parseToken(tokenString)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, active := handler.session.CurrentUser()
	if !active || user.ID != claims.UserID {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

// PremiumOnly gates premium-plan features such as the diet log.
func (handler *Handler) PremiumOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if !user.IsPremium() {
		return apiError(c, fiber.StatusForbidden, "premium plan required")
	}
	return c.Next()
}
