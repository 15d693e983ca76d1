package api

import (
	"time"

	"github.com/dpereira/gymflow/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) StatsOverview(c *fiber.Ctx) error {
	stats, err := handler.stats.BuildDashboard(time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build stats")
	}
	return c.JSON(stats)
}

func (handler *Handler) StatsWeekly(c *fiber.Ctx) error {
	progress, err := handler.stats.BuildWeeklyProgress(time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build stats")
	}
	return c.JSON(progress)
}

func (handler *Handler) StatsAchievements(c *fiber.Ctx) error {
	achievements, err := handler.stats.BuildAchievements(time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build stats")
	}
	return c.JSON(fiber.Map{
		"achievements": achievements,
		"earned":       services.CountEarned(achievements),
	})
}

// StatsCalendar renders the month grid. The displayed month defaults to the
// current one and moves with the offset query parameter, in months.
func (handler *Handler) StatsCalendar(c *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	year := c.QueryInt("year", now.Year())
	month := time.Month(c.QueryInt("month", int(now.Month())))
	if month < time.January || month > time.December {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}
	if offset := c.QueryInt("offset", 0); offset != 0 {
		year, month = services.ShiftMonth(year, month, offset)
	}

	history, err := handler.workouts.History()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build calendar")
	}

	grid := services.BuildMonthGrid(history, year, month, now, handler.location)
	return c.JSON(fiber.Map{
		"year":  year,
		"month": int(month),
		"days":  grid,
	})
}
