package api

import (
	"errors"
	"time"

	"github.com/dpereira/gymflow/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListMeals(c *fiber.Ctx) error {
	meals, err := handler.meals.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load meals")
	}
	return c.JSON(meals)
}

// CreateMeal logs one entry and adds its calories to the session counters.
func (handler *Handler) CreateMeal(c *fiber.Ctx) error {
	var input mealInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	meal, err := handler.meals.Add(input.Name, input.Category, input.Calories, input.Description, input.Time, input.Date, time.Now())
	if err != nil {
		return mealErrorResponse(c, err)
	}

	if _, err := handler.session.UpdateUserStats(0, meal.Calories); err != nil {
		handler.logger.Warn("failed to update user counters", "error", err)
	}
	return c.Status(fiber.StatusCreated).JSON(meal)
}

// DeleteMeal removes the entry and reverses its calorie delta.
func (handler *Handler) DeleteMeal(c *fiber.Ctx) error {
	meal, err := handler.meals.Remove(c.Params("id"))
	if err != nil {
		return mealErrorResponse(c, err)
	}

	if _, err := handler.session.UpdateUserStats(0, -meal.Calories); err != nil {
		handler.logger.Warn("failed to update user counters", "error", err)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

func (handler *Handler) MealsByDate(c *fiber.Ctx) error {
	date := c.Params("date")
	meals, err := handler.meals.ListByDate(date)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load meals")
	}
	total, err := handler.meals.DailyTotal(date)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load meals")
	}
	return c.JSON(fiber.Map{"date": date, "totalCalories": total, "meals": meals})
}

func (handler *Handler) MealDays(c *fiber.Ctx) error {
	days, err := handler.meals.TotalsByDay()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load meals")
	}
	return c.JSON(days)
}

func mealErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMealNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrMealNameRequired),
		errors.Is(err, services.ErrMealTimeRequired),
		errors.Is(err, services.ErrNegativeCalories),
		errors.Is(err, services.ErrInvalidMealCategory):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "meal operation failed")
	}
}
