package api

import (
	"errors"
	"time"

	"github.com/dpereira/gymflow/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListWorkouts(c *fiber.Ctx) error {
	workouts, err := handler.workouts.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load workouts")
	}
	return c.JSON(workouts)
}

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	var input workoutInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	workout, err := handler.workouts.Create(input.Name, input.Exercises)
	if err != nil {
		return workoutErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

func (handler *Handler) UpdateWorkout(c *fiber.Ctx) error {
	var input workoutInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	workout, err := handler.workouts.Update(c.Params("id"), input.Name, input.Exercises)
	if err != nil {
		return workoutErrorResponse(c, err)
	}
	return c.JSON(workout)
}

func (handler *Handler) DeleteWorkout(c *fiber.Ctx) error {
	if err := handler.workouts.Delete(c.Params("id")); err != nil {
		return workoutErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

func (handler *Handler) ToggleFavoriteWorkout(c *fiber.Ctx) error {
	workout, err := handler.workouts.ToggleFavorite(c.Params("id"))
	if err != nil {
		return workoutErrorResponse(c, err)
	}
	return c.JSON(workout)
}

// CompleteWorkout snapshots the template into the history and bumps the
// session counters by one workout.
func (handler *Handler) CompleteWorkout(c *fiber.Ctx) error {
	var input completeWorkoutInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	record, err := handler.workouts.Complete(c.Params("id"), input.Duration, time.Now())
	if err != nil {
		return workoutErrorResponse(c, err)
	}

	if _, err := handler.session.UpdateUserStats(1, 0); err != nil {
		handler.logger.Warn("failed to update user counters", "error", err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) ListHistory(c *fiber.Ctx) error {
	history, err := handler.workouts.History()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load history")
	}
	return c.JSON(history)
}

// DeleteHistoryRecord removes one completed session. Counters keep their
// delta-maintained values; only the dashboard aggregates recompute.
func (handler *Handler) DeleteHistoryRecord(c *fiber.Ctx) error {
	if err := handler.workouts.DeleteHistoryRecord(c.Params("id")); err != nil {
		return workoutErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

func (handler *Handler) ExportWorkouts(c *fiber.Ctx) error {
	share, err := handler.workouts.Export(time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to export workouts")
	}
	return c.JSON(share)
}

func (handler *Handler) ImportWorkouts(c *fiber.Ctx) error {
	imported, err := handler.workouts.Import(c.Body())
	if err != nil {
		if errors.Is(err, services.ErrInvalidShare) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to import workouts")
	}
	return c.JSON(fiber.Map{"imported": imported})
}

func workoutErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrWorkoutNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrWorkoutNameRequired),
		errors.Is(err, services.ErrWorkoutNeedsExercise),
		errors.Is(err, services.ErrInvalidExercise):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "workout operation failed")
	}
}
