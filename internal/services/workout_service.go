package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/dpereira/gymflow/internal/db"
	"github.com/dpereira/gymflow/internal/models"
	"github.com/dpereira/gymflow/internal/security"
)

var (
	ErrWorkoutNameRequired  = errors.New("workout name is required")
	ErrWorkoutNeedsExercise = errors.New("workout must contain at least one exercise")
	ErrWorkoutNotFound      = errors.New("workout not found")
	ErrInvalidExercise      = errors.New("invalid exercise")
	ErrInvalidShare         = errors.New("invalid share payload")
)

type WorkoutService struct {
	workouts  *db.WorkoutRepository
	completed *db.CompletedWorkoutRepository
}

func NewWorkoutService(workouts *db.WorkoutRepository, completed *db.CompletedWorkoutRepository) *WorkoutService {
	return &WorkoutService{workouts: workouts, completed: completed}
}

func (service *WorkoutService) List() ([]models.Workout, error) {
	return service.workouts.List()
}

func (service *WorkoutService) History() ([]models.CompletedWorkout, error) {
	return service.completed.List()
}

func (service *WorkoutService) Create(name string, exercises []models.Exercise) (models.Workout, error) {
	normalized, err := normalizeWorkoutInput(name, exercises)
	if err != nil {
		return models.Workout{}, err
	}

	workout := models.Workout{
		ID:        security.NewRecordID("workout"),
		Name:      strings.TrimSpace(name),
		Exercises: normalized,
	}
	if err := service.workouts.Add(workout); err != nil {
		return models.Workout{}, err
	}
	return workout, nil
}

// Update replaces name and exercises, keeping the id and favorite flag.
func (service *WorkoutService) Update(workoutID string, name string, exercises []models.Exercise) (models.Workout, error) {
	existing, found, err := service.workouts.FindByID(workoutID)
	if err != nil {
		return models.Workout{}, err
	}
	if !found {
		return models.Workout{}, ErrWorkoutNotFound
	}

	normalized, err := normalizeWorkoutInput(name, exercises)
	if err != nil {
		return models.Workout{}, err
	}

	existing.Name = strings.TrimSpace(name)
	existing.Exercises = normalized
	if _, err := service.workouts.Update(existing); err != nil {
		return models.Workout{}, err
	}
	return existing, nil
}

func (service *WorkoutService) Delete(workoutID string) error {
	removed, err := service.workouts.Remove(workoutID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrWorkoutNotFound
	}
	return nil
}

func (service *WorkoutService) ToggleFavorite(workoutID string) (models.Workout, error) {
	workout, found, err := service.workouts.FindByID(workoutID)
	if err != nil {
		return models.Workout{}, err
	}
	if !found {
		return models.Workout{}, ErrWorkoutNotFound
	}

	workout.IsFavorite = !workout.IsFavorite
	if _, err := service.workouts.Update(workout); err != nil {
		return models.Workout{}, err
	}
	return workout, nil
}

// Complete records a finished session as an immutable snapshot of the
// template's name and exercises, plus the realized duration.
func (service *WorkoutService) Complete(workoutID string, duration string, now time.Time) (models.CompletedWorkout, error) {
	workout, found, err := service.workouts.FindByID(workoutID)
	if err != nil {
		return models.CompletedWorkout{}, err
	}
	if !found {
		return models.CompletedWorkout{}, ErrWorkoutNotFound
	}

	snapshot := make([]models.Exercise, len(workout.Exercises))
	copy(snapshot, workout.Exercises)

	record := models.CompletedWorkout{
		ID:          security.NewRecordID("session"),
		Name:        workout.Name,
		Exercises:   snapshot,
		Duration:    strings.TrimSpace(duration),
		CompletedAt: now,
	}
	if err := service.completed.Append(record); err != nil {
		return models.CompletedWorkout{}, err
	}
	return record, nil
}

func (service *WorkoutService) DeleteHistoryRecord(recordID string) error {
	removed, err := service.completed.Remove(recordID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrWorkoutNotFound
	}
	return nil
}

// Export wraps the whole template collection in a versioned envelope for
// sharing between installations.
func (service *WorkoutService) Export(now time.Time) (models.WorkoutShare, error) {
	workouts, err := service.workouts.List()
	if err != nil {
		return models.WorkoutShare{}, err
	}
	return models.WorkoutShare{
		Workouts:   workouts,
		ExportedAt: now,
		Version:    models.WorkoutShareVersion,
	}, nil
}

// Import appends the shared templates with freshly generated ids and
// favorite flags reset, so imported workouts never collide with local ones.
func (service *WorkoutService) Import(raw []byte) (int, error) {
	var share models.WorkoutShare
	if err := json.Unmarshal(raw, &share); err != nil {
		return 0, ErrInvalidShare
	}
	if share.Workouts == nil {
		return 0, ErrInvalidShare
	}

	existing, err := service.workouts.List()
	if err != nil {
		return 0, err
	}

	for _, workout := range share.Workouts {
		workout.ID = security.NewRecordID("workout")
		workout.IsFavorite = false
		existing = append(existing, workout)
	}
	if err := service.workouts.ReplaceAll(existing); err != nil {
		return 0, err
	}
	return len(share.Workouts), nil
}

func normalizeWorkoutInput(name string, exercises []models.Exercise) ([]models.Exercise, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrWorkoutNameRequired
	}
	if len(exercises) == 0 {
		return nil, ErrWorkoutNeedsExercise
	}

	normalized := make([]models.Exercise, 0, len(exercises))
	for _, exercise := range exercises {
		exercise.Name = strings.TrimSpace(exercise.Name)
		if exercise.Name == "" || !models.IsValidExerciseKind(exercise.Kind) {
			return nil, ErrInvalidExercise
		}
		switch exercise.Kind {
		case models.ExerciseMuscular:
			if exercise.Sets < 1 || exercise.Reps < 1 || exercise.Weight < 0 {
				return nil, ErrInvalidExercise
			}
			exercise.Duration = 0
		case models.ExerciseCardio:
			if exercise.Duration < 1 {
				return nil, ErrInvalidExercise
			}
			exercise.Sets = 0
			exercise.Reps = 0
			exercise.Weight = 0
		}
		normalized = append(normalized, exercise)
	}
	return normalized, nil
}
