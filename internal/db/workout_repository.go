package db

import (
	"github.com/dpereira/gymflow/internal/models"
)

type WorkoutRepository struct {
	kv *KVStore
}

func NewWorkoutRepository(kv *KVStore) *WorkoutRepository {
	return &WorkoutRepository{kv: kv}
}

func (repo *WorkoutRepository) List() ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if _, err := repo.kv.Get(workoutsKey, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *WorkoutRepository) ReplaceAll(workouts []models.Workout) error {
	if workouts == nil {
		workouts = make([]models.Workout, 0)
	}
	return repo.kv.Set(workoutsKey, workouts)
}

func (repo *WorkoutRepository) FindByID(workoutID string) (models.Workout, bool, error) {
	workouts, err := repo.List()
	if err != nil {
		return models.Workout{}, false, err
	}
	for _, workout := range workouts {
		if workout.ID == workoutID {
			return workout, true, nil
		}
	}
	return models.Workout{}, false, nil
}

func (repo *WorkoutRepository) Add(workout models.Workout) error {
	workouts, err := repo.List()
	if err != nil {
		return err
	}
	return repo.ReplaceAll(append(workouts, workout))
}

// Update replaces the stored workout with the same id. The second return is
// false when no workout matched.
func (repo *WorkoutRepository) Update(updated models.Workout) (bool, error) {
	workouts, err := repo.List()
	if err != nil {
		return false, err
	}
	for index, workout := range workouts {
		if workout.ID == updated.ID {
			workouts[index] = updated
			return true, repo.ReplaceAll(workouts)
		}
	}
	return false, nil
}

func (repo *WorkoutRepository) Remove(workoutID string) (bool, error) {
	workouts, err := repo.List()
	if err != nil {
		return false, err
	}
	kept := make([]models.Workout, 0, len(workouts))
	removed := false
	for _, workout := range workouts {
		if workout.ID == workoutID {
			removed = true
			continue
		}
		kept = append(kept, workout)
	}
	if !removed {
		return false, nil
	}
	return true, repo.ReplaceAll(kept)
}
