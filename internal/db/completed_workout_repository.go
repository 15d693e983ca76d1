package db

import (
	"github.com/dpereira/gymflow/internal/models"
)

// CompletedWorkoutRepository persists the append-only session history.
type CompletedWorkoutRepository struct {
	kv *KVStore
}

func NewCompletedWorkoutRepository(kv *KVStore) *CompletedWorkoutRepository {
	return &CompletedWorkoutRepository{kv: kv}
}

func (repo *CompletedWorkoutRepository) List() ([]models.CompletedWorkout, error) {
	completed := make([]models.CompletedWorkout, 0)
	if _, err := repo.kv.Get(completedWorkoutsKey, &completed); err != nil {
		return nil, err
	}
	return completed, nil
}

func (repo *CompletedWorkoutRepository) ReplaceAll(completed []models.CompletedWorkout) error {
	if completed == nil {
		completed = make([]models.CompletedWorkout, 0)
	}
	return repo.kv.Set(completedWorkoutsKey, completed)
}

func (repo *CompletedWorkoutRepository) Append(record models.CompletedWorkout) error {
	completed, err := repo.List()
	if err != nil {
		return err
	}
	return repo.ReplaceAll(append(completed, record))
}

// Remove deletes one history record. Deleting history can retroactively
// un-earn achievements; that is accepted behavior.
func (repo *CompletedWorkoutRepository) Remove(recordID string) (bool, error) {
	completed, err := repo.List()
	if err != nil {
		return false, err
	}
	kept := make([]models.CompletedWorkout, 0, len(completed))
	removed := false
	for _, record := range completed {
		if record.ID == recordID {
			removed = true
			continue
		}
		kept = append(kept, record)
	}
	if !removed {
		return false, nil
	}
	return true, repo.ReplaceAll(kept)
}
