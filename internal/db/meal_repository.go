package db

import (
	"github.com/dpereira/gymflow/internal/models"
)

type MealRepository struct {
	kv *KVStore
}

func NewMealRepository(kv *KVStore) *MealRepository {
	return &MealRepository{kv: kv}
}

func (repo *MealRepository) List() ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if _, err := repo.kv.Get(mealsKey, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (repo *MealRepository) ReplaceAll(meals []models.Meal) error {
	if meals == nil {
		meals = make([]models.Meal, 0)
	}
	return repo.kv.Set(mealsKey, meals)
}

func (repo *MealRepository) Add(meal models.Meal) error {
	meals, err := repo.List()
	if err != nil {
		return err
	}
	return repo.ReplaceAll(append(meals, meal))
}

// Remove deletes the meal and returns it so the caller can reverse the
// calorie delta on the user totals.
func (repo *MealRepository) Remove(mealID string) (models.Meal, bool, error) {
	meals, err := repo.List()
	if err != nil {
		return models.Meal{}, false, err
	}
	kept := make([]models.Meal, 0, len(meals))
	var removed models.Meal
	found := false
	for _, meal := range meals {
		if meal.ID == mealID {
			removed = meal
			found = true
			continue
		}
		kept = append(kept, meal)
	}
	if !found {
		return models.Meal{}, false, nil
	}
	return removed, true, repo.ReplaceAll(kept)
}
