package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/dpereira/gymflow/internal/db"
	"github.com/dpereira/gymflow/internal/models"
	"github.com/dpereira/gymflow/internal/security"
)

var (
	ErrMealNameRequired    = errors.New("meal name is required")
	ErrMealTimeRequired    = errors.New("meal time is required")
	ErrNegativeCalories    = errors.New("calories must be non-negative")
	ErrInvalidMealCategory = errors.New("invalid meal category")
	ErrMealNotFound        = errors.New("meal not found")
)

type MealService struct {
	meals    *db.MealRepository
	location *time.Location
}

// DayCalories aggregates one calendar day of the diet log.
type DayCalories struct {
	Date          string        `json:"date"`
	TotalCalories int           `json:"totalCalories"`
	Meals         []models.Meal `json:"meals"`
}

func NewMealService(meals *db.MealRepository, location *time.Location) *MealService {
	if location == nil {
		location = time.UTC
	}
	return &MealService{meals: meals, location: location}
}

func (service *MealService) List() ([]models.Meal, error) {
	return service.meals.List()
}

func (service *MealService) Add(name string, category string, calories int, description string, timeOfDay string, date string, now time.Time) (models.Meal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Meal{}, ErrMealNameRequired
	}
	if strings.TrimSpace(timeOfDay) == "" {
		return models.Meal{}, ErrMealTimeRequired
	}
	if calories < 0 {
		return models.Meal{}, ErrNegativeCalories
	}
	if category == "" {
		category = models.MealOther
	}
	if !models.IsValidMealCategory(category) {
		return models.Meal{}, ErrInvalidMealCategory
	}
	if strings.TrimSpace(date) == "" {
		date = DayKey(now, service.location)
	}

	meal := models.Meal{
		ID:          security.NewRecordID("meal"),
		Name:        name,
		Category:    category,
		Calories:    calories,
		Description: strings.TrimSpace(description),
		Time:        strings.TrimSpace(timeOfDay),
		Date:        date,
	}
	if err := service.meals.Add(meal); err != nil {
		return models.Meal{}, err
	}
	return meal, nil
}

// Remove deletes the meal and returns it so the caller can reverse its
// calorie delta on the user totals.
func (service *MealService) Remove(mealID string) (models.Meal, error) {
	removed, found, err := service.meals.Remove(mealID)
	if err != nil {
		return models.Meal{}, err
	}
	if !found {
		return models.Meal{}, ErrMealNotFound
	}
	return removed, nil
}

func (service *MealService) ListByDate(date string) ([]models.Meal, error) {
	meals, err := service.meals.List()
	if err != nil {
		return nil, err
	}
	matched := make([]models.Meal, 0)
	for _, meal := range meals {
		if meal.Date == date {
			matched = append(matched, meal)
		}
	}
	return matched, nil
}

// DailyTotal sums the calories logged on one calendar day.
func (service *MealService) DailyTotal(date string) (int, error) {
	meals, err := service.ListByDate(date)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, meal := range meals {
		total += meal.Calories
	}
	return total, nil
}

// TotalsByDay groups the diet log per calendar day, most recent day first.
func (service *MealService) TotalsByDay() ([]DayCalories, error) {
	meals, err := service.meals.List()
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*DayCalories)
	for _, meal := range meals {
		day, exists := byDate[meal.Date]
		if !exists {
			day = &DayCalories{Date: meal.Date, Meals: make([]models.Meal, 0, 1)}
			byDate[meal.Date] = day
		}
		day.TotalCalories += meal.Calories
		day.Meals = append(day.Meals, meal)
	}

	days := make([]DayCalories, 0, len(byDate))
	for _, day := range byDate {
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date > days[j].Date })
	return days, nil
}
