package models

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealSnack     = "snack"
	MealDinner    = "dinner"
	MealOther     = "other"
)

// Meal is a diet-log entry. Date is the calendar day (2006-01-02) and is
// independent of Time, the entered time of day (15:04).
type Meal struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Calories    int    `json:"calories"`
	Description string `json:"description,omitempty"`
	Time        string `json:"time"`
	Date        string `json:"date"`
}

func IsValidMealCategory(category string) bool {
	switch category {
	case MealBreakfast, MealLunch, MealSnack, MealDinner, MealOther:
		return true
	}
	return false
}
