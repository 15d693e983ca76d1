package services

import (
	"time"

	"github.com/dpereira/gymflow/internal/models"
)

// CalendarDay is one cell of a Monday-first month grid.
type CalendarDay struct {
	Date         time.Time `json:"date"`
	DateString   string    `json:"dateString"`
	Day          int       `json:"day"`
	InMonth      bool      `json:"inMonth"`
	IsToday      bool      `json:"isToday"`
	Completed    bool      `json:"completed"`
	WorkoutCount int       `json:"workoutCount"`
}

// GroupByDay buckets history records by exact calendar day.
func GroupByDay(history []models.CompletedWorkout, location *time.Location) map[string][]models.CompletedWorkout {
	grouped := make(map[string][]models.CompletedWorkout)
	for _, record := range history {
		key := DayKey(record.CompletedAt, location)
		grouped[key] = append(grouped[key], record)
	}
	return grouped
}

// ShiftMonth moves a displayed-month cursor by offset months. Navigation is
// pure offset arithmetic; no view state is persisted.
func ShiftMonth(year int, month time.Month, offset int) (int, time.Month) {
	shifted := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, offset, 0)
	return shifted.Year(), shifted.Month()
}

// BuildMonthGrid renders the displayed month as whole Monday-to-Sunday
// weeks, padding with the neighboring months' days.
func BuildMonthGrid(history []models.CompletedWorkout, year int, month time.Month, now time.Time, location *time.Location) []CalendarDay {
	if location == nil {
		location = time.UTC
	}

	grouped := GroupByDay(history, location)
	today := DateAtLocation(now, location)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, location)
	gridStart := WeekStart(monthStart, location)
	monthEnd := monthStart.AddDate(0, 1, -1)

	days := make([]CalendarDay, 0, 42)
	for cursor := gridStart; ; cursor = cursor.AddDate(0, 0, 1) {
		if cursor.After(monthEnd) && cursor.Weekday() == time.Monday {
			break
		}

		key := cursor.Format(dayKeyLayout)
		records := grouped[key]
		days = append(days, CalendarDay{
			Date:         cursor,
			DateString:   key,
			Day:          cursor.Day(),
			InMonth:      cursor.Month() == month,
			IsToday:      cursor.Equal(today),
			Completed:    len(records) > 0,
			WorkoutCount: len(records),
		})
	}
	return days
}
