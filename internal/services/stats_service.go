package services

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dpereira/gymflow/internal/models"
)

// WeeklyGoalTarget is the fixed number of sessions that counts as a full
// week.
const WeeklyGoalTarget = 5

type WeeklyGoal struct {
	Current    int `json:"current"`
	Target     int `json:"target"`
	Percentage int `json:"percentage"`
}

// DashboardStats is recomputed from the completed-workout history on every
// read; nothing here is persisted. TotalWorkouts counts history records and
// can drift from the delta-maintained counter on the User.
type DashboardStats struct {
	WeeklyGoal         WeeklyGoal `json:"weeklyGoal"`
	MonthlyWorkouts    int        `json:"monthlyWorkouts"`
	TotalWorkouts      int        `json:"totalWorkouts"`
	StreakDays         int        `json:"streakDays"`
	AvgDurationMinutes int        `json:"avgDurationMinutes"`
	FavoriteExercise   string     `json:"favoriteExercise"`
}

type DayProgress struct {
	Day             string `json:"day"`
	Completed       bool   `json:"completed"`
	DurationMinutes int    `json:"durationMinutes"`
}

type StatsHistoryReader interface {
	List() ([]models.CompletedWorkout, error)
}

type StatsService struct {
	history  StatsHistoryReader
	location *time.Location
}

func NewStatsService(history StatsHistoryReader, location *time.Location) *StatsService {
	if location == nil {
		location = time.UTC
	}
	return &StatsService{history: history, location: location}
}

func (service *StatsService) BuildDashboard(now time.Time) (DashboardStats, error) {
	history, err := service.history.List()
	if err != nil {
		return DashboardStats{}, err
	}
	return BuildDashboardStats(history, now, service.location), nil
}

func (service *StatsService) BuildWeeklyProgress(now time.Time) ([]DayProgress, error) {
	history, err := service.history.List()
	if err != nil {
		return nil, err
	}
	return BuildWeeklyProgress(history, now, service.location), nil
}

func (service *StatsService) BuildAchievements(now time.Time) ([]Achievement, error) {
	history, err := service.history.List()
	if err != nil {
		return nil, err
	}
	return EvaluateAchievements(history, now, service.location), nil
}

func BuildDashboardStats(history []models.CompletedWorkout, now time.Time, location *time.Location) DashboardStats {
	weekStart := WeekStart(now, location)
	monthStart := MonthStart(now, location)

	thisWeek := 0
	thisMonth := 0
	for _, record := range history {
		completedAt := record.CompletedAt.In(location)
		if !completedAt.Before(weekStart) {
			thisWeek++
		}
		if !completedAt.Before(monthStart) {
			thisMonth++
		}
	}

	return DashboardStats{
		WeeklyGoal: WeeklyGoal{
			Current:    thisWeek,
			Target:     WeeklyGoalTarget,
			Percentage: weeklyGoalPercentage(thisWeek),
		},
		MonthlyWorkouts:    thisMonth,
		TotalWorkouts:      len(history),
		StreakDays:         CalculateStreak(history, now, location),
		AvgDurationMinutes: AverageDurationMinutes(history),
		FavoriteExercise:   FavoriteExercise(history),
	}
}

// weeklyGoalPercentage clamps at 100: completions beyond the target never
// report overshoot.
func weeklyGoalPercentage(current int) int {
	percentage := int(math.Round(float64(current) / float64(WeeklyGoalTarget) * 100))
	if percentage > 100 {
		return 100
	}
	return percentage
}

// CalculateStreak counts consecutive calendar days with at least one
// completed workout, walking backward from today. When the most recent
// entry is yesterday the walk anchors there instead; any older gap breaks
// the streak immediately, so a lone entry two days ago yields 0.
func CalculateStreak(history []models.CompletedWorkout, now time.Time, location *time.Location) int {
	if len(history) == 0 {
		return 0
	}

	uniqueDays := make(map[string]time.Time, len(history))
	for _, record := range history {
		day := DateAtLocation(record.CompletedAt, location)
		uniqueDays[day.Format(dayKeyLayout)] = day
	}

	days := make([]time.Time, 0, len(uniqueDays))
	for _, day := range uniqueDays {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := DateAtLocation(now, location)
	cursor := today
	streak := 0
	for index, day := range days {
		if day.Equal(cursor) {
			streak++
			cursor = cursor.AddDate(0, 0, -1)
			continue
		}
		if index == 0 && day.Equal(today.AddDate(0, 0, -1)) {
			streak++
			cursor = day.AddDate(0, 0, -1)
			continue
		}
		break
	}
	return streak
}

// ParseDurationMinutes reads the leading integer of a free-form duration
// entry. Malformed or missing values parse to 0 and still count toward
// averages, pulling them down rather than being excluded.
func ParseDurationMinutes(raw string) int {
	trimmed := strings.TrimSpace(raw)
	end := 0
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	value, err := strconv.Atoi(trimmed[:end])
	if err != nil {
		return 0
	}
	return value
}

func AverageDurationMinutes(history []models.CompletedWorkout) int {
	if len(history) == 0 {
		return 0
	}
	total := 0
	for _, record := range history {
		total += ParseDurationMinutes(record.Duration)
	}
	return int(math.Round(float64(total) / float64(len(history))))
}

// FavoriteExercise returns the exercise name with the highest occurrence
// count across the history. Ties break toward the name encountered first
// in completion order; an empty history yields "".
func FavoriteExercise(history []models.CompletedWorkout) string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, record := range history {
		for _, exercise := range record.Exercises {
			if _, seen := counts[exercise.Name]; !seen {
				order = append(order, exercise.Name)
			}
			counts[exercise.Name]++
		}
	}

	favorite := ""
	favoriteCount := 0
	for _, name := range order {
		if counts[name] > favoriteCount {
			favorite = name
			favoriteCount = counts[name]
		}
	}
	return favorite
}

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// BuildWeeklyProgress reports the current Monday-to-Sunday window: one flag
// and total duration per day.
func BuildWeeklyProgress(history []models.CompletedWorkout, now time.Time, location *time.Location) []DayProgress {
	weekStart := WeekStart(now, location)

	progress := make([]DayProgress, 7)
	for index := range progress {
		day := weekStart.AddDate(0, 0, index)
		total := 0
		completed := false
		for _, record := range history {
			if SameDay(record.CompletedAt, day, location) {
				completed = true
				total += ParseDurationMinutes(record.Duration)
			}
		}
		progress[index] = DayProgress{
			Day:             weekdayLabels[index],
			Completed:       completed,
			DurationMinutes: total,
		}
	}
	return progress
}

// MaxWeeklyWorkouts returns the highest completion count observed in any
// single Monday-anchored week across the history.
func MaxWeeklyWorkouts(history []models.CompletedWorkout, location *time.Location) int {
	weekCounts := make(map[string]int)
	for _, record := range history {
		weekKey := WeekStart(record.CompletedAt, location).Format(dayKeyLayout)
		weekCounts[weekKey]++
	}

	max := 0
	for _, count := range weekCounts {
		if count > max {
			max = count
		}
	}
	return max
}
