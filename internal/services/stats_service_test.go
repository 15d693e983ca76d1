package services

import (
	"testing"
	"time"

	"github.com/dpereira/gymflow/internal/models"
)

func completedOn(day time.Time, duration string, exercises ...string) models.CompletedWorkout {
	record := models.CompletedWorkout{
		ID:          "session-" + day.Format("2006-01-02") + "-" + duration,
		Name:        "Treino",
		Duration:    duration,
		CompletedAt: day,
	}
	for _, name := range exercises {
		record.Exercises = append(record.Exercises, models.Exercise{Name: name, Kind: models.ExerciseMuscular, Sets: 3, Reps: 10})
	}
	return record
}

func TestCalculateStreak(t *testing.T) {
	now := time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	cases := []struct {
		name    string
		history []models.CompletedWorkout
		want    int
	}{
		{"empty history", nil, 0},
		{"today only", []models.CompletedWorkout{completedOn(day(0), "30 min")}, 1},
		{
			"three consecutive days ending today",
			[]models.CompletedWorkout{
				completedOn(day(0), "30 min"),
				completedOn(day(-1), "30 min"),
				completedOn(day(-2), "30 min"),
			},
			3,
		},
		{
			"anchors on yesterday when today is empty",
			[]models.CompletedWorkout{
				completedOn(day(-1), "30 min"),
				completedOn(day(-2), "30 min"),
			},
			2,
		},
		{"lone record two days ago", []models.CompletedWorkout{completedOn(day(-2), "30 min")}, 0},
		{
			"gap breaks the walk",
			[]models.CompletedWorkout{
				completedOn(day(0), "30 min"),
				completedOn(day(-2), "30 min"),
				completedOn(day(-3), "30 min"),
			},
			1,
		},
		{
			"multiple records on one day count once",
			[]models.CompletedWorkout{
				completedOn(day(0), "30 min"),
				completedOn(day(0), "45 min"),
				completedOn(day(-1), "30 min"),
			},
			2,
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			got := CalculateStreak(testCase.history, now, time.UTC)
			if got != testCase.want {
				t.Fatalf("CalculateStreak = %d, want %d", got, testCase.want)
			}
		})
	}
}

func TestWeeklyGoalPercentageClampsAtHundred(t *testing.T) {
	cases := []struct {
		current int
		want    int
	}{
		{0, 0},
		{1, 20},
		{2, 40},
		{5, 100},
		{8, 100},
	}

	for _, testCase := range cases {
		if got := weeklyGoalPercentage(testCase.current); got != testCase.want {
			t.Fatalf("weeklyGoalPercentage(%d) = %d, want %d", testCase.current, got, testCase.want)
		}
	}
}

func TestParseDurationMinutes(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"45 min", 45},
		{"60", 60},
		{"  30 min ", 30},
		{"uma hora", 0},
		{"", 0},
		{"12x ", 12},
	}

	for _, testCase := range cases {
		if got := ParseDurationMinutes(testCase.raw); got != testCase.want {
			t.Fatalf("ParseDurationMinutes(%q) = %d, want %d", testCase.raw, got, testCase.want)
		}
	}
}

func TestAverageDurationCountsMalformedEntries(t *testing.T) {
	now := time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC)
	history := []models.CompletedWorkout{
		completedOn(now, "60 min"),
		completedOn(now, "30 min"),
		completedOn(now, "livre"),
	}

	// The malformed entry parses to 0 and drags the mean down.
	if got := AverageDurationMinutes(history); got != 30 {
		t.Fatalf("AverageDurationMinutes = %d, want 30", got)
	}
}

func TestFavoriteExercise(t *testing.T) {
	now := time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC)

	t.Run("empty history yields empty name", func(t *testing.T) {
		if got := FavoriteExercise(nil); got != "" {
			t.Fatalf("FavoriteExercise = %q, want empty", got)
		}
	})

	t.Run("highest count wins", func(t *testing.T) {
		history := []models.CompletedWorkout{
			completedOn(now, "30 min", "Supino", "Agachamento"),
			completedOn(now, "30 min", "Agachamento"),
		}
		if got := FavoriteExercise(history); got != "Agachamento" {
			t.Fatalf("FavoriteExercise = %q, want Agachamento", got)
		}
	})

	t.Run("tie breaks toward first encountered", func(t *testing.T) {
		history := []models.CompletedWorkout{
			completedOn(now, "30 min", "Supino"),
			completedOn(now, "30 min", "Agachamento"),
		}
		if got := FavoriteExercise(history); got != "Supino" {
			t.Fatalf("FavoriteExercise = %q, want Supino", got)
		}
	})
}

func TestBuildWeeklyProgress(t *testing.T) {
	// Thursday 2026-03-05; week runs Monday 03-02 through Sunday 03-08.
	now := time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC)
	history := []models.CompletedWorkout{
		completedOn(time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC), "40 min"),
		completedOn(time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC), "20 min"),
		completedOn(time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC), "45 min"),
		completedOn(time.Date(2026, 2, 27, 12, 0, 0, 0, time.UTC), "90 min"),
	}

	progress := BuildWeeklyProgress(history, now, time.UTC)
	if len(progress) != 7 {
		t.Fatalf("expected 7 days, got %d", len(progress))
	}
	if progress[0].Day != "Mon" || progress[6].Day != "Sun" {
		t.Fatalf("unexpected day labels %q..%q", progress[0].Day, progress[6].Day)
	}
	if !progress[0].Completed || progress[0].DurationMinutes != 60 {
		t.Fatalf("Monday = %+v, want completed with 60 minutes", progress[0])
	}
	if !progress[3].Completed || progress[3].DurationMinutes != 45 {
		t.Fatalf("Thursday = %+v, want completed with 45 minutes", progress[3])
	}
	if progress[1].Completed || progress[6].Completed {
		t.Fatal("expected untouched days to be incomplete")
	}
}

func TestBuildDashboardStats(t *testing.T) {
	now := time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC)
	history := []models.CompletedWorkout{
		completedOn(time.Date(2026, 3, 5, 7, 0, 0, 0, time.UTC), "30 min", "Supino"),
		completedOn(time.Date(2026, 3, 4, 7, 0, 0, 0, time.UTC), "60 min", "Supino"),
		completedOn(time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC), "30 min", "Corrida"),
		completedOn(time.Date(2026, 2, 10, 7, 0, 0, 0, time.UTC), "40 min", "Corrida"),
	}

	stats := BuildDashboardStats(history, now, time.UTC)
	if stats.WeeklyGoal.Current != 2 {
		t.Fatalf("WeeklyGoal.Current = %d, want 2", stats.WeeklyGoal.Current)
	}
	if stats.WeeklyGoal.Target != WeeklyGoalTarget {
		t.Fatalf("WeeklyGoal.Target = %d, want %d", stats.WeeklyGoal.Target, WeeklyGoalTarget)
	}
	if stats.WeeklyGoal.Percentage != 40 {
		t.Fatalf("WeeklyGoal.Percentage = %d, want 40", stats.WeeklyGoal.Percentage)
	}
	if stats.MonthlyWorkouts != 3 {
		t.Fatalf("MonthlyWorkouts = %d, want 3", stats.MonthlyWorkouts)
	}
	if stats.TotalWorkouts != 4 {
		t.Fatalf("TotalWorkouts = %d, want 4", stats.TotalWorkouts)
	}
	if stats.StreakDays != 2 {
		t.Fatalf("StreakDays = %d, want 2", stats.StreakDays)
	}
	if stats.AvgDurationMinutes != 40 {
		t.Fatalf("AvgDurationMinutes = %d, want 40", stats.AvgDurationMinutes)
	}
	if stats.FavoriteExercise != "Supino" {
		t.Fatalf("FavoriteExercise = %q, want Supino", stats.FavoriteExercise)
	}
}

func TestMaxWeeklyWorkouts(t *testing.T) {
	history := []models.CompletedWorkout{
		completedOn(time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC), "30 min"),
		completedOn(time.Date(2026, 3, 3, 7, 0, 0, 0, time.UTC), "30 min"),
		completedOn(time.Date(2026, 3, 4, 7, 0, 0, 0, time.UTC), "30 min"),
		completedOn(time.Date(2026, 2, 24, 7, 0, 0, 0, time.UTC), "30 min"),
	}

	if got := MaxWeeklyWorkouts(history, time.UTC); got != 3 {
		t.Fatalf("MaxWeeklyWorkouts = %d, want 3", got)
	}
	if got := MaxWeeklyWorkouts(nil, time.UTC); got != 0 {
		t.Fatalf("MaxWeeklyWorkouts on empty = %d, want 0", got)
	}
}
