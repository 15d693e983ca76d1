package services

import (
	"time"

	"github.com/dpereira/gymflow/internal/models"
)

// Achievement is one entry of the fixed catalog. Earned is a pure function
// of the history and is never stored: deleting records can un-earn an
// achievement retroactively.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

const (
	achievementFirstWeek    = "Primeira Semana"
	achievementConsistency  = "Consistência"
	achievementMarathoner   = "Maratonista"
	achievementDedication   = "Dedicação"
	achievementBeginner     = "Iniciante"
	achievementPerseverance = "Perseverança"
)

// EvaluateAchievements checks every threshold independently against the
// full history.
func EvaluateAchievements(history []models.CompletedWorkout, now time.Time, location *time.Location) []Achievement {
	total := len(history)

	longSession := false
	for _, record := range history {
		if ParseDurationMinutes(record.Duration) >= 60 {
			longSession = true
			break
		}
	}

	return []Achievement{
		{
			Title:       achievementFirstWeek,
			Description: "Complete 5 treinos em uma semana",
			Earned:      MaxWeeklyWorkouts(history, location) >= 5,
		},
		{
			Title:       achievementConsistency,
			Description: "7 dias consecutivos de treino",
			Earned:      CalculateStreak(history, now, location) >= 7,
		},
		{
			Title:       achievementMarathoner,
			Description: "Treino de 60+ minutos",
			Earned:      longSession,
		},
		{
			Title:       achievementDedication,
			Description: "30 treinos completados",
			Earned:      total >= 30,
		},
		{
			Title:       achievementBeginner,
			Description: "Complete seu primeiro treino",
			Earned:      total >= 1,
		},
		{
			Title:       achievementPerseverance,
			Description: "10 treinos completados",
			Earned:      total >= 10,
		},
	}
}

func CountEarned(achievements []Achievement) int {
	earned := 0
	for _, achievement := range achievements {
		if achievement.Earned {
			earned++
		}
	}
	return earned
}
