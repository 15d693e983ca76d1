package models

import "time"

const (
	ExerciseMuscular = "muscular"
	ExerciseCardio   = "cardio"
)

// Exercise is a variant over two kinds. Muscular exercises carry
// sets/reps and an optional weight; cardio exercises carry a target
// duration in minutes. Exactly one kind's fields are populated.
type Exercise struct {
	Name     string  `json:"name"`
	Kind     string  `json:"type"`
	Sets     int     `json:"sets,omitempty"`
	Reps     int     `json:"reps,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	Duration int     `json:"duration,omitempty"`
}

func IsValidExerciseKind(kind string) bool {
	return kind == ExerciseMuscular || kind == ExerciseCardio
}

// Workout is a reusable user-authored template. It must hold at least one
// exercise to be savable.
type Workout struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Exercises  []Exercise `json:"exercises"`
	IsFavorite bool       `json:"isFavorite"`
}

// CompletedWorkout is an append-only history record. Exercises are a
// snapshot of the template as performed, not a live reference. Duration is
// the realized session length in minutes, kept as entered.
type CompletedWorkout struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Exercises   []Exercise `json:"exercises"`
	Duration    string     `json:"duration"`
	CompletedAt time.Time  `json:"completedAt"`
}

const WorkoutShareVersion = "1.0"

// WorkoutShare is the envelope used to export and import workout
// collections between installations.
type WorkoutShare struct {
	Workouts   []Workout `json:"workouts"`
	ExportedAt time.Time `json:"exportedAt"`
	Version    string    `json:"version"`
}
