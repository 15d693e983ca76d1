package models

import "time"

// CloudPayload is the aggregate pushed to and pulled from the mock remote
// store, keyed by the user's email.
type CloudPayload struct {
	User              *User              `json:"user"`
	Workouts          []Workout          `json:"workouts"`
	Photos            []Photo            `json:"photos"`
	Meals             []Meal             `json:"meals"`
	CompletedWorkouts []CompletedWorkout `json:"completedWorkouts"`
	LastSync          time.Time          `json:"lastSync"`
	DeviceID          string             `json:"deviceId"`
}
