package models

import "time"

const (
	PlanBasic   = "basic"
	PlanPremium = "premium"
)

const DefaultAvatar = "/static/avatar-default.png"

// User is the identity record kept under the session pointer and in the
// local-user registry. Email doubles as the cloud sync key. TotalWorkouts
// and TotalCalories are delta-maintained counters, not recomputed from
// history.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Picture       string    `json:"picture"`
	JoinDate      time.Time `json:"joinDate"`
	Plan          string    `json:"plan"`
	TotalWorkouts int       `json:"totalWorkouts"`
	TotalCalories int       `json:"totalCalories"`
}

func IsValidPlan(plan string) bool {
	return plan == PlanBasic || plan == PlanPremium
}

func (user *User) IsPremium() bool {
	return user != nil && user.Plan == PlanPremium
}
