package api

import (
	"errors"
	"regexp"
	"strings"

	"github.com/dpereira/gymflow/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var (
	errEmailInvalid = errors.New("invalid email address")
	errNameMissing  = errors.New("name is required")
)

type loginInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func validateLoginInput(input loginInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return errNameMissing
	}
	if !emailPattern.MatchString(strings.TrimSpace(input.Email)) {
		return errEmailInvalid
	}
	return nil
}

type workoutInput struct {
	Name      string            `json:"name"`
	Exercises []models.Exercise `json:"exercises"`
}

type completeWorkoutInput struct {
	Duration string `json:"duration"`
}

type mealInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Calories    int    `json:"calories"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Date        string `json:"date"`
}

type photoInput struct {
	Data     string `json:"data"`
	FileName string `json:"fileName"`
}

type profileInput struct {
	Age        string `json:"age"`
	Weight     string `json:"weight"`
	Height     string `json:"height"`
	Goal       string `json:"goal"`
	Experience string `json:"experience"`
	Bio        string `json:"bio"`
}
