package services

import (
	"errors"

	"github.com/dpereira/gymflow/internal/db"
	"github.com/dpereira/gymflow/internal/models"
)

var ErrProfileUserRequired = errors.New("profile user id is required")

// ProfileService reads and writes the extended per-user profile record.
// Missing profiles resolve to an empty record for the user.
type ProfileService struct {
	profiles *db.ProfileRepository
}

func NewProfileService(profiles *db.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (service *ProfileService) Load(userID string) (models.Profile, error) {
	if userID == "" {
		return models.Profile{}, ErrProfileUserRequired
	}
	profile, _, err := service.profiles.Load(userID)
	return profile, err
}

func (service *ProfileService) Save(profile models.Profile) (models.Profile, error) {
	if profile.UserID == "" {
		return models.Profile{}, ErrProfileUserRequired
	}
	if err := service.profiles.Save(profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}
