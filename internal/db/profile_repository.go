package db

import (
	"github.com/dpereira/gymflow/internal/models"
)

// ProfileRepository persists the extended profile fields under a per-user
// key, independent of the core User record.
type ProfileRepository struct {
	kv *KVStore
}

func NewProfileRepository(kv *KVStore) *ProfileRepository {
	return &ProfileRepository{kv: kv}
}

func (repo *ProfileRepository) Load(userID string) (models.Profile, bool, error) {
	var profile models.Profile
	found, err := repo.kv.Get(profileKeyPrefix+userID, &profile)
	if err != nil || !found {
		return models.Profile{UserID: userID}, false, err
	}
	return profile, true, nil
}

func (repo *ProfileRepository) Save(profile models.Profile) error {
	return repo.kv.Set(profileKeyPrefix+profile.UserID, profile)
}
