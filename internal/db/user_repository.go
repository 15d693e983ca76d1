package db

import (
	"github.com/dpereira/gymflow/internal/models"
)

// UserRepository owns the session pointer (the current authenticated user)
// and the local-user registry, a mapping from email to User that serves as
// the "already registered" lookup before falling back to the cloud.
type UserRepository struct {
	kv *KVStore
}

func NewUserRepository(kv *KVStore) *UserRepository {
	return &UserRepository{kv: kv}
}

func (repo *UserRepository) CurrentUser() (models.User, bool, error) {
	var user models.User
	found, err := repo.kv.Get(sessionKey, &user)
	if err != nil || !found {
		return models.User{}, false, err
	}
	return user, true, nil
}

func (repo *UserRepository) SaveCurrentUser(user models.User) error {
	return repo.kv.Set(sessionKey, user)
}

// ClearCurrentUser removes only the session pointer. Registry entries and
// domain collections are retained on logout.
func (repo *UserRepository) ClearCurrentUser() error {
	return repo.kv.Remove(sessionKey)
}

func (repo *UserRepository) FindRegistered(email string) (models.User, bool, error) {
	registry, err := repo.loadRegistry()
	if err != nil {
		return models.User{}, false, err
	}
	user, found := registry[email]
	return user, found, nil
}

func (repo *UserRepository) SaveRegistered(user models.User) error {
	registry, err := repo.loadRegistry()
	if err != nil {
		return err
	}
	registry[user.Email] = user
	return repo.kv.Set(localUsersKey, registry)
}

func (repo *UserRepository) loadRegistry() (map[string]models.User, error) {
	registry := make(map[string]models.User)
	if _, err := repo.kv.Get(localUsersKey, &registry); err != nil {
		return nil, err
	}
	return registry, nil
}
