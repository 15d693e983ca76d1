package db

import (
	"github.com/dpereira/gymflow/internal/models"
)

type PhotoRepository struct {
	kv *KVStore
}

func NewPhotoRepository(kv *KVStore) *PhotoRepository {
	return &PhotoRepository{kv: kv}
}

func (repo *PhotoRepository) List() ([]models.Photo, error) {
	photos := make([]models.Photo, 0)
	if _, err := repo.kv.Get(photosKey, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

func (repo *PhotoRepository) ReplaceAll(photos []models.Photo) error {
	if photos == nil {
		photos = make([]models.Photo, 0)
	}
	return repo.kv.Set(photosKey, photos)
}

// AddFront prepends so the collection stays ordered by recency.
func (repo *PhotoRepository) AddFront(photo models.Photo) error {
	photos, err := repo.List()
	if err != nil {
		return err
	}
	return repo.ReplaceAll(append([]models.Photo{photo}, photos...))
}

func (repo *PhotoRepository) Remove(photoID string) (bool, error) {
	photos, err := repo.List()
	if err != nil {
		return false, err
	}
	kept := make([]models.Photo, 0, len(photos))
	removed := false
	for _, photo := range photos {
		if photo.ID == photoID {
			removed = true
			continue
		}
		kept = append(kept, photo)
	}
	if !removed {
		return false, nil
	}
	return true, repo.ReplaceAll(kept)
}
