package services

import (
	"errors"
	"strings"
	"time"

	"github.com/dpereira/gymflow/internal/db"
	"github.com/dpereira/gymflow/internal/models"
	"github.com/dpereira/gymflow/internal/security"
)

var (
	ErrPhotoDataRequired = errors.New("photo data is required")
	ErrPhotoNotFound     = errors.New("photo not found")
)

type PhotoService struct {
	photos   *db.PhotoRepository
	location *time.Location
}

// PhotoGroup is one calendar date of the timeline, newest group first.
type PhotoGroup struct {
	Date   string         `json:"date"`
	Photos []models.Photo `json:"photos"`
}

func NewPhotoService(photos *db.PhotoRepository, location *time.Location) *PhotoService {
	if location == nil {
		location = time.UTC
	}
	return &PhotoService{photos: photos, location: location}
}

func (service *PhotoService) List() ([]models.Photo, error) {
	return service.photos.List()
}

func (service *PhotoService) Add(data string, fileName string, now time.Time) (models.Photo, error) {
	if strings.TrimSpace(data) == "" {
		return models.Photo{}, ErrPhotoDataRequired
	}

	captured := now.In(service.location)
	photo := models.Photo{
		ID:       security.NewRecordID("photo"),
		Data:     data,
		Date:     captured.Format("2006-01-02"),
		Time:     captured.Format("15:04"),
		FileName: fileName,
	}
	if err := service.photos.AddFront(photo); err != nil {
		return models.Photo{}, err
	}
	return photo, nil
}

func (service *PhotoService) Remove(photoID string) error {
	removed, err := service.photos.Remove(photoID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrPhotoNotFound
	}
	return nil
}

// GroupedByDate buckets the timeline per capture date, preserving the
// stored recency order within and across groups.
func (service *PhotoService) GroupedByDate() ([]PhotoGroup, error) {
	photos, err := service.photos.List()
	if err != nil {
		return nil, err
	}

	groups := make([]PhotoGroup, 0)
	indexByDate := make(map[string]int)
	for _, photo := range photos {
		position, exists := indexByDate[photo.Date]
		if !exists {
			position = len(groups)
			indexByDate[photo.Date] = position
			groups = append(groups, PhotoGroup{Date: photo.Date, Photos: make([]models.Photo, 0, 1)})
		}
		groups[position].Photos = append(groups[position].Photos, photo)
	}
	return groups, nil
}
