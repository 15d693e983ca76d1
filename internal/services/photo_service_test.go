package services

import (
	"testing"
	"time"

	"github.com/dpereira/gymflow/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPhotoFixture(t *testing.T) *PhotoService {
	t.Helper()

	database, err := db.OpenMemory()
	require.NoError(t, err)

	repos := db.NewRepositories(db.NewKVStore(database))
	return NewPhotoService(repos.Photos, time.UTC)
}

func TestAddPhotoStampsCaptureMoment(t *testing.T) {
	service := newPhotoFixture(t)
	now := time.Date(2026, 3, 5, 7, 45, 0, 0, time.UTC)

	photo, err := service.Add("data:image/png;base64,aGk=", "progresso.png", now)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-05", photo.Date)
	assert.Equal(t, "07:45", photo.Time)
	assert.Equal(t, "progresso.png", photo.FileName)
	assert.NotEmpty(t, photo.ID)
}

func TestAddPhotoRequiresData(t *testing.T) {
	service := newPhotoFixture(t)

	_, err := service.Add("   ", "vazio.png", time.Now())
	assert.ErrorIs(t, err, ErrPhotoDataRequired)
}

func TestPhotosKeepNewestFirst(t *testing.T) {
	service := newPhotoFixture(t)

	first, err := service.Add("data:a", "a.png", time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	second, err := service.Add("data:b", "b.png", time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	photos, err := service.List()
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, second.ID, photos[0].ID)
	assert.Equal(t, first.ID, photos[1].ID)
}

func TestGroupedByDatePreservesRecency(t *testing.T) {
	service := newPhotoFixture(t)

	_, err := service.Add("data:a", "a.png", time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = service.Add("data:b", "b.png", time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = service.Add("data:c", "c.png", time.Date(2026, 3, 5, 19, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	groups, err := service.GroupedByDate()
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "2026-03-05", groups[0].Date)
	assert.Len(t, groups[0].Photos, 2)
	assert.Equal(t, "2026-03-04", groups[1].Date)
	assert.Len(t, groups[1].Photos, 1)
}

func TestRemovePhoto(t *testing.T) {
	service := newPhotoFixture(t)

	photo, err := service.Add("data:a", "a.png", time.Now())
	require.NoError(t, err)

	require.NoError(t, service.Remove(photo.ID))
	assert.ErrorIs(t, service.Remove(photo.ID), ErrPhotoNotFound)
}
