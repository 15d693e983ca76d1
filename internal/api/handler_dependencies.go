package api

import (
	"log/slog"
	"time"

	"github.com/dpereira/gymflow/internal/cloud"
	"github.com/dpereira/gymflow/internal/db"
	"github.com/dpereira/gymflow/internal/services"
	"gorm.io/gorm"
)

// Config carries the tunable surface of the handler. The delays exist to
// mirror the artificial pacing of the simulated cloud; tests zero them.
type Config struct {
	SecretKey      []byte
	Location       *time.Location
	CookieSecure   bool
	LoginDelay     time.Duration
	PostLoginPush  time.Duration
	CloudSaveDelay time.Duration
	CloudLoadDelay time.Duration
}

func NewHandler(database *gorm.DB, logger *slog.Logger, config Config) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	location := config.Location
	if location == nil {
		location = time.UTC
	}

	kv := db.NewKVStore(database)
	repositories := db.NewRepositories(kv)
	remote := cloud.NewRemoteStore(kv, config.CloudSaveDelay, config.CloudLoadDelay)
	session := services.NewSessionService(repositories, remote, logger, config.LoginDelay, config.PostLoginPush)
	if err := session.Restore(); err != nil {
		logger.Warn("session restore failed", "error", err)
	}

	return &Handler{
		secretKey:    config.SecretKey,
		location:     location,
		cookieSecure: config.CookieSecure,
		logger:       logger,
		repositories: repositories,
		session:      session,
		workouts:     services.NewWorkoutService(repositories.Workouts, repositories.Completed),
		meals:        services.NewMealService(repositories.Meals, location),
		photos:       services.NewPhotoService(repositories.Photos, location),
		profiles:     services.NewProfileService(repositories.Profiles),
		stats:        services.NewStatsService(repositories.Completed, location),
	}
}
