package api

import (
	"log/slog"
	"time"

	"github.com/dpereira/gymflow/internal/db"
	"github.com/dpereira/gymflow/internal/services"
	"github.com/golang-jwt/jwt/v5"
)

const (
	authCookieName = "gymflow_token"
	contextUserKey = "gymflow_user"

	defaultAuthTokenTTL = 7 * 24 * time.Hour
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	logger       *slog.Logger

	repositories *db.Repositories
	session      *services.SessionService
	workouts     *services.WorkoutService
	meals        *services.MealService
	photos       *services.PhotoService
	profiles     *services.ProfileService
	stats        *services.StatsService
}

type authClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
