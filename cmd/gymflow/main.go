package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/dpereira/gymflow/internal/api"
	"github.com/dpereira/gymflow/internal/db"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env: %v", err)
	}

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "gymflow.db"))
	port := getEnv("PORT", "8080")

	appLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(appLogger)

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, appLogger, api.Config{
		SecretKey:      []byte(secretKey),
		Location:       location,
		CookieSecure:   getEnv("COOKIE_SECURE", "") == "true",
		LoginDelay:     envDuration("LOGIN_DELAY_MS", 1500*time.Millisecond),
		PostLoginPush:  envDuration("POST_LOGIN_PUSH_MS", 2*time.Second),
		CloudSaveDelay: envDuration("CLOUD_SAVE_DELAY_MS", time.Second),
		CloudLoadDelay: envDuration("CLOUD_LOAD_DELAY_MS", 800*time.Millisecond),
	})

	app := fiber.New(fiber.Config{
		AppName:               "GymFlow",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("GymFlow listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

// envDuration reads a millisecond count from the environment. Zero is a
// valid override and disables the corresponding pacing delay.
func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	millis, err := strconv.Atoi(raw)
	if err != nil || millis < 0 {
		log.Printf("invalid %s %q, using default", key, raw)
		return fallback
	}
	return time.Duration(millis) * time.Millisecond
}
