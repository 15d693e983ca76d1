package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Get("/session", handler.SessionState)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	plan := api.Group("/plan", handler.AuthRequired)
	plan.Post("/upgrade", handler.UpgradePlan)
	plan.Post("/downgrade", handler.DowngradePlan)

	sync := api.Group("/sync", handler.AuthRequired)
	sync.Post("/push", handler.SyncPush)
	sync.Post("/pull", handler.SyncPull)

	workouts := api.Group("/workouts", handler.AuthRequired)
	workouts.Get("", handler.ListWorkouts)
	workouts.Post("", handler.CreateWorkout)
	workouts.Get("/export", handler.ExportWorkouts)
	workouts.Post("/import", handler.ImportWorkouts)
	workouts.Put("/:id", handler.UpdateWorkout)
	workouts.Delete("/:id", handler.DeleteWorkout)
	workouts.Post("/:id/favorite", handler.ToggleFavoriteWorkout)
	workouts.Post("/:id/complete", handler.CompleteWorkout)

	history := api.Group("/history", handler.AuthRequired)
	history.Get("", handler.ListHistory)
	history.Delete("/:id", handler.DeleteHistoryRecord)

	meals := api.Group("/meals", handler.AuthRequired, handler.PremiumOnly)
	meals.Get("", handler.ListMeals)
	meals.Post("", handler.CreateMeal)
	meals.Get("/days", handler.MealDays)
	meals.Get("/daily/:date", handler.MealsByDate)
	meals.Delete("/:id", handler.DeleteMeal)

	photos := api.Group("/photos", handler.AuthRequired)
	photos.Get("", handler.ListPhotos)
	photos.Post("", handler.CreatePhoto)
	photos.Delete("/:id", handler.DeletePhoto)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/overview", handler.StatsOverview)
	stats.Get("/weekly", handler.StatsWeekly)
	stats.Get("/achievements", handler.StatsAchievements)
	stats.Get("/calendar", handler.StatsCalendar)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.SaveProfile)
}
