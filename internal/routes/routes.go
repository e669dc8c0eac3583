package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chenhoward456-hash/coach-system/internal/handlers"
)

func Setup(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/sections", handlers.GetSections)
	api.Get("/sections/:id", handlers.GetSection)

	// Raw local-storage namespace
	store := api.Group("/storage")
	store.Get("/", handlers.ListStorage)
	store.Delete("/", handlers.ClearStorage)
	store.Get("/:key", handlers.GetStorageItem)
	store.Put("/:key", handlers.PutStorageItem)
	store.Delete("/:key", handlers.DeleteStorageItem)

	api.Get("/dashboard", handlers.GetDashboard)
	api.Get("/dashboard/progress", handlers.GetProgress)

	checklist := api.Group("/checklist")
	checklist.Get("/", handlers.GetChecklist)
	checklist.Get("/history", handlers.GetChecklistHistory)
	checklist.Post("/:id/toggle", handlers.ToggleChecklistTask)

	journal := api.Group("/journal")
	journal.Get("/", handlers.GetJournal)
	journal.Put("/actions", handlers.UpdateJournalActions)
	journal.Put("/note", handlers.UpdateJournalNote)

	scores := api.Group("/scores")
	scores.Get("/", handlers.GetScores)
	scores.Post("/", handlers.SaveScores)
	scores.Get("/report", handlers.GetScoreReport)

	diagnosis := api.Group("/diagnosis")
	diagnosis.Get("/", handlers.GetDiagnosis)
	diagnosis.Post("/", handlers.Diagnose)
	diagnosis.Get("/report", handlers.GetDiagnosisReport)

	goals := api.Group("/goals")
	goals.Get("/", handlers.GetGoals)
	goals.Post("/", handlers.CreateGoal)
	goals.Put("/:id/progress", handlers.UpdateGoalProgress)
	goals.Delete("/:id", handlers.DeleteGoal)

	reflections := api.Group("/reflections")
	reflections.Get("/", handlers.GetReflections)
	reflections.Post("/", handlers.CreateReflection)
	reflections.Get("/export", handlers.ExportReflections)

	plans := api.Group("/plans")
	plans.Get("/:level", handlers.GetPlan)
	plans.Post("/:level/tasks/:taskId/toggle", handlers.TogglePlanTask)
	plans.Delete("/:level/progress", handlers.ResetPlan)

	tasks := api.Group("/tasks")
	tasks.Get("/", handlers.GetWeeklyTasks)
	tasks.Post("/reset", handlers.ResetWeeklyTasks)
	tasks.Get("/daily", handlers.GetDailyTasks)
	tasks.Post("/daily/:id/toggle", handlers.ToggleDailyTask)
	tasks.Post("/:id/toggle", handlers.ToggleWeeklyTask)

	// Static content
	api.Get("/messages", handlers.GetMessages)
	api.Get("/messages/:id", handlers.GetMessage)
	api.Post("/messages/:id/fill", handlers.FillMessage)
	api.Get("/videos", handlers.GetVideos)
	api.Get("/videos/:id", handlers.GetVideo)
	api.Get("/resources", handlers.GetResources)
	api.Get("/mindset", handlers.GetMindset)
	api.Get("/mindset/:id", handlers.GetEssay)
	api.Get("/frameworks", handlers.GetFrameworks)
	api.Get("/frameworks/:id", handlers.GetFramework)
	api.Get("/polygon", handlers.GetPolygon)

	admin := api.Group("/admin")
	admin.Get("/coaches", handlers.GetCoaches)
	admin.Post("/coaches", handlers.CreateCoach)
	admin.Get("/coaches/:id", handlers.GetCoach)
	admin.Delete("/coaches/:id", handlers.DeleteCoach)

	// Notifications
	notifications := api.Group("/notifications")
	notifications.Get("/", handlers.GetNotifications)
	notifications.Put("/:id/read", handlers.MarkNotificationRead)
	notifications.Post("/read-all", handlers.MarkAllRead)

	// Device token for push notifications
	api.Post("/device-token", handlers.RegisterDeviceToken)

	api.Get("/activity", handlers.GetActivity)
}
