package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chenhoward456-hash/coach-system/internal/content"
	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/services"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

// GetDashboard summarizes today's state for the home page.
func GetDashboard(c *fiber.Ctx) error {
	t := today()
	lib := content.MustLoad()

	done, err := storage.GetChecklist(t)
	if err != nil {
		return fail(c, err)
	}
	scores, err := storage.GetScores()
	if err != nil {
		return fail(c, err)
	}
	goals, err := storage.GetGoals()
	if err != nil {
		return fail(c, err)
	}
	last, err := storage.LastReflectionWeek()
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.DashboardSummary{
		Date:            models.LocaleDate(t),
		Checklist:       services.Completion(done, services.ChecklistIDs(lib.ChecklistTasks())),
		ChecklistStreak: services.ChecklistStreak(t, checklistLookup),
		JournalStreak:   services.JournalStreak(t, journalLookup),
		WeekStats:       services.JournalWeekStats(t, journalLookup),
		Scores:          scores,
		ActiveGoals:     services.ActiveGoals(goals),
		ReflectionDue:   services.ReflectionDue(t, last),
	})
}

// GetProgress returns the data behind the progress dashboard: checklist
// history, weekly task completion, plan progress and the latest self-score.
func GetProgress(c *fiber.Ctx) error {
	t := today()
	lib := content.MustLoad()

	tasks, err := storage.GetTasks()
	if err != nil {
		return fail(c, err)
	}
	scores, err := storage.GetScores()
	if err != nil {
		return fail(c, err)
	}
	var scoreResult *models.ScoreResult
	if scores != nil {
		r := services.EvaluateSelfScore(*scores)
		scoreResult = &r
	}

	plans := map[models.PlanLevel]models.PlanProgress{}
	for _, level := range []models.PlanLevel{models.PlanBeginner, models.PlanIntermediate} {
		plan, ok := lib.Plan(level)
		if !ok {
			continue
		}
		done, err := storage.GetPlanProgress(level)
		if err != nil {
			return fail(c, err)
		}
		plans[level] = services.ComputePlanProgress(plan, done)
	}

	return c.JSON(fiber.Map{
		"history":     services.ChecklistHistory(t, len(lib.ChecklistTasks()), checklistLookup),
		"weeklyTasks": services.TaskCompletion(tasks, lib.WeeklyTaskIDs()),
		"plans":       plans,
		"score":       scoreResult,
	})
}
