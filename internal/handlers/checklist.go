package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/chenhoward456-hash/coach-system/internal/content"
	"github.com/chenhoward456-hash/coach-system/internal/logger"
	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/services"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

// checklistLookup reads a day's ids for streak walks. Read errors count as
// an empty day.
func checklistLookup(day time.Time) []string {
	ids, err := storage.GetChecklist(day)
	if err != nil {
		logger.Log.Warn("checklist: read failed", "day", models.LocaleDate(day), "error", err)
		return nil
	}
	return ids
}

func checklistState(day time.Time) (models.ChecklistState, error) {
	tasks := content.MustLoad().ChecklistTasks()
	done, err := storage.GetChecklist(day)
	if err != nil {
		return models.ChecklistState{}, err
	}
	return models.ChecklistState{
		Date:      models.LocaleDate(day),
		Tasks:     tasks,
		Completed: done,
		Progress:  services.Completion(done, services.ChecklistIDs(tasks)),
		Streak:    services.ChecklistStreak(day, checklistLookup),
	}, nil
}

// GetChecklist returns the daily checklist for ?date (default today).
func GetChecklist(c *fiber.Ctx) error {
	day, err := dayParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	state, err := checklistState(day)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(state)
}

// ToggleChecklistTask checks or unchecks :id on today's checklist.
func ToggleChecklistTask(c *fiber.Ctx) error {
	id := c.Params("id")
	tasks := content.MustLoad().ChecklistTasks()
	if err := services.RequireKnown(id, services.ChecklistIDs(tasks)); err != nil {
		return fail(c, err)
	}

	day := today()
	done, err := storage.GetChecklist(day)
	if err != nil {
		return fail(c, err)
	}
	if err := storage.SaveChecklist(day, services.Toggle(done, id)); err != nil {
		return fail(c, err)
	}

	state, err := checklistState(day)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(state)
}

// GetChecklistHistory returns the average completion of the last four weeks.
func GetChecklistHistory(c *fiber.Ctx) error {
	total := len(content.MustLoad().ChecklistTasks())
	return c.JSON(services.ChecklistHistory(today(), total, checklistLookup))
}
