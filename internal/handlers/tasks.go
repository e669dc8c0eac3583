package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chenhoward456-hash/coach-system/internal/content"
	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/services"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

func weeklyTasksResponse(tasks models.TaskData) fiber.Map {
	lib := content.MustLoad()
	return fiber.Map{
		"categories": lib.WeeklyCategories(),
		"tasks":      tasks,
		"progress":   services.TaskCompletion(tasks, lib.WeeklyTaskIDs()),
	}
}

// GetWeeklyTasks returns the weekly task list and which items are done.
func GetWeeklyTasks(c *fiber.Ctx) error {
	tasks, err := storage.GetTasks()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(weeklyTasksResponse(tasks))
}

// ToggleWeeklyTask flips the done flag of :id.
func ToggleWeeklyTask(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := services.RequireKnown(id, content.MustLoad().WeeklyTaskIDs()); err != nil {
		return fail(c, err)
	}

	tasks, err := storage.GetTasks()
	if err != nil {
		return fail(c, err)
	}
	tasks[id] = !tasks[id]
	if err := storage.SaveTasks(tasks); err != nil {
		return fail(c, err)
	}
	return c.JSON(weeklyTasksResponse(tasks))
}

// ResetWeeklyTasks starts a new week with nothing done.
func ResetWeeklyTasks(c *fiber.Ctx) error {
	tasks := models.TaskData{}
	if err := storage.SaveTasks(tasks); err != nil {
		return fail(c, err)
	}
	return c.JSON(weeklyTasksResponse(tasks))
}

// dailyTasks returns today's selection, drawing a new one on the first
// visit of the day.
func dailyTasks() (models.DailyTasksState, error) {
	date := models.DateString(today())
	saved, tasks, done, err := storage.DailyTasks()
	if err != nil {
		return models.DailyTasksState{}, err
	}
	if saved != date || len(tasks) == 0 {
		rngMu.Lock()
		tasks = services.PickDailyTasks(content.MustLoad().DailyTaskPool(), services.DailyTaskCount, rng)
		rngMu.Unlock()
		if err := storage.SaveDailySelection(date, tasks); err != nil {
			return models.DailyTasksState{}, err
		}
		done = []string{}
	}
	progress := services.Completion(done, services.DailyTaskIDs(tasks))
	return models.DailyTasksState{
		Date:         date,
		Tasks:        tasks,
		Completed:    done,
		AllCompleted: progress.Total > 0 && progress.Completed == progress.Total,
		Progress:     progress,
	}, nil
}

func GetDailyTasks(c *fiber.Ctx) error {
	state, err := dailyTasks()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(state)
}

// ToggleDailyTask marks or unmarks :id in today's selection.
func ToggleDailyTask(c *fiber.Ctx) error {
	state, err := dailyTasks()
	if err != nil {
		return fail(c, err)
	}
	id := c.Params("id")
	if err := services.RequireKnown(id, services.DailyTaskIDs(state.Tasks)); err != nil {
		return fail(c, err)
	}
	if err := storage.SaveDailyCompleted(services.Toggle(state.Completed, id)); err != nil {
		return fail(c, err)
	}

	state, err = dailyTasks()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(state)
}
