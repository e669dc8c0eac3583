package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/services"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

// GetGoals returns every goal with its progress, days left and daily pace.
func GetGoals(c *fiber.Ctx) error {
	goals, err := storage.GetGoals()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"goals":      services.ViewGoals(goals, now(), location),
		"categories": models.GoalCategories,
	})
}

// CreateGoal validates and appends a goal.
func CreateGoal(c *fiber.Ctx) error {
	var req models.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	goal, err := services.NewGoal(req)
	if err != nil {
		return fail(c, err)
	}

	goals, err := storage.GetGoals()
	if err != nil {
		return fail(c, err)
	}
	if err := storage.SaveGoals(append(goals, goal)); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(services.ViewGoal(goal, now(), location))
}

// UpdateGoalProgress sets the current value of goal :id.
func UpdateGoalProgress(c *fiber.Ctx) error {
	var req models.UpdateGoalProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	goals, err := storage.GetGoals()
	if err != nil {
		return fail(c, err)
	}
	goals, goal, err := services.UpdateGoalProgress(goals, c.Params("id"), req.Current)
	if err != nil {
		return fail(c, err)
	}
	if err := storage.SaveGoals(goals); err != nil {
		return fail(c, err)
	}

	return c.JSON(services.ViewGoal(goal, now(), location))
}

func DeleteGoal(c *fiber.Ctx) error {
	goals, err := storage.GetGoals()
	if err != nil {
		return fail(c, err)
	}
	goals, err = services.DeleteGoal(goals, c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if err := storage.SaveGoals(goals); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
