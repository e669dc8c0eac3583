package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chenhoward456-hash/coach-system/internal/content"
	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/services"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

// PlanResponse is a 30-day plan with completion marked in.
type PlanResponse struct {
	Plan     models.ThirtyDayPlan `json:"plan"`
	Progress models.PlanProgress  `json:"progress"`
}

func planLevel(c *fiber.Ctx) (models.ThirtyDayPlan, bool) {
	level := models.PlanLevel(c.Params("level"))
	if !level.Valid() {
		return models.ThirtyDayPlan{}, false
	}
	return content.MustLoad().Plan(level)
}

func planResponse(plan models.ThirtyDayPlan) (PlanResponse, error) {
	done, err := storage.GetPlanProgress(plan.Level)
	if err != nil {
		return PlanResponse{}, err
	}
	return PlanResponse{
		Plan:     services.MarkPlan(plan, done),
		Progress: services.ComputePlanProgress(plan, done),
	}, nil
}

// GetPlan returns the plan for :level (beginner or intermediate).
func GetPlan(c *fiber.Ctx) error {
	plan, ok := planLevel(c)
	if !ok {
		return notFound(c, "Plan not found")
	}
	resp, err := planResponse(plan)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// TogglePlanTask marks or unmarks :taskId in the plan for :level.
func TogglePlanTask(c *fiber.Ctx) error {
	plan, ok := planLevel(c)
	if !ok {
		return notFound(c, "Plan not found")
	}
	id := c.Params("taskId")
	if err := services.RequireKnown(id, services.PlanTaskIDs(plan)); err != nil {
		return fail(c, err)
	}

	done, err := storage.GetPlanProgress(plan.Level)
	if err != nil {
		return fail(c, err)
	}
	if err := storage.SavePlanProgress(plan.Level, services.Toggle(done, id)); err != nil {
		return fail(c, err)
	}

	resp, err := planResponse(plan)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// ResetPlan clears all progress for :level.
func ResetPlan(c *fiber.Ctx) error {
	plan, ok := planLevel(c)
	if !ok {
		return notFound(c, "Plan not found")
	}
	if err := storage.ResetPlanProgress(plan.Level); err != nil {
		return fail(c, err)
	}
	resp, err := planResponse(plan)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}
