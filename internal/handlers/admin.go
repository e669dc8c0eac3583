package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chenhoward456-hash/coach-system/internal/database"
	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/services"
)

// GetCoaches returns the roster filtered by ?status and ordered by ?sort
// (name, score or completion; default score), with roster-wide stats.
func GetCoaches(c *fiber.Ctx) error {
	status := models.CoachStatus(c.Query("status"))
	if status != "" && status != "all" && !status.Valid() {
		return badRequest(c, "Invalid status. Must be: excellent, good, warning, or danger")
	}

	var all []models.Coach
	if err := database.DB.Order("name").Find(&all).Error; err != nil {
		return fail(c, err)
	}
	services.ScoreCoaches(all)

	coaches := []models.Coach{}
	for _, coach := range all {
		if status == "" || status == "all" || coach.Status == status {
			coaches = append(coaches, coach)
		}
	}
	services.SortCoaches(coaches, c.Query("sort", services.SortByScore))

	stats := services.ComputeCoachStats(all)
	return c.JSON(fiber.Map{
		"coaches":          coaches,
		"stats":            stats,
		"scoreRating":      services.Rating(stats.AvgScore),
		"completionRating": services.Rating(stats.AvgCompletion),
	})
}

func GetCoach(c *fiber.Ctx) error {
	coach, ok, err := findCoach(c)
	if !ok {
		return err
	}
	coach.TotalScore = services.WeightedCoachScore(coach.Scores)
	return c.JSON(coach)
}

// CreateCoach adds a coach to the roster.
func CreateCoach(c *fiber.Ctx) error {
	var req models.CreateCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	coach, err := services.NewCoach(req)
	if err != nil {
		return fail(c, err)
	}
	if err := database.DB.Create(&coach).Error; err != nil {
		return fail(c, err)
	}
	coach.TotalScore = services.WeightedCoachScore(coach.Scores)
	return c.Status(fiber.StatusCreated).JSON(coach)
}

func DeleteCoach(c *fiber.Ctx) error {
	coach, ok, err := findCoach(c)
	if !ok {
		return err
	}
	if err := database.DB.Delete(&coach).Error; err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// findCoach loads :id. When ok is false the error response has already
// been written and err is what the handler should return.
func findCoach(c *fiber.Ctx) (coach models.Coach, ok bool, err error) {
	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return coach, false, badRequest(c, "Invalid coach ID")
	}
	err = database.DB.First(&coach, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return coach, false, notFound(c, "Coach not found")
	}
	if err != nil {
		return coach, false, fail(c, err)
	}
	return coach, true, nil
}
