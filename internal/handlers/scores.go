package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/services"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

// GetScores returns the saved self-score and its evaluation, or nulls.
func GetScores(c *fiber.Ctx) error {
	scores, err := storage.GetScores()
	if err != nil {
		return fail(c, err)
	}
	if scores == nil {
		return c.JSON(fiber.Map{"scores": nil, "result": nil})
	}
	result := services.EvaluateSelfScore(*scores)
	return c.JSON(fiber.Map{"scores": scores, "result": result})
}

// SaveScores clamps, stores and evaluates a self-score.
func SaveScores(c *fiber.Ctx) error {
	var req models.SaveScoresRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	scores := services.ClampScores(req, now())
	if err := storage.SaveScores(scores); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"scores": scores,
		"result": services.EvaluateSelfScore(scores),
	})
}

// GetScoreReport renders the saved self-score as plain text.
func GetScoreReport(c *fiber.Ctx) error {
	scores, err := storage.GetScores()
	if err != nil {
		return fail(c, err)
	}
	if scores == nil {
		return notFound(c, "No scores saved")
	}
	return sendText(c, services.FormatScoreReport(services.EvaluateSelfScore(*scores), today()))
}
