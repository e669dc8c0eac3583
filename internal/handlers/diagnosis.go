package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/services"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

// storedDiagnosis re-runs the lookup for the saved answers.
func storedDiagnosis() (*models.DiagnosisData, *models.DiagnosisResult, error) {
	data, err := storage.GetDiagnosis()
	if err != nil || data == nil {
		return nil, nil, err
	}
	result, err := services.Diagnose(models.DiagnoseRequest{
		MainIssue:      data.MainIssue,
		Activities:     data.Activities,
		TimeCommitment: data.TimeCommitment,
	})
	if err != nil {
		// a saved record without an issue reads as no record
		return nil, nil, nil
	}
	return data, &result, nil
}

// GetDiagnosis returns the saved answers and their result, or nulls.
func GetDiagnosis(c *fiber.Ctx) error {
	data, result, err := storedDiagnosis()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"diagnosis":  data,
		"result":     result,
		"activities": services.DiagnosisActivities,
	})
}

// Diagnose looks up advice for the answers and saves them.
func Diagnose(c *fiber.Ctx) error {
	var req models.DiagnoseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := services.Diagnose(req)
	if err != nil {
		return fail(c, err)
	}
	record := services.DiagnosisRecord(req, result, now())
	if err := storage.SaveDiagnosis(record); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"diagnosis": record,
		"result":    result,
	})
}

// GetDiagnosisReport renders the saved diagnosis as plain text.
func GetDiagnosisReport(c *fiber.Ctx) error {
	_, result, err := storedDiagnosis()
	if err != nil {
		return fail(c, err)
	}
	if result == nil {
		return notFound(c, "No diagnosis saved")
	}
	return sendText(c, services.FormatDiagnosisReport(*result, today()))
}
