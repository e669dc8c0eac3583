package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/services"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

// GetReflections returns the saved reflections, newest first, and whether
// this week's reminder is due.
func GetReflections(c *fiber.Ctx) error {
	list, err := storage.GetReflections()
	if err != nil {
		return fail(c, err)
	}
	last, err := storage.LastReflectionWeek()
	if err != nil {
		return fail(c, err)
	}
	t := today()
	return c.JSON(fiber.Map{
		"reflections": list,
		"currentWeek": services.WeekString(t),
		"due":         services.ReflectionDue(t, last),
		"prompts":     models.ReflectionPrompts,
	})
}

// CreateReflection saves this week's reflection in front of the others.
func CreateReflection(c *fiber.Ctx) error {
	var req models.CreateReflectionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	r, err := services.NewReflection(req, today())
	if err != nil {
		return fail(c, err)
	}

	list, err := storage.GetReflections()
	if err != nil {
		return fail(c, err)
	}
	if err := storage.SaveReflections(services.PrependReflection(list, r), r.Week); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(r)
}

// ExportReflections downloads every reflection as a text file.
func ExportReflections(c *fiber.Ctx) error {
	list, err := storage.GetReflections()
	if err != nil {
		return fail(c, err)
	}
	if len(list) == 0 {
		return notFound(c, "No reflections to export")
	}

	t := today()
	name := services.ExportFileName(t)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename*=UTF-8''"+url.PathEscape(name))
	return sendText(c, services.ExportReflections(list, t, location))
}
