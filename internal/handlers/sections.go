package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chenhoward456-hash/coach-system/internal/models"
)

// GetSections lists the portal's top-level pages and where their data lives.
func GetSections(c *fiber.Ctx) error {
	return c.JSON(models.Sections)
}

func GetSection(c *fiber.Ctx) error {
	section, ok := models.LookupSection(c.Params("id"))
	if !ok {
		return notFound(c, "Section not found")
	}
	return c.JSON(section)
}
