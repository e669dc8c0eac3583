package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/chenhoward456-hash/coach-system/internal/database"
	"github.com/chenhoward456-hash/coach-system/internal/models"
)

// GetActivity returns paginated storage writes, newest first. ?key limits
// the log to one key.
func GetActivity(c *fiber.Ctx) error {
	page, limit, offset := pagination(c)

	key := c.Query("key")
	byKey := func(db *gorm.DB) *gorm.DB {
		if key == "" {
			return db
		}
		return db.Where("key = ?", key)
	}

	var activities []models.Activity
	if err := database.DB.Scopes(byKey).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&activities).Error; err != nil {
		return fail(c, err)
	}

	var total int64
	database.DB.Model(&models.Activity{}).Scopes(byKey).Count(&total)

	return c.JSON(fiber.Map{
		"activities": activities,
		"total":      total,
		"page":       page,
		"limit":      limit,
	})
}
