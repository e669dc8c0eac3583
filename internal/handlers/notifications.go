package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/chenhoward456-hash/coach-system/internal/database"
	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

// GetNotifications returns paginated reminders, newest first
func GetNotifications(c *fiber.Ctx) error {
	page, limit, offset := pagination(c)

	var notifications []models.Notification
	if err := database.DB.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&notifications).Error; err != nil {
		return fail(c, err)
	}

	var total int64
	database.DB.Model(&models.Notification{}).Count(&total)

	var unread int64
	database.DB.Model(&models.Notification{}).Where("read = ?", false).Count(&unread)

	return c.JSON(fiber.Map{
		"notifications": notifications,
		"total":         total,
		"unread":        unread,
		"page":          page,
		"limit":         limit,
	})
}

// MarkNotificationRead marks a single notification as read
func MarkNotificationRead(c *fiber.Ctx) error {
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid notification ID")
	}

	result := database.DB.Model(&models.Notification{}).
		Where("id = ?", notifID).
		Update("read", true)
	if result.Error != nil {
		return fail(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(c, "Notification not found")
	}

	return c.JSON(fiber.Map{"success": true})
}

// MarkAllRead marks every notification as read
func MarkAllRead(c *fiber.Ctx) error {
	if err := database.DB.Model(&models.Notification{}).
		Where("read = ?", false).
		Update("read", true).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// RegisterDeviceToken saves the FCM token reminders are pushed to
func RegisterDeviceToken(c *fiber.Ctx) error {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&req); err != nil || req.Token == "" {
		return badRequest(c, "Token is required")
	}

	if err := storage.SaveDeviceToken(req.Token); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
