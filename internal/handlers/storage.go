package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

// storageKey decodes :key. Day keys carry slashes and spaces, so clients
// send them percent-encoded.
func storageKey(c *fiber.Ctx) (string, bool) {
	key, err := url.PathUnescape(c.Params("key"))
	return key, err == nil && key != ""
}

// GetStorageItem returns the raw string stored under :key.
func GetStorageItem(c *fiber.Ctx) error {
	key, ok := storageKey(c)
	if !ok {
		return badRequest(c, "Invalid storage key")
	}
	value, ok, err := storage.Get(key)
	if err != nil {
		return fail(c, err)
	}
	if !ok {
		return notFound(c, "Key not found")
	}
	return c.JSON(fiber.Map{"key": key, "value": value})
}

// PutStorageItem overwrites :key with the given string value.
func PutStorageItem(c *fiber.Ctx) error {
	var req models.PutStorageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	key, ok := storageKey(c)
	if !ok {
		return badRequest(c, "Invalid storage key")
	}
	if err := storage.Set(key, req.Value); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"key": key, "value": req.Value})
}

func DeleteStorageItem(c *fiber.Ctx) error {
	key, ok := storageKey(c)
	if !ok {
		return badRequest(c, "Invalid storage key")
	}
	if err := storage.Remove(key); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// ListStorage returns every entry, optionally only keys starting with ?prefix.
func ListStorage(c *fiber.Ctx) error {
	entries, err := storage.List(c.Query("prefix"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(entries)
}

// ClearStorage removes the task, score and diagnosis records.
func ClearStorage(c *fiber.Ctx) error {
	if err := storage.ClearAll(); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "cleared": models.ClearableKeys})
}
