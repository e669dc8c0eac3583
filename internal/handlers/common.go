package handlers

import (
	"errors"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/chenhoward456-hash/coach-system/internal/logger"
	"github.com/chenhoward456-hash/coach-system/internal/services"
)

// dateParamLayout is the layout of ?date= query parameters.
const dateParamLayout = "2006-01-02"

var (
	now      = time.Now
	location = time.Local

	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Configure sets the time zone day keys are computed in.
func Configure(loc *time.Location) {
	if loc != nil {
		location = loc
	}
}

func today() time.Time {
	return now().In(location)
}

// dayParam resolves ?date=YYYY-MM-DD, defaulting to today.
func dayParam(c *fiber.Ctx) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return today(), nil
	}
	d, err := time.ParseInLocation(dateParamLayout, raw, location)
	if err != nil {
		return time.Time{}, errors.New("date must be YYYY-MM-DD")
	}
	return d, nil
}

func pagination(c *fiber.Ctx) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	limit, _ = strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	return page, limit, (page - 1) * limit
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": msg,
	})
}

// fail maps service errors to a status code. Anything that is not a
// validation or lookup error is logged and reported as a 500.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		return badRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return notFound(c, err.Error())
	}
	logger.Log.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}

// sendText replies with a plain-text document.
func sendText(c *fiber.Ctx, text string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}

// SetClock replaces the handlers' clock and returns a func restoring it.
func SetClock(fn func() time.Time) (restore func()) {
	prev := now
	now = fn
	return func() { now = prev }
}
