package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/chenhoward456-hash/coach-system/internal/logger"
	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/services"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

// JournalResponse is a day's entry plus the streak and weekly stats.
type JournalResponse struct {
	Entry     models.JournalEntry     `json:"entry"`
	Streak    int                     `json:"streak"`
	WeekStats models.JournalWeekStats `json:"weekStats"`
}

func journalLookup(day time.Time) (models.JournalEntry, bool) {
	entry, ok, err := storage.GetJournal(day)
	if err != nil {
		logger.Log.Warn("journal: read failed", "day", models.DateString(day), "error", err)
		return models.JournalEntry{}, false
	}
	return entry, ok
}

// journalEntry returns the stored entry for day or a blank one.
func journalEntry(day time.Time) (models.JournalEntry, error) {
	entry, ok, err := storage.GetJournal(day)
	if err != nil {
		return models.JournalEntry{}, err
	}
	if !ok {
		entry = models.JournalEntry{}
	}
	entry.Date = models.DateString(day)
	return entry, nil
}

func journalResponse(day time.Time, entry models.JournalEntry) JournalResponse {
	return JournalResponse{
		Entry:     entry,
		Streak:    services.JournalStreak(day, journalLookup),
		WeekStats: services.JournalWeekStats(day, journalLookup),
	}
}

// GetJournal returns the journal entry for ?date (default today).
func GetJournal(c *fiber.Ctx) error {
	day, err := dayParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	entry, err := journalEntry(day)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(journalResponse(day, entry))
}

// UpdateJournalActions merges the given action flags into today's entry.
func UpdateJournalActions(c *fiber.Ctx) error {
	var req models.UpdateJournalActionsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	day := today()
	entry, err := journalEntry(day)
	if err != nil {
		return fail(c, err)
	}
	entry = services.ApplyJournalActions(entry, req)
	if err := storage.SaveJournal(entry, day); err != nil {
		return fail(c, err)
	}
	return c.JSON(journalResponse(day, entry))
}

// UpdateJournalNote replaces today's note.
func UpdateJournalNote(c *fiber.Ctx) error {
	var req models.UpdateJournalNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	day := today()
	entry, err := journalEntry(day)
	if err != nil {
		return fail(c, err)
	}
	entry.Note = req.Note
	if err := storage.SaveJournal(entry, day); err != nil {
		return fail(c, err)
	}
	return c.JSON(journalResponse(day, entry))
}
