package services

import (
	"time"

	"github.com/chenhoward456-hash/coach-system/internal/models"
)

// JournalLookup loads the journal entry for a day.
type JournalLookup func(day time.Time) (models.JournalEntry, bool)

// JournalStreak counts consecutive days, today first, with at least one
// recorded action.
func JournalStreak(today time.Time, lookup JournalLookup) int {
	return Streak(today, JournalWindow, func(day time.Time) bool {
		entry, ok := lookup(day)
		return ok && entry.HasAction()
	})
}

// JournalWeekStats sums the last seven days, today included.
func JournalWeekStats(today time.Time, lookup JournalLookup) models.JournalWeekStats {
	var stats models.JournalWeekStats
	EachDay(today, WeekWindow, func(day time.Time) {
		entry, ok := lookup(day)
		if !ok {
			return
		}
		if entry.Actions.Video {
			stats.Videos++
		}
		stats.Followups += entry.Actions.Followup
		if entry.Actions.Learning {
			stats.Learnings++
		}
	})
	return stats
}

// ApplyJournalActions merges a partial update into entry. A negative
// follow-up count is stored as 0.
func ApplyJournalActions(entry models.JournalEntry, req models.UpdateJournalActionsRequest) models.JournalEntry {
	if req.Video != nil {
		entry.Actions.Video = *req.Video
	}
	if req.Followup != nil {
		entry.Actions.Followup = *req.Followup
		if entry.Actions.Followup < 0 {
			entry.Actions.Followup = 0
		}
	}
	if req.Learning != nil {
		entry.Actions.Learning = *req.Learning
	}
	if req.Development != nil {
		entry.Actions.Development = *req.Development
	}
	return entry
}
