package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chenhoward456-hash/coach-system/internal/models"
)

var today = time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC) // a Friday

func journalDays(entries map[string]models.JournalActions) JournalLookup {
	return func(day time.Time) (models.JournalEntry, bool) {
		a, ok := entries[models.DateString(day)]
		if !ok {
			return models.JournalEntry{}, false
		}
		return models.JournalEntry{Date: models.DateString(day), Actions: a}, true
	}
}

func daysBack(n int) string {
	return models.DateString(today.AddDate(0, 0, -n))
}

func TestStreakStopsAtFirstGap(t *testing.T) {
	qualifying := map[int]bool{0: true, 1: true, 2: true, 4: true}
	got := Streak(today, JournalWindow, func(day time.Time) bool {
		n := int(today.Sub(day).Hours() / 24)
		return qualifying[n]
	})
	assert.Equal(t, 3, got)
}

func TestStreakZeroWhenTodayMissing(t *testing.T) {
	got := Streak(today, JournalWindow, func(day time.Time) bool {
		return !day.Equal(today)
	})
	assert.Equal(t, 0, got)
}

func TestStreakCappedAtWindow(t *testing.T) {
	always := func(time.Time) bool { return true }
	assert.Equal(t, JournalWindow, Streak(today, JournalWindow, always))
	assert.Equal(t, YearWindow, Streak(today, YearWindow, always))
}

func TestStreakGrowsByOnePerPrecedingDay(t *testing.T) {
	for n := 1; n <= 10; n++ {
		got := Streak(today, JournalWindow, func(day time.Time) bool {
			return today.Sub(day) < time.Duration(n)*24*time.Hour
		})
		assert.Equal(t, n, got)
	}
}

func TestJournalStreakIgnoresEmptyDays(t *testing.T) {
	lookup := journalDays(map[string]models.JournalActions{
		daysBack(0): {Followup: 2},
		daysBack(1): {Development: true},
		daysBack(2): {},
		daysBack(3): {Video: true},
	})
	assert.Equal(t, 2, JournalStreak(today, lookup))
}

func TestJournalWeekStats(t *testing.T) {
	lookup := journalDays(map[string]models.JournalActions{
		daysBack(0): {Video: true, Followup: 3, Learning: true},
		daysBack(3): {Video: true, Followup: 1},
		daysBack(6): {Learning: true},
		daysBack(7): {Video: true, Followup: 10, Learning: true},
	})
	stats := JournalWeekStats(today, lookup)
	assert.Equal(t, models.JournalWeekStats{Videos: 2, Followups: 4, Learnings: 2}, stats)
}

func TestApplyJournalActions(t *testing.T) {
	video := true
	followup := -4
	entry := ApplyJournalActions(models.JournalEntry{Actions: models.JournalActions{Learning: true}},
		models.UpdateJournalActionsRequest{Video: &video, Followup: &followup})
	assert.True(t, entry.Actions.Video)
	assert.True(t, entry.Actions.Learning)
	assert.Equal(t, 0, entry.Actions.Followup)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(3, 0))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 100, Percent(7, 7))
}
