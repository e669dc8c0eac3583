package services

import (
	"fmt"
	"time"

	"github.com/chenhoward456-hash/coach-system/internal/models"
)

// HistoryWeeks is how many 7-day buckets the progress chart shows.
const HistoryWeeks = 4

// ChecklistHistory averages the daily checklist completion percentage over
// each of the last HistoryWeeks 7-day buckets, oldest first. The newest
// bucket ends today.
func ChecklistHistory(today time.Time, total int, lookup IDLookup) []models.WeeklyProgress {
	out := make([]models.WeeklyProgress, HistoryWeeks)
	for w := 0; w < HistoryWeeks; w++ {
		end := today.AddDate(0, 0, -7*w)
		sum := 0
		EachDay(end, WeekWindow, func(day time.Time) {
			sum += Percent(min(len(lookup(day)), total), total)
		})
		out[HistoryWeeks-1-w] = models.WeeklyProgress{
			Week:           fmt.Sprintf("第%d週", HistoryWeeks-w),
			From:           models.LocaleDate(end.AddDate(0, 0, -(WeekWindow - 1))),
			To:             models.LocaleDate(end),
			CompletionRate: Percent(sum, 100*WeekWindow),
		}
	}
	return out
}
