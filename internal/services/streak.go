package services

import (
	"math"
	"time"
)

// Streak windows used by the widgets.
const (
	WeekWindow    = 7
	JournalWindow = 30
	YearWindow    = 365
)

// Streak walks back from today one day at a time, at most window days, and
// counts consecutive days for which qualifies returns true. The first day
// that does not qualify ends the walk, so a missing today means 0.
func Streak(today time.Time, window int, qualifies func(day time.Time) bool) int {
	count := 0
	for i := 0; i < window; i++ {
		if !qualifies(today.AddDate(0, 0, -i)) {
			break
		}
		count++
	}
	return count
}

// EachDay calls fn for today and the window-1 days before it, newest first.
func EachDay(today time.Time, window int, fn func(day time.Time)) {
	for i := 0; i < window; i++ {
		fn(today.AddDate(0, 0, -i))
	}
}

// Percent is done/total as a rounded percentage; 0 when total is 0.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
