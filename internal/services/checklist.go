package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/chenhoward456-hash/coach-system/internal/models"
)

// DailyTaskCount is how many tasks are drawn from the pool each day.
const DailyTaskCount = 3

// IDLookup loads the set of completed ids stored for a day.
type IDLookup func(day time.Time) []string

// ChecklistStreak counts consecutive days, today first, with at least one
// checked item, looking back at most a year.
func ChecklistStreak(today time.Time, lookup IDLookup) int {
	return Streak(today, YearWindow, func(day time.Time) bool {
		return len(lookup(day)) > 0
	})
}

// Toggle adds id to ids when absent and removes it when present, keeping
// the order of the remaining ids.
func Toggle(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	found := false
	for _, existing := range ids {
		if existing == id {
			found = true
			continue
		}
		out = append(out, existing)
	}
	if !found {
		out = append(out, id)
	}
	return out
}

// Completion counts how many of known are in done. Ids in done that are not
// in known are ignored.
func Completion(done []string, known []string) models.Completion {
	set := make(map[string]bool, len(done))
	for _, id := range done {
		set[id] = true
	}
	completed := 0
	for _, id := range known {
		if set[id] {
			completed++
		}
	}
	return models.Completion{
		Completed:  completed,
		Total:      len(known),
		Percentage: Percent(completed, len(known)),
	}
}

// RequireKnown returns ErrNotFound when id is not one of known.
func RequireKnown(id string, known []string) error {
	for _, k := range known {
		if k == id {
			return nil
		}
	}
	return fmt.Errorf("%w: task %q", ErrNotFound, id)
}

func ChecklistIDs(tasks []models.ChecklistTask) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

func DailyTaskIDs(tasks []models.DailyTask) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

// PickDailyTasks draws n distinct tasks from pool in random order.
func PickDailyTasks(pool []models.DailyTask, n int, rng *rand.Rand) []models.DailyTask {
	shuffled := append([]models.DailyTask(nil), pool...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// TaskCompletion counts true flags in tasks against every known weekly id.
func TaskCompletion(tasks models.TaskData, known []string) models.Completion {
	var done []string
	for id, v := range tasks {
		if v {
			done = append(done, id)
		}
	}
	return Completion(done, known)
}
