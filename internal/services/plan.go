package services

import (
	"github.com/chenhoward456-hash/coach-system/internal/models"
)

// PlanTaskIDs lists every task id of the plan in week order.
func PlanTaskIDs(p models.ThirtyDayPlan) []string {
	var ids []string
	for _, w := range p.Weeks {
		for _, t := range w.Tasks {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// MarkPlan sets the completed flag on every task whose id is in done.
func MarkPlan(p models.ThirtyDayPlan, done []string) models.ThirtyDayPlan {
	set := make(map[string]bool, len(done))
	for _, id := range done {
		set[id] = true
	}
	for wi := range p.Weeks {
		for ti := range p.Weeks[wi].Tasks {
			task := &p.Weeks[wi].Tasks[ti]
			task.Completed = set[task.ID]
		}
	}
	return p
}

// ComputePlanProgress returns completion per week and for the whole plan.
func ComputePlanProgress(p models.ThirtyDayPlan, done []string) models.PlanProgress {
	progress := models.PlanProgress{
		Overall: Completion(done, PlanTaskIDs(p)),
		Weeks:   make(map[int]models.Completion, len(p.Weeks)),
	}
	for _, w := range p.Weeks {
		ids := make([]string, len(w.Tasks))
		for i, t := range w.Tasks {
			ids[i] = t.ID
		}
		progress.Weeks[w.Week] = Completion(done, ids)
	}
	return progress
}
