package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chenhoward456-hash/coach-system/internal/models"
)

func samplePlan() models.ThirtyDayPlan {
	return models.ThirtyDayPlan{
		Level: models.PlanBeginner,
		Weeks: []models.WeekPlan{
			{Week: 1, Tasks: []models.WeekTask{{ID: "w1-1"}, {ID: "w1-2"}}},
			{Week: 2, Tasks: []models.WeekTask{{ID: "w2-1"}, {ID: "w2-2"}, {ID: "w2-3"}}},
		},
	}
}

func TestComputePlanProgress(t *testing.T) {
	p := ComputePlanProgress(samplePlan(), []string{"w1-1", "w1-2", "w2-3", "stale"})
	assert.Equal(t, models.Completion{Completed: 3, Total: 5, Percentage: 60}, p.Overall)
	assert.Equal(t, 100, p.Weeks[1].Percentage)
	assert.Equal(t, models.Completion{Completed: 1, Total: 3, Percentage: 33}, p.Weeks[2])
}

func TestMarkPlan(t *testing.T) {
	p := MarkPlan(samplePlan(), []string{"w2-2"})
	assert.False(t, p.Weeks[0].Tasks[0].Completed)
	assert.True(t, p.Weeks[1].Tasks[1].Completed)
	assert.Equal(t, []string{"w1-1", "w1-2", "w2-1", "w2-2", "w2-3"}, PlanTaskIDs(p))
}
