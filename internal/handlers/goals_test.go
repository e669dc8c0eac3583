package handlers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/services"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

func TestGoalLifecycle(t *testing.T) {
	app := setupApp(t, friday)

	resp := do(t, app, "POST", "/api/goals", models.CreateGoalRequest{Title: "拍影片", Deadline: "2026-10-31"})
	assert.Equal(t, 400, resp.StatusCode)

	var created models.GoalView
	resp = do(t, app, "POST", "/api/goals", models.CreateGoalRequest{
		Title: "拍影片", Target: 8, Current: 2, Unit: "支", Deadline: "2026-10-20",
	})
	assert.Equal(t, 201, resp.StatusCode)
	decode(t, resp, &created)
	assert.Equal(t, 25, created.Progress)
	assert.Equal(t, 4, created.DaysLeft)
	assert.Equal(t, 2, created.DailyPace)
	assert.Equal(t, services.BandDanger, created.Band)
	assert.Equal(t, models.CategoryContent, created.Category)

	var updated models.GoalView
	decode(t, do(t, app, "PUT", "/api/goals/"+created.ID+"/progress", models.UpdateGoalProgressRequest{Current: 7}), &updated)
	assert.Equal(t, 88, updated.Progress)
	assert.Equal(t, services.BandSuccess, updated.Band)

	var list struct {
		Goals []models.GoalView `json:"goals"`
	}
	decode(t, do(t, app, "GET", "/api/goals", nil), &list)
	require.Len(t, list.Goals, 1)
	assert.EqualValues(t, 7, list.Goals[0].Current)

	assert.Equal(t, 404, do(t, app, "PUT", "/api/goals/missing/progress", models.UpdateGoalProgressRequest{Current: 1}).StatusCode)
	assert.Equal(t, 200, do(t, app, "DELETE", "/api/goals/"+created.ID, nil).StatusCode)
	assert.Equal(t, 404, do(t, app, "DELETE", "/api/goals/"+created.ID, nil).StatusCode)

	goals, err := storage.GetGoals()
	require.NoError(t, err)
	assert.Empty(t, goals)
}
