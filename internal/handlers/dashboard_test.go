package handlers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

func TestDashboardSummary(t *testing.T) {
	app := setupApp(t, friday)
	require.NoError(t, storage.SaveChecklist(friday, []string{"admin", "teaching"}))
	require.NoError(t, storage.SaveJournal(models.JournalEntry{Actions: models.JournalActions{Video: true}}, friday))
	require.NoError(t, storage.SaveScores(models.ScoreData{Score1: 20, Score2: 20, Score3: 20, Score4: 20}))
	require.NoError(t, storage.SaveGoals([]models.Goal{
		{ID: "a", Target: 4, Current: 4},
		{ID: "b", Target: 4, Current: 1},
	}))

	var summary models.DashboardSummary
	decode(t, do(t, app, "GET", "/api/dashboard", nil), &summary)
	assert.Equal(t, "2026/10/16", summary.Date)
	assert.Equal(t, 2, summary.Checklist.Completed)
	assert.Equal(t, 1, summary.ChecklistStreak)
	assert.Equal(t, 1, summary.JournalStreak)
	assert.Equal(t, 1, summary.WeekStats.Videos)
	require.NotNil(t, summary.Scores)
	assert.Equal(t, 20, summary.Scores.Score1)
	assert.Equal(t, 1, summary.ActiveGoals)
	assert.True(t, summary.ReflectionDue)
}

func TestProgressDashboard(t *testing.T) {
	app := setupApp(t, friday)
	require.NoError(t, storage.SavePlanProgress(models.PlanIntermediate, []string{"i1-1", "i1-2", "i1-3"}))
	require.NoError(t, storage.SaveTasks(models.TaskData{"video": true, "post": true, "story": true}))

	var body struct {
		History     []models.WeeklyProgress                  `json:"history"`
		WeeklyTasks models.Completion                        `json:"weeklyTasks"`
		Plans       map[models.PlanLevel]models.PlanProgress `json:"plans"`
		Score       *models.ScoreResult                      `json:"score"`
	}
	decode(t, do(t, app, "GET", "/api/dashboard/progress", nil), &body)
	assert.Len(t, body.History, 4)
	assert.Equal(t, 25, body.WeeklyTasks.Percentage)
	assert.Equal(t, 0, body.Plans[models.PlanBeginner].Overall.Completed)
	assert.Equal(t, 100, body.Plans[models.PlanIntermediate].Weeks[1].Percentage)
	assert.Nil(t, body.Score)
}
