package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenhoward456-hash/coach-system/internal/models"
)

func TestNewGoalValidation(t *testing.T) {
	cases := []models.CreateGoalRequest{
		{Target: 10, Deadline: "2026-12-31"},
		{Title: "拍影片", Deadline: "2026-12-31"},
		{Title: "拍影片", Target: -1, Deadline: "2026-12-31"},
		{Title: "拍影片", Target: 10},
		{Title: "拍影片", Target: 10, Deadline: "12/31/2026"},
		{Title: "拍影片", Target: 10, Deadline: "2026-12-31", Category: "???"},
	}
	for _, req := range cases {
		_, err := NewGoal(req)
		assert.ErrorIs(t, err, ErrInvalidArgument, "%+v", req)
	}
}

func TestNewGoalDefaults(t *testing.T) {
	g, err := NewGoal(models.CreateGoalRequest{Title: " 拍影片 ", Target: 8, Unit: "支", Deadline: "2026-11-30"})
	require.NoError(t, err)
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "拍影片", g.Title)
	assert.Equal(t, models.CategoryContent, g.Category)
}

func TestGoalProgressClamped(t *testing.T) {
	assert.Equal(t, 50, GoalProgress(models.Goal{Target: 8, Current: 4}))
	assert.Equal(t, 100, GoalProgress(models.Goal{Target: 8, Current: 20}))
	assert.Equal(t, 0, GoalProgress(models.Goal{Target: 8, Current: -2}))
	assert.Equal(t, 0, GoalProgress(models.Goal{Target: 0, Current: 2}))
	assert.Equal(t, 33, GoalProgress(models.Goal{Target: 3, Current: 1}))
}

func TestDaysLeftAndPace(t *testing.T) {
	now := time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, 15, DaysLeft("2026-10-31", now, time.UTC))
	assert.Equal(t, 0, DaysLeft("2026-10-16", now, time.UTC))
	assert.Equal(t, -2, DaysLeft("2026-10-14", now, time.UTC))

	g := models.Goal{Target: 10, Current: 3}
	assert.Equal(t, 1, DailyPace(g, 15))
	assert.Equal(t, 4, DailyPace(g, 2))
	assert.Equal(t, 0, DailyPace(g, 0))
	assert.Equal(t, 0, DailyPace(models.Goal{Target: 10, Current: 12}, 5))
}

func TestViewGoal(t *testing.T) {
	now := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	v := ViewGoal(models.Goal{Title: "轉介紹", Target: 10, Current: 6, Deadline: "2026-10-20"}, now, time.UTC)
	assert.Equal(t, 60, v.Progress)
	assert.Equal(t, 4, v.DaysLeft)
	assert.Equal(t, 1, v.DailyPace)
	assert.Equal(t, BandWarning, v.Band)
	assert.True(t, v.Urgent)

	assert.Equal(t, BandSuccess, ProgressBand(80))
	assert.Equal(t, BandDanger, ProgressBand(49))
}

func TestUpdateAndDeleteGoal(t *testing.T) {
	goals := []models.Goal{{ID: "a", Target: 5}, {ID: "b", Target: 5}}

	goals, g, err := UpdateGoalProgress(goals, "b", 3)
	require.NoError(t, err)
	assert.EqualValues(t, 3, g.Current)
	assert.EqualValues(t, 3, goals[1].Current)
	assert.Equal(t, 1, ActiveGoals([]models.Goal{{Target: 5, Current: 5}, {Target: 5}}))

	_, _, err = UpdateGoalProgress(goals, "zzz", 1)
	assert.ErrorIs(t, err, ErrNotFound)

	goals, err = DeleteGoal(goals, "a")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "b", goals[0].ID)

	_, err = DeleteGoal(goals, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}
