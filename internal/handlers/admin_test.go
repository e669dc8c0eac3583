package handlers_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenhoward456-hash/coach-system/internal/models"
)

type rosterBody struct {
	Coaches []models.Coach    `json:"coaches"`
	Stats   models.CoachStats `json:"stats"`
}

func TestCoachRoster(t *testing.T) {
	app := setupApp(t, friday)

	var body rosterBody
	decode(t, do(t, app, "GET", "/api/admin/coaches", nil), &body)
	require.Len(t, body.Coaches, 5)
	assert.Equal(t, "教練 D", body.Coaches[0].Name)
	assert.Equal(t, 92, body.Coaches[0].TotalScore)
	assert.Equal(t, 5, body.Stats.Total)
	assert.Equal(t, 3, body.Stats.Excellent)

	decode(t, do(t, app, "GET", "/api/admin/coaches?status=danger", nil), &body)
	require.Len(t, body.Coaches, 1)
	assert.Equal(t, "教練 E", body.Coaches[0].Name)
	assert.Equal(t, 5, body.Stats.Total)

	decode(t, do(t, app, "GET", "/api/admin/coaches?sort=name", nil), &body)
	assert.Equal(t, "教練 A", body.Coaches[0].Name)

	assert.Equal(t, 400, do(t, app, "GET", "/api/admin/coaches?status=great", nil).StatusCode)
}

func TestCoachCreateAndDelete(t *testing.T) {
	app := setupApp(t, friday)

	assert.Equal(t, 400, do(t, app, "POST", "/api/admin/coaches", models.CreateCoachRequest{}).StatusCode)

	var coach models.Coach
	resp := do(t, app, "POST", "/api/admin/coaches", models.CreateCoachRequest{
		Name: "教練 F", Level: "新手", Students: 2,
		Scores: models.CoachScores{Renewal: 60, Referral: 60, Content: 60, Soft: 60, Hard: 60},
	})
	assert.Equal(t, 201, resp.StatusCode)
	decode(t, resp, &coach)
	assert.Equal(t, 60, coach.TotalScore)
	assert.Equal(t, models.StatusGood, coach.Status)

	assert.Equal(t, 200, do(t, app, "GET", "/api/admin/coaches/"+coach.ID.String(), nil).StatusCode)
	assert.Equal(t, 200, do(t, app, "DELETE", "/api/admin/coaches/"+coach.ID.String(), nil).StatusCode)
	assert.Equal(t, 404, do(t, app, "GET", "/api/admin/coaches/"+coach.ID.String(), nil).StatusCode)
	assert.Equal(t, 400, do(t, app, "GET", "/api/admin/coaches/not-a-uuid", nil).StatusCode)
}

func TestCoachLookupErrors(t *testing.T) {
	app := setupApp(t, friday)
	missing := uuid.NewString()

	var errBody struct {
		Error string `json:"error"`
	}
	resp := do(t, app, "GET", "/api/admin/coaches/"+missing, nil)
	assert.Equal(t, 404, resp.StatusCode)
	decode(t, resp, &errBody)
	assert.Equal(t, "Coach not found", errBody.Error)

	resp = do(t, app, "DELETE", "/api/admin/coaches/"+missing, nil)
	assert.Equal(t, 404, resp.StatusCode)
	decode(t, resp, &errBody)
	assert.Equal(t, "Coach not found", errBody.Error)

	resp = do(t, app, "DELETE", "/api/admin/coaches/not-a-uuid", nil)
	assert.Equal(t, 400, resp.StatusCode)
	decode(t, resp, &errBody)
	assert.Equal(t, "Invalid coach ID", errBody.Error)

	resp = do(t, app, "GET", "/api/admin/coaches/not-a-uuid", nil)
	assert.Equal(t, 400, resp.StatusCode)
	decode(t, resp, &errBody)
	assert.Equal(t, "Invalid coach ID", errBody.Error)

	// the roster is untouched
	var body rosterBody
	decode(t, do(t, app, "GET", "/api/admin/coaches", nil), &body)
	assert.Len(t, body.Coaches, 5)
}

func TestCoachGetReturnsRow(t *testing.T) {
	app := setupApp(t, friday)

	var body rosterBody
	decode(t, do(t, app, "GET", "/api/admin/coaches?sort=name", nil), &body)
	want := body.Coaches[0]

	var got models.Coach
	resp := do(t, app, "GET", "/api/admin/coaches/"+want.ID.String(), nil)
	require.Equal(t, 200, resp.StatusCode)
	decode(t, resp, &got)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, "教練 A", got.Name)
	assert.Equal(t, want.TotalScore, got.TotalScore)
}
