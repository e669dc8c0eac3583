package handlers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

func TestDiagnoseSavesRecord(t *testing.T) {
	app := setupApp(t, friday)

	assert.Equal(t, 400, do(t, app, "POST", "/api/diagnosis", models.DiagnoseRequest{}).StatusCode)

	var body struct {
		Diagnosis models.DiagnosisData   `json:"diagnosis"`
		Result    models.DiagnosisResult `json:"result"`
	}
	resp := do(t, app, "POST", "/api/diagnosis", models.DiagnoseRequest{
		MainIssue:      models.IssueNoResults,
		Activities:     []string{"video", "study"},
		TimeCommitment: "3-5",
	})
	assert.Equal(t, 201, resp.StatusCode)
	decode(t, resp, &body)
	assert.Equal(t, "迷惘 4", body.Result.Type)
	assert.Equal(t, models.LevelIntermediate, body.Result.CoachLevel)

	stored, err := storage.GetDiagnosis()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "迷惘 4", stored.Result)
	assert.Equal(t, "3-5", stored.TimeCommitment)

	text := readText(t, do(t, app, "GET", "/api/diagnosis/report", nil))
	assert.Contains(t, text, "診斷類型：迷惘 4")
	assert.NotContains(t, text, "額外發現")
}

func TestDiagnosisEmpty(t *testing.T) {
	app := setupApp(t, friday)

	var body map[string]interface{}
	decode(t, do(t, app, "GET", "/api/diagnosis", nil), &body)
	assert.Nil(t, body["diagnosis"])
	assert.Nil(t, body["result"])
	assert.Len(t, body["activities"], 4)

	assert.Equal(t, 404, do(t, app, "GET", "/api/diagnosis/report", nil).StatusCode)
}
