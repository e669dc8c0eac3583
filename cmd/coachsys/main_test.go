package main

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenhoward456-hash/coach-system/internal/config"
	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/services"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
	"github.com/chenhoward456-hash/coach-system/internal/testutil"
)

func setup(t *testing.T) {
	t.Helper()
	testutil.SetupDB(t)
	cfg = &config.Config{Timezone: "Asia/Taipei"}
	t.Cleanup(func() { cfg = nil })
}

func stubClipboard(t *testing.T) *string {
	t.Helper()
	var copied string
	prev := clipboardWriteAll
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { clipboardWriteAll = prev })
	return &copied
}

func TestMessageText(t *testing.T) {
	text, err := messageText("care-after-class", map[string]string{"name": "小美", "exercise": "硬舉"})
	require.NoError(t, err)
	assert.Contains(t, text, "小美 今天辛苦了")
	assert.Contains(t, text, "今天的硬舉進步很多")

	_, err = messageText("missing", nil)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDeliverCopiesOrPrints(t *testing.T) {
	copied := stubClipboard(t)

	var out bytes.Buffer
	require.NoError(t, deliver(&out, "hello"))
	assert.Equal(t, "hello", *copied)
	assert.Contains(t, out.String(), "copied")

	printOnly = true
	defer func() { printOnly = false }()
	out.Reset()
	require.NoError(t, deliver(&out, "printed"))
	assert.Equal(t, "printed\n", out.String())
	assert.Equal(t, "hello", *copied)
}

func TestDeliverClipboardFailure(t *testing.T) {
	prev := clipboardWriteAll
	clipboardWriteAll = func(string) error { return errors.New("no clipboard") }
	defer func() { clipboardWriteAll = prev }()

	err := deliver(&bytes.Buffer{}, "x")
	assert.ErrorContains(t, err, "no clipboard")
}

func TestReportsNeedSavedData(t *testing.T) {
	setup(t)

	_, err := scoreReport()
	assert.ErrorIs(t, err, errNothingSaved)
	_, err = diagnosisReport()
	assert.ErrorIs(t, err, errNothingSaved)
	_, err = reflectionsExport()
	assert.ErrorIs(t, err, errNothingSaved)

	require.NoError(t, storage.SaveScores(models.ScoreData{Score1: 25, Score2: 25, Score3: 25, Score4: 20}))
	require.NoError(t, storage.SaveDiagnosis(models.DiagnosisData{MainIssue: models.IssueLost}))

	text, err := scoreReport()
	require.NoError(t, err)
	assert.Contains(t, text, "總分：95/100")

	text, err = diagnosisReport()
	require.NoError(t, err)
	assert.Contains(t, text, "迷惘 1")
	assert.Contains(t, text, "你目前只在做 0 項活動")
}

func TestExportReflectionsToFile(t *testing.T) {
	setup(t)
	require.NoError(t, storage.SaveReflections([]models.Reflection{
		{Week: "2026年10月第2週", Achievement: "a", Challenge: "b", NextWeek: "c", Timestamp: time.Now().UnixMilli()},
	}, "2026年10月第2週"))

	path := filepath.Join(t.TempDir(), "out.txt")
	exportOutput = path
	defer func() { exportOutput = "" }()

	var out bytes.Buffer
	exportReflectionsCmd.SetOut(&out)
	require.NoError(t, exportReflectionsCmd.RunE(exportReflectionsCmd, nil))
	assert.Contains(t, out.String(), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "【2026年10月第2週】")
}

func TestStatusReport(t *testing.T) {
	setup(t)
	day := time.Date(2026, 10, 16, 9, 0, 0, 0, cfg.Location())
	require.NoError(t, storage.SaveChecklist(day, []string{"admin"}))
	require.NoError(t, storage.SaveGoals([]models.Goal{{ID: "g", Title: "拍影片", Target: 4, Current: 1, Deadline: "2026-10-20"}}))

	s, err := collectStatus(day)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Checklist.Completed)
	assert.Equal(t, 1, s.ChecklistStreak)
	assert.Nil(t, s.Score)
	require.Len(t, s.Goals, 1)
	assert.True(t, s.Goals[0].Urgent)
	assert.True(t, s.ReflectionDue)
	assert.Equal(t, 12, s.Plans[models.PlanBeginner].Total)

	var out bytes.Buffer
	require.NoError(t, renderStatus(&out, s))
	assert.Contains(t, out.String(), "2026/10/16")
	assert.Contains(t, out.String(), "拍影片")
	assert.Contains(t, out.String(), "尚未評分")
}

func TestHealth(t *testing.T) {
	setup(t)
	app := newApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
