package handlers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

type reflectionsBody struct {
	Reflections []models.Reflection `json:"reflections"`
	CurrentWeek string              `json:"currentWeek"`
	Due         bool                `json:"due"`
}

func TestReflectionFlow(t *testing.T) {
	app := setupApp(t, friday)

	var body reflectionsBody
	decode(t, do(t, app, "GET", "/api/reflections", nil), &body)
	assert.True(t, body.Due)
	assert.Equal(t, "2026年10月第3週", body.CurrentWeek)
	assert.Empty(t, body.Reflections)
	assert.Equal(t, 404, do(t, app, "GET", "/api/reflections/export", nil).StatusCode)

	resp := do(t, app, "POST", "/api/reflections", models.CreateReflectionRequest{Achievement: "a"})
	assert.Equal(t, 400, resp.StatusCode)

	resp = do(t, app, "POST", "/api/reflections", models.CreateReflectionRequest{
		Achievement: "拍了三支影片", Challenge: "學員請假", NextWeek: "早點排課",
	})
	assert.Equal(t, 201, resp.StatusCode)

	decode(t, do(t, app, "GET", "/api/reflections", nil), &body)
	assert.False(t, body.Due)
	require.Len(t, body.Reflections, 1)

	week, err := storage.LastReflectionWeek()
	require.NoError(t, err)
	assert.Equal(t, "2026年10月第3週", week)

	resp = do(t, app, "GET", "/api/reflections/export", nil)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	text := readText(t, resp)
	assert.Contains(t, text, "【2026年10月第3週】 - 10月16日")
	assert.Contains(t, text, "總共 1 週的反思記錄")
}

func TestReflectionsNewestFirst(t *testing.T) {
	app := setupApp(t, friday)
	require.NoError(t, storage.SaveReflections([]models.Reflection{{Week: "2026年10月第2週"}}, "2026年10月第2週"))

	do(t, app, "POST", "/api/reflections", models.CreateReflectionRequest{Achievement: "a", Challenge: "b", NextWeek: "c"})

	list, err := storage.GetReflections()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2026年10月第3週", list[0].Week)
	assert.Equal(t, "2026年10月第2週", list[1].Week)
}
