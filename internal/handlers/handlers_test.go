package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/chenhoward456-hash/coach-system/internal/handlers"
	"github.com/chenhoward456-hash/coach-system/internal/middleware"
	"github.com/chenhoward456-hash/coach-system/internal/routes"
	"github.com/chenhoward456-hash/coach-system/internal/testutil"
)

// friday is 2026-10-16 09:00 in Taipei.
var friday = time.Date(2026, 10, 16, 9, 0, 0, 0, taipei())

func taipei() *time.Location {
	loc, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		panic(err)
	}
	return loc
}

func setupApp(t *testing.T, at time.Time) *fiber.App {
	t.Helper()
	testutil.SetupDB(t)
	handlers.Configure(taipei())
	restore := handlers.SetClock(func() time.Time { return at })
	t.Cleanup(restore)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	routes.Setup(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func readText(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}
