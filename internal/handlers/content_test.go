package handlers_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessages(t *testing.T) {
	app := setupApp(t, friday)

	var list struct {
		Categories []struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		} `json:"categories"`
		Messages []struct {
			ID string `json:"id"`
		} `json:"messages"`
	}
	decode(t, do(t, app, "GET", "/api/messages?category="+url.QueryEscape("續約"), nil), &list)
	assert.Len(t, list.Categories, 5)
	require.Len(t, list.Messages, 2)

	var one struct {
		Variables []string `json:"variables"`
	}
	decode(t, do(t, app, "GET", "/api/messages/care-after-class", nil), &one)
	assert.Contains(t, one.Variables, "name")

	var filled struct {
		Text string `json:"text"`
	}
	decode(t, do(t, app, "POST", "/api/messages/care-after-class/fill", map[string]interface{}{
		"variables": map[string]string{"name": "小明"},
	}), &filled)
	assert.Contains(t, filled.Text, "小明 今天辛苦了")
	assert.Contains(t, filled.Text, "{exercise}")

	assert.Equal(t, 404, do(t, app, "GET", "/api/messages/nope", nil).StatusCode)
}

func TestVideosResourcesMindset(t *testing.T) {
	app := setupApp(t, friday)

	var videos struct {
		Topics []struct {
			Level string `json:"level"`
		} `json:"topics"`
	}
	decode(t, do(t, app, "GET", "/api/videos?level="+url.QueryEscape("進階"), nil), &videos)
	require.NotEmpty(t, videos.Topics)
	for _, v := range videos.Topics {
		assert.Equal(t, "進階", v.Level)
	}
	assert.Equal(t, 200, do(t, app, "GET", "/api/videos/squat-mistakes", nil).StatusCode)

	var lists []struct {
		Level string `json:"level"`
	}
	decode(t, do(t, app, "GET", "/api/resources?level=beginner", nil), &lists)
	require.Len(t, lists, 1)
	assert.Equal(t, "beginner", lists[0].Level)

	var essay struct {
		HTML string `json:"html"`
	}
	decode(t, do(t, app, "GET", "/api/mindset/lost", nil), &essay)
	assert.Contains(t, essay.HTML, "<p>")
	assert.Equal(t, 404, do(t, app, "GET", "/api/mindset/unknown", nil).StatusCode)
}

func TestFrameworksAndPolygon(t *testing.T) {
	app := setupApp(t, friday)

	var list struct {
		Frameworks []struct {
			ID string `json:"id"`
		} `json:"frameworks"`
		Match *string `json:"match"`
	}
	decode(t, do(t, app, "GET", "/api/frameworks?q="+url.QueryEscape("學生說太貴"), nil), &list)
	assert.Len(t, list.Frameworks, 5)
	require.NotNil(t, list.Match)
	assert.Equal(t, "objection", *list.Match)

	list.Match = nil
	decode(t, do(t, app, "GET", "/api/frameworks?q=hello", nil), &list)
	assert.Nil(t, list.Match)

	var fw struct {
		Principle string `json:"principle"`
		Sections  []struct {
			Title string `json:"title"`
		} `json:"sections"`
	}
	decode(t, do(t, app, "GET", "/api/frameworks/renewal", nil), &fw)
	assert.Equal(t, "續約從第一堂課就開始，不是最後才提", fw.Principle)
	assert.Len(t, fw.Sections, 4)
	assert.Equal(t, 404, do(t, app, "GET", "/api/frameworks/unknown", nil).StatusCode)

	var poly struct {
		Polygon struct {
			Stages []struct {
				Total   int    `json:"total"`
				Weakest string `json:"weakest"`
			} `json:"stages"`
		} `json:"polygon"`
		HTML string `json:"html"`
	}
	decode(t, do(t, app, "GET", "/api/polygon", nil), &poly)
	require.Len(t, poly.Polygon.Stages, 3)
	assert.Equal(t, 100, poly.Polygon.Stages[0].Total)
	assert.Contains(t, poly.HTML, "<strong>")
	assert.Contains(t, poly.HTML, "<li>")
}
