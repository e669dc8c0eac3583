package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chenhoward456-hash/coach-system/internal/content"
)

// GetMessages returns message templates, optionally one ?category.
func GetMessages(c *fiber.Ctx) error {
	lib := content.MustLoad()
	return c.JSON(fiber.Map{
		"categories": lib.MessageCategories(),
		"messages":   lib.MessagesByCategory(c.Query("category")),
	})
}

func GetMessage(c *fiber.Ctx) error {
	msg, ok := content.MustLoad().Message(c.Params("id"))
	if !ok {
		return notFound(c, "Message not found")
	}
	return c.JSON(fiber.Map{
		"message":   msg,
		"variables": content.Variables(msg.Content),
	})
}

// FillMessage substitutes the given variables into template :id.
func FillMessage(c *fiber.Ctx) error {
	msg, ok := content.MustLoad().Message(c.Params("id"))
	if !ok {
		return notFound(c, "Message not found")
	}
	var req struct {
		Variables map[string]string `json:"variables"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	return c.JSON(fiber.Map{
		"id":   msg.ID,
		"text": content.Fill(msg.Content, req.Variables),
	})
}

// GetVideos returns video topics filtered by ?category and ?level.
func GetVideos(c *fiber.Ctx) error {
	lib := content.MustLoad()
	return c.JSON(fiber.Map{
		"categories": lib.Videos.Categories,
		"levels":     lib.Videos.Levels,
		"topics":     lib.VideoTopics(c.Query("category"), c.Query("level")),
	})
}

func GetVideo(c *fiber.Ctx) error {
	topic, ok := content.MustLoad().VideoTopic(c.Params("id"))
	if !ok {
		return notFound(c, "Video topic not found")
	}
	return c.JSON(topic)
}

// GetResources returns the reading lists, optionally one ?level.
func GetResources(c *fiber.Ctx) error {
	return c.JSON(content.MustLoad().Books(c.Query("level")))
}

func GetMindset(c *fiber.Ctx) error {
	return c.JSON(content.MustLoad().Essays)
}

// GetEssay returns one essay with its body rendered to HTML.
func GetEssay(c *fiber.Ctx) error {
	essay, ok := content.MustLoad().Essay(c.Params("id"))
	if !ok {
		return notFound(c, "Essay not found")
	}
	html, err := content.RenderMarkdown(essay.Body)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"essay": essay,
		"html":  html,
	})
}

// GetFrameworks lists the practical frameworks. With ?q the first framework
// whose keyword appears in the query is returned as "match".
func GetFrameworks(c *fiber.Ctx) error {
	lib := content.MustLoad()
	resp := fiber.Map{
		"frameworks": lib.Frameworks(),
		"keywords":   lib.FrameworkKeywords(),
	}
	if q := c.Query("q"); q != "" {
		if f, ok := lib.SearchFramework(q); ok {
			resp["match"] = f.ID
		} else {
			resp["match"] = nil
		}
	}
	return c.JSON(resp)
}

func GetFramework(c *fiber.Ctx) error {
	f, ok := content.MustLoad().Framework(c.Params("id"))
	if !ok {
		return notFound(c, "Framework not found")
	}
	return c.JSON(f)
}

// GetPolygon returns the growth polygon with its explanation rendered to HTML.
func GetPolygon(c *fiber.Ctx) error {
	p := content.MustLoad().Polygon
	html, err := content.RenderMarkdown(p.Explanation)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"polygon": p,
		"html":    html,
	})
}
