package models

type Reflection struct {
	Week        string `json:"week"`
	Achievement string `json:"achievement"`
	Challenge   string `json:"challenge"`
	NextWeek    string `json:"nextWeek"`
	Timestamp   int64  `json:"timestamp"` // unix millis
}

type CreateReflectionRequest struct {
	Achievement string `json:"achievement"`
	Challenge   string `json:"challenge"`
	NextWeek    string `json:"nextWeek"`
}

// Prompts shown above the three reflection answers.
var ReflectionPrompts = []string{
	"這週最大的成就是什麼？",
	"這週遇到最大的挑戰是什麼？",
	"下週想要改善或嘗試什麼？",
}
