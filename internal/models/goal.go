package models

type GoalCategory string

const (
	CategoryRenewal  GoalCategory = "續約率"
	CategoryReferral GoalCategory = "轉介紹"
	CategoryContent  GoalCategory = "內容產出"
	CategoryTraining GoalCategory = "訓練次數"
	CategoryOther    GoalCategory = "其他"
)

var GoalCategories = []GoalCategory{
	CategoryRenewal,
	CategoryReferral,
	CategoryContent,
	CategoryTraining,
	CategoryOther,
}

func (c GoalCategory) Valid() bool {
	for _, known := range GoalCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Goal is one entry of the coach-goals array. Deadline is a YYYY-MM-DD date.
type Goal struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Target   float64      `json:"target"`
	Current  float64      `json:"current"`
	Unit     string       `json:"unit"`
	Deadline string       `json:"deadline"`
	Category GoalCategory `json:"category"`
}

// GoalView is a goal with its derived numbers.
type GoalView struct {
	Goal
	Progress  int    `json:"progress"`
	DaysLeft  int    `json:"daysLeft"`
	DailyPace int    `json:"dailyPace"`
	Band      string `json:"band"` // success, warning, danger
	Urgent    bool   `json:"urgent"`
}

type CreateGoalRequest struct {
	Title    string       `json:"title"`
	Target   float64      `json:"target"`
	Current  float64      `json:"current"`
	Unit     string       `json:"unit"`
	Deadline string       `json:"deadline"`
	Category GoalCategory `json:"category"`
}

type UpdateGoalProgressRequest struct {
	Current float64 `json:"current"`
}
