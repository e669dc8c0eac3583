package models

type PlanLevel string

const (
	PlanBeginner     PlanLevel = "beginner"
	PlanIntermediate PlanLevel = "intermediate"
)

func (l PlanLevel) Valid() bool {
	return l == PlanBeginner || l == PlanIntermediate
}

type WeekTask struct {
	ID          string `json:"id" yaml:"id"`
	Task        string `json:"task" yaml:"task"`
	Description string `json:"description,omitempty" yaml:"description"`
	Completed   bool   `json:"completed" yaml:"-"`
}

type WeekPlan struct {
	Week       int        `json:"week" yaml:"week"`
	Title      string     `json:"title" yaml:"title"`
	Goal       string     `json:"goal" yaml:"goal"`
	Tasks      []WeekTask `json:"tasks" yaml:"tasks"`
	Reflection []string   `json:"reflection,omitempty" yaml:"reflection"`
}

type ThirtyDayPlan struct {
	Level       PlanLevel  `json:"level" yaml:"level"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	EndGoal     []string   `json:"endGoal" yaml:"endGoal"`
	Weeks       []WeekPlan `json:"weeks" yaml:"weeks"`
}

type Completion struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type PlanProgress struct {
	Overall Completion         `json:"overall"`
	Weeks   map[int]Completion `json:"weeks"`
}
