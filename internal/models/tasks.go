package models

// TaskData maps weekly task ids to their done flag.
type TaskData map[string]bool

type TaskItem struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

type TaskCategory struct {
	Title string     `json:"title" yaml:"title"`
	Icon  string     `json:"icon" yaml:"icon"`
	Tasks []TaskItem `json:"tasks" yaml:"tasks"`
}

// ChecklistTask is one of the fixed daily checklist items.
type ChecklistTask struct {
	ID          string `json:"id" yaml:"id"`
	Category    string `json:"category" yaml:"category"`
	Icon        string `json:"icon" yaml:"icon"`
	Task        string `json:"task" yaml:"task"`
	Description string `json:"description" yaml:"description"`
	Link        string `json:"link,omitempty" yaml:"link"`
}

type ChecklistState struct {
	Date      string          `json:"date"`
	Tasks     []ChecklistTask `json:"tasks"`
	Completed []string        `json:"completed"`
	Progress  Completion      `json:"progress"`
	Streak    int             `json:"streak"`
}

// DailyTask is an entry of the random daily task pool.
type DailyTask struct {
	ID            string `json:"id" yaml:"id"`
	Title         string `json:"title" yaml:"title"`
	Description   string `json:"description" yaml:"description"`
	Icon          string `json:"icon" yaml:"icon"`
	Action        string `json:"action" yaml:"action"`
	EstimatedTime string `json:"estimatedTime" yaml:"estimatedTime"`
}

type DailyTasksState struct {
	Date         string      `json:"date"`
	Tasks        []DailyTask `json:"tasks"`
	Completed    []string    `json:"completed"`
	AllCompleted bool        `json:"allCompleted"`
	Progress     Completion  `json:"progress"`
}
