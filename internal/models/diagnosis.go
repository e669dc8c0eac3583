package models

const (
	IssueLost         = "lost"
	IssueInadequate   = "inadequate"
	IssueConfused     = "confused"
	IssueNoResults    = "noResults"
	IssueNoMotivation = "noMotivation"
	IssueOK           = "ok"
)

type CoachLevel string

const (
	LevelBeginner     CoachLevel = "beginner"
	LevelIntermediate CoachLevel = "intermediate"
)

type DiagnosisData struct {
	MainIssue      string   `json:"mainIssue"`
	Activities     []string `json:"activities"`
	TimeCommitment string   `json:"timeCommitment"`
	Result         string   `json:"result"`
	Timestamp      string   `json:"timestamp"`
}

type DiagnosisResult struct {
	Type            string     `json:"type"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Solution        string     `json:"solution"`
	ActionSteps     []string   `json:"actionSteps"`
	ActivitiesCount int        `json:"activitiesCount"`
	CoachLevel      CoachLevel `json:"coachLevel"`
}

type DiagnoseRequest struct {
	MainIssue      string   `json:"mainIssue"`
	Activities     []string `json:"activities"`
	TimeCommitment string   `json:"timeCommitment"`
}
