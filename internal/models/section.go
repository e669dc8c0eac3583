package models

// Section is one top-level page of the portal.
type Section string

const (
	SectionHome             Section = "home"
	SectionDiagnosis        Section = "diagnosis"
	SectionPlanBeginner     Section = "plan-beginner"
	SectionPlanIntermediate Section = "plan-intermediate"
	SectionVideos           Section = "videos"
	SectionMessages         Section = "messages"
	SectionResources        Section = "resources"
	SectionMindset          Section = "mindset"
	SectionFrameworks       Section = "frameworks"
	SectionChecklist        Section = "checklist"
	SectionJournal          Section = "journal"
	SectionScore            Section = "score"
	SectionGoals            Section = "goals"
	SectionReflection       Section = "reflection"
	SectionTasks            Section = "tasks"
	SectionProgress         Section = "progress"
	SectionAdmin            Section = "admin"
)

type SectionInfo struct {
	ID       Section `json:"id"`
	Label    string  `json:"label"`
	Endpoint string  `json:"endpoint"`
}

var Sections = []SectionInfo{
	{SectionHome, "首頁", "/api/dashboard"},
	{SectionDiagnosis, "問題診斷", "/api/diagnosis"},
	{SectionPlanBeginner, "新手30天計畫", "/api/plans/beginner"},
	{SectionPlanIntermediate, "進階30天計畫", "/api/plans/intermediate"},
	{SectionVideos, "影片主題庫", "/api/videos"},
	{SectionMessages, "救命錦囊", "/api/messages"},
	{SectionResources, "學習資源", "/api/resources"},
	{SectionMindset, "成長心法", "/api/mindset"},
	{SectionFrameworks, "實戰工具", "/api/frameworks"},
	{SectionChecklist, "今日行動清單", "/api/checklist"},
	{SectionJournal, "教練日記", "/api/journal"},
	{SectionScore, "自我評分", "/api/scores"},
	{SectionGoals, "目標追蹤", "/api/goals"},
	{SectionReflection, "每週反思", "/api/reflections"},
	{SectionTasks, "每週任務清單", "/api/tasks"},
	{SectionProgress, "進度儀表板", "/api/dashboard/progress"},
	{SectionAdmin, "管理後台", "/api/admin/coaches"},
}

// LookupSection returns the section with id, or false for unknown ids.
func LookupSection(id string) (SectionInfo, bool) {
	for _, s := range Sections {
		if string(s.ID) == id {
			return s, true
		}
	}
	return SectionInfo{}, false
}

type DashboardSummary struct {
	Date            string           `json:"date"`
	Checklist       Completion       `json:"checklist"`
	ChecklistStreak int              `json:"checklistStreak"`
	JournalStreak   int              `json:"journalStreak"`
	WeekStats       JournalWeekStats `json:"weekStats"`
	Scores          *ScoreData       `json:"scores"`
	ActiveGoals     int              `json:"activeGoals"`
	ReflectionDue   bool             `json:"reflectionDue"`
}

type WeeklyProgress struct {
	Week           string `json:"week"`
	From           string `json:"from"`
	To             string `json:"to"`
	CompletionRate int    `json:"completionRate"`
}
