package models

import "time"

// Fixed keys of the local-storage namespace.
const (
	KeyTasks              = "coach-system-tasks"
	KeyScores             = "coach-system-scores"
	KeyDiagnosis          = "coach-system-diagnosis"
	KeyGoals              = "coach-goals"
	KeyReflections        = "weeklyReflections"
	KeyLastReflectionWeek = "lastReflection_date"
	KeyDailyTasksDate     = "dailyTasks_date"
	KeyDailyTasksTasks    = "dailyTasks_tasks"
	KeyDailyTasksDone     = "dailyTasks_completed"
	KeyDeviceToken        = "deviceToken"
)

const (
	checklistPrefix = "dailyChecklist_"
	journalPrefix   = "journal_"
	planPrefix      = "thirtyDayPlan_"
)

// ClearableKeys are the keys removed by a full reset.
var ClearableKeys = []string{KeyTasks, KeyScores, KeyDiagnosis}

// LocaleDate is the zh-TW short date used in reports: 2026/1/5.
func LocaleDate(t time.Time) string {
	return t.Format("2006/1/2")
}

// DateString is the day format stored in daily keys: Mon Jan 05 2026.
func DateString(t time.Time) string {
	return t.Format("Mon Jan 02 2006")
}

func ChecklistKey(day time.Time) string {
	return checklistPrefix + LocaleDate(day)
}

func JournalKey(day time.Time) string {
	return journalPrefix + DateString(day)
}

func PlanProgressKey(level PlanLevel) string {
	return planPrefix + string(level) + "_completed"
}
