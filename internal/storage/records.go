package storage

import (
	"time"

	"github.com/chenhoward456-hash/coach-system/internal/models"
)

func GetTasks() (models.TaskData, error) {
	tasks := models.TaskData{}
	ok, err := GetJSON(models.KeyTasks, &tasks)
	if err != nil || !ok {
		return models.TaskData{}, err
	}
	return tasks, nil
}

func SaveTasks(tasks models.TaskData) error {
	return SetJSON(models.KeyTasks, tasks)
}

func GetScores() (*models.ScoreData, error) {
	var scores models.ScoreData
	ok, err := GetJSON(models.KeyScores, &scores)
	if err != nil || !ok {
		return nil, err
	}
	return &scores, nil
}

func SaveScores(scores models.ScoreData) error {
	return SetJSON(models.KeyScores, scores)
}

func GetDiagnosis() (*models.DiagnosisData, error) {
	var d models.DiagnosisData
	ok, err := GetJSON(models.KeyDiagnosis, &d)
	if err != nil || !ok {
		return nil, err
	}
	return &d, nil
}

func SaveDiagnosis(d models.DiagnosisData) error {
	return SetJSON(models.KeyDiagnosis, d)
}

// ClearAll removes the task, score and diagnosis records.
func ClearAll() error {
	return Remove(models.ClearableKeys...)
}

func GetChecklist(day time.Time) ([]string, error) {
	return getIDs(models.ChecklistKey(day))
}

func SaveChecklist(day time.Time, ids []string) error {
	return SetJSON(models.ChecklistKey(day), nonNil(ids))
}

// GetJournal returns the entry stored for day; ok is false when there is none.
func GetJournal(day time.Time) (entry models.JournalEntry, ok bool, err error) {
	ok, err = GetJSON(models.JournalKey(day), &entry)
	if err != nil || !ok {
		return models.JournalEntry{}, false, err
	}
	return entry, true, nil
}

func SaveJournal(entry models.JournalEntry, day time.Time) error {
	return SetJSON(models.JournalKey(day), entry)
}

func GetGoals() ([]models.Goal, error) {
	var goals []models.Goal
	ok, err := GetJSON(models.KeyGoals, &goals)
	if err != nil {
		return nil, err
	}
	if !ok || goals == nil {
		return []models.Goal{}, nil
	}
	return goals, nil
}

func SaveGoals(goals []models.Goal) error {
	if goals == nil {
		goals = []models.Goal{}
	}
	return SetJSON(models.KeyGoals, goals)
}

func GetReflections() ([]models.Reflection, error) {
	var reflections []models.Reflection
	ok, err := GetJSON(models.KeyReflections, &reflections)
	if err != nil {
		return nil, err
	}
	if !ok || reflections == nil {
		return []models.Reflection{}, nil
	}
	return reflections, nil
}

// SaveReflections writes the list and remembers week as the last one written.
func SaveReflections(reflections []models.Reflection, week string) error {
	if err := SetJSON(models.KeyReflections, reflections); err != nil {
		return err
	}
	return Set(models.KeyLastReflectionWeek, week)
}

func LastReflectionWeek() (string, error) {
	week, _, err := Get(models.KeyLastReflectionWeek)
	return week, err
}

func GetPlanProgress(level models.PlanLevel) ([]string, error) {
	return getIDs(models.PlanProgressKey(level))
}

func SavePlanProgress(level models.PlanLevel, ids []string) error {
	return SetJSON(models.PlanProgressKey(level), nonNil(ids))
}

func ResetPlanProgress(level models.PlanLevel) error {
	return Remove(models.PlanProgressKey(level))
}

// DailyTasks returns the persisted daily selection. date is empty when
// nothing has been picked yet.
func DailyTasks() (date string, tasks []models.DailyTask, completed []string, err error) {
	date, _, err = Get(models.KeyDailyTasksDate)
	if err != nil {
		return "", nil, nil, err
	}
	ok, err := GetJSON(models.KeyDailyTasksTasks, &tasks)
	if err != nil {
		return "", nil, nil, err
	}
	if !ok {
		// a selection without readable tasks is no selection
		return "", nil, nil, nil
	}
	if completed, err = getIDs(models.KeyDailyTasksDone); err != nil {
		return "", nil, nil, err
	}
	return date, tasks, completed, nil
}

func SaveDailySelection(date string, tasks []models.DailyTask) error {
	if err := Set(models.KeyDailyTasksDate, date); err != nil {
		return err
	}
	if err := SetJSON(models.KeyDailyTasksTasks, tasks); err != nil {
		return err
	}
	return SetJSON(models.KeyDailyTasksDone, []string{})
}

func SaveDailyCompleted(ids []string) error {
	return SetJSON(models.KeyDailyTasksDone, nonNil(ids))
}

func DeviceToken() (string, error) {
	token, _, err := Get(models.KeyDeviceToken)
	return token, err
}

func SaveDeviceToken(token string) error {
	return Set(models.KeyDeviceToken, token)
}

func getIDs(key string) ([]string, error) {
	var ids []string
	ok, err := GetJSON(key, &ids)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}
	return nonNil(ids), nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
