package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/chenhoward456-hash/coach-system/internal/models"
)

// ReminderWeekday is the day the weekly reflection reminder fires.
const ReminderWeekday = time.Friday

// WeekString names the week of the month t falls in, e.g. 2026年10月第3週.
// Weeks are 7-day blocks counted from the 1st, not calendar weeks.
func WeekString(t time.Time) string {
	return fmt.Sprintf("%d年%d月第%d週", t.Year(), int(t.Month()), (t.Day()+6)/7)
}

// ReflectionDue reports whether the reminder should show: it is Friday and
// nothing has been written for the current week.
func ReflectionDue(now time.Time, lastWeek string) bool {
	return now.Weekday() == ReminderWeekday && lastWeek != WeekString(now)
}

// NewReflection validates the three answers and stamps the current week.
func NewReflection(req models.CreateReflectionRequest, now time.Time) (models.Reflection, error) {
	r := models.Reflection{
		Week:        WeekString(now),
		Achievement: strings.TrimSpace(req.Achievement),
		Challenge:   strings.TrimSpace(req.Challenge),
		NextWeek:    strings.TrimSpace(req.NextWeek),
		Timestamp:   now.UnixMilli(),
	}
	if r.Achievement == "" || r.Challenge == "" || r.NextWeek == "" {
		return models.Reflection{}, fmt.Errorf("%w: achievement, challenge and nextWeek are required", ErrInvalidArgument)
	}
	return r, nil
}

// PrependReflection puts r in front so the list stays newest first.
func PrependReflection(list []models.Reflection, r models.Reflection) []models.Reflection {
	out := make([]models.Reflection, 0, len(list)+1)
	out = append(out, r)
	return append(out, list...)
}

// ExportReflections renders every reflection as a plain-text document.
// Dates are shown in loc.
func ExportReflections(list []models.Reflection, now time.Time, loc *time.Location) string {
	var b strings.Builder
	b.WriteString("📝 教練成長反思記錄\n")
	b.WriteString("==================\n\n")
	for _, r := range list {
		written := time.UnixMilli(r.Timestamp).In(loc)
		fmt.Fprintf(&b, "【%s】 - %d月%d日\n\n", r.Week, int(written.Month()), written.Day())
		fmt.Fprintf(&b, "🎉 這週最有成就感的事：\n%s\n\n", r.Achievement)
		fmt.Fprintf(&b, "💪 這週最大的挑戰：\n%s\n\n", r.Challenge)
		fmt.Fprintf(&b, "🎯 下週想改善什麼：\n%s\n\n", r.NextWeek)
		b.WriteString("-------------------\n\n")
	}
	fmt.Fprintf(&b, "\n匯出時間：%s\n", now.In(loc).Format(ReportTimeLayout))
	fmt.Fprintf(&b, "總共 %d 週的反思記錄\n", len(list))
	return b.String()
}

// ExportFileName is the suggested download name for an export made on day.
func ExportFileName(day time.Time) string {
	return "教練反思記錄_" + day.Format(DeadlineLayout) + ".txt"
}
