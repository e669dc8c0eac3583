package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/chenhoward456-hash/coach-system/internal/content"
	"github.com/chenhoward456-hash/coach-system/internal/logger"
	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/services"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

var (
	colorPrimary = lipgloss.Color("#2563EB")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSuccess = lipgloss.Color("#16A34A")
	colorWarning = lipgloss.Color("#CA8A04")
	colorDanger  = lipgloss.Color("#DC2626")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	labelStyle = lipgloss.NewStyle().Foreground(colorMuted).Width(14)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorPrimary).Padding(0, 1)
)

// statusColors maps the self-score status classes to terminal colors.
var statusColors = map[string]lipgloss.Color{
	"text-green-600":  colorSuccess,
	"text-blue-600":   colorPrimary,
	"text-yellow-600": colorWarning,
	"text-orange-600": colorWarning,
	"text-gray-600":   colorMuted,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's checklist, streaks, score, goals and plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := collectStatus(today())
		if err != nil {
			return err
		}
		return renderStatus(cmd.OutOrStdout(), s)
	},
}

type statusReport struct {
	Date            string
	Checklist       models.Completion
	ChecklistStreak int
	JournalStreak   int
	WeekStats       models.JournalWeekStats
	Score           *models.ScoreResult
	Goals           []models.GoalView
	Plans           map[models.PlanLevel]models.Completion
	ReflectionDue   bool
}

func collectStatus(t time.Time) (statusReport, error) {
	lib := content.MustLoad()
	r := statusReport{
		Date:  models.LocaleDate(t),
		Plans: map[models.PlanLevel]models.Completion{},
	}

	checklistDay := func(day time.Time) []string {
		ids, err := storage.GetChecklist(day)
		if err != nil {
			logger.Log.Warn("status: checklist read failed", "error", err)
		}
		return ids
	}
	journalDay := func(day time.Time) (models.JournalEntry, bool) {
		entry, ok, err := storage.GetJournal(day)
		if err != nil {
			logger.Log.Warn("status: journal read failed", "error", err)
		}
		return entry, ok
	}

	r.Checklist = services.Completion(checklistDay(t), services.ChecklistIDs(lib.ChecklistTasks()))
	r.ChecklistStreak = services.ChecklistStreak(t, checklistDay)
	r.JournalStreak = services.JournalStreak(t, journalDay)
	r.WeekStats = services.JournalWeekStats(t, journalDay)

	scores, err := storage.GetScores()
	if err != nil {
		return r, err
	}
	if scores != nil {
		result := services.EvaluateSelfScore(*scores)
		r.Score = &result
	}

	goals, err := storage.GetGoals()
	if err != nil {
		return r, err
	}
	r.Goals = services.ViewGoals(goals, t, t.Location())

	for _, level := range []models.PlanLevel{models.PlanBeginner, models.PlanIntermediate} {
		plan, ok := lib.Plan(level)
		if !ok {
			continue
		}
		done, err := storage.GetPlanProgress(level)
		if err != nil {
			return r, err
		}
		r.Plans[level] = services.ComputePlanProgress(plan, done).Overall
	}

	last, err := storage.LastReflectionWeek()
	if err != nil {
		return r, err
	}
	r.ReflectionDue = services.ReflectionDue(t, last)
	return r, nil
}

func bandColor(band string) lipgloss.Color {
	switch band {
	case services.BandSuccess:
		return colorSuccess
	case services.BandWarning:
		return colorWarning
	default:
		return colorDanger
	}
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func renderStatus(w io.Writer, s statusReport) error {
	var lines []string
	lines = append(lines, titleStyle.Render("教練成長系統 · "+s.Date), "")

	lines = append(lines,
		row("今日清單", fmt.Sprintf("%d/%d (%d%%)", s.Checklist.Completed, s.Checklist.Total, s.Checklist.Percentage)),
		row("清單連續", fmt.Sprintf("%d 天", s.ChecklistStreak)),
		row("日記連續", fmt.Sprintf("%d 天", s.JournalStreak)),
		row("本週", fmt.Sprintf("影片 %d · 關心 %d · 學習 %d", s.WeekStats.Videos, s.WeekStats.Followups, s.WeekStats.Learnings)),
	)

	if s.Score != nil {
		style := lipgloss.NewStyle().Foreground(statusColors[s.Score.StatusColor]).Bold(true)
		lines = append(lines, row("自我評分", style.Render(fmt.Sprintf("%d/100 %s", s.Score.TotalScore, s.Score.Status))))
	} else {
		lines = append(lines, row("自我評分", "尚未評分"))
	}

	for _, level := range []models.PlanLevel{models.PlanBeginner, models.PlanIntermediate} {
		if c, ok := s.Plans[level]; ok {
			lines = append(lines, row("30天 "+string(level), fmt.Sprintf("%d/%d (%d%%)", c.Completed, c.Total, c.Percentage)))
		}
	}

	if len(s.Goals) > 0 {
		lines = append(lines, "", titleStyle.Render("目標"))
		for _, g := range s.Goals {
			progress := lipgloss.NewStyle().Foreground(bandColor(g.Band)).Render(fmt.Sprintf("%3d%%", g.Progress))
			line := fmt.Sprintf("%s %s（剩 %d 天）", progress, g.Title, max(g.DaysLeft, 0))
			if g.Urgent {
				line += " ⚠️"
			}
			lines = append(lines, line)
		}
	}

	if s.ReflectionDue {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(colorWarning).Render("📝 今天是週五，記得寫每週反思！"))
	}

	_, err := fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
	return err
}
