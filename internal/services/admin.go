package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/chenhoward456-hash/coach-system/internal/models"
)

// Roster sort orders.
const (
	SortByName       = "name"
	SortByScore      = "score"
	SortByCompletion = "completion"
)

// NewCoach validates a roster entry. Scores and completion are percentages.
func NewCoach(req models.CreateCoachRequest) (models.Coach, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Coach{}, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	status := req.Status
	if status == "" {
		status = models.StatusGood
	}
	if !status.Valid() {
		return models.Coach{}, fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, status)
	}
	s := req.Scores
	for _, v := range []int{s.Renewal, s.Referral, s.Content, s.Soft, s.Hard, req.WeeklyCompletion} {
		if v < 0 || v > 100 {
			return models.Coach{}, fmt.Errorf("%w: scores must be between 0 and 100", ErrInvalidArgument)
		}
	}
	if req.Students < 0 {
		return models.Coach{}, fmt.Errorf("%w: students must not be negative", ErrInvalidArgument)
	}
	return models.Coach{
		Name:             name,
		Level:            strings.TrimSpace(req.Level),
		Students:         req.Students,
		Scores:           s,
		WeeklyCompletion: req.WeeklyCompletion,
		LastActive:       req.LastActive,
		Status:           status,
	}, nil
}

// ScoreCoaches fills in each coach's weighted total.
func ScoreCoaches(coaches []models.Coach) {
	for i := range coaches {
		coaches[i].TotalScore = WeightedCoachScore(coaches[i].Scores)
	}
}

// SortCoaches orders the roster in place. Score and completion sort highest
// first; anything else falls back to score.
func SortCoaches(coaches []models.Coach, by string) {
	sort.SliceStable(coaches, func(i, j int) bool {
		a, b := coaches[i], coaches[j]
		switch by {
		case SortByName:
			return a.Name < b.Name
		case SortByCompletion:
			return a.WeeklyCompletion > b.WeeklyCompletion
		default:
			return WeightedCoachScore(a.Scores) > WeightedCoachScore(b.Scores)
		}
	})
}

// ComputeCoachStats aggregates the whole roster. Averages are 0 for an
// empty roster.
func ComputeCoachStats(coaches []models.Coach) models.CoachStats {
	stats := models.CoachStats{Total: len(coaches)}
	if len(coaches) == 0 {
		return stats
	}
	scoreSum, completionSum := 0, 0
	for _, c := range coaches {
		switch c.Status {
		case models.StatusExcellent:
			stats.Excellent++
		case models.StatusGood:
			stats.Good++
		case models.StatusWarning:
			stats.Warning++
		case models.StatusDanger:
			stats.Danger++
		}
		scoreSum += WeightedCoachScore(c.Scores)
		completionSum += c.WeeklyCompletion
	}
	n := float64(len(coaches))
	stats.AvgScore = int(math.Round(float64(scoreSum) / n))
	stats.AvgCompletion = int(math.Round(float64(completionSum) / n))
	return stats
}

// Rating labels an average on the dashboard cards.
func Rating(avg int) string {
	switch {
	case avg >= 80:
		return "🏆 優秀"
	case avg >= 70:
		return "👍 良好"
	default:
		return "⚠️ 需改善"
	}
}
