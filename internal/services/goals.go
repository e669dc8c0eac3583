package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chenhoward456-hash/coach-system/internal/models"
)

// DeadlineLayout is the goal deadline date format.
const DeadlineLayout = "2006-01-02"

// Progress bands.
const (
	BandSuccess = "success"
	BandWarning = "warning"
	BandDanger  = "danger"
)

// UrgentDays is how close a deadline must be for a lagging goal to be urgent.
const UrgentDays = 7

// NewGoal validates req and builds a goal with a fresh id.
func NewGoal(req models.CreateGoalRequest) (models.Goal, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.Goal{}, fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}
	if req.Target <= 0 {
		return models.Goal{}, fmt.Errorf("%w: target must be greater than 0", ErrInvalidArgument)
	}
	if req.Deadline == "" {
		return models.Goal{}, fmt.Errorf("%w: deadline is required", ErrInvalidArgument)
	}
	if _, err := time.Parse(DeadlineLayout, req.Deadline); err != nil {
		return models.Goal{}, fmt.Errorf("%w: deadline must be YYYY-MM-DD", ErrInvalidArgument)
	}
	category := req.Category
	if category == "" {
		category = models.CategoryContent
	}
	if !category.Valid() {
		return models.Goal{}, fmt.Errorf("%w: unknown category %q", ErrInvalidArgument, category)
	}
	return models.Goal{
		ID:       uuid.NewString(),
		Title:    title,
		Target:   req.Target,
		Current:  req.Current,
		Unit:     strings.TrimSpace(req.Unit),
		Deadline: req.Deadline,
		Category: category,
	}, nil
}

// GoalProgress is current/target as a percentage, clamped to 0..100.
func GoalProgress(g models.Goal) int {
	if g.Target <= 0 {
		return 0
	}
	p := int(math.Round(g.Current / g.Target * 100))
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// DaysLeft counts days from now until midnight of the deadline in loc,
// rounding partial days up. It goes negative once the deadline has passed.
// An unparseable deadline counts as already due.
func DaysLeft(deadline string, now time.Time, loc *time.Location) int {
	d, err := time.ParseInLocation(DeadlineLayout, deadline, loc)
	if err != nil {
		return 0
	}
	return int(math.Ceil(d.Sub(now).Hours() / 24))
}

// DailyPace is how much must be done per day to reach the target in time.
func DailyPace(g models.Goal, daysLeft int) int {
	remaining := g.Target - g.Current
	if remaining <= 0 || daysLeft <= 0 {
		return 0
	}
	return int(math.Ceil(remaining / float64(daysLeft)))
}

func ProgressBand(progress int) string {
	switch {
	case progress >= 80:
		return BandSuccess
	case progress >= 50:
		return BandWarning
	default:
		return BandDanger
	}
}

// ViewGoal derives the displayed numbers for one goal.
func ViewGoal(g models.Goal, now time.Time, loc *time.Location) models.GoalView {
	progress := GoalProgress(g)
	days := DaysLeft(g.Deadline, now, loc)
	return models.GoalView{
		Goal:      g,
		Progress:  progress,
		DaysLeft:  days,
		DailyPace: DailyPace(g, days),
		Band:      ProgressBand(progress),
		Urgent:    days <= UrgentDays && progress < 80,
	}
}

func ViewGoals(goals []models.Goal, now time.Time, loc *time.Location) []models.GoalView {
	out := make([]models.GoalView, len(goals))
	for i, g := range goals {
		out[i] = ViewGoal(g, now, loc)
	}
	return out
}

// ActiveGoals counts goals that are not yet complete.
func ActiveGoals(goals []models.Goal) int {
	n := 0
	for _, g := range goals {
		if GoalProgress(g) < 100 {
			n++
		}
	}
	return n
}

// UpdateGoalProgress sets the current value of the goal with id.
func UpdateGoalProgress(goals []models.Goal, id string, current float64) ([]models.Goal, models.Goal, error) {
	for i := range goals {
		if goals[i].ID == id {
			if current < 0 {
				current = 0
			}
			goals[i].Current = current
			return goals, goals[i], nil
		}
	}
	return goals, models.Goal{}, fmt.Errorf("%w: goal %q", ErrNotFound, id)
}

// DeleteGoal removes the goal with id.
func DeleteGoal(goals []models.Goal, id string) ([]models.Goal, error) {
	for i := range goals {
		if goals[i].ID == id {
			return append(goals[:i:i], goals[i+1:]...), nil
		}
	}
	return goals, fmt.Errorf("%w: goal %q", ErrNotFound, id)
}
