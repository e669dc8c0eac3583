package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/chenhoward456-hash/coach-system/internal/database"
	"github.com/chenhoward456-hash/coach-system/internal/logger"
	"github.com/chenhoward456-hash/coach-system/internal/models"
	"github.com/chenhoward456-hash/coach-system/internal/storage"
)

const (
	reminderTitle = "每週反思時間到了"
	reminderBody  = "花 5 分鐘寫下這週的成就、挑戰和下週想改善的事。"
)

// Reminder checks on a fixed interval whether the weekly reflection
// reminder is due and sends it at most once per week.
type Reminder struct {
	Interval time.Duration
	Location *time.Location
	Notifier Notifier
	Now      func() time.Time
}

func NewReminder(interval time.Duration, loc *time.Location, n Notifier) *Reminder {
	return &Reminder{Interval: interval, Location: loc, Notifier: n, Now: time.Now}
}

// Run checks once immediately and then on every tick until ctx is done.
func (r *Reminder) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	log := logger.Log.Named("reminder")
	log.Info("scheduler started", "interval", r.Interval.String())
	for {
		if _, err := r.Check(ctx); err != nil {
			log.Error("check failed", "error", err)
		}
		select {
		case <-ctx.Done():
			log.Info("scheduler stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// Check sends the reminder when it is due and none exists for this week.
// It reports whether a reminder was created.
func (r *Reminder) Check(ctx context.Context) (bool, error) {
	now := r.Now().In(r.Location)

	lastWeek, err := storage.LastReflectionWeek()
	if err != nil {
		return false, err
	}
	if !ReflectionDue(now, lastWeek) {
		return false, nil
	}

	week := WeekString(now)
	var count int64
	if err := database.DB.WithContext(ctx).Model(&models.Notification{}).
		Where("type = ? AND week = ?", models.NotificationReflectionReminder, week).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	n := models.Notification{
		ID:    uuid.New(),
		Type:  models.NotificationReflectionReminder,
		Title: reminderTitle,
		Body:  reminderBody,
		Week:  week,
	}
	// the in-app row and the push carry the same deep link
	data := map[string]string{
		"type":           n.Type,
		"week":           week,
		"section":        string(models.SectionReflection),
		"notificationId": n.ID.String(),
	}
	meta, err := json.Marshal(data)
	if err != nil {
		return false, err
	}
	n.Metadata = string(meta)
	if err := database.DB.WithContext(ctx).Create(&n).Error; err != nil {
		return false, err
	}
	logger.Log.Named("reminder").Info("reflection reminder created", "week", week)

	if r.Notifier != nil {
		r.Notifier.Notify(ctx, n.Title, n.Body, data)
	}
	return true, nil
}
