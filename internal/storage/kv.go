// Package storage keeps the portal's local-storage namespace in the database.
// Every value is a string; most are JSON documents that are always written
// whole.
package storage

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/chenhoward456-hash/coach-system/internal/database"
	"github.com/chenhoward456-hash/coach-system/internal/logger"
	"github.com/chenhoward456-hash/coach-system/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Get returns the raw value under key. ok is false when the key is absent.
func Get(key string) (value string, ok bool, err error) {
	var entry models.StorageEntry
	err = database.DB.Where(&models.StorageEntry{Key: key}).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set overwrites the value under key.
func Set(key, value string) error {
	entry := models.StorageEntry{Key: key, Value: value}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return err
	}
	logActivity(key, models.ActionSet, len(value))
	return nil
}

// Remove deletes keys. Missing keys are ignored.
func Remove(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := database.DB.Where("key IN ?", keys).Delete(&models.StorageEntry{}).Error; err != nil {
		return err
	}
	for _, k := range keys {
		logActivity(k, models.ActionRemove, 0)
	}
	return nil
}

// List returns the entries whose key starts with prefix, ordered by key.
func List(prefix string) ([]models.StorageEntry, error) {
	var entries []models.StorageEntry
	q := database.DB.Order("key")
	if prefix != "" {
		q = q.Where("key LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%")
	}
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GetJSON decodes the value under key into v. A missing key and a value
// that is not valid JSON for v both report ok=false without an error.
func GetJSON(key string, v interface{}) (ok bool, err error) {
	raw, found, err := Get(key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		logger.Log.Named("storage").Warn("ignoring malformed value", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func SetJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return Set(key, string(data))
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// logActivity is best effort; a failed audit row never fails the write.
func logActivity(key, action string, size int) {
	activity := models.Activity{
		Key:        key,
		ActionType: action,
		Size:       size,
	}
	if err := database.DB.Create(&activity).Error; err != nil {
		logger.Log.Named("storage").Warn("activity log failed", "key", key, "error", err)
	}
}
