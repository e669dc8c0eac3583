package database

import (
	"strings"

	"github.com/chenhoward456-hash/coach-system/internal/config"
	"github.com/chenhoward456-hash/coach-system/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector

	// Use PostgreSQL if URL starts with postgres, otherwise SQLite
	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel(cfg.LogMode)),
	})
	if err != nil {
		return err
	}

	DB = db
	return nil
}

func logLevel(mode string) logger.LogLevel {
	switch strings.ToLower(mode) {
	case "test":
		return logger.Silent
	case "prod", "production":
		return logger.Warn
	default:
		return logger.Info
	}
}

func Migrate() error {
	if err := DB.AutoMigrate(
		&models.StorageEntry{},
		&models.Activity{},
		&models.Notification{},
		&models.Coach{},
	); err != nil {
		return err
	}
	return seedCoaches()
}

// seedCoaches fills an empty roster with the sample coaches.
func seedCoaches() error {
	var count int64
	if err := DB.Model(&models.Coach{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return DB.Create(SampleCoaches()).Error
}

func SampleCoaches() []models.Coach {
	return []models.Coach{
		{Name: "教練 A", Level: "新手", Students: 8, Scores: models.CoachScores{Renewal: 85, Referral: 75, Content: 60, Soft: 80, Hard: 70}, WeeklyCompletion: 85, LastActive: "2026-01-28", Status: models.StatusExcellent},
		{Name: "教練 B", Level: "中手", Students: 15, Scores: models.CoachScores{Renewal: 90, Referral: 85, Content: 80, Soft: 85, Hard: 90}, WeeklyCompletion: 95, LastActive: "2026-01-28", Status: models.StatusExcellent},
		{Name: "教練 C", Level: "新手", Students: 5, Scores: models.CoachScores{Renewal: 65, Referral: 55, Content: 45, Soft: 60, Hard: 50}, WeeklyCompletion: 55, LastActive: "2026-01-27", Status: models.StatusWarning},
		{Name: "教練 D", Level: "資深", Students: 20, Scores: models.CoachScores{Renewal: 95, Referral: 90, Content: 85, Soft: 90, Hard: 95}, WeeklyCompletion: 100, LastActive: "2026-01-28", Status: models.StatusExcellent},
		{Name: "教練 E", Level: "新手", Students: 3, Scores: models.CoachScores{Renewal: 50, Referral: 40, Content: 30, Soft: 45, Hard: 35}, WeeklyCompletion: 40, LastActive: "2026-01-25", Status: models.StatusDanger},
	}
}
