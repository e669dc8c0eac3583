package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CoachStatus string

const (
	StatusExcellent CoachStatus = "excellent"
	StatusGood      CoachStatus = "good"
	StatusWarning   CoachStatus = "warning"
	StatusDanger    CoachStatus = "danger"
)

func (s CoachStatus) Valid() bool {
	switch s {
	case StatusExcellent, StatusGood, StatusWarning, StatusDanger:
		return true
	}
	return false
}

type CoachScores struct {
	Renewal  int `json:"renewal"`
	Referral int `json:"referral"`
	Content  int `json:"content"`
	Soft     int `json:"soft"`
	Hard     int `json:"hard"`
}

// Coach is a roster row on the admin dashboard.
type Coach struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string         `json:"name" gorm:"not null"`
	Level            string         `json:"level"` // 新手, 中手, 資深
	Students         int            `json:"students"`
	Scores           CoachScores    `json:"scores" gorm:"embedded;embeddedPrefix:score_"`
	WeeklyCompletion int            `json:"weeklyCompletion"`
	LastActive       string         `json:"lastActive"`
	Status           CoachStatus    `json:"status" gorm:"index;not null;default:'good'"`
	TotalScore       int            `json:"totalScore" gorm:"-"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

func (c *Coach) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type CreateCoachRequest struct {
	Name             string      `json:"name"`
	Level            string      `json:"level"`
	Students         int         `json:"students"`
	Scores           CoachScores `json:"scores"`
	WeeklyCompletion int         `json:"weeklyCompletion"`
	LastActive       string      `json:"lastActive"`
	Status           CoachStatus `json:"status"`
}

type CoachStats struct {
	Total         int `json:"total"`
	Excellent     int `json:"excellent"`
	Good          int `json:"good"`
	Warning       int `json:"warning"`
	Danger        int `json:"danger"`
	AvgScore      int `json:"avgScore"`
	AvgCompletion int `json:"avgCompletion"`
}
