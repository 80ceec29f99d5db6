package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Result is one completed assessment attempt. Answers maps question IDs
// (stringified, JSON keys are always strings) to the option text the user
// selected. Rows are immutable once written.
type Result struct {
	ID             uint              `gorm:"primarykey" json:"id"`
	UserID         uint              `json:"user_id" gorm:"not null;index"`
	User           User              `json:"-" gorm:"foreignKey:UserID"`
	Subject        string            `json:"subject" gorm:"size:50;not null"`
	Score          int               `json:"score" gorm:"not null"`
	TotalQuestions int               `json:"total_questions" gorm:"not null"`
	Accuracy       float64           `json:"accuracy" gorm:"not null"`
	Answers        datatypes.JSONMap `json:"answers" gorm:"type:jsonb"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	DeletedAt      gorm.DeletedAt    `gorm:"index" json:"-"`
}
