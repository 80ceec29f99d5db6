package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserProfile carries the rolling assessment stats for one user.
// TestsTaken and AvgAccuracy are mutated only by the stats service;
// AvgAccuracy is always recomputed from the full result history.
type UserProfile struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	UserID             uint           `json:"user_id" gorm:"not null;uniqueIndex"`
	User               User           `json:"-" gorm:"foreignKey:UserID"`
	AvatarURL          *string        `json:"avatar_url,omitempty"`
	Bio                string         `json:"bio,omitempty" gorm:"type:text"`
	Location           string         `json:"location,omitempty"`
	Title              string         `json:"title" gorm:"default:'GovTech Explorer'"`
	TestsTaken         int            `json:"tests_taken" gorm:"default:0"`
	AvgAccuracy        float64        `json:"avg_accuracy" gorm:"default:0"`
	SubjectsInterested datatypes.JSON `json:"subjects_interested" gorm:"default:'[]'"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}
