package model

import (
	"time"

	"gorm.io/gorm"
)

// Difficulty levels stored on a question. Label mapping lives in the
// difficulty classifier service.
const (
	DifficultyLow    = 1
	DifficultyMedium = 2
	DifficultyHard   = 3
)

type Question struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Subject         string         `json:"subject" gorm:"size:50;not null;index"` // short code, e.g. "cn"
	DifficultyLevel int            `json:"difficulty_level" gorm:"not null"`
	Question        string         `json:"question" gorm:"type:text;not null"`
	OptionA         string         `json:"option_a" gorm:"type:text;not null"`
	OptionB         string         `json:"option_b" gorm:"type:text;not null"`
	OptionC         string         `json:"option_c" gorm:"type:text;not null"`
	OptionD         string         `json:"option_d" gorm:"type:text;not null"`
	CorrectAnswer   string         `json:"correct_answer" gorm:"size:255;not null"` // literal text of the correct option
	Explanation     string         `json:"explanation,omitempty" gorm:"type:text"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// Options returns the four option texts in A..D order.
func (q *Question) Options() []string {
	return []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}
