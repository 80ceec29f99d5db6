package model

import (
	"time"

	"gorm.io/gorm"
)

// User rows are owned by the external auth service; the core only reads
// identity fields when rendering profiles.
type User struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Email          string         `json:"email" gorm:"not null;uniqueIndex"`
	FullName       string         `json:"full_name"`
	HashedPassword string         `json:"-"`
	Provider       string         `json:"provider" gorm:"default:'local'"`
	IsActive       bool           `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
