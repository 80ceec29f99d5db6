package repository

import (
	"errors"

	"github.com/csprep/backend/internal/model"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	// GetOrCreate lazily creates the profile row on first access.
	GetOrCreate(tx *gorm.DB, userID uint) (*model.UserProfile, error)
	UpdateStats(tx *gorm.DB, profile *model.UserProfile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetOrCreate(tx *gorm.DB, userID uint) (*model.UserProfile, error) {
	if tx == nil {
		tx = r.db
	}
	var profile model.UserProfile
	err := tx.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = model.UserProfile{UserID: userID}
		if err := tx.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) UpdateStats(tx *gorm.DB, profile *model.UserProfile) error {
	return tx.Model(profile).Updates(map[string]interface{}{
		"tests_taken":  profile.TestsTaken,
		"avg_accuracy": profile.AvgAccuracy,
	}).Error
}
