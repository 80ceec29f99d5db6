package service

import (
	"fmt"
	"math"

	"github.com/csprep/backend/internal/model"
	"github.com/csprep/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StatsService maintains the per-user rolling counters on the profile row.
type StatsService interface {
	// OnSubmission runs inside the submission transaction, after the new
	// result row is inserted. It bumps tests_taken by one and recomputes
	// avg_accuracy as the mean over the user's full result history, rounded
	// to 2 decimals. Recomputing from history instead of updating the
	// running average incrementally avoids accumulating rounding drift.
	OnSubmission(tx *gorm.DB, userID uint, accuracy float64) (*model.UserProfile, error)
}

type statsService struct {
	profileRepo repository.ProfileRepository
	resultRepo  repository.ResultRepository
}

func NewStatsService(profileRepo repository.ProfileRepository, resultRepo repository.ResultRepository) StatsService {
	return &statsService{profileRepo: profileRepo, resultRepo: resultRepo}
}

func (s *statsService) OnSubmission(tx *gorm.DB, userID uint, accuracy float64) (*model.UserProfile, error) {
	profile, err := s.profileRepo.GetOrCreate(tx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile for user %d: %w", userID, err)
	}

	avg, err := s.resultRepo.AverageAccuracy(tx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate accuracy for user %d: %w", userID, err)
	}

	profile.TestsTaken++
	if avg != nil {
		profile.AvgAccuracy = round2(*avg)
	} else {
		// The aggregate runs after the insert, so this should not happen;
		// fall back to the accuracy we were just handed.
		log.Warn().Uint("userID", userID).Msg("Accuracy aggregate returned no rows after insert")
		profile.AvgAccuracy = round2(accuracy)
	}

	if err := s.profileRepo.UpdateStats(tx, profile); err != nil {
		return nil, fmt.Errorf("failed to update stats for user %d: %w", userID, err)
	}
	return profile, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
