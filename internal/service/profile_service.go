package service

import (
	"encoding/json"
	"fmt"

	"github.com/csprep/backend/internal/dto"
	"github.com/csprep/backend/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// ProfileService renders the user's profile (with rolling stats) and
// assessment history.
type ProfileService interface {
	GetProfile(userID uint) (*dto.ProfileDTO, error)
	GetHistory(userID uint) ([]dto.HistoryItemDTO, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	resultRepo  repository.ResultRepository
	userRepo    repository.UserRepository
}

func NewProfileService(
	profileRepo repository.ProfileRepository,
	resultRepo repository.ResultRepository,
	userRepo repository.UserRepository,
) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		resultRepo:  resultRepo,
		userRepo:    userRepo,
	}
}

func (s *profileService) GetProfile(userID uint) (*dto.ProfileDTO, error) {
	profile, err := s.profileRepo.GetOrCreate(nil, userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetProfile: failed to load profile")
		return nil, fmt.Errorf("error fetching profile: %w", err)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetProfile: failed to load user")
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	resp := dto.ProfileDTO{
		ID:          profile.ID,
		UserID:      user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		AvatarURL:   profile.AvatarURL,
		Bio:         profile.Bio,
		Location:    profile.Location,
		Title:       profile.Title,
		TestsTaken:  profile.TestsTaken,
		AvgAccuracy: profile.AvgAccuracy,
	}

	resp.SubjectsInterested = []string{}
	if len(profile.SubjectsInterested) > 0 {
		var subjects []string
		if err := json.Unmarshal(profile.SubjectsInterested, &subjects); err == nil {
			resp.SubjectsInterested = subjects
		}
	}
	return &resp, nil
}

func (s *profileService) GetHistory(userID uint) ([]dto.HistoryItemDTO, error) {
	results, err := s.resultRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetHistory: failed to load results")
		return nil, fmt.Errorf("error fetching history: %w", err)
	}

	items := make([]dto.HistoryItemDTO, 0, len(results))
	for _, result := range results {
		var item dto.HistoryItemDTO
		if err := copier.Copy(&item, &result); err != nil {
			log.Error().Err(err).Uint("resultID", result.ID).Msg("GetHistory: failed to copy result to DTO")
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
