package controller

import (
	"net/http"

	"github.com/csprep/backend/internal/dto"
	"github.com/csprep/backend/internal/middleware"
	"github.com/csprep/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ProfileController struct {
	profileService service.ProfileService
}

func NewProfileController(ps service.ProfileService) *ProfileController {
	return &ProfileController{profileService: ps}
}

// GetMyProfile godoc
// @Summary Current user's profile with rolling stats
// @Tags Profile
// @Produce json
// @Success 200 {object} dto.ProfileDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /profile/me [get]
func (c *ProfileController) GetMyProfile(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	profile, err := c.profileService.GetProfile(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetMyProfile: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve profile", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// GetHistory godoc
// @Summary Current user's assessment history, newest first
// @Tags Profile
// @Produce json
// @Success 200 {array} dto.HistoryItemDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /profile/history [get]
func (c *ProfileController) GetHistory(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	history, err := c.profileService.GetHistory(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetHistory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve history", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, history)
}
