package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/csprep/backend/internal/dto"
	"github.com/csprep/backend/internal/middleware"
	"github.com/csprep/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	defaultDifficulty    = "Medium"
	defaultQuestionCount = 25
)

type AssessmentController struct {
	assessmentService   service.AssessmentService
	questionBankService service.QuestionBankService
}

func NewAssessmentController(as service.AssessmentService, qbs service.QuestionBankService) *AssessmentController {
	return &AssessmentController{
		assessmentService:   as,
		questionBankService: qbs,
	}
}

// GetOverview godoc
// @Summary Question bank overview
// @Description Per-subject question counts, broken down by difficulty.
// @Tags Assessment
// @Produce json
// @Success 200 {array} dto.SubjectCountDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessment/overview [get]
func (c *AssessmentController) GetOverview(ctx *gin.Context) {
	overview, err := c.assessmentService.Overview()
	if err != nil {
		log.Error().Err(err).Msg("GetOverview: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve overview", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, overview)
}

// GetQuestions godoc
// @Summary Sample quiz questions
// @Description Up to 'count' randomly ordered questions for a subject. 'diff' is Low/Medium/Hard or "mix" for all difficulties; an unrecognized value behaves like "mix".
// @Tags Assessment
// @Produce json
// @Param subject query string true "Subject code, e.g. cn"
// @Param diff query string false "Difficulty filter" default(Medium)
// @Param count query int false "Maximum number of questions" default(25)
// @Success 200 {array} dto.QuestionDTO
// @Failure 400 {object} dto.ErrorResponse "Missing subject"
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessment/questions [get]
func (c *AssessmentController) GetQuestions(ctx *gin.Context) {
	subject := ctx.Query("subject")
	if subject == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Query parameter 'subject' is required"})
		return
	}
	difficulty := ctx.DefaultQuery("diff", defaultDifficulty)

	limit := defaultQuestionCount
	if countStr := ctx.Query("count"); countStr != "" {
		val, err := strconv.Atoi(countStr)
		if err != nil || val < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Query parameter 'count' must be a positive integer"})
			return
		}
		limit = val
	}

	questions, err := c.assessmentService.Questions(subject, difficulty, limit)
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("GetQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve questions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// SeedFromCSV godoc
// @Summary Ingest the question CSV into the bank
// @Description Idempotent by default: a populated bank is left untouched. With force=true the bank is cleared and reloaded atomically.
// @Tags Assessment
// @Produce json
// @Param force query bool false "Clear and reload the whole bank" default(false)
// @Success 201 {object} dto.SeedResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Source CSV not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessment/seed-csv [post]
func (c *AssessmentController) SeedFromCSV(ctx *gin.Context) {
	force := ctx.Query("force") == "true"

	message, count, err := c.questionBankService.Ingest(force)
	if err != nil {
		if errors.Is(err, service.ErrSourceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("SeedFromCSV: ingestion failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Ingestion failed", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, dto.SeedResponseDTO{Message: message, Count: count})
}

// SubmitAssessment godoc
// @Summary Submit a completed assessment
// @Description Persists the result and updates the caller's rolling stats in one transaction.
// @Tags Assessment
// @Accept json
// @Produce json
// @Param submission body dto.SubmitAssessmentRequest true "Subject, score, total and the raw answer map"
// @Success 200 {object} dto.SubmitResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed body or inconsistent score/total"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /assessment/submit [post]
func (c *AssessmentController) SubmitAssessment(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	var req dto.SubmitAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAssessment: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.assessmentService.Submit(userID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSubmission) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint("userID", userID).Msg("SubmitAssessment: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit assessment", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetResultDetail godoc
// @Summary Result detail view
// @Description The stored answers joined back against the current question rows. Only the owner can read a result.
// @Tags Assessment
// @Produce json
// @Param result_id path int true "Result ID"
// @Success 200 {object} dto.AssessmentResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid result id"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Result missing or not owned by the caller"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /assessment/result/{result_id} [get]
func (c *AssessmentController) GetResultDetail(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	resultID, err := strconv.ParseUint(ctx.Param("result_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid result ID format"})
		return
	}

	detail, err := c.assessmentService.ResultDetail(userID, uint(resultID))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Result not found"})
			return
		}
		log.Error().Err(err).Uint64("resultID", resultID).Msg("GetResultDetail: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve result", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}
