package service

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/csprep/backend/internal/dto"
	"github.com/csprep/backend/internal/model"
	"github.com/csprep/backend/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const noExplanation = "No explanation provided."

// AssessmentService is the quiz-time entry point: overview counts,
// randomized question sampling, submission scoring and the result-detail
// view.
type AssessmentService interface {
	Overview() ([]dto.SubjectCountDTO, error)
	Questions(subject, difficulty string, limit int) ([]dto.QuestionDTO, error)
	Submit(userID uint, req dto.SubmitAssessmentRequest) (*dto.SubmitResponseDTO, error)
	ResultDetail(userID uint, resultID uint) (*dto.AssessmentResultDTO, error)
}

type assessmentService struct {
	questionRepo repository.QuestionRepository
	resultRepo   repository.ResultRepository
	classifier   DifficultyClassifier
	scorer       ScorerService
	stats        StatsService
	db           *gorm.DB // submission transaction scope
}

func NewAssessmentService(
	questionRepo repository.QuestionRepository,
	resultRepo repository.ResultRepository,
	classifier DifficultyClassifier,
	scorer ScorerService,
	stats StatsService,
	db *gorm.DB,
) AssessmentService {
	return &assessmentService{
		questionRepo: questionRepo,
		resultRepo:   resultRepo,
		classifier:   classifier,
		scorer:       scorer,
		stats:        stats,
		db:           db,
	}
}

func (s *assessmentService) Overview() ([]dto.SubjectCountDTO, error) {
	rows, err := s.questionRepo.CountsBySubjectAndDifficulty()
	if err != nil {
		log.Error().Err(err).Msg("Overview: failed to aggregate question counts")
		return nil, fmt.Errorf("error fetching overview: %w", err)
	}

	bySubject := make(map[string]*dto.SubjectCountDTO)
	for _, row := range rows {
		entry, ok := bySubject[row.Subject]
		if !ok {
			entry = &dto.SubjectCountDTO{
				Subject:          row.Subject,
				DifficultyCounts: map[string]int{"Low": 0, "Medium": 0, "Hard": 0},
			}
			bySubject[row.Subject] = entry
		}
		entry.DifficultyCounts[s.classifier.Label(row.DifficultyLevel)] += row.Count
		entry.Count += row.Count
	}

	overview := make([]dto.SubjectCountDTO, 0, len(bySubject))
	for _, entry := range bySubject {
		overview = append(overview, *entry)
	}
	sort.Slice(overview, func(i, j int) bool { return overview[i].Subject < overview[j].Subject })
	return overview, nil
}

func (s *assessmentService) Questions(subject, difficulty string, limit int) ([]dto.QuestionDTO, error) {
	var level *int
	if !strings.EqualFold(difficulty, "mix") {
		if lvl, ok := s.classifier.Level(difficulty); ok {
			level = &lvl
		}
		// An unrecognized, non-"mix" filter is silently ignored: the caller
		// still gets questions for the subject across all difficulties.
	}

	questions, err := s.questionRepo.Sample(subject, level, limit)
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("Questions: sampling failed")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	dtos := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		var item dto.QuestionDTO
		if err := copier.Copy(&item, &q); err != nil {
			log.Error().Err(err).Uint("questionID", q.ID).Msg("Questions: failed to copy question to DTO")
			continue
		}
		item.Options = q.Options()
		dtos = append(dtos, item)
	}
	return dtos, nil
}

func (s *assessmentService) Submit(userID uint, req dto.SubmitAssessmentRequest) (*dto.SubmitResponseDTO, error) {
	if err := s.scorer.ValidateSubmission(req.Score, req.TotalQuestions); err != nil {
		return nil, err
	}

	accuracy := s.scorer.Accuracy(req.Score, req.TotalQuestions)

	answers := datatypes.JSONMap{}
	for qid, selected := range req.Answers {
		answers[qid] = selected
	}

	result := model.Result{
		UserID:         userID,
		Subject:        req.Subject,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		Accuracy:       accuracy,
		Answers:        answers,
	}

	// Insert and stats recompute share one transaction so two concurrent
	// submissions by the same user cannot lose a tests_taken increment.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.resultRepo.Create(tx, &result); err != nil {
			return fmt.Errorf("failed to persist result: %w", err)
		}
		if _, err := s.stats.OnSubmission(tx, userID, accuracy); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Submit: transaction rolled back")
		return nil, err
	}

	log.Info().Uint("userID", userID).Uint("resultID", result.ID).Float64("accuracy", accuracy).Msg("Assessment submitted")
	return &dto.SubmitResponseDTO{Message: "Submitted successfully", ResultID: result.ID}, nil
}

func (s *assessmentService) ResultDetail(userID uint, resultID uint) (*dto.AssessmentResultDTO, error) {
	result, err := s.resultRepo.FindByIDAndUser(resultID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: result %d", ErrNotFound, resultID)
		}
		log.Error().Err(err).Uint("resultID", resultID).Msg("ResultDetail: lookup failed")
		return nil, fmt.Errorf("error fetching result %d: %w", resultID, err)
	}

	resp := dto.AssessmentResultDTO{
		ID:             result.ID,
		Subject:        result.Subject,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Accuracy:       result.Accuracy,
		CreatedAt:      result.CreatedAt,
		Questions:      []dto.QuestionDetailDTO{},
	}

	selectedByID := make(map[uint]string, len(result.Answers))
	ids := make([]uint, 0, len(result.Answers))
	for key, value := range result.Answers {
		qid, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			log.Warn().Str("key", key).Uint("resultID", result.ID).Msg("ResultDetail: non-numeric answer key, skipping")
			continue
		}
		selected, _ := value.(string)
		selectedByID[uint(qid)] = selected
		ids = append(ids, uint(qid))
	}

	questions, err := s.questionRepo.FindByIDs(ids)
	if err != nil {
		log.Error().Err(err).Uint("resultID", result.ID).Msg("ResultDetail: failed to load questions for answers")
		return nil, fmt.Errorf("error loading result questions: %w", err)
	}

	// Questions that have since left the bank (forced reload) are simply
	// absent from the detail view.
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	for _, q := range questions {
		explanation := q.Explanation
		if explanation == "" {
			explanation = noExplanation
		}
		resp.Questions = append(resp.Questions, dto.QuestionDetailDTO{
			ID:             q.ID,
			Question:       q.Question,
			Options:        q.Options(),
			SelectedAnswer: selectedByID[q.ID],
			CorrectAnswer:  q.CorrectAnswer,
			Explanation:    explanation,
		})
	}

	return &resp, nil
}
