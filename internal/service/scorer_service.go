package service

import (
	"fmt"
	"strconv"

	"github.com/csprep/backend/internal/model"
)

// ScorerService computes accuracy from a score/total pair and can
// independently recount a score from a stored answer map.
type ScorerService interface {
	// Accuracy is (score/total)*100, 0 when total is 0. No rounding here;
	// the stats service rounds when aggregating.
	Accuracy(score, total int) float64
	// ValidateSubmission rejects inconsistent score/total pairs with
	// ErrInvalidSubmission.
	ValidateSubmission(score, total int) error
	// Recount recomputes a score by comparing each selected option text to
	// the stored correct answer. Used by the result-detail view, not at
	// submission time.
	Recount(answers map[string]string, questions []model.Question) int
}

type scorerService struct{}

func NewScorerService() ScorerService {
	return &scorerService{}
}

func (s *scorerService) Accuracy(score, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(score) / float64(total) * 100
}

func (s *scorerService) ValidateSubmission(score, total int) error {
	if score < 0 || total < 0 {
		return fmt.Errorf("%w: score and total must be non-negative", ErrInvalidSubmission)
	}
	if score > total {
		return fmt.Errorf("%w: score %d exceeds total %d", ErrInvalidSubmission, score, total)
	}
	return nil
}

func (s *scorerService) Recount(answers map[string]string, questions []model.Question) int {
	score := 0
	for _, q := range questions {
		selected, ok := answers[strconv.FormatUint(uint64(q.ID), 10)]
		if ok && selected == q.CorrectAnswer {
			score++
		}
	}
	return score
}
