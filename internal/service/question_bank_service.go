package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/csprep/backend/config"
	"github.com/csprep/backend/internal/model"
	"github.com/csprep/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Raw CSV column layout. Rows with fewer than minRecordFields columns are
// skipped silently.
const (
	colSubject       = 1
	colQuestion      = 3
	colOptionA       = 4
	colOptionB       = 5
	colOptionC       = 6
	colOptionD       = 7
	colCorrectLetter = 8
	colExplanation   = 9
	colDifficulty    = 10
	minRecordFields  = 11
)

// QuestionBankService ingests the raw question CSV into the bank.
type QuestionBankService interface {
	// Ingest parses the configured CSV source and populates the question
	// bank. Without force it is idempotent: a non-empty bank short-circuits
	// with zero writes. With force the whole bank is cleared and reloaded
	// inside one transaction.
	Ingest(force bool) (message string, count int, err error)
}

type questionBankService struct {
	db           *gorm.DB
	questionRepo repository.QuestionRepository
	normalizer   SubjectNormalizer
	classifier   DifficultyClassifier
	cfg          *config.Config
}

func NewQuestionBankService(
	db *gorm.DB,
	questionRepo repository.QuestionRepository,
	normalizer SubjectNormalizer,
	classifier DifficultyClassifier,
	cfg *config.Config,
) QuestionBankService {
	return &questionBankService{
		db:           db,
		questionRepo: questionRepo,
		normalizer:   normalizer,
		classifier:   classifier,
		cfg:          cfg,
	}
}

func (s *questionBankService) Ingest(force bool) (string, int, error) {
	existing, err := s.questionRepo.Count()
	if err != nil {
		return "", 0, fmt.Errorf("failed to count question bank: %w", err)
	}
	if existing > 0 && !force {
		log.Info().Int64("count", existing).Msg("Question bank already populated, skipping ingestion")
		return "Data already exists", int(existing), nil
	}

	questions, err := s.parseSource(s.cfg.QuestionsCSV)
	if err != nil {
		return "", 0, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if force {
			if err := s.questionRepo.DeleteAll(tx); err != nil {
				return fmt.Errorf("failed to clear question bank: %w", err)
			}
		}
		if len(questions) == 0 {
			return nil
		}
		if err := s.questionRepo.CreateInBatches(tx, questions); err != nil {
			return fmt.Errorf("failed to write question bank: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("Question bank ingestion transaction rolled back")
		return "", 0, err
	}

	log.Info().Int("count", len(questions)).Bool("force", force).Msg("Question bank seeded")
	return "Data seeded successfully", len(questions), nil
}

func (s *questionBankService) parseSource(path string) ([]model.Question, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Error().Str("path", path).Msg("Question CSV not found")
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to open question source %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // row width is validated per record

	var questions []model.Question
	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed line: recover locally, keep ingesting.
			skipped++
			continue
		}

		question, ok := s.parseRecord(record)
		if !ok {
			skipped++
			continue
		}
		questions = append(questions, question)
	}

	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Int("parsed", len(questions)).Msg("Some rows were dropped during ingestion")
	}
	return questions, nil
}

func (s *questionBankService) parseRecord(record []string) (model.Question, bool) {
	if len(record) < minRecordFields {
		return model.Question{}, false
	}

	subject, ok := s.normalizer.Normalize(record[colSubject])
	if !ok {
		return model.Question{}, false
	}

	options := []string{
		record[colOptionA],
		record[colOptionB],
		record[colOptionC],
		record[colOptionD],
	}

	// Map the answer letter to an option index; an invalid or missing
	// letter falls back to option A. Picking by index guarantees the stored
	// correct answer is always one of the four option texts.
	correctIdx := 0
	letter := strings.ToLower(strings.TrimSpace(record[colCorrectLetter]))
	if len(letter) == 1 && letter[0] >= 'a' && letter[0] <= 'd' {
		correctIdx = int(letter[0] - 'a')
	}

	return model.Question{
		Subject:         subject,
		DifficultyLevel: s.classifier.Classify(record[colDifficulty]),
		Question:        record[colQuestion],
		OptionA:         options[0],
		OptionB:         options[1],
		OptionC:         options[2],
		OptionD:         options[3],
		CorrectAnswer:   options[correctIdx],
		Explanation:     record[colExplanation],
	}, true
}
