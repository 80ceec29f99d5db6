package service

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/csprep/backend/config"
	"github.com/csprep/backend/internal/model"
	"github.com/csprep/backend/internal/repository"
	"gorm.io/gorm"
)

func newBankService(db *gorm.DB, csvPath string) (QuestionBankService, repository.QuestionRepository) {
	questionRepo := repository.NewQuestionRepository(db)
	svc := NewQuestionBankService(
		db,
		questionRepo,
		NewSubjectNormalizer(DefaultSubjectTable()),
		NewDifficultyClassifier(),
		&config.Config{QuestionsCSV: csvPath},
	)
	return svc, questionRepo
}

func TestIngestSingleRow(t *testing.T) {
	db := setupTestDB(t)
	path := writeQuestionCSV(t, [][]string{
		{"", "Computer Network", "", "Q1?", "A", "B", "C", "D", "c", "exp", "Hard"},
	})
	svc, _ := newBankService(db, path)

	message, count, err := svc.Ingest(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if message != "Data seeded successfully" {
		t.Errorf("unexpected message %q", message)
	}
	if count != 1 {
		t.Fatalf("expected 1 ingested row, got %d", count)
	}

	var question model.Question
	if err := db.First(&question).Error; err != nil {
		t.Fatalf("failed to load ingested question: %v", err)
	}
	if question.Subject != "cn" {
		t.Errorf("expected subject cn, got %q", question.Subject)
	}
	if question.DifficultyLevel != model.DifficultyHard {
		t.Errorf("expected difficulty %d, got %d", model.DifficultyHard, question.DifficultyLevel)
	}
	if question.CorrectAnswer != "C" {
		t.Errorf("expected correct answer C, got %q", question.CorrectAnswer)
	}
	if question.Explanation != "exp" {
		t.Errorf("expected explanation exp, got %q", question.Explanation)
	}
}

func TestIngestSkipsBadRows(t *testing.T) {
	db := setupTestDB(t)
	path := writeQuestionCSV(t, [][]string{
		{"", "Quantum Foo", "", "Q?", "A", "B", "C", "D", "a", "", "Low"}, // unmapped subject
		{"", "too", "short"}, // fewer than 11 fields
		{"", "Data Structure", "", "Q2?", "A", "B", "C", "D", "b", "", "Medium"},
	})
	svc, questionRepo := newBankService(db, path)

	_, count, err := svc.Ingest(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 valid row, got %d", count)
	}

	total, err := questionRepo.Count()
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if total != 1 {
		t.Errorf("expected bank size 1, got %d", total)
	}

	var question model.Question
	if err := db.First(&question).Error; err != nil {
		t.Fatalf("failed to load question: %v", err)
	}
	if question.Subject != "ds" || question.CorrectAnswer != "B" {
		t.Errorf("unexpected surviving row: subject=%q correct=%q", question.Subject, question.CorrectAnswer)
	}
}

func TestIngestInvalidCorrectLetterDefaultsToOptionA(t *testing.T) {
	db := setupTestDB(t)
	path := writeQuestionCSV(t, [][]string{
		{"", "Operating System", "", "Q?", "optA", "optB", "optC", "optD", "x", "", "Low"},
		{"", "Operating System", "", "Q?", "optA", "optB", "optC", "optD", "", "", "Low"},
	})
	svc, _ := newBankService(db, path)

	if _, _, err := svc.Ingest(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var questions []model.Question
	if err := db.Find(&questions).Error; err != nil {
		t.Fatalf("failed to load questions: %v", err)
	}
	for _, q := range questions {
		if q.CorrectAnswer != "optA" {
			t.Errorf("expected fallback to option A, got %q", q.CorrectAnswer)
		}
	}
}

func TestIngestCorrectAnswerAlwaysAnOption(t *testing.T) {
	db := setupTestDB(t)
	path := writeQuestionCSV(t, [][]string{
		{"", "Computer Network", "", "Q1?", "w", "x", "y", "z", "a", "", "Low"},
		{"", "Computer Network", "", "Q2?", "w", "x", "y", "z", "B", "", "Medium"},
		{"", "Computer Network", "", "Q3?", "w", "x", "y", "z", " d ", "", "Hard"},
		{"", "Computer Network", "", "Q4?", "w", "x", "y", "z", "zz", "", "Hard"},
	})
	svc, _ := newBankService(db, path)

	if _, _, err := svc.Ingest(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var questions []model.Question
	if err := db.Find(&questions).Error; err != nil {
		t.Fatalf("failed to load questions: %v", err)
	}
	if len(questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(questions))
	}
	for _, q := range questions {
		found := false
		for _, opt := range q.Options() {
			if q.CorrectAnswer == opt {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("question %q: correct answer %q not among options %v", q.Question, q.CorrectAnswer, q.Options())
		}
	}
}

func TestIngestIdempotentWhenPopulated(t *testing.T) {
	db := setupTestDB(t)
	path := writeQuestionCSV(t, [][]string{
		{"", "Computer Network", "", "Q1?", "A", "B", "C", "D", "a", "", "Low"},
		{"", "Data Structure", "", "Q2?", "A", "B", "C", "D", "b", "", "Medium"},
	})
	svc, questionRepo := newBankService(db, path)

	if _, _, err := svc.Ingest(false); err != nil {
		t.Fatalf("first ingest failed: %v", err)
	}

	message, count, err := svc.Ingest(false)
	if err != nil {
		t.Fatalf("second ingest failed: %v", err)
	}
	if message != "Data already exists" {
		t.Errorf("unexpected message %q", message)
	}
	if count != 2 {
		t.Errorf("expected existing count 2, got %d", count)
	}

	total, _ := questionRepo.Count()
	if total != 2 {
		t.Errorf("expected bank unchanged at 2 rows, got %d", total)
	}
}

func TestIngestForceReload(t *testing.T) {
	db := setupTestDB(t)
	path := writeQuestionCSV(t, [][]string{
		{"", "Computer Network", "", "Old1?", "A", "B", "C", "D", "a", "", "Low"},
		{"", "Computer Network", "", "Old2?", "A", "B", "C", "D", "a", "", "Low"},
		{"", "Computer Network", "", "Old3?", "A", "B", "C", "D", "a", "", "Low"},
	})
	svc, questionRepo := newBankService(db, path)
	if _, _, err := svc.Ingest(false); err != nil {
		t.Fatalf("initial ingest failed: %v", err)
	}

	newPath := writeQuestionCSV(t, [][]string{
		{"", "Software Engineering", "", "New1?", "A", "B", "C", "D", "d", "", "Hard"},
	})
	svc, _ = newBankService(db, newPath)

	_, count, err := svc.Ingest(true)
	if err != nil {
		t.Fatalf("force ingest failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row after reload, got %d", count)
	}

	total, _ := questionRepo.Count()
	if total != 1 {
		t.Errorf("expected bank size 1 after force reload, got %d", total)
	}

	var question model.Question
	if err := db.First(&question).Error; err != nil {
		t.Fatalf("failed to load question: %v", err)
	}
	if question.Subject != "se" || question.Question != "New1?" {
		t.Errorf("old bank contents survived force reload: %+v", question)
	}
}

func TestIngestMissingSource(t *testing.T) {
	db := setupTestDB(t)
	svc, questionRepo := newBankService(db, filepath.Join(t.TempDir(), "missing.csv"))

	_, _, err := svc.Ingest(false)
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}

	total, _ := questionRepo.Count()
	if total != 0 {
		t.Errorf("expected no writes on missing source, got %d rows", total)
	}
}
