package repository

import (
	"github.com/csprep/backend/internal/model"
	"gorm.io/gorm"
)

// SubjectDifficultyCount is one GROUP BY row of the overview query.
type SubjectDifficultyCount struct {
	Subject         string
	DifficultyLevel int
	Count           int
}

type QuestionRepository interface {
	Count() (int64, error)
	// CreateInBatches and DeleteAll take the running transaction so that a
	// forced reload is atomic.
	CreateInBatches(tx *gorm.DB, questions []model.Question) error
	DeleteAll(tx *gorm.DB) error
	CountsBySubjectAndDifficulty() ([]SubjectDifficultyCount, error)
	// Sample returns up to limit questions for a subject in uniform random
	// order. A nil level means no difficulty filter.
	Sample(subject string, level *int, limit int) ([]model.Question, error)
	FindByIDs(ids []uint) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Count(&count).Error
	return count, err
}

func (r *questionRepository) CreateInBatches(tx *gorm.DB, questions []model.Question) error {
	return tx.CreateInBatches(questions, 100).Error
}

func (r *questionRepository) DeleteAll(tx *gorm.DB) error {
	// Hard delete: the bank is rebuilt from scratch, soft-deleted leftovers
	// would still occupy the table.
	return tx.Unscoped().Where("1 = 1").Delete(&model.Question{}).Error
}

func (r *questionRepository) CountsBySubjectAndDifficulty() ([]SubjectDifficultyCount, error) {
	var rows []SubjectDifficultyCount
	err := r.db.Model(&model.Question{}).
		Select("subject, difficulty_level, COUNT(id) as count").
		Group("subject").Group("difficulty_level").
		Scan(&rows).Error
	return rows, err
}

func (r *questionRepository) Sample(subject string, level *int, limit int) ([]model.Question, error) {
	var questions []model.Question
	query := r.db.Where("subject = ?", subject)
	if level != nil {
		query = query.Where("difficulty_level = ?", *level)
	}
	// ORDER BY RANDOM(): O(n log n) over the matching rows, fine at bank
	// scale, and a genuinely different order on every call.
	err := query.Order("RANDOM()").Limit(limit).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	var questions []model.Question
	if len(ids) == 0 {
		return questions, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&questions).Error
	return questions, err
}
