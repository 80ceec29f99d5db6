package repository

import (
	"github.com/csprep/backend/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(tx *gorm.DB, result *model.Result) error
	// FindByIDAndUser enforces ownership in the query itself; a result that
	// exists but belongs to someone else is indistinguishable from a missing
	// one.
	FindByIDAndUser(id uint, userID uint) (*model.Result, error)
	FindAllByUser(userID uint) ([]model.Result, error)
	// AverageAccuracy returns nil when the user has no results yet.
	AverageAccuracy(tx *gorm.DB, userID uint) (*float64, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(tx *gorm.DB, result *model.Result) error {
	return tx.Create(result).Error
}

func (r *resultRepository) FindByIDAndUser(id uint, userID uint) (*model.Result, error) {
	var result model.Result
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindAllByUser(userID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&results).Error
	return results, err
}

func (r *resultRepository) AverageAccuracy(tx *gorm.DB, userID uint) (*float64, error) {
	var avg *float64
	err := tx.Model(&model.Result{}).
		Where("user_id = ?", userID).
		Select("AVG(accuracy)").
		Scan(&avg).Error
	return avg, err
}
