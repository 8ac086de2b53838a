package repository

import (
	"github.com/assistco/assist-api/internal/database"
	"github.com/assistco/assist-api/internal/models"
	"github.com/assistco/assist-api/internal/utils"
	"gorm.io/gorm"
)

// GormReferenceRepository is a GORM implementation of ReferenceRepository
type GormReferenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository creates a new ReferenceRepository
func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &GormReferenceRepository{db: db}
}

func (r *GormReferenceRepository) ListGenders(params utils.PaginationParams) ([]models.Gender, int64, error) {
	rows := make([]models.Gender, 0)
	var total int64
	if err := r.db.Model(&models.Gender{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Order("sort ASC").
		Scopes(database.Paginate(params)).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *GormReferenceRepository) ListProfessions(params utils.PaginationParams) ([]models.Profession, int64, error) {
	rows := make([]models.Profession, 0)
	var total int64
	if err := r.db.Model(&models.Profession{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Order("sort ASC").
		Scopes(database.Paginate(params)).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *GormReferenceRepository) ListTaskTypes(params utils.PaginationParams) ([]models.TaskType, int64, error) {
	rows := make([]models.TaskType, 0)
	var total int64
	if err := r.db.Model(&models.TaskType{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Order("sort ASC").
		Scopes(database.Paginate(params)).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *GormReferenceRepository) FindGenderByPermalink(permalink string) (*models.Gender, error) {
	var g models.Gender
	if err := r.db.Where("permalink = ?", permalink).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GormReferenceRepository) FindProfessionByPermalink(permalink string) (*models.Profession, error) {
	var p models.Profession
	if err := r.db.Where("permalink = ?", permalink).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormReferenceRepository) FindTaskTypeByPermalink(permalink string) (*models.TaskType, error) {
	var tt models.TaskType
	if err := r.db.Where("permalink = ?", permalink).First(&tt).Error; err != nil {
		return nil, err
	}
	return &tt, nil
}
