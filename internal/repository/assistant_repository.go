package repository

import (
	"github.com/assistco/assist-api/internal/database"
	"github.com/assistco/assist-api/internal/models"
	"github.com/assistco/assist-api/internal/utils"
	"gorm.io/gorm"
)

// GormAssistantRepository is a GORM implementation of AssistantRepository
type GormAssistantRepository struct {
	db *gorm.DB
}

// NewAssistantRepository creates a new AssistantRepository
func NewAssistantRepository(db *gorm.DB) AssistantRepository {
	return &GormAssistantRepository{db: db}
}

// Create creates a new assistant
func (r *GormAssistantRepository) Create(assistant *models.Assistant) error {
	return r.db.Create(assistant).Error
}

// FindByID finds an assistant by ID
func (r *GormAssistantRepository) FindByID(id uint) (*models.Assistant, error) {
	var assistant models.Assistant
	if err := r.db.Preload("Gender").First(&assistant, id).Error; err != nil {
		return nil, err
	}
	return &assistant, nil
}

// FindByEmail finds an assistant by lowercased email
func (r *GormAssistantRepository) FindByEmail(email string) (*models.Assistant, error) {
	var assistant models.Assistant
	if err := r.db.Where("email = ?", email).First(&assistant).Error; err != nil {
		return nil, err
	}
	return &assistant, nil
}

// List returns a page of assistants
func (r *GormAssistantRepository) List(params utils.PaginationParams) ([]models.Assistant, int64, error) {
	var assistants []models.Assistant

	var total int64
	if err := r.db.Model(&models.Assistant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Preload("Gender").
		Order("assistants.id ASC").
		Scopes(database.Paginate(params)).
		Find(&assistants).Error; err != nil {
		return nil, 0, err
	}

	return assistants, total, nil
}

// Save persists changes to an assistant
func (r *GormAssistantRepository) Save(assistant *models.Assistant) error {
	return r.db.Save(assistant).Error
}
