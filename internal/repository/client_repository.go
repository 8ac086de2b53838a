package repository

import (
	"github.com/assistco/assist-api/internal/database"
	"github.com/assistco/assist-api/internal/models"
	"github.com/assistco/assist-api/internal/utils"
	"gorm.io/gorm"
)

// GormClientRepository is a GORM implementation of ClientRepository
type GormClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &GormClientRepository{db: db}
}

// Create creates a new client
func (r *GormClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// FindByID finds a client by ID regardless of active state
func (r *GormClientRepository) FindByID(id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.Preload("Gender").Preload("Profession").First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// FindActiveByID finds a client by ID, excluding soft-deleted rows
func (r *GormClientRepository) FindActiveByID(id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.Preload("Gender").Preload("Profession").
		Where("is_active = ?", true).
		First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// FindByEmail finds a client by email. Emails are stored lowercased, so
// callers pass the lowercased form for a case-insensitive match.
func (r *GormClientRepository) FindByEmail(email string) (*models.Client, error) {
	var client models.Client
	if err := r.db.Where("email = ?", email).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// FindByPhone finds a client by phone
func (r *GormClientRepository) FindByPhone(phone string) (*models.Client, error) {
	var client models.Client
	if err := r.db.Where("phone = ?", phone).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// ListActive returns a page of active clients
func (r *GormClientRepository) ListActive(params utils.PaginationParams) ([]models.Client, int64, error) {
	var clients []models.Client

	query := r.db.Model(&models.Client{}).Where("is_active = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Gender").Preload("Profession").
		Order("clients.id ASC").
		Scopes(database.Paginate(params)).
		Find(&clients).Error; err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

// Save persists changes to a client
func (r *GormClientRepository) Save(client *models.Client) error {
	return r.db.Save(client).Error
}

// Deactivate soft deletes a client. Idempotent: an already-inactive
// client stays inactive and no error is raised.
func (r *GormClientRepository) Deactivate(id uint) error {
	return r.db.Model(&models.Client{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
