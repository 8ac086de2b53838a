package repository

import (
	"github.com/assistco/assist-api/internal/database"
	"github.com/assistco/assist-api/internal/models"
	"github.com/assistco/assist-api/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// FindClientTask finds a non-archived task belonging to a client.
// Archived tasks and tasks of other clients are both not found.
func (r *GormTaskRepository) FindClientTask(clientID, taskID uint) (*models.Task, error) {
	var task models.Task
	if err := r.db.Preload("TaskType").Preload("Contacts").
		Where("client_id = ? AND is_archived = ?", clientID, false).
		First(&task, taskID).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns a page of all tasks. The global listing is intentionally
// unfiltered: archived tasks are included.
func (r *GormTaskRepository) List(params utils.PaginationParams) ([]models.Task, int64, error) {
	var tasks []models.Task

	var total int64
	if err := r.db.Model(&models.Task{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Preload("TaskType").
		Order("tasks.created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// ListByClient returns a page of a client's tasks, excluding archived
func (r *GormTaskRepository) ListByClient(clientID uint, params utils.PaginationParams) ([]models.Task, int64, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{}).
		Where("client_id = ? AND is_archived = ?", clientID, false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("TaskType").
		Order("tasks.created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Save persists changes to a task
func (r *GormTaskRepository) Save(task *models.Task) error {
	return r.db.Save(task).Error
}

// Archive soft deletes a task. Contact links are kept.
func (r *GormTaskRepository) Archive(id uint) error {
	return r.db.Model(&models.Task{}).
		Where("id = ?", id).
		Update("is_archived", true).Error
}

// AddContacts links contacts to a task. Existing links are skipped, so
// repeated calls with the same contacts are idempotent.
func (r *GormTaskRepository) AddContacts(taskID uint, contactIDs []uint) error {
	if len(contactIDs) == 0 {
		return nil
	}

	links := make([]models.TaskContact, len(contactIDs))
	for i, contactID := range contactIDs {
		links[i] = models.TaskContact{
			TaskID:    taskID,
			ContactID: contactID,
		}
	}

	return r.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&links).Error
}

// ListContacts returns the contacts linked to a task
func (r *GormTaskRepository) ListContacts(taskID uint) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := r.db.
		Joins("JOIN task_contacts ON task_contacts.contact_id = contacts.id").
		Where("task_contacts.task_id = ?", taskID).
		Order("contacts.id ASC").
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}
