package repository

import (
	"github.com/assistco/assist-api/internal/models"
	"github.com/assistco/assist-api/internal/utils"
)

// ReferenceRepository defines data access for the read-only option tables
type ReferenceRepository interface {
	// ListGenders returns a page of genders ordered by sort
	ListGenders(params utils.PaginationParams) ([]models.Gender, int64, error)

	// ListProfessions returns a page of professions ordered by sort
	ListProfessions(params utils.PaginationParams) ([]models.Profession, int64, error)

	// ListTaskTypes returns a page of task types ordered by sort
	ListTaskTypes(params utils.PaginationParams) ([]models.TaskType, int64, error)

	// FindGenderByPermalink resolves a gender slug
	FindGenderByPermalink(permalink string) (*models.Gender, error)

	// FindProfessionByPermalink resolves a profession slug
	FindProfessionByPermalink(permalink string) (*models.Profession, error)

	// FindTaskTypeByPermalink resolves a task type slug
	FindTaskTypeByPermalink(permalink string) (*models.TaskType, error)
}

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	// Create creates a new client
	Create(client *models.Client) error

	// FindByID finds a client by ID regardless of active state
	FindByID(id uint) (*models.Client, error)

	// FindActiveByID finds a client by ID, excluding soft-deleted rows
	FindActiveByID(id uint) (*models.Client, error)

	// FindByEmail finds a client by lowercased email
	FindByEmail(email string) (*models.Client, error)

	// FindByPhone finds a client by phone
	FindByPhone(phone string) (*models.Client, error)

	// ListActive returns a page of active clients
	ListActive(params utils.PaginationParams) ([]models.Client, int64, error)

	// Save persists changes to a client
	Save(client *models.Client) error

	// Deactivate soft deletes a client; deactivating an inactive client succeeds
	Deactivate(id uint) error
}

// AssistantRepository defines the interface for assistant data access
type AssistantRepository interface {
	// Create creates a new assistant
	Create(assistant *models.Assistant) error

	// FindByID finds an assistant by ID
	FindByID(id uint) (*models.Assistant, error)

	// FindByEmail finds an assistant by lowercased email
	FindByEmail(email string) (*models.Assistant, error)

	// List returns a page of assistants
	List(params utils.PaginationParams) ([]models.Assistant, int64, error)

	// Save persists changes to an assistant
	Save(assistant *models.Assistant) error
}

// ContactRepository defines the interface for contact data access
type ContactRepository interface {
	// Create creates a new contact
	Create(contact *models.Contact) error

	// FindByID finds a contact by ID
	FindByID(id uint) (*models.Contact, error)

	// CountByIDs counts how many of the given contact IDs exist
	CountByIDs(ids []uint) (int64, error)

	// FindByIdentity finds a contact matching the given contact's
	// identity attributes (email or phone, scoped to the owning
	// client). Returns gorm.ErrRecordNotFound when no match exists.
	FindByIdentity(contact *models.Contact) (*models.Contact, error)

	// GetOrCreateByAttrs finds or creates a contact by its identity
	// attributes (email or phone, scoped to the owning client). Safe
	// against concurrent callers racing on the same identity.
	GetOrCreateByAttrs(contact *models.Contact) (*models.Contact, error)

	// Save persists changes to a contact
	Save(contact *models.Contact) error

	// Delete hard deletes a contact
	Delete(id uint) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint, preload ...string) (*models.Task, error)

	// FindClientTask finds a non-archived task belonging to a client
	FindClientTask(clientID, taskID uint) (*models.Task, error)

	// List returns a page of all tasks, archived included
	List(params utils.PaginationParams) ([]models.Task, int64, error)

	// ListByClient returns a page of a client's non-archived tasks
	ListByClient(clientID uint, params utils.PaginationParams) ([]models.Task, int64, error)

	// Save persists changes to a task
	Save(task *models.Task) error

	// Archive soft deletes a task
	Archive(id uint) error

	// AddContacts links contacts to a task, skipping existing links
	AddContacts(taskID uint, contactIDs []uint) error

	// ListContacts returns the contacts linked to a task
	ListContacts(taskID uint) ([]models.Contact, error)
}

// TokenRepository defines the interface for auth token data access
type TokenRepository interface {
	// GetOrCreate returns the account's token, issuing one if absent
	GetOrCreate(userType string, userID uint) (*models.AuthToken, error)

	// FindByKey finds a token by its opaque key
	FindByKey(key string) (*models.AuthToken, error)

	// DeleteForUser revokes the account's token; absent tokens are a no-op
	DeleteForUser(userType string, userID uint) error
}
