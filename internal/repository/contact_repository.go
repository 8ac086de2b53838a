package repository

import (
	"errors"

	"github.com/assistco/assist-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrContactIdentityRequired is returned when a contact carries neither
// an email nor a phone, so no identity attribute exists to match on.
var ErrContactIdentityRequired = errors.New("contact repository: email or phone required")

// GormContactRepository is a GORM implementation of ContactRepository
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &GormContactRepository{db: db}
}

// Create creates a new contact
func (r *GormContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// FindByID finds a contact by ID
func (r *GormContactRepository) FindByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// CountByIDs counts how many of the given contact IDs exist
func (r *GormContactRepository) CountByIDs(ids []uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

// FindByIdentity finds the contact carrying the given identity
// attributes: (email, client) when an email is present, (phone, client)
// otherwise.
func (r *GormContactRepository) FindByIdentity(contact *models.Contact) (*models.Contact, error) {
	identity := r.identityQuery(contact)
	if identity == nil {
		return nil, ErrContactIdentityRequired
	}

	var existing models.Contact
	if err := identity.First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// GetOrCreateByAttrs finds or creates a contact keyed on
// (email, client) when an email is present, (phone, client) otherwise.
// The insert runs with ON CONFLICT DO NOTHING so two requests racing on
// the same identity cannot produce duplicate rows; the loser of the
// race re-selects the winner's row.
func (r *GormContactRepository) GetOrCreateByAttrs(contact *models.Contact) (*models.Contact, error) {
	existing, err := r.FindByIdentity(contact)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(contact)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		return contact, nil
	}

	// Lost the race: the conflicting row was created concurrently.
	return r.FindByIdentity(contact)
}

func (r *GormContactRepository) identityQuery(contact *models.Contact) *gorm.DB {
	var scope uint
	if contact.ClientID != nil {
		scope = *contact.ClientID
	}
	owner := r.db.Where("client_scope = ?", scope)

	switch {
	case contact.Email != nil && *contact.Email != "":
		return owner.Where("email = ?", *contact.Email)
	case contact.Phone != nil && *contact.Phone != "":
		return owner.Where("phone = ?", *contact.Phone)
	default:
		return nil
	}
}

// Save persists changes to a contact
func (r *GormContactRepository) Save(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// Delete hard deletes a contact and its task links
func (r *GormContactRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", id).Delete(&models.TaskContact{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Contact{}, id).Error
	})
}
