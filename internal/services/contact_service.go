package services

import (
	"errors"
	"fmt"

	apierrors "github.com/assistco/assist-api/internal/errors"
	"github.com/assistco/assist-api/internal/models"
	"github.com/assistco/assist-api/internal/repository"
	"gorm.io/gorm"
)

var ErrContactNotFound = errors.New("contact not found")

// ContactService handles contact resource business logic.
type ContactService struct {
	contactRepo repository.ContactRepository
	clientRepo  repository.ClientRepository
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repository.ContactRepository, clientRepo repository.ClientRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		clientRepo:  clientRepo,
	}
}

// CreateContactInput represents input for creating a contact.
type CreateContactInput struct {
	FirstName string
	LastName  string
	Email     *string
	Phone     *string
	ClientID  *uint
}

// Create creates a contact. At least one of email or phone must be
// present; creation goes through get-or-create so a concurrent
// duplicate resolves to the existing row.
func (s *ContactService) Create(input CreateContactInput) (*models.Contact, error) {
	errs := apierrors.ValidationErrors{}

	email := normalizeOptional(input.Email)
	phone := normalizeOptional(input.Phone)
	if email == nil && phone == nil {
		errs.Add(apierrors.NonFieldErrors, msgEmailOrPhone)
	}

	if input.ClientID != nil {
		if _, err := s.clientRepo.FindActiveByID(*input.ClientID); err != nil {
			errs.Add("client", "Client does not exist.")
		}
	}

	if errs.HasErrors() {
		return nil, errs
	}

	contact := &models.Contact{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     email,
		Phone:     phone,
		ClientID:  input.ClientID,
	}

	resolved, err := s.contactRepo.GetOrCreateByAttrs(contact)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return resolved, nil
}

// Get returns a contact by ID.
func (s *ContactService) Get(id uint) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}
	return contact, nil
}

// UpdateContactInput holds the patchable contact fields.
type UpdateContactInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

// Patch applies a partial update. The contact must still carry an
// email or phone afterwards.
func (s *ContactService) Patch(id uint, input UpdateContactInput) (*models.Contact, error) {
	contact, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		contact.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		contact.LastName = *input.LastName
	}
	if input.Email != nil {
		contact.Email = normalizeOptional(input.Email)
	}
	if input.Phone != nil {
		contact.Phone = normalizeOptional(input.Phone)
	}

	errs := apierrors.ValidationErrors{}
	if contact.Email == nil && contact.Phone == nil {
		errs.Add(apierrors.NonFieldErrors, msgEmailOrPhone)
		return nil, errs
	}

	// A changed identity must not collide with another contact in the
	// same client scope.
	if input.Email != nil && contact.Email != nil {
		dup, err := s.contactRepo.FindByIdentity(&models.Contact{Email: contact.Email, ClientID: contact.ClientID})
		if err == nil && dup.ID != contact.ID {
			errs.Add("email", msgEmailExists)
		}
	}
	if input.Phone != nil && contact.Phone != nil {
		dup, err := s.contactRepo.FindByIdentity(&models.Contact{Phone: contact.Phone, ClientID: contact.ClientID})
		if err == nil && dup.ID != contact.ID {
			errs.Add("phone", msgPhoneExists)
		}
	}
	if errs.HasErrors() {
		return nil, errs
	}

	if err := s.contactRepo.Save(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return contact, nil
}

// Delete hard deletes a contact.
func (s *ContactService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.contactRepo.Delete(id)
}
