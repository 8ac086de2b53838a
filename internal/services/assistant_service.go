package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/assistco/assist-api/internal/constants"
	apierrors "github.com/assistco/assist-api/internal/errors"
	"github.com/assistco/assist-api/internal/models"
	"github.com/assistco/assist-api/internal/repository"
	"github.com/assistco/assist-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AssistantService handles assistant resource business logic. Creation
// is an administrative path: no public signup rules beyond field
// presence and gender resolution.
type AssistantService struct {
	assistantRepo repository.AssistantRepository
	optionService *OptionService
	authService   *AuthService
}

// NewAssistantService creates a new AssistantService
func NewAssistantService(assistantRepo repository.AssistantRepository, optionService *OptionService, authService *AuthService) *AssistantService {
	return &AssistantService{
		assistantRepo: assistantRepo,
		optionService: optionService,
		authService:   authService,
	}
}

// List returns a page of assistants.
func (s *AssistantService) List(params utils.PaginationParams) ([]models.Assistant, int64, error) {
	return s.assistantRepo.List(params)
}

// Get returns an assistant by ID.
func (s *AssistantService) Get(id uint) (*models.Assistant, error) {
	assistant, err := s.assistantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssistantNotFound
		}
		return nil, fmt.Errorf("failed to find assistant: %w", err)
	}
	return assistant, nil
}

// CreateAssistantInput represents input for provisioning an assistant.
type CreateAssistantInput struct {
	Email           string
	Password        string
	FirstName       string
	LastName        string
	DateOfBirth     string
	GenderPermalink string
}

// Create provisions an assistant account.
func (s *AssistantService) Create(input CreateAssistantInput) (*models.Assistant, error) {
	errs := apierrors.ValidationErrors{}

	dob := ValidateAccountFields(AccountFields{
		Email:       input.Email,
		Password:    input.Password,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: input.DateOfBirth,
	}, errs)

	email := NormalizeEmail(input.Email)
	if _, ok := errs["email"]; !ok {
		// Clients and assistants share one login namespace.
		if s.authService.emailTaken(email) {
			errs.Add("email", msgEmailExists)
		}
	}

	var gender *models.Gender
	if input.GenderPermalink == "" {
		errs.Add("gender", msgRequired)
	} else {
		g, err := s.optionService.ResolveGender(input.GenderPermalink)
		if err != nil {
			errs.Add("gender", fmt.Sprintf(msgUnknownOption, input.GenderPermalink))
		} else {
			gender = g
		}
	}

	if errs.HasErrors() {
		return nil, errs
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	assistant := &models.Assistant{
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		IsActive:     true,
		GenderID:     gender.ID,
		DateOfBirth:  dob,
		Gender:       *gender,
	}

	if err := s.assistantRepo.Create(assistant); err != nil {
		return nil, fmt.Errorf("failed to create assistant: %w", err)
	}
	return assistant, nil
}

// UpdateAssistantInput holds the patchable assistant fields.
type UpdateAssistantInput struct {
	Email       *string
	FirstName   *string
	LastName    *string
	DateOfBirth *string
	Gender      *string
	IsActive    *bool
}

// Patch applies a partial update with the same contract as for clients.
func (s *AssistantService) Patch(id uint, input UpdateAssistantInput) (*models.Assistant, error) {
	assistant, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	errs := apierrors.ValidationErrors{}

	if input.Email != nil {
		email := NormalizeEmail(*input.Email)
		switch {
		case !ValidEmail(email):
			errs.Add("email", msgInvalidEmail)
		case email != assistant.Email:
			if s.authService.emailTaken(email) {
				errs.Add("email", msgEmailExists)
			} else {
				assistant.Email = email
			}
		}
	}

	if input.FirstName != nil {
		if *input.FirstName == "" {
			errs.Add("first_name", msgRequired)
		} else {
			assistant.FirstName = *input.FirstName
		}
	}
	if input.LastName != nil {
		if *input.LastName == "" {
			errs.Add("last_name", msgRequired)
		} else {
			assistant.LastName = *input.LastName
		}
	}

	if input.DateOfBirth != nil {
		dob, err := time.Parse(constants.DateLayout, *input.DateOfBirth)
		if err != nil {
			errs.Add("date_of_birth", msgInvalidDate)
		} else {
			assistant.DateOfBirth = dob
		}
	}

	if input.Gender != nil {
		g, err := s.optionService.ResolveGender(*input.Gender)
		if err != nil {
			errs.Add("gender", fmt.Sprintf(msgUnknownOption, *input.Gender))
		} else {
			assistant.GenderID = g.ID
			assistant.Gender = *g
		}
	}

	if input.IsActive != nil {
		assistant.IsActive = *input.IsActive
	}

	if errs.HasErrors() {
		return nil, errs
	}

	if err := s.assistantRepo.Save(assistant); err != nil {
		return nil, fmt.Errorf("failed to update assistant: %w", err)
	}
	return assistant, nil
}
