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
	"gorm.io/gorm"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrAssistantNotFound = errors.New("assistant not found")
)

// ClientService handles client resource business logic.
type ClientService struct {
	clientRepo    repository.ClientRepository
	assistantRepo repository.AssistantRepository
	authService   *AuthService
	optionService *OptionService
}

// NewClientService creates a new ClientService
func NewClientService(
	clientRepo repository.ClientRepository,
	assistantRepo repository.AssistantRepository,
	authService *AuthService,
	optionService *OptionService,
) *ClientService {
	return &ClientService{
		clientRepo:    clientRepo,
		assistantRepo: assistantRepo,
		authService:   authService,
		optionService: optionService,
	}
}

// List returns a page of active clients.
func (s *ClientService) List(params utils.PaginationParams) ([]models.Client, int64, error) {
	return s.clientRepo.ListActive(params)
}

// Get returns an active client. Soft-deleted clients are not found.
func (s *ClientService) Get(id uint) (*models.Client, error) {
	client, err := s.clientRepo.FindActiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return client, nil
}

// Create registers a client through the resource endpoint. Validation
// is identical to signup.
func (s *ClientService) Create(input SignupInput) (*models.Client, error) {
	client, errs, err := s.authService.BuildClient(input)
	if err != nil {
		return nil, err
	}
	if errs.HasErrors() {
		return nil, errs
	}

	if err := s.clientRepo.Create(client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

// UpdateClientInput holds the patchable client fields. Nil means the
// field was not supplied and keeps its stored value.
type UpdateClientInput struct {
	Email            *string
	FirstName        *string
	LastName         *string
	Phone            *string
	DateOfBirth      *string
	Gender           *string
	Profession       *string
	PrimaryAssistant *uint
}

// Patch applies a partial update. Field-level validation re-runs only
// for the supplied fields; nothing is written when any of them fails.
func (s *ClientService) Patch(id uint, input UpdateClientInput) (*models.Client, error) {
	client, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	errs := apierrors.ValidationErrors{}

	if input.Email != nil {
		email := NormalizeEmail(*input.Email)
		switch {
		case !ValidEmail(email):
			errs.Add("email", msgInvalidEmail)
		case email != client.Email && s.authService.emailTaken(email):
			errs.Add("email", msgEmailExists)
		default:
			client.Email = email
		}
	}

	if input.FirstName != nil {
		if *input.FirstName == "" {
			errs.Add("first_name", msgRequired)
		} else {
			client.FirstName = *input.FirstName
		}
	}
	if input.LastName != nil {
		if *input.LastName == "" {
			errs.Add("last_name", msgRequired)
		} else {
			client.LastName = *input.LastName
		}
	}

	if input.Phone != nil {
		if *input.Phone == "" {
			errs.Add("phone", msgRequired)
		} else if *input.Phone != client.Phone {
			if _, err := s.clientRepo.FindByPhone(*input.Phone); err == nil {
				errs.Add("phone", msgPhoneExists)
			} else {
				client.Phone = *input.Phone
			}
		}
	}

	if input.DateOfBirth != nil {
		dob, err := time.Parse(constants.DateLayout, *input.DateOfBirth)
		if err != nil {
			errs.Add("date_of_birth", msgInvalidDate)
		} else {
			client.DateOfBirth = dob
		}
	}

	if input.Gender != nil {
		g, err := s.optionService.ResolveGender(*input.Gender)
		if err != nil {
			errs.Add("gender", fmt.Sprintf(msgUnknownOption, *input.Gender))
		} else {
			client.GenderID = g.ID
			client.Gender = *g
		}
	}

	if input.Profession != nil {
		p, err := s.optionService.ResolveProfession(*input.Profession)
		if err != nil {
			errs.Add("profession", fmt.Sprintf(msgUnknownOption, *input.Profession))
		} else {
			client.ProfessionID = p.ID
			client.Profession = *p
		}
	}

	if input.PrimaryAssistant != nil {
		if _, err := s.assistantRepo.FindByID(*input.PrimaryAssistant); err != nil {
			errs.Add("primary_assistant", "Assistant does not exist.")
		} else {
			client.PrimaryAssistantID = input.PrimaryAssistant
		}
	}

	if errs.HasErrors() {
		return nil, errs
	}

	if err := s.clientRepo.Save(client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

// Delete soft deletes a client. Idempotent; tasks and contacts are
// untouched.
func (s *ClientService) Delete(id uint) error {
	return s.clientRepo.Deactivate(id)
}
