package services

import (
	"errors"
	"fmt"
	"time"

	apierrors "github.com/assistco/assist-api/internal/errors"
	"github.com/assistco/assist-api/internal/models"
	"github.com/assistco/assist-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials   = errors.New("unable to log in with provided credentials")
	ErrAccountDisabled      = errors.New("user account is disabled")
	ErrInvalidToken         = errors.New("invalid authentication token")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// Principal identifies the authenticated account behind a token.
type Principal struct {
	UserType string
	UserID   uint
}

// AuthService handles login, signup, logout and token validation.
type AuthService struct {
	clientRepo    repository.ClientRepository
	assistantRepo repository.AssistantRepository
	tokenRepo     repository.TokenRepository
	optionService *OptionService
}

// NewAuthService creates a new AuthService
func NewAuthService(
	clientRepo repository.ClientRepository,
	assistantRepo repository.AssistantRepository,
	tokenRepo repository.TokenRepository,
	optionService *OptionService,
) *AuthService {
	return &AuthService{
		clientRepo:    clientRepo,
		assistantRepo: assistantRepo,
		tokenRepo:     tokenRepo,
		optionService: optionService,
	}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials against client accounts first, then
// assistant accounts, and returns the account's bearer token. The
// token is get-or-create: a logout followed by a login transparently
// issues a fresh one.
func (s *AuthService) Login(input LoginInput) (*models.AuthToken, error) {
	email := NormalizeEmail(input.Email)

	userType := models.UserTypeClient
	var userID uint
	var passwordHash string
	var active bool

	client, err := s.clientRepo.FindByEmail(email)
	switch {
	case err == nil:
		userID = client.ID
		passwordHash = client.PasswordHash
		active = client.IsActive
	case errors.Is(err, gorm.ErrRecordNotFound):
		assistant, aerr := s.assistantRepo.FindByEmail(email)
		if aerr != nil {
			if errors.Is(aerr, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCredentials
			}
			return nil, fmt.Errorf("failed to find account: %w", aerr)
		}
		userType = models.UserTypeAssistant
		userID = assistant.ID
		passwordHash = assistant.PasswordHash
		active = assistant.IsActive
	default:
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !active {
		return nil, ErrAccountDisabled
	}

	if err := s.recordLogin(userType, userID); err != nil {
		return nil, err
	}

	token, err := s.tokenRepo.GetOrCreate(userType, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

func (s *AuthService) recordLogin(userType string, userID uint) error {
	now := time.Now()
	switch userType {
	case models.UserTypeClient:
		client, err := s.clientRepo.FindByID(userID)
		if err != nil {
			return fmt.Errorf("failed to record login: %w", err)
		}
		client.LastLoginAt = &now
		return s.clientRepo.Save(client)
	case models.UserTypeAssistant:
		assistant, err := s.assistantRepo.FindByID(userID)
		if err != nil {
			return fmt.Errorf("failed to record login: %w", err)
		}
		assistant.LastLoginAt = &now
		return s.assistantRepo.Save(assistant)
	}
	return nil
}

// Logout revokes the caller's token. Revoking an already-revoked token
// succeeds; the next authenticated login re-issues one.
func (s *AuthService) Logout(p Principal) error {
	return s.tokenRepo.DeleteForUser(p.UserType, p.UserID)
}

// Authenticate maps a bearer token key to an active account.
func (s *AuthService) Authenticate(key string) (Principal, error) {
	token, err := s.tokenRepo.FindByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Principal{}, ErrInvalidToken
		}
		return Principal{}, fmt.Errorf("failed to look up token: %w", err)
	}

	switch token.UserType {
	case models.UserTypeClient:
		client, err := s.clientRepo.FindByID(token.UserID)
		if err != nil || !client.IsActive {
			return Principal{}, ErrInvalidToken
		}
	case models.UserTypeAssistant:
		assistant, err := s.assistantRepo.FindByID(token.UserID)
		if err != nil || !assistant.IsActive {
			return Principal{}, ErrInvalidToken
		}
	default:
		return Principal{}, ErrInvalidToken
	}

	return Principal{UserType: token.UserType, UserID: token.UserID}, nil
}

// SignupInput represents the required information to register a client.
type SignupInput struct {
	Email               string
	Password            string
	FirstName           string
	LastName            string
	DateOfBirth         string
	Phone               string
	GenderPermalink     string
	ProfessionPermalink string
}

// Signup validates all fields, creates the client row and issues its
// token. Field errors are collected, not failed fast, and no row is
// written when any field is invalid.
func (s *AuthService) Signup(input SignupInput) (*models.Client, *models.AuthToken, error) {
	client, errs, err := s.BuildClient(input)
	if err != nil {
		return nil, nil, err
	}
	if errs.HasErrors() {
		return nil, nil, errs
	}

	if err := s.clientRepo.Create(client); err != nil {
		return nil, nil, fmt.Errorf("failed to create client: %w", err)
	}

	token, err := s.tokenRepo.GetOrCreate(models.UserTypeClient, client.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return client, token, nil
}

// BuildClient runs the full signup validation and assembles the row
// without persisting it. Shared with client creation through the
// clients endpoint, which applies the same rules as signup.
func (s *AuthService) BuildClient(input SignupInput) (*models.Client, apierrors.ValidationErrors, error) {
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
		if s.emailTaken(email) {
			errs.Add("email", msgEmailExists)
		}
	}

	if input.Phone == "" {
		errs.Add("phone", msgRequired)
	} else if _, err := s.clientRepo.FindByPhone(input.Phone); err == nil {
		errs.Add("phone", msgPhoneExists)
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

	var profession *models.Profession
	if input.ProfessionPermalink == "" {
		errs.Add("profession", msgRequired)
	} else {
		p, err := s.optionService.ResolveProfession(input.ProfessionPermalink)
		if err != nil {
			errs.Add("profession", fmt.Sprintf(msgUnknownOption, input.ProfessionPermalink))
		} else {
			profession = p
		}
	}

	if errs.HasErrors() {
		return nil, errs, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, ErrFailedToHashPassword
	}

	client := &models.Client{
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		IsActive:     true,
		GenderID:     gender.ID,
		ProfessionID: profession.ID,
		DateOfBirth:  dob,
		Gender:       *gender,
		Profession:   *profession,
	}
	return client, errs, nil
}

// emailTaken checks both account tables; client and assistant emails
// share one namespace.
func (s *AuthService) emailTaken(email string) bool {
	if _, err := s.clientRepo.FindByEmail(email); err == nil {
		return true
	}
	if _, err := s.assistantRepo.FindByEmail(email); err == nil {
		return true
	}
	return false
}
