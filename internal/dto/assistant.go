package dto

import (
	"time"

	"github.com/assistco/assist-api/internal/constants"
	"github.com/assistco/assist-api/internal/models"
)

// AssistantDTO represents an assistant in API responses
type AssistantDTO struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Gender      string    `json:"gender"`
	DateOfBirth string    `json:"date_of_birth"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToAssistantDTO converts an Assistant model to AssistantDTO
func ToAssistantDTO(assistant models.Assistant) AssistantDTO {
	return AssistantDTO{
		ID:          assistant.ID,
		Email:       assistant.Email,
		FirstName:   assistant.FirstName,
		LastName:    assistant.LastName,
		Gender:      assistant.Gender.Permalink,
		DateOfBirth: assistant.DateOfBirth.Format(constants.DateLayout),
		IsActive:    assistant.IsActive,
		CreatedAt:   assistant.CreatedAt,
		UpdatedAt:   assistant.UpdatedAt,
	}
}

// ToAssistantDTOs converts a slice of assistants
func ToAssistantDTOs(assistants []models.Assistant) []AssistantDTO {
	dtos := make([]AssistantDTO, len(assistants))
	for i, assistant := range assistants {
		dtos[i] = ToAssistantDTO(assistant)
	}
	return dtos
}
