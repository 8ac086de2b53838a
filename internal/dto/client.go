package dto

import (
	"time"

	"github.com/assistco/assist-api/internal/constants"
	"github.com/assistco/assist-api/internal/models"
)

// ClientDTO represents a client in API responses. Reference relations
// are rendered as their permalink slugs.
type ClientDTO struct {
	ID               uint      `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Phone            string    `json:"phone"`
	DateOfBirth      string    `json:"date_of_birth"`
	Gender           string    `json:"gender"`
	Profession       string    `json:"profession"`
	PrimaryAssistant *uint     `json:"primary_assistant"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToClientDTO converts a Client model to ClientDTO
func ToClientDTO(client models.Client) ClientDTO {
	return ClientDTO{
		ID:               client.ID,
		Email:            client.Email,
		FirstName:        client.FirstName,
		LastName:         client.LastName,
		Phone:            client.Phone,
		DateOfBirth:      client.DateOfBirth.Format(constants.DateLayout),
		Gender:           client.Gender.Permalink,
		Profession:       client.Profession.Permalink,
		PrimaryAssistant: client.PrimaryAssistantID,
		IsActive:         client.IsActive,
		CreatedAt:        client.CreatedAt,
		UpdatedAt:        client.UpdatedAt,
	}
}

// ToClientDTOs converts a slice of clients
func ToClientDTOs(clients []models.Client) []ClientDTO {
	dtos := make([]ClientDTO, len(clients))
	for i, client := range clients {
		dtos[i] = ToClientDTO(client)
	}
	return dtos
}
