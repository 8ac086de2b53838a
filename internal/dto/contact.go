package dto

import "github.com/assistco/assist-api/internal/models"

// ContactDTO represents a contact in API responses
type ContactDTO struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	ClientID  *uint   `json:"client_id"`
}

// ToContactDTO converts a Contact model to ContactDTO
func ToContactDTO(contact models.Contact) ContactDTO {
	return ContactDTO{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
		ClientID:  contact.ClientID,
	}
}

// ToContactDTOs converts a slice of contacts
func ToContactDTOs(contacts []models.Contact) []ContactDTO {
	dtos := make([]ContactDTO, len(contacts))
	for i, contact := range contacts {
		dtos[i] = ToContactDTO(contact)
	}
	return dtos
}
