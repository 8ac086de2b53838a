package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assistco/assist-api/internal/dto"
	apierrors "github.com/assistco/assist-api/internal/errors"
	"github.com/assistco/assist-api/internal/services"
)

// ContactHandler coordinates contact resource HTTP handlers.
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Create creates a contact. Email or phone must be present.
func (h *ContactHandler) Create(c *gin.Context) {
	type CreateContactRequest struct {
		FirstName string  `json:"first_name"`
		LastName  string  `json:"last_name"`
		Email     *string `json:"email"`
		Phone     *string `json:"phone"`
		Client    *uint   `json:"client"`
	}

	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	contact, err := h.contactService.Create(services.CreateContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		ClientID:  req.Client,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToContactDTO(*contact))
}

// Get returns a contact detail.
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "contact_id")
	if !ok {
		return
	}

	contact, err := h.contactService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactDTO(*contact))
}

// Patch applies a partial update to a contact.
func (h *ContactHandler) Patch(c *gin.Context) {
	id, ok := parseIDParam(c, "contact_id")
	if !ok {
		return
	}

	type UpdateContactRequest struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Email     *string `json:"email"`
		Phone     *string `json:"phone"`
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	contact, err := h.contactService.Patch(id, services.UpdateContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactDTO(*contact))
}

// Delete hard deletes a contact.
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "contact_id")
	if !ok {
		return
	}

	if err := h.contactService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
