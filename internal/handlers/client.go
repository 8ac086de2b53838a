package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assistco/assist-api/internal/dto"
	apierrors "github.com/assistco/assist-api/internal/errors"
	"github.com/assistco/assist-api/internal/services"
	"github.com/assistco/assist-api/internal/utils"
)

// ClientHandler coordinates client resource HTTP handlers.
type ClientHandler struct {
	clientService *services.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// List returns a page of active clients.
func (h *ClientHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	clients, total, err := h.clientService.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch clients")
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(c, params, total, dto.ToClientDTOs(clients)))
}

// Create registers a client with the same validation as signup.
func (h *ClientHandler) Create(c *gin.Context) {
	type CreateClientRequest struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		DateOfBirth string `json:"date_of_birth"`
		Phone       string `json:"phone"`
		Gender      string `json:"gender"`
		Profession  string `json:"profession"`
	}

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	client, err := h.clientService.Create(services.SignupInput{
		Email:               req.Email,
		Password:            req.Password,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		DateOfBirth:         req.DateOfBirth,
		Phone:               req.Phone,
		GenderPermalink:     req.Gender,
		ProfessionPermalink: req.Profession,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientDTO(*client))
}

// Get returns a client detail. Soft-deleted clients are 404.
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "client_id")
	if !ok {
		return
	}

	client, err := h.clientService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientDTO(*client))
}

// Patch applies a partial update to a client.
func (h *ClientHandler) Patch(c *gin.Context) {
	id, ok := parseIDParam(c, "client_id")
	if !ok {
		return
	}

	type UpdateClientRequest struct {
		Email            *string `json:"email"`
		FirstName        *string `json:"first_name"`
		LastName         *string `json:"last_name"`
		Phone            *string `json:"phone"`
		DateOfBirth      *string `json:"date_of_birth"`
		Gender           *string `json:"gender"`
		Profession       *string `json:"profession"`
		PrimaryAssistant *uint   `json:"primary_assistant"`
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	client, err := h.clientService.Patch(id, services.UpdateClientInput{
		Email:            req.Email,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Phone:            req.Phone,
		DateOfBirth:      req.DateOfBirth,
		Gender:           req.Gender,
		Profession:       req.Profession,
		PrimaryAssistant: req.PrimaryAssistant,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientDTO(*client))
}

// Delete soft deletes a client. Idempotent; returns no content.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "client_id")
	if !ok {
		return
	}

	if err := h.clientService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
