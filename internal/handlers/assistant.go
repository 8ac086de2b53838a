package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assistco/assist-api/internal/dto"
	apierrors "github.com/assistco/assist-api/internal/errors"
	"github.com/assistco/assist-api/internal/services"
	"github.com/assistco/assist-api/internal/utils"
)

// AssistantHandler coordinates assistant resource HTTP handlers.
// Creation is an administrative path, not public signup.
type AssistantHandler struct {
	assistantService *services.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(assistantService *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
	}
}

// List returns a page of assistants.
func (h *AssistantHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	assistants, total, err := h.assistantService.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch assistants")
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(c, params, total, dto.ToAssistantDTOs(assistants)))
}

// Create provisions an assistant account.
func (h *AssistantHandler) Create(c *gin.Context) {
	type CreateAssistantRequest struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		DateOfBirth string `json:"date_of_birth"`
		Gender      string `json:"gender"`
	}

	var req CreateAssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	assistant, err := h.assistantService.Create(services.CreateAssistantInput{
		Email:           req.Email,
		Password:        req.Password,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		DateOfBirth:     req.DateOfBirth,
		GenderPermalink: req.Gender,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssistantDTO(*assistant))
}

// Get returns an assistant detail.
func (h *AssistantHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "assistant_id")
	if !ok {
		return
	}

	assistant, err := h.assistantService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssistantDTO(*assistant))
}

// Patch applies a partial update to an assistant.
func (h *AssistantHandler) Patch(c *gin.Context) {
	id, ok := parseIDParam(c, "assistant_id")
	if !ok {
		return
	}

	type UpdateAssistantRequest struct {
		Email       *string `json:"email"`
		FirstName   *string `json:"first_name"`
		LastName    *string `json:"last_name"`
		DateOfBirth *string `json:"date_of_birth"`
		Gender      *string `json:"gender"`
		IsActive    *bool   `json:"is_active"`
	}

	var req UpdateAssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	assistant, err := h.assistantService.Patch(id, services.UpdateAssistantInput{
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssistantDTO(*assistant))
}
