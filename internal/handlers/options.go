package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assistco/assist-api/internal/dto"
	apierrors "github.com/assistco/assist-api/internal/errors"
	"github.com/assistco/assist-api/internal/services"
	"github.com/assistco/assist-api/internal/utils"
)

// OptionHandler serves the read-only reference option listings.
type OptionHandler struct {
	optionService *services.OptionService
}

// NewOptionHandler creates a new OptionHandler.
func NewOptionHandler(optionService *services.OptionService) *OptionHandler {
	return &OptionHandler{
		optionService: optionService,
	}
}

// ListGenders returns genders ordered by sort.
func (h *OptionHandler) ListGenders(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	rows, total, err := h.optionService.ListGenders(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch genders")
		return
	}
	c.JSON(http.StatusOK, dto.NewPage(c, params, total, rows))
}

// ListProfessions returns professions ordered by sort.
func (h *OptionHandler) ListProfessions(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	rows, total, err := h.optionService.ListProfessions(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch professions")
		return
	}
	c.JSON(http.StatusOK, dto.NewPage(c, params, total, rows))
}

// ListTaskTypes returns task types ordered by sort.
func (h *OptionHandler) ListTaskTypes(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	rows, total, err := h.optionService.ListTaskTypes(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch task types")
		return
	}
	c.JSON(http.StatusOK, dto.NewPage(c, params, total, rows))
}
