package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/assistco/assist-api/internal/errors"
	"github.com/assistco/assist-api/internal/services"
)

// parseIDParam reads a numeric path parameter. Responds 404 on garbage
// input: a non-numeric id can never name a resource.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		apierrors.NotFound(c, "")
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps service errors onto the HTTP taxonomy.
// Collected field errors render as the bare field-to-messages object.
func respondServiceError(c *gin.Context, err error) {
	var verrs apierrors.ValidationErrors
	if errors.As(err, &verrs) {
		apierrors.ValidationFailed(c, verrs)
		return
	}

	switch {
	case errors.Is(err, services.ErrClientNotFound),
		errors.Is(err, services.ErrAssistantNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrContactNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrContactRefUnresolved),
		errors.Is(err, services.ErrUnknownReference):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{
			apierrors.NonFieldErrors: []string{"Unable to log in with provided credentials."},
		})
	case errors.Is(err, services.ErrAccountDisabled):
		c.JSON(http.StatusBadRequest, gin.H{
			apierrors.NonFieldErrors: []string{"User account is disabled."},
		})
	case errors.Is(err, services.ErrInvalidToken):
		apierrors.Unauthorized(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
