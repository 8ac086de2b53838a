package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NonFieldErrors keys errors not attributable to a single field, such
// as a failed login.
const NonFieldErrors = "non_field_errors"

// ValidationErrors collects field-level validation failures. All fields
// are validated before responding; the map is the 400 response body
// verbatim, e.g. {"email": ["Email already exists"]}.
type ValidationErrors map[string][]string

// Error implements the error interface
func (v ValidationErrors) Error() string {
	for field, msgs := range v {
		if len(msgs) > 0 {
			return field + ": " + msgs[0]
		}
	}
	return "validation failed"
}

// Add appends a message for a field.
func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

// HasErrors reports whether any field failed.
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// ValidationFailed sends the collected field errors as a 400 response.
func ValidationFailed(c *gin.Context, v ValidationErrors) {
	c.JSON(http.StatusBadRequest, v)
}
