package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateTokenKey produces an opaque 40-character hex bearer token.
func GenerateTokenKey() string {
	a := strings.ReplaceAll(uuid.NewString(), "-", "")
	b := strings.ReplaceAll(uuid.NewString(), "-", "")
	return (a + b)[:40]
}
