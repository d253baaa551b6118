package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateCode returns an opaque single-use code for invites and magic links.
func GenerateCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
