package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewCollectionUID returns a short URL-safe identifier with a "c" prefix,
// e.g. "c4f1f9a9e21d94d0f8a6c3b7d2e5a1c09".
func NewCollectionUID() string {
	return "c" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewAPIToken returns an opaque bearer token for non-browser clients.
func NewAPIToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") + strings.ReplaceAll(uuid.NewString(), "-", "")
}
