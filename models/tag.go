package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag represents a reusable label attachable to many prompts
// Unique by name, ignoring case; two names that normalize to the same
// lower-case form are the same tag
type Tag struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
