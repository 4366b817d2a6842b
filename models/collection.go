package models

import (
	"time"

	"github.com/google/uuid"
)

// Collection represents a named grouping that prompts optionally belong to
// Name limited to 100 characters, description to 500 (enforced at the API layer)
type Collection struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
