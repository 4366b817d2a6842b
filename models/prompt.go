package models

import (
	"time"

	"github.com/google/uuid"
)

// Prompt represents a reusable text prompt, optionally grouped into a collection
// CollectionID, when set, must reference a live collection; it is nulled out
// when the collection is deleted
// Title limited to 200 characters, description to 500 (enforced at the API layer)
type Prompt struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Description  *string    `json:"description,omitempty"`
	CollectionID *uuid.UUID `json:"collection_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// PromptPatch carries a partial update; nil fields are left unchanged.
// Description and CollectionID, when set, replace the stored pointer.
type PromptPatch struct {
	Title        *string
	Content      *string
	Description  *string
	CollectionID *uuid.UUID
}

// PromptFilter represents filter criteria for prompt queries
// TagNames are combined with AND logic; Search matches title and description
// case-insensitively
type PromptFilter struct {
	TagNames     []string
	CollectionID *uuid.UUID
	Search       *string
}
