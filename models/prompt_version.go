package models

import (
	"time"

	"github.com/google/uuid"
)

// PromptVersion is an immutable snapshot of a prompt's title/content at a
// point in time
// VersionNumber starts at 1 and is strictly increasing per prompt with no
// gaps; records are only removed when the owning prompt is deleted
type PromptVersion struct {
	ID            uuid.UUID `json:"id"`
	PromptID      uuid.UUID `json:"prompt_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Description   *string   `json:"description,omitempty"`
	VersionNumber int       `json:"version_number"`
	CreatedAt     time.Time `json:"created_at"`
}
