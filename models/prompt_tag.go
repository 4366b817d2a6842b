package models

import (
	"time"

	"github.com/google/uuid"
)

// PromptTag is the association record linking one prompt to one tag
// Compound key (PromptID, TagID) is unique; both sides must be live at
// creation time
// Seq is an engine-internal insertion counter used to break CreatedAt ties
// when ordering a prompt's tags
type PromptTag struct {
	PromptID  uuid.UUID `json:"prompt_id"`
	TagID     uuid.UUID `json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
	Seq       uint64    `json:"-"`
}
