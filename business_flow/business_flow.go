// Package businessflow contains the business logic for the application.
package businessflow

import (
	"time"

	"github.com/promptlab/promptlab/app/dto"
	"github.com/promptlab/promptlab/models"
)

// ToPromptDTO converts a prompt model to its API representation
func ToPromptDTO(p *models.Prompt) dto.PromptResponse {
	out := dto.PromptResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Content:     p.Content,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339Nano),
	}
	if p.CollectionID != nil {
		id := p.CollectionID.String()
		out.CollectionID = &id
	}
	return out
}

// ToCollectionDTO converts a collection model to its API representation
func ToCollectionDTO(c *models.Collection) dto.CollectionResponse {
	return dto.CollectionResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339Nano),
	}
}

// ToTagDTO converts a tag model to its API representation
func ToTagDTO(t *models.Tag) dto.TagResponse {
	return dto.TagResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339Nano),
	}
}

// ToVersionDTO converts a prompt version model to its API representation
func ToVersionDTO(v *models.PromptVersion) dto.VersionResponse {
	return dto.VersionResponse{
		ID:            v.ID.String(),
		PromptID:      v.PromptID.String(),
		Title:         v.Title,
		Content:       v.Content,
		Description:   v.Description,
		VersionNumber: v.VersionNumber,
		CreatedAt:     v.CreatedAt.Format(time.RFC3339Nano),
	}
}
