package dto

// CreatePromptRequest carries data to create a new prompt
// CollectionID, when present, must be a valid UUID referencing an existing
// collection
type CreatePromptRequest struct {
	Title        string  `json:"title" validate:"required,min=1,max=200"`
	Content      string  `json:"content" validate:"required,min=1"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	CollectionID *string `json:"collection_id,omitempty" validate:"omitempty,uuid"`
}

// UpdatePromptRequest carries a full replacement of a prompt's mutable fields
type UpdatePromptRequest struct {
	Title        string  `json:"title" validate:"required,min=1,max=200"`
	Content      string  `json:"content" validate:"required,min=1"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	CollectionID *string `json:"collection_id,omitempty" validate:"omitempty,uuid"`
}

// PatchPromptRequest carries a partial update; absent fields stay unchanged
type PatchPromptRequest struct {
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content      *string `json:"content,omitempty" validate:"omitempty,min=1"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	CollectionID *string `json:"collection_id,omitempty" validate:"omitempty,uuid"`
}

// ListPromptsRequest filters for listing prompts
// TagNames are ANDed; Search matches title and description case-insensitively
type ListPromptsRequest struct {
	TagNames     []string `json:"tags,omitempty"`
	CollectionID *string  `json:"collection_id,omitempty" validate:"omitempty,uuid"`
	Search       *string  `json:"search,omitempty"`
}

// PromptResponse is the API representation of a prompt
type PromptResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	Description  *string `json:"description,omitempty"`
	CollectionID *string `json:"collection_id,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// PromptListResponse returns prompts plus their total count
type PromptListResponse struct {
	Prompts []PromptResponse `json:"prompts"`
	Total   int              `json:"total"`
}

// PromptVariablesResponse lists the {{placeholder}} names found in a
// prompt's content
type PromptVariablesResponse struct {
	Variables []string `json:"variables"`
}
