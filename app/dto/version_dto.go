package dto

// CreateVersionRequest carries data to snapshot a prompt as a new version
type CreateVersionRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Content     string  `json:"content" validate:"required,min=1"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// RevertVersionRequest optionally overrides the generated revert description
type RevertVersionRequest struct {
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// VersionResponse is the API representation of a prompt version
type VersionResponse struct {
	ID            string  `json:"id"`
	PromptID      string  `json:"prompt_id"`
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	Description   *string `json:"description,omitempty"`
	VersionNumber int     `json:"version_number"`
	CreatedAt     string  `json:"created_at"`
}

// VersionListResponse returns versions plus their total count
type VersionListResponse struct {
	Versions []VersionResponse `json:"versions"`
	Total    int               `json:"total"`
}
