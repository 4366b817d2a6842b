package dto

// CreateCollectionRequest carries data to create a new collection
type CreateCollectionRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// UpdateCollectionRequest carries a full replacement of a collection's fields
type UpdateCollectionRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// CollectionResponse is the API representation of a collection
type CollectionResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// CollectionListResponse returns collections plus their total count
type CollectionListResponse struct {
	Collections []CollectionResponse `json:"collections"`
	Total       int                  `json:"total"`
}
