package businessflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/promptlab/promptlab/app/dto"
	"github.com/promptlab/promptlab/repository"
)

// CollectionFlow defines the collection lifecycle operations
type CollectionFlow interface {
	CreateCollection(ctx context.Context, req *dto.CreateCollectionRequest) (*dto.CollectionResponse, error)
	GetCollection(ctx context.Context, id uuid.UUID) (*dto.CollectionResponse, error)
	ListCollections(ctx context.Context) (*dto.CollectionListResponse, error)
	UpdateCollection(ctx context.Context, id uuid.UUID, req *dto.UpdateCollectionRequest) (*dto.CollectionResponse, error)
	DeleteCollection(ctx context.Context, id uuid.UUID) error
}

// CollectionFlowImpl implements CollectionFlow on the in-memory engine
type CollectionFlowImpl struct {
	store *repository.Store
}

// NewCollectionFlow creates a new collection flow
func NewCollectionFlow(store *repository.Store) CollectionFlow {
	return &CollectionFlowImpl{store: store}
}

func (f *CollectionFlowImpl) CreateCollection(ctx context.Context, req *dto.CreateCollectionRequest) (*dto.CollectionResponse, error) {
	c, err := f.store.CreateCollection(req.Name, req.Description)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	out := ToCollectionDTO(c)
	return &out, nil
}

func (f *CollectionFlowImpl) GetCollection(ctx context.Context, id uuid.UUID) (*dto.CollectionResponse, error) {
	c, err := f.store.GetCollection(id)
	if err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}

	out := ToCollectionDTO(c)
	return &out, nil
}

func (f *CollectionFlowImpl) ListCollections(ctx context.Context) (*dto.CollectionListResponse, error) {
	collections, err := f.store.ListCollections()
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	items := make([]dto.CollectionResponse, 0, len(collections))
	for _, c := range collections {
		items = append(items, ToCollectionDTO(c))
	}
	return &dto.CollectionListResponse{Collections: items, Total: len(items)}, nil
}

func (f *CollectionFlowImpl) UpdateCollection(ctx context.Context, id uuid.UUID, req *dto.UpdateCollectionRequest) (*dto.CollectionResponse, error) {
	c, err := f.store.UpdateCollection(id, req.Name, req.Description)
	if err != nil {
		return nil, fmt.Errorf("update collection: %w", err)
	}

	out := ToCollectionDTO(c)
	return &out, nil
}

// DeleteCollection removes the collection; prompts referencing it are
// orphaned, not deleted
func (f *CollectionFlowImpl) DeleteCollection(ctx context.Context, id uuid.UUID) error {
	if !f.store.DeleteCollection(id) {
		return &repository.NotFoundError{Kind: repository.KindCollection, ID: id}
	}
	return nil
}
