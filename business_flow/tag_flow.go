package businessflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/promptlab/promptlab/app/dto"
	"github.com/promptlab/promptlab/repository"
)

// TagFlow defines tag lifecycle and prompt association operations
type TagFlow interface {
	CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error)
	GetTag(ctx context.Context, id uuid.UUID) (*dto.TagResponse, error)
	ListTags(ctx context.Context) (*dto.TagListResponse, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
	AddTagToPrompt(ctx context.Context, promptID, tagID uuid.UUID) error
	RemoveTagFromPrompt(ctx context.Context, promptID, tagID uuid.UUID) error
	ListPromptTags(ctx context.Context, promptID uuid.UUID) (*dto.TagListResponse, error)
}

// TagFlowImpl implements TagFlow on the in-memory engine
type TagFlowImpl struct {
	store *repository.Store
}

// NewTagFlow creates a new tag flow
func NewTagFlow(store *repository.Store) TagFlow {
	return &TagFlowImpl{store: store}
}

func (f *TagFlowImpl) CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	t, err := f.store.CreateTag(req.Name, req.Description)
	if err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}

	out := ToTagDTO(t)
	return &out, nil
}

func (f *TagFlowImpl) GetTag(ctx context.Context, id uuid.UUID) (*dto.TagResponse, error) {
	t, err := f.store.GetTag(id)
	if err != nil {
		return nil, fmt.Errorf("get tag: %w", err)
	}

	out := ToTagDTO(t)
	return &out, nil
}

func (f *TagFlowImpl) ListTags(ctx context.Context) (*dto.TagListResponse, error) {
	tags, err := f.store.ListTags()
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	items := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		items = append(items, ToTagDTO(t))
	}
	return &dto.TagListResponse{Tags: items, Total: len(items)}, nil
}

func (f *TagFlowImpl) DeleteTag(ctx context.Context, id uuid.UUID) error {
	if !f.store.DeleteTag(id) {
		return &repository.NotFoundError{Kind: repository.KindTag, ID: id}
	}
	return nil
}

// AddTagToPrompt associates a tag with a prompt; adding an existing
// association succeeds as a no-op
func (f *TagFlowImpl) AddTagToPrompt(ctx context.Context, promptID, tagID uuid.UUID) error {
	if err := f.store.AddTag(promptID, tagID); err != nil {
		return fmt.Errorf("add tag: %w", err)
	}
	return nil
}

func (f *TagFlowImpl) RemoveTagFromPrompt(ctx context.Context, promptID, tagID uuid.UUID) error {
	if err := f.store.RemoveTag(promptID, tagID); err != nil {
		return fmt.Errorf("remove tag: %w", err)
	}
	return nil
}

// ListPromptTags returns a prompt's tags ordered by when each was attached
func (f *TagFlowImpl) ListPromptTags(ctx context.Context, promptID uuid.UUID) (*dto.TagListResponse, error) {
	tags, err := f.store.TagsForPrompt(promptID)
	if err != nil {
		return nil, fmt.Errorf("list prompt tags: %w", err)
	}

	items := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		items = append(items, ToTagDTO(t))
	}
	return &dto.TagListResponse{Tags: items, Total: len(items)}, nil
}
