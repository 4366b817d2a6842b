package businessflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/promptlab/promptlab/app/dto"
	"github.com/promptlab/promptlab/models"
	"github.com/promptlab/promptlab/repository"
	"github.com/promptlab/promptlab/utils"
)

// PromptFlow defines the prompt lifecycle operations
type PromptFlow interface {
	CreatePrompt(ctx context.Context, req *dto.CreatePromptRequest) (*dto.PromptResponse, error)
	GetPrompt(ctx context.Context, id uuid.UUID) (*dto.PromptResponse, error)
	ListPrompts(ctx context.Context, req *dto.ListPromptsRequest) (*dto.PromptListResponse, error)
	UpdatePrompt(ctx context.Context, id uuid.UUID, req *dto.UpdatePromptRequest) (*dto.PromptResponse, error)
	PatchPrompt(ctx context.Context, id uuid.UUID, req *dto.PatchPromptRequest) (*dto.PromptResponse, error)
	DeletePrompt(ctx context.Context, id uuid.UUID) error
	PromptVariables(ctx context.Context, id uuid.UUID) (*dto.PromptVariablesResponse, error)
}

// PromptFlowImpl implements PromptFlow on the in-memory engine
type PromptFlowImpl struct {
	store *repository.Store
}

// NewPromptFlow creates a new prompt flow
func NewPromptFlow(store *repository.Store) PromptFlow {
	return &PromptFlowImpl{store: store}
}

func (f *PromptFlowImpl) CreatePrompt(ctx context.Context, req *dto.CreatePromptRequest) (*dto.PromptResponse, error) {
	collectionID, err := parseOptionalID(req.CollectionID)
	if err != nil {
		return nil, err
	}

	p, err := f.store.CreatePrompt(req.Title, req.Content, req.Description, collectionID)
	if err != nil {
		return nil, fmt.Errorf("create prompt: %w", err)
	}

	out := ToPromptDTO(p)
	return &out, nil
}

func (f *PromptFlowImpl) GetPrompt(ctx context.Context, id uuid.UUID) (*dto.PromptResponse, error) {
	p, err := f.store.GetPrompt(id)
	if err != nil {
		return nil, fmt.Errorf("get prompt: %w", err)
	}

	out := ToPromptDTO(p)
	return &out, nil
}

func (f *PromptFlowImpl) ListPrompts(ctx context.Context, req *dto.ListPromptsRequest) (*dto.PromptListResponse, error) {
	collectionID, err := parseOptionalID(req.CollectionID)
	if err != nil {
		return nil, err
	}

	prompts, err := f.store.ListPrompts(models.PromptFilter{
		TagNames:     req.TagNames,
		CollectionID: collectionID,
		Search:       req.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}

	items := make([]dto.PromptResponse, 0, len(prompts))
	for _, p := range prompts {
		items = append(items, ToPromptDTO(p))
	}
	return &dto.PromptListResponse{Prompts: items, Total: len(items)}, nil
}

func (f *PromptFlowImpl) UpdatePrompt(ctx context.Context, id uuid.UUID, req *dto.UpdatePromptRequest) (*dto.PromptResponse, error) {
	collectionID, err := parseOptionalID(req.CollectionID)
	if err != nil {
		return nil, err
	}

	p, err := f.store.UpdatePrompt(id, req.Title, req.Content, req.Description, collectionID)
	if err != nil {
		return nil, fmt.Errorf("update prompt: %w", err)
	}

	out := ToPromptDTO(p)
	return &out, nil
}

func (f *PromptFlowImpl) PatchPrompt(ctx context.Context, id uuid.UUID, req *dto.PatchPromptRequest) (*dto.PromptResponse, error) {
	collectionID, err := parseOptionalID(req.CollectionID)
	if err != nil {
		return nil, err
	}

	p, err := f.store.PatchPrompt(id, models.PromptPatch{
		Title:        req.Title,
		Content:      req.Content,
		Description:  req.Description,
		CollectionID: collectionID,
	})
	if err != nil {
		return nil, fmt.Errorf("patch prompt: %w", err)
	}

	out := ToPromptDTO(p)
	return &out, nil
}

func (f *PromptFlowImpl) DeletePrompt(ctx context.Context, id uuid.UUID) error {
	if !f.store.DeletePrompt(id) {
		return &repository.NotFoundError{Kind: repository.KindPrompt, ID: id}
	}
	return nil
}

func (f *PromptFlowImpl) PromptVariables(ctx context.Context, id uuid.UUID) (*dto.PromptVariablesResponse, error) {
	p, err := f.store.GetPrompt(id)
	if err != nil {
		return nil, fmt.Errorf("get prompt: %w", err)
	}
	return &dto.PromptVariablesResponse{Variables: utils.ExtractVariables(p.Content)}, nil
}

// parseOptionalID parses a request's optional UUID string. The API layer has
// already validated the format, so a parse failure here is a programming
// error surfaced as a plain error.
func parseOptionalID(raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, fmt.Errorf("parse id %q: %w", *raw, err)
	}
	return &id, nil
}
