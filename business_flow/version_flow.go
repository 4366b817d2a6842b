package businessflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/promptlab/promptlab/app/dto"
	"github.com/promptlab/promptlab/repository"
)

// VersionFlow defines the prompt version operations
type VersionFlow interface {
	CreateVersion(ctx context.Context, promptID uuid.UUID, req *dto.CreateVersionRequest) (*dto.VersionResponse, error)
	GetVersion(ctx context.Context, promptID, versionID uuid.UUID) (*dto.VersionResponse, error)
	ListVersions(ctx context.Context, promptID uuid.UUID) (*dto.VersionListResponse, error)
	RevertToVersion(ctx context.Context, promptID, versionID uuid.UUID, req *dto.RevertVersionRequest) (*dto.VersionResponse, error)
}

// VersionFlowImpl implements VersionFlow on the in-memory engine
type VersionFlowImpl struct {
	store *repository.Store
}

// NewVersionFlow creates a new version flow
func NewVersionFlow(store *repository.Store) VersionFlow {
	return &VersionFlowImpl{store: store}
}

func (f *VersionFlowImpl) CreateVersion(ctx context.Context, promptID uuid.UUID, req *dto.CreateVersionRequest) (*dto.VersionResponse, error) {
	v, err := f.store.CreateVersion(promptID, req.Title, req.Content, req.Description)
	if err != nil {
		return nil, fmt.Errorf("create version: %w", err)
	}

	out := ToVersionDTO(v)
	return &out, nil
}

func (f *VersionFlowImpl) GetVersion(ctx context.Context, promptID, versionID uuid.UUID) (*dto.VersionResponse, error) {
	v, err := f.store.GetVersion(promptID, versionID)
	if err != nil {
		return nil, fmt.Errorf("get version: %w", err)
	}

	out := ToVersionDTO(v)
	return &out, nil
}

// ListVersions returns a prompt's versions newest first
func (f *VersionFlowImpl) ListVersions(ctx context.Context, promptID uuid.UUID) (*dto.VersionListResponse, error) {
	versions, err := f.store.ListVersions(promptID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}

	items := make([]dto.VersionResponse, 0, len(versions))
	for _, v := range versions {
		items = append(items, ToVersionDTO(v))
	}
	return &dto.VersionListResponse{Versions: items, Total: len(items)}, nil
}

// RevertToVersion appends a new version copying the target's title and
// content; earlier versions are never mutated
func (f *VersionFlowImpl) RevertToVersion(ctx context.Context, promptID, versionID uuid.UUID, req *dto.RevertVersionRequest) (*dto.VersionResponse, error) {
	var description *string
	if req != nil {
		description = req.Description
	}

	v, err := f.store.Revert(promptID, versionID, description)
	if err != nil {
		return nil, fmt.Errorf("revert version: %w", err)
	}

	out := ToVersionDTO(v)
	return &out, nil
}
