package repository

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/promptlab/promptlab/models"
	"github.com/promptlab/promptlab/utils"
)

// nextVersionNumber returns last assigned number + 1, or 1 for a prompt with
// no versions. Chains are append-only and only removed whole, so the last
// element always carries the max. Callers must hold the write lock so the
// computed number and the insertion it enables are one atomic step.
func (s *Store) nextVersionNumber(promptID uuid.UUID) int {
	chain := s.chains[promptID]
	if len(chain) == 0 {
		return 1
	}
	return chain[len(chain)-1].VersionNumber + 1
}

// appendVersion assigns the next number and links the version into the
// prompt's chain. Callers must hold the write lock.
func (s *Store) appendVersion(promptID uuid.UUID, title, content string, description *string) *models.PromptVersion {
	v := &models.PromptVersion{
		ID:            uuid.New(),
		PromptID:      promptID,
		Title:         title,
		Content:       content,
		Description:   description,
		VersionNumber: s.nextVersionNumber(promptID),
		CreatedAt:     utils.UTCNow(),
	}
	s.versions.Put(v.ID, v)
	s.chains[promptID] = append(s.chains[promptID], v)
	return v
}

// CreateVersion appends an immutable snapshot with the next version number.
// The live prompt's fields are not touched; the version log and the prompt
// stay independent until a revert or update changes the prompt.
func (s *Store) CreateVersion(promptID uuid.UUID, title, content string, description *string) (*models.PromptVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requirePrompt(promptID); err != nil {
		return nil, err
	}

	v := s.appendVersion(promptID, title, content, description)
	cp := *v
	return &cp, nil
}

// GetVersion returns the version for versionID. A version that exists but
// belongs to a different prompt is reported as not found.
func (s *Store) GetVersion(promptID, versionID uuid.UUID) (*models.PromptVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.versions.Get(versionID)
	if v == nil || v.PromptID != promptID {
		return nil, &NotFoundError{Kind: KindPromptVersion, ID: versionID}
	}
	cp := *v
	return &cp, nil
}

// ListVersions returns the prompt's versions ordered by version number
// descending, newest first
func (s *Store) ListVersions(promptID uuid.UUID) ([]*models.PromptVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requirePrompt(promptID); err != nil {
		return nil, err
	}

	chain := s.chains[promptID]
	out := make([]*models.PromptVersion, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		cp := *chain[i]
		out = append(out, &cp)
	}
	return out, nil
}

// Revert appends a new version copying the target version's title and
// content. History is never mutated; reverting to the current latest simply
// produces a duplicate-content version under a new number. The description
// defaults to "Reverted to version {n}" unless the caller supplies one.
func (s *Store) Revert(promptID, versionID uuid.UUID, description *string) (*models.PromptVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.versions.Get(versionID)
	if target == nil || target.PromptID != promptID {
		return nil, &NotFoundError{Kind: KindPromptVersion, ID: versionID}
	}

	if description == nil {
		description = utils.ToPtr(fmt.Sprintf("Reverted to version %d", target.VersionNumber))
	}

	v := s.appendVersion(promptID, target.Title, target.Content, description)
	cp := *v
	return &cp, nil
}
