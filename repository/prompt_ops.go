package repository

import (
	"bytes"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/promptlab/promptlab/models"
	"github.com/promptlab/promptlab/utils"
)

// CreatePrompt stores a new prompt. A non-nil collectionID must resolve to a
// live collection.
func (s *Store) CreatePrompt(title, content string, description *string, collectionID *uuid.UUID) (*models.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireCollectionRef(collectionID); err != nil {
		return nil, err
	}

	now := utils.UTCNow()
	p := &models.Prompt{
		ID:           uuid.New(),
		Title:        title,
		Content:      content,
		Description:  description,
		CollectionID: collectionID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.prompts.Put(p.ID, p)

	cp := *p
	return &cp, nil
}

// GetPrompt returns the prompt for id
func (s *Store) GetPrompt(id uuid.UUID) (*models.Prompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.prompts.Get(id)
	if p == nil {
		return nil, &NotFoundError{Kind: KindPrompt, ID: id}
	}
	cp := *p
	return &cp, nil
}

// ListPrompts applies the filter predicates in narrowing order: tag-name AND
// membership via the reverse index, collection equality, then the
// case-insensitive substring scan over title and description. Results are
// sorted created_at descending with id ascending as tiebreak.
func (s *Store) ListPrompts(filter models.PromptFilter) ([]*models.Prompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var candidates []*models.Prompt
	if len(filter.TagNames) > 0 {
		ids := s.candidatesByTagNames(filter.TagNames)
		candidates = make([]*models.Prompt, 0, len(ids))
		for id := range ids {
			if p := s.prompts.Get(id); p != nil {
				candidates = append(candidates, p)
			}
		}
	} else {
		candidates = s.prompts.All()
	}

	out := make([]*models.Prompt, 0, len(candidates))
	for _, p := range candidates {
		if filter.CollectionID != nil {
			if p.CollectionID == nil || *p.CollectionID != *filter.CollectionID {
				continue
			}
		}
		if filter.Search != nil && !matchesSearch(p, *filter.Search) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}

	sortPromptsNewestFirst(out)
	return out, nil
}

// PromptsByTags resolves each name case-insensitively and returns the prompts
// holding every named tag. An unresolved name yields an empty candidate set;
// an empty name list yields an empty result.
func (s *Store) PromptsByTags(tagNames []string) ([]*models.Prompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.candidatesByTagNames(tagNames)
	out := make([]*models.Prompt, 0, len(ids))
	for id := range ids {
		if p := s.prompts.Get(id); p != nil {
			cp := *p
			out = append(out, &cp)
		}
	}
	sortPromptsNewestFirst(out)
	return out, nil
}

// candidatesByTagNames resolves names and intersects the reverse index.
// Callers must hold the lock.
func (s *Store) candidatesByTagNames(tagNames []string) map[uuid.UUID]struct{} {
	if len(tagNames) == 0 {
		return nil
	}
	sets := make([]map[uuid.UUID]struct{}, 0, len(tagNames))
	for _, name := range tagNames {
		tagID, ok := s.tagNames[strings.ToLower(name)]
		if !ok {
			// Unresolved name contributes an empty set, not an error.
			sets = append(sets, nil)
			continue
		}
		sets = append(sets, s.index.tagToPrompts[tagID])
	}
	return intersect(sets)
}

// UpdatePrompt replaces every mutable field of the prompt
func (s *Store) UpdatePrompt(id uuid.UUID, title, content string, description *string, collectionID *uuid.UUID) (*models.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.prompts.Get(id)
	if existing == nil {
		return nil, &NotFoundError{Kind: KindPrompt, ID: id}
	}
	if err := s.requireCollectionRef(collectionID); err != nil {
		return nil, err
	}

	updated := &models.Prompt{
		ID:           existing.ID,
		Title:        title,
		Content:      content,
		Description:  description,
		CollectionID: collectionID,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    advance(existing.UpdatedAt),
	}
	s.prompts.Put(id, updated)

	cp := *updated
	return &cp, nil
}

// PatchPrompt applies only the provided fields; nil fields are left as they
// are. updated_at advances even when no field value actually changes.
func (s *Store) PatchPrompt(id uuid.UUID, patch models.PromptPatch) (*models.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.prompts.Get(id)
	if existing == nil {
		return nil, &NotFoundError{Kind: KindPrompt, ID: id}
	}
	if patch.CollectionID != nil {
		if err := s.requireCollectionRef(patch.CollectionID); err != nil {
			return nil, err
		}
	}

	updated := *existing
	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.Content != nil {
		updated.Content = *patch.Content
	}
	if patch.Description != nil {
		updated.Description = patch.Description
	}
	if patch.CollectionID != nil {
		updated.CollectionID = patch.CollectionID
	}
	updated.UpdatedAt = advance(existing.UpdatedAt)
	s.prompts.Put(id, &updated)

	cp := updated
	return &cp, nil
}

// DeletePrompt removes the prompt, its versions, and its tag associations in
// one atomic step. Returns false without side effects when id is unknown.
func (s *Store) DeletePrompt(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cascadeDelete(KindPrompt, id)
}

func matchesSearch(p *models.Prompt, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	return p.Description != nil && strings.Contains(strings.ToLower(*p.Description), q)
}

func sortPromptsNewestFirst(prompts []*models.Prompt) {
	sort.Slice(prompts, func(i, j int) bool {
		if !prompts[i].CreatedAt.Equal(prompts[j].CreatedAt) {
			return prompts[i].CreatedAt.After(prompts[j].CreatedAt)
		}
		return bytes.Compare(prompts[i].ID[:], prompts[j].ID[:]) < 0
	})
}

// advance returns the current UTC time, bumped past prev when the clock has
// not moved, so updated_at strictly increases on every successful update
func advance(prev time.Time) time.Time {
	now := utils.UTCNow()
	if !now.After(prev) {
		return prev.Add(time.Nanosecond)
	}
	return now
}
