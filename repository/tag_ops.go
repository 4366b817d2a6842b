package repository

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/promptlab/promptlab/models"
	"github.com/promptlab/promptlab/utils"
)

// CreateTag stores a new tag. Names are unique ignoring case; a second name
// normalizing to the same lower-case form fails with a conflict.
func (s *Store) CreateTag(name string, description *string) (*models.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := strings.ToLower(name)
	if _, exists := s.tagNames[normalized]; exists {
		return nil, &ConflictError{Field: "name"}
	}

	t := &models.Tag{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   utils.UTCNow(),
	}
	s.tags.Put(t.ID, t)
	s.tagNames[normalized] = t.ID

	cp := *t
	return &cp, nil
}

// GetTag returns the tag for id
func (s *Store) GetTag(id uuid.UUID) (*models.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.tags.Get(id)
	if t == nil {
		return nil, &NotFoundError{Kind: KindTag, ID: id}
	}
	cp := *t
	return &cp, nil
}

// ListTags returns every tag ordered by name, case-insensitively
func (s *Store) ListTags() ([]*models.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Tag, 0, s.tags.Len())
	for _, t := range s.tags.All() {
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

// DeleteTag removes the tag and every association referencing it, both index
// directions included; prompts themselves are unaffected. Returns false
// without side effects when id is unknown.
func (s *Store) DeleteTag(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cascadeDelete(KindTag, id)
}

// AddTag associates a tag with a prompt. Both sides must exist. Adding an
// existing association succeeds as a no-op.
func (s *Store) AddTag(promptID, tagID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAssociationEnds(promptID, tagID); err != nil {
		return err
	}

	key := associationKey{PromptID: promptID, TagID: tagID}
	if _, exists := s.associations[key]; exists {
		return nil
	}

	s.assocSeq++
	s.associations[key] = &models.PromptTag{
		PromptID:  promptID,
		TagID:     tagID,
		CreatedAt: utils.UTCNow(),
		Seq:       s.assocSeq,
	}
	s.index.add(promptID, tagID)
	return nil
}

// RemoveTag removes the association between a prompt and a tag. Both sides
// must exist; a missing prompt or tag is reported as such rather than as a
// missing association.
func (s *Store) RemoveTag(promptID, tagID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAssociationEnds(promptID, tagID); err != nil {
		return err
	}

	key := associationKey{PromptID: promptID, TagID: tagID}
	if _, exists := s.associations[key]; !exists {
		return &AssociationNotFoundError{PromptID: promptID, TagID: tagID}
	}

	delete(s.associations, key)
	s.index.remove(promptID, tagID)
	return nil
}

// TagsForPrompt returns the prompt's tags ordered by when each association
// was created, oldest first
func (s *Store) TagsForPrompt(promptID uuid.UUID) ([]*models.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requirePrompt(promptID); err != nil {
		return nil, err
	}

	assocs := make([]*models.PromptTag, 0)
	for _, tagID := range s.index.tagsOf(promptID) {
		if a := s.associations[associationKey{PromptID: promptID, TagID: tagID}]; a != nil {
			assocs = append(assocs, a)
		}
	}
	sort.Slice(assocs, func(i, j int) bool {
		if !assocs[i].CreatedAt.Equal(assocs[j].CreatedAt) {
			return assocs[i].CreatedAt.Before(assocs[j].CreatedAt)
		}
		return assocs[i].Seq < assocs[j].Seq
	})

	out := make([]*models.Tag, 0, len(assocs))
	for _, a := range assocs {
		if t := s.tags.Get(a.TagID); t != nil {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}
