package repository

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
	"github.com/promptlab/promptlab/models"
	"github.com/promptlab/promptlab/utils"
)

// CreateCollection stores a new collection
func (s *Store) CreateCollection(name string, description *string) (*models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &models.Collection{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   utils.UTCNow(),
	}
	s.collections.Put(c.ID, c)

	cp := *c
	return &cp, nil
}

// GetCollection returns the collection for id
func (s *Store) GetCollection(id uuid.UUID) (*models.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.collections.Get(id)
	if c == nil {
		return nil, &NotFoundError{Kind: KindCollection, ID: id}
	}
	cp := *c
	return &cp, nil
}

// ListCollections returns every collection, newest first with id ascending
// as tiebreak
func (s *Store) ListCollections() ([]*models.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Collection, 0, s.collections.Len())
	for _, c := range s.collections.All() {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return bytes.Compare(out[i].ID[:], out[j].ID[:]) < 0
	})
	return out, nil
}

// UpdateCollection replaces the collection's name and description
func (s *Store) UpdateCollection(id uuid.UUID, name string, description *string) (*models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.collections.Get(id)
	if existing == nil {
		return nil, &NotFoundError{Kind: KindCollection, ID: id}
	}

	updated := &models.Collection{
		ID:          existing.ID,
		Name:        name,
		Description: description,
		CreatedAt:   existing.CreatedAt,
	}
	s.collections.Put(id, updated)

	cp := *updated
	return &cp, nil
}

// DeleteCollection removes the collection and orphans every prompt that
// referenced it by nulling the prompt's collection_id; prompts themselves
// survive. Returns false without side effects when id is unknown.
func (s *Store) DeleteCollection(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cascadeDelete(KindCollection, id)
}
