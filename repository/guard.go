package repository

import "github.com/google/uuid"

// Referential integrity checks. Every guard runs before any store mutation;
// a guard failure leaves all state untouched. Callers must hold the lock.

// requireCollectionRef verifies that a prompt's collection reference, when
// set, resolves to a live collection
func (s *Store) requireCollectionRef(collectionID *uuid.UUID) error {
	if collectionID == nil {
		return nil
	}
	if s.collections.Get(*collectionID) == nil {
		return &ReferenceNotFoundError{Kind: KindCollection, ID: *collectionID}
	}
	return nil
}

// requireAssociationEnds verifies that both sides of a prompt/tag association
// exist, reporting which side is missing
func (s *Store) requireAssociationEnds(promptID, tagID uuid.UUID) error {
	if s.prompts.Get(promptID) == nil {
		return &NotFoundError{Kind: KindPrompt, ID: promptID}
	}
	if s.tags.Get(tagID) == nil {
		return &NotFoundError{Kind: KindTag, ID: tagID}
	}
	return nil
}

// requirePrompt verifies that a prompt exists
func (s *Store) requirePrompt(promptID uuid.UUID) error {
	if s.prompts.Get(promptID) == nil {
		return &NotFoundError{Kind: KindPrompt, ID: promptID}
	}
	return nil
}
