// Package repository implements the in-memory data and query engine that owns
// prompts, collections, tags, and prompt versions.
package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// EntityKind identifies which entity an error refers to
type EntityKind string

const (
	KindPrompt        EntityKind = "prompt"
	KindCollection    EntityKind = "collection"
	KindTag           EntityKind = "tag"
	KindPromptVersion EntityKind = "prompt_version"
)

// NotFoundError reports that an entity was absent for a direct lookup,
// update, delete, or revert target
type NotFoundError struct {
	Kind EntityKind
	ID   uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ReferenceNotFoundError reports that a create/update referenced a missing
// related entity, e.g. a prompt's collection_id
type ReferenceNotFoundError struct {
	Kind EntityKind
	ID   uuid.UUID
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("referenced %s not found: %s", e.Kind, e.ID)
}

// AssociationNotFoundError reports a tag removal for a pairing that does not
// exist
type AssociationNotFoundError struct {
	PromptID uuid.UUID
	TagID    uuid.UUID
}

func (e *AssociationNotFoundError) Error() string {
	return fmt.Sprintf("association not found: prompt %s, tag %s", e.PromptID, e.TagID)
}

// ConflictError reports a uniqueness violation on the named field
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on %s", e.Field)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsNotFoundKind(err error, kind EntityKind) bool {
	var e *NotFoundError
	return errors.As(err, &e) && e.Kind == kind
}

func IsReferenceNotFound(err error) bool {
	var e *ReferenceNotFoundError
	return errors.As(err, &e)
}

func IsAssociationNotFound(err error) bool {
	var e *AssociationNotFoundError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}
