package repository

import (
	"sync"

	"github.com/google/uuid"
	"github.com/promptlab/promptlab/models"
)

// associationKey is the compound key of a prompt/tag association
type associationKey struct {
	PromptID uuid.UUID
	TagID    uuid.UUID
}

// Store is the in-memory engine owning all prompt, collection, tag, and
// version state. One mutex serializes every operation that reads state to
// decide a subsequent write, so version numbers never collide, tag-adds never
// duplicate, and cascades are all-or-nothing. Construct one per logical
// instance; there is no process-wide singleton.
type Store struct {
	mu sync.RWMutex

	prompts     *entityStore[models.Prompt]
	collections *entityStore[models.Collection]
	tags        *entityStore[models.Tag]
	versions    *entityStore[models.PromptVersion]

	// lower-cased tag name -> tag id, backing the case-insensitive
	// uniqueness rule and name resolution for searches
	tagNames map[string]uuid.UUID

	index        *tagIndex
	associations map[associationKey]*models.PromptTag
	assocSeq     uint64

	// prompt id -> versions ordered by version number ascending
	chains map[uuid.UUID][]*models.PromptVersion
}

// NewStore creates an empty engine instance
func NewStore() *Store {
	return &Store{
		prompts:      newEntityStore[models.Prompt](),
		collections:  newEntityStore[models.Collection](),
		tags:         newEntityStore[models.Tag](),
		versions:     newEntityStore[models.PromptVersion](),
		tagNames:     make(map[string]uuid.UUID),
		index:        newTagIndex(),
		associations: make(map[associationKey]*models.PromptTag),
		chains:       make(map[uuid.UUID][]*models.PromptVersion),
	}
}
