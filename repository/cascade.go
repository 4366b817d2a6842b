package repository

import "github.com/google/uuid"

// Cascade-delete policy. Each deletable entity maps to the ordered actions
// run when it is removed; the whole sequence executes under the engine's
// write lock, so readers see either the full effect or none of it.
//
//	Prompt:     drop its associations (both index directions), drop its
//	            versions, remove the prompt
//	Collection: null collection_id on referencing prompts, remove the
//	            collection
//	Tag:        drop its associations (both index directions), remove the tag

type cascadeAction func(s *Store, id uuid.UUID)

var cascadePolicy = map[EntityKind][]cascadeAction{
	KindPrompt: {
		(*Store).dropPromptAssociations,
		(*Store).dropPromptVersions,
		func(s *Store, id uuid.UUID) { s.prompts.Delete(id) },
	},
	KindCollection: {
		(*Store).orphanCollectionPrompts,
		func(s *Store, id uuid.UUID) { s.collections.Delete(id) },
	},
	KindTag: {
		(*Store).dropTagAssociations,
		(*Store).dropTagName,
		func(s *Store, id uuid.UUID) { s.tags.Delete(id) },
	},
}

// cascadeDelete runs the policy for kind. Returns false, with no side
// effects, when the target does not exist. Callers must hold the write lock.
func (s *Store) cascadeDelete(kind EntityKind, id uuid.UUID) bool {
	switch kind {
	case KindPrompt:
		if s.prompts.Get(id) == nil {
			return false
		}
	case KindCollection:
		if s.collections.Get(id) == nil {
			return false
		}
	case KindTag:
		if s.tags.Get(id) == nil {
			return false
		}
	default:
		return false
	}

	for _, action := range cascadePolicy[kind] {
		action(s, id)
	}
	return true
}

func (s *Store) dropPromptAssociations(promptID uuid.UUID) {
	for _, tagID := range s.index.tagsOf(promptID) {
		delete(s.associations, associationKey{PromptID: promptID, TagID: tagID})
		s.index.remove(promptID, tagID)
	}
}

func (s *Store) dropTagAssociations(tagID uuid.UUID) {
	for _, promptID := range s.index.promptsOf(tagID) {
		delete(s.associations, associationKey{PromptID: promptID, TagID: tagID})
		s.index.remove(promptID, tagID)
	}
}

func (s *Store) dropTagName(tagID uuid.UUID) {
	for name, id := range s.tagNames {
		if id == tagID {
			delete(s.tagNames, name)
			return
		}
	}
}

func (s *Store) dropPromptVersions(promptID uuid.UUID) {
	for _, v := range s.chains[promptID] {
		s.versions.Delete(v.ID)
	}
	delete(s.chains, promptID)
}

func (s *Store) orphanCollectionPrompts(collectionID uuid.UUID) {
	for _, p := range s.prompts.All() {
		if p.CollectionID != nil && *p.CollectionID == collectionID {
			orphaned := *p
			orphaned.CollectionID = nil
			s.prompts.Put(p.ID, &orphaned)
		}
	}
}
