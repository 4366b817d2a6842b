package repository

import "github.com/google/uuid"

// tagIndex is the bidirectional reverse index between tags and prompts.
// Both directions are maintained incrementally on every association change,
// never recomputed per query.
type tagIndex struct {
	tagToPrompts map[uuid.UUID]map[uuid.UUID]struct{}
	promptToTags map[uuid.UUID]map[uuid.UUID]struct{}
}

func newTagIndex() *tagIndex {
	return &tagIndex{
		tagToPrompts: make(map[uuid.UUID]map[uuid.UUID]struct{}),
		promptToTags: make(map[uuid.UUID]map[uuid.UUID]struct{}),
	}
}

func (ix *tagIndex) add(promptID, tagID uuid.UUID) {
	prompts := ix.tagToPrompts[tagID]
	if prompts == nil {
		prompts = make(map[uuid.UUID]struct{})
		ix.tagToPrompts[tagID] = prompts
	}
	prompts[promptID] = struct{}{}

	tags := ix.promptToTags[promptID]
	if tags == nil {
		tags = make(map[uuid.UUID]struct{})
		ix.promptToTags[promptID] = tags
	}
	tags[tagID] = struct{}{}
}

func (ix *tagIndex) remove(promptID, tagID uuid.UUID) {
	if prompts, ok := ix.tagToPrompts[tagID]; ok {
		delete(prompts, promptID)
		if len(prompts) == 0 {
			delete(ix.tagToPrompts, tagID)
		}
	}
	if tags, ok := ix.promptToTags[promptID]; ok {
		delete(tags, tagID)
		if len(tags) == 0 {
			delete(ix.promptToTags, promptID)
		}
	}
}

func (ix *tagIndex) has(promptID, tagID uuid.UUID) bool {
	_, ok := ix.promptToTags[promptID][tagID]
	return ok
}

func (ix *tagIndex) tagsOf(promptID uuid.UUID) []uuid.UUID {
	tags := ix.promptToTags[promptID]
	out := make([]uuid.UUID, 0, len(tags))
	for id := range tags {
		out = append(out, id)
	}
	return out
}

func (ix *tagIndex) promptsOf(tagID uuid.UUID) []uuid.UUID {
	prompts := ix.tagToPrompts[tagID]
	out := make([]uuid.UUID, 0, len(prompts))
	for id := range prompts {
		out = append(out, id)
	}
	return out
}

// intersect returns the prompt ids present in every candidate set. It walks
// the smallest set and probes the others, so each step costs the size of the
// smallest candidate set rather than the total number of associations.
// A nil entry in sets means one tag had no prompts; the result is empty.
func intersect(sets []map[uuid.UUID]struct{}) map[uuid.UUID]struct{} {
	if len(sets) == 0 {
		return nil
	}
	smallest := sets[0]
	for _, set := range sets[1:] {
		if len(set) < len(smallest) {
			smallest = set
		}
	}
	if len(smallest) == 0 {
		return nil
	}

	out := make(map[uuid.UUID]struct{}, len(smallest))
candidates:
	for id := range smallest {
		for _, set := range sets {
			if _, ok := set[id]; !ok {
				continue candidates
			}
		}
		out[id] = struct{}{}
	}
	return out
}
