// Package testing provides test utilities and fixture builders for the prompt engine
package testing

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/promptlab/promptlab/models"
	"github.com/promptlab/promptlab/repository"
	"github.com/promptlab/promptlab/utils"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	Store *repository.Store
}

// NewTestFixtures creates a new test fixtures instance backed by a fresh store
func NewTestFixtures() *TestFixtures {
	return &TestFixtures{Store: repository.NewStore()}
}

// CreateTestCollection creates a collection with a randomized name
func (tf *TestFixtures) CreateTestCollection() (*models.Collection, error) {
	collection, err := tf.Store.CreateCollection(
		fmt.Sprintf("Collection %04d", rand.Intn(10000)),
		utils.ToPtr("A collection for testing"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create test collection: %w", err)
	}
	return collection, nil
}

// CreateTestPrompt creates a prompt, optionally inside the given collection
func (tf *TestFixtures) CreateTestPrompt(collection *models.Collection) (*models.Prompt, error) {
	var collectionID *uuid.UUID
	if collection != nil {
		collectionID = utils.ToPtr(collection.ID)
	}

	prompt, err := tf.Store.CreatePrompt(
		fmt.Sprintf("Prompt %04d", rand.Intn(10000)),
		"Summarize {{document}} in {{style}} style.",
		utils.ToPtr("A prompt for testing"),
		collectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create test prompt: %w", err)
	}
	return prompt, nil
}

// CreateTestTag creates a tag with a randomized name
func (tf *TestFixtures) CreateTestTag() (*models.Tag, error) {
	tag, err := tf.Store.CreateTag(fmt.Sprintf("tag-%06d", rand.Intn(1000000)), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create test tag: %w", err)
	}
	return tag, nil
}

// CreateTaggedPrompt creates a prompt with the given tag names attached
func (tf *TestFixtures) CreateTaggedPrompt(tagNames ...string) (*models.Prompt, []*models.Tag, error) {
	prompt, err := tf.CreateTestPrompt(nil)
	if err != nil {
		return nil, nil, err
	}

	tags := make([]*models.Tag, 0, len(tagNames))
	for _, name := range tagNames {
		tag, err := tf.Store.CreateTag(name, nil)
		if err != nil {
			if !repository.IsConflict(err) {
				return nil, nil, fmt.Errorf("failed to create tag %s: %w", name, err)
			}
			tag, err = tf.findTagByName(name)
			if err != nil {
				return nil, nil, err
			}
		}
		if err := tf.Store.AddTag(prompt.ID, tag.ID); err != nil {
			return nil, nil, fmt.Errorf("failed to attach tag %s: %w", name, err)
		}
		tags = append(tags, tag)
	}

	return prompt, tags, nil
}

// CreateVersionHistory snapshots n numbered revisions of a prompt
func (tf *TestFixtures) CreateVersionHistory(prompt *models.Prompt, n int) ([]*models.PromptVersion, error) {
	versions := make([]*models.PromptVersion, 0, n)
	for i := 0; i < n; i++ {
		version, err := tf.Store.CreateVersion(
			prompt.ID,
			prompt.Title,
			fmt.Sprintf("%s (rev %d)", prompt.Content, i+1),
			utils.ToPtr(fmt.Sprintf("Snapshot %d", i+1)),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create version: %w", err)
		}
		versions = append(versions, version)
	}
	return versions, nil
}

func (tf *TestFixtures) findTagByName(name string) (*models.Tag, error) {
	tags, err := tf.Store.ListTags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	for _, tag := range tags {
		if tag.Name == name {
			return tag, nil
		}
	}
	return nil, fmt.Errorf("tag %s not found", name)
}
