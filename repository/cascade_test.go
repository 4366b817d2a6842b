package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlab/promptlab/repository"
	testingutil "github.com/promptlab/promptlab/testing"
)

func TestDeletePromptCascade(t *testing.T) {
	fixtures := testingutil.NewTestFixtures()
	store := fixtures.Store

	prompt, tags, err := fixtures.CreateTaggedPrompt("a", "b")
	require.NoError(t, err)
	versions, err := fixtures.CreateVersionHistory(prompt, 3)
	require.NoError(t, err)

	require.True(t, store.DeletePrompt(prompt.ID))

	t.Run("VersionsGone", func(t *testing.T) {
		for _, v := range versions {
			_, err := store.GetVersion(prompt.ID, v.ID)
			assert.True(t, repository.IsNotFound(err))
		}
	})

	t.Run("AssociationsGone", func(t *testing.T) {
		for _, tag := range tags {
			prompts, err := store.PromptsByTags([]string{tag.Name})
			require.NoError(t, err)
			assert.Empty(t, prompts)
		}
	})

	t.Run("TagsSurvive", func(t *testing.T) {
		for _, tag := range tags {
			got, err := store.GetTag(tag.ID)
			require.NoError(t, err)
			assert.Equal(t, tag.Name, got.Name)
		}
	})

	t.Run("SearchIndexCleaned", func(t *testing.T) {
		prompts, err := store.PromptsByTags([]string{"a"})
		require.NoError(t, err)
		assert.Empty(t, prompts)
	})
}

func TestDeleteTagCascade(t *testing.T) {
	fixtures := testingutil.NewTestFixtures()
	store := fixtures.Store

	prompt, tags, err := fixtures.CreateTaggedPrompt("a", "b")
	require.NoError(t, err)

	require.True(t, store.DeleteTag(tags[0].ID))

	t.Run("PromptSurvivesWithRemainingTag", func(t *testing.T) {
		got, err := store.TagsForPrompt(prompt.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, tags[1].ID, got[0].ID)
	})

	t.Run("NameFreedForReuse", func(t *testing.T) {
		recreated, err := store.CreateTag("a", nil)
		require.NoError(t, err)
		assert.NotEqual(t, tags[0].ID, recreated.ID)
	})

	t.Run("SearchIndexCleaned", func(t *testing.T) {
		prompts, err := store.PromptsByTags([]string{"b"})
		require.NoError(t, err)
		require.Len(t, prompts, 1)
		assert.Equal(t, prompt.ID, prompts[0].ID)
	})
}

func TestDeleteCollectionOrphansPrompts(t *testing.T) {
	fixtures := testingutil.NewTestFixtures()
	store := fixtures.Store

	collection, err := fixtures.CreateTestCollection()
	require.NoError(t, err)
	prompt, err := fixtures.CreateTestPrompt(collection)
	require.NoError(t, err)
	require.NotNil(t, prompt.CollectionID)

	require.True(t, store.DeleteCollection(collection.ID))

	t.Run("PromptSurvivesOrphaned", func(t *testing.T) {
		got, err := store.GetPrompt(prompt.ID)
		require.NoError(t, err)
		assert.Nil(t, got.CollectionID)
		assert.Equal(t, prompt.Content, got.Content)
	})

	t.Run("CollectionGone", func(t *testing.T) {
		_, err := store.GetCollection(collection.ID)
		assert.True(t, repository.IsNotFoundKind(err, repository.KindCollection))
	})
}
