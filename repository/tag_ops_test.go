package repository_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlab/promptlab/repository"
	testingutil "github.com/promptlab/promptlab/testing"
)

func TestCreateTag(t *testing.T) {
	fixtures := testingutil.NewTestFixtures()
	store := fixtures.Store

	t.Run("Creates", func(t *testing.T) {
		tag, err := store.CreateTag("summarization", nil)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, tag.ID)
		assert.Equal(t, "summarization", tag.Name)
	})

	t.Run("CaseInsensitiveNameConflict", func(t *testing.T) {
		_, err := store.CreateTag("Email", nil)
		require.NoError(t, err)

		_, err = store.CreateTag("email", nil)
		require.Error(t, err)
		assert.True(t, repository.IsConflict(err))
	})

	t.Run("OriginalCasingPreserved", func(t *testing.T) {
		tag, err := store.CreateTag("CodeGen", nil)
		require.NoError(t, err)
		assert.Equal(t, "CodeGen", tag.Name)
	})
}

func TestListTags(t *testing.T) {
	fixtures := testingutil.NewTestFixtures()
	store := fixtures.Store

	for _, name := range []string{"zeta", "Alpha", "beta"} {
		_, err := store.CreateTag(name, nil)
		require.NoError(t, err)
	}

	tags, err := store.ListTags()
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "Alpha", tags[0].Name)
	assert.Equal(t, "beta", tags[1].Name)
	assert.Equal(t, "zeta", tags[2].Name)
}

func TestAddTag(t *testing.T) {
	fixtures := testingutil.NewTestFixtures()
	store := fixtures.Store

	prompt, err := fixtures.CreateTestPrompt(nil)
	require.NoError(t, err)
	tag, err := fixtures.CreateTestTag()
	require.NoError(t, err)

	t.Run("Attaches", func(t *testing.T) {
		require.NoError(t, store.AddTag(prompt.ID, tag.ID))

		tags, err := store.TagsForPrompt(prompt.ID)
		require.NoError(t, err)
		require.Len(t, tags, 1)
		assert.Equal(t, tag.ID, tags[0].ID)
	})

	t.Run("IdempotentReattach", func(t *testing.T) {
		require.NoError(t, store.AddTag(prompt.ID, tag.ID))

		tags, err := store.TagsForPrompt(prompt.ID)
		require.NoError(t, err)
		assert.Len(t, tags, 1)
	})

	t.Run("UnknownPrompt", func(t *testing.T) {
		err := store.AddTag(uuid.New(), tag.ID)
		assert.True(t, repository.IsNotFoundKind(err, repository.KindPrompt))
	})

	t.Run("UnknownTag", func(t *testing.T) {
		err := store.AddTag(prompt.ID, uuid.New())
		assert.True(t, repository.IsNotFoundKind(err, repository.KindTag))
	})
}

func TestAddTagConcurrent(t *testing.T) {
	fixtures := testingutil.NewTestFixtures()
	store := fixtures.Store

	prompt, err := fixtures.CreateTestPrompt(nil)
	require.NoError(t, err)
	tag, err := fixtures.CreateTestTag()
	require.NoError(t, err)

	const workers = 32

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.AddTag(prompt.ID, tag.ID))
		}()
	}
	wg.Wait()

	// Racing attachments of the same pair must collapse to one association.
	tags, err := store.TagsForPrompt(prompt.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, tag.ID, tags[0].ID)
}

func TestRemoveTag(t *testing.T) {
	fixtures := testingutil.NewTestFixtures()
	store := fixtures.Store

	prompt, tags, err := fixtures.CreateTaggedPrompt("x", "y")
	require.NoError(t, err)

	t.Run("Detaches", func(t *testing.T) {
		require.NoError(t, store.RemoveTag(prompt.ID, tags[0].ID))

		remaining, err := store.TagsForPrompt(prompt.ID)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, tags[1].ID, remaining[0].ID)
	})

	t.Run("MissingAssociation", func(t *testing.T) {
		err := store.RemoveTag(prompt.ID, tags[0].ID)
		require.Error(t, err)
		assert.True(t, repository.IsAssociationNotFound(err))

		// The failed detach must not disturb the remaining association.
		remaining, err := store.TagsForPrompt(prompt.ID)
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})

	t.Run("UnknownPrompt", func(t *testing.T) {
		err := store.RemoveTag(uuid.New(), tags[1].ID)
		assert.True(t, repository.IsNotFoundKind(err, repository.KindPrompt))
	})

	t.Run("UnknownTag", func(t *testing.T) {
		err := store.RemoveTag(prompt.ID, uuid.New())
		assert.True(t, repository.IsNotFoundKind(err, repository.KindTag))
	})
}

func TestTagsForPrompt(t *testing.T) {
	fixtures := testingutil.NewTestFixtures()
	store := fixtures.Store

	t.Run("AttachmentOrder", func(t *testing.T) {
		prompt, tags, err := fixtures.CreateTaggedPrompt("first", "second", "third")
		require.NoError(t, err)

		got, err := store.TagsForPrompt(prompt.ID)
		require.NoError(t, err)
		require.Len(t, got, 3)
		for i, tag := range tags {
			assert.Equal(t, tag.ID, got[i].ID)
		}
	})

	t.Run("UnknownPrompt", func(t *testing.T) {
		_, err := store.TagsForPrompt(uuid.New())
		assert.True(t, repository.IsNotFoundKind(err, repository.KindPrompt))
	})
}

func TestPromptsByTags(t *testing.T) {
	fixtures := testingutil.NewTestFixtures()
	store := fixtures.Store

	both, _, err := fixtures.CreateTaggedPrompt("x", "y")
	require.NoError(t, err)
	onlyX, _, err := fixtures.CreateTaggedPrompt("x")
	require.NoError(t, err)

	t.Run("SingleTag", func(t *testing.T) {
		prompts, err := store.PromptsByTags([]string{"x"})
		require.NoError(t, err)
		assert.Len(t, prompts, 2)
	})

	t.Run("IntersectionOfTwoTags", func(t *testing.T) {
		prompts, err := store.PromptsByTags([]string{"x", "y"})
		require.NoError(t, err)
		require.Len(t, prompts, 1)
		assert.Equal(t, both.ID, prompts[0].ID)
	})

	t.Run("NamesResolveCaseInsensitively", func(t *testing.T) {
		prompts, err := store.PromptsByTags([]string{"X", "Y"})
		require.NoError(t, err)
		require.Len(t, prompts, 1)
		assert.Equal(t, both.ID, prompts[0].ID)
	})

	t.Run("UnresolvedNameYieldsEmpty", func(t *testing.T) {
		prompts, err := store.PromptsByTags([]string{"x", "nonexistent"})
		require.NoError(t, err)
		assert.Empty(t, prompts)
	})

	t.Run("EmptyNameList", func(t *testing.T) {
		prompts, err := store.PromptsByTags(nil)
		require.NoError(t, err)
		assert.Empty(t, prompts)
	})

	t.Run("DetachedPromptDropsOut", func(t *testing.T) {
		tags, err := store.TagsForPrompt(onlyX.ID)
		require.NoError(t, err)
		require.Len(t, tags, 1)
		require.NoError(t, store.RemoveTag(onlyX.ID, tags[0].ID))

		prompts, err := store.PromptsByTags([]string{"x"})
		require.NoError(t, err)
		require.Len(t, prompts, 1)
		assert.Equal(t, both.ID, prompts[0].ID)
	})
}
