package businessflow

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlab/promptlab/app/dto"
	"github.com/promptlab/promptlab/repository"
	"github.com/promptlab/promptlab/utils"
)

// flowSet bundles every flow over one shared store, the way main wires them
type flowSet struct {
	prompts     PromptFlow
	collections CollectionFlow
	tags        TagFlow
	versions    VersionFlow
}

func newFlowSet() flowSet {
	store := repository.NewStore()
	return flowSet{
		prompts:     NewPromptFlow(store),
		collections: NewCollectionFlow(store),
		tags:        NewTagFlow(store),
		versions:    NewVersionFlow(store),
	}
}

func TestPromptLifecycleEndToEnd(t *testing.T) {
	ctx := context.Background()
	flows := newFlowSet()

	collection, err := flows.collections.CreateCollection(ctx, &dto.CreateCollectionRequest{
		Name: "Writing",
	})
	require.NoError(t, err)

	prompt, err := flows.prompts.CreatePrompt(ctx, &dto.CreatePromptRequest{
		Title:        "Email draft",
		Content:      "Write an email about {{topic}} to {{recipient}}",
		CollectionID: &collection.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, prompt.CollectionID)
	assert.Equal(t, collection.ID, *prompt.CollectionID)

	t.Run("Variables", func(t *testing.T) {
		id := mustParse(t, prompt.ID)
		vars, err := flows.prompts.PromptVariables(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []string{"topic", "recipient"}, vars.Variables)
	})

	t.Run("TagAndSearch", func(t *testing.T) {
		x, err := flows.tags.CreateTag(ctx, &dto.CreateTagRequest{Name: "x"})
		require.NoError(t, err)
		y, err := flows.tags.CreateTag(ctx, &dto.CreateTagRequest{Name: "y"})
		require.NoError(t, err)

		promptID := mustParse(t, prompt.ID)
		require.NoError(t, flows.tags.AddTagToPrompt(ctx, promptID, mustParse(t, x.ID)))
		require.NoError(t, flows.tags.AddTagToPrompt(ctx, promptID, mustParse(t, y.ID)))

		list, err := flows.prompts.ListPrompts(ctx, &dto.ListPromptsRequest{TagNames: []string{"x", "y"}})
		require.NoError(t, err)
		require.Equal(t, 1, list.Total)
		assert.Equal(t, prompt.ID, list.Prompts[0].ID)

		attached, err := flows.tags.ListPromptTags(ctx, promptID)
		require.NoError(t, err)
		require.Equal(t, 2, attached.Total)
		assert.Equal(t, "x", attached.Tags[0].Name)
		assert.Equal(t, "y", attached.Tags[1].Name)
	})

	t.Run("VersionAndRevert", func(t *testing.T) {
		promptID := mustParse(t, prompt.ID)

		v1, err := flows.versions.CreateVersion(ctx, promptID, &dto.CreateVersionRequest{
			Title:   prompt.Title,
			Content: prompt.Content,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, v1.VersionNumber)

		updated, err := flows.prompts.UpdatePrompt(ctx, promptID, &dto.UpdatePromptRequest{
			Title:   prompt.Title,
			Content: "Shortened content",
		})
		require.NoError(t, err)
		assert.Equal(t, "Shortened content", updated.Content)

		v2, err := flows.versions.CreateVersion(ctx, promptID, &dto.CreateVersionRequest{
			Title:   updated.Title,
			Content: updated.Content,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, v2.VersionNumber)

		reverted, err := flows.versions.RevertToVersion(ctx, promptID, mustParse(t, v1.ID), nil)
		require.NoError(t, err)
		assert.Equal(t, 3, reverted.VersionNumber)
		assert.Equal(t, prompt.Content, reverted.Content)
		require.NotNil(t, reverted.Description)
		assert.Equal(t, "Reverted to version 1", *reverted.Description)

		history, err := flows.versions.ListVersions(ctx, promptID)
		require.NoError(t, err)
		assert.Equal(t, 3, history.Total)
		assert.Equal(t, 3, history.Versions[0].VersionNumber)
	})

	t.Run("CollectionDeleteOrphans", func(t *testing.T) {
		require.NoError(t, flows.collections.DeleteCollection(ctx, mustParse(t, collection.ID)))

		got, err := flows.prompts.GetPrompt(ctx, mustParse(t, prompt.ID))
		require.NoError(t, err)
		assert.Nil(t, got.CollectionID)
	})

	t.Run("PromptDeleteCascades", func(t *testing.T) {
		promptID := mustParse(t, prompt.ID)
		require.NoError(t, flows.prompts.DeletePrompt(ctx, promptID))

		_, err := flows.prompts.GetPrompt(ctx, promptID)
		assert.True(t, repository.IsNotFound(err))

		_, err = flows.versions.ListVersions(ctx, promptID)
		assert.True(t, repository.IsNotFound(err))

		// Tags themselves outlive the prompt.
		tags, err := flows.tags.ListTags(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, tags.Total)
	})
}

func TestCreatePromptValidation(t *testing.T) {
	ctx := context.Background()
	flows := newFlowSet()

	t.Run("UnknownCollectionIsReferenceError", func(t *testing.T) {
		_, err := flows.prompts.CreatePrompt(ctx, &dto.CreatePromptRequest{
			Title:        "Dangling",
			Content:      "Body",
			CollectionID: utils.ToPtr(uuid.NewString()),
		})
		require.Error(t, err)
		assert.True(t, repository.IsReferenceNotFound(err))
	})

	t.Run("MalformedCollectionID", func(t *testing.T) {
		_, err := flows.prompts.CreatePrompt(ctx, &dto.CreatePromptRequest{
			Title:        "Bad ref",
			Content:      "Body",
			CollectionID: utils.ToPtr("not-a-uuid"),
		})
		require.Error(t, err)
	})
}

func TestTagFlowConflict(t *testing.T) {
	ctx := context.Background()
	flows := newFlowSet()

	_, err := flows.tags.CreateTag(ctx, &dto.CreateTagRequest{Name: "Email"})
	require.NoError(t, err)

	_, err = flows.tags.CreateTag(ctx, &dto.CreateTagRequest{Name: "email"})
	require.Error(t, err)
	assert.True(t, repository.IsConflict(err))
}

func mustParse(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}
