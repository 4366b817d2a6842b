package repository_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlab/promptlab/repository"
	testingutil "github.com/promptlab/promptlab/testing"
	"github.com/promptlab/promptlab/utils"
)

func TestCollectionLifecycle(t *testing.T) {
	fixtures := testingutil.NewTestFixtures()
	store := fixtures.Store

	t.Run("Create", func(t *testing.T) {
		c, err := store.CreateCollection("Writing", utils.ToPtr("prompts for writing tasks"))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, c.ID)
		assert.Equal(t, "Writing", c.Name)

		got, err := store.GetCollection(c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)
	})

	t.Run("GetUnknown", func(t *testing.T) {
		_, err := store.GetCollection(uuid.New())
		assert.True(t, repository.IsNotFoundKind(err, repository.KindCollection))
	})

	t.Run("Update", func(t *testing.T) {
		c, err := store.CreateCollection("Old name", nil)
		require.NoError(t, err)

		updated, err := store.UpdateCollection(c.ID, "New name", utils.ToPtr("renamed"))
		require.NoError(t, err)
		assert.Equal(t, "New name", updated.Name)
		assert.Equal(t, c.CreatedAt, updated.CreatedAt)
	})

	t.Run("UpdateUnknown", func(t *testing.T) {
		_, err := store.UpdateCollection(uuid.New(), "Name", nil)
		assert.True(t, repository.IsNotFound(err))
	})

	t.Run("DeleteUnknownReturnsFalse", func(t *testing.T) {
		assert.False(t, store.DeleteCollection(uuid.New()))
	})
}

func TestListCollectionsNewestFirst(t *testing.T) {
	fixtures := testingutil.NewTestFixtures()
	store := fixtures.Store

	for i := 0; i < 3; i++ {
		_, err := fixtures.CreateTestCollection()
		require.NoError(t, err)
	}

	collections, err := store.ListCollections()
	require.NoError(t, err)
	require.Len(t, collections, 3)
	for i := 1; i < len(collections); i++ {
		assert.False(t, collections[i-1].CreatedAt.Before(collections[i].CreatedAt))
	}
}
