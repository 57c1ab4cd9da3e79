package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulee/content-api/pkg/contentapi"
	"github.com/dulee/content-api/pkg/contentapi/store/memory"
)

func newContent(title string) contentapi.Content {
	return contentapi.Content{
		ID:        uuid.New(),
		Title:     title,
		Body:      "body of " + title,
		Thumbnail: "/thumb.svg",
		CreatedAt: time.Now(),
		AuthorID:  uuid.New(),
	}
}

func TestStore_AppendAndAll(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	first := newContent("first")
	second := newContent("second")

	require.NoError(t, store.Append(ctx, &first))
	require.NoError(t, store.Append(ctx, &second))

	all, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	// Storage order is insertion order.
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}

func TestStore_Append_DuplicateID(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	content := newContent("original")
	require.NoError(t, store.Append(ctx, &content))

	duplicate := newContent("duplicate")
	duplicate.ID = content.ID

	err := store.Append(ctx, &duplicate)
	assert.ErrorIs(t, err, contentapi.ErrDuplicateID)
	assert.Equal(t, 1, store.Len())
}

func TestStore_All_ReturnsSnapshot(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	content := newContent("immutable")
	require.NoError(t, store.Append(ctx, &content))

	all, err := store.All(ctx)
	require.NoError(t, err)

	// Mutating the snapshot must not leak into the store.
	all[0].Title = "mutated"

	again, err := store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "immutable", again[0].Title)
}

func TestStore_ReplaceByID(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	first := newContent("first")
	second := newContent("second")
	require.NoError(t, store.Append(ctx, &first))
	require.NoError(t, store.Append(ctx, &second))

	t.Run("ReplacesInPlace", func(t *testing.T) {
		updated := first
		updated.Title = "first, revised"

		err := store.ReplaceByID(ctx, first.ID, first.AuthorID, &updated)
		assert.NoError(t, err)

		all, err := store.All(ctx)
		require.NoError(t, err)
		// Position unchanged.
		assert.Equal(t, "first, revised", all[0].Title)
		assert.Equal(t, second.ID, all[1].ID)
	})

	t.Run("WrongAuthor", func(t *testing.T) {
		updated := first
		updated.Title = "should not land"

		err := store.ReplaceByID(ctx, first.ID, uuid.New(), &updated)
		assert.ErrorIs(t, err, contentapi.ErrContentNotFound)

		all, err := store.All(ctx)
		require.NoError(t, err)
		assert.Equal(t, "first, revised", all[0].Title)
	})

	t.Run("UnknownID", func(t *testing.T) {
		updated := newContent("nowhere")
		err := store.ReplaceByID(ctx, updated.ID, updated.AuthorID, &updated)
		assert.ErrorIs(t, err, contentapi.ErrContentNotFound)
	})
}

func TestStore_RemoveByID(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	first := newContent("first")
	second := newContent("second")
	require.NoError(t, store.Append(ctx, &first))
	require.NoError(t, store.Append(ctx, &second))

	t.Run("WrongAuthor", func(t *testing.T) {
		err := store.RemoveByID(ctx, first.ID, uuid.New())
		assert.ErrorIs(t, err, contentapi.ErrContentNotFound)
		assert.Equal(t, 2, store.Len())
	})

	t.Run("Removes", func(t *testing.T) {
		err := store.RemoveByID(ctx, first.ID, first.AuthorID)
		assert.NoError(t, err)

		all, err := store.All(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, second.ID, all[0].ID)
	})

	t.Run("SecondRemoveIsNotFound", func(t *testing.T) {
		err := store.RemoveByID(ctx, first.ID, first.AuthorID)
		assert.ErrorIs(t, err, contentapi.ErrContentNotFound)
		assert.Equal(t, 1, store.Len())
	})
}
