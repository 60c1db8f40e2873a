package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressroomapp/pressroom-server/internal/domain"
)

func createTestAuthor(id, name string) *domain.Author {
	a := &domain.Author{
		Name:          name,
		Bio:           "Bio for " + name,
		PublishStatus: domain.StatusPublished,
	}
	a.ID = id
	a.InitTimestamps()
	return a
}

func TestAuthorRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	author := createTestAuthor("author-001", "Kalki")
	require.NoError(t, store.CreateAuthor(ctx, author))

	retrieved, err := store.GetAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kalki", retrieved.Name)
	assert.Equal(t, "Bio for Kalki", retrieved.Bio)
}

func TestGetAuthor_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetAuthor(context.Background(), "author-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAuthorsByIDs(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateAuthor(ctx, createTestAuthor("author-001", "Kalki")))
	require.NoError(t, store.CreateAuthor(ctx, createTestAuthor("author-002", "Sujatha")))

	// Dangling and duplicate IDs are tolerated.
	authors, err := store.GetAuthorsByIDs(ctx, []string{"author-001", "author-002", "author-001", "author-gone", ""})
	require.NoError(t, err)
	assert.Len(t, authors, 2)
	assert.Equal(t, "Kalki", authors["author-001"].Name)
	assert.Equal(t, "Sujatha", authors["author-002"].Name)
	assert.NotContains(t, authors, "author-gone")
}

func TestDeleteAuthor_Idempotent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateAuthor(ctx, createTestAuthor("author-001", "Kalki")))
	require.NoError(t, store.DeleteAuthor(ctx, "author-001"))
	require.NoError(t, store.DeleteAuthor(ctx, "author-001"))
}
