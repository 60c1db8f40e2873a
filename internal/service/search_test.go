package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pressroomapp/pressroom-server/internal/domain"
	"github.com/pressroomapp/pressroom-server/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearchService(t *testing.T, env *testEnv) *SearchService {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	index, err := search.NewIndex(search.Options{DataPath: t.TempDir(), Logger: logger})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = index.Close()
	})

	return NewSearchService(index, env.store, logger)
}

func TestSearchService_IndexAndSearch(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestSearchService(t, env)
	ctx := context.Background()

	book := seedBook(t, env, "book-1", "River Crossing", domain.LanguageTamil, domain.StatusPublished, time.Now())
	require.NoError(t, svc.IndexBook(ctx, book))

	author := seedAuthor(t, env, "author-1", "River Poet", domain.StatusPublished, time.Now())
	require.NoError(t, svc.IndexAuthor(ctx, author))

	result, err := svc.Search(ctx, search.Params{Query: "River", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), result.Total)

	booksOnly, err := svc.Search(ctx, search.Params{
		Query: "River",
		Types: []string{string(search.DocTypeBook)},
		Limit: 10,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), booksOnly.Total)
	assert.Equal(t, "book-1", booksOnly.Hits[0].ID)
}

func TestSearchService_DeleteBook(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestSearchService(t, env)
	ctx := context.Background()

	book := seedBook(t, env, "book-1", "Ephemeral", domain.LanguageEnglish, domain.StatusPublished, time.Now())
	require.NoError(t, svc.IndexBook(ctx, book))
	require.NoError(t, svc.DeleteBook(ctx, "book-1"))

	result, err := svc.Search(ctx, search.Params{Query: "Ephemeral", Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, result.Total)
}

func TestSearchService_ReindexAll(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestSearchService(t, env)
	ctx := context.Background()

	// Seed through the store with the indexer unwired, so the index starts
	// empty and ReindexAll has to pick everything up from scratch.
	seedBook(t, env, "book-1", "Delta Tales", domain.LanguageTamil, domain.StatusPublished, time.Now())
	seedBook(t, env, "book-2", "Delta Drafts", domain.LanguageTamil, domain.StatusDraft, time.Now())
	seedJournal(t, env, "journal-1", "Delta Review", "April", 2024, domain.StatusPublished)
	seedAuthor(t, env, "author-1", "Delta Writer", domain.StatusPublished, time.Now())

	require.NoError(t, svc.ReindexAll(ctx))

	count, err := svc.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), count)

	// The public search hides the draft.
	public, err := svc.Search(ctx, search.Params{Query: "Delta", PublishedOnly: true, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), public.Total)
}

func TestSearchService_StoreWiring(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestSearchService(t, env)
	ctx := context.Background()

	env.store.SetSearchIndexer(svc)

	_, err := env.books.Create(ctx, CreateBookInput{Title: "Wired Title", Lang: "en"})
	require.NoError(t, err)

	// Store writes index asynchronously; poll briefly.
	deadline := time.Now().Add(2 * time.Second)
	for {
		result, err := svc.Search(ctx, search.Params{Query: "Wired", Limit: 10})
		require.NoError(t, err)
		if result.Total == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("book never appeared in search index, total=%d", result.Total)
		}
		time.Sleep(20 * time.Millisecond)
	}
}
