package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pressroomapp/pressroom-server/internal/domain"
	"github.com/pressroomapp/pressroom-server/internal/dto"
	"github.com/pressroomapp/pressroom-server/internal/store"
	"github.com/stretchr/testify/require"
)

type testResolver struct{}

func (testResolver) AssetURL(id string) string {
	return "/api/v1/assets/" + id
}

type testEnv struct {
	store    *store.Store
	books    *BookService
	journals *JournalService
	authors  *AuthorService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.New(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, st.Close())
	})

	enricher := dto.NewEnricher(st, testResolver{})

	return &testEnv{
		store:    st,
		books:    NewBookService(st, enricher, logger),
		journals: NewJournalService(st, enricher, logger),
		authors:  NewAuthorService(st, enricher, logger),
	}
}

// seedBook inserts a book directly through the store with a controlled
// creation time, bypassing the service so tests can pin the sort order.
func seedBook(t *testing.T, env *testEnv, bookID, title string, lang domain.Language, status domain.PublishStatus, createdAt time.Time) *domain.Book {
	t.Helper()

	book := &domain.Book{
		Record: domain.Record{
			ID:        bookID,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		Title:         title,
		Lang:          lang,
		PublishStatus: status,
	}
	require.NoError(t, env.store.CreateBook(context.Background(), book))
	return book
}

func seedJournal(t *testing.T, env *testEnv, journalID, title, month string, year int, status domain.PublishStatus) *domain.Journal {
	t.Helper()

	now := time.Now()
	journal := &domain.Journal{
		Record: domain.Record{
			ID:        journalID,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:         title,
		Lang:          domain.LanguageTamil,
		Month:         month,
		Year:          year,
		PublishStatus: status,
	}
	require.NoError(t, env.store.CreateJournal(context.Background(), journal))
	return journal
}

func seedAuthor(t *testing.T, env *testEnv, authorID, name string, status domain.PublishStatus, createdAt time.Time) *domain.Author {
	t.Helper()

	author := &domain.Author{
		Record: domain.Record{
			ID:        authorID,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		Name:          name,
		PublishStatus: status,
	}
	require.NoError(t, env.store.CreateAuthor(context.Background(), author))
	return author
}
