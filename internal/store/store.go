// Package store implements the catalog's content store: an embedded Badger
// database holding JSON documents under kind-discriminating key prefixes.
// The store is the single source of truth for every record; view-layer lists
// are ephemeral projections of one fetch.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/pressroomapp/pressroom-server/internal/domain"
)

// Key prefixes per record kind.
const (
	prefixBook    = "book:"
	prefixJournal = "journal:"
	prefixAuthor  = "author:"
	prefixAsset   = "asset:"
)

// SearchIndexer is the interface for updating the search index.
// Store uses this to keep search in sync without depending on search
// implementation. Index updates are performed asynchronously to not block
// store operations.
type SearchIndexer interface {
	IndexBook(ctx context.Context, book *domain.Book) error
	DeleteBook(ctx context.Context, id string) error
	IndexJournal(ctx context.Context, journal *domain.Journal) error
	DeleteJournal(ctx context.Context, id string) error
	IndexAuthor(ctx context.Context, author *domain.Author) error
	DeleteAuthor(ctx context.Context, id string) error
}

// NoopSearchIndexer is a no-op implementation for testing.
type NoopSearchIndexer struct{}

// IndexBook is a no-op.
func (NoopSearchIndexer) IndexBook(context.Context, *domain.Book) error { return nil }

// DeleteBook is a no-op.
func (NoopSearchIndexer) DeleteBook(context.Context, string) error { return nil }

// IndexJournal is a no-op.
func (NoopSearchIndexer) IndexJournal(context.Context, *domain.Journal) error { return nil }

// DeleteJournal is a no-op.
func (NoopSearchIndexer) DeleteJournal(context.Context, string) error { return nil }

// IndexAuthor is a no-op.
func (NoopSearchIndexer) IndexAuthor(context.Context, *domain.Author) error { return nil }

// DeleteAuthor is a no-op.
func (NoopSearchIndexer) DeleteAuthor(context.Context, string) error { return nil }

// NewNoopSearchIndexer creates a new no-op search indexer for testing.
func NewNoopSearchIndexer() SearchIndexer {
	return NoopSearchIndexer{}
}

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	// Search indexer for keeping search in sync with store changes.
	// Set via SetSearchIndexer after store creation to avoid circular dependencies.
	searchIndexer SearchIndexer

	books    *Entity[domain.Book]
	journals *Entity[domain.Journal]
	authors  *Entity[domain.Author]
	assets   *Entity[domain.Asset]
}

// New opens (or creates) the store at the given path.
func New(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Badger's own logger is too chatty; we log at the store level.

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", path, err)
	}

	s := &Store{
		db:            db,
		logger:        logger,
		searchIndexer: NewNoopSearchIndexer(),
	}
	s.books = NewEntity[domain.Book](s, prefixBook)
	s.journals = NewEntity[domain.Journal](s, prefixJournal)
	s.authors = NewEntity[domain.Author](s, prefixAuthor)
	s.assets = NewEntity[domain.Asset](s, prefixAsset)

	return s, nil
}

// SetSearchIndexer wires the search indexer after store creation.
func (s *Store) SetSearchIndexer(si SearchIndexer) {
	if si == nil {
		si = NewNoopSearchIndexer()
	}
	s.searchIndexer = si
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// indexAsync runs a search index update in the background. Index failures are
// logged, never surfaced: the store write already succeeded and search lag is
// tolerable.
func (s *Store) indexAsync(op string, fn func(context.Context) error) {
	go func() {
		if err := fn(context.Background()); err != nil {
			s.logger.Warn("search index update failed", "op", op, "error", err)
		}
	}()
}
