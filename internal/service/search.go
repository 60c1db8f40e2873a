package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pressroomapp/pressroom-server/internal/domain"
	"github.com/pressroomapp/pressroom-server/internal/search"
	"github.com/pressroomapp/pressroom-server/internal/store"
)

// SearchService provides ranked full-text search across the catalog and
// keeps the index in sync with store writes. It implements
// store.SearchIndexer so the store can push updates without importing the
// search package.
type SearchService struct {
	index  *search.Index
	store  *store.Store
	logger *slog.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(index *search.Index, store *store.Store, logger *slog.Logger) *SearchService {
	return &SearchService{
		index:  index,
		store:  store,
		logger: logger,
	}
}

// IndexBook adds or updates a book in the search index.
func (s *SearchService) IndexBook(_ context.Context, book *domain.Book) error {
	return s.index.IndexDocument(search.FromBook(book))
}

// DeleteBook removes a book from the search index.
func (s *SearchService) DeleteBook(_ context.Context, id string) error {
	return s.index.DeleteDocument(id)
}

// IndexJournal adds or updates a journal issue in the search index.
func (s *SearchService) IndexJournal(_ context.Context, journal *domain.Journal) error {
	return s.index.IndexDocument(search.FromJournal(journal))
}

// DeleteJournal removes a journal issue from the search index.
func (s *SearchService) DeleteJournal(_ context.Context, id string) error {
	return s.index.DeleteDocument(id)
}

// IndexAuthor adds or updates an author in the search index.
func (s *SearchService) IndexAuthor(_ context.Context, author *domain.Author) error {
	return s.index.IndexDocument(search.FromAuthor(author))
}

// DeleteAuthor removes an author from the search index.
func (s *SearchService) DeleteAuthor(_ context.Context, id string) error {
	return s.index.DeleteDocument(id)
}

// Search runs a ranked query across books, journals, and authors.
func (s *SearchService) Search(ctx context.Context, params search.Params) (*search.Result, error) {
	if params.Limit < 1 {
		params.Limit = DefaultPageLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	return s.index.Search(ctx, params)
}

// ReindexAll rebuilds the search index from the store. Run at startup when
// the mapping version changed, or on demand from the admin surface.
func (s *SearchService) ReindexAll(ctx context.Context) error {
	if err := s.index.Rebuild(); err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}

	books, err := s.store.AllBooks(ctx)
	if err != nil {
		return fmt.Errorf("load books: %w", err)
	}
	journals, err := s.store.AllJournals(ctx)
	if err != nil {
		return fmt.Errorf("load journals: %w", err)
	}
	authors, err := s.store.AllAuthors(ctx)
	if err != nil {
		return fmt.Errorf("load authors: %w", err)
	}

	docs := make([]*search.Document, 0, len(books)+len(journals)+len(authors))
	for _, book := range books {
		docs = append(docs, search.FromBook(book))
	}
	for _, journal := range journals {
		docs = append(docs, search.FromJournal(journal))
	}
	for _, author := range authors {
		docs = append(docs, search.FromAuthor(author))
	}

	if err := s.index.IndexDocuments(docs); err != nil {
		return fmt.Errorf("index documents: %w", err)
	}

	s.logger.Info("search index rebuilt",
		"books", len(books),
		"journals", len(journals),
		"authors", len(authors),
	)

	return nil
}

// DocumentCount returns the number of indexed documents.
func (s *SearchService) DocumentCount() (uint64, error) {
	return s.index.DocumentCount()
}
