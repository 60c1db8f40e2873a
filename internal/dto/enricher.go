package dto

import (
	"context"
	"fmt"

	"github.com/pressroomapp/pressroom-server/internal/domain"
)

// Store defines the interface for fetching related entities during enrichment.
// This allows Enricher to remain testable and independent of concrete store implementation.
type Store interface {
	GetAuthorsByIDs(ctx context.Context, ids []string) (map[string]*domain.Author, error)
}

// URLResolver maps an asset ID to a servable URL. An empty ID resolves to
// an empty string.
type URLResolver interface {
	AssetURL(id string) string
}

// Enricher denormalizes domain models for client consumption.
//
// Design philosophy:
//   - Batch fetching: One author query per page, not per book
//   - Graceful degradation: Missing data returns empty fields, not errors
//   - Idempotent: Safe to enrich the same record multiple times
type Enricher struct {
	store    Store
	resolver URLResolver
}

// NewEnricher creates a new enricher.
func NewEnricher(store Store, resolver URLResolver) *Enricher {
	return &Enricher{store: store, resolver: resolver}
}

func (e *Enricher) assetURL(id string) string {
	if id == "" {
		return ""
	}
	return e.resolver.AssetURL(id)
}

func (e *Enricher) authorSummary(author *domain.Author) *AuthorSummary {
	if author == nil {
		return nil
	}
	return &AuthorSummary{
		ID:            author.ID,
		Name:          author.Name,
		ProfilePicURL: e.assetURL(author.ProfilePic),
	}
}

// EnrichBook denormalizes a single book for client consumption.
//
// Gracefully handles missing data: a dangling author reference leaves the
// author summary nil rather than failing the whole view.
func (e *Enricher) EnrichBook(ctx context.Context, book *domain.Book) (*Book, error) {
	view := &Book{
		Book:            book,
		CoverFrontURL:   e.assetURL(book.CoverFront),
		CoverBackURL:    e.assetURL(book.CoverBack),
		SamplePDFURL:    e.assetURL(book.SamplePDF),
		DiscountPercent: book.DiscountPercent(),
	}

	if book.AuthorID != "" {
		authors, err := e.store.GetAuthorsByIDs(ctx, []string{book.AuthorID})
		if err != nil {
			return nil, fmt.Errorf("fetch author: %w", err)
		}
		view.Author = e.authorSummary(authors[book.AuthorID])
	}

	return view, nil
}

// EnrichBooks denormalizes multiple books efficiently using batch fetching.
//
// This is more efficient than calling EnrichBook in a loop because it
// collects all author IDs across the page and fetches them in one query.
// Use this for paginated API responses.
func (e *Enricher) EnrichBooks(ctx context.Context, books []*domain.Book) ([]*Book, error) {
	if len(books) == 0 {
		return []*Book{}, nil
	}

	// Collect unique author IDs across all books
	authorIDsMap := make(map[string]bool)
	for _, book := range books {
		if book.AuthorID != "" {
			authorIDsMap[book.AuthorID] = true
		}
	}

	var authorMap map[string]*domain.Author
	if len(authorIDsMap) > 0 {
		authorIDs := make([]string, 0, len(authorIDsMap))
		for id := range authorIDsMap {
			authorIDs = append(authorIDs, id)
		}

		var err error
		authorMap, err = e.store.GetAuthorsByIDs(ctx, authorIDs)
		if err != nil {
			return nil, fmt.Errorf("fetch authors: %w", err)
		}
	}

	views := make([]*Book, len(books))
	for i, book := range books {
		view := &Book{
			Book:            book,
			CoverFrontURL:   e.assetURL(book.CoverFront),
			CoverBackURL:    e.assetURL(book.CoverBack),
			SamplePDFURL:    e.assetURL(book.SamplePDF),
			DiscountPercent: book.DiscountPercent(),
		}
		if book.AuthorID != "" {
			view.Author = e.authorSummary(authorMap[book.AuthorID])
		}
		views[i] = view
	}

	return views, nil
}

// EnrichJournal resolves the document URL for a single journal issue.
func (e *Enricher) EnrichJournal(journal *domain.Journal) *Journal {
	return &Journal{
		Journal:     journal,
		DocumentURL: e.assetURL(journal.Document),
	}
}

// EnrichJournals resolves document URLs for a page of journal issues.
func (e *Enricher) EnrichJournals(journals []*domain.Journal) []*Journal {
	views := make([]*Journal, len(journals))
	for i, journal := range journals {
		views[i] = e.EnrichJournal(journal)
	}
	return views
}

// EnrichAuthor resolves the profile picture URL for a single author.
func (e *Enricher) EnrichAuthor(author *domain.Author) *Author {
	return &Author{
		Author:        author,
		ProfilePicURL: e.assetURL(author.ProfilePic),
	}
}

// EnrichAuthors resolves profile picture URLs for a page of authors.
func (e *Enricher) EnrichAuthors(authors []*domain.Author) []*Author {
	views := make([]*Author, len(authors))
	for i, author := range authors {
		views[i] = e.EnrichAuthor(author)
	}
	return views
}
