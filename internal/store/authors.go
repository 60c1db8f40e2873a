package store

import (
	"context"
	"errors"

	"github.com/pressroomapp/pressroom-server/internal/domain"
)

// CreateAuthor stores a new author profile.
func (s *Store) CreateAuthor(ctx context.Context, author *domain.Author) error {
	if author.ID == "" {
		return ErrInvalidInput.WithMessage("author ID is required")
	}

	if err := s.authors.Create(ctx, author.ID, author); err != nil {
		return err
	}

	s.indexAsync("index author", func(ctx context.Context) error {
		return s.searchIndexer.IndexAuthor(ctx, author)
	})
	return nil
}

// GetAuthor retrieves an author by ID. Returns ErrNotFound if absent.
func (s *Store) GetAuthor(ctx context.Context, id string) (*domain.Author, error) {
	author, err := s.authors.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound.WithMessage("author not found")
		}
		return nil, err
	}
	return author, nil
}

// GetAuthorsByIDs batch-fetches authors, skipping missing IDs.
// Used for denormalizing author summaries into book views without one
// round-trip per book.
func (s *Store) GetAuthorsByIDs(ctx context.Context, ids []string) (map[string]*domain.Author, error) {
	out := make(map[string]*domain.Author, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := out[id]; ok {
			continue
		}
		author, err := s.authors.Get(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue // dangling reference degrades to "no author"
			}
			return nil, err
		}
		out[id] = author
	}
	return out, nil
}

// UpdateAuthor replaces a stored author. Returns ErrNotFound if absent.
func (s *Store) UpdateAuthor(ctx context.Context, author *domain.Author) error {
	author.Touch()
	if err := s.authors.Update(ctx, author.ID, author); err != nil {
		return err
	}

	s.indexAsync("reindex author", func(ctx context.Context) error {
		return s.searchIndexer.IndexAuthor(ctx, author)
	})
	return nil
}

// DeleteAuthor removes an author. Idempotent.
func (s *Store) DeleteAuthor(ctx context.Context, id string) error {
	if err := s.authors.Delete(ctx, id); err != nil {
		return err
	}

	s.indexAsync("deindex author", func(ctx context.Context) error {
		return s.searchIndexer.DeleteAuthor(ctx, id)
	})
	return nil
}

// AllAuthors returns every stored author, in key order.
func (s *Store) AllAuthors(ctx context.Context) ([]*domain.Author, error) {
	return s.authors.All(ctx)
}
